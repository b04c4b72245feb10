package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/rsyn/rust/tokens"
)

func TestDocumentsUpdate(t *testing.T) {
	docs := NewDocuments()
	doc := docs.Update("file:///src/lib.rs", 1, "fn f() {}")
	require.NoError(t, doc.Err)
	require.NotNil(t, doc.File)
	assert.Equal(t, "/src/lib.rs", doc.Path)

	doc = docs.Update("file:///src/lib.rs", 3, "fn f( {}")
	assert.Error(t, doc.Err)
	assert.Equal(t, int32(3), docs.Get("file:///src/lib.rs").Version)

	// A stale version does not replace a newer one.
	doc = docs.Update("file:///src/lib.rs", 2, "fn g() {}")
	assert.Equal(t, int32(3), doc.Version)
	assert.Error(t, docs.Get("file:///src/lib.rs").Err)

	docs.Update("file:///src/a.rs", 1, "")
	assert.Equal(t, []string{"file:///src/a.rs", "file:///src/lib.rs"}, docs.URIs())

	docs.Close("file:///src/lib.rs")
	assert.Nil(t, docs.Get("file:///src/lib.rs"))
	assert.Equal(t, []string{"file:///src/a.rs"}, docs.URIs())
}

func TestDiagnostics(t *testing.T) {
	docs := NewDocuments()

	ok := docs.Update("file:///ok.rs", 1, "fn f() {}")
	diags := Diagnostics(ok)
	assert.NotNil(t, diags)
	assert.Empty(t, diags)

	bad := docs.Update("file:///bad.rs", 1, "fn f() {\n    let x = ;\n}")
	diags = Diagnostics(bad)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, "expected expression, found `;`", d.Message)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "UnexpectedToken", d.Code.Value)
	assert.Equal(t, protocol.Position{Line: 1, Character: 12}, d.Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 13}, d.Range.End)
}

func TestToPositionUTF16(t *testing.T) {
	text := "let s = \"é😀\"; x"
	l := tokens.NewLexer([]byte(text), "")
	stream, err := l.Stream()
	require.NoError(t, err)
	last := stream[len(stream)-1].(tokens.Token)
	require.Equal(t, "x", last.Text)

	pos := toPosition(text, last.Span.Start)
	assert.Equal(t, protocol.UInteger(0), pos.Line)
	// é is one UTF-16 unit, 😀 is two.
	assert.Equal(t, protocol.UInteger(15), pos.Character)
}

func TestSymbols(t *testing.T) {
	docs := NewDocuments()
	doc := docs.Update("file:///lib.rs", 1, `mod shapes {
    pub struct Point { x: f64, y: f64 }
    pub enum Shape { Dot(Point), Empty }
}
pub trait Area { fn area(&self) -> f64; const SIDES: u8; }
impl Area for shapes::Shape { fn area(&self) -> f64 { 0.0 } }
const MAX: u8 = 3;
fn main() {}
`)
	require.NoError(t, doc.Err)

	syms := Symbols(doc)
	require.Len(t, syms, 5)

	mod := syms[0]
	assert.Equal(t, "shapes", mod.Name)
	assert.Equal(t, protocol.SymbolKindModule, mod.Kind)
	require.Len(t, mod.Children, 2)
	assert.Equal(t, "Point", mod.Children[0].Name)
	require.Len(t, mod.Children[0].Children, 2)
	assert.Equal(t, "y", mod.Children[0].Children[1].Name)
	assert.Equal(t, protocol.SymbolKindEnum, mod.Children[1].Kind)
	assert.Equal(t, []string{"Dot", "Empty"}, names(mod.Children[1].Children))

	trait := syms[1]
	assert.Equal(t, protocol.SymbolKindInterface, trait.Kind)
	assert.Equal(t, []string{"area", "SIDES"}, names(trait.Children))

	impl := syms[2]
	assert.Equal(t, "impl Area for shapes::Shape", impl.Name)
	require.Len(t, impl.Children, 1)
	assert.Equal(t, protocol.SymbolKindMethod, impl.Children[0].Kind)

	assert.Equal(t, "MAX", syms[3].Name)
	fn := syms[4]
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, protocol.Position{Line: 7, Character: 0}, fn.Range.Start)
	assert.Equal(t, protocol.Position{Line: 7, Character: 3}, fn.SelectionRange.Start)

	assert.Nil(t, Symbols(docs.Update("file:///bad.rs", 1, "fn (")))
}

func names(syms []protocol.DocumentSymbol) []string {
	var out []string
	for _, s := range syms {
		out = append(out, s.Name)
	}
	return out
}

func TestFormatEdits(t *testing.T) {
	docs := NewDocuments()

	edits := FormatEdits(docs.Update("file:///a.rs", 1, "fn  main ( ) {\nlet x=1;}"))
	require.Len(t, edits, 1)
	assert.Equal(t, "fn main() {\n    let x = 1;\n}\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 1, Character: 9}, edits[0].Range.End)

	assert.Empty(t, FormatEdits(docs.Update("file:///b.rs", 1, "fn main() {}\n")))
	assert.Nil(t, FormatEdits(docs.Update("file:///c.rs", 1, "fn main( {}")))
	assert.Nil(t, FormatEdits(docs.Update("file:///d.rs", 1, "// keep me\nfn main() {}")))
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/my%20crate/lib.rs")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/my crate/lib.rs", path)

	path, err = uriToPath("untitled:Untitled-1")
	require.NoError(t, err)
	assert.Equal(t, "untitled:Untitled-1", path)
}
