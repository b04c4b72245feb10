package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/rsyn/rust/syntax"
)

func TestASTJSONEncoder(t *testing.T) {
	e, err := syntax.ParseExpr("x + 1")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewASTJSONEncoder(&buf).Encode(e); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["kind"] != "expr_binary" {
		t.Errorf("kind: got %v, want expr_binary", got["kind"])
	}
	if got["op"] != "+" {
		t.Errorf("op: got %v, want +", got["op"])
	}
	right, _ := got["right"].(map[string]any)
	lit, _ := right["lit"].(map[string]any)
	if lit["lit_kind"] != "int" || lit["text"] != "1" {
		t.Errorf("right operand: got %v", right)
	}
	if _, ok := got["span"]; ok {
		t.Errorf("span present without WithSpans")
	}
}

func TestASTJSONEncoderSpans(t *testing.T) {
	item, err := syntax.ParseItem("pub fn f() {}")
	if err != nil {
		t.Fatal(err)
	}
	text, err := NewASTJSONEncoder(nil).WithSpans().MarshalText(item)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Kind string `json:"kind"`
		Vis  string `json:"vis"`
		Span struct {
			Start struct{ Line, Column int }
			End   struct{ Line, Column int }
		} `json:"span"`
	}
	if err := json.Unmarshal(text, &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, text)
	}
	if got.Kind != "item_fn" || got.Vis != "pub" {
		t.Errorf("got kind %q vis %q", got.Kind, got.Vis)
	}
	if got.Span.Start.Column != 1 || got.Span.End.Column != 14 {
		t.Errorf("got span %+v", got.Span)
	}
}

func TestTreeEncoder(t *testing.T) {
	f, err := syntax.ParseFileString(`fn main() { println!("hi"); }`)
	if err != nil {
		t.Fatal(err)
	}
	text, err := NewTreeEncoder(nil).MarshalText(f)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
	if lines[0] != "File" || lines[1] != "  ItemFn" {
		t.Fatalf("unexpected head:\n%s", text)
	}
	for _, want := range []string{"    Signature", "      Ident\tmain", "ExprMacro", "Path\tprintln"} {
		if !strings.Contains(string(text), want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
	if strings.Contains(string(text), "Visibility") {
		t.Errorf("inherited visibility printed:\n%s", text)
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"json", "tree", "line", "source", "rust"} {
		if _, err := New(name, nil); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
	if _, err := New("yaml", nil); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestSourceEncoder(t *testing.T) {
	f, err := syntax.ParseFileString("fn  main ( ) { }")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewSourceEncoder(&buf).Encode(f); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "fn main() {}\n" {
		t.Errorf("got %q", got)
	}
}

func TestLineEncoder(t *testing.T) {
	f, err := syntax.ParseFileString(`mod shapes {
    pub struct Point { pub x: f64, y: Vec<u8> }
}
pub fn area(p: &Point, scale: f64) -> f64 { 0.0 }
impl Point { pub fn new() -> Self { todo!() } }
enum E { A, B(u8) }
`)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(f); err != nil {
		t.Fatal(err)
	}
	want := "mod\tshapes\t-\n" +
		"struct\tshapes::Point\tpub\n" +
		"field\tx\tf64\tpub\n" +
		"field\ty\tVec<u8>\t-\n" +
		"fn\tarea\t(p: &Point, scale: f64)\tf64\tpub\n" +
		"impl\tPoint\n" +
		"method\tnew\t()\tSelf\tpub\n" +
		"enum\tE\t-\n" +
		"variant\tA\n" +
		"variant\tB\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	expr, err := syntax.ParseExpr("1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewLineEncoder(nil).MarshalText(expr); err == nil {
		t.Error("expected an error for an expression")
	}
}
