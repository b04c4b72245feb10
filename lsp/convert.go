package lsp

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/rsyn/rust/syntax"
	"github.com/dhamidi/rsyn/rust/tokens"
)

// Diagnostics reports the parse error of doc, if any. The result is never
// nil so that publishing it clears earlier diagnostics.
func Diagnostics(doc *Document) []protocol.Diagnostic {
	out := []protocol.Diagnostic{}
	if doc == nil || doc.Err == nil {
		return out
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diag := protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
		Message:  doc.Err.Error(),
	}
	var perr *syntax.Error
	if errors.As(doc.Err, &perr) {
		diag.Message = perr.Message
		code := protocol.IntegerOrString{Value: perr.Kind.String()}
		diag.Code = &code
		diag.Range = toRange(doc.Text, perr.Span)
	}
	return append(out, diag)
}

// toRange converts a token span to an LSP range, counting characters in
// UTF-16 code units.
func toRange(text string, span tokens.Span) protocol.Range {
	if span.IsZero() {
		return protocol.Range{}
	}
	start := toPosition(text, span.Start)
	end := toPosition(text, span.End)
	if end.Line < start.Line || end.Line == start.Line && end.Character < start.Character {
		end = start
	}
	return protocol.Range{Start: start, End: end}
}

func toPosition(text string, pos tokens.Position) protocol.Position {
	offset := min(max(pos.Offset, 0), len(text))
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	return protocol.Position{
		Line:      protocol.UInteger(max(pos.Line-1, 0)),
		Character: protocol.UInteger(len(utf16.Encode([]rune(text[lineStart:offset])))),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
