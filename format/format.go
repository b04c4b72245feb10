package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/rsyn/rust/syntax"
)

// Encoder writes a syntax tree in some output format.
type Encoder interface {
	Encode(node syntax.Node) error
	MarshalText(node syntax.Node) ([]byte, error)
}

var (
	_ Encoder = (*ASTJSONEncoder)(nil)
	_ Encoder = (*TreeEncoder)(nil)
	_ Encoder = (*LineEncoder)(nil)
	_ Encoder = (*SourceEncoder)(nil)
)

// New returns the encoder for a format name: json, tree, line or source.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewASTJSONEncoder(w), nil
	case "tree":
		return NewTreeEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "source", "rust":
		return NewSourceEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}

// SourceEncoder writes a tree back as source text.
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(node syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SourceEncoder) MarshalText(node syntax.Node) ([]byte, error) {
	return []byte(Render(syntax.Print(node))), nil
}
