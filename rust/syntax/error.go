package syntax

import (
	"fmt"

	"github.com/dhamidi/rsyn/rust/tokens"
)

type ErrorKind int

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrUnexpectedEnd
	ErrTrailingTokens
	ErrCustom
)

var errorKindNames = map[ErrorKind]string{
	ErrUnexpectedToken: "UnexpectedToken",
	ErrUnexpectedEnd:   "UnexpectedEnd",
	ErrTrailingTokens:  "TrailingTokens",
	ErrCustom:          "Custom",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is a parse failure at a span. Errors from competing alternatives are
// combined with Merge: the one that got further wins.
type Error struct {
	Kind    ErrorKind
	Span    tokens.Span
	Message string

	// offset of the cursor that failed, in flattened buffer entries
	pos int
	// set for unexpected-token errors so merged errors read
	// "expected a or b, found c"
	expected string
	found    string
}

func (e *Error) Error() string {
	if e.Span.IsZero() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Span.Start, e.Message)
}

// Offset is how far into the input the failing rule got.
func (e *Error) Offset() int {
	return e.pos
}

// Merge picks the error of the alternative that advanced further. Errors at
// the same position are concatenated.
func Merge(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.pos > b.pos:
		return a
	case b.pos > a.pos:
		return b
	}
	if a.Message == b.Message {
		return a
	}
	kind := a.Kind
	if b.Kind != a.Kind {
		kind = ErrUnexpectedToken
	}
	if a.expected != "" && b.expected != "" && a.found == b.found {
		expected := a.expected + " or " + b.expected
		return &Error{
			Kind:     kind,
			Span:     a.Span,
			Message:  fmt.Sprintf("expected %s, found %s", expected, a.found),
			pos:      a.pos,
			expected: expected,
			found:    a.found,
		}
	}
	return &Error{
		Kind:    kind,
		Span:    a.Span,
		Message: a.Message + " or " + b.Message,
		pos:     a.pos,
	}
}

// asError converts any error returned by a rule into *Error. Rules only ever
// return *Error, so anything else is wrapped as a custom error at c.
func asError(err error, c Cursor) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: ErrCustom, Span: c.Span(), Message: err.Error(), pos: c.Offset()}
}

func describe(c Cursor) string {
	if c.Eof() {
		if e := c.entry(); e.group != nil {
			return fmt.Sprintf("`%s`", e.group.Delim.Close())
		}
		return "end of input"
	}
	tt, _, _ := c.TokenTree()
	switch tt := tt.(type) {
	case tokens.Token:
		return fmt.Sprintf("`%s`", tt.Text)
	case *tokens.Group:
		return fmt.Sprintf("`%s`", tt.Delim.Open())
	}
	return "token"
}

func unexpected(c Cursor, expected string) *Error {
	kind := ErrUnexpectedToken
	if c.Eof() {
		kind = ErrUnexpectedEnd
	}
	found := describe(c)
	return &Error{
		Kind:     kind,
		Span:     c.Span(),
		Message:  fmt.Sprintf("expected %s, found %s", expected, found),
		pos:      c.Offset(),
		expected: expected,
		found:    found,
	}
}

func customError(c Cursor, span tokens.Span, format string, args ...any) *Error {
	if span.IsZero() {
		span = c.Span()
	}
	return &Error{
		Kind:    ErrCustom,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
		pos:     c.Offset(),
	}
}
