package syntax

import (
	"github.com/dhamidi/rsyn/rust/tokens"
)

// Rule parses one syntax node from an Input.
type Rule[T any] func(in *Input) (T, error)

// Input is the mutable handle rules read from. It owns a single Cursor value;
// the cursor itself never changes, the Input just points at newer ones.
type Input struct {
	cur Cursor
}

func newInput(c Cursor) *Input {
	return &Input{cur: c}
}

// Fork returns an independent copy of the input at the same position.
func (in *Input) Fork() *Input {
	return &Input{cur: in.cur}
}

// Commit moves in to the position of fork.
func (in *Input) Commit(fork *Input) {
	in.cur = fork.cur
}

func (in *Input) Cursor() Cursor {
	return in.cur
}

func (in *Input) IsEmpty() bool {
	return in.cur.Eof()
}

// Span is the span of the next token.
func (in *Input) Span() tokens.Span {
	return in.cur.Span()
}

func (in *Input) Error(expected string) *Error {
	return unexpected(in.cur, expected)
}

func (in *Input) Errorf(span tokens.Span, format string, args ...any) *Error {
	return customError(in.cur, span, format, args...)
}

// Peek reports whether pred matches at the current position, without
// consuming anything.
func (in *Input) Peek(pred func(Cursor) bool) bool {
	return pred(in.cur)
}

// Peek2 is Peek one tree ahead.
func (in *Input) Peek2(pred func(Cursor) bool) bool {
	c, ok := in.cur.skip(1)
	return ok && pred(c)
}

// Peek3 is Peek two trees ahead.
func (in *Input) Peek3(pred func(Cursor) bool) bool {
	c, ok := in.cur.skip(2)
	return ok && pred(c)
}

// Parse runs rule on a fork and commits only if it succeeds.
func Parse[T any](in *Input, rule Rule[T]) (T, error) {
	fork := in.Fork()
	v, err := rule(fork)
	if err != nil {
		var zero T
		return zero, asError(err, fork.cur)
	}
	in.Commit(fork)
	return v, nil
}

// Alt tries each rule on a fork of the same start and commits the first
// success. When all fail, the error of the furthest-advanced one is returned.
func Alt[T any](in *Input, rules ...Rule[T]) (T, error) {
	var failure *Error
	for _, rule := range rules {
		fork := in.Fork()
		v, err := rule(fork)
		if err == nil {
			in.Commit(fork)
			return v, nil
		}
		failure = Merge(failure, asError(err, fork.cur))
	}
	var zero T
	if failure == nil {
		failure = in.Error("one of no alternatives")
	}
	return zero, failure
}

// Optional runs rule when peek matches; a nil peek always tries.
func Optional[T any](in *Input, peek func(Cursor) bool, rule Rule[T]) (T, bool, error) {
	var zero T
	if peek != nil && !peek(in.cur) {
		return zero, false, nil
	}
	v, err := Parse(in, rule)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Delimited descends into the next group, runs rule on its interior and
// requires the interior to be fully consumed.
func Delimited[T any](in *Input, delim tokens.Delimiter, rule Rule[T]) (T, DelimSpan, error) {
	var zero T
	inner, g, rest, ok := in.cur.Group(delim)
	if !ok {
		return zero, DelimSpan{}, in.Error("`" + delim.Open() + "`")
	}
	sub := newInput(inner)
	v, err := rule(sub)
	if err != nil {
		return zero, DelimSpan{}, asError(err, sub.cur)
	}
	if !sub.IsEmpty() {
		return zero, DelimSpan{}, unexpected(sub.cur, "`"+delim.Close()+"`")
	}
	in.cur = rest
	return v, DelimSpan{Delim: delim, Open: g.Open, Close: g.Close}, nil
}

// Group consumes the next group whole, returning its contents unparsed.
func (in *Input) Group(delim tokens.Delimiter) (tokens.Stream, DelimSpan, error) {
	_, g, rest, ok := in.cur.Group(delim)
	if !ok {
		return nil, DelimSpan{}, in.Error("`" + delim.Open() + "`")
	}
	in.cur = rest
	return g.Stream, DelimSpan{Delim: delim, Open: g.Open, Close: g.Close}, nil
}

// AnyGroup consumes the next group of any delimiter.
func (in *Input) AnyGroup() (tokens.Stream, DelimSpan, error) {
	for _, d := range []tokens.Delimiter{tokens.Paren, tokens.Bracket, tokens.Brace} {
		if isGroup(d)(in.cur) {
			return in.Group(d)
		}
	}
	return nil, DelimSpan{}, in.Error("`(`, `[` or `{`")
}

// TokenTree consumes one tree, whatever it is.
func (in *Input) TokenTree() (tokens.TokenTree, error) {
	tt, next, ok := in.cur.TokenTree()
	if !ok {
		return nil, in.Error("token")
	}
	in.cur = next
	return tt, nil
}

// RestStream consumes everything up to the end of scope.
func (in *Input) RestStream() tokens.Stream {
	out := in.cur.Rest()
	for !in.cur.Eof() {
		_, next, _ := in.cur.TokenTree()
		in.cur = next
	}
	return out
}

// Keyword consumes the keyword kw.
func (in *Input) Keyword(kw string) (tokens.Span, error) {
	tok, next, ok := in.cur.Token()
	if !ok || tok.Kind != tokens.KindKeyword || tok.Text != kw {
		return tokens.Span{}, in.Error("`" + kw + "`")
	}
	in.cur = next
	return tok.Span, nil
}

// Punct consumes the operator op, which may span several joint characters.
func (in *Input) Punct(op string) (tokens.Span, error) {
	span, next, ok := punctAt(in.cur, op)
	if !ok {
		return tokens.Span{}, in.Error("`" + op + "`")
	}
	in.cur = next
	return span, nil
}

// OptPunct consumes op if present.
func (in *Input) OptPunct(op string) *tokens.Span {
	span, next, ok := punctAt(in.cur, op)
	if !ok {
		return nil
	}
	in.cur = next
	return &span
}

// OptKeyword consumes kw if present.
func (in *Input) OptKeyword(kw string) *tokens.Span {
	if !isKeyword(kw)(in.cur) {
		return nil
	}
	span, _ := in.Keyword(kw)
	return &span
}

func (in *Input) Lifetime() (Lifetime, error) {
	tok, next, ok := in.cur.Token()
	if !ok || tok.Kind != tokens.KindLifetime {
		return Lifetime{}, in.Error("lifetime")
	}
	in.cur = next
	return Lifetime{Name: tok.Text[1:], Span: tok.Span}, nil
}

func punctAt(c Cursor, op string) (tokens.Span, Cursor, bool) {
	var span tokens.Span
	for i := 0; i < len(op); i++ {
		tok, next, ok := c.Token()
		if !ok || tok.Kind != tokens.KindPunct || tok.Text != op[i:i+1] {
			return span, c, false
		}
		if i < len(op)-1 && tok.Spacing != tokens.Joint {
			return span, c, false
		}
		span = span.Join(tok.Span)
		c = next
	}
	return span, c, true
}

// Predicates for Peek.

func isPunct(op string) func(Cursor) bool {
	return func(c Cursor) bool {
		_, _, ok := punctAt(c, op)
		return ok
	}
}

// operators lists every multi-character operator, longest first.
var operators = []string{
	"<<=", ">>=", "...", "..=",
	"&&", "||", "<<", ">>", "+=", "-=", "*=", "/=", "%=", "^=", "&=", "|=",
	"==", "!=", ">=", "<=", "->", "=>", "::", "..",
}

// longestOp returns the longest operator spelled at c, or the single
// punctuation character there.
func longestOp(c Cursor) string {
	for _, op := range operators {
		if _, _, ok := punctAt(c, op); ok {
			return op
		}
	}
	tok, _, ok := c.Token()
	if ok && tok.Kind == tokens.KindPunct {
		return tok.Text
	}
	return ""
}

// isPunctExact matches op only when it is not the prefix of a longer operator.
func isPunctExact(op string) func(Cursor) bool {
	return func(c Cursor) bool {
		return longestOp(c) == op
	}
}

func isKeyword(kw string) func(Cursor) bool {
	return func(c Cursor) bool {
		tok, _, ok := c.Token()
		return ok && tok.Kind == tokens.KindKeyword && tok.Text == kw
	}
}

func isIdent(c Cursor) bool {
	tok, _, ok := c.Token()
	return ok && tok.Kind == tokens.KindIdent
}

// isAnyIdent accepts identifiers and keywords.
func isAnyIdent(c Cursor) bool {
	tok, _, ok := c.Token()
	return ok && (tok.Kind == tokens.KindIdent || tok.Kind == tokens.KindKeyword)
}

func isLifetime(c Cursor) bool {
	tok, _, ok := c.Token()
	return ok && tok.Kind == tokens.KindLifetime
}

func isLiteral(c Cursor) bool {
	tok, _, ok := c.Token()
	if !ok {
		return false
	}
	return tok.Kind == tokens.KindLiteral || (tok.Kind == tokens.KindKeyword && (tok.Text == "true" || tok.Text == "false"))
}

func isGroup(d tokens.Delimiter) func(Cursor) bool {
	return func(c Cursor) bool {
		_, _, _, ok := c.Group(d)
		return ok
	}
}

func isEnd(c Cursor) bool {
	return c.Eof()
}
