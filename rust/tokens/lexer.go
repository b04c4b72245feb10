package tokens

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type LexError struct {
	Span    Span
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span.Start, e.Message)
}

type Lexer struct {
	input    []byte
	file     string
	pos      int
	line     int
	column   int
	comments []Span
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

// Lex turns source text into a token tree, grouping tokens by matching
// delimiters. Comments and whitespace are dropped; doc comments become
// #[doc = "..."] attributes.
func Lex(input []byte, file string) (Stream, error) {
	return NewLexer(input, file).Stream()
}

func LexString(src string) (Stream, error) {
	return Lex([]byte(src), "")
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// Comments returns the spans of the plain comments skipped so far. Doc
// comments are not included; they become attributes.
func (l *Lexer) Comments() []Span {
	return l.comments
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) peekRune(n int) (rune, int) {
	if l.pos+n >= len(l.input) {
		return 0, 0
	}
	return utf8.DecodeRune(l.input[l.pos+n:])
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else if ch < utf8.RuneSelf || utf8.RuneStart(ch) {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) errorf(start Position, format string, args ...any) *LexError {
	return &LexError{
		Span:    Span{Start: start, End: l.Position()},
		Message: fmt.Sprintf(format, args...),
	}
}

type openGroup struct {
	delim  Delimiter
	open   Span
	stream Stream
}

// Stream lexes the whole input.
func (l *Lexer) Stream() (Stream, error) {
	stack := []*openGroup{{}}
	for {
		top := stack[len(stack)-1]
		trees, err := l.next()
		if err != nil {
			return nil, err
		}
		if trees == nil {
			break
		}
		for _, tt := range trees {
			tok, ok := tt.(Token)
			if !ok || tok.Kind != KindPunct {
				top.stream = append(top.stream, tt)
				continue
			}
			switch tok.Text {
			case "(", "[", "{":
				g := &openGroup{delim: delimiterFor(tok.Text), open: tok.Span}
				stack = append(stack, g)
				top = g
			case ")", "]", "}":
				if len(stack) == 1 {
					return nil, &LexError{Span: tok.Span, Message: fmt.Sprintf("unexpected closing delimiter `%s`", tok.Text)}
				}
				want := top.delim.Close()
				if tok.Text != want {
					return nil, &LexError{Span: tok.Span, Message: fmt.Sprintf("mismatched closing delimiter: expected `%s`, found `%s`", want, tok.Text)}
				}
				stack = stack[:len(stack)-1]
				parent := stack[len(stack)-1]
				parent.stream = append(parent.stream, &Group{
					Delim:  top.delim,
					Stream: top.stream,
					Open:   top.open,
					Close:  tok.Span,
				})
				top = parent
			default:
				top.stream = append(top.stream, tok)
			}
		}
	}
	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, &LexError{Span: top.open, Message: fmt.Sprintf("unclosed delimiter `%s`", top.delim.Open())}
	}
	return stack[0].stream, nil
}

func delimiterFor(text string) Delimiter {
	switch text {
	case "(", ")":
		return Paren
	case "[", "]":
		return Bracket
	}
	return Brace
}

// next returns the trees for the next lexeme. Doc comments expand to several
// trees. A nil result with nil error means end of input.
func (l *Lexer) next() ([]TokenTree, error) {
	for {
		if !l.skipWhitespace() {
			break
		}
	}
	start := l.Position()
	if l.pos >= len(l.input) {
		return nil, nil
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(start)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(start)
	}

	if r, _ := l.peekRune(2); ch == 'r' && l.peekN(1) == '#' && isIdentStart(r) {
		return one(l.scanRawIdent(start))
	}
	if ch == 'r' && (l.peekN(1) == '"' || (l.peekN(1) == '#' && (l.peekN(2) == '"' || l.peekN(2) == '#'))) {
		l.advance()
		return one(l.scanRawString(start, LitStr))
	}
	if ch == 'b' && l.peekN(1) == 'r' && (l.peekN(2) == '"' || l.peekN(2) == '#') {
		l.advanceN(2)
		return one(l.scanRawString(start, LitByteStr))
	}
	if ch == 'b' && l.peekN(1) == '"' {
		l.advance()
		return one(l.scanString(start, LitByteStr))
	}
	if ch == 'b' && l.peekN(1) == '\'' {
		l.advance()
		return one(l.scanChar(start, LitByte))
	}

	if r, _ := l.peekRune(0); isIdentStart(r) {
		return one(l.scanIdentOrKeyword(start), nil)
	}

	if isDigit(ch) {
		return one(l.scanNumber(start), nil)
	}

	if ch == '\'' {
		return one(l.scanLifetimeOrChar(start))
	}

	if ch == '"' {
		return one(l.scanString(start, LitStr))
	}

	if strings.IndexByte(punctChars, ch) >= 0 || strings.IndexByte("()[]{}", ch) >= 0 {
		l.advance()
		tok := l.token(KindPunct, start)
		if strings.IndexByte(punctChars, ch) >= 0 && strings.IndexByte(punctChars, l.peek()) >= 0 {
			tok.Spacing = Joint
		}
		return one(tok, nil)
	}

	r, _ := l.peekRune(0)
	l.advance()
	return nil, l.errorf(start, "unexpected character %q", r)
}

const punctChars = "+-*/%^!&|=<>@.,;:#$?~"

func one(tok Token, err error) ([]TokenTree, error) {
	if err != nil {
		return nil, err
	}
	return []TokenTree{tok}, nil
}

func (l *Lexer) skipWhitespace() bool {
	start := l.pos
	for {
		r, size := l.peekRune(0)
		if size == 0 || !unicode.IsSpace(r) {
			break
		}
		l.advanceN(size)
	}
	return l.pos > start
}

func (l *Lexer) scanLineComment(start Position) ([]TokenTree, error) {
	l.advanceN(2)
	inner := l.peek() == '!'
	outer := l.peek() == '/' && l.peekN(1) != '/'
	textStart := l.pos
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	if !inner && !outer {
		l.comments = append(l.comments, Span{Start: start, End: l.Position()})
		return l.next()
	}
	text := string(l.input[textStart+1 : l.pos])
	return l.docAttr(start, strings.TrimSuffix(text, "\r"), inner), nil
}

func (l *Lexer) scanBlockComment(start Position) ([]TokenTree, error) {
	l.advanceN(2)
	inner := l.peek() == '!'
	outer := l.peek() == '*' && l.peekN(1) != '*' && l.peekN(1) != '/'
	textStart := l.pos
	depth := 1
	for depth > 0 {
		if l.peek() == 0 {
			return nil, l.errorf(start, "unterminated block comment")
		}
		if l.peek() == '/' && l.peekN(1) == '*' {
			depth++
			l.advanceN(2)
			continue
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			depth--
			l.advanceN(2)
			continue
		}
		l.advance()
	}
	if !inner && !outer {
		l.comments = append(l.comments, Span{Start: start, End: l.Position()})
		return l.next()
	}
	text := string(l.input[textStart+1 : l.pos-2])
	return l.docAttr(start, text, inner), nil
}

func (l *Lexer) docAttr(start Position, text string, inner bool) []TokenTree {
	span := Span{Start: start, End: l.Position()}
	out := []TokenTree{Token{Kind: KindPunct, Text: "#", Span: span}}
	if inner {
		out[0] = Token{Kind: KindPunct, Text: "#", Spacing: Joint, Span: span}
		out = append(out, Token{Kind: KindPunct, Text: "!", Span: span})
	}
	body := Stream{
		Token{Kind: KindIdent, Text: "doc", Span: span},
		Token{Kind: KindPunct, Text: "=", Span: span},
		Token{Kind: KindLiteral, Lit: LitStr, Text: QuoteString(text), Span: span},
	}
	return append(out, &Group{Delim: Bracket, Stream: body, Open: span, Close: span})
}

// QuoteString renders s as a string literal.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for {
		r, size := l.peekRune(0)
		if size == 0 || !isIdentContinue(r) {
			break
		}
		l.advanceN(size)
	}
	tok := l.token(KindIdent, start)
	tok.Kind = LookupKeyword(tok.Text)
	if tok.Text == "_" {
		tok.Kind = KindPunct
	}
	return tok
}

func (l *Lexer) scanRawIdent(start Position) (Token, error) {
	l.advanceN(2)
	tok := l.scanIdentOrKeyword(l.Position())
	switch tok.Text {
	case "self", "super", "crate", "Self", "_":
		return Token{}, l.errorf(start, "`%s` cannot be a raw identifier", tok.Text)
	}
	out := l.token(KindIdent, start)
	return out, nil
}

func (l *Lexer) scanNumber(start Position) Token {
	isFloat := false
	if l.peek() == '0' && strings.IndexByte("xob", l.peekN(1)) >= 0 {
		l.advanceN(2)
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	} else {
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		r, _ := l.peekRune(1)
		if l.peek() == '.' && l.peekN(1) != '.' && !isIdentStart(r) {
			isFloat = true
			l.advance()
			for isDigit(l.peek()) || l.peek() == '_' {
				l.advance()
			}
		}
		if (l.peek() == 'e' || l.peek() == 'E') &&
			(isDigit(l.peekN(1)) || ((l.peekN(1) == '+' || l.peekN(1) == '-') && isDigit(l.peekN(2)))) {
			isFloat = true
			l.advanceN(2)
			for isDigit(l.peek()) || l.peek() == '_' {
				l.advance()
			}
		}
	}
	suffixStart := l.pos
	for {
		r, size := l.peekRune(0)
		if size == 0 || !isIdentContinue(r) {
			break
		}
		l.advanceN(size)
	}
	suffix := string(l.input[suffixStart:l.pos])
	if suffix == "f32" || suffix == "f64" {
		isFloat = true
	}
	tok := l.token(KindLiteral, start)
	tok.Lit = LitInt
	if isFloat {
		tok.Lit = LitFloat
	}
	return tok
}

func (l *Lexer) scanLifetimeOrChar(start Position) (Token, error) {
	r, size := l.peekRune(1)
	if l.peekN(1) != '\\' && isIdentStart(r) && l.peekN(1+size) != '\'' {
		l.advance()
		for {
			r, size := l.peekRune(0)
			if size == 0 || !isIdentContinue(r) {
				break
			}
			l.advanceN(size)
		}
		return l.token(KindLifetime, start), nil
	}
	return l.scanChar(start, LitChar)
}

func (l *Lexer) scanChar(start Position, kind LitKind) (Token, error) {
	l.advance() // opening quote
	for l.peek() != '\'' {
		if l.peek() == 0 || l.peek() == '\n' {
			return Token{}, l.errorf(start, "unterminated character literal")
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	l.advance()
	l.scanSuffix()
	tok := l.token(KindLiteral, start)
	tok.Lit = kind
	return tok, nil
}

func (l *Lexer) scanString(start Position, kind LitKind) (Token, error) {
	l.advance() // opening quote
	for l.peek() != '"' {
		if l.peek() == 0 {
			return Token{}, l.errorf(start, "unterminated string literal")
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	l.advance()
	l.scanSuffix()
	tok := l.token(KindLiteral, start)
	tok.Lit = kind
	return tok, nil
}

func (l *Lexer) scanRawString(start Position, kind LitKind) (Token, error) {
	hashes := 0
	for l.peek() == '#' {
		hashes++
		l.advance()
	}
	if l.peek() != '"' {
		return Token{}, l.errorf(start, "expected `\"` in raw string literal")
	}
	l.advance()
	closing := "\"" + strings.Repeat("#", hashes)
	for {
		if l.peek() == 0 {
			return Token{}, l.errorf(start, "unterminated raw string literal")
		}
		if strings.HasPrefix(string(l.input[l.pos:min(len(l.input), l.pos+len(closing))]), closing) {
			l.advanceN(len(closing))
			break
		}
		l.advance()
	}
	l.scanSuffix()
	tok := l.token(KindLiteral, start)
	tok.Lit = kind
	return tok, nil
}

func (l *Lexer) scanSuffix() {
	if r, _ := l.peekRune(0); !isIdentStart(r) {
		return
	}
	for {
		r, size := l.peekRune(0)
		if size == 0 || !isIdentContinue(r) {
			return
		}
		l.advanceN(size)
	}
}

func (l *Lexer) token(kind Kind, start Position) Token {
	end := l.Position()
	return Token{
		Kind: kind,
		Span: Span{Start: start, End: end},
		Text: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= utf8.RuneSelf && unicode.IsLetter(r))
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || (r >= utf8.RuneSelf && unicode.IsDigit(r))
}
