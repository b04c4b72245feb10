// Package tokens lexes Rust source into token trees: identifiers, keywords,
// lifetimes, literals and single-character punctuation, with (), [] and {}
// groups already matched.
package tokens

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before q in the same file.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

type Span struct {
	Start Position
	End   Position
}

func (s Span) IsZero() bool {
	return s.Start.Line == 0 && s.End.Line == 0
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// Join returns the smallest span covering s and o. Zero spans are ignored.
func (s Span) Join(o Span) Span {
	if s.IsZero() {
		return o
	}
	if o.IsZero() {
		return s
	}
	out := s
	if o.Start.Before(out.Start) {
		out.Start = o.Start
	}
	if out.End.Before(o.End) {
		out.End = o.End
	}
	return out
}

type Kind int

const (
	KindIdent Kind = iota
	KindKeyword
	KindLifetime
	KindLiteral
	KindPunct
)

var kindNames = map[Kind]string{
	KindIdent:    "Ident",
	KindKeyword:  "Keyword",
	KindLifetime: "Lifetime",
	KindLiteral:  "Literal",
	KindPunct:    "Punct",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type LitKind int

const (
	LitNone LitKind = iota
	LitInt
	LitFloat
	LitStr
	LitByteStr
	LitChar
	LitByte
)

var litKindNames = map[LitKind]string{
	LitNone:    "None",
	LitInt:     "Int",
	LitFloat:   "Float",
	LitStr:     "Str",
	LitByteStr: "ByteStr",
	LitChar:    "Char",
	LitByte:    "Byte",
}

func (k LitKind) String() string {
	if name, ok := litKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Spacing tells whether a punctuation character is immediately followed by
// another punctuation character, forming a multi-character operator.
type Spacing int

const (
	Alone Spacing = iota
	Joint
)

type Delimiter int

const (
	Paren Delimiter = iota
	Bracket
	Brace
)

var delimiters = map[Delimiter][2]string{
	Paren:   {"(", ")"},
	Bracket: {"[", "]"},
	Brace:   {"{", "}"},
}

func (d Delimiter) Open() string  { return delimiters[d][0] }
func (d Delimiter) Close() string { return delimiters[d][1] }

func (d Delimiter) String() string {
	return d.Open() + d.Close()
}

// TokenTree is either a Token or a *Group.
type TokenTree interface {
	TreeSpan() Span
	isTokenTree()
}

// Token is a leaf of the token tree. Punctuation tokens always hold a single
// character; operators such as "->" are consecutive Joint tokens.
type Token struct {
	Kind    Kind
	Text    string
	Lit     LitKind
	Spacing Spacing
	Span    Span
}

func (t Token) TreeSpan() Span { return t.Span }
func (Token) isTokenTree()     {}

func (t Token) String() string {
	return t.Text
}

// Is reports whether t is a keyword, identifier or punctuation with the given text.
func (t Token) Is(text string) bool {
	return t.Text == text && t.Kind != KindLiteral
}

type Group struct {
	Delim  Delimiter
	Stream Stream
	Open   Span
	Close  Span
}

func (g *Group) TreeSpan() Span { return g.Open.Join(g.Close) }
func (*Group) isTokenTree()     {}

type Stream []TokenTree

// Span covers every tree in the stream.
func (s Stream) Span() Span {
	if len(s) == 0 {
		return Span{}
	}
	return s[0].TreeSpan().Join(s[len(s)-1].TreeSpan())
}

// Len counts leaf tokens plus two per group, matching the number of tokens a
// renderer emits for the stream.
func (s Stream) Len() int {
	n := 0
	for _, tt := range s {
		if g, ok := tt.(*Group); ok {
			n += 2 + g.Stream.Len()
			continue
		}
		n++
	}
	return n
}

func Ident(text string) Token {
	return Token{Kind: LookupKeyword(text), Text: text}
}

// Punct returns the tokens spelling op, each carrying span.
func Punct(op string, span Span) []Token {
	out := make([]Token, len(op))
	for i := 0; i < len(op); i++ {
		spacing := Joint
		if i == len(op)-1 {
			spacing = Alone
		}
		out[i] = Token{Kind: KindPunct, Text: op[i : i+1], Spacing: spacing, Span: span}
	}
	return out
}

var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true,
	"try": true,
}

func IsKeyword(ident string) bool {
	return keywords[ident]
}

func LookupKeyword(ident string) Kind {
	if keywords[ident] {
		return KindKeyword
	}
	return KindIdent
}
