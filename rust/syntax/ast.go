package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

type Span = tokens.Span

// Node is any syntax tree value. Every node prints back to tokens.
type Node interface {
	printTo(p *printer)
}

type Ident struct {
	Name string
	Span Span
}

func NewIdent(name string) Ident {
	return Ident{Name: name}
}

func (i Ident) String() string { return i.Name }

type Lifetime struct {
	// Name without the leading quote.
	Name string
	Span Span
}

func (l Lifetime) String() string { return "'" + l.Name }

// DelimSpan holds the spans of a pair of delimiters.
type DelimSpan struct {
	Delim tokens.Delimiter
	Open  Span
	Close Span
}

func (d DelimSpan) Join() Span { return d.Open.Join(d.Close) }

// Attribute is #[path tokens] or, when Inner is set, #![path tokens].
type Attribute struct {
	Pound   Span
	Inner   *Span
	Bracket DelimSpan
	Path    *Path
	Tokens  tokens.Stream
}

type VisKind int

const (
	VisInherited VisKind = iota
	VisPublic
	VisCrate
	VisRestricted
)

// Visibility is pub, pub(crate), pub(self), pub(super), pub(in path), crate,
// or nothing.
type Visibility struct {
	Kind  VisKind
	Pub   Span
	Crate Span
	Paren DelimSpan
	In    *Span
	Path  *Path
}

// Label is 'name: in front of a loop or block.
type Label struct {
	Name  Lifetime
	Colon Span
}

// Member names a struct field or tuple index.
type Member struct {
	Name    string
	Span    Span
	Unnamed bool
}

// Macro is an invocation path!(tokens) with any delimiter.
type Macro struct {
	Path   *Path
	Bang   Span
	Delim  DelimSpan
	Tokens tokens.Stream
}

type Abi struct {
	Extern Span
	Name   *Lit
}

type ReturnType struct {
	Arrow Span
	Type  Type
}

// File is a whole source file.
type File struct {
	Attrs []*Attribute
	Items []Item
}
