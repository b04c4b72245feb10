package syntax

import (
	"reflect"

	"github.com/dhamidi/rsyn/rust/tokens"
)

// Print renders a syntax tree back to tokens. Parsing the result with the
// matching rule yields a tree equal to n, spans aside.
func Print(n Node) tokens.Stream {
	p := &printer{}
	p.node(n)
	return p.out
}

// printer accumulates tokens. Groups are built by swapping out the current
// stream while their contents are printed.
type printer struct {
	out tokens.Stream
}

func (p *printer) token(tok tokens.Token) {
	p.out = append(p.out, tok)
}

func (p *printer) ident(name string, span Span) {
	if name == "_" {
		p.punct("_", span)
		return
	}
	p.token(tokens.Token{Kind: tokens.LookupKeyword(name), Text: name, Span: span})
}

func (p *printer) keyword(kw string, span Span) {
	p.token(tokens.Token{Kind: tokens.KindKeyword, Text: kw, Span: span})
}

func (p *printer) optKeyword(kw string, span *Span) {
	if span != nil {
		p.keyword(kw, *span)
	}
}

func (p *printer) punct(op string, span Span) {
	for _, tok := range tokens.Punct(op, span) {
		p.token(tok)
	}
}

func (p *printer) optPunct(op string, span *Span) {
	if span != nil {
		p.punct(op, *span)
	}
}

func (p *printer) lifetime(lt Lifetime) {
	p.token(tokens.Token{Kind: tokens.KindLifetime, Text: "'" + lt.Name, Span: lt.Span})
}

func (p *printer) stream(s tokens.Stream) {
	p.out = append(p.out, s...)
}

func (p *printer) group(delim tokens.Delimiter, span DelimSpan, body func()) {
	saved := p.out
	p.out = nil
	body()
	g := &tokens.Group{Delim: delim, Stream: p.out, Open: span.Open, Close: span.Close}
	p.out = append(saved, g)
}

// node prints n unless it is nil or a typed nil pointer.
func (p *printer) node(n Node) {
	if isNil(n) {
		return
	}
	n.printTo(p)
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func printPunctuated[T Node](p *printer, list Punctuated[T], sep string) {
	for _, pair := range list.pairs {
		p.node(pair.Value)
		if pair.Punct != nil {
			p.punct(sep, *pair.Punct)
		}
	}
}

func (i Ident) printTo(p *printer) {
	p.ident(i.Name, i.Span)
}

func (l Lifetime) printTo(p *printer) {
	p.lifetime(l)
}

func (l *Lit) printTo(p *printer) {
	if l.Kind == LitBool {
		p.keyword(l.Text, l.Span)
		return
	}
	p.token(tokens.Token{Kind: tokens.KindLiteral, Lit: l.tokenKind(), Text: l.Text, Span: l.Span})
}

func (a *Attribute) printTo(p *printer) {
	p.punct("#", a.Pound)
	p.optPunct("!", a.Inner)
	p.group(tokens.Bracket, a.Bracket, func() {
		p.node(a.Path)
		p.stream(a.Tokens)
	})
}

func printAttrs(p *printer, attrs []*Attribute) {
	for _, a := range attrs {
		p.node(a)
	}
}

func (v Visibility) printTo(p *printer) {
	switch v.Kind {
	case VisPublic:
		p.keyword("pub", v.Pub)
	case VisCrate:
		p.keyword("crate", v.Crate)
	case VisRestricted:
		p.keyword("pub", v.Pub)
		p.group(tokens.Paren, v.Paren, func() {
			p.optKeyword("in", v.In)
			p.node(v.Path)
		})
	}
}

func (l *Label) printTo(p *printer) {
	p.lifetime(l.Name)
	p.punct(":", l.Colon)
}

func (m Member) printTo(p *printer) {
	if m.Unnamed {
		p.token(tokens.Token{Kind: tokens.KindLiteral, Lit: tokens.LitInt, Text: m.Name, Span: m.Span})
		return
	}
	p.ident(m.Name, m.Span)
}

func (m *Macro) printTo(p *printer) {
	p.node(m.Path)
	p.punct("!", m.Bang)
	p.group(m.Delim.Delim, m.Delim, func() {
		p.stream(m.Tokens)
	})
}

func (a *Abi) printTo(p *printer) {
	p.keyword("extern", a.Extern)
	p.node(a.Name)
}

func (r *ReturnType) printTo(p *printer) {
	p.punct("->", r.Arrow)
	p.node(r.Type)
}

func (f *File) printTo(p *printer) {
	printAttrs(p, f.Attrs)
	for _, item := range f.Items {
		p.node(item)
	}
}
