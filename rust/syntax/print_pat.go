package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

func (pt *PatWild) printTo(p *printer) { p.punct("_", pt.Underscore) }

func (pt *PatIdent) printTo(p *printer) {
	p.optKeyword("ref", pt.ByRef)
	p.optKeyword("mut", pt.Mut)
	p.node(pt.Ident)
	if pt.Subpat != nil {
		p.punct("@", spanOf(pt.At))
		p.node(pt.Subpat)
	}
}

func (pt *PatPath) printTo(p *printer) { printQPath(p, pt.QSelf, pt.Path) }

func (pt *PatTupleStruct) printTo(p *printer) {
	p.node(pt.Path)
	p.group(tokens.Paren, pt.Paren, func() {
		printPunctuated(p, pt.Elems, ",")
	})
}

func (pt *PatStruct) printTo(p *printer) {
	p.node(pt.Path)
	p.group(tokens.Brace, pt.Brace, func() {
		printPunctuated(p, pt.Fields, ",")
		if pt.Rest != nil {
			if !pt.Fields.IsEmpty() && !pt.Fields.Trailing() {
				p.punct(",", Span{})
			}
			p.punct("..", *pt.Rest)
		}
	})
}

func (f *FieldPat) printTo(p *printer) {
	printAttrs(p, f.Attrs)
	if f.Colon == nil {
		p.node(f.Pat)
		return
	}
	p.node(f.Member)
	p.punct(":", *f.Colon)
	p.node(f.Pat)
}

func (pt *PatTuple) printTo(p *printer) {
	p.group(tokens.Paren, pt.Paren, func() {
		printPunctuated(p, pt.Elems, ",")
	})
}

func (pt *PatReference) printTo(p *printer) {
	p.punct("&", pt.And)
	p.optKeyword("mut", pt.Mut)
	p.node(pt.Pat)
}

func (pt *PatLit) printTo(p *printer) { p.node(pt.Expr) }

func (pt *PatRange) printTo(p *printer) {
	p.node(pt.Lo)
	p.punct(pt.Limits.String(), pt.Limits.Span)
	p.node(pt.Hi)
}

func (pt *PatSlice) printTo(p *printer) {
	p.group(tokens.Bracket, pt.Bracket, func() {
		printPunctuated(p, pt.Elems, ",")
	})
}

func (pt *PatRest) printTo(p *printer) { p.punct("..", pt.Dot2) }

func (pt *PatOr) printTo(p *printer) {
	p.optPunct("|", pt.Leading)
	printPunctuated(p, pt.Cases, "|")
}

func (pt *PatType) printTo(p *printer) {
	p.node(pt.Pat)
	p.punct(":", pt.Colon)
	p.node(pt.Type)
}

func (pt *PatMacro) printTo(p *printer) { p.node(pt.Mac) }
