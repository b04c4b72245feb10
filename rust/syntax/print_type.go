package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

func spanOf(s *Span) Span {
	if s == nil {
		return Span{}
	}
	return *s
}

func (path *Path) printTo(p *printer) {
	p.optPunct("::", path.Leading)
	printPunctuated(p, path.Segments, "::")
}

// printQPath prints <T as Trait>::rest. The first qself.Position segments of
// path belong inside the angle brackets.
func printQPath(p *printer, qself *QSelf, path *Path) {
	if qself == nil {
		p.node(path)
		return
	}
	pairs := path.Segments.pairs
	pos := qself.Position
	p.punct("<", qself.Lt)
	p.node(qself.Type)
	if qself.As != nil {
		p.keyword("as", *qself.As)
		p.optPunct("::", path.Leading)
		for i := 0; i < pos; i++ {
			p.node(pairs[i].Value)
			if i < pos-1 {
				p.punct("::", spanOf(pairs[i].Punct))
			}
		}
	}
	p.punct(">", qself.Gt)
	if pos > 0 {
		p.punct("::", spanOf(pairs[pos-1].Punct))
	} else {
		p.punct("::", spanOf(path.Leading))
	}
	for i := pos; i < len(pairs); i++ {
		p.node(pairs[i].Value)
		if i < len(pairs)-1 {
			p.punct("::", spanOf(pairs[i].Punct))
		}
	}
}

func (s *PathSegment) printTo(p *printer) {
	p.node(s.Ident)
	p.node(s.Args)
}

func (a *AngleBracketedArgs) printTo(p *printer) {
	p.optPunct("::", a.Colon2)
	p.punct("<", a.Lt)
	printPunctuated(p, a.Args, ",")
	p.punct(">", a.Gt)
}

func (a *ParenthesizedArgs) printTo(p *printer) {
	p.group(tokens.Paren, a.Paren, func() {
		printPunctuated(p, a.Inputs, ",")
	})
	p.node(a.Output)
}

func (a *LifetimeArg) printTo(p *printer) { p.lifetime(a.Lifetime) }
func (a *TypeArg) printTo(p *printer)     { p.node(a.Type) }
func (a *ConstArg) printTo(p *printer)    { p.node(a.Expr) }

func (a *BindingArg) printTo(p *printer) {
	p.node(a.Ident)
	p.node(a.Generics)
	p.punct("=", a.Eq)
	p.node(a.Type)
}

func (a *ConstraintArg) printTo(p *printer) {
	p.node(a.Ident)
	p.punct(":", a.Colon)
	printPunctuated(p, a.Bounds, "+")
}

// printGenericParams prints <params> without the where clause.
func printGenericParams(p *printer, g *Generics) {
	if g == nil || g.Lt == nil {
		return
	}
	p.punct("<", *g.Lt)
	printPunctuated(p, g.Params, ",")
	p.punct(">", spanOf(g.Gt))
}

func printWhere(p *printer, g *Generics) {
	if g != nil {
		p.node(g.Where)
	}
}

func (g *Generics) printTo(p *printer) {
	printGenericParams(p, g)
	printWhere(p, g)
}

func (lp *LifetimeParam) printTo(p *printer) {
	printAttrs(p, lp.Attrs)
	p.lifetime(lp.Lifetime)
	p.optPunct(":", lp.Colon)
	printPunctuated(p, lp.Bounds, "+")
}

func (tp *TypeParam) printTo(p *printer) {
	printAttrs(p, tp.Attrs)
	p.node(tp.Ident)
	p.optPunct(":", tp.Colon)
	printPunctuated(p, tp.Bounds, "+")
	if tp.Default != nil {
		p.punct("=", spanOf(tp.Eq))
		p.node(tp.Default)
	}
}

func (cp *ConstParam) printTo(p *printer) {
	printAttrs(p, cp.Attrs)
	p.keyword("const", cp.Const)
	p.node(cp.Ident)
	p.punct(":", cp.Colon)
	p.node(cp.Type)
	if cp.Default != nil {
		p.punct("=", spanOf(cp.Eq))
		p.node(cp.Default)
	}
}

func (b *TraitBound) printTo(p *printer) {
	inner := func() {
		p.optPunct("?", b.Maybe)
		p.node(b.Lifetimes)
		p.node(b.Path)
	}
	if b.Paren != nil {
		p.group(tokens.Paren, *b.Paren, inner)
		return
	}
	inner()
}

func (b *LifetimeBound) printTo(p *printer) { p.lifetime(b.Lifetime) }

func (bl *BoundLifetimes) printTo(p *printer) {
	p.keyword("for", bl.For)
	p.punct("<", bl.Lt)
	printPunctuated(p, bl.Lifetimes, ",")
	p.punct(">", bl.Gt)
}

func (w *WhereClause) printTo(p *printer) {
	p.keyword("where", w.Where)
	printPunctuated(p, w.Predicates, ",")
}

func (pt *PredicateType) printTo(p *printer) {
	p.node(pt.Lifetimes)
	p.node(pt.Bounded)
	p.punct(":", pt.Colon)
	printPunctuated(p, pt.Bounds, "+")
}

func (pl *PredicateLifetime) printTo(p *printer) {
	p.lifetime(pl.Lifetime)
	p.punct(":", pl.Colon)
	printPunctuated(p, pl.Bounds, "+")
}

func (t *TypePath) printTo(p *printer) { printQPath(p, t.QSelf, t.Path) }

func (t *TypeReference) printTo(p *printer) {
	p.punct("&", t.And)
	if t.Lifetime != nil {
		p.lifetime(*t.Lifetime)
	}
	p.optKeyword("mut", t.Mut)
	p.node(t.Elem)
}

func (t *TypePtr) printTo(p *printer) {
	p.punct("*", t.Star)
	if t.Mut != nil {
		p.keyword("mut", *t.Mut)
	} else {
		p.keyword("const", spanOf(t.Const))
	}
	p.node(t.Elem)
}

func (t *TypeSlice) printTo(p *printer) {
	p.group(tokens.Bracket, t.Bracket, func() {
		p.node(t.Elem)
	})
}

func (t *TypeArray) printTo(p *printer) {
	p.group(tokens.Bracket, t.Bracket, func() {
		p.node(t.Elem)
		p.punct(";", t.Semi)
		p.node(t.Len)
	})
}

func (t *TypeTuple) printTo(p *printer) {
	p.group(tokens.Paren, t.Paren, func() {
		printPunctuated(p, t.Elems, ",")
		// (T,) needs its comma to stay a tuple.
		if t.Elems.Len() == 1 && !t.Elems.Trailing() {
			p.punct(",", Span{})
		}
	})
}

func (t *TypeParen) printTo(p *printer) {
	p.group(tokens.Paren, t.Paren, func() {
		p.node(t.Elem)
	})
}

func (t *TypeNever) printTo(p *printer) { p.punct("!", t.Bang) }
func (t *TypeInfer) printTo(p *printer) { p.punct("_", t.Underscore) }

func (t *TypeBareFn) printTo(p *printer) {
	p.node(t.Lifetimes)
	p.optKeyword("unsafe", t.Unsafe)
	p.node(t.Abi)
	p.keyword("fn", t.Fn)
	p.group(tokens.Paren, t.Paren, func() {
		printPunctuated(p, t.Inputs, ",")
	})
	p.node(t.Output)
}

func (a *BareFnArg) printTo(p *printer) {
	if a.Name != nil {
		p.node(*a.Name)
		p.punct(":", spanOf(a.Colon))
	}
	p.node(a.Type)
}

func (t *TypeTraitObject) printTo(p *printer) {
	p.optKeyword("dyn", t.Dyn)
	printPunctuated(p, t.Bounds, "+")
}

func (t *TypeImplTrait) printTo(p *printer) {
	p.keyword("impl", t.Impl)
	printPunctuated(p, t.Bounds, "+")
}

func (t *TypeMacro) printTo(p *printer) { p.node(t.Mac) }
