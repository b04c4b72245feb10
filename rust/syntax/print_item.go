package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

func (b *Block) printTo(p *printer) {
	p.group(tokens.Brace, b.Brace, func() {
		for _, s := range b.Stmts {
			p.node(s)
		}
	})
}

func (s *StmtLocal) printTo(p *printer) {
	printAttrs(p, s.Attrs)
	p.keyword("let", s.Let)
	p.node(s.Pat)
	if s.Type != nil {
		p.punct(":", spanOf(s.Colon))
		p.node(s.Type)
	}
	if s.Init != nil {
		p.punct("=", spanOf(s.Eq))
		p.node(s.Init)
	}
	p.punct(";", s.Semi)
}

func (s *StmtItem) printTo(p *printer) { p.node(s.Item) }

func (s *StmtExpr) printTo(p *printer) {
	printAttrs(p, s.Attrs)
	p.node(s.Expr)
	p.optPunct(";", s.Semi)
}

func (s *StmtEmpty) printTo(p *printer) { p.punct(";", s.Semi) }

func (i *ItemExternCrate) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("extern", i.Extern)
	p.keyword("crate", i.Crate)
	p.node(i.Ident)
	if i.Rename != nil {
		p.keyword("as", i.Rename.As)
		p.node(i.Rename.Ident)
	}
	p.punct(";", i.Semi)
}

func (i *ItemUse) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("use", i.Use)
	p.optPunct("::", i.Leading)
	p.node(i.Tree)
	p.punct(";", i.Semi)
}

func (u *UsePath) printTo(p *printer) {
	p.node(u.Ident)
	p.punct("::", u.Colon2)
	p.node(u.Tree)
}

func (u *UseName) printTo(p *printer) { p.node(u.Ident) }

func (u *UseRename) printTo(p *printer) {
	p.node(u.Ident)
	p.keyword("as", u.As)
	p.node(u.Rename)
}

func (u *UseGlob) printTo(p *printer) { p.punct("*", u.Star) }

func (u *UseGroup) printTo(p *printer) {
	p.group(tokens.Brace, u.Brace, func() {
		printPunctuated(p, u.Items, ",")
	})
}

func (i *ItemStatic) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("static", i.Static)
	p.optKeyword("mut", i.Mut)
	p.node(i.Ident)
	p.punct(":", i.Colon)
	p.node(i.Type)
	p.punct("=", i.Eq)
	p.node(i.Expr)
	p.punct(";", i.Semi)
}

func (i *ItemConst) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	printContextual(p, "default", i.Default)
	p.keyword("const", i.Const)
	p.node(i.Ident)
	p.punct(":", i.Colon)
	p.node(i.Type)
	p.punct("=", i.Eq)
	p.node(i.Expr)
	p.punct(";", i.Semi)
}

// printContextual prints a word such as default or union that is only a
// keyword in some positions.
func printContextual(p *printer, word string, span *Span) {
	if span != nil {
		p.token(tokens.Token{Kind: tokens.KindIdent, Text: word, Span: *span})
	}
}

func (i *ItemFn) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	printContextual(p, "default", i.Default)
	p.node(i.Sig)
	p.node(i.Block)
}

func (s *Signature) printTo(p *printer) {
	p.optKeyword("const", s.Const)
	p.optKeyword("async", s.Async)
	p.optKeyword("unsafe", s.Unsafe)
	p.node(s.Abi)
	p.keyword("fn", s.Fn)
	p.node(s.Ident)
	printGenericParams(p, s.Generics)
	p.group(tokens.Paren, s.Paren, func() {
		printPunctuated(p, s.Inputs, ",")
	})
	p.node(s.Output)
	printWhere(p, s.Generics)
}

func (r *Receiver) printTo(p *printer) {
	p.optPunct("&", r.And)
	if r.Lifetime != nil {
		p.lifetime(*r.Lifetime)
	}
	p.optKeyword("mut", r.Mut)
	p.keyword("self", r.Self)
	if r.Type != nil {
		p.punct(":", spanOf(r.Colon))
		p.node(r.Type)
	}
}

func (i *ItemMod) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("mod", i.Mod)
	p.node(i.Ident)
	if i.Brace == nil {
		p.punct(";", spanOf(i.Semi))
		return
	}
	p.group(tokens.Brace, *i.Brace, func() {
		printAttrs(p, i.InnerAttrs)
		for _, item := range i.Items {
			p.node(item)
		}
	})
}

func (i *ItemForeignMod) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Abi)
	p.group(tokens.Brace, i.Brace, func() {
		for _, item := range i.Items {
			p.node(item)
		}
	})
}

func (i *ForeignItemFn) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.node(i.Sig)
	p.punct(";", i.Semi)
}

func (i *ForeignItemStatic) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("static", i.Static)
	p.optKeyword("mut", i.Mut)
	p.node(i.Ident)
	p.punct(":", i.Colon)
	p.node(i.Type)
	p.punct(";", i.Semi)
}

func (i *ForeignItemType) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("type", i.Type)
	p.node(i.Ident)
	p.punct(";", i.Semi)
}

func (i *ItemType) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	printContextual(p, "default", i.Default)
	p.keyword("type", i.Type)
	p.node(i.Ident)
	printGenericParams(p, i.Generics)
	printWhere(p, i.Generics)
	p.punct("=", i.Eq)
	p.node(i.Ty)
	p.punct(";", i.Semi)
}

func (f *FieldsNamed) printTo(p *printer) {
	p.group(tokens.Brace, f.Brace, func() {
		printPunctuated(p, f.Named, ",")
	})
}

func (f *FieldsUnnamed) printTo(p *printer) {
	p.group(tokens.Paren, f.Paren, func() {
		printPunctuated(p, f.Unnamed, ",")
	})
}

func (f *Field) printTo(p *printer) {
	printAttrs(p, f.Attrs)
	p.node(f.Vis)
	if f.Ident != nil {
		p.node(*f.Ident)
		p.punct(":", spanOf(f.Colon))
	}
	p.node(f.Type)
}

func (i *ItemStruct) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("struct", i.Struct)
	p.node(i.Ident)
	printGenericParams(p, i.Generics)
	switch fields := i.Fields.(type) {
	case *FieldsNamed:
		printWhere(p, i.Generics)
		p.node(fields)
	case *FieldsUnnamed:
		p.node(fields)
		printWhere(p, i.Generics)
		p.punct(";", spanOf(i.Semi))
	default:
		printWhere(p, i.Generics)
		p.punct(";", spanOf(i.Semi))
	}
}

func (i *ItemEnum) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.keyword("enum", i.Enum)
	p.node(i.Ident)
	printGenericParams(p, i.Generics)
	printWhere(p, i.Generics)
	p.group(tokens.Brace, i.Brace, func() {
		printPunctuated(p, i.Variants, ",")
	})
}

func (v *Variant) printTo(p *printer) {
	printAttrs(p, v.Attrs)
	p.node(v.Ident)
	p.node(v.Fields)
	if v.Discriminant != nil {
		p.punct("=", spanOf(v.Eq))
		p.node(v.Discriminant)
	}
}

func (i *ItemUnion) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	printContextual(p, "union", &i.Union)
	p.node(i.Ident)
	printGenericParams(p, i.Generics)
	printWhere(p, i.Generics)
	p.node(i.Fields)
}

func (i *ItemTrait) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	p.node(i.Vis)
	p.optKeyword("unsafe", i.Unsafe)
	printContextual(p, "auto", i.Auto)
	p.keyword("trait", i.Trait)
	p.node(i.Ident)
	printGenericParams(p, i.Generics)
	if i.Colon != nil || !i.Supertraits.IsEmpty() {
		p.punct(":", spanOf(i.Colon))
		printPunctuated(p, i.Supertraits, "+")
	}
	printWhere(p, i.Generics)
	p.group(tokens.Brace, i.Brace, func() {
		for _, item := range i.Items {
			p.node(item)
		}
	})
}

func (t *TraitItemConst) printTo(p *printer) {
	printAttrs(p, t.Attrs)
	p.keyword("const", t.Const)
	p.node(t.Ident)
	p.punct(":", t.Colon)
	p.node(t.Type)
	if t.Default != nil {
		p.punct("=", spanOf(t.Eq))
		p.node(t.Default)
	}
	p.punct(";", t.Semi)
}

func (t *TraitItemFn) printTo(p *printer) {
	printAttrs(p, t.Attrs)
	p.node(t.Sig)
	if t.Default != nil {
		p.node(t.Default)
		return
	}
	p.punct(";", spanOf(t.Semi))
}

func (t *TraitItemType) printTo(p *printer) {
	printAttrs(p, t.Attrs)
	p.keyword("type", t.Type)
	p.node(t.Ident)
	printGenericParams(p, t.Generics)
	if t.Colon != nil || !t.Bounds.IsEmpty() {
		p.punct(":", spanOf(t.Colon))
		printPunctuated(p, t.Bounds, "+")
	}
	printWhere(p, t.Generics)
	if t.Default != nil {
		p.punct("=", spanOf(t.Eq))
		p.node(t.Default)
	}
	p.punct(";", t.Semi)
}

func (t *TraitItemMacro) printTo(p *printer) {
	printAttrs(p, t.Attrs)
	p.node(t.Mac)
	p.optPunct(";", t.Semi)
}

func (i *ItemImpl) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	printContextual(p, "default", i.Default)
	p.optKeyword("unsafe", i.Unsafe)
	p.keyword("impl", i.Impl)
	printGenericParams(p, i.Generics)
	if i.Trait != nil {
		p.optPunct("!", i.Trait.Bang)
		p.node(i.Trait.Path)
		p.keyword("for", i.Trait.For)
	}
	p.node(i.SelfTy)
	printWhere(p, i.Generics)
	p.group(tokens.Brace, i.Brace, func() {
		for _, item := range i.Items {
			p.node(item)
		}
	})
}

func (i *ItemMacro) printTo(p *printer) {
	printAttrs(p, i.Attrs)
	if i.Ident == nil {
		p.node(i.Mac)
		p.optPunct(";", i.Semi)
		return
	}
	p.node(i.Mac.Path)
	p.punct("!", i.Mac.Bang)
	p.node(*i.Ident)
	p.group(i.Mac.Delim.Delim, i.Mac.Delim, func() {
		p.stream(i.Mac.Tokens)
	})
	p.optPunct(";", i.Semi)
}
