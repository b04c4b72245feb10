package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

func parseFile(in *Input) (*File, error) {
	attrs, err := parseInnerAttrs(in)
	if err != nil {
		return nil, err
	}
	items, err := parseItems(in)
	if err != nil {
		return nil, err
	}
	return &File{Attrs: attrs, Items: items}, nil
}

func parseItems(in *Input) ([]Item, error) {
	var items []Item
	for !in.IsEmpty() {
		item, err := parseItem(in)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func isFnStart(c Cursor) bool {
	in := newInput(c)
	in.OptKeyword("const")
	in.OptKeyword("async")
	in.OptKeyword("unsafe")
	if in.Peek(isKeyword("extern")) {
		in.OptKeyword("extern")
		if in.Peek(isLiteral) {
			in.cur = in.cur.bump()
		}
	}
	return in.Peek(isKeyword("fn"))
}

func parseItem(in *Input) (Item, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	if in.Peek(isContextual("macro_rules")) && in.Peek2(isPunct("!")) {
		return parseMacroRules(in, attrs)
	}
	vis, err := parseVisibility(in)
	if err != nil {
		return nil, err
	}

	switch {
	case in.Peek(isKeyword("extern")) && in.Peek2(isKeyword("crate")):
		return parseExternCrate(in, attrs, vis)
	case in.Peek(isKeyword("extern")) && (in.Peek2(isGroup(tokens.Brace)) || in.Peek3(isGroup(tokens.Brace))):
		return parseForeignMod(in, attrs)
	case in.Peek(isFnStart):
		sig, err := parseSignature(in)
		if err != nil {
			return nil, err
		}
		block, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ItemFn{Attrs: attrs, Vis: vis, Sig: sig, Block: block}, nil
	case in.Peek(isKeyword("use")):
		return parseUse(in, attrs, vis)
	case in.Peek(isKeyword("static")):
		return parseStatic(in, attrs, vis)
	case in.Peek(isKeyword("const")):
		return parseConst(in, attrs, vis, nil)
	case in.Peek(isKeyword("mod")):
		return parseMod(in, attrs, vis)
	case in.Peek(isKeyword("type")):
		return parseTypeAlias(in, attrs, vis, nil)
	case in.Peek(isKeyword("struct")):
		return parseStruct(in, attrs, vis)
	case in.Peek(isKeyword("enum")):
		return parseEnum(in, attrs, vis)
	case in.Peek(isContextual("union")) && in.Peek2(isIdent):
		return parseUnion(in, attrs, vis)
	case in.Peek(isKeyword("trait")),
		in.Peek(isContextual("auto")) && in.Peek2(isKeyword("trait")),
		in.Peek(isKeyword("unsafe")) && (in.Peek2(isKeyword("trait")) || in.Peek2(isContextual("auto"))):
		return parseTrait(in, attrs, vis)
	case in.Peek(isKeyword("impl")),
		in.Peek(isKeyword("unsafe")) && in.Peek2(isKeyword("impl")),
		in.Peek(isContextual("default")) && (in.Peek2(isKeyword("impl")) || in.Peek2(isKeyword("unsafe"))):
		if vis.Kind != VisInherited {
			return nil, in.Errorf(vis.Pub, "visibility is not allowed on impl blocks")
		}
		return parseImpl(in, attrs)
	case vis.Kind == VisInherited && in.Peek(isPathStart):
		return parseItemMacro(in, attrs)
	}
	return nil, in.Error("item")
}

func parseExternCrate(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemExternCrate{Attrs: attrs, Vis: vis}
	item.Extern, _ = in.Keyword("extern")
	item.Crate, _ = in.Keyword("crate")
	var err error
	if in.Peek(isKeyword("self")) {
		span, _ := in.Keyword("self")
		item.Ident = Ident{Name: "self", Span: span}
	} else if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if as := in.OptKeyword("as"); as != nil {
		rename, err := parseIdentOrUnderscore(in)
		if err != nil {
			return nil, err
		}
		item.Rename = &Rename{As: *as, Ident: rename}
	}
	if item.Semi, err = in.Punct(";"); err != nil {
		return nil, err
	}
	return item, nil
}

func parseIdentOrUnderscore(in *Input) (Ident, error) {
	if in.Peek(isPunct("_")) {
		span, _ := in.Punct("_")
		return Ident{Name: "_", Span: span}, nil
	}
	return parseIdent(in)
}

func parseUse(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemUse{Attrs: attrs, Vis: vis}
	item.Use, _ = in.Keyword("use")
	item.Leading = in.OptPunct("::")
	var err error
	if item.Tree, err = parseUseTree(in); err != nil {
		return nil, err
	}
	if item.Semi, err = in.Punct(";"); err != nil {
		return nil, err
	}
	return item, nil
}

func parseUseTree(in *Input) (UseTree, error) {
	switch {
	case in.Peek(isPunct("*")):
		star, _ := in.Punct("*")
		return &UseGlob{Star: star}, nil
	case in.Peek(isGroup(tokens.Brace)):
		items, brace, err := Delimited(in, tokens.Brace, func(in *Input) (Punctuated[UseTree], error) {
			return ParseTerminated(in, parseUseTree, ",", ListOptions{})
		})
		if err != nil {
			return nil, err
		}
		return &UseGroup{Brace: brace, Items: items}, nil
	}
	ident, err := parsePathSegmentIdent(in)
	if err != nil {
		return nil, in.Error("identifier, `*` or `{`")
	}
	if in.Peek(isPunctExact("::")) {
		colon2, _ := in.Punct("::")
		tree, err := parseUseTree(in)
		if err != nil {
			return nil, err
		}
		return &UsePath{Ident: ident, Colon2: colon2, Tree: tree}, nil
	}
	if as := in.OptKeyword("as"); as != nil {
		rename, err := parseIdentOrUnderscore(in)
		if err != nil {
			return nil, err
		}
		return &UseRename{Ident: ident, As: *as, Rename: rename}, nil
	}
	return &UseName{Ident: ident}, nil
}

func parseStatic(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemStatic{Attrs: attrs, Vis: vis}
	item.Static, _ = in.Keyword("static")
	item.Mut = in.OptKeyword("mut")
	var err error
	if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if item.Colon, err = in.Punct(":"); err != nil {
		return nil, err
	}
	if item.Type, err = parseType(in, true); err != nil {
		return nil, err
	}
	if item.Eq, err = in.Punct("="); err != nil {
		return nil, err
	}
	if item.Expr, err = parseExprAny(in); err != nil {
		return nil, err
	}
	if item.Semi, err = in.Punct(";"); err != nil {
		return nil, err
	}
	return item, nil
}

func parseConst(in *Input, attrs []*Attribute, vis Visibility, def *Span) (*ItemConst, error) {
	item := &ItemConst{Attrs: attrs, Vis: vis, Default: def}
	var err error
	if item.Const, err = in.Keyword("const"); err != nil {
		return nil, err
	}
	if item.Ident, err = parseIdentOrUnderscore(in); err != nil {
		return nil, err
	}
	if item.Colon, err = in.Punct(":"); err != nil {
		return nil, err
	}
	if item.Type, err = parseType(in, true); err != nil {
		return nil, err
	}
	if item.Eq, err = in.Punct("="); err != nil {
		return nil, err
	}
	if item.Expr, err = parseExprAny(in); err != nil {
		return nil, err
	}
	if item.Semi, err = in.Punct(";"); err != nil {
		return nil, err
	}
	return item, nil
}

func parseSignature(in *Input) (*Signature, error) {
	sig := &Signature{
		Const:  in.OptKeyword("const"),
		Async:  in.OptKeyword("async"),
		Unsafe: in.OptKeyword("unsafe"),
	}
	var err error
	if in.Peek(isKeyword("extern")) {
		if sig.Abi, err = parseAbi(in); err != nil {
			return nil, err
		}
	}
	if sig.Fn, err = in.Keyword("fn"); err != nil {
		return nil, err
	}
	if sig.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if sig.Generics, err = parseGenerics(in); err != nil {
		return nil, err
	}
	sig.Inputs, sig.Paren, err = Delimited(in, tokens.Paren, func(in *Input) (Punctuated[FnArg], error) {
		return ParseTerminated(in, parseFnArg, ",", ListOptions{})
	})
	if err != nil {
		return nil, err
	}
	if sig.Output, err = parseReturnType(in, true); err != nil {
		return nil, err
	}
	if err := parseWhereClause(in, sig.Generics); err != nil {
		return nil, err
	}
	return sig, nil
}

func isReceiver(c Cursor) bool {
	in := newInput(c)
	if in.OptPunct("&") != nil {
		if in.Peek(isLifetime) {
			in.cur = in.cur.bump()
		}
	}
	in.OptKeyword("mut")
	if !in.Peek(isKeyword("self")) {
		return false
	}
	in.OptKeyword("self")
	return !in.Peek(isPunctExact("::"))
}

func parseFnArg(in *Input) (FnArg, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		return nil, in.Errorf(attrs[0].Pound, "attributes on function parameters are not supported")
	}
	if !in.Peek(isReceiver) {
		return parsePatType(in)
	}
	r := &Receiver{}
	if and := in.OptPunct("&"); and != nil {
		r.And = and
		if in.Peek(isLifetime) {
			lt, _ := in.Lifetime()
			r.Lifetime = &lt
		}
	}
	r.Mut = in.OptKeyword("mut")
	r.Self, _ = in.Keyword("self")
	if r.And == nil {
		if colon := in.OptPunct(":"); colon != nil {
			r.Colon = colon
			if r.Type, err = parseType(in, true); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func parseMod(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemMod{Attrs: attrs, Vis: vis}
	item.Mod, _ = in.Keyword("mod")
	var err error
	if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if semi := in.OptPunct(";"); semi != nil {
		item.Semi = semi
		return item, nil
	}
	type body struct {
		attrs []*Attribute
		items []Item
	}
	b, brace, err := Delimited(in, tokens.Brace, func(in *Input) (body, error) {
		attrs, err := parseInnerAttrs(in)
		if err != nil {
			return body{}, err
		}
		items, err := parseItems(in)
		return body{attrs: attrs, items: items}, err
	})
	if err != nil {
		return nil, err
	}
	item.Brace = &brace
	item.InnerAttrs = b.attrs
	item.Items = b.items
	return item, nil
}

func parseForeignMod(in *Input, attrs []*Attribute) (Item, error) {
	abi, err := parseAbi(in)
	if err != nil {
		return nil, err
	}
	items, brace, err := Delimited(in, tokens.Brace, func(in *Input) ([]Item, error) {
		var items []Item
		for !in.IsEmpty() {
			item, err := parseForeignItem(in)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &ItemForeignMod{Attrs: attrs, Abi: abi, Brace: brace, Items: items}, nil
}

func parseForeignItem(in *Input) (Item, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	vis, err := parseVisibility(in)
	if err != nil {
		return nil, err
	}
	switch {
	case in.Peek(isFnStart):
		sig, err := parseSignature(in)
		if err != nil {
			return nil, err
		}
		semi, err := in.Punct(";")
		if err != nil {
			return nil, err
		}
		return &ForeignItemFn{Attrs: attrs, Vis: vis, Sig: sig, Semi: semi}, nil
	case in.Peek(isKeyword("static")):
		item := &ForeignItemStatic{Attrs: attrs, Vis: vis}
		item.Static, _ = in.Keyword("static")
		item.Mut = in.OptKeyword("mut")
		if item.Ident, err = parseIdent(in); err != nil {
			return nil, err
		}
		if item.Colon, err = in.Punct(":"); err != nil {
			return nil, err
		}
		if item.Type, err = parseType(in, true); err != nil {
			return nil, err
		}
		if item.Semi, err = in.Punct(";"); err != nil {
			return nil, err
		}
		return item, nil
	case in.Peek(isKeyword("type")):
		item := &ForeignItemType{Attrs: attrs, Vis: vis}
		item.Type, _ = in.Keyword("type")
		if item.Ident, err = parseIdent(in); err != nil {
			return nil, err
		}
		if item.Semi, err = in.Punct(";"); err != nil {
			return nil, err
		}
		return item, nil
	case vis.Kind == VisInherited && in.Peek(isPathStart):
		return parseItemMacro(in, attrs)
	}
	return nil, in.Error("foreign item")
}

func parseTypeAlias(in *Input, attrs []*Attribute, vis Visibility, def *Span) (*ItemType, error) {
	item := &ItemType{Attrs: attrs, Vis: vis, Default: def}
	var err error
	if item.Type, err = in.Keyword("type"); err != nil {
		return nil, err
	}
	if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if item.Generics, err = parseGenerics(in); err != nil {
		return nil, err
	}
	if err := parseWhereClause(in, item.Generics); err != nil {
		return nil, err
	}
	if item.Eq, err = in.Punct("="); err != nil {
		return nil, err
	}
	if item.Ty, err = parseType(in, true); err != nil {
		return nil, err
	}
	if item.Semi, err = in.Punct(";"); err != nil {
		return nil, err
	}
	return item, nil
}

func parseStruct(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemStruct{Attrs: attrs, Vis: vis}
	item.Struct, _ = in.Keyword("struct")
	var err error
	if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if item.Generics, err = parseGenerics(in); err != nil {
		return nil, err
	}
	switch {
	case in.Peek(isGroup(tokens.Paren)):
		if item.Fields, err = parseFieldsUnnamed(in); err != nil {
			return nil, err
		}
		if err := parseWhereClause(in, item.Generics); err != nil {
			return nil, err
		}
		semi, err := in.Punct(";")
		if err != nil {
			return nil, err
		}
		item.Semi = &semi
		return item, nil
	}
	if err := parseWhereClause(in, item.Generics); err != nil {
		return nil, err
	}
	if semi := in.OptPunct(";"); semi != nil {
		item.Semi = semi
		return item, nil
	}
	if item.Fields, err = parseFieldsNamed(in); err != nil {
		return nil, err
	}
	return item, nil
}

func parseFieldsNamed(in *Input) (*FieldsNamed, error) {
	named, brace, err := Delimited(in, tokens.Brace, func(in *Input) (Punctuated[*Field], error) {
		return ParseTerminated(in, parseNamedField, ",", ListOptions{})
	})
	if err != nil {
		return nil, err
	}
	return &FieldsNamed{Brace: brace, Named: named}, nil
}

func parseNamedField(in *Input) (*Field, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	f := &Field{Attrs: attrs}
	if f.Vis, err = parseVisibility(in); err != nil {
		return nil, err
	}
	ident, err := parseIdent(in)
	if err != nil {
		return nil, err
	}
	f.Ident = &ident
	colon, err := in.Punct(":")
	if err != nil {
		return nil, err
	}
	f.Colon = &colon
	if f.Type, err = parseType(in, true); err != nil {
		return nil, err
	}
	return f, nil
}

func parseFieldsUnnamed(in *Input) (*FieldsUnnamed, error) {
	unnamed, paren, err := Delimited(in, tokens.Paren, func(in *Input) (Punctuated[*Field], error) {
		return ParseTerminated(in, parseUnnamedField, ",", ListOptions{})
	})
	if err != nil {
		return nil, err
	}
	return &FieldsUnnamed{Paren: paren, Unnamed: unnamed}, nil
}

func parseUnnamedField(in *Input) (*Field, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	f := &Field{Attrs: attrs}
	if f.Vis, err = parseVisibility(in); err != nil {
		return nil, err
	}
	if f.Type, err = parseType(in, true); err != nil {
		return nil, err
	}
	return f, nil
}

func parseEnum(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemEnum{Attrs: attrs, Vis: vis}
	item.Enum, _ = in.Keyword("enum")
	var err error
	if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if item.Generics, err = parseGenerics(in); err != nil {
		return nil, err
	}
	if err := parseWhereClause(in, item.Generics); err != nil {
		return nil, err
	}
	item.Variants, item.Brace, err = Delimited(in, tokens.Brace, func(in *Input) (Punctuated[*Variant], error) {
		return ParseTerminated(in, parseVariant, ",", ListOptions{})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func parseVariant(in *Input) (*Variant, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	v := &Variant{Attrs: attrs}
	if v.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	switch {
	case in.Peek(isGroup(tokens.Brace)):
		if v.Fields, err = parseFieldsNamed(in); err != nil {
			return nil, err
		}
	case in.Peek(isGroup(tokens.Paren)):
		if v.Fields, err = parseFieldsUnnamed(in); err != nil {
			return nil, err
		}
	}
	if in.Peek(isPunctExact("=")) {
		eq, _ := in.Punct("=")
		v.Eq = &eq
		if v.Discriminant, err = parseExprAny(in); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func parseUnion(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemUnion{Attrs: attrs, Vis: vis}
	tok, next, _ := in.cur.Token()
	in.cur = next
	item.Union = tok.Span
	var err error
	if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if item.Generics, err = parseGenerics(in); err != nil {
		return nil, err
	}
	if err := parseWhereClause(in, item.Generics); err != nil {
		return nil, err
	}
	if item.Fields, err = parseFieldsNamed(in); err != nil {
		return nil, err
	}
	return item, nil
}

func consumeContextual(in *Input, word string) *Span {
	if !in.Peek(isContextual(word)) {
		return nil
	}
	tok, next, _ := in.cur.Token()
	in.cur = next
	return &tok.Span
}

func parseTrait(in *Input, attrs []*Attribute, vis Visibility) (Item, error) {
	item := &ItemTrait{Attrs: attrs, Vis: vis}
	item.Unsafe = in.OptKeyword("unsafe")
	item.Auto = consumeContextual(in, "auto")
	var err error
	if item.Trait, err = in.Keyword("trait"); err != nil {
		return nil, err
	}
	if item.Ident, err = parseIdent(in); err != nil {
		return nil, err
	}
	if item.Generics, err = parseGenerics(in); err != nil {
		return nil, err
	}
	if colon := in.OptPunct(":"); colon != nil {
		item.Colon = colon
		if item.Supertraits, err = parseBoundsOpt(in); err != nil {
			return nil, err
		}
	}
	if err := parseWhereClause(in, item.Generics); err != nil {
		return nil, err
	}
	item.Items, item.Brace, err = Delimited(in, tokens.Brace, func(in *Input) ([]TraitItem, error) {
		var items []TraitItem
		for !in.IsEmpty() {
			ti, err := parseTraitItem(in)
			if err != nil {
				return nil, err
			}
			items = append(items, ti)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func parseTraitItem(in *Input) (TraitItem, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	switch {
	case in.Peek(isFnStart):
		ti := &TraitItemFn{Attrs: attrs}
		if ti.Sig, err = parseSignature(in); err != nil {
			return nil, err
		}
		if ti.Semi = in.OptPunct(";"); ti.Semi != nil {
			return ti, nil
		}
		if ti.Default, err = parseBlock(in); err != nil {
			return nil, err
		}
		return ti, nil
	case in.Peek(isKeyword("const")):
		ti := &TraitItemConst{Attrs: attrs}
		ti.Const, _ = in.Keyword("const")
		if ti.Ident, err = parseIdent(in); err != nil {
			return nil, err
		}
		if ti.Colon, err = in.Punct(":"); err != nil {
			return nil, err
		}
		if ti.Type, err = parseType(in, true); err != nil {
			return nil, err
		}
		if in.Peek(isPunctExact("=")) {
			eq, _ := in.Punct("=")
			ti.Eq = &eq
			if ti.Default, err = parseExprAny(in); err != nil {
				return nil, err
			}
		}
		if ti.Semi, err = in.Punct(";"); err != nil {
			return nil, err
		}
		return ti, nil
	case in.Peek(isKeyword("type")):
		ti := &TraitItemType{Attrs: attrs}
		ti.Type, _ = in.Keyword("type")
		if ti.Ident, err = parseIdent(in); err != nil {
			return nil, err
		}
		if ti.Generics, err = parseGenerics(in); err != nil {
			return nil, err
		}
		if colon := in.OptPunct(":"); colon != nil {
			ti.Colon = colon
			if ti.Bounds, err = parseBoundsOpt(in); err != nil {
				return nil, err
			}
		}
		if err := parseWhereClause(in, ti.Generics); err != nil {
			return nil, err
		}
		if in.Peek(isPunctExact("=")) {
			eq, _ := in.Punct("=")
			ti.Eq = &eq
			if ti.Default, err = parseType(in, true); err != nil {
				return nil, err
			}
		}
		if ti.Semi, err = in.Punct(";"); err != nil {
			return nil, err
		}
		return ti, nil
	case in.Peek(isPathStart):
		path, err := parsePath(in, pathMod)
		if err != nil {
			return nil, err
		}
		mac, err := parseMacroTail(in, path)
		if err != nil {
			return nil, err
		}
		ti := &TraitItemMacro{Attrs: attrs, Mac: mac, Semi: in.OptPunct(";")}
		if ti.Semi == nil && mac.Delim.Delim != tokens.Brace {
			return nil, in.Error("`;`")
		}
		return ti, nil
	}
	return nil, in.Error("trait item")
}

func parseImpl(in *Input, attrs []*Attribute) (Item, error) {
	item := &ItemImpl{Attrs: attrs}
	item.Default = consumeContextual(in, "default")
	item.Unsafe = in.OptKeyword("unsafe")
	var err error
	if item.Impl, err = in.Keyword("impl"); err != nil {
		return nil, err
	}
	// impl<T> opens generics, but impl <T as Trait>::Assoc does not.
	if in.Peek(isPunctExact("<")) && (in.Peek2(isLifetime) || in.Peek2(isPunct(">")) ||
		in.Peek3(isPunct(",")) || in.Peek3(isPunct(":")) || in.Peek3(isPunct(">")) ||
		in.Peek3(isPunct("=")) || in.Peek2(isKeyword("const")) || in.Peek2(isPunct("#"))) {
		if item.Generics, err = parseGenerics(in); err != nil {
			return nil, err
		}
	} else {
		item.Generics = &Generics{}
	}

	bang := in.OptPunct("!")
	first, err := parseType(in, true)
	if err != nil {
		return nil, err
	}
	if forSpan := in.OptKeyword("for"); forSpan != nil {
		tp, ok := first.(*TypePath)
		if !ok || tp.QSelf != nil {
			return nil, in.Errorf(*forSpan, "expected a trait path before `for`")
		}
		item.Trait = &ImplTrait{Bang: bang, Path: tp.Path, For: *forSpan}
		if item.SelfTy, err = parseType(in, true); err != nil {
			return nil, err
		}
	} else {
		if bang != nil {
			return nil, in.Error("`for`")
		}
		item.SelfTy = first
	}
	if err := parseWhereClause(in, item.Generics); err != nil {
		return nil, err
	}
	item.Items, item.Brace, err = Delimited(in, tokens.Brace, func(in *Input) ([]Item, error) {
		var items []Item
		for !in.IsEmpty() {
			ii, err := parseImplItem(in)
			if err != nil {
				return nil, err
			}
			items = append(items, ii)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func parseImplItem(in *Input) (Item, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	vis, err := parseVisibility(in)
	if err != nil {
		return nil, err
	}
	var def *Span
	if in.Peek(isContextual("default")) && !in.Peek2(isPunct("!")) {
		def = consumeContextual(in, "default")
	}
	switch {
	case in.Peek(isFnStart):
		sig, err := parseSignature(in)
		if err != nil {
			return nil, err
		}
		block, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ItemFn{Attrs: attrs, Vis: vis, Default: def, Sig: sig, Block: block}, nil
	case in.Peek(isKeyword("const")):
		return parseConst(in, attrs, vis, def)
	case in.Peek(isKeyword("type")):
		return parseTypeAlias(in, attrs, vis, def)
	case def == nil && vis.Kind == VisInherited && in.Peek(isPathStart):
		return parseItemMacro(in, attrs)
	}
	return nil, in.Error("impl item")
}

// parseItemMacro parses path!(...); or path! { ... } in item position.
func parseItemMacro(in *Input, attrs []*Attribute) (Item, error) {
	path, err := parsePath(in, pathMod)
	if err != nil {
		return nil, err
	}
	mac, err := parseMacroTail(in, path)
	if err != nil {
		return nil, err
	}
	item := &ItemMacro{Attrs: attrs, Mac: mac, Semi: in.OptPunct(";")}
	if item.Semi == nil && mac.Delim.Delim != tokens.Brace {
		return nil, in.Error("`;`")
	}
	return item, nil
}

func parseMacroRules(in *Input, attrs []*Attribute) (Item, error) {
	path, err := parsePath(in, pathMod)
	if err != nil {
		return nil, err
	}
	bang, err := in.Punct("!")
	if err != nil {
		return nil, err
	}
	name, err := parseIdent(in)
	if err != nil {
		return nil, err
	}
	stream, delim, err := in.AnyGroup()
	if err != nil {
		return nil, err
	}
	item := &ItemMacro{
		Attrs: attrs,
		Ident: &name,
		Mac:   &Macro{Path: path, Bang: bang, Delim: delim, Tokens: stream},
		Semi:  in.OptPunct(";"),
	}
	if item.Semi == nil && delim.Delim != tokens.Brace {
		return nil, in.Error("`;`")
	}
	return item, nil
}
