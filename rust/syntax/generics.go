package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

// parseGenerics parses an optional <params> list. The where clause is
// parsed separately by the item, since its position varies.
func parseGenerics(in *Input) (*Generics, error) {
	g := &Generics{}
	if !in.Peek(isPunctExact("<")) {
		return g, nil
	}
	lt, _ := in.Punct("<")
	params, err := ParseTerminated(in, parseGenericParam, ",", ListOptions{Stop: isPunct(">")})
	if err != nil {
		return nil, err
	}
	gt, err := in.Punct(">")
	if err != nil {
		return nil, err
	}
	g.Lt, g.Params, g.Gt = &lt, params, &gt
	return g, nil
}

func parseGenericParam(in *Input) (GenericParam, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	switch {
	case in.Peek(isLifetime):
		p, err := parseLifetimeParam(in)
		if err != nil {
			return nil, err
		}
		p.Attrs = attrs
		return p, nil
	case in.Peek(isKeyword("const")):
		return parseConstParam(in, attrs)
	}
	ident, err := parseIdent(in)
	if err != nil {
		return nil, in.Error("generic parameter")
	}
	p := &TypeParam{Attrs: attrs, Ident: ident}
	if colon := in.OptPunct(":"); colon != nil {
		p.Colon = colon
		if p.Bounds, err = parseBoundsOpt(in); err != nil {
			return nil, err
		}
	}
	if in.Peek(isPunctExact("=")) {
		eq, _ := in.Punct("=")
		p.Eq = &eq
		if p.Default, err = parseType(in, true); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseLifetimeParam(in *Input) (*LifetimeParam, error) {
	lt, err := in.Lifetime()
	if err != nil {
		return nil, err
	}
	p := &LifetimeParam{Lifetime: lt}
	if colon := in.OptPunct(":"); colon != nil {
		p.Colon = colon
		if p.Bounds, err = parseLifetimeBounds(in); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseConstParam(in *Input, attrs []*Attribute) (*ConstParam, error) {
	constSpan, _ := in.Keyword("const")
	ident, err := parseIdent(in)
	if err != nil {
		return nil, err
	}
	colon, err := in.Punct(":")
	if err != nil {
		return nil, err
	}
	ty, err := parseType(in, false)
	if err != nil {
		return nil, err
	}
	p := &ConstParam{Attrs: attrs, Const: constSpan, Ident: ident, Colon: colon, Type: ty}
	if in.Peek(isPunctExact("=")) {
		eq, _ := in.Punct("=")
		p.Eq = &eq
		arg, err := parseGenericArgument(in)
		if err != nil {
			return nil, err
		}
		c, ok := arg.(*ConstArg)
		if !ok {
			return nil, in.Errorf(eq, "expected a literal or block as const default")
		}
		p.Default = c.Expr
	}
	return p, nil
}

// parseLifetimeBounds parses 'a + 'b, allowing a trailing +.
func parseLifetimeBounds(in *Input) (Punctuated[Lifetime], error) {
	var bounds Punctuated[Lifetime]
	for in.Peek(isLifetime) {
		lt, _ := in.Lifetime()
		plus := in.OptPunct("+")
		bounds.pushPair(lt, plus)
		if plus == nil {
			break
		}
	}
	return bounds, nil
}

func isBoundStart(c Cursor) bool {
	return isLifetime(c) || isPathStart(c) || isPunct("?")(c) ||
		isKeyword("for")(c) || isGroup(tokens.Paren)(c)
}

// parseBounds parses one or more bounds. Without allowPlus only a single
// bound is read, as in &dyn A.
func parseBounds(in *Input, allowPlus bool) (Punctuated[TypeParamBound], error) {
	var bounds Punctuated[TypeParamBound]
	for {
		b, err := parseBound(in)
		if err != nil {
			return bounds, err
		}
		if !allowPlus || !in.Peek(isPunct("+")) {
			bounds.pushPair(b, nil)
			return bounds, nil
		}
		plus, _ := in.Punct("+")
		bounds.pushPair(b, &plus)
		if !in.Peek(isBoundStart) {
			return bounds, nil
		}
	}
}

// parseBoundsOpt is parseBounds that also accepts an empty list, as after
// T: in a where clause or parameter list.
func parseBoundsOpt(in *Input) (Punctuated[TypeParamBound], error) {
	if !in.Peek(isBoundStart) {
		return Punctuated[TypeParamBound]{}, nil
	}
	return parseBounds(in, true)
}

func parseBound(in *Input) (TypeParamBound, error) {
	if in.Peek(isLifetime) {
		lt, _ := in.Lifetime()
		return &LifetimeBound{Lifetime: lt}, nil
	}
	if in.Peek(isGroup(tokens.Paren)) {
		b, paren, err := Delimited(in, tokens.Paren, parseTraitBound)
		if err != nil {
			return nil, err
		}
		b.Paren = &paren
		return b, nil
	}
	return parseTraitBound(in)
}

func parseTraitBound(in *Input) (*TraitBound, error) {
	b := &TraitBound{Maybe: in.OptPunct("?")}
	if in.Peek(isKeyword("for")) {
		bl, err := parseBoundLifetimes(in)
		if err != nil {
			return nil, err
		}
		b.Lifetimes = bl
	}
	path, err := parsePath(in, pathType)
	if err != nil {
		return nil, err
	}
	b.Path = path
	return b, nil
}

func parseBoundLifetimes(in *Input) (*BoundLifetimes, error) {
	forSpan, err := in.Keyword("for")
	if err != nil {
		return nil, err
	}
	lt, err := in.Punct("<")
	if err != nil {
		return nil, err
	}
	params, err := ParseTerminated(in, func(in *Input) (*LifetimeParam, error) {
		attrs, err := parseOuterAttrs(in)
		if err != nil {
			return nil, err
		}
		p, err := parseLifetimeParam(in)
		if err != nil {
			return nil, err
		}
		p.Attrs = attrs
		return p, nil
	}, ",", ListOptions{Stop: isPunct(">")})
	if err != nil {
		return nil, err
	}
	gt, err := in.Punct(">")
	if err != nil {
		return nil, err
	}
	return &BoundLifetimes{For: forSpan, Lt: lt, Lifetimes: params, Gt: gt}, nil
}

func isWhereEnd(c Cursor) bool {
	return isGroup(tokens.Brace)(c) || isPunct(";")(c) || isPunctExact("=")(c)
}

// parseWhereClause parses an optional where clause into g.
func parseWhereClause(in *Input, g *Generics) error {
	whereSpan := in.OptKeyword("where")
	if whereSpan == nil {
		return nil
	}
	preds, err := ParseTerminated(in, parseWherePredicate, ",", ListOptions{Stop: isWhereEnd})
	if err != nil {
		return err
	}
	g.Where = &WhereClause{Where: *whereSpan, Predicates: preds}
	return nil
}

func parseWherePredicate(in *Input) (WherePredicate, error) {
	if in.Peek(isLifetime) {
		lt, _ := in.Lifetime()
		colon, err := in.Punct(":")
		if err != nil {
			return nil, err
		}
		bounds, err := parseLifetimeBounds(in)
		if err != nil {
			return nil, err
		}
		return &PredicateLifetime{Lifetime: lt, Colon: colon, Bounds: bounds}, nil
	}
	pred := &PredicateType{}
	if in.Peek(isKeyword("for")) {
		bl, err := parseBoundLifetimes(in)
		if err != nil {
			return nil, err
		}
		pred.Lifetimes = bl
	}
	ty, err := parseType(in, false)
	if err != nil {
		return nil, err
	}
	pred.Bounded = ty
	if pred.Colon, err = in.Punct(":"); err != nil {
		return nil, err
	}
	if pred.Bounds, err = parseBoundsOpt(in); err != nil {
		return nil, err
	}
	return pred, nil
}
