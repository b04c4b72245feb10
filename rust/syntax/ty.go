package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

func parseTypePlus(in *Input) (Type, error) {
	return parseType(in, true)
}

func parseTypeNoPlus(in *Input) (Type, error) {
	return parseType(in, false)
}

// parseType parses a type. allowPlus permits a bare trait object A + B,
// which is ambiguous after & or in a cast.
func parseType(in *Input, allowPlus bool) (Type, error) {
	switch {
	case in.Peek(isGroup(tokens.Paren)):
		return parseTypeParenOrTuple(in, allowPlus)
	case in.Peek(isGroup(tokens.Bracket)):
		return parseTypeSliceOrArray(in)
	case in.Peek(isPunct("*")):
		return parseTypePtr(in)
	case in.Peek(isPunct("&")):
		return parseTypeReference(in)
	case in.Peek(isPunctExact("!")):
		bang, _ := in.Punct("!")
		return &TypeNever{Bang: bang}, nil
	case in.Peek(isPunct("_")):
		underscore, _ := in.Punct("_")
		return &TypeInfer{Underscore: underscore}, nil
	case in.Peek(isKeyword("fn")), in.Peek(isKeyword("unsafe")), in.Peek(isKeyword("extern")):
		return parseTypeBareFn(in, nil)
	case in.Peek(isKeyword("for")):
		bl, err := parseBoundLifetimes(in)
		if err != nil {
			return nil, err
		}
		if in.Peek(isKeyword("fn")) || in.Peek(isKeyword("unsafe")) || in.Peek(isKeyword("extern")) {
			return parseTypeBareFn(in, bl)
		}
		first, err := parseTraitBound(in)
		if err != nil {
			return nil, err
		}
		first.Lifetimes = bl
		return parseTraitObjectFrom(in, first, allowPlus)
	case in.Peek(isKeyword("impl")):
		implSpan, _ := in.Keyword("impl")
		bounds, err := parseBounds(in, allowPlus)
		if err != nil {
			return nil, err
		}
		return &TypeImplTrait{Impl: implSpan, Bounds: bounds}, nil
	case in.Peek(isKeyword("dyn")):
		dyn, _ := in.Keyword("dyn")
		bounds, err := parseBounds(in, allowPlus)
		if err != nil {
			return nil, err
		}
		return &TypeTraitObject{Dyn: &dyn, Bounds: bounds}, nil
	case in.Peek(isPunct("?")), in.Peek(isLifetime):
		first, err := parseBound(in)
		if err != nil {
			return nil, err
		}
		return parseTraitObjectFrom(in, first, allowPlus)
	case in.Peek(isPunct("<")):
		qself, path, err := parseQPath(in, pathType)
		if err != nil {
			return nil, err
		}
		return &TypePath{QSelf: qself, Path: path}, nil
	case in.Peek(isPathStart):
		path, err := parsePath(in, pathType)
		if err != nil {
			return nil, err
		}
		if in.Peek(isMacroBang) {
			mac, err := parseMacroTail(in, path)
			if err != nil {
				return nil, err
			}
			return &TypeMacro{Mac: mac}, nil
		}
		if allowPlus && in.Peek(isPunct("+")) {
			return parseTraitObjectFrom(in, &TraitBound{Path: path}, true)
		}
		return &TypePath{Path: path}, nil
	}
	return nil, in.Error("type")
}

// parseTraitObjectFrom continues a bare trait object whose first bound has
// already been read.
func parseTraitObjectFrom(in *Input, first TypeParamBound, allowPlus bool) (Type, error) {
	obj := &TypeTraitObject{}
	if !allowPlus || !in.Peek(isPunct("+")) {
		obj.Bounds.pushPair(first, nil)
		return obj, nil
	}
	plus, _ := in.Punct("+")
	obj.Bounds.pushPair(first, &plus)
	if in.Peek(isBoundStart) {
		rest, err := parseBounds(in, true)
		if err != nil {
			return nil, err
		}
		obj.Bounds.pairs = append(obj.Bounds.pairs, rest.pairs...)
	}
	return obj, nil
}

func parseTypeParenOrTuple(in *Input, allowPlus bool) (Type, error) {
	elems, paren, err := Delimited(in, tokens.Paren, func(in *Input) (Punctuated[Type], error) {
		return ParseTerminated(in, parseTypePlus, ",", ListOptions{})
	})
	if err != nil {
		return nil, err
	}
	if elems.Len() == 1 && !elems.Trailing() {
		inner := &TypeParen{Paren: paren, Elem: elems.At(0)}
		// (Trait) + Send
		if allowPlus && in.Peek(isPunct("+")) {
			if tp, ok := inner.Elem.(*TypePath); ok && tp.QSelf == nil {
				return parseTraitObjectFrom(in, &TraitBound{Paren: &paren, Path: tp.Path}, true)
			}
		}
		return inner, nil
	}
	return &TypeTuple{Paren: paren, Elems: elems}, nil
}

func parseTypeSliceOrArray(in *Input) (Type, error) {
	var out Type
	_, bracket, err := Delimited(in, tokens.Bracket, func(in *Input) (struct{}, error) {
		elem, err := parseType(in, true)
		if err != nil {
			return struct{}{}, err
		}
		if in.IsEmpty() {
			out = &TypeSlice{Elem: elem}
			return struct{}{}, nil
		}
		semi, err := in.Punct(";")
		if err != nil {
			return struct{}{}, err
		}
		n, err := parseExpr(in, exprCtx{})
		if err != nil {
			return struct{}{}, err
		}
		out = &TypeArray{Elem: elem, Semi: semi, Len: n}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	switch t := out.(type) {
	case *TypeSlice:
		t.Bracket = bracket
	case *TypeArray:
		t.Bracket = bracket
	}
	return out, nil
}

func parseTypePtr(in *Input) (Type, error) {
	star, _ := in.Punct("*")
	ptr := &TypePtr{Star: star}
	switch {
	case in.Peek(isKeyword("const")):
		ptr.Const = in.OptKeyword("const")
	case in.Peek(isKeyword("mut")):
		ptr.Mut = in.OptKeyword("mut")
	default:
		return nil, in.Error("`const` or `mut`")
	}
	elem, err := parseType(in, false)
	if err != nil {
		return nil, err
	}
	ptr.Elem = elem
	return ptr, nil
}

func parseTypeReference(in *Input) (Type, error) {
	and, _ := in.Punct("&")
	ref := &TypeReference{And: and}
	if in.Peek(isLifetime) {
		lt, _ := in.Lifetime()
		ref.Lifetime = &lt
	}
	ref.Mut = in.OptKeyword("mut")
	elem, err := parseType(in, false)
	if err != nil {
		return nil, err
	}
	ref.Elem = elem
	return ref, nil
}

func parseAbi(in *Input) (*Abi, error) {
	ext, err := in.Keyword("extern")
	if err != nil {
		return nil, err
	}
	abi := &Abi{Extern: ext}
	if in.Peek(isLiteral) {
		if abi.Name, err = parseLitStr(in); err != nil {
			return nil, err
		}
	}
	return abi, nil
}

func parseTypeBareFn(in *Input, lifetimes *BoundLifetimes) (Type, error) {
	fn := &TypeBareFn{Lifetimes: lifetimes, Unsafe: in.OptKeyword("unsafe")}
	if in.Peek(isKeyword("extern")) {
		abi, err := parseAbi(in)
		if err != nil {
			return nil, err
		}
		fn.Abi = abi
	}
	var err error
	if fn.Fn, err = in.Keyword("fn"); err != nil {
		return nil, err
	}
	fn.Inputs, fn.Paren, err = Delimited(in, tokens.Paren, func(in *Input) (Punctuated[*BareFnArg], error) {
		return ParseTerminated(in, parseBareFnArg, ",", ListOptions{})
	})
	if err != nil {
		return nil, err
	}
	if fn.Output, err = parseReturnType(in, false); err != nil {
		return nil, err
	}
	return fn, nil
}

func parseBareFnArg(in *Input) (*BareFnArg, error) {
	arg := &BareFnArg{}
	if (in.Peek(isIdent) || in.Peek(isPunct("_"))) && in.Peek2(isPunctExact(":")) {
		tok, next, _ := in.cur.Token()
		in.cur = next
		arg.Name = &Ident{Name: tok.Text, Span: tok.Span}
		colon, _ := in.Punct(":")
		arg.Colon = &colon
	}
	ty, err := parseType(in, true)
	if err != nil {
		return nil, err
	}
	arg.Type = ty
	return arg, nil
}
