package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

// parsePatTop parses a pattern that may be an or-pattern with a leading |.
func parsePatTop(in *Input) (Pat, error) {
	leading := (*Span)(nil)
	if in.Peek(isPunctExact("|")) {
		leading = in.OptPunct("|")
	}
	cases, err := ParseSeparatedNonEmpty(in, parsePat, "|")
	if err != nil {
		return nil, err
	}
	if leading == nil && cases.Len() == 1 {
		return cases.At(0), nil
	}
	return &PatOr{Leading: leading, Cases: cases}, nil
}

// parsePat parses a single pattern without top-level alternatives.
func parsePat(in *Input) (Pat, error) {
	switch {
	case in.Peek(isPunct("_")):
		underscore, _ := in.Punct("_")
		return &PatWild{Underscore: underscore}, nil
	case in.Peek(isPunctExact("..")):
		dots, _ := in.Punct("..")
		return &PatRest{Dot2: dots}, nil
	case in.Peek(isPunct("&")):
		and, _ := in.Punct("&")
		ref := &PatReference{And: and, Mut: in.OptKeyword("mut")}
		pat, err := parsePat(in)
		if err != nil {
			return nil, err
		}
		ref.Pat = pat
		return ref, nil
	case in.Peek(isGroup(tokens.Paren)):
		elems, paren, err := Delimited(in, tokens.Paren, parsePatList)
		if err != nil {
			return nil, err
		}
		return &PatTuple{Paren: paren, Elems: elems}, nil
	case in.Peek(isGroup(tokens.Bracket)):
		elems, bracket, err := Delimited(in, tokens.Bracket, parsePatList)
		if err != nil {
			return nil, err
		}
		return &PatSlice{Bracket: bracket, Elems: elems}, nil
	case in.Peek(isLiteral), in.Peek(isPunct("-")) && in.Peek2(isLiteral):
		lo, err := parsePatLitExpr(in)
		if err != nil {
			return nil, err
		}
		if in.Peek(isRangePatOp) {
			return parsePatRange(in, lo)
		}
		return &PatLit{Expr: lo}, nil
	case in.Peek(isKeyword("ref")), in.Peek(isKeyword("mut")):
		return parsePatIdent(in)
	case in.Peek(isPunct("<")):
		qself, path, err := parseQPath(in, pathExpr)
		if err != nil {
			return nil, err
		}
		if in.Peek(isRangePatOp) {
			return parsePatRange(in, &ExprPath{QSelf: qself, Path: path})
		}
		return &PatPath{QSelf: qself, Path: path}, nil
	case in.Peek(isIdent) && !in.Peek2(isPathContinuation):
		return parsePatIdent(in)
	case in.Peek(isPathStart):
		return parsePatPath(in)
	}
	return nil, in.Error("pattern")
}

func parsePatList(in *Input) (Punctuated[Pat], error) {
	return ParseTerminated(in, parsePatTop, ",", ListOptions{})
}

// isPathContinuation matches what can follow an identifier that makes it a
// path pattern rather than a binding.
func isPathContinuation(c Cursor) bool {
	return isPunctExact("::")(c) || isGroup(tokens.Paren)(c) || isGroup(tokens.Brace)(c) ||
		isMacroBang(c) || isRangePatOp(c) || isTurbofish(c)
}

func isRangePatOp(c Cursor) bool {
	op := longestOp(c)
	return op == "..=" || op == "..."
}

func parsePatLitExpr(in *Input) (Expr, error) {
	if minus := in.OptPunct("-"); minus != nil {
		lit, err := parseLit(in)
		if err != nil {
			return nil, err
		}
		return &ExprUnary{Op: UnOp{Kind: OpNeg, Span: *minus}, Expr: &ExprLit{Lit: lit}}, nil
	}
	lit, err := parseLit(in)
	if err != nil {
		return nil, err
	}
	return &ExprLit{Lit: lit}, nil
}

func parsePatRange(in *Input, lo Expr) (Pat, error) {
	op := longestOp(in.cur)
	span, _ := in.Punct(op)
	limits := RangeLimits{Span: span, Closed: true, Dots3: op == "..."}
	var hi Expr
	var err error
	switch {
	case in.Peek(isLiteral), in.Peek(isPunct("-")):
		hi, err = parsePatLitExpr(in)
	case in.Peek(isPunct("<")):
		var qself *QSelf
		var path *Path
		qself, path, err = parseQPath(in, pathExpr)
		hi = &ExprPath{QSelf: qself, Path: path}
	default:
		var path *Path
		path, err = parsePath(in, pathExpr)
		hi = &ExprPath{Path: path}
	}
	if err != nil {
		return nil, err
	}
	return &PatRange{Lo: lo, Limits: limits, Hi: hi}, nil
}

func parsePatIdent(in *Input) (Pat, error) {
	p := &PatIdent{ByRef: in.OptKeyword("ref"), Mut: in.OptKeyword("mut")}
	tok, next, ok := in.cur.Token()
	if !ok || !(tok.Kind == tokens.KindIdent || (tok.Kind == tokens.KindKeyword && tok.Text == "self")) {
		return nil, in.Error("identifier")
	}
	in.cur = next
	p.Ident = Ident{Name: tok.Text, Span: tok.Span}
	if in.Peek(isPunct("@")) {
		at, _ := in.Punct("@")
		p.At = &at
		sub, err := parsePat(in)
		if err != nil {
			return nil, err
		}
		p.Subpat = sub
	}
	return p, nil
}

func parsePatPath(in *Input) (Pat, error) {
	path, err := parsePath(in, pathExpr)
	if err != nil {
		return nil, err
	}
	switch {
	case in.Peek(isMacroBang):
		mac, err := parseMacroTail(in, path)
		if err != nil {
			return nil, err
		}
		return &PatMacro{Mac: mac}, nil
	case in.Peek(isGroup(tokens.Paren)):
		elems, paren, err := Delimited(in, tokens.Paren, parsePatList)
		if err != nil {
			return nil, err
		}
		return &PatTupleStruct{Path: path, Paren: paren, Elems: elems}, nil
	case in.Peek(isGroup(tokens.Brace)):
		return parsePatStruct(in, path)
	case in.Peek(isRangePatOp):
		return parsePatRange(in, &ExprPath{Path: path})
	}
	return &PatPath{Path: path}, nil
}

func parsePatStruct(in *Input, path *Path) (Pat, error) {
	p := &PatStruct{Path: path}
	_, brace, err := Delimited(in, tokens.Brace, func(in *Input) (struct{}, error) {
		for !in.IsEmpty() {
			attrs, err := parseOuterAttrs(in)
			if err != nil {
				return struct{}{}, err
			}
			if in.Peek(isPunctExact("..")) {
				p.Rest = in.OptPunct("..")
				break
			}
			field, err := parseFieldPat(in, attrs)
			if err != nil {
				return struct{}{}, err
			}
			if in.IsEmpty() {
				p.Fields.pushPair(field, nil)
				break
			}
			comma, err := in.Punct(",")
			if err != nil {
				return struct{}{}, err
			}
			p.Fields.pushPair(field, &comma)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	p.Brace = brace
	return p, nil
}

func parseFieldPat(in *Input, attrs []*Attribute) (*FieldPat, error) {
	f := &FieldPat{Attrs: attrs}
	tok, next, ok := in.cur.Token()
	if ok && tok.Kind == tokens.KindLiteral && tok.Lit == tokens.LitInt {
		in.cur = next
		f.Member = Member{Name: tok.Text, Span: tok.Span, Unnamed: true}
		colon, err := in.Punct(":")
		if err != nil {
			return nil, err
		}
		f.Colon = &colon
		if f.Pat, err = parsePatTop(in); err != nil {
			return nil, err
		}
		return f, nil
	}
	if in.Peek(isIdent) && in.Peek2(isPunctExact(":")) {
		ident, _ := parseIdent(in)
		f.Member = Member{Name: ident.Name, Span: ident.Span}
		colon, _ := in.Punct(":")
		f.Colon = &colon
		pat, err := parsePatTop(in)
		if err != nil {
			return nil, err
		}
		f.Pat = pat
		return f, nil
	}
	// Shorthand: [ref] [mut] name
	pat, err := parsePatIdent(in)
	if err != nil {
		return nil, err
	}
	f.Member = Member{Name: pat.(*PatIdent).Ident.Name, Span: pat.(*PatIdent).Ident.Span}
	f.Pat = pat
	return f, nil
}

// parsePatType parses pat: Type as in function arguments.
func parsePatType(in *Input) (*PatType, error) {
	pat, err := parsePatTop(in)
	if err != nil {
		return nil, err
	}
	colon, err := in.Punct(":")
	if err != nil {
		return nil, err
	}
	ty, err := parseType(in, true)
	if err != nil {
		return nil, err
	}
	return &PatType{Pat: pat, Colon: colon, Type: ty}, nil
}
