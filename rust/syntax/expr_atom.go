package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

// parseAtom parses an expression that is not built from an operator.
func parseAtom(in *Input, ctx exprCtx) (Expr, error) {
	switch {
	case in.Peek(isLiteral):
		lit, err := parseLit(in)
		if err != nil {
			return nil, err
		}
		return &ExprLit{Lit: lit}, nil
	case in.Peek(isGroup(tokens.Paren)):
		return parseParenOrTuple(in)
	case in.Peek(isGroup(tokens.Bracket)):
		return parseArrayOrRepeat(in)
	case in.Peek(isGroup(tokens.Brace)):
		block, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ExprBlock{Block: block}, nil
	case in.Peek(isPunct("|")), in.Peek(isKeyword("move")):
		return parseClosure(in, ctx)
	case in.Peek(isLifetime) && in.Peek2(isPunctExact(":")):
		return parseLabeled(in)
	case in.Peek(isKeyword("if")):
		return parseIf(in)
	case in.Peek(isKeyword("match")):
		return parseMatch(in)
	case in.Peek(isKeyword("loop")), in.Peek(isKeyword("while")), in.Peek(isKeyword("for")):
		return parseLoop(in, nil)
	case in.Peek(isKeyword("unsafe")) && in.Peek2(isGroup(tokens.Brace)):
		unsafe, _ := in.Keyword("unsafe")
		block, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ExprUnsafe{Unsafe: unsafe, Block: block}, nil
	case in.Peek(isKeyword("return")):
		ret := &ExprReturn{}
		ret.Return, _ = in.Keyword("return")
		if canBeginExpr(in.cur, ctx) {
			v, err := parseExpr(in, ctx)
			if err != nil {
				return nil, err
			}
			ret.Expr = v
		}
		return ret, nil
	case in.Peek(isKeyword("break")):
		brk := &ExprBreak{}
		brk.Break, _ = in.Keyword("break")
		if in.Peek(isLifetime) {
			lt, _ := in.Lifetime()
			brk.Label = &lt
		}
		if canBeginExpr(in.cur, ctx) {
			v, err := parseExpr(in, ctx)
			if err != nil {
				return nil, err
			}
			brk.Expr = v
		}
		return brk, nil
	case in.Peek(isKeyword("continue")):
		cont := &ExprContinue{}
		cont.Continue, _ = in.Keyword("continue")
		if in.Peek(isLifetime) {
			lt, _ := in.Lifetime()
			cont.Label = &lt
		}
		return cont, nil
	case in.Peek(isPunct("<")):
		qself, path, err := parseQPath(in, pathExpr)
		if err != nil {
			return nil, err
		}
		return &ExprPath{QSelf: qself, Path: path}, nil
	case in.Peek(isPathStart):
		path, err := parsePath(in, pathExpr)
		if err != nil {
			return nil, err
		}
		if in.Peek(isMacroBang) {
			mac, err := parseMacroTail(in, path)
			if err != nil {
				return nil, err
			}
			return &ExprMacro{Mac: mac}, nil
		}
		if !ctx.noStruct && in.Peek(isGroup(tokens.Brace)) {
			return parseExprStruct(in, path)
		}
		return &ExprPath{Path: path}, nil
	}
	return nil, in.Error("expression")
}

func parseParenOrTuple(in *Input) (Expr, error) {
	elems, paren, err := Delimited(in, tokens.Paren, parseExprList)
	if err != nil {
		return nil, err
	}
	if elems.Len() == 1 && !elems.Trailing() {
		return &ExprParen{Paren: paren, Expr: elems.At(0)}, nil
	}
	return &ExprTuple{Paren: paren, Elems: elems}, nil
}

func parseArrayOrRepeat(in *Input) (Expr, error) {
	var out Expr
	_, bracket, err := Delimited(in, tokens.Bracket, func(in *Input) (struct{}, error) {
		if in.IsEmpty() {
			out = &ExprArray{}
			return struct{}{}, nil
		}
		first, err := parseExprAny(in)
		if err != nil {
			return struct{}{}, err
		}
		if semi := in.OptPunct(";"); semi != nil {
			n, err := parseExprAny(in)
			if err != nil {
				return struct{}{}, err
			}
			out = &ExprRepeat{Expr: first, Semi: *semi, Len: n}
			return struct{}{}, nil
		}
		arr := &ExprArray{}
		if in.IsEmpty() {
			arr.Elems.pushPair(first, nil)
			out = arr
			return struct{}{}, nil
		}
		comma, err := in.Punct(",")
		if err != nil {
			return struct{}{}, err
		}
		arr.Elems.pushPair(first, &comma)
		rest, err := parseExprList(in)
		if err != nil {
			return struct{}{}, err
		}
		arr.Elems.pairs = append(arr.Elems.pairs, rest.pairs...)
		out = arr
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	switch e := out.(type) {
	case *ExprArray:
		e.Bracket = bracket
	case *ExprRepeat:
		e.Bracket = bracket
	}
	return out, nil
}

func parseClosure(in *Input, ctx exprCtx) (Expr, error) {
	c := &ExprClosure{Move: in.OptKeyword("move")}
	var err error
	if c.Or1, err = in.Punct("|"); err != nil {
		return nil, err
	}
	if !in.Peek(isPunct("|")) {
		c.Inputs, err = ParseTerminated(in, parseClosureParam, ",", ListOptions{Stop: isPunct("|")})
		if err != nil {
			return nil, err
		}
	}
	if c.Or2, err = in.Punct("|"); err != nil {
		return nil, err
	}
	if c.Output, err = parseReturnType(in, false); err != nil {
		return nil, err
	}
	if c.Output != nil {
		// An explicit return type requires a block body.
		block, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		c.Body = &ExprBlock{Block: block}
		return c, nil
	}
	if c.Body, err = parseExpr(in, ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func parseClosureParam(in *Input) (Pat, error) {
	pat, err := parsePat(in)
	if err != nil {
		return nil, err
	}
	colon := in.OptPunct(":")
	if colon == nil {
		return pat, nil
	}
	ty, err := parseType(in, false)
	if err != nil {
		return nil, err
	}
	return &PatType{Pat: pat, Colon: *colon, Type: ty}, nil
}

func parseLabel(in *Input) (*Label, error) {
	lt, err := in.Lifetime()
	if err != nil {
		return nil, err
	}
	colon, err := in.Punct(":")
	if err != nil {
		return nil, err
	}
	return &Label{Name: lt, Colon: colon}, nil
}

func parseLabeled(in *Input) (Expr, error) {
	label, err := parseLabel(in)
	if err != nil {
		return nil, err
	}
	if in.Peek(isGroup(tokens.Brace)) {
		block, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ExprBlock{Label: label, Block: block}, nil
	}
	return parseLoop(in, label)
}

// parseLoop parses loop, while and for.
func parseLoop(in *Input, label *Label) (Expr, error) {
	switch {
	case in.Peek(isKeyword("loop")):
		loop, _ := in.Keyword("loop")
		body, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ExprLoop{Label: label, Loop: loop, Body: body}, nil
	case in.Peek(isKeyword("while")):
		while, _ := in.Keyword("while")
		cond, err := parseCond(in)
		if err != nil {
			return nil, err
		}
		body, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ExprWhile{Label: label, While: while, Cond: cond, Body: body}, nil
	case in.Peek(isKeyword("for")):
		forSpan, _ := in.Keyword("for")
		pat, err := parsePatTop(in)
		if err != nil {
			return nil, err
		}
		inSpan, err := in.Keyword("in")
		if err != nil {
			return nil, err
		}
		iter, err := parseExpr(in, noStruct)
		if err != nil {
			return nil, err
		}
		body, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ExprForLoop{Label: label, For: forSpan, Pat: pat, In: inSpan, Expr: iter, Body: body}, nil
	}
	return nil, in.Error("`loop`, `while`, `for` or block")
}

// parseCond parses the condition of if and while, including let.
func parseCond(in *Input) (Expr, error) {
	if !in.Peek(isKeyword("let")) {
		return parseExpr(in, noStruct)
	}
	let, _ := in.Keyword("let")
	pat, err := parsePatTop(in)
	if err != nil {
		return nil, err
	}
	eq, err := in.Punct("=")
	if err != nil {
		return nil, err
	}
	scrutinee, err := parseExprPrec(in, noStruct, precCompare)
	if err != nil {
		return nil, err
	}
	return &ExprLet{Let: let, Pat: pat, Eq: eq, Expr: scrutinee}, nil
}

func parseIf(in *Input) (*ExprIf, error) {
	ifSpan, err := in.Keyword("if")
	if err != nil {
		return nil, err
	}
	cond, err := parseCond(in)
	if err != nil {
		return nil, err
	}
	then, err := parseBlock(in)
	if err != nil {
		return nil, err
	}
	e := &ExprIf{If: ifSpan, Cond: cond, Then: then}
	if e.Else = in.OptKeyword("else"); e.Else == nil {
		return e, nil
	}
	if in.Peek(isKeyword("if")) {
		if e.ElseBranch, err = parseIf(in); err != nil {
			return nil, err
		}
		return e, nil
	}
	block, err := parseBlock(in)
	if err != nil {
		return nil, err
	}
	e.ElseBranch = &ExprBlock{Block: block}
	return e, nil
}

func parseMatch(in *Input) (Expr, error) {
	matchSpan, _ := in.Keyword("match")
	scrutinee, err := parseExpr(in, noStruct)
	if err != nil {
		return nil, err
	}
	arms, brace, err := Delimited(in, tokens.Brace, func(in *Input) ([]*Arm, error) {
		var arms []*Arm
		for !in.IsEmpty() {
			arm, err := parseArm(in)
			if err != nil {
				return nil, err
			}
			arms = append(arms, arm)
		}
		return arms, nil
	})
	if err != nil {
		return nil, err
	}
	return &ExprMatch{Match: matchSpan, Expr: scrutinee, Brace: brace, Arms: arms}, nil
}

func parseArm(in *Input) (*Arm, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	arm := &Arm{Attrs: attrs}
	if arm.Pat, err = parsePatTop(in); err != nil {
		return nil, err
	}
	if ifSpan := in.OptKeyword("if"); ifSpan != nil {
		cond, err := parseExprAny(in)
		if err != nil {
			return nil, err
		}
		arm.Guard = &Guard{If: *ifSpan, Cond: cond}
	}
	if arm.FatArrow, err = in.Punct("=>"); err != nil {
		return nil, err
	}
	body, blockLike, err := parseStmtExpr(in)
	if err != nil {
		return nil, err
	}
	arm.Body = body
	arm.Comma = in.OptPunct(",")
	if arm.Comma == nil && !blockLike && !in.IsEmpty() {
		return nil, in.Error("`,`")
	}
	return arm, nil
}

func parseExprStruct(in *Input, path *Path) (Expr, error) {
	s := &ExprStruct{Path: path}
	_, brace, err := Delimited(in, tokens.Brace, func(in *Input) (struct{}, error) {
		for !in.IsEmpty() {
			if in.Peek(isPunctExact("..")) {
				s.Dot2 = in.OptPunct("..")
				if !in.IsEmpty() {
					rest, err := parseExprAny(in)
					if err != nil {
						return struct{}{}, err
					}
					s.Rest = rest
				}
				break
			}
			field, err := parseFieldValue(in)
			if err != nil {
				return struct{}{}, err
			}
			if in.IsEmpty() {
				s.Fields.pushPair(field, nil)
				break
			}
			comma, err := in.Punct(",")
			if err != nil {
				return struct{}{}, err
			}
			s.Fields.pushPair(field, &comma)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	s.Brace = brace
	return s, nil
}

func parseFieldValue(in *Input) (*FieldValue, error) {
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	f := &FieldValue{Attrs: attrs}
	tok, next, ok := in.cur.Token()
	switch {
	case ok && tok.Kind == tokens.KindLiteral && tok.Lit == tokens.LitInt && isDecimal(tok.Text):
		in.cur = next
		f.Member = Member{Name: tok.Text, Span: tok.Span, Unnamed: true}
	case ok && tok.Kind == tokens.KindIdent:
		in.cur = next
		f.Member = Member{Name: tok.Text, Span: tok.Span}
	default:
		return nil, in.Error("field name")
	}
	colon := in.OptPunct(":")
	if colon == nil {
		if f.Member.Unnamed {
			return nil, in.Error("`:`")
		}
		p := NewPath(f.Member.Name)
		p.Segments.At(0).Ident.Span = f.Member.Span
		f.Expr = &ExprPath{Path: p}
		return f, nil
	}
	f.Colon = colon
	if f.Expr, err = parseExprAny(in); err != nil {
		return nil, err
	}
	return f, nil
}
