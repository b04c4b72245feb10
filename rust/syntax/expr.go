package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

// exprCtx carries restrictions that depend on where an expression appears.
type exprCtx struct {
	// noStruct forbids Path { .. } struct literals, so that the brace after
	// the condition of if, while, match and for is taken as the body.
	noStruct bool
}

var noStruct = exprCtx{noStruct: true}

func parseExprAny(in *Input) (Expr, error) {
	return parseExpr(in, exprCtx{})
}

func parseExpr(in *Input, ctx exprCtx) (Expr, error) {
	return parseExprPrec(in, ctx, precAny)
}

func parseExprList(in *Input) (Punctuated[Expr], error) {
	return ParseTerminated(in, parseExprAny, ",", ListOptions{})
}

func isRangeOp(c Cursor) bool {
	op := longestOp(c)
	return op == ".." || op == "..="
}

// parseExprPrec parses an expression containing only operators that bind at
// least as tightly as base.
func parseExprPrec(in *Input, ctx exprCtx, base precedence) (Expr, error) {
	if base <= precRange && in.Peek(isRangeOp) {
		r, err := parseRangeTail(in, ctx, nil)
		if err != nil {
			return nil, err
		}
		return parseBinary(in, ctx, r, base)
	}
	lhs, err := parseUnary(in, ctx)
	if err != nil {
		return nil, err
	}
	return parseBinary(in, ctx, lhs, base)
}

// parseRangeTail parses the .. or ..= and the optional upper bound of a range
// whose lower bound is from.
func parseRangeTail(in *Input, ctx exprCtx, from Expr) (*ExprRange, error) {
	op := longestOp(in.cur)
	span, _ := in.Punct(op)
	r := &ExprRange{From: from, Limits: RangeLimits{Span: span, Closed: op == "..="}}
	if canBeginExpr(in.cur, ctx) {
		to, err := parseExprPrec(in, ctx, precRange+1)
		if err != nil {
			return nil, err
		}
		r.To = to
	} else if r.Limits.Closed {
		return nil, in.Errorf(span, "expected upper bound for inclusive range")
	}
	return r, nil
}

// parseBinary is the precedence climbing loop: it extends lhs with every
// operator of precedence at least base.
func parseBinary(in *Input, ctx exprCtx, lhs Expr, base precedence) (Expr, error) {
	for {
		if in.Peek(isKeyword("as")) {
			if precCast < base {
				return lhs, nil
			}
			as, _ := in.Keyword("as")
			ty, err := parseType(in, false)
			if err != nil {
				return nil, err
			}
			lhs = &ExprCast{Expr: lhs, As: as, Type: ty}
			continue
		}

		op := longestOp(in.cur)
		if op == ".." || op == "..=" {
			if precRange < base {
				return lhs, nil
			}
			if _, ok := lhs.(*ExprRange); ok {
				return nil, in.Errorf(in.Span(), "range operators are not associative")
			}
			r, err := parseRangeTail(in, ctx, lhs)
			if err != nil {
				return nil, err
			}
			lhs = r
			continue
		}

		if op == "=" {
			if precAssign < base {
				return lhs, nil
			}
			eq, _ := in.Punct("=")
			rhs, err := parseExprPrec(in, ctx, precAssign)
			if err != nil {
				return nil, err
			}
			lhs = &ExprAssign{Left: lhs, Eq: eq, Right: rhs}
			continue
		}

		info, ok := binOps[op]
		if !ok || info.prec < base {
			return lhs, nil
		}
		span, _ := in.Punct(op)
		binop := BinOp{Kind: info.kind, Span: span}
		if info.prec == precAssign {
			rhs, err := parseExprPrec(in, ctx, precAssign)
			if err != nil {
				return nil, err
			}
			lhs = &ExprAssignOp{Left: lhs, Op: binop, Right: rhs}
			continue
		}
		rhs, err := parseExprPrec(in, ctx, info.prec+1)
		if err != nil {
			return nil, err
		}
		lhs = &ExprBinary{Left: lhs, Op: binop, Right: rhs}
	}
}

func parseUnary(in *Input, ctx exprCtx) (Expr, error) {
	switch {
	case in.Peek(isPunct("&")):
		and, _ := in.Punct("&")
		ref := &ExprReference{And: and, Mut: in.OptKeyword("mut")}
		operand, err := parseUnary(in, ctx)
		if err != nil {
			return nil, err
		}
		ref.Expr = operand
		return ref, nil
	case in.Peek(isPunct("*")), in.Peek(isPunctExact("!")), in.Peek(isPunct("-")):
		tok, next, _ := in.cur.Token()
		in.cur = next
		op := UnOp{Span: tok.Span}
		switch tok.Text {
		case "*":
			op.Kind = OpDeref
		case "!":
			op.Kind = OpNot
		case "-":
			op.Kind = OpNeg
		}
		operand, err := parseUnary(in, ctx)
		if err != nil {
			return nil, err
		}
		return &ExprUnary{Op: op, Expr: operand}, nil
	}
	atom, err := parseAtom(in, ctx)
	if err != nil {
		return nil, err
	}
	switch atom.(type) {
	case *ExprClosure, *ExprReturn, *ExprBreak:
		return atom, nil
	}
	return parsePostfix(in, atom)
}

// parsePostfix applies calls, field and method access, indexing and ?.
func parsePostfix(in *Input, e Expr) (Expr, error) {
	for {
		switch {
		case in.Peek(isGroup(tokens.Paren)):
			args, paren, err := Delimited(in, tokens.Paren, parseExprList)
			if err != nil {
				return nil, err
			}
			e = &ExprCall{Func: e, Paren: paren, Args: args}
		case in.Peek(isGroup(tokens.Bracket)):
			index, bracket, err := Delimited(in, tokens.Bracket, parseExprAny)
			if err != nil {
				return nil, err
			}
			e = &ExprIndex{Expr: e, Bracket: bracket, Index: index}
		case in.Peek(isPunct("?")):
			q, _ := in.Punct("?")
			e = &ExprTry{Expr: e, Question: q}
		case in.Peek(isPunctExact(".")):
			var err error
			if e, err = parseDotTrailer(in, e); err != nil {
				return nil, err
			}
		default:
			return e, nil
		}
	}
}

func parseDotTrailer(in *Input, base Expr) (Expr, error) {
	dot, _ := in.Punct(".")
	tok, next, ok := in.cur.Token()
	if ok && tok.Kind == tokens.KindLiteral {
		lit := &Lit{Kind: litKindOf(tok.Lit), Text: tok.Text, Span: tok.Span}
		switch {
		case lit.Kind == LitInt && isDecimal(lit.Text):
			in.cur = next
			return &ExprField{Base: base, Dot: dot, Member: Member{Name: lit.Text, Span: lit.Span, Unnamed: true}}, nil
		case lit.Kind == LitFloat:
			first, second, ok := splitFloatIndex(lit)
			if !ok {
				return nil, in.Errorf(lit.Span, "unexpected token in field access: `%s`", lit.Text)
			}
			in.cur = next
			inner := &ExprField{Base: base, Dot: dot, Member: first}
			return &ExprField{Base: inner, Dot: lit.Span, Member: second}, nil
		}
		return nil, in.Error("field name or tuple index")
	}

	ident, err := parseIdent(in)
	if err != nil {
		return nil, in.Error("field name or tuple index")
	}
	var turbofish *AngleBracketedArgs
	if in.Peek(isTurbofish) {
		colon2, _ := in.Punct("::")
		if turbofish, err = parseAngleArgs(in, &colon2); err != nil {
			return nil, err
		}
	}
	if !in.Peek(isGroup(tokens.Paren)) {
		if turbofish != nil {
			return nil, in.Error("`(`")
		}
		return &ExprField{Base: base, Dot: dot, Member: Member{Name: ident.Name, Span: ident.Span}}, nil
	}
	args, paren, err := Delimited(in, tokens.Paren, parseExprList)
	if err != nil {
		return nil, err
	}
	return &ExprMethodCall{Receiver: base, Dot: dot, Method: ident, Turbofish: turbofish, Paren: paren, Args: args}, nil
}

var exprKeywords = map[string]bool{
	"true": true, "false": true, "if": true, "match": true, "loop": true,
	"while": true, "for": true, "unsafe": true, "return": true, "break": true,
	"continue": true, "move": true, "self": true, "Self": true, "super": true,
	"crate": true,
}

// canBeginExpr reports whether an expression can start at c. It decides
// whether return, break and ranges have an operand.
func canBeginExpr(c Cursor, ctx exprCtx) bool {
	if c.Eof() {
		return false
	}
	if isGroup(tokens.Brace)(c) {
		return !ctx.noStruct
	}
	tok, _, ok := c.Token()
	if !ok {
		return true
	}
	switch tok.Kind {
	case tokens.KindIdent, tokens.KindLiteral, tokens.KindLifetime:
		return true
	case tokens.KindKeyword:
		return exprKeywords[tok.Text]
	}
	switch longestOp(c) {
	case "-", "!", "*", "&", "&&", "|", "||", "<", "::", "..", "..=":
		return true
	}
	return false
}
