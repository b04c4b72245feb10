package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

// operand prints e, wrapped in parentheses if it binds looser than min.
func (p *printer) operand(e Expr, min precedence) {
	if exprPrecedence(e) < min {
		p.group(tokens.Paren, DelimSpan{}, func() { p.node(e) })
		return
	}
	p.node(e)
}

// trailingOperand is operand for the rightmost position, where closures,
// return and break extend to the end without parentheses.
func (p *printer) trailingOperand(e Expr, min precedence) {
	switch e.(type) {
	case *ExprClosure, *ExprReturn, *ExprBreak:
		p.node(e)
		return
	}
	p.operand(e, min)
}

// receiver prints the base of a postfix expression.
func (p *printer) receiver(e Expr) {
	p.operand(e, precPrefix+1)
}

func (e *ExprArray) printTo(p *printer) {
	p.group(tokens.Bracket, e.Bracket, func() {
		printPunctuated(p, e.Elems, ",")
	})
}

func (e *ExprAssign) printTo(p *printer) {
	p.operand(e.Left, precAssign+1)
	p.punct("=", e.Eq)
	p.trailingOperand(e.Right, precAssign)
}

func (e *ExprAssignOp) printTo(p *printer) {
	p.operand(e.Left, precAssign+1)
	p.punct(e.Op.Kind.String(), e.Op.Span)
	p.trailingOperand(e.Right, precAssign)
}

func (e *ExprBinary) printTo(p *printer) {
	prec := binOps[e.Op.Kind.String()].prec
	p.operand(e.Left, prec)
	p.punct(e.Op.Kind.String(), e.Op.Span)
	p.trailingOperand(e.Right, prec+1)
}

func (e *ExprBlock) printTo(p *printer) {
	p.node(e.Label)
	p.node(e.Block)
}

func (e *ExprUnsafe) printTo(p *printer) {
	p.keyword("unsafe", e.Unsafe)
	p.node(e.Block)
}

func (e *ExprBreak) printTo(p *printer) {
	p.keyword("break", e.Break)
	if e.Label != nil {
		p.lifetime(*e.Label)
	}
	p.node(e.Expr)
}

func (e *ExprContinue) printTo(p *printer) {
	p.keyword("continue", e.Continue)
	if e.Label != nil {
		p.lifetime(*e.Label)
	}
}

func (e *ExprCall) printTo(p *printer) {
	p.receiver(e.Func)
	p.group(tokens.Paren, e.Paren, func() {
		printPunctuated(p, e.Args, ",")
	})
}

func (e *ExprCast) printTo(p *printer) {
	p.operand(e.Expr, precCast)
	p.keyword("as", e.As)
	p.node(e.Type)
}

func (e *ExprClosure) printTo(p *printer) {
	p.optKeyword("move", e.Move)
	p.punct("|", e.Or1)
	printPunctuated(p, e.Inputs, ",")
	p.punct("|", e.Or2)
	p.node(e.Output)
	p.node(e.Body)
}

func (e *ExprField) printTo(p *printer) {
	p.receiver(e.Base)
	p.punct(".", e.Dot)
	p.node(e.Member)
}

func (e *ExprForLoop) printTo(p *printer) {
	p.node(e.Label)
	p.keyword("for", e.For)
	p.node(e.Pat)
	p.keyword("in", e.In)
	p.node(e.Expr)
	p.node(e.Body)
}

func (e *ExprIf) printTo(p *printer) {
	p.keyword("if", e.If)
	p.node(e.Cond)
	p.node(e.Then)
	if e.ElseBranch != nil {
		p.keyword("else", spanOf(e.Else))
		p.node(e.ElseBranch)
	}
}

func (e *ExprLet) printTo(p *printer) {
	p.keyword("let", e.Let)
	p.node(e.Pat)
	p.punct("=", e.Eq)
	p.node(e.Expr)
}

func (e *ExprIndex) printTo(p *printer) {
	p.receiver(e.Expr)
	p.group(tokens.Bracket, e.Bracket, func() {
		p.node(e.Index)
	})
}

func (e *ExprLit) printTo(p *printer) { p.node(e.Lit) }

func (e *ExprLoop) printTo(p *printer) {
	p.node(e.Label)
	p.keyword("loop", e.Loop)
	p.node(e.Body)
}

func (e *ExprMacro) printTo(p *printer) { p.node(e.Mac) }

func (e *ExprMatch) printTo(p *printer) {
	p.keyword("match", e.Match)
	p.node(e.Expr)
	p.group(tokens.Brace, e.Brace, func() {
		for i, arm := range e.Arms {
			p.node(arm)
			if arm.Comma == nil && i < len(e.Arms)-1 && !isBlockLike(arm.Body) {
				p.punct(",", Span{})
			}
		}
	})
}

func isBlockLike(e Expr) bool {
	switch e.(type) {
	case *ExprBlock, *ExprIf, *ExprMatch, *ExprLoop, *ExprWhile, *ExprForLoop, *ExprUnsafe:
		return true
	}
	return false
}

func (a *Arm) printTo(p *printer) {
	printAttrs(p, a.Attrs)
	p.node(a.Pat)
	if a.Guard != nil {
		p.keyword("if", a.Guard.If)
		p.node(a.Guard.Cond)
	}
	p.punct("=>", a.FatArrow)
	p.node(a.Body)
	p.optPunct(",", a.Comma)
}

func (e *ExprMethodCall) printTo(p *printer) {
	p.receiver(e.Receiver)
	p.punct(".", e.Dot)
	p.node(e.Method)
	p.node(e.Turbofish)
	p.group(tokens.Paren, e.Paren, func() {
		printPunctuated(p, e.Args, ",")
	})
}

func (e *ExprParen) printTo(p *printer) {
	p.group(tokens.Paren, e.Paren, func() {
		p.node(e.Expr)
	})
}

func (e *ExprPath) printTo(p *printer) { printQPath(p, e.QSelf, e.Path) }

func (e *ExprRange) printTo(p *printer) {
	if e.From != nil {
		p.operand(e.From, precRange+1)
	}
	p.punct(e.Limits.String(), e.Limits.Span)
	if e.To != nil {
		p.trailingOperand(e.To, precRange+1)
	}
}

func (e *ExprReference) printTo(p *printer) {
	p.punct("&", e.And)
	p.optKeyword("mut", e.Mut)
	p.trailingOperand(e.Expr, precPrefix)
}

func (e *ExprRepeat) printTo(p *printer) {
	p.group(tokens.Bracket, e.Bracket, func() {
		p.node(e.Expr)
		p.punct(";", e.Semi)
		p.node(e.Len)
	})
}

func (e *ExprReturn) printTo(p *printer) {
	p.keyword("return", e.Return)
	p.node(e.Expr)
}

func (e *ExprStruct) printTo(p *printer) {
	p.node(e.Path)
	p.group(tokens.Brace, e.Brace, func() {
		printPunctuated(p, e.Fields, ",")
		if e.Dot2 != nil {
			if !e.Fields.IsEmpty() && !e.Fields.Trailing() {
				p.punct(",", Span{})
			}
			p.punct("..", *e.Dot2)
			p.node(e.Rest)
		}
	})
}

func (f *FieldValue) printTo(p *printer) {
	printAttrs(p, f.Attrs)
	p.node(f.Member)
	if f.Colon != nil {
		p.punct(":", *f.Colon)
		p.node(f.Expr)
	}
}

func (e *ExprTry) printTo(p *printer) {
	p.receiver(e.Expr)
	p.punct("?", e.Question)
}

func (e *ExprTuple) printTo(p *printer) {
	p.group(tokens.Paren, e.Paren, func() {
		printPunctuated(p, e.Elems, ",")
		if e.Elems.Len() == 1 && !e.Elems.Trailing() {
			p.punct(",", Span{})
		}
	})
}

func (e *ExprUnary) printTo(p *printer) {
	p.punct(e.Op.Kind.String(), e.Op.Span)
	p.trailingOperand(e.Expr, precPrefix)
}

func (e *ExprWhile) printTo(p *printer) {
	p.node(e.Label)
	p.keyword("while", e.While)
	p.node(e.Cond)
	p.node(e.Body)
}
