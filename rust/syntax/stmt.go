package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

func parseBlock(in *Input) (*Block, error) {
	stmts, brace, err := Delimited(in, tokens.Brace, parseStmts)
	if err != nil {
		return nil, err
	}
	return &Block{Brace: brace, Stmts: stmts}, nil
}

func parseStmts(in *Input) ([]Stmt, error) {
	var stmts []Stmt
	for !in.IsEmpty() {
		stmt, err := parseStmt(in)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// isItemStart looks ahead, past a visibility, for the keywords that begin
// an item in statement position.
func isItemStart(c Cursor) bool {
	in := newInput(c)
	if vis, _ := parseVisibility(in); vis.Kind != VisInherited {
		return true
	}
	switch {
	case in.Peek(isKeyword("fn")), in.Peek(isKeyword("struct")), in.Peek(isKeyword("enum")),
		in.Peek(isKeyword("use")), in.Peek(isKeyword("mod")), in.Peek(isKeyword("impl")),
		in.Peek(isKeyword("trait")), in.Peek(isKeyword("type")), in.Peek(isKeyword("static")),
		in.Peek(isKeyword("extern")):
		return true
	case in.Peek(isKeyword("const")):
		return !in.Peek2(isGroup(tokens.Brace))
	case in.Peek(isKeyword("unsafe")):
		return !in.Peek2(isGroup(tokens.Brace))
	case in.Peek(isKeyword("async")):
		return in.Peek2(isKeyword("fn")) || in.Peek2(isKeyword("unsafe"))
	case in.Peek(isContextual("union")), in.Peek(isContextual("auto")):
		return in.Peek2(isIdent) || in.Peek2(isKeyword("trait"))
	case in.Peek(isContextual("macro_rules")):
		return in.Peek2(isPunct("!")) && in.Peek3(isIdent)
	}
	return false
}

func isContextual(word string) func(Cursor) bool {
	return func(c Cursor) bool {
		tok, _, ok := c.Token()
		return ok && tok.Kind == tokens.KindIdent && tok.Text == word
	}
}

func parseStmt(in *Input) (Stmt, error) {
	if semi := in.OptPunct(";"); semi != nil {
		return &StmtEmpty{Semi: *semi}, nil
	}
	if in.Peek(isItemStart) || (in.Peek(isOuterAttr) && itemAfterAttrs(in)) {
		item, err := parseItem(in)
		if err != nil {
			return nil, err
		}
		return &StmtItem{Item: item}, nil
	}
	attrs, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	if in.Peek(isKeyword("let")) {
		return parseLocal(in, attrs)
	}
	if mac, ok, err := parseStmtMacro(in); err != nil {
		return nil, err
	} else if ok {
		return &StmtExpr{Attrs: attrs, Expr: &ExprMacro{Mac: mac}, Semi: in.OptPunct(";")}, nil
	}

	e, blockLike, err := parseStmtExpr(in)
	if err != nil {
		return nil, err
	}
	stmt := &StmtExpr{Attrs: attrs, Expr: e, Semi: in.OptPunct(";")}
	if stmt.Semi == nil && !blockLike && !in.IsEmpty() {
		return nil, in.Error("`;`")
	}
	return stmt, nil
}

func itemAfterAttrs(in *Input) bool {
	fork := in.Fork()
	if _, err := parseOuterAttrs(fork); err != nil {
		return false
	}
	return fork.Peek(isItemStart)
}

// parseStmtMacro parses name! { ... } in statement position, which like a
// block needs no semicolon. Other macro calls are left to the expression
// parser so that operators may follow them.
func parseStmtMacro(in *Input) (*Macro, bool, error) {
	if !in.Peek(isPathStart) {
		return nil, false, nil
	}
	fork := in.Fork()
	path, err := parsePath(fork, pathMod)
	if err != nil || !fork.Peek(isMacroBang) {
		return nil, false, nil
	}
	_, bang, _ := punctAt(fork.cur, "!")
	if !isGroup(tokens.Brace)(bang) {
		return nil, false, nil
	}
	mac, err := parseMacroTail(fork, path)
	if err != nil {
		return nil, false, err
	}
	in.Commit(fork)
	return mac, true, nil
}

func parseLocal(in *Input, attrs []*Attribute) (Stmt, error) {
	let, _ := in.Keyword("let")
	local := &StmtLocal{Attrs: attrs, Let: let}
	var err error
	if local.Pat, err = parsePatTop(in); err != nil {
		return nil, err
	}
	if colon := in.OptPunct(":"); colon != nil {
		local.Colon = colon
		if local.Type, err = parseType(in, true); err != nil {
			return nil, err
		}
	}
	if in.Peek(isPunctExact("=")) {
		eq, _ := in.Punct("=")
		local.Eq = &eq
		if local.Init, err = parseExprAny(in); err != nil {
			return nil, err
		}
	}
	if local.Semi, err = in.Punct(";"); err != nil {
		return nil, err
	}
	return local, nil
}

// isBlockLikeStart matches expressions that end a statement at their closing
// brace: blocks, if, match, loops and unsafe blocks.
func isBlockLikeStart(c Cursor) bool {
	switch {
	case isGroup(tokens.Brace)(c), isKeyword("if")(c), isKeyword("match")(c),
		isKeyword("loop")(c), isKeyword("while")(c), isKeyword("for")(c):
		return true
	case isKeyword("unsafe")(c):
		next, ok := c.skip(1)
		return ok && isGroup(tokens.Brace)(next)
	case isLifetime(c):
		next, ok := c.skip(1)
		return ok && isPunctExact(":")(next)
	}
	return false
}

// parseStmtExpr parses an expression in statement or match arm position.
// A leading block-like expression ends there unless a method call, field
// access or ? continues it; blockLike reports that no separator is needed.
func parseStmtExpr(in *Input) (e Expr, blockLike bool, err error) {
	if !in.Peek(isBlockLikeStart) {
		e, err = parseExprAny(in)
		return e, false, err
	}
	if e, err = parseAtom(in, exprCtx{}); err != nil {
		return nil, false, err
	}
	if !in.Peek(isPunctExact(".")) && !in.Peek(isPunct("?")) {
		return e, true, nil
	}
	if e, err = parsePostfix(in, e); err != nil {
		return nil, false, err
	}
	if e, err = parseBinary(in, exprCtx{}, e, precAny); err != nil {
		return nil, false, err
	}
	return e, false, nil
}
