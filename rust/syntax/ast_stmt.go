package syntax

type Block struct {
	Brace DelimSpan
	Stmts []Stmt
}

type Stmt interface {
	Node
	stmtNode()
}

// StmtLocal is let pat [: Type] [= init];
type StmtLocal struct {
	Attrs []*Attribute
	Let   Span
	Pat   Pat
	Colon *Span
	Type  Type
	Eq    *Span
	Init  Expr
	Semi  Span
}

type StmtItem struct {
	Item Item
}

// StmtExpr is an expression statement. Semi is nil for a trailing expression
// or a block-like expression that needs no semicolon.
type StmtExpr struct {
	Attrs []*Attribute
	Expr  Expr
	Semi  *Span
}

type StmtEmpty struct {
	Semi Span
}

func (*StmtLocal) stmtNode() {}
func (*StmtItem) stmtNode()  {}
func (*StmtExpr) stmtNode()  {}
func (*StmtEmpty) stmtNode() {}
