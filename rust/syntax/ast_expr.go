package syntax

type Expr interface {
	Node
	exprNode()
}

type BinOpKind int

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpAnd
	OpOr
	OpBitXor
	OpBitAnd
	OpBitOr
	OpShl
	OpShr
	OpEq
	OpLt
	OpLe
	OpNe
	OpGe
	OpGt
	OpAddEq
	OpSubEq
	OpMulEq
	OpDivEq
	OpRemEq
	OpBitXorEq
	OpBitAndEq
	OpBitOrEq
	OpShlEq
	OpShrEq
)

var binOpText = map[BinOpKind]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpRem: "%",
	OpAnd: "&&", OpOr: "||", OpBitXor: "^", OpBitAnd: "&", OpBitOr: "|",
	OpShl: "<<", OpShr: ">>",
	OpEq: "==", OpLt: "<", OpLe: "<=", OpNe: "!=", OpGe: ">=", OpGt: ">",
	OpAddEq: "+=", OpSubEq: "-=", OpMulEq: "*=", OpDivEq: "/=", OpRemEq: "%=",
	OpBitXorEq: "^=", OpBitAndEq: "&=", OpBitOrEq: "|=", OpShlEq: "<<=", OpShrEq: ">>=",
}

func (k BinOpKind) String() string {
	return binOpText[k]
}

// IsCompound reports whether k is an assigning operator such as +=.
func (k BinOpKind) IsCompound() bool {
	return k >= OpAddEq
}

type BinOp struct {
	Kind BinOpKind
	Span Span
}

type UnOpKind int

const (
	OpDeref UnOpKind = iota
	OpNot
	OpNeg
)

var unOpText = map[UnOpKind]string{OpDeref: "*", OpNot: "!", OpNeg: "-"}

func (k UnOpKind) String() string {
	return unOpText[k]
}

type UnOp struct {
	Kind UnOpKind
	Span Span
}

// RangeLimits is .. (half open) or ..= / ... (closed).
type RangeLimits struct {
	Span   Span
	Closed bool
	// Dots3 marks the legacy ... spelling of a closed range pattern.
	Dots3 bool
}

func (r RangeLimits) String() string {
	switch {
	case r.Dots3:
		return "..."
	case r.Closed:
		return "..="
	}
	return ".."
}

type ExprArray struct {
	Bracket DelimSpan
	Elems   Punctuated[Expr]
}

type ExprAssign struct {
	Left  Expr
	Eq    Span
	Right Expr
}

type ExprAssignOp struct {
	Left  Expr
	Op    BinOp
	Right Expr
}

type ExprBinary struct {
	Left  Expr
	Op    BinOp
	Right Expr
}

type ExprBlock struct {
	Label *Label
	Block *Block
}

type ExprUnsafe struct {
	Unsafe Span
	Block  *Block
}

type ExprBreak struct {
	Break Span
	Label *Lifetime
	Expr  Expr
}

type ExprContinue struct {
	Continue Span
	Label    *Lifetime
}

type ExprCall struct {
	Func  Expr
	Paren DelimSpan
	Args  Punctuated[Expr]
}

type ExprCast struct {
	Expr Expr
	As   Span
	Type Type
}

// ExprClosure is [move] |inputs| [-> T] body. Or1 and Or2 are the two bars,
// which come from a single || token pair for an empty argument list.
type ExprClosure struct {
	Move   *Span
	Or1    Span
	Inputs Punctuated[Pat]
	Or2    Span
	Output *ReturnType
	Body   Expr
}

type ExprField struct {
	Base   Expr
	Dot    Span
	Member Member
}

type ExprForLoop struct {
	Label *Label
	For   Span
	Pat   Pat
	In    Span
	Expr  Expr
	Body  *Block
}

// ExprIf is if cond { } [else if ... | else { }]. ElseBranch is an *ExprIf or
// an *ExprBlock.
type ExprIf struct {
	If         Span
	Cond       Expr
	Then       *Block
	Else       *Span
	ElseBranch Expr
}

// ExprLet is the let pat = expr condition of if let and while let.
type ExprLet struct {
	Let  Span
	Pat  Pat
	Eq   Span
	Expr Expr
}

type ExprIndex struct {
	Expr    Expr
	Bracket DelimSpan
	Index   Expr
}

type ExprLit struct {
	Lit *Lit
}

type ExprLoop struct {
	Label *Label
	Loop  Span
	Body  *Block
}

type ExprMacro struct {
	Mac *Macro
}

type ExprMatch struct {
	Match Span
	Expr  Expr
	Brace DelimSpan
	Arms  []*Arm
}

type Arm struct {
	Attrs    []*Attribute
	Pat      Pat
	Guard    *Guard
	FatArrow Span
	Body     Expr
	Comma    *Span
}

type Guard struct {
	If   Span
	Cond Expr
}

type ExprMethodCall struct {
	Receiver  Expr
	Dot       Span
	Method    Ident
	Turbofish *AngleBracketedArgs
	Paren     DelimSpan
	Args      Punctuated[Expr]
}

type ExprParen struct {
	Paren DelimSpan
	Expr  Expr
}

type ExprPath struct {
	QSelf *QSelf
	Path  *Path
}

// ExprRange has optional bounds: a..b, a.., ..b, .. and the ..= forms.
type ExprRange struct {
	From   Expr
	Limits RangeLimits
	To     Expr
}

type ExprReference struct {
	And  Span
	Mut  *Span
	Expr Expr
}

type ExprRepeat struct {
	Bracket DelimSpan
	Expr    Expr
	Semi    Span
	Len     Expr
}

type ExprReturn struct {
	Return Span
	Expr   Expr
}

type ExprStruct struct {
	Path   *Path
	Brace  DelimSpan
	Fields Punctuated[*FieldValue]
	Dot2   *Span
	Rest   Expr
}

// FieldValue is name: expr, or the shorthand name when Colon is nil.
type FieldValue struct {
	Attrs  []*Attribute
	Member Member
	Colon  *Span
	Expr   Expr
}

type ExprTry struct {
	Expr     Expr
	Question Span
}

type ExprTuple struct {
	Paren DelimSpan
	Elems Punctuated[Expr]
}

type ExprUnary struct {
	Op   UnOp
	Expr Expr
}

type ExprWhile struct {
	Label *Label
	While Span
	Cond  Expr
	Body  *Block
}

func (*ExprArray) exprNode()      {}
func (*ExprAssign) exprNode()     {}
func (*ExprAssignOp) exprNode()   {}
func (*ExprBinary) exprNode()     {}
func (*ExprBlock) exprNode()      {}
func (*ExprUnsafe) exprNode()     {}
func (*ExprBreak) exprNode()      {}
func (*ExprContinue) exprNode()   {}
func (*ExprCall) exprNode()       {}
func (*ExprCast) exprNode()       {}
func (*ExprClosure) exprNode()    {}
func (*ExprField) exprNode()      {}
func (*ExprForLoop) exprNode()    {}
func (*ExprIf) exprNode()         {}
func (*ExprLet) exprNode()        {}
func (*ExprIndex) exprNode()      {}
func (*ExprLit) exprNode()        {}
func (*ExprLoop) exprNode()       {}
func (*ExprMacro) exprNode()      {}
func (*ExprMatch) exprNode()      {}
func (*ExprMethodCall) exprNode() {}
func (*ExprParen) exprNode()      {}
func (*ExprPath) exprNode()       {}
func (*ExprRange) exprNode()      {}
func (*ExprReference) exprNode()  {}
func (*ExprRepeat) exprNode()     {}
func (*ExprReturn) exprNode()     {}
func (*ExprStruct) exprNode()     {}
func (*ExprTry) exprNode()        {}
func (*ExprTuple) exprNode()      {}
func (*ExprUnary) exprNode()      {}
func (*ExprWhile) exprNode()      {}
