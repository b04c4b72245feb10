package syntax

// precedence orders binary operators from loosest to tightest.
type precedence int

const (
	precAny precedence = iota
	precAssign
	precRange
	precOr
	precAnd
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precArith
	precTerm
	precCast
	precPrefix
)

type binOpInfo struct {
	kind BinOpKind
	prec precedence
}

var binOps = map[string]binOpInfo{
	"+":   {OpAdd, precArith},
	"-":   {OpSub, precArith},
	"*":   {OpMul, precTerm},
	"/":   {OpDiv, precTerm},
	"%":   {OpRem, precTerm},
	"&&":  {OpAnd, precAnd},
	"||":  {OpOr, precOr},
	"^":   {OpBitXor, precBitXor},
	"&":   {OpBitAnd, precBitAnd},
	"|":   {OpBitOr, precBitOr},
	"<<":  {OpShl, precShift},
	">>":  {OpShr, precShift},
	"==":  {OpEq, precCompare},
	"<":   {OpLt, precCompare},
	"<=":  {OpLe, precCompare},
	"!=":  {OpNe, precCompare},
	">=":  {OpGe, precCompare},
	">":   {OpGt, precCompare},
	"+=":  {OpAddEq, precAssign},
	"-=":  {OpSubEq, precAssign},
	"*=":  {OpMulEq, precAssign},
	"/=":  {OpDivEq, precAssign},
	"%=":  {OpRemEq, precAssign},
	"^=":  {OpBitXorEq, precAssign},
	"&=":  {OpBitAndEq, precAssign},
	"|=":  {OpBitOrEq, precAssign},
	"<<=": {OpShlEq, precAssign},
	">>=": {OpShrEq, precAssign},
}

// exprPrecedence reports how tightly e binds, for deciding where the printer
// needs parentheses. Atoms and postfix forms bind tightest.
func exprPrecedence(e Expr) precedence {
	switch e := e.(type) {
	case *ExprAssign, *ExprAssignOp:
		return precAssign
	case *ExprRange:
		return precRange
	case *ExprBinary:
		return binOps[e.Op.Kind.String()].prec
	case *ExprCast:
		return precCast
	case *ExprUnary, *ExprReference:
		return precPrefix
	case *ExprClosure, *ExprReturn, *ExprBreak:
		return precAny
	}
	return precPrefix + 1
}
