package syntax

type Pat interface {
	Node
	patNode()
}

type PatWild struct {
	Underscore Span
}

// PatIdent is [ref] [mut] name [@ subpattern].
type PatIdent struct {
	ByRef  *Span
	Mut    *Span
	Ident  Ident
	At     *Span
	Subpat Pat
}

type PatPath struct {
	QSelf *QSelf
	Path  *Path
}

type PatTupleStruct struct {
	Path  *Path
	Paren DelimSpan
	Elems Punctuated[Pat]
}

type PatStruct struct {
	Path   *Path
	Brace  DelimSpan
	Fields Punctuated[*FieldPat]
	Rest   *Span
}

// FieldPat is name: pat, or the shorthand name when Colon is nil.
type FieldPat struct {
	Attrs  []*Attribute
	Member Member
	Colon  *Span
	Pat    Pat
}

type PatTuple struct {
	Paren DelimSpan
	Elems Punctuated[Pat]
}

type PatReference struct {
	And Span
	Mut *Span
	Pat Pat
}

// PatLit holds a literal or a negated literal expression.
type PatLit struct {
	Expr Expr
}

type PatRange struct {
	Lo     Expr
	Limits RangeLimits
	Hi     Expr
}

type PatSlice struct {
	Bracket DelimSpan
	Elems   Punctuated[Pat]
}

type PatRest struct {
	Dot2 Span
}

// PatOr is a | b | c, optionally with a leading |.
type PatOr struct {
	Leading *Span
	Cases   Punctuated[Pat]
}

// PatType is pat: Type, used for function and closure arguments.
type PatType struct {
	Pat   Pat
	Colon Span
	Type  Type
}

type PatMacro struct {
	Mac *Macro
}

func (*PatWild) patNode()        {}
func (*PatIdent) patNode()       {}
func (*PatPath) patNode()        {}
func (*PatTupleStruct) patNode() {}
func (*PatStruct) patNode()      {}
func (*PatTuple) patNode()       {}
func (*PatReference) patNode()   {}
func (*PatLit) patNode()         {}
func (*PatRange) patNode()       {}
func (*PatSlice) patNode()       {}
func (*PatRest) patNode()        {}
func (*PatOr) patNode()          {}
func (*PatType) patNode()        {}
func (*PatMacro) patNode()       {}
