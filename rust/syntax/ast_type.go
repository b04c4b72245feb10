package syntax

type Type interface {
	Node
	typeNode()
}

type TypePath struct {
	QSelf *QSelf
	Path  *Path
}

type TypeReference struct {
	And      Span
	Lifetime *Lifetime
	Mut      *Span
	Elem     Type
}

// TypePtr is *const T or *mut T.
type TypePtr struct {
	Star  Span
	Const *Span
	Mut   *Span
	Elem  Type
}

type TypeSlice struct {
	Bracket DelimSpan
	Elem    Type
}

type TypeArray struct {
	Bracket DelimSpan
	Elem    Type
	Semi    Span
	Len     Expr
}

type TypeTuple struct {
	Paren DelimSpan
	Elems Punctuated[Type]
}

type TypeParen struct {
	Paren DelimSpan
	Elem  Type
}

type TypeNever struct {
	Bang Span
}

type TypeInfer struct {
	Underscore Span
}

type TypeBareFn struct {
	Lifetimes *BoundLifetimes
	Unsafe    *Span
	Abi       *Abi
	Fn        Span
	Paren     DelimSpan
	Inputs    Punctuated[*BareFnArg]
	Output    *ReturnType
}

type BareFnArg struct {
	Name  *Ident
	Colon *Span
	Type  Type
}

// TypeTraitObject is dyn A + B, or a bare bound list in older syntax.
type TypeTraitObject struct {
	Dyn    *Span
	Bounds Punctuated[TypeParamBound]
}

type TypeImplTrait struct {
	Impl   Span
	Bounds Punctuated[TypeParamBound]
}

type TypeMacro struct {
	Mac *Macro
}

func (*TypePath) typeNode()        {}
func (*TypeReference) typeNode()   {}
func (*TypePtr) typeNode()         {}
func (*TypeSlice) typeNode()       {}
func (*TypeArray) typeNode()       {}
func (*TypeTuple) typeNode()       {}
func (*TypeParen) typeNode()       {}
func (*TypeNever) typeNode()       {}
func (*TypeInfer) typeNode()       {}
func (*TypeBareFn) typeNode()      {}
func (*TypeTraitObject) typeNode() {}
func (*TypeImplTrait) typeNode()   {}
func (*TypeMacro) typeNode()       {}
