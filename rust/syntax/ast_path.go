package syntax

// Path is a::b::<T>::c, optionally with a leading ::.
type Path struct {
	Leading  *Span
	Segments Punctuated[*PathSegment]
}

// NewPath builds a plain path from segment names.
func NewPath(names ...string) *Path {
	p := &Path{}
	for _, name := range names {
		p.Segments.Push(&PathSegment{Ident: NewIdent(name)})
	}
	return p
}

// Ident returns the single identifier of a one-segment path without
// arguments.
func (p *Path) Ident() (Ident, bool) {
	if p.Leading != nil || p.Segments.Len() != 1 {
		return Ident{}, false
	}
	seg := p.Segments.At(0)
	if seg.Args != nil {
		return Ident{}, false
	}
	return seg.Ident, true
}

func (p *Path) String() string {
	s := ""
	if p.Leading != nil {
		s = "::"
	}
	for i, seg := range p.Segments.Values() {
		if i > 0 {
			s += "::"
		}
		s += seg.Ident.Name
	}
	return s
}

type PathSegment struct {
	Ident Ident
	// nil, *AngleBracketedArgs or *ParenthesizedArgs
	Args PathArguments
}

type PathArguments interface {
	Node
	pathArguments()
}

// AngleBracketedArgs is <A, B> or, in expression position, ::<A, B>.
type AngleBracketedArgs struct {
	Colon2 *Span
	Lt     Span
	Args   Punctuated[GenericArgument]
	Gt     Span
}

// ParenthesizedArgs is (A, B) -> C as in Fn(A, B) -> C.
type ParenthesizedArgs struct {
	Paren  DelimSpan
	Inputs Punctuated[Type]
	Output *ReturnType
}

func (*AngleBracketedArgs) pathArguments() {}
func (*ParenthesizedArgs) pathArguments()  {}

type GenericArgument interface {
	Node
	genericArgument()
}

type LifetimeArg struct {
	Lifetime Lifetime
}

type TypeArg struct {
	Type Type
}

// ConstArg is a literal, a block or a negated literal in argument position.
type ConstArg struct {
	Expr Expr
}

// BindingArg is Item = T or, with generics, Item<'a> = T.
type BindingArg struct {
	Ident    Ident
	Generics *AngleBracketedArgs
	Eq       Span
	Type     Type
}

// ConstraintArg is Item: Bound + Bound.
type ConstraintArg struct {
	Ident  Ident
	Colon  Span
	Bounds Punctuated[TypeParamBound]
}

func (*LifetimeArg) genericArgument()   {}
func (*TypeArg) genericArgument()       {}
func (*ConstArg) genericArgument()      {}
func (*BindingArg) genericArgument()    {}
func (*ConstraintArg) genericArgument() {}

// QSelf is the <T as Trait> prefix of a qualified path. Position counts the
// leading path segments that belong to Trait; zero means <T>::rest.
type QSelf struct {
	Lt       Span
	Type     Type
	As       *Span
	Position int
	Gt       Span
}
