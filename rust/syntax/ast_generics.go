package syntax

// Generics is <params> plus an optional where clause. Lt and Gt are nil when
// there are no angle brackets.
type Generics struct {
	Lt     *Span
	Params Punctuated[GenericParam]
	Gt     *Span
	Where  *WhereClause
}

type GenericParam interface {
	Node
	genericParam()
}

type LifetimeParam struct {
	Attrs    []*Attribute
	Lifetime Lifetime
	Colon    *Span
	Bounds   Punctuated[Lifetime]
}

type TypeParam struct {
	Attrs   []*Attribute
	Ident   Ident
	Colon   *Span
	Bounds  Punctuated[TypeParamBound]
	Eq      *Span
	Default Type
}

type ConstParam struct {
	Attrs   []*Attribute
	Const   Span
	Ident   Ident
	Colon   Span
	Type    Type
	Eq      *Span
	Default Expr
}

func (*LifetimeParam) genericParam() {}
func (*TypeParam) genericParam()     {}
func (*ConstParam) genericParam()    {}

type TypeParamBound interface {
	Node
	typeParamBound()
}

// TraitBound is Path, ?Path, for<'a> Path, or any of those in parentheses.
type TraitBound struct {
	Paren     *DelimSpan
	Maybe     *Span
	Lifetimes *BoundLifetimes
	Path      *Path
}

type LifetimeBound struct {
	Lifetime Lifetime
}

func (*TraitBound) typeParamBound()    {}
func (*LifetimeBound) typeParamBound() {}

// BoundLifetimes is for<'a, 'b>.
type BoundLifetimes struct {
	For       Span
	Lt        Span
	Lifetimes Punctuated[*LifetimeParam]
	Gt        Span
}

type WhereClause struct {
	Where      Span
	Predicates Punctuated[WherePredicate]
}

type WherePredicate interface {
	Node
	wherePredicate()
}

type PredicateType struct {
	Lifetimes *BoundLifetimes
	Bounded   Type
	Colon     Span
	Bounds    Punctuated[TypeParamBound]
}

type PredicateLifetime struct {
	Lifetime Lifetime
	Colon    Span
	Bounds   Punctuated[Lifetime]
}

func (*PredicateType) wherePredicate()     {}
func (*PredicateLifetime) wherePredicate() {}
