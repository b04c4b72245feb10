package syntax

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

func walkList[T Node](v Visitor, list Punctuated[T]) {
	for _, pair := range list.pairs {
		Walk(v, pair.Value)
	}
}

func walkSlice[T Node](v Visitor, list []T) {
	for _, n := range list {
		Walk(v, n)
	}
}

func walkLifetime(v Visitor, lt *Lifetime) {
	if lt != nil {
		Walk(v, *lt)
	}
}

func walkIdent(v Visitor, id *Ident) {
	if id != nil {
		Walk(v, *id)
	}
}

func walkQSelf(v Visitor, q *QSelf) {
	if q != nil {
		Walk(v, q.Type)
	}
}

// Walk traverses a syntax tree in depth-first order: it starts by calling
// v.Visit(n); n must not be nil. If the visitor w returned by v.Visit(n) is
// not nil, Walk is invoked recursively with visitor w for each of the
// non-nil children of n, followed by a call of w.Visit(nil). Children are
// visited in source order.
func Walk(v Visitor, n Node) {
	if isNil(n) {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}

	switch n := n.(type) {
	// Leaves
	case Ident, Lifetime, *Lit, Member, *TypeNever, *TypeInfer, *PatWild, *PatRest,
		*UseGlob, *StmtEmpty:
		// nothing to do
	case *Label:
		Walk(v, n.Name)
	case *ExprContinue:
		walkLifetime(v, n.Label)
	case *LifetimeArg:
		Walk(v, n.Lifetime)
	case *LifetimeBound:
		Walk(v, n.Lifetime)

	// Shared pieces
	case *Attribute:
		Walk(v, n.Path)
	case Visibility:
		Walk(v, n.Path)
	case *Macro:
		Walk(v, n.Path)
	case *Abi:
		Walk(v, n.Name)
	case *ReturnType:
		Walk(v, n.Type)
	case *File:
		walkSlice(v, n.Attrs)
		walkSlice(v, n.Items)

	// Paths
	case *Path:
		walkList(v, n.Segments)
	case *PathSegment:
		Walk(v, n.Ident)
		Walk(v, n.Args)
	case *AngleBracketedArgs:
		walkList(v, n.Args)
	case *ParenthesizedArgs:
		walkList(v, n.Inputs)
		Walk(v, n.Output)
	case *TypeArg:
		Walk(v, n.Type)
	case *ConstArg:
		Walk(v, n.Expr)
	case *BindingArg:
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		Walk(v, n.Type)
	case *ConstraintArg:
		Walk(v, n.Ident)
		walkList(v, n.Bounds)

	// Generics
	case *Generics:
		walkList(v, n.Params)
		Walk(v, n.Where)
	case *LifetimeParam:
		walkSlice(v, n.Attrs)
		Walk(v, n.Lifetime)
		walkList(v, n.Bounds)
	case *TypeParam:
		walkSlice(v, n.Attrs)
		Walk(v, n.Ident)
		walkList(v, n.Bounds)
		Walk(v, n.Default)
	case *ConstParam:
		walkSlice(v, n.Attrs)
		Walk(v, n.Ident)
		Walk(v, n.Type)
		Walk(v, n.Default)
	case *TraitBound:
		Walk(v, n.Lifetimes)
		Walk(v, n.Path)
	case *BoundLifetimes:
		walkList(v, n.Lifetimes)
	case *WhereClause:
		walkList(v, n.Predicates)
	case *PredicateType:
		Walk(v, n.Lifetimes)
		Walk(v, n.Bounded)
		walkList(v, n.Bounds)
	case *PredicateLifetime:
		Walk(v, n.Lifetime)
		walkList(v, n.Bounds)

	// Types
	case *TypePath:
		walkQSelf(v, n.QSelf)
		Walk(v, n.Path)
	case *TypeReference:
		walkLifetime(v, n.Lifetime)
		Walk(v, n.Elem)
	case *TypePtr:
		Walk(v, n.Elem)
	case *TypeSlice:
		Walk(v, n.Elem)
	case *TypeArray:
		Walk(v, n.Elem)
		Walk(v, n.Len)
	case *TypeTuple:
		walkList(v, n.Elems)
	case *TypeParen:
		Walk(v, n.Elem)
	case *TypeBareFn:
		Walk(v, n.Lifetimes)
		Walk(v, n.Abi)
		walkList(v, n.Inputs)
		Walk(v, n.Output)
	case *BareFnArg:
		walkIdent(v, n.Name)
		Walk(v, n.Type)
	case *TypeTraitObject:
		walkList(v, n.Bounds)
	case *TypeImplTrait:
		walkList(v, n.Bounds)
	case *TypeMacro:
		Walk(v, n.Mac)

	// Patterns
	case *PatIdent:
		Walk(v, n.Ident)
		Walk(v, n.Subpat)
	case *PatPath:
		walkQSelf(v, n.QSelf)
		Walk(v, n.Path)
	case *PatTupleStruct:
		Walk(v, n.Path)
		walkList(v, n.Elems)
	case *PatStruct:
		Walk(v, n.Path)
		walkList(v, n.Fields)
	case *FieldPat:
		walkSlice(v, n.Attrs)
		if n.Colon != nil {
			Walk(v, n.Member)
		}
		Walk(v, n.Pat)
	case *PatTuple:
		walkList(v, n.Elems)
	case *PatReference:
		Walk(v, n.Pat)
	case *PatLit:
		Walk(v, n.Expr)
	case *PatRange:
		Walk(v, n.Lo)
		Walk(v, n.Hi)
	case *PatSlice:
		walkList(v, n.Elems)
	case *PatOr:
		walkList(v, n.Cases)
	case *PatType:
		Walk(v, n.Pat)
		Walk(v, n.Type)
	case *PatMacro:
		Walk(v, n.Mac)

	// Expressions
	case *ExprArray:
		walkList(v, n.Elems)
	case *ExprAssign:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ExprAssignOp:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ExprBinary:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ExprBlock:
		Walk(v, n.Label)
		Walk(v, n.Block)
	case *ExprUnsafe:
		Walk(v, n.Block)
	case *ExprBreak:
		walkLifetime(v, n.Label)
		Walk(v, n.Expr)
	case *ExprCall:
		Walk(v, n.Func)
		walkList(v, n.Args)
	case *ExprCast:
		Walk(v, n.Expr)
		Walk(v, n.Type)
	case *ExprClosure:
		walkList(v, n.Inputs)
		Walk(v, n.Output)
		Walk(v, n.Body)
	case *ExprField:
		Walk(v, n.Base)
		Walk(v, n.Member)
	case *ExprForLoop:
		Walk(v, n.Label)
		Walk(v, n.Pat)
		Walk(v, n.Expr)
		Walk(v, n.Body)
	case *ExprIf:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.ElseBranch)
	case *ExprLet:
		Walk(v, n.Pat)
		Walk(v, n.Expr)
	case *ExprIndex:
		Walk(v, n.Expr)
		Walk(v, n.Index)
	case *ExprLit:
		Walk(v, n.Lit)
	case *ExprLoop:
		Walk(v, n.Label)
		Walk(v, n.Body)
	case *ExprMacro:
		Walk(v, n.Mac)
	case *ExprMatch:
		Walk(v, n.Expr)
		walkSlice(v, n.Arms)
	case *Arm:
		walkSlice(v, n.Attrs)
		Walk(v, n.Pat)
		if n.Guard != nil {
			Walk(v, n.Guard.Cond)
		}
		Walk(v, n.Body)
	case *ExprMethodCall:
		Walk(v, n.Receiver)
		Walk(v, n.Method)
		Walk(v, n.Turbofish)
		walkList(v, n.Args)
	case *ExprParen:
		Walk(v, n.Expr)
	case *ExprPath:
		walkQSelf(v, n.QSelf)
		Walk(v, n.Path)
	case *ExprRange:
		Walk(v, n.From)
		Walk(v, n.To)
	case *ExprReference:
		Walk(v, n.Expr)
	case *ExprRepeat:
		Walk(v, n.Expr)
		Walk(v, n.Len)
	case *ExprReturn:
		Walk(v, n.Expr)
	case *ExprStruct:
		Walk(v, n.Path)
		walkList(v, n.Fields)
		Walk(v, n.Rest)
	case *FieldValue:
		walkSlice(v, n.Attrs)
		Walk(v, n.Member)
		Walk(v, n.Expr)
	case *ExprTry:
		Walk(v, n.Expr)
	case *ExprTuple:
		walkList(v, n.Elems)
	case *ExprUnary:
		Walk(v, n.Expr)
	case *ExprWhile:
		Walk(v, n.Label)
		Walk(v, n.Cond)
		Walk(v, n.Body)

	// Statements
	case *Block:
		walkSlice(v, n.Stmts)
	case *StmtLocal:
		walkSlice(v, n.Attrs)
		Walk(v, n.Pat)
		Walk(v, n.Type)
		Walk(v, n.Init)
	case *StmtItem:
		Walk(v, n.Item)
	case *StmtExpr:
		walkSlice(v, n.Attrs)
		Walk(v, n.Expr)

	// Items
	case *ItemExternCrate:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		if n.Rename != nil {
			Walk(v, n.Rename.Ident)
		}
	case *ItemUse:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Tree)
	case *UsePath:
		Walk(v, n.Ident)
		Walk(v, n.Tree)
	case *UseName:
		Walk(v, n.Ident)
	case *UseRename:
		Walk(v, n.Ident)
		Walk(v, n.Rename)
	case *UseGroup:
		walkList(v, n.Items)
	case *ItemStatic:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Type)
		Walk(v, n.Expr)
	case *ItemConst:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Type)
		Walk(v, n.Expr)
	case *ItemFn:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Sig)
		Walk(v, n.Block)
	case *Signature:
		Walk(v, n.Abi)
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		walkList(v, n.Inputs)
		Walk(v, n.Output)
	case *Receiver:
		walkLifetime(v, n.Lifetime)
		Walk(v, n.Type)
	case *ItemMod:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		walkSlice(v, n.InnerAttrs)
		walkSlice(v, n.Items)
	case *ItemForeignMod:
		walkSlice(v, n.Attrs)
		Walk(v, n.Abi)
		walkSlice(v, n.Items)
	case *ForeignItemFn:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Sig)
	case *ForeignItemStatic:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Type)
	case *ForeignItemType:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
	case *ItemType:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		Walk(v, n.Ty)
	case *FieldsNamed:
		walkList(v, n.Named)
	case *FieldsUnnamed:
		walkList(v, n.Unnamed)
	case *Field:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		walkIdent(v, n.Ident)
		Walk(v, n.Type)
	case *ItemStruct:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		Walk(v, n.Fields)
	case *ItemEnum:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		walkList(v, n.Variants)
	case *Variant:
		walkSlice(v, n.Attrs)
		Walk(v, n.Ident)
		Walk(v, n.Fields)
		Walk(v, n.Discriminant)
	case *ItemUnion:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		Walk(v, n.Fields)
	case *ItemTrait:
		walkSlice(v, n.Attrs)
		Walk(v, n.Vis)
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		walkList(v, n.Supertraits)
		walkSlice(v, n.Items)
	case *TraitItemConst:
		walkSlice(v, n.Attrs)
		Walk(v, n.Ident)
		Walk(v, n.Type)
		Walk(v, n.Default)
	case *TraitItemFn:
		walkSlice(v, n.Attrs)
		Walk(v, n.Sig)
		Walk(v, n.Default)
	case *TraitItemType:
		walkSlice(v, n.Attrs)
		Walk(v, n.Ident)
		Walk(v, n.Generics)
		walkList(v, n.Bounds)
		Walk(v, n.Default)
	case *TraitItemMacro:
		walkSlice(v, n.Attrs)
		Walk(v, n.Mac)
	case *ItemImpl:
		walkSlice(v, n.Attrs)
		Walk(v, n.Generics)
		if n.Trait != nil {
			Walk(v, n.Trait.Path)
		}
		Walk(v, n.SelfTy)
		walkSlice(v, n.Items)
	case *ItemMacro:
		walkSlice(v, n.Attrs)
		Walk(v, n.Mac)
		walkIdent(v, n.Ident)
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses a syntax tree in depth-first order: it starts by calling
// f(n); n must not be nil. If f returns true, Inspect invokes f recursively
// for each of the non-nil children of n, followed by a call of f(nil).
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}
