package syntax

// Folder rebuilds a syntax tree bottom-up. Each Fold method copies the node,
// replaces its children with their folded versions and then passes the copy
// to the matching hook, if set. The input tree is never modified.
//
// Nodes without a hook of their own, such as paths, generics and trait
// items, are still rebuilt so that hooks reach everything below them.
type Folder struct {
	Expr  func(Expr) Expr
	Type  func(Type) Type
	Pat   func(Pat) Pat
	Item  func(Item) Item
	Stmt  func(Stmt) Stmt
	Ident func(Ident) Ident
}

func foldList[T any](list Punctuated[T], fn func(T) T) Punctuated[T] {
	return MapPunctuated(list, fn)
}

func foldSlice[T any](list []T, fn func(T) T) []T {
	if list == nil {
		return nil
	}
	out := make([]T, len(list))
	for i, v := range list {
		out[i] = fn(v)
	}
	return out
}

func (f *Folder) FoldFile(file *File) *File {
	if file == nil {
		return nil
	}
	out := *file
	out.Attrs = f.attrs(file.Attrs)
	out.Items = foldSlice(file.Items, f.FoldItem)
	return &out
}

func (f *Folder) FoldIdent(id Ident) Ident {
	if f.Ident != nil {
		return f.Ident(id)
	}
	return id
}

func (f *Folder) optIdent(id *Ident) *Ident {
	if id == nil {
		return nil
	}
	out := f.FoldIdent(*id)
	return &out
}

func (f *Folder) attrs(attrs []*Attribute) []*Attribute {
	return foldSlice(attrs, func(a *Attribute) *Attribute {
		out := *a
		out.Path = f.path(a.Path)
		return &out
	})
}

func (f *Folder) vis(v Visibility) Visibility {
	v.Path = f.path(v.Path)
	return v
}

func (f *Folder) macro(m *Macro) *Macro {
	if m == nil {
		return nil
	}
	out := *m
	out.Path = f.path(m.Path)
	return &out
}

func (f *Folder) returnType(r *ReturnType) *ReturnType {
	if r == nil {
		return nil
	}
	out := *r
	out.Type = f.FoldType(r.Type)
	return &out
}

func (f *Folder) path(p *Path) *Path {
	if p == nil {
		return nil
	}
	out := *p
	out.Segments = foldList(p.Segments, func(seg *PathSegment) *PathSegment {
		s := *seg
		s.Ident = f.FoldIdent(seg.Ident)
		switch args := seg.Args.(type) {
		case *AngleBracketedArgs:
			s.Args = f.angleArgs(args)
		case *ParenthesizedArgs:
			a := *args
			a.Inputs = foldList(args.Inputs, f.FoldType)
			a.Output = f.returnType(args.Output)
			s.Args = &a
		}
		return &s
	})
	return &out
}

func (f *Folder) angleArgs(args *AngleBracketedArgs) *AngleBracketedArgs {
	if args == nil {
		return nil
	}
	out := *args
	out.Args = foldList(args.Args, f.genericArg)
	return &out
}

func (f *Folder) genericArg(arg GenericArgument) GenericArgument {
	switch arg := arg.(type) {
	case *TypeArg:
		return &TypeArg{Type: f.FoldType(arg.Type)}
	case *ConstArg:
		return &ConstArg{Expr: f.FoldExpr(arg.Expr)}
	case *BindingArg:
		out := *arg
		out.Ident = f.FoldIdent(arg.Ident)
		out.Generics = f.angleArgs(arg.Generics)
		out.Type = f.FoldType(arg.Type)
		return &out
	case *ConstraintArg:
		out := *arg
		out.Ident = f.FoldIdent(arg.Ident)
		out.Bounds = foldList(arg.Bounds, f.bound)
		return &out
	}
	return arg
}

func (f *Folder) qself(q *QSelf) *QSelf {
	if q == nil {
		return nil
	}
	out := *q
	out.Type = f.FoldType(q.Type)
	return &out
}

func (f *Folder) bound(b TypeParamBound) TypeParamBound {
	if tb, ok := b.(*TraitBound); ok {
		out := *tb
		out.Path = f.path(tb.Path)
		return &out
	}
	return b
}

func (f *Folder) generics(g *Generics) *Generics {
	if g == nil {
		return nil
	}
	out := *g
	out.Params = foldList(g.Params, func(param GenericParam) GenericParam {
		switch param := param.(type) {
		case *TypeParam:
			tp := *param
			tp.Attrs = f.attrs(param.Attrs)
			tp.Ident = f.FoldIdent(param.Ident)
			tp.Bounds = foldList(param.Bounds, f.bound)
			tp.Default = f.FoldType(param.Default)
			return &tp
		case *ConstParam:
			cp := *param
			cp.Attrs = f.attrs(param.Attrs)
			cp.Ident = f.FoldIdent(param.Ident)
			cp.Type = f.FoldType(param.Type)
			cp.Default = f.FoldExpr(param.Default)
			return &cp
		}
		return param
	})
	if g.Where != nil {
		w := *g.Where
		w.Predicates = foldList(g.Where.Predicates, func(pred WherePredicate) WherePredicate {
			if pt, ok := pred.(*PredicateType); ok {
				out := *pt
				out.Bounded = f.FoldType(pt.Bounded)
				out.Bounds = foldList(pt.Bounds, f.bound)
				return &out
			}
			return pred
		})
		out.Where = &w
	}
	return &out
}

// FoldType folds the children of t, then applies the Type hook.
func (f *Folder) FoldType(t Type) Type {
	if isNil(t) {
		return t
	}
	out := f.foldTypeChildren(t)
	if f.Type != nil {
		return f.Type(out)
	}
	return out
}

func (f *Folder) foldTypeChildren(t Type) Type {
	switch t := t.(type) {
	case *TypePath:
		out := *t
		out.QSelf = f.qself(t.QSelf)
		out.Path = f.path(t.Path)
		return &out
	case *TypeReference:
		out := *t
		out.Elem = f.FoldType(t.Elem)
		return &out
	case *TypePtr:
		out := *t
		out.Elem = f.FoldType(t.Elem)
		return &out
	case *TypeSlice:
		out := *t
		out.Elem = f.FoldType(t.Elem)
		return &out
	case *TypeArray:
		out := *t
		out.Elem = f.FoldType(t.Elem)
		out.Len = f.FoldExpr(t.Len)
		return &out
	case *TypeTuple:
		out := *t
		out.Elems = foldList(t.Elems, f.FoldType)
		return &out
	case *TypeParen:
		out := *t
		out.Elem = f.FoldType(t.Elem)
		return &out
	case *TypeBareFn:
		out := *t
		out.Inputs = foldList(t.Inputs, func(a *BareFnArg) *BareFnArg {
			arg := *a
			arg.Name = f.optIdent(a.Name)
			arg.Type = f.FoldType(a.Type)
			return &arg
		})
		out.Output = f.returnType(t.Output)
		return &out
	case *TypeTraitObject:
		out := *t
		out.Bounds = foldList(t.Bounds, f.bound)
		return &out
	case *TypeImplTrait:
		out := *t
		out.Bounds = foldList(t.Bounds, f.bound)
		return &out
	case *TypeMacro:
		return &TypeMacro{Mac: f.macro(t.Mac)}
	case *TypeNever:
		out := *t
		return &out
	case *TypeInfer:
		out := *t
		return &out
	}
	return t
}

// FoldPat folds the children of pt, then applies the Pat hook.
func (f *Folder) FoldPat(pt Pat) Pat {
	if isNil(pt) {
		return pt
	}
	out := f.foldPatChildren(pt)
	if f.Pat != nil {
		return f.Pat(out)
	}
	return out
}

func (f *Folder) foldPatChildren(pt Pat) Pat {
	switch pt := pt.(type) {
	case *PatIdent:
		out := *pt
		out.Ident = f.FoldIdent(pt.Ident)
		out.Subpat = f.FoldPat(pt.Subpat)
		return &out
	case *PatPath:
		out := *pt
		out.QSelf = f.qself(pt.QSelf)
		out.Path = f.path(pt.Path)
		return &out
	case *PatTupleStruct:
		out := *pt
		out.Path = f.path(pt.Path)
		out.Elems = foldList(pt.Elems, f.FoldPat)
		return &out
	case *PatStruct:
		out := *pt
		out.Path = f.path(pt.Path)
		out.Fields = foldList(pt.Fields, func(fp *FieldPat) *FieldPat {
			field := *fp
			field.Attrs = f.attrs(fp.Attrs)
			field.Pat = f.FoldPat(fp.Pat)
			return &field
		})
		return &out
	case *PatTuple:
		out := *pt
		out.Elems = foldList(pt.Elems, f.FoldPat)
		return &out
	case *PatReference:
		out := *pt
		out.Pat = f.FoldPat(pt.Pat)
		return &out
	case *PatLit:
		return &PatLit{Expr: f.FoldExpr(pt.Expr)}
	case *PatRange:
		out := *pt
		out.Lo = f.FoldExpr(pt.Lo)
		out.Hi = f.FoldExpr(pt.Hi)
		return &out
	case *PatSlice:
		out := *pt
		out.Elems = foldList(pt.Elems, f.FoldPat)
		return &out
	case *PatOr:
		out := *pt
		out.Cases = foldList(pt.Cases, f.FoldPat)
		return &out
	case *PatType:
		return f.patType(pt)
	case *PatMacro:
		return &PatMacro{Mac: f.macro(pt.Mac)}
	case *PatWild:
		out := *pt
		return &out
	case *PatRest:
		out := *pt
		return &out
	}
	return pt
}

func (f *Folder) patType(pt *PatType) *PatType {
	out := *pt
	out.Pat = f.FoldPat(pt.Pat)
	out.Type = f.FoldType(pt.Type)
	return &out
}

// FoldExpr folds the children of e, then applies the Expr hook.
func (f *Folder) FoldExpr(e Expr) Expr {
	if isNil(e) {
		return e
	}
	out := f.foldExprChildren(e)
	if f.Expr != nil {
		return f.Expr(out)
	}
	return out
}

func (f *Folder) foldExprChildren(e Expr) Expr {
	switch e := e.(type) {
	case *ExprArray:
		out := *e
		out.Elems = foldList(e.Elems, f.FoldExpr)
		return &out
	case *ExprAssign:
		out := *e
		out.Left = f.FoldExpr(e.Left)
		out.Right = f.FoldExpr(e.Right)
		return &out
	case *ExprAssignOp:
		out := *e
		out.Left = f.FoldExpr(e.Left)
		out.Right = f.FoldExpr(e.Right)
		return &out
	case *ExprBinary:
		out := *e
		out.Left = f.FoldExpr(e.Left)
		out.Right = f.FoldExpr(e.Right)
		return &out
	case *ExprBlock:
		out := *e
		out.Block = f.FoldBlock(e.Block)
		return &out
	case *ExprUnsafe:
		out := *e
		out.Block = f.FoldBlock(e.Block)
		return &out
	case *ExprBreak:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		return &out
	case *ExprContinue:
		out := *e
		return &out
	case *ExprCall:
		out := *e
		out.Func = f.FoldExpr(e.Func)
		out.Args = foldList(e.Args, f.FoldExpr)
		return &out
	case *ExprCast:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		out.Type = f.FoldType(e.Type)
		return &out
	case *ExprClosure:
		out := *e
		out.Inputs = foldList(e.Inputs, f.FoldPat)
		out.Output = f.returnType(e.Output)
		out.Body = f.FoldExpr(e.Body)
		return &out
	case *ExprField:
		out := *e
		out.Base = f.FoldExpr(e.Base)
		return &out
	case *ExprForLoop:
		out := *e
		out.Pat = f.FoldPat(e.Pat)
		out.Expr = f.FoldExpr(e.Expr)
		out.Body = f.FoldBlock(e.Body)
		return &out
	case *ExprIf:
		out := *e
		out.Cond = f.FoldExpr(e.Cond)
		out.Then = f.FoldBlock(e.Then)
		out.ElseBranch = f.FoldExpr(e.ElseBranch)
		return &out
	case *ExprLet:
		out := *e
		out.Pat = f.FoldPat(e.Pat)
		out.Expr = f.FoldExpr(e.Expr)
		return &out
	case *ExprIndex:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		out.Index = f.FoldExpr(e.Index)
		return &out
	case *ExprLit:
		out := *e
		return &out
	case *ExprLoop:
		out := *e
		out.Body = f.FoldBlock(e.Body)
		return &out
	case *ExprMacro:
		return &ExprMacro{Mac: f.macro(e.Mac)}
	case *ExprMatch:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		out.Arms = foldSlice(e.Arms, func(a *Arm) *Arm {
			arm := *a
			arm.Attrs = f.attrs(a.Attrs)
			arm.Pat = f.FoldPat(a.Pat)
			if a.Guard != nil {
				arm.Guard = &Guard{If: a.Guard.If, Cond: f.FoldExpr(a.Guard.Cond)}
			}
			arm.Body = f.FoldExpr(a.Body)
			return &arm
		})
		return &out
	case *ExprMethodCall:
		out := *e
		out.Receiver = f.FoldExpr(e.Receiver)
		out.Method = f.FoldIdent(e.Method)
		out.Turbofish = f.angleArgs(e.Turbofish)
		out.Args = foldList(e.Args, f.FoldExpr)
		return &out
	case *ExprParen:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		return &out
	case *ExprPath:
		out := *e
		out.QSelf = f.qself(e.QSelf)
		out.Path = f.path(e.Path)
		return &out
	case *ExprRange:
		out := *e
		out.From = f.FoldExpr(e.From)
		out.To = f.FoldExpr(e.To)
		return &out
	case *ExprReference:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		return &out
	case *ExprRepeat:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		out.Len = f.FoldExpr(e.Len)
		return &out
	case *ExprReturn:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		return &out
	case *ExprStruct:
		out := *e
		out.Path = f.path(e.Path)
		out.Fields = foldList(e.Fields, func(fv *FieldValue) *FieldValue {
			field := *fv
			field.Attrs = f.attrs(fv.Attrs)
			field.Expr = f.FoldExpr(fv.Expr)
			return &field
		})
		out.Rest = f.FoldExpr(e.Rest)
		return &out
	case *ExprTry:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		return &out
	case *ExprTuple:
		out := *e
		out.Elems = foldList(e.Elems, f.FoldExpr)
		return &out
	case *ExprUnary:
		out := *e
		out.Expr = f.FoldExpr(e.Expr)
		return &out
	case *ExprWhile:
		out := *e
		out.Cond = f.FoldExpr(e.Cond)
		out.Body = f.FoldBlock(e.Body)
		return &out
	}
	return e
}

func (f *Folder) FoldBlock(b *Block) *Block {
	if b == nil {
		return nil
	}
	out := *b
	out.Stmts = foldSlice(b.Stmts, f.FoldStmt)
	return &out
}

// FoldStmt folds the children of s, then applies the Stmt hook.
func (f *Folder) FoldStmt(s Stmt) Stmt {
	if isNil(s) {
		return s
	}
	var out Stmt
	switch s := s.(type) {
	case *StmtLocal:
		local := *s
		local.Attrs = f.attrs(s.Attrs)
		local.Pat = f.FoldPat(s.Pat)
		local.Type = f.FoldType(s.Type)
		local.Init = f.FoldExpr(s.Init)
		out = &local
	case *StmtItem:
		out = &StmtItem{Item: f.FoldItem(s.Item)}
	case *StmtExpr:
		expr := *s
		expr.Attrs = f.attrs(s.Attrs)
		expr.Expr = f.FoldExpr(s.Expr)
		out = &expr
	case *StmtEmpty:
		empty := *s
		out = &empty
	default:
		out = s
	}
	if f.Stmt != nil {
		return f.Stmt(out)
	}
	return out
}

// FoldItem folds the children of it, then applies the Item hook.
func (f *Folder) FoldItem(it Item) Item {
	if isNil(it) {
		return it
	}
	out := f.foldItemChildren(it)
	if f.Item != nil {
		return f.Item(out)
	}
	return out
}

func (f *Folder) signature(sig *Signature) *Signature {
	if sig == nil {
		return nil
	}
	out := *sig
	out.Ident = f.FoldIdent(sig.Ident)
	out.Generics = f.generics(sig.Generics)
	out.Inputs = foldList(sig.Inputs, func(arg FnArg) FnArg {
		switch arg := arg.(type) {
		case *Receiver:
			r := *arg
			r.Type = f.FoldType(arg.Type)
			return &r
		case *PatType:
			return f.patType(arg)
		}
		return arg
	})
	out.Output = f.returnType(sig.Output)
	return &out
}

func (f *Folder) fields(fields Fields) Fields {
	field := func(fd *Field) *Field {
		out := *fd
		out.Attrs = f.attrs(fd.Attrs)
		out.Vis = f.vis(fd.Vis)
		out.Ident = f.optIdent(fd.Ident)
		out.Type = f.FoldType(fd.Type)
		return &out
	}
	switch fields := fields.(type) {
	case *FieldsNamed:
		out := *fields
		out.Named = foldList(fields.Named, field)
		return &out
	case *FieldsUnnamed:
		out := *fields
		out.Unnamed = foldList(fields.Unnamed, field)
		return &out
	}
	return fields
}

func (f *Folder) useTree(tree UseTree) UseTree {
	switch tree := tree.(type) {
	case *UsePath:
		out := *tree
		out.Ident = f.FoldIdent(tree.Ident)
		out.Tree = f.useTree(tree.Tree)
		return &out
	case *UseName:
		return &UseName{Ident: f.FoldIdent(tree.Ident)}
	case *UseRename:
		out := *tree
		out.Ident = f.FoldIdent(tree.Ident)
		out.Rename = f.FoldIdent(tree.Rename)
		return &out
	case *UseGroup:
		out := *tree
		out.Items = foldList(tree.Items, f.useTree)
		return &out
	}
	return tree
}

func (f *Folder) traitItem(ti TraitItem) TraitItem {
	switch ti := ti.(type) {
	case *TraitItemConst:
		out := *ti
		out.Attrs = f.attrs(ti.Attrs)
		out.Ident = f.FoldIdent(ti.Ident)
		out.Type = f.FoldType(ti.Type)
		out.Default = f.FoldExpr(ti.Default)
		return &out
	case *TraitItemFn:
		out := *ti
		out.Attrs = f.attrs(ti.Attrs)
		out.Sig = f.signature(ti.Sig)
		out.Default = f.FoldBlock(ti.Default)
		return &out
	case *TraitItemType:
		out := *ti
		out.Attrs = f.attrs(ti.Attrs)
		out.Ident = f.FoldIdent(ti.Ident)
		out.Generics = f.generics(ti.Generics)
		out.Bounds = foldList(ti.Bounds, f.bound)
		out.Default = f.FoldType(ti.Default)
		return &out
	case *TraitItemMacro:
		out := *ti
		out.Attrs = f.attrs(ti.Attrs)
		out.Mac = f.macro(ti.Mac)
		return &out
	}
	return ti
}

func (f *Folder) foldItemChildren(it Item) Item {
	switch it := it.(type) {
	case *ItemExternCrate:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		if it.Rename != nil {
			out.Rename = &Rename{As: it.Rename.As, Ident: f.FoldIdent(it.Rename.Ident)}
		}
		return &out
	case *ItemUse:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Tree = f.useTree(it.Tree)
		return &out
	case *ItemStatic:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Type = f.FoldType(it.Type)
		out.Expr = f.FoldExpr(it.Expr)
		return &out
	case *ItemConst:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Type = f.FoldType(it.Type)
		out.Expr = f.FoldExpr(it.Expr)
		return &out
	case *ItemFn:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Sig = f.signature(it.Sig)
		out.Block = f.FoldBlock(it.Block)
		return &out
	case *ItemMod:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.InnerAttrs = f.attrs(it.InnerAttrs)
		out.Items = foldSlice(it.Items, f.FoldItem)
		return &out
	case *ItemForeignMod:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Items = foldSlice(it.Items, f.FoldItem)
		return &out
	case *ForeignItemFn:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Sig = f.signature(it.Sig)
		return &out
	case *ForeignItemStatic:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Type = f.FoldType(it.Type)
		return &out
	case *ForeignItemType:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		return &out
	case *ItemType:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Generics = f.generics(it.Generics)
		out.Ty = f.FoldType(it.Ty)
		return &out
	case *ItemStruct:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Generics = f.generics(it.Generics)
		out.Fields = f.fields(it.Fields)
		return &out
	case *ItemEnum:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Generics = f.generics(it.Generics)
		out.Variants = foldList(it.Variants, func(v *Variant) *Variant {
			variant := *v
			variant.Attrs = f.attrs(v.Attrs)
			variant.Ident = f.FoldIdent(v.Ident)
			variant.Fields = f.fields(v.Fields)
			variant.Discriminant = f.FoldExpr(v.Discriminant)
			return &variant
		})
		return &out
	case *ItemUnion:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Generics = f.generics(it.Generics)
		if it.Fields != nil {
			out.Fields = f.fields(it.Fields).(*FieldsNamed)
		}
		return &out
	case *ItemTrait:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Vis = f.vis(it.Vis)
		out.Ident = f.FoldIdent(it.Ident)
		out.Generics = f.generics(it.Generics)
		out.Supertraits = foldList(it.Supertraits, f.bound)
		out.Items = foldSlice(it.Items, f.traitItem)
		return &out
	case *ItemImpl:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Generics = f.generics(it.Generics)
		if it.Trait != nil {
			tr := *it.Trait
			tr.Path = f.path(it.Trait.Path)
			out.Trait = &tr
		}
		out.SelfTy = f.FoldType(it.SelfTy)
		out.Items = foldSlice(it.Items, f.FoldItem)
		return &out
	case *ItemMacro:
		out := *it
		out.Attrs = f.attrs(it.Attrs)
		out.Ident = f.optIdent(it.Ident)
		out.Mac = f.macro(it.Mac)
		return &out
	}
	return it
}
