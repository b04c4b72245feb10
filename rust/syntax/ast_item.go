package syntax

// Item is a top-level or nested declaration. Impl blocks hold *ItemConst,
// *ItemFn, *ItemType and *ItemMacro; foreign blocks hold *ForeignItemFn,
// *ForeignItemStatic, *ForeignItemType and *ItemMacro.
type Item interface {
	Node
	itemNode()
}

type ItemExternCrate struct {
	Attrs  []*Attribute
	Vis    Visibility
	Extern Span
	Crate  Span
	Ident  Ident
	Rename *Rename
	Semi   Span
}

type Rename struct {
	As    Span
	Ident Ident
}

type ItemUse struct {
	Attrs   []*Attribute
	Vis     Visibility
	Use     Span
	Leading *Span
	Tree    UseTree
	Semi    Span
}

type UseTree interface {
	Node
	useTree()
}

type UsePath struct {
	Ident  Ident
	Colon2 Span
	Tree   UseTree
}

type UseName struct {
	Ident Ident
}

type UseRename struct {
	Ident  Ident
	As     Span
	Rename Ident
}

type UseGlob struct {
	Star Span
}

type UseGroup struct {
	Brace DelimSpan
	Items Punctuated[UseTree]
}

func (*UsePath) useTree()   {}
func (*UseName) useTree()   {}
func (*UseRename) useTree() {}
func (*UseGlob) useTree()   {}
func (*UseGroup) useTree()  {}

type ItemStatic struct {
	Attrs  []*Attribute
	Vis    Visibility
	Static Span
	Mut    *Span
	Ident  Ident
	Colon  Span
	Type   Type
	Eq     Span
	Expr   Expr
	Semi   Span
}

// ItemConst is a const item; inside an impl block it may carry Default.
type ItemConst struct {
	Attrs   []*Attribute
	Vis     Visibility
	Default *Span
	Const   Span
	Ident   Ident
	Colon   Span
	Type    Type
	Eq      Span
	Expr    Expr
	Semi    Span
}

type ItemFn struct {
	Attrs   []*Attribute
	Vis     Visibility
	Default *Span
	Sig     *Signature
	Block   *Block
}

type Signature struct {
	Const    *Span
	Async    *Span
	Unsafe   *Span
	Abi      *Abi
	Fn       Span
	Ident    Ident
	Generics *Generics
	Paren    DelimSpan
	Inputs   Punctuated[FnArg]
	Output   *ReturnType
}

type FnArg interface {
	Node
	fnArg()
}

// Receiver is self, mut self, &self, &'a mut self, or self: Type.
type Receiver struct {
	And      *Span
	Lifetime *Lifetime
	Mut      *Span
	Self     Span
	Colon    *Span
	Type     Type
}

func (*Receiver) fnArg() {}
func (*PatType) fnArg()  {}

// ItemMod is mod name; or mod name { items }.
type ItemMod struct {
	Attrs      []*Attribute
	Vis        Visibility
	Mod        Span
	Ident      Ident
	Brace      *DelimSpan
	InnerAttrs []*Attribute
	Items      []Item
	Semi       *Span
}

type ItemForeignMod struct {
	Attrs []*Attribute
	Abi   *Abi
	Brace DelimSpan
	Items []Item
}

type ForeignItemFn struct {
	Attrs []*Attribute
	Vis   Visibility
	Sig   *Signature
	Semi  Span
}

type ForeignItemStatic struct {
	Attrs  []*Attribute
	Vis    Visibility
	Static Span
	Mut    *Span
	Ident  Ident
	Colon  Span
	Type   Type
	Semi   Span
}

type ForeignItemType struct {
	Attrs []*Attribute
	Vis   Visibility
	Type  Span
	Ident Ident
	Semi  Span
}

// ItemType is type Name<G> = Ty; also used for associated types in impls.
type ItemType struct {
	Attrs    []*Attribute
	Vis      Visibility
	Default  *Span
	Type     Span
	Ident    Ident
	Generics *Generics
	Eq       Span
	Ty       Type
	Semi     Span
}

// Fields is nil for a unit struct or variant, *FieldsNamed or *FieldsUnnamed.
type Fields interface {
	Node
	fields()
}

type FieldsNamed struct {
	Brace DelimSpan
	Named Punctuated[*Field]
}

type FieldsUnnamed struct {
	Paren   DelimSpan
	Unnamed Punctuated[*Field]
}

func (*FieldsNamed) fields()   {}
func (*FieldsUnnamed) fields() {}

// Field is a struct field. Ident and Colon are nil in tuple structs.
type Field struct {
	Attrs []*Attribute
	Vis   Visibility
	Ident *Ident
	Colon *Span
	Type  Type
}

type ItemStruct struct {
	Attrs    []*Attribute
	Vis      Visibility
	Struct   Span
	Ident    Ident
	Generics *Generics
	Fields   Fields
	Semi     *Span
}

type ItemEnum struct {
	Attrs    []*Attribute
	Vis      Visibility
	Enum     Span
	Ident    Ident
	Generics *Generics
	Brace    DelimSpan
	Variants Punctuated[*Variant]
}

type Variant struct {
	Attrs        []*Attribute
	Ident        Ident
	Fields       Fields
	Eq           *Span
	Discriminant Expr
}

type ItemUnion struct {
	Attrs    []*Attribute
	Vis      Visibility
	Union    Span
	Ident    Ident
	Generics *Generics
	Fields   *FieldsNamed
}

type ItemTrait struct {
	Attrs       []*Attribute
	Vis         Visibility
	Unsafe      *Span
	Auto        *Span
	Trait       Span
	Ident       Ident
	Generics    *Generics
	Colon       *Span
	Supertraits Punctuated[TypeParamBound]
	Brace       DelimSpan
	Items       []TraitItem
}

type TraitItem interface {
	Node
	traitItem()
}

type TraitItemConst struct {
	Attrs   []*Attribute
	Const   Span
	Ident   Ident
	Colon   Span
	Type    Type
	Eq      *Span
	Default Expr
	Semi    Span
}

// TraitItemFn has either a default body or a terminating semicolon.
type TraitItemFn struct {
	Attrs   []*Attribute
	Sig     *Signature
	Default *Block
	Semi    *Span
}

type TraitItemType struct {
	Attrs    []*Attribute
	Type     Span
	Ident    Ident
	Generics *Generics
	Colon    *Span
	Bounds   Punctuated[TypeParamBound]
	Eq       *Span
	Default  Type
	Semi     Span
}

type TraitItemMacro struct {
	Attrs []*Attribute
	Mac   *Macro
	Semi  *Span
}

func (*TraitItemConst) traitItem() {}
func (*TraitItemFn) traitItem()    {}
func (*TraitItemType) traitItem()  {}
func (*TraitItemMacro) traitItem() {}

type ItemImpl struct {
	Attrs    []*Attribute
	Default  *Span
	Unsafe   *Span
	Impl     Span
	Generics *Generics
	Trait    *ImplTrait
	SelfTy   Type
	Brace    DelimSpan
	Items    []Item
}

// ImplTrait is the [!]Path for part of a trait impl.
type ImplTrait struct {
	Bang *Span
	Path *Path
	For  Span
}

// ItemMacro is an item-position macro call, or a macro_rules! definition when
// Ident is set.
type ItemMacro struct {
	Attrs []*Attribute
	Ident *Ident
	Mac   *Macro
	Semi  *Span
}

func (*ItemExternCrate) itemNode()   {}
func (*ItemUse) itemNode()           {}
func (*ItemStatic) itemNode()        {}
func (*ItemConst) itemNode()         {}
func (*ItemFn) itemNode()            {}
func (*ItemMod) itemNode()           {}
func (*ItemForeignMod) itemNode()    {}
func (*ForeignItemFn) itemNode()     {}
func (*ForeignItemStatic) itemNode() {}
func (*ForeignItemType) itemNode()   {}
func (*ItemType) itemNode()          {}
func (*ItemStruct) itemNode()        {}
func (*ItemEnum) itemNode()          {}
func (*ItemUnion) itemNode()         {}
func (*ItemTrait) itemNode()         {}
func (*ItemImpl) itemNode()          {}
func (*ItemMacro) itemNode()         {}
