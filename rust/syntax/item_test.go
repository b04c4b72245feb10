package syntax_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/rsyn/format"
	"github.com/dhamidi/rsyn/rust/syntax"
)

func TestParseItemKinds(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"extern crate serde as sd;", &syntax.ItemExternCrate{}},
		{"use std::{io::{self, Read}, fmt::*};", &syntax.ItemUse{}},
		{"static mut COUNT: u32 = 0;", &syntax.ItemStatic{}},
		{"const MAX: usize = 1 << 10;", &syntax.ItemConst{}},
		{"pub(crate) async unsafe fn f() {}", &syntax.ItemFn{}},
		{"mod tests;", &syntax.ItemMod{}},
		{"mod inner { fn f() {} }", &syntax.ItemMod{}},
		{`extern "C" { fn abs(x: i32) -> i32; static ERRNO: i32; type Opaque; }`, &syntax.ItemForeignMod{}},
		{"type Result<T> = std::result::Result<T, Error>;", &syntax.ItemType{}},
		{"struct Unit;", &syntax.ItemStruct{}},
		{"struct Pair(pub u8, u8);", &syntax.ItemStruct{}},
		{"struct Point<T> where T: Copy { x: T, y: T }", &syntax.ItemStruct{}},
		{"enum E { A, B(u8), C { x: i32 } = 3 }", &syntax.ItemEnum{}},
		{"union U { a: u32, b: f32 }", &syntax.ItemUnion{}},
		{"pub unsafe auto trait Send {}", &syntax.ItemTrait{}},
		{"trait Iter: Sized { type Item; fn next(&mut self) -> Option<Self::Item>; const N: u8 = 1; }", &syntax.ItemTrait{}},
		{"impl<T> Trait for Vec<T> where T: Clone { fn f(&self) {} }", &syntax.ItemImpl{}},
		{"impl !Send for Raw {}", &syntax.ItemImpl{}},
		{"macro_rules! square { ($x:expr) => { $x * $x }; }", &syntax.ItemMacro{}},
		{"lazy_static! { static ref X: u8 = 1; }", &syntax.ItemMacro{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			item, err := syntax.ParseItem(tt.input)
			require.NoError(t, err)
			assert.IsType(t, tt.want, item)
		})
	}
}

func TestParseFnSignature(t *testing.T) {
	item, err := syntax.ParseItem("pub const fn get<'a, T: ?Sized + 'a, const N: usize>(&'a self, x: &mut [T; N]) -> &'a T where T: Debug {}")
	require.NoError(t, err)
	fn := item.(*syntax.ItemFn)
	assert.Equal(t, syntax.VisPublic, fn.Vis.Kind)
	sig := fn.Sig
	assert.NotNil(t, sig.Const)
	assert.Equal(t, "get", sig.Ident.Name)
	require.NotNil(t, sig.Generics)
	params := sig.Generics.Params.Values()
	require.Len(t, params, 3)
	assert.IsType(t, &syntax.LifetimeParam{}, params[0])
	assert.IsType(t, &syntax.TypeParam{}, params[1])
	assert.IsType(t, &syntax.ConstParam{}, params[2])
	assert.Equal(t, 2, params[1].(*syntax.TypeParam).Bounds.Len())
	require.NotNil(t, sig.Generics.Where)
	assert.Equal(t, 1, sig.Generics.Where.Predicates.Len())

	inputs := sig.Inputs.Values()
	require.Len(t, inputs, 2)
	recv := inputs[0].(*syntax.Receiver)
	assert.NotNil(t, recv.And)
	require.NotNil(t, recv.Lifetime)
	assert.Equal(t, "a", recv.Lifetime.Name)
	assert.IsType(t, &syntax.PatType{}, inputs[1])
	assert.NotNil(t, sig.Output)
}

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.VisKind
	}{
		{"pub fn f() {}", syntax.VisPublic},
		{"crate fn f() {}", syntax.VisCrate},
		{"pub(crate) fn f() {}", syntax.VisRestricted},
		{"pub(super) fn f() {}", syntax.VisRestricted},
		{"pub(in a::b) fn f() {}", syntax.VisRestricted},
		{"fn f() {}", syntax.VisInherited},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			item, err := syntax.ParseItem(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, item.(*syntax.ItemFn).Vis.Kind)
		})
	}
}

func TestParseTupleStructVisibility(t *testing.T) {
	// pub followed by a parenthesised type is a public field, not pub(..).
	item, err := syntax.ParseItem("struct S(pub (u8, u8));")
	require.NoError(t, err)
	fields := item.(*syntax.ItemStruct).Fields.(*syntax.FieldsUnnamed)
	require.Equal(t, 1, fields.Unnamed.Len())
	field := fields.Unnamed.At(0)
	assert.Equal(t, syntax.VisPublic, field.Vis.Kind)
	assert.IsType(t, &syntax.TypeTuple{}, field.Type)
}

func TestParseUseTree(t *testing.T) {
	item, err := syntax.ParseItem("use a::{b as c, d::*, self};")
	require.NoError(t, err)
	use := item.(*syntax.ItemUse)
	path := use.Tree.(*syntax.UsePath)
	assert.Equal(t, "a", path.Ident.Name)
	group := path.Tree.(*syntax.UseGroup)
	items := group.Items.Values()
	require.Len(t, items, 3)
	assert.IsType(t, &syntax.UseRename{}, items[0])
	assert.IsType(t, &syntax.UsePath{}, items[1])
	assert.IsType(t, &syntax.UseName{}, items[2])
}

func TestParseAttributes(t *testing.T) {
	file, err := syntax.ParseFileString("#![no_std]\n/// Docs\n#[derive(Debug, Clone)]\nstruct S;")
	require.NoError(t, err)
	require.Len(t, file.Attrs, 1)
	assert.NotNil(t, file.Attrs[0].Inner)
	assert.Equal(t, "no_std", file.Attrs[0].Path.String())

	s := file.Items[0].(*syntax.ItemStruct)
	require.Len(t, s.Attrs, 2)
	assert.Equal(t, "doc", s.Attrs[0].Path.String())
	assert.Equal(t, "derive", s.Attrs[1].Path.String())

	attr, err := syntax.ParseAttribute("#[cfg(test)]")
	require.NoError(t, err)
	assert.Equal(t, "cfg", attr.Path.String())
	require.Len(t, attr.Tokens, 1)
	assert.Equal(t, "(test)", strings.TrimSpace(format.Render(attr.Tokens)))
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"u8", &syntax.TypePath{}},
		{"&'a mut T", &syntax.TypeReference{}},
		{"*const u8", &syntax.TypePtr{}},
		{"[u8]", &syntax.TypeSlice{}},
		{"[u8; 4]", &syntax.TypeArray{}},
		{"()", &syntax.TypeTuple{}},
		{"(u8,)", &syntax.TypeTuple{}},
		{"(u8)", &syntax.TypeParen{}},
		{"!", &syntax.TypeNever{}},
		{"_", &syntax.TypeInfer{}},
		{"for<'a> fn(&'a u8) -> u8", &syntax.TypeBareFn{}},
		{`unsafe extern "C" fn(x: i32) -> i32`, &syntax.TypeBareFn{}},
		{"dyn Fn(u8) -> u8 + Send", &syntax.TypeTraitObject{}},
		{"impl Iterator<Item = u8>", &syntax.TypeImplTrait{}},
		{"<T as Trait>::Assoc", &syntax.TypePath{}},
		{"Box<dyn Error + Send + Sync>", &syntax.TypePath{}},
		{"Vec<Vec<u8>>", &syntax.TypePath{}},
		{"ty!()", &syntax.TypeMacro{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ty, err := syntax.ParseType(tt.input)
			require.NoError(t, err)
			assert.IsType(t, tt.want, ty)
		})
	}
}

func TestParseQualifiedPath(t *testing.T) {
	ty, err := syntax.ParseType("<Vec<T> as IntoIterator>::Item")
	require.NoError(t, err)
	tp := ty.(*syntax.TypePath)
	require.NotNil(t, tp.QSelf)
	assert.Equal(t, 1, tp.QSelf.Position)
	assert.Equal(t, "IntoIterator::Item", tp.Path.String())
}

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"_", &syntax.PatWild{}},
		{"x", &syntax.PatIdent{}},
		{"ref mut x", &syntax.PatIdent{}},
		{"x @ 1..=5", &syntax.PatIdent{}},
		{"None", &syntax.PatIdent{}},
		{"a::B", &syntax.PatPath{}},
		{"Some(x)", &syntax.PatTupleStruct{}},
		{"Point { x, y: 0, .. }", &syntax.PatStruct{}},
		{"(a, b)", &syntax.PatTuple{}},
		{"(a)", &syntax.PatTuple{}},
		{"&mut x", &syntax.PatReference{}},
		{"-1", &syntax.PatLit{}},
		{"'a'..='z'", &syntax.PatRange{}},
		{"[first, .., last]", &syntax.PatSlice{}},
		{"A | B", &syntax.PatOr{}},
		{"| A | B", &syntax.PatOr{}},
		{"m!()", &syntax.PatMacro{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pat, err := syntax.ParsePat(tt.input)
			require.NoError(t, err)
			assert.IsType(t, tt.want, pat)
		})
	}
}

func TestParseGenerics(t *testing.T) {
	g, err := syntax.ParseGenerics("<'a: 'b, T: Iterator<Item = &'a u8> + 'a, const N: usize = 4> where T: Clone + ,")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Params.Len())
	lt := g.Params.At(0).(*syntax.LifetimeParam)
	assert.Equal(t, 1, lt.Bounds.Len())
	cp := g.Params.At(2).(*syntax.ConstParam)
	assert.NotNil(t, cp.Default)
	require.NotNil(t, g.Where)
	pred := g.Where.Predicates.At(0).(*syntax.PredicateType)
	assert.True(t, pred.Bounds.Trailing())
	assert.True(t, g.Where.Predicates.Trailing())
}

func TestParseTrailingPlusBound(t *testing.T) {
	item, err := syntax.ParseItem("fn f<T: Clone +>(x: T) {}")
	require.NoError(t, err)
	tp := item.(*syntax.ItemFn).Sig.Generics.Params.At(0).(*syntax.TypeParam)
	assert.Equal(t, 1, tp.Bounds.Len())
	assert.True(t, tp.Bounds.Trailing())
}

func TestParseGenericAssociatedType(t *testing.T) {
	item, err := syntax.ParseItem("trait Lend { type Item<'a>: Sized where Self: 'a; }")
	require.NoError(t, err)
	ty := item.(*syntax.ItemTrait).Items[0].(*syntax.TraitItemType)
	require.NotNil(t, ty.Generics)
	assert.Equal(t, 1, ty.Generics.Params.Len())
	assert.NotNil(t, ty.Generics.Where)
	assert.Equal(t, 1, ty.Bounds.Len())
}

func TestParseItemErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fn f()", "expected"},
		{"struct S { x: u8 y: u8 }", "expected `}`"},
		{"impl {}", "expected"},
		{"enum E { A B }", "expected"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := syntax.ParseItem(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenericBindingArguments(t *testing.T) {
	ty, err := syntax.ParseType("Foo<Item<'a> = u8, Bar<u8>>")
	require.NoError(t, err)
	path := ty.(*syntax.TypePath).Path
	args := path.Segments.Values()[0].Args.(*syntax.AngleBracketedArgs).Args.Values()
	require.Len(t, args, 2)
	assert.IsType(t, &syntax.BindingArg{}, args[0])
	assert.IsType(t, &syntax.TypeArg{}, args[1])
}

func TestGenericBindingReportsFurthestFailure(t *testing.T) {
	tests := []struct {
		input  string
		column int
		want   string
	}{
		// The binding reached the `>` after `=`; the type reading stopped at `=`.
		{"Foo<Item<'a> = >", 16, "expected type"},
		{"Foo<Item = >", 12, "expected type"},
		// Both readings stop at `;` and their expectations merge.
		{"Foo<Item<'a> ; u8>", 14, "expected `=` or `,` or `>`"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := syntax.ParseType(tt.input)
			var perr *syntax.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.column, perr.Span.Start.Column)
			assert.Contains(t, perr.Message, tt.want)
		})
	}
}
