package syntax_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/rsyn/format"
	"github.com/dhamidi/rsyn/rust/syntax"
	"github.com/dhamidi/rsyn/rust/tokens"
)

var roundTripSources = map[string]string{
	"attributes": `//! Crate docs.
#![allow(dead_code)]

/// A point.
#[derive(Debug, Clone, Copy, PartialEq)]
pub struct Point<T = f64> {
    pub x: T,
    pub(crate) y: T,
}
`,
	"items": `extern crate serde as sd;
use std::collections::{HashMap, hash_map::Entry};
use std::fmt::{self, Display};
static mut COUNT: u32 = 0;
const MAX: usize = 1 << 10;
mod tests;
mod inner { pub(super) fn f() {} }
extern "C" { fn abs(x: i32) -> i32; }
type Res<T> = std::result::Result<T, Box<dyn std::error::Error>>;
struct Pair(pub u8, u8);
enum Shape { Circle { r: f64 }, Rect(u8, u8), Empty }
union U { a: u32, b: f32 }
impl !Send for Raw {}
macro_rules! square { ($x:expr) => { $x * $x }; }
`,
	"traits": `pub trait Area {
    type Output: Copy + ?Sized;
    type Iter<'a>: Iterator<Item = &'a u8> where Self: 'a;
    const SIDES: usize = 0;
    fn area(&self) -> Self::Output;
    fn scaled(&self, k: f64) -> f64 { k * 2.0 }
}

impl<T: Display + Clone> fmt::Display for Point<T> where T: Copy {
    fn fmt(&self, f: &mut fmt::Formatter<'_>) -> fmt::Result {
        write!(f, "({}, {})", self.x, self.y)
    }
}
`,
	"const generics": `struct Buf<const N: usize> { data: [u8; N] }

impl<const N: usize> Buf<N> {
    pub const fn len(&self) -> usize { N }
}

fn bounds<T>() where T: Clone + Send +, {}
`,
	"expressions": `fn run(items: &[i32]) -> Result<(), String> {
    let mut total = 0i64;
    for (i, x) in items.iter().enumerate() {
        if *x < 0 && i % 2 == 0 { continue; }
        total += *x as i64 * -1;
    }
    let v: Vec<_> = items.iter().map(|x| x + 1).filter(|&x| x > 2).collect::<Vec<_>>();
    let r = 0..=10;
    let s = &v[1..];
    let add = move |a: i32, b| -> i32 { a + b };
    'outer: loop {
        while let Some(n) = next() { break 'outer; }
    }
    let p = Point { x: 1.0, y: 2.0 };
    let Point { x, .. } = p;
    let t = (1,);
    let arr = [0u8; 4];
    let q = <Vec<u8> as IntoIterator>::into_iter(Vec::new());
    let neg = -(a + b) * c;
    x = y = 3;
    Ok(())
}
`,
	"match": `fn classify(n: Option<u8>) -> &'static str {
    match n {
        Some(0) => "zero",
        Some(1..=9) | Some(10) => "small",
        Some(x) if x % 2 == 0 => { "even" }
        Some(_) => "odd",
        None => "none",
    }
}
`,
}

// shape lists the kind, text and spacing of every token, with delimiters
// shown in place of groups.
func shape(s tokens.Stream) []string {
	var out []string
	for _, tt := range s {
		switch tt := tt.(type) {
		case tokens.Token:
			out = append(out, fmt.Sprintf("%v %s %v", tt.Kind, tt.Text, tt.Spacing))
		case *tokens.Group:
			out = append(out, tt.Delim.Open())
			out = append(out, shape(tt.Stream)...)
			out = append(out, tt.Delim.Close())
		}
	}
	return out
}

func texts(s tokens.Stream) []string {
	var out []string
	for _, tt := range s {
		switch tt := tt.(type) {
		case tokens.Token:
			out = append(out, tt.Text)
		case *tokens.Group:
			out = append(out, tt.Delim.Open())
			out = append(out, texts(tt.Stream)...)
			out = append(out, tt.Delim.Close())
		}
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	for name, src := range roundTripSources {
		t.Run(name, func(t *testing.T) {
			file, err := syntax.ParseFileString(src)
			require.NoError(t, err)
			printed := syntax.Print(file)

			again, err := syntax.ParseAll(printed, syntax.FileRule)
			require.NoError(t, err)
			assert.Equal(t, shape(printed), shape(syntax.Print(again)))

			rendered := format.Render(printed)
			reparsed, err := syntax.ParseFileString(rendered)
			require.NoError(t, err, rendered)
			assert.Equal(t, texts(printed), texts(syntax.Print(reparsed)))
		})
	}
}

func TestPrintMatchesSourceTokens(t *testing.T) {
	src := "fn f(x: u8) -> u8 { let y = x * 2; y + 1 }"
	file, err := syntax.ParseFileString(src)
	require.NoError(t, err)
	assert.Equal(t, texts(lex(t, src)), texts(syntax.Print(file)))
}

func lit(text string) syntax.Expr {
	return &syntax.ExprLit{Lit: &syntax.Lit{Kind: syntax.LitInt, Text: text}}
}

func name(text string) syntax.Expr {
	return &syntax.ExprPath{Path: syntax.NewPath(text)}
}

func bin(op syntax.BinOpKind, left, right syntax.Expr) syntax.Expr {
	return &syntax.ExprBinary{Left: left, Op: syntax.BinOp{Kind: op}, Right: right}
}

func TestPrintInsertsParentheses(t *testing.T) {
	tests := []struct {
		name string
		expr syntax.Expr
		want string
	}{
		{
			name: "looser left operand",
			expr: bin(syntax.OpMul, bin(syntax.OpAdd, lit("1"), lit("2")), lit("3")),
			want: "(* (paren (+ 1 2)) 3)",
		},
		{
			name: "right operand at the same level",
			expr: bin(syntax.OpSub, lit("1"), bin(syntax.OpSub, lit("2"), lit("3"))),
			want: "(- 1 (paren (- 2 3)))",
		},
		{
			name: "left operand at the same level",
			expr: bin(syntax.OpSub, bin(syntax.OpSub, lit("1"), lit("2")), lit("3")),
			want: "(- (- 1 2) 3)",
		},
		{
			name: "field of a binary",
			expr: &syntax.ExprField{Base: bin(syntax.OpAdd, name("a"), name("b")), Member: syntax.Member{Name: "c"}},
			want: "(. (paren (+ a b)) c)",
		},
		{
			name: "negated sum",
			expr: &syntax.ExprUnary{Op: syntax.UnOp{Kind: syntax.OpNeg}, Expr: bin(syntax.OpAdd, name("a"), name("b"))},
			want: "(- (paren (+ a b)))",
		},
		{
			name: "assignment as operand",
			expr: bin(syntax.OpAdd, &syntax.ExprAssign{Left: name("a"), Right: name("b")}, lit("1")),
			want: "(+ (paren (= a b)) 1)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := syntax.ParseAll(syntax.Print(tt.expr), syntax.ExprRule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sexpr(e))
		})
	}
}

func TestInspectOrder(t *testing.T) {
	file, err := syntax.ParseFileString("fn add(a: i32, b: i32) -> i32 {\n    let c = a * 2;\n    c + b\n}")
	require.NoError(t, err)

	last := -1
	syntax.Inspect(file, func(n syntax.Node) bool {
		if n == nil {
			return false
		}
		sp := syntax.SpanOf(n)
		if sp.IsZero() {
			return true
		}
		assert.GreaterOrEqual(t, sp.Start.Offset, last, "%T visited out of order", n)
		last = sp.Start.Offset
		return true
	})
}

func TestInspectCounts(t *testing.T) {
	file, err := syntax.ParseFileString("fn f(x: u8) -> u8 { let y = x * 2; g(y + 1, x) }")
	require.NoError(t, err)

	var idents []string
	binaries, calls, ends := 0, 0, 0
	syntax.Inspect(file, func(n syntax.Node) bool {
		switch n := n.(type) {
		case nil:
			ends++
		case syntax.Ident:
			idents = append(idents, n.Name)
		case *syntax.ExprBinary:
			binaries++
		case *syntax.ExprCall:
			calls++
		}
		return true
	})
	assert.Equal(t, []string{"f", "x", "u8", "u8", "y", "x", "g", "y", "x"}, idents)
	assert.Equal(t, 2, binaries)
	assert.Equal(t, 1, calls)
	assert.Greater(t, ends, 0)
}

func TestInspectPrune(t *testing.T) {
	file, err := syntax.ParseFileString("fn f() { a + b } fn g() {}")
	require.NoError(t, err)
	var fns []string
	sawBody := false
	syntax.Inspect(file, func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.ItemFn:
			fns = append(fns, n.Sig.Ident.Name)
			return false
		case *syntax.ExprBinary:
			sawBody = true
		}
		return true
	})
	assert.Equal(t, []string{"f", "g"}, fns)
	assert.False(t, sawBody)
}

func TestFoldRenamesIdents(t *testing.T) {
	src := "fn f(x: u8) -> u8 { let y = x + 1; x * y }"
	file, err := syntax.ParseFileString(src)
	require.NoError(t, err)

	f := &syntax.Folder{Ident: func(id syntax.Ident) syntax.Ident {
		if id.Name == "x" {
			id.Name = "input"
		}
		return id
	}}
	renamed := f.FoldFile(file)

	assert.Equal(t, "fn f ( input : u8 ) - > u8 { let y = input + 1 ; input * y }", strings.Join(texts(syntax.Print(renamed)), " "))
	assert.Equal(t, texts(lex(t, src)), texts(syntax.Print(file)), "input tree changed")
}

func TestFoldRewritesExprs(t *testing.T) {
	e, err := syntax.ParseExpr("a + 1 * 2")
	require.NoError(t, err)

	// Constant-fold integer multiplications.
	f := &syntax.Folder{Expr: func(e syntax.Expr) syntax.Expr {
		b, ok := e.(*syntax.ExprBinary)
		if !ok || b.Op.Kind != syntax.OpMul {
			return e
		}
		l, lok := b.Left.(*syntax.ExprLit)
		r, rok := b.Right.(*syntax.ExprLit)
		if !lok || !rok {
			return e
		}
		var x, y int
		fmt.Sscan(l.Lit.Text, &x)
		fmt.Sscan(r.Lit.Text, &y)
		return lit(fmt.Sprint(x * y))
	}}
	assert.Equal(t, "(+ a 2)", sexpr(f.FoldExpr(e)))
	assert.Equal(t, "(+ a (* 1 2))", sexpr(e))
}

func TestSpanOf(t *testing.T) {
	file, err := syntax.ParseFileString("fn f() {\n    let total = first + second;\n}")
	require.NoError(t, err)

	var sum *syntax.ExprBinary
	syntax.Inspect(file, func(n syntax.Node) bool {
		if b, ok := n.(*syntax.ExprBinary); ok {
			sum = b
		}
		return true
	})
	require.NotNil(t, sum)
	sp := syntax.SpanOf(sum)
	assert.Equal(t, 2, sp.Start.Line)
	assert.Equal(t, 17, sp.Start.Column)
	assert.Equal(t, 2, sp.End.Line)
	assert.Equal(t, 31, sp.End.Column)

	fn := file.Items[0]
	whole := syntax.SpanOf(fn)
	assert.Equal(t, 1, whole.Start.Line)
	assert.Equal(t, 3, whole.End.Line)

	assert.True(t, syntax.SpanOf(bin(syntax.OpAdd, lit("1"), lit("2"))).IsZero())
	assert.True(t, syntax.SpanOf(nil).IsZero())
}
