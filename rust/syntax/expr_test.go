package syntax_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/rsyn/format"
	"github.com/dhamidi/rsyn/rust/syntax"
)

// sexpr writes the operator structure of an expression in prefix form.
func sexpr(e syntax.Expr) string {
	switch e := e.(type) {
	case nil:
		return "_"
	case *syntax.ExprBinary:
		return fmt.Sprintf("(%s %s %s)", e.Op.Kind, sexpr(e.Left), sexpr(e.Right))
	case *syntax.ExprAssign:
		return fmt.Sprintf("(= %s %s)", sexpr(e.Left), sexpr(e.Right))
	case *syntax.ExprAssignOp:
		return fmt.Sprintf("(%s %s %s)", e.Op.Kind, sexpr(e.Left), sexpr(e.Right))
	case *syntax.ExprUnary:
		return fmt.Sprintf("(%s %s)", e.Op.Kind, sexpr(e.Expr))
	case *syntax.ExprReference:
		if e.Mut != nil {
			return fmt.Sprintf("(&mut %s)", sexpr(e.Expr))
		}
		return fmt.Sprintf("(& %s)", sexpr(e.Expr))
	case *syntax.ExprCast:
		return fmt.Sprintf("(as %s %s)", sexpr(e.Expr), source(e.Type))
	case *syntax.ExprRange:
		return fmt.Sprintf("(%s %s %s)", e.Limits, sexpr(e.From), sexpr(e.To))
	case *syntax.ExprLit:
		return e.Lit.Text
	case *syntax.ExprPath:
		return source(e)
	case *syntax.ExprParen:
		return fmt.Sprintf("(paren %s)", sexpr(e.Expr))
	case *syntax.ExprCall:
		args := []string{"call", sexpr(e.Func)}
		for _, a := range e.Args.Values() {
			args = append(args, sexpr(a))
		}
		return "(" + strings.Join(args, " ") + ")"
	case *syntax.ExprMethodCall:
		args := []string{"." + e.Method.Name, sexpr(e.Receiver)}
		for _, a := range e.Args.Values() {
			args = append(args, sexpr(a))
		}
		return "(" + strings.Join(args, " ") + ")"
	case *syntax.ExprField:
		return fmt.Sprintf("(. %s %s)", sexpr(e.Base), e.Member.Name)
	case *syntax.ExprIndex:
		return fmt.Sprintf("(index %s %s)", sexpr(e.Expr), sexpr(e.Index))
	case *syntax.ExprTry:
		return fmt.Sprintf("(? %s)", sexpr(e.Expr))
	}
	return reflect.TypeOf(e).Elem().Name()
}

// source renders a node as one line of source text.
func source(n syntax.Node) string {
	return strings.Join(strings.Fields(format.Render(syntax.Print(n))), " ")
}

func TestExprPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"a = b = c", "(= a (= b c))"},
		{"a += b * 2", "(+= a (* b 2))"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a == b && c != d", "(&& (== a b) (!= c d))"},
		{"a | b ^ c & d", "(| a (^ b (& c d)))"},
		{"a << 1 + 2", "(<< a (+ 1 2))"},
		{"a & b == c", "(== (& a b) c)"},
		{"-a * b", "(* (- a) b)"},
		{"!a.b()", "(! (.b a))"},
		{"*x?", "(* (? x))"},
		{"&mut a[0]", "(&mut (index a 0))"},
		{"a as u8 + 1", "(+ (as a u8) 1)"},
		{"-x as i64", "(as (- x) i64)"},
		{"a == b == c", "(== (== a b) c)"},
		{"x.0.1", "(. (. x 0) 1)"},
		{"f(1)(2)", "(call (call f 1) 2)"},
		{"(1 + 2) * 3", "(* (paren (+ 1 2)) 3)"},
		{"a..b", "(.. a b)"},
		{"..b", "(.. _ b)"},
		{"a..", "(.. a _)"},
		{"..", "(.. _ _)"},
		{"a..=b", "(..= a b)"},
		{"1 + 2..3 * 4", "(.. (+ 1 2) (* 3 4))"},
		{"x = 1..2", "(= x (.. 1 2))"},
		{"a || b..c", "(.. (|| a b) c)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := syntax.ParseExpr(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sexpr(e))
		})
	}
}

func TestRangeNotAssociative(t *testing.T) {
	for _, src := range []string{"a..b..c", "..a..b", "a..=b..c"} {
		t.Run(src, func(t *testing.T) {
			_, err := syntax.ParseExpr(src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not associative")
		})
	}
	_, err := syntax.ParseExpr("a..=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upper bound")
}

func TestGenericVersusComparison(t *testing.T) {
	e, err := syntax.ParseExpr("foo::<Bar>()")
	require.NoError(t, err)
	call, ok := e.(*syntax.ExprCall)
	require.True(t, ok, "got %T", e)
	path := call.Func.(*syntax.ExprPath).Path
	args, ok := path.Segments.At(0).Args.(*syntax.AngleBracketedArgs)
	require.True(t, ok)
	require.NotNil(t, args.Colon2)
	assert.Equal(t, 1, args.Args.Len())

	e, err = syntax.ParseExpr("foo < Bar > baz")
	require.NoError(t, err)
	assert.Equal(t, "(> (< foo Bar) baz)", sexpr(e))

	e, err = syntax.ParseExpr("Vec::<u8>::new()")
	require.NoError(t, err)
	path = e.(*syntax.ExprCall).Func.(*syntax.ExprPath).Path
	assert.Equal(t, "Vec::new", path.String())
	assert.IsType(t, &syntax.AngleBracketedArgs{}, path.Segments.At(0).Args)

	e, err = syntax.ParseExpr("x.collect::<Vec<_>>()")
	require.NoError(t, err)
	mc := e.(*syntax.ExprMethodCall)
	require.NotNil(t, mc.Turbofish)
	assert.Equal(t, "Vec<_>", source(mc.Turbofish.Args.At(0)))

	e, err = syntax.ParseExpr("a < b && c > d")
	require.NoError(t, err)
	assert.Equal(t, "(&& (< a b) (> c d))", sexpr(e))
}

func TestNoStructLiteralInCondition(t *testing.T) {
	e, err := syntax.ParseExpr("if x {}")
	require.NoError(t, err)
	ifExpr := e.(*syntax.ExprIf)
	assert.IsType(t, &syntax.ExprPath{}, ifExpr.Cond)
	assert.Empty(t, ifExpr.Then.Stmts)

	e, err = syntax.ParseExpr("while x { y }")
	require.NoError(t, err)
	assert.IsType(t, &syntax.ExprPath{}, e.(*syntax.ExprWhile).Cond)

	e, err = syntax.ParseExpr("match s { _ => 1 }")
	require.NoError(t, err)
	assert.Len(t, e.(*syntax.ExprMatch).Arms, 1)

	e, err = syntax.ParseExpr("for x in v { }")
	require.NoError(t, err)
	assert.IsType(t, &syntax.ExprPath{}, e.(*syntax.ExprForLoop).Expr)

	// Parentheses lift the restriction.
	e, err = syntax.ParseExpr("if (S { a: 1 }).a {}")
	require.NoError(t, err)
	assert.IsType(t, &syntax.ExprField{}, e.(*syntax.ExprIf).Cond)

	e, err = syntax.ParseExpr("S { a: 1, ..base }")
	require.NoError(t, err)
	lit := e.(*syntax.ExprStruct)
	assert.Equal(t, 1, lit.Fields.Len())
	assert.NotNil(t, lit.Rest)
}

func TestIfElseChain(t *testing.T) {
	e, err := syntax.ParseExpr("if a { 1 } else if let Some(x) = b { 2 } else { 3 }")
	require.NoError(t, err)
	first := e.(*syntax.ExprIf)
	second, ok := first.ElseBranch.(*syntax.ExprIf)
	require.True(t, ok, "got %T", first.ElseBranch)
	assert.IsType(t, &syntax.ExprLet{}, second.Cond)
	assert.IsType(t, &syntax.ExprBlock{}, second.ElseBranch)
}

func TestClosure(t *testing.T) {
	e, err := syntax.ParseExpr("move |a, b: u32| -> u32 { a + b }")
	require.NoError(t, err)
	c := e.(*syntax.ExprClosure)
	assert.NotNil(t, c.Move)
	assert.Equal(t, 2, c.Inputs.Len())
	assert.NotNil(t, c.Output)

	e, err = syntax.ParseExpr("|x| x + 1")
	require.NoError(t, err)
	assert.Equal(t, "(+ x 1)", sexpr(e.(*syntax.ExprClosure).Body))
}

func TestTupleAndParen(t *testing.T) {
	tests := []struct {
		input string
		want  any
		elems int
	}{
		{"()", &syntax.ExprTuple{}, 0},
		{"(a)", &syntax.ExprParen{}, 0},
		{"(a,)", &syntax.ExprTuple{}, 1},
		{"(a, b)", &syntax.ExprTuple{}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := syntax.ParseExpr(tt.input)
			require.NoError(t, err)
			assert.IsType(t, tt.want, e)
			if tuple, ok := e.(*syntax.ExprTuple); ok {
				assert.Equal(t, tt.elems, tuple.Elems.Len())
			}
		})
	}
}

func TestArrayAndRepeat(t *testing.T) {
	e, err := syntax.ParseExpr("[0u8; 4]")
	require.NoError(t, err)
	assert.IsType(t, &syntax.ExprRepeat{}, e)

	e, err = syntax.ParseExpr("[1, 2, 3,]")
	require.NoError(t, err)
	arr := e.(*syntax.ExprArray)
	assert.Equal(t, 3, arr.Elems.Len())
	assert.True(t, arr.Elems.Trailing())
}

func TestStatements(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"let x = 1;", &syntax.StmtLocal{}},
		{"let (a, b): (u8, u8);", &syntax.StmtLocal{}},
		{"x + 1;", &syntax.StmtExpr{}},
		{"x + 1", &syntax.StmtExpr{}},
		{";", &syntax.StmtEmpty{}},
		{"fn inner() {}", &syntax.StmtItem{}},
		{"println!(\"hi\");", &syntax.StmtExpr{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := syntax.ParseStmt(tt.input)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestBlockLikeStatementEnds(t *testing.T) {
	file, err := syntax.ParseFileString("fn f() { if a { b } -1 }")
	require.NoError(t, err)
	body := file.Items[0].(*syntax.ItemFn).Block
	require.Len(t, body.Stmts, 2)
	first := body.Stmts[0].(*syntax.StmtExpr)
	assert.IsType(t, &syntax.ExprIf{}, first.Expr)
	assert.Nil(t, first.Semi)
	second := body.Stmts[1].(*syntax.StmtExpr)
	assert.Equal(t, "(- 1)", sexpr(second.Expr))

	file, err = syntax.ParseFileString("fn f() { match x { _ => v }.len() }")
	require.NoError(t, err)
	body = file.Items[0].(*syntax.ItemFn).Block
	require.Len(t, body.Stmts, 1)
	assert.Equal(t, "(.len ExprMatch)", sexpr(body.Stmts[0].(*syntax.StmtExpr).Expr))
}

func TestMissingSemicolon(t *testing.T) {
	_, err := syntax.ParseFileString("fn f() { let x = 1 let y = 2; }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected `;`")
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.LitKind
	}{
		{"1", syntax.LitInt},
		{"0xffu8", syntax.LitInt},
		{"1.5e3", syntax.LitFloat},
		{"2f32", syntax.LitFloat},
		{`"a\n"`, syntax.LitStr},
		{`r#"raw"#`, syntax.LitStr},
		{`b"bytes"`, syntax.LitByteStr},
		{`'\u{1F600}'`, syntax.LitChar},
		{`b'a'`, syntax.LitByte},
		{"true", syntax.LitBool},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit, err := syntax.ParseLit(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, lit.Kind)
		})
	}
}

func TestLiteralValues(t *testing.T) {
	lit, err := syntax.ParseLit("0xff_u8")
	require.NoError(t, err)
	v, err := lit.IntValue()
	require.NoError(t, err)
	assert.Equal(t, uint64(255), v)
	assert.Equal(t, "u8", lit.Suffix())

	lit, err = syntax.ParseLit(`"tab\there \u{48}"`)
	require.NoError(t, err)
	s, err := lit.StrValue()
	require.NoError(t, err)
	assert.Equal(t, "tab\there H", s)

	lit, err = syntax.ParseLit(`r##"a "quoted" b"##`)
	require.NoError(t, err)
	s, err = lit.StrValue()
	require.NoError(t, err)
	assert.Equal(t, `a "quoted" b`, s)

	lit, err = syntax.ParseLit(`'\n'`)
	require.NoError(t, err)
	r, err := lit.CharValue()
	require.NoError(t, err)
	assert.Equal(t, '\n', r)

	lit, err = syntax.ParseLit("2.5")
	require.NoError(t, err)
	f, err := lit.FloatValue()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)
}

func TestInvalidLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"256u8", "out of range for `u8`"},
		{"1u7", "invalid suffix `u7`"},
		{"1.0f16", "invalid suffix `f16`"},
		{`'\n\t'`, "exactly one character"},
		{`"\q"`, "unknown escape"},
		{`'\u{D800}'`, "invalid unicode escape"},
		{"0b102", "invalid integer literal `0b102`"},
		{"0o9", "invalid integer literal `0o9`"},
		{"0x", "invalid integer literal `0x`"},
		{"1e", "invalid integer literal `1e`"},
		{"340282366920938463463374607431768211456u128", "out of range for `u128`"},
		{"170141183460469231731687303715884105728i128", "out of range for `i128`"},
		{"340282366920938463463374607431768211456", "integer literal is too large"},
		{"18446744073709551616u64", "integer literal is too large"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := syntax.ParseLit(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWideLiterals(t *testing.T) {
	for _, input := range []string{
		"340282366920938463463374607431768211455u128",
		"170141183460469231731687303715884105727i128",
		"18446744073709551616",
		"0xffff_ffff_ffff_ffff_ffff_ffff_ffff_ffffu128",
		"1__2",
	} {
		t.Run(input, func(t *testing.T) {
			lit, err := syntax.ParseLit(input)
			require.NoError(t, err)
			assert.Equal(t, syntax.LitInt, lit.Kind)
		})
	}
}
