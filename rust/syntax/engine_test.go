package syntax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/rsyn/rust/syntax"
	"github.com/dhamidi/rsyn/rust/tokens"
)

func lex(t *testing.T, src string) tokens.Stream {
	t.Helper()
	s, err := tokens.LexString(src)
	require.NoError(t, err)
	return s
}

func identRule(in *syntax.Input) (string, error) {
	tok, _, ok := in.Cursor().Token()
	if !ok || tok.Kind != tokens.KindIdent {
		return "", in.Error("identifier")
	}
	if _, err := in.TokenTree(); err != nil {
		return "", err
	}
	return tok.Text, nil
}

func isText(text string) func(syntax.Cursor) bool {
	return func(c syntax.Cursor) bool {
		tok, _, ok := c.Token()
		return ok && tok.Text == text
	}
}

func listRule(opts syntax.ListOptions) syntax.Rule[syntax.Punctuated[string]] {
	return func(in *syntax.Input) (syntax.Punctuated[string], error) {
		return syntax.ParseTerminated(in, identRule, ",", opts)
	}
}

func TestParseTerminated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		trailing syntax.Trailing
		nonEmpty bool
		want     []string
		trail    bool
		wantErr  string
	}{
		{name: "optional with trailing", input: "a, b, c,", trailing: syntax.TrailingOptional, want: []string{"a", "b", "c"}, trail: true},
		{name: "optional without trailing", input: "a, b, c", trailing: syntax.TrailingOptional, want: []string{"a", "b", "c"}},
		{name: "optional empty", input: "", trailing: syntax.TrailingOptional},
		{name: "forbidden without trailing", input: "a, b", trailing: syntax.TrailingForbidden, want: []string{"a", "b"}},
		{name: "forbidden with trailing", input: "a, b,", trailing: syntax.TrailingForbidden, wantErr: "unexpected trailing `,`"},
		{name: "required with trailing", input: "a, b,", trailing: syntax.TrailingRequired, want: []string{"a", "b"}, trail: true},
		{name: "required without trailing", input: "a, b", trailing: syntax.TrailingRequired, wantErr: "expected `,`"},
		{name: "double separator", input: "a,,b", trailing: syntax.TrailingOptional, wantErr: "expected identifier, found `,`"},
		{name: "non-empty empty", input: "", nonEmpty: true, wantErr: "at least one element"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := syntax.ParseAll(lex(t, tt.input), listRule(syntax.ListOptions{
				Trailing: tt.trailing,
				NonEmpty: tt.nonEmpty,
			}))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), list.Len())
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, list.Values())
			}
			assert.Equal(t, tt.trail, list.Trailing())
		})
	}
}

func TestParseTerminatedStop(t *testing.T) {
	rule := func(in *syntax.Input) ([]string, error) {
		list, err := syntax.ParseTerminated(in, identRule, ",", syntax.ListOptions{Stop: isText(";")})
		if err != nil {
			return nil, err
		}
		if _, err := in.Punct(";"); err != nil {
			return nil, err
		}
		return list.Values(), nil
	}
	got, err := syntax.ParseAll(lex(t, "a, b, ;"), rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestParseTerminatedInvalidPolicy(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = syntax.ParseAll(lex(t, "a"), listRule(syntax.ListOptions{Trailing: syntax.Trailing(42)}))
	})
}

func TestParseSeparatedNonEmpty(t *testing.T) {
	rule := func(in *syntax.Input) (syntax.Punctuated[string], error) {
		return syntax.ParseSeparatedNonEmpty(in, identRule, "+")
	}
	list, rest, err := syntax.ParsePrefix(lex(t, "a + b + c ="), rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, list.Values())
	assert.False(t, list.Trailing())
	require.Len(t, rest, 1)
	assert.Equal(t, "=", rest[0].(tokens.Token).Text)

	_, err = syntax.ParseAll(lex(t, ""), rule)
	require.Error(t, err)
}

func TestPunctuated(t *testing.T) {
	p := syntax.NewPunctuated("a", "b")
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Trailing())
	p.PushPunct(tokens.Span{})
	assert.True(t, p.Trailing())
	p.Push("c")
	assert.False(t, p.Trailing())
	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, "c", last)
	assert.Equal(t, "b", p.At(1))

	lengths := syntax.MapPunctuated(p, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 1, 1}, lengths.Values())
	assert.Len(t, lengths.Pairs(), 3)

	var empty syntax.Punctuated[string]
	assert.True(t, empty.IsEmpty())
	_, ok = empty.Last()
	assert.False(t, ok)
}

func TestPunctuatedCopiesAreIndependent(t *testing.T) {
	orig := syntax.NewPunctuated("a", "b")

	pushed := orig
	pushed.Push("c")
	assert.Equal(t, []string{"a", "b", "c"}, pushed.Values())

	punctuated := orig
	punctuated.PushPunct(tokens.Span{})
	assert.True(t, punctuated.Trailing())

	assert.Equal(t, 2, orig.Len())
	assert.False(t, orig.Trailing())
	assert.Nil(t, orig.Pairs()[1].Punct)
	assert.Equal(t, []string{"a", "b"}, orig.Values())
}

func TestForkCommit(t *testing.T) {
	rule := func(in *syntax.Input) (string, error) {
		fork := in.Fork()
		if _, err := fork.Punct("::"); err != nil {
			return "", err
		}
		// Advancing the fork leaves in where it was.
		if !in.Peek(isText(":")) {
			return "", in.Error("`:`")
		}
		in.Commit(fork)
		return identRule(in)
	}
	got, err := syntax.ParseAll(lex(t, "::x"), rule)
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestAltFurthestFailure(t *testing.T) {
	twoIdents := func(in *syntax.Input) (string, error) {
		if _, err := identRule(in); err != nil {
			return "", err
		}
		if _, err := in.Punct("="); err != nil {
			return "", err
		}
		return identRule(in)
	}
	literal := func(in *syntax.Input) (string, error) {
		lit, err := syntax.Parse(in, syntax.LitRule)
		if err != nil {
			return "", err
		}
		return lit.Text, nil
	}
	rule := func(in *syntax.Input) (string, error) {
		return syntax.Alt(in, literal, twoIdents)
	}

	got, err := syntax.ParseAll(lex(t, "1"), rule)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	// twoIdents gets past `a =` before failing, so its error wins.
	_, err = syntax.ParseAll(lex(t, "a = 2"), rule)
	var perr *syntax.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "expected identifier, found `2`", perr.Message)
	assert.Equal(t, 1, perr.Span.Start.Line)
	assert.Equal(t, 5, perr.Span.Start.Column)
}

func TestAltSamePositionMerges(t *testing.T) {
	semi := func(in *syntax.Input) (tokens.Span, error) { return in.Punct(";") }
	brace := func(in *syntax.Input) (tokens.Span, error) { return in.Punct("}") }
	rule := func(in *syntax.Input) (tokens.Span, error) {
		return syntax.Alt(in, semi, brace)
	}
	_, err := syntax.ParseAll(lex(t, "x"), rule)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected `;` or `}`, found `x`")
}

func TestOptional(t *testing.T) {
	isIdent := func(c syntax.Cursor) bool {
		tok, _, ok := c.Token()
		return ok && tok.Kind == tokens.KindIdent
	}

	rule := func(in *syntax.Input) ([]string, error) {
		var out []string
		for !in.IsEmpty() {
			name, ok, err := syntax.Optional(in, isIdent, identRule)
			if err != nil {
				return nil, err
			}
			if !ok {
				if _, err := in.Punct(";"); err != nil {
					return nil, err
				}
				out = append(out, ";")
				continue
			}
			out = append(out, name)
		}
		return out, nil
	}
	got, err := syntax.ParseAll(lex(t, "a ; b"), rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", ";", "b"}, got)
}

func TestDelimited(t *testing.T) {
	rule := func(in *syntax.Input) (syntax.Punctuated[string], error) {
		list, _, err := syntax.Delimited(in, tokens.Paren, listRule(syntax.ListOptions{}))
		return list, err
	}
	list, err := syntax.ParseAll(lex(t, "(a, b)"), rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, list.Values())

	_, err = syntax.ParseAll(lex(t, "[a]"), rule)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected `(`")

	_, err = syntax.ParseAll(lex(t, "(a b)"), rule)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected `)`, found `b`")
}

func TestParseAllTrailingTokens(t *testing.T) {
	_, err := syntax.ParseAll(lex(t, "a b"), identRule)
	var perr *syntax.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, syntax.ErrTrailingTokens, perr.Kind)
	assert.Equal(t, "expected end of input, found `b`", perr.Message)
}

func TestUnexpectedEnd(t *testing.T) {
	_, err := syntax.ParseExpr("1 +")
	var perr *syntax.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, syntax.ErrUnexpectedEnd, perr.Kind)
}

func TestUnexpectedEndInsideGroup(t *testing.T) {
	_, err := syntax.ParseExpr("f(1 +)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found `)`")
}

func TestParseSourceLexError(t *testing.T) {
	_, err := syntax.ParseExpr("(1")
	var perr *syntax.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, syntax.ErrCustom, perr.Kind)
	assert.Contains(t, perr.Message, "unclosed delimiter")
}

func TestParseDeterministic(t *testing.T) {
	src := "fn f<T: Clone>(x: &T) -> Vec<T> { vec![x.clone(); 3] }"
	a, err := syntax.ParseFileString(src)
	require.NoError(t, err)
	b, err := syntax.ParseFileString(src)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, errA := syntax.ParseFileString("fn f( {}")
	_, errB := syntax.ParseFileString("fn f( {}")
	require.Error(t, errA)
	assert.Equal(t, errA.Error(), errB.Error())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "UnexpectedToken", syntax.ErrUnexpectedToken.String())
	assert.Equal(t, "TrailingTokens", syntax.ErrTrailingTokens.String())
	assert.Equal(t, "Unknown", syntax.ErrorKind(99).String())
}

func TestWithFile(t *testing.T) {
	_, err := syntax.ParseExpr("1 +", syntax.WithFile("lib.rs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lib.rs:")
}
