package syntax_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/rsyn/rust/syntax"
)

func TestGrammarVerifies(t *testing.T) {
	g, err := syntax.Grammar()
	require.NoError(t, err)

	for _, name := range []string{"File", "Item", "Expr", "Type", "Pat", "Stmt", "Block", "Path", "Generics", "Lit", "Visibility", "Bounds"} {
		assert.Contains(t, g, name, "production %s", name)
	}
	assert.Contains(t, g, "ident")
}

func TestLoadGrammar(t *testing.T) {
	_, err := syntax.LoadGrammar("ok.ebnf", strings.NewReader(`S = "a" { T } . T = "b" .`), "S")
	require.NoError(t, err)

	_, err = syntax.LoadGrammar("missing.ebnf", strings.NewReader(`S = "a" T .`), "S")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verify grammar")

	_, err = syntax.LoadGrammar("unused.ebnf", strings.NewReader(`S = "a" . T = "b" .`), "")
	require.NoError(t, err, "syntax only without a start production")

	_, err = syntax.LoadGrammar("broken.ebnf", strings.NewReader(`S = "a"`), "S")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse grammar")
}

func TestGrammarSourceIsCopy(t *testing.T) {
	src := syntax.GrammarSource()
	require.NotEmpty(t, src)
	src[0] = 'X'
	assert.Equal(t, byte('F'), syntax.GrammarSource()[0])
}
