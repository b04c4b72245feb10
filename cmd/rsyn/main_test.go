package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseTree(t *testing.T) {
	out, err := run(t, "1 + 2 * x", "parse", "--rule", "expr", "--format", "tree")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "ExprBinary\t+", lines[0])
	assert.Contains(t, out, "  ExprBinary\t*")
	assert.Contains(t, out, "Path\tx")
}

func TestParseErrors(t *testing.T) {
	_, err := run(t, "let x = ;", "parse", "--rule", "stmt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected expression")

	_, err = run(t, "x", "parse", "--rule", "nonsense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule "nonsense"`)
}

func TestParseFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("pub fn answer() -> u32 { 42 }\n"), 0644))

	out, err := run(t, "", "parse", "--format", "json", "--spans", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"item_fn"`)
	assert.Contains(t, out, `"42"`)
	assert.Contains(t, out, `"span"`)
}

func TestTokens(t *testing.T) {
	out, err := run(t, "a::b(c)", "tokens")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"1:1\tIdent\ta",
		"1:2\tPunct\t:\tjoint",
		"1:3\tPunct\t:",
		"1:4\tIdent\tb",
		"1:5\tgroup\t(",
		"  1:6\tIdent\tc",
		"1:7\tgroup\t)",
	}, "\n")+"\n", out)
}

func TestFmt(t *testing.T) {
	out, err := run(t, "fn  main ( ) {\nlet x=1;}", "fmt")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {\n    let x = 1;\n}\n", out)

	_, err = run(t, "// note\nfn main() {}", "fmt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	out, err = run(t, "// note\nfn main() {}", "fmt", "--force")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", out)

	_, err = run(t, "", "fmt", "-w")
	assert.EqualError(t, err, "-w requires a file argument")
}

func TestFmtWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main(){let v=vec![1,2];}"), 0644))

	_, err := run(t, "", "fmt", "-w", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	again, err := run(t, "", "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, string(data), again)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.rs"), []byte("fn f() {}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.rs"), []byte("fn f( {}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("fn ("), 0644))

	out, err := run(t, "", "check", "-j", "2", dir)
	require.Error(t, err)
	assert.Contains(t, out, filepath.Join(dir, "bad.rs")+":1:")
	assert.Contains(t, out, "2 files, 1 failed\n")

	out, err = run(t, "", "check", "-x", "bad.rs", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 files, 0 failed\n")
}

func TestGrammar(t *testing.T) {
	out, err := run(t, "", "grammar")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "File = "))

	path := filepath.Join(t.TempDir(), "g.ebnf")
	require.NoError(t, os.WriteFile(path, []byte(`S = "a" T .`), 0644))
	_, err = run(t, "", "grammar", "check", path)
	require.NoError(t, err)
	out, err = run(t, "", "grammar", "check", "--start", "S", path)
	require.Error(t, err)
	assert.Contains(t, out, "T")
}
