package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/proj", 0o755))

	cfg, err := Load(fsys, "/proj")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Path)
	assert.Equal(t, "json", cfg.Parse.Format)
	assert.GreaterOrEqual(t, cfg.Check.Workers, 1)
}

func TestLoadFromParent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/proj/rsyn.toml", []byte(`
[check]
workers = 3
exclude = ["target/**", "*.gen.rs"]

[parse]
format = "tree"

[lsp]
log_file = "/tmp/lsp.log"
`), 0o644))
	require.NoError(t, fsys.MkdirAll("/proj/src/nested", 0o755))

	cfg, err := Load(fsys, "/proj/src/nested")
	require.NoError(t, err)
	assert.Equal(t, "/proj/rsyn.toml", cfg.Path)
	assert.Equal(t, 3, cfg.Check.Workers)
	assert.Equal(t, []string{"target/**", "*.gen.rs"}, cfg.Check.Exclude)
	assert.Equal(t, "tree", cfg.Parse.Format)
	assert.Equal(t, "/tmp/lsp.log", cfg.LSP.LogFile)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unknown key", input: "[check]\nthreads = 2\n", want: "unknown setting"},
		{name: "zero workers", input: "[check]\nworkers = 0\n", want: "check.workers"},
		{name: "bad format", input: "[parse]\nformat = \"yaml\"\n", want: "parse.format"},
		{name: "bad pattern", input: "[check]\nexclude = [\"[\"]\n", want: "check.exclude"},
		{name: "syntax", input: "[check\n", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Decode([]byte(tt.input), &cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExcluded(t *testing.T) {
	c := Check{Exclude: []string{"target/**", "*.gen.rs", "tests/fixtures/*.rs"}}
	tests := []struct {
		path string
		want bool
	}{
		{"target", true},
		{"target/debug/build.rs", true},
		{"src/target.rs", false},
		{"schema.gen.rs", true},
		{"src/schema.gen.rs", false},
		{"tests/fixtures/bad.rs", true},
		{"tests/fixtures/deep/bad.rs", false},
		{"src/lib.rs", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Excluded(tt.path))
		})
	}
}
