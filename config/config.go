// Package config reads rsyn.toml, the optional settings file for the rsyn
// command and language server.
//
//	[check]
//	workers = 8
//	exclude = ["target/**", "vendor/*"]
//
//	[parse]
//	format = "tree"
//
//	[lsp]
//	log_file = "/tmp/rsyn-lsp.log"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// FileName is looked up in the working directory and its parents.
const FileName = "rsyn.toml"

type Config struct {
	Check Check `toml:"check"`
	Parse Parse `toml:"parse"`
	LSP   LSP   `toml:"lsp"`

	// Path of the file the settings came from, empty for defaults.
	Path string `toml:"-"`
}

type Check struct {
	// Workers bounds how many files are parsed at once.
	Workers int `toml:"workers"`
	// Exclude holds slash-separated glob patterns matched against paths
	// relative to the checked root. A trailing /** excludes a whole tree.
	Exclude []string `toml:"exclude"`
}

type Parse struct {
	Format string `toml:"format"`
}

type LSP struct {
	LogFile string `toml:"log_file"`
}

func Default() Config {
	return Config{
		Check: Check{Workers: runtime.GOMAXPROCS(0)},
		Parse: Parse{Format: "json"},
	}
}

// Load searches dir and its parents for rsyn.toml and decodes it over the
// defaults. A missing file is not an error.
func Load(fsys afero.Fs, dir string) (Config, error) {
	cfg := Default()
	dir, err := filepath.Abs(dir)
	if err != nil {
		return cfg, fmt.Errorf("resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		data, err := afero.ReadFile(fsys, candidate)
		switch {
		case err == nil:
			if err := Decode(data, &cfg); err != nil {
				return cfg, fmt.Errorf("%s: %w", candidate, err)
			}
			cfg.Path = candidate
			return cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return cfg, fmt.Errorf("read %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cfg, nil
		}
		dir = parent
	}
}

// Decode reads TOML settings into cfg, rejecting unknown keys and invalid
// values. Keys absent from data keep their current value.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown setting:\n%s", strict.String())
		}
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Check.Workers < 1 {
		return fmt.Errorf("check.workers must be at least 1, got %d", c.Check.Workers)
	}
	for _, pattern := range c.Check.Exclude {
		if _, err := path.Match(strings.TrimSuffix(pattern, "/**"), ""); err != nil {
			return fmt.Errorf("check.exclude: bad pattern %q: %w", pattern, err)
		}
	}
	switch c.Parse.Format {
	case "json", "tree", "line", "source", "rust":
	default:
		return fmt.Errorf("parse.format: unknown format %q", c.Parse.Format)
	}
	return nil
}

// Excluded reports whether rel, a path relative to the checked root, matches
// one of the check.exclude patterns. A pattern ending in /** matches the
// directory it names and everything below it.
func (c Check) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.Exclude {
		if tree, ok := strings.CutSuffix(pattern, "/**"); ok {
			if matchPrefix(tree, rel) {
				return true
			}
			continue
		}
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// matchPrefix reports whether some leading run of rel's elements matches
// pattern.
func matchPrefix(pattern, rel string) bool {
	parts := strings.Split(rel, "/")
	for i := range parts {
		if ok, _ := path.Match(pattern, strings.Join(parts[:i+1], "/")); ok {
			return true
		}
	}
	return false
}
