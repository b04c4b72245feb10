// Package check parses every Rust source file below a set of roots and
// collects the files that fail to parse.
package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/rsyn/config"
	"github.com/dhamidi/rsyn/rust/syntax"
)

var log = commonlog.GetLogger("rsyn.check")

// Result is the outcome for one file. Err is nil when the file parsed.
type Result struct {
	Path  string
	Items int
	Err   error
}

// Report lists results in path order.
type Report struct {
	Results []Result
}

func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

type Checker struct {
	fs       afero.Fs
	settings config.Check
}

func New(fs afero.Fs, settings config.Check) *Checker {
	if settings.Workers < 1 {
		settings.Workers = 1
	}
	return &Checker{fs: fs, settings: settings}
}

// Files lists the .rs files below roots, skipping hidden directories and
// excluded paths. A root that is itself a file is returned as given.
func (c *Checker) Files(roots []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		info, err := c.fs.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = afero.Walk(c.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			rel, _ := filepath.Rel(root, path)
			if info.IsDir() {
				if path != root && (strings.HasPrefix(info.Name(), ".") || c.settings.Excluded(rel)) {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ".rs" && !c.settings.Excluded(rel) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run parses the files below roots with at most settings.Workers files in
// flight. Parse failures are reported per file; the returned error is only
// set for I/O failures and cancellation.
func (c *Checker) Run(ctx context.Context, roots []string) (*Report, error) {
	files, err := c.Files(roots)
	if err != nil {
		return nil, err
	}
	log.Infof("checking %d files with %d workers", len(files), c.settings.Workers)

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.checkFile(path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Report{Results: results}, nil
}

func (c *Checker) checkFile(path string) (Result, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	file, err := syntax.ParseFile(f, syntax.WithFile(path))
	if err != nil {
		log.Debugf("%s: %v", path, err)
		return Result{Path: path, Err: err}, nil
	}
	return Result{Path: path, Items: len(file.Items)}, nil
}
