package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dhamidi/rsyn/check"
	"github.com/dhamidi/rsyn/rust/syntax"
)

func newCheckCmd() *cobra.Command {
	var workers int
	var exclude []string

	cmd := &cobra.Command{
		Use:   "check <dir|file>...",
		Short: "Parse every .rs file and report the ones that fail",
		Long: `Parse every .rs file below the given directories, several at a time, and
print one line per parse error. Exits with status 1 if any file fails.

Worker count and exclude patterns default to check.workers and
check.exclude in rsyn.toml.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := settings.Check
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			opts.Exclude = append(opts.Exclude, exclude...)

			report, err := check.New(afero.NewOsFs(), opts).Run(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}

			out := cmd.OutOrStdout()
			failed := report.Failed()
			for _, res := range failed {
				var perr *syntax.Error
				if errors.As(res.Err, &perr) && !perr.Span.IsZero() {
					fmt.Fprintf(out, "%s: %s\n", perr.Span.Start, perr.Message)
					continue
				}
				fmt.Fprintf(out, "%s: %v\n", res.Path, res.Err)
			}
			fmt.Fprintf(out, "%d files, %d failed\n", len(report.Results), len(failed))
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d files failed to parse", len(failed), len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "files to parse at once")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "glob of paths to skip, relative to each root")

	return cmd
}
