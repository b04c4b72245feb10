package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rsyn/format"
	"github.com/dhamidi/rsyn/rust/syntax"
	"github.com/dhamidi/rsyn/rust/tokens"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool
	var force bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reprint a .rs file from its syntax tree",
		Long: `Parse a .rs file, print the tree back to tokens and render them to stdout.

If no file is provided, reads Rust source from stdin.
Plain comments are not part of the syntax tree; files containing them are
refused unless --force is given.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}
			if len(args) == 1 {
				if ext := filepath.Ext(args[0]); ext != ".rs" {
					return fmt.Errorf("expected .rs file, got %s", ext)
				}
			}
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			lexer := tokens.NewLexer(source, name)
			stream, err := lexer.Stream()
			if err != nil {
				return fmt.Errorf("lex: %w", err)
			}
			if n := len(lexer.Comments()); n > 0 && !force {
				return fmt.Errorf("%s has %d comments that formatting would drop (first at %s); use --force",
					name, n, lexer.Comments()[0].Start)
			}
			file, err := syntax.ParseAll(stream, syntax.FileRule)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			output := format.Render(syntax.Print(file))
			if fmtOverwrite {
				return os.WriteFile(name, []byte(output), 0644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVar(&force, "force", false, "format even if plain comments would be lost")

	return cmd
}
