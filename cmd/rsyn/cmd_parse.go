package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rsyn/format"
	"github.com/dhamidi/rsyn/rust/syntax"
)

// readSource reads the named file, or stdin when args is empty.
func readSource(cmd *cobra.Command, args []string) (data []byte, name string, err error) {
	if len(args) == 0 {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err = os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return data, args[0], nil
}

// parseRule parses src with the grammar rule called name.
func parseRule(name string, src []byte, file string) (syntax.Node, error) {
	opt := syntax.WithFile(file)
	switch name {
	case "file":
		return syntax.ParseSource(src, syntax.FileRule, opt)
	case "item":
		return syntax.ParseSource(src, syntax.ItemRule, opt)
	case "expr":
		return syntax.ParseSource(src, syntax.ExprRule, opt)
	case "type":
		return syntax.ParseSource(src, syntax.TypeRule, opt)
	case "pat":
		return syntax.ParseSource(src, syntax.PatRule, opt)
	case "stmt":
		return syntax.ParseSource(src, syntax.StmtRule, opt)
	case "path":
		return syntax.ParseSource(src, syntax.PathRule, opt)
	case "generics":
		return syntax.ParseSource(src, syntax.GenericsRule, opt)
	case "block":
		return syntax.ParseSource(src, syntax.BlockRule, opt)
	case "lit":
		return syntax.ParseSource(src, syntax.LitRule, opt)
	}
	return nil, fmt.Errorf("unknown rule %q", name)
}

func newParseCmd() *cobra.Command {
	var rule string
	var outputFormat string
	var spans bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse Rust source and dump the syntax tree",
		Long: `Parse a Rust source file, or stdin when no file is given, and write the
syntax tree to stdout.

--rule selects the grammar rule the whole input must match: file, item, expr,
type, pat, stmt, path, generics, block or lit. --format picks json, tree, line or source; the
default comes from parse.format in rsyn.toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				outputFormat = settings.Parse.Format
			}

			node, err := parseRule(rule, src, name)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var enc format.Encoder
			if outputFormat == "json" && spans {
				enc = format.NewASTJSONEncoder(cmd.OutOrStdout()).WithSpans()
			} else {
				enc, err = format.New(outputFormat, cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}
			if err := enc.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rule, "rule", "r", "file", "grammar rule to parse with")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree, line, source)")
	cmd.Flags().BoolVar(&spans, "spans", false, "include source spans in json output")

	return cmd
}
