package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rsyn/rust/tokens"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token tree of a Rust source file",
		Long: `Lex a Rust source file, or stdin, and print one token per line:
position, kind, text and, for punctuation, whether it joins the next token.
Delimited groups are indented.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			stream, err := tokens.Lex(src, name)
			if err != nil {
				return fmt.Errorf("lex: %w", err)
			}
			return dumpTokens(cmd.OutOrStdout(), stream, 0)
		},
	}
}

func dumpTokens(w io.Writer, s tokens.Stream, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, tt := range s {
		switch tt := tt.(type) {
		case tokens.Token:
			line := fmt.Sprintf("%s%d:%d\t%s\t%s", indent, tt.Span.Start.Line, tt.Span.Start.Column, tt.Kind, tt.Text)
			if tt.Kind == tokens.KindPunct && tt.Spacing == tokens.Joint {
				line += "\tjoint"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		case *tokens.Group:
			if _, err := fmt.Fprintf(w, "%s%d:%d\tgroup\t%s\n", indent, tt.Open.Start.Line, tt.Open.Start.Column, tt.Delim.Open()); err != nil {
				return err
			}
			if err := dumpTokens(w, tt.Stream, depth+1); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s%d:%d\tgroup\t%s\n", indent, tt.Close.Start.Line, tt.Close.Start.Column, tt.Delim.Close()); err != nil {
				return err
			}
		}
	}
	return nil
}
