package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/rsyn/config"
)

const version = "0.1.0"

// settings is rsyn.toml from the working directory or one of its parents,
// loaded before any command runs.
var settings = config.Default()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rsyn:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "rsyn",
		Short:         "Parse, print and check Rust source files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(afero.NewOsFs(), ".")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			settings = cfg
			if logFile == "" {
				logFile = settings.LSP.LogFile
			}
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbose, path)
			if settings.Path != "" {
				commonlog.GetLogger("rsyn").Debugf("using %s", settings.Path)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more; repeat for debug output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}
