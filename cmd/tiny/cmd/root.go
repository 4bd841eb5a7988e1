package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "tiny",
	Short: "TINY - Lexer and parser toolchain",
	Long: `tiny tokenizes and parses programs written in the TINY teaching language.

Commands:
  scan     - Source file to token file
  parse    - Token file to syntax tree
  compile  - Source file to syntax tree in one step
  history  - Recorded runs
  version  - Build information

Syntax errors are reported as text. The exit status is non-zero only when
the tool itself cannot run.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $TINY_CONFIG, ./tiny.toml, ./configs/tiny.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
