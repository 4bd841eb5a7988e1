package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

const defaultTokenFile = "tokens.txt"

var parseOpts treeOptions

var parseCmd = &cobra.Command{
	Use:   "parse [tokens-file]",
	Short: "Parse a token file and print the syntax tree",
	Long: `Reads a token file written by "tiny scan" and parses it. An accepted
program prints its syntax tree, a rejected one the syntax error.

Without an argument the file tokens.txt in the current directory is read.

Examples:
  tiny parse
  tiny parse build/tokens.txt
  tiny parse --format json --summary tokens.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOpts.format, "format", "f", formatText, "Output format (text, json, yaml)")
	parseCmd.Flags().BoolVar(&parseOpts.summary, "summary", false, "Print node counts after the tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := parseOpts
	opts.format, err = resolveFormat(s, cmd.Flags().Changed("format"), parseOpts.format)
	if err != nil {
		return err
	}

	input := defaultTokenFile
	if len(args) > 0 {
		input = args[0]
	}
	started := time.Now()

	result, err := s.engine.ParseFile(input)
	s.record("parse", input, result, err, started)
	return printOutcome(s, input, result, err, opts)
}
