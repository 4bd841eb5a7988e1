package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var compileOpts treeOptions

var compileCmd = &cobra.Command{
	Use:   "compile <source>",
	Short: "Tokenize and parse a source file in one step",
	Long: `Reads a TINY source file, tokenizes it and parses the tokens without
writing a token file. The output is the same as for "tiny parse".

Examples:
  tiny compile factorial.tny
  tiny compile --format yaml factorial.tny`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileOpts.format, "format", "f", formatText, "Output format (text, json, yaml)")
	compileCmd.Flags().BoolVar(&compileOpts.summary, "summary", false, "Print node counts after the tree")
}

func runCompile(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := compileOpts
	opts.format, err = resolveFormat(s, cmd.Flags().Changed("format"), compileOpts.format)
	if err != nil {
		return err
	}

	input := args[0]
	started := time.Now()

	result, err := s.engine.CompileFile(input)
	s.record("compile", input, result, err, started)
	return printOutcome(s, input, result, err, opts)
}
