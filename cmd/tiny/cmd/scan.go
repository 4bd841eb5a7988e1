package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	"github.com/msto63/tiny/foundation/tiny/lexer"
	"github.com/msto63/tiny/foundation/tiny/token"
	"github.com/msto63/tiny/foundation/tiny/tokenfile"
	"github.com/msto63/tiny/foundation/utils/filex"
)

var scanSummary bool

var scanCmd = &cobra.Command{
	Use:   "scan <input> <output>",
	Short: "Tokenize a source file into a token file",
	Long: `Reads a TINY source file, writes one "lexeme , CATEGORY" line per token
(EOF included) to the output file and prints the token list.

Examples:
  tiny scan factorial.tny tokens.txt
  tiny scan --summary factorial.tny tokens.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanSummary, "summary", false, "Print token counts per category")
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	input, output := args[0], args[1]
	started := time.Now()

	result, err := s.engine.ScanFile(input, output)
	s.record("scan", input, result, err, started)
	if err != nil {
		s.log.LogError(err)
		if tinyerror.HasCode(err, tinyerror.CodeNotFound) {
			s.println(s.paint.failure(fmt.Sprintf("Error: Input file '%s' does not exist.", input)))
			return nil
		}
		printError(s.out, "tokenization failed", err)
		return nil
	}

	s.println(s.paint.success(fmt.Sprintf("Tokenization complete. %d tokens written to %s",
		len(result.Tokens), filex.AbsPath(output))))

	if scanSummary {
		printTokenSummary(s, lexer.Summarize(result.Tokens))
	}

	s.println(s.paint.title("--- Tokens ---"))
	for _, tok := range result.Tokens {
		s.println(tokenfile.Format(tok))
	}
	return nil
}

func printTokenSummary(s *session, summary lexer.Summary) {
	s.println(s.paint.title("--- Summary ---"))
	for _, c := range token.Categories() {
		if n := summary.Counts[c]; n > 0 {
			s.printf("%-14s %d\n", c, n)
		}
	}
	s.printf("%-14s %d\n", "keywords", summary.Keywords())
	s.printf("%-14s %d\n", "total", summary.Total)
	for _, tok := range summary.Unknown {
		s.println(s.paint.warning(fmt.Sprintf("unknown lexeme %q at %s", tok.Lexeme, tok.Pos)))
	}
}
