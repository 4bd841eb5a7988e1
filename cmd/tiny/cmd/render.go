package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/tiny"
	"github.com/msto63/tiny/foundation/tiny/ast"
	"github.com/msto63/tiny/foundation/tiny/parser"
)

// Output formats for syntax trees
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// treeOptions controls how parse and compile print their result
type treeOptions struct {
	format  string
	summary bool
}

// resolveFormat picks the flag value when set, the configured format otherwise
func resolveFormat(s *session, flagSet bool, flag string) (string, error) {
	format := s.cfg.Output.Format
	if flagSet {
		format = flag
	}
	switch format {
	case formatText, formatJSON, formatYAML:
		return format, nil
	default:
		return "", tinyerror.Newf("unknown output format %q (text, json, yaml)", format).
			WithCode(tinyerror.CodeInvalidInput)
	}
}

// printOutcome prints the tree of an accepted program or the reason it was
// rejected. Rejections are reported as text, never as a command failure.
func printOutcome(s *session, input string, result *tiny.Result, err error, opts treeOptions) error {
	if err != nil {
		switch {
		case parser.IsSyntaxError(err):
			s.log.Info("Program rejected", tinylog.Fields{"input": input, "error": err.Error()})
			s.println(s.paint.failure("Parsing failed : " + err.Error()))
		case tinyerror.HasCode(err, tinyerror.CodeNotFound):
			s.log.LogError(err)
			s.println(s.paint.failure(fmt.Sprintf("Error: Input file '%s' does not exist.", input)))
		default:
			s.log.LogError(err)
			printError(s.out, "parsing aborted", err)
		}
		return nil
	}

	switch opts.format {
	case formatJSON:
		data, err := json.MarshalIndent(ast.Export(result.Program), "", "  ")
		if err != nil {
			return tinyerror.Wrap(err, "failed to encode syntax tree").
				WithCode(tinyerror.CodeInternal)
		}
		s.println(string(data))
	case formatYAML:
		data, err := yaml.Marshal(ast.Export(result.Program))
		if err != nil {
			return tinyerror.Wrap(err, "failed to encode syntax tree").
				WithCode(tinyerror.CodeInternal)
		}
		s.printf("%s", data)
	default:
		s.println(s.paint.title("--- AST ---"))
		s.printf("%s", ast.ASTToString(result.Program))
		s.println(s.paint.success("Parsing successful "))
	}

	if opts.summary {
		printTreeSummary(s, result)
	}
	return nil
}

func printTreeSummary(s *session, result *tiny.Result) {
	nodes := ast.CollectNodes(result.Program)

	s.println(s.paint.title("--- Summary ---"))
	s.printf("%-12s %d\n", "tokens", len(result.Tokens))
	s.printf("%-12s %d\n", "statements", len(nodes.Statements))
	s.printf("%-12s %d\n", "identifiers", len(nodes.Identifiers))
	s.printf("%-12s %d\n", "numbers", len(nodes.Numbers))
	s.printf("%-12s %d\n", "max depth", nodes.MaxDepth)

	ops := make([]string, 0, len(nodes.Operators))
	for op, n := range nodes.Operators {
		ops = append(ops, fmt.Sprintf("%s=%d", op, n))
	}
	sort.Strings(ops)
	s.printf("%-12s %s\n", "operators", strings.Join(ops, " "))
	s.printf("%-12s %s\n", "variables", strings.Join(nodes.Variables(), ", "))
	s.println(s.paint.muted(fmt.Sprintf("parsed in %s", result.Duration)))
}
