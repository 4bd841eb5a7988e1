// File: fuzz_test.go
// Title: TINY Parser Fuzz Tests
// Description: Fuzz target checking that parsing terminates on any input
//              and either yields a valid tree or a SyntaxError.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"testing"

	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/tiny/ast"
	"github.com/msto63/tiny/foundation/tiny/lexer"
)

func FuzzParse(f *testing.F) {
	f.Add(acceptanceSource)
	f.Add("read x;\nif x < 10 then\n   write x\nendif")
	f.Add("repeat fact := fact * x; x := x - 1 until x = 0; write fact")
	f.Add("write a<(b<c)")
	f.Add("write ((((((1))))))")
	f.Add("if if if")
	f.Add(";;;")

	logger := tinylog.NewNop()

	f.Fuzz(func(t *testing.T, input string) {
		toks := lexer.New(input, lexer.Options{ElseKeyword: true, Logger: logger}).Tokenize()
		program, err := New(toks, Options{MaxDepth: 64, Logger: logger}).ParseProgram()

		if err != nil {
			if program != nil {
				t.Fatalf("partial program with error %v", err)
			}
			if !IsSyntaxError(err) {
				t.Fatalf("error %T is not a *SyntaxError: %v", err, err)
			}
			return
		}

		if errs := ast.ValidateAST(program); len(errs) != 0 {
			t.Fatalf("accepted %q but tree is invalid: %v", input, errs)
		}
	})
}
