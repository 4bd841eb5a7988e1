// File: doc.go
// Title: TINY Front End Package Documentation
// Description: Overview of the TINY lexer and parser front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-19 v0.2.0: TINY front end

/*
Package tiny is the front end of the TINY teaching language: it turns
source text into tokens and tokens into an abstract syntax tree.

The work is split over sub-packages:

  - token: categories, positions and the Token type
  - lexer: source text to tokens; never fails, unknown characters become
    UNKNOWN tokens
  - tokenfile: the "lexeme , CATEGORY" token file exchanged between the
    scanner and the parser
  - parser: recursive descent parser producing an AST or a *SyntaxError
  - ast: node types, tree dump, validation and export

Engine ties them together with logging and timing:

	engine, err := tiny.New(tiny.Options{})
	if err != nil {
		return err
	}
	result, err := engine.Compile("read x; write x")
	if err != nil {
		// *parser.SyntaxError for rejected programs
	}
	fmt.Print(ast.ASTToString(result.Program))

An Engine keeps no per-run state and may be shared between goroutines.
*/
package tiny
