// File: doc.go
// Title: TINY Parser Package Documentation
// Description: Documents the TINY grammar and the recursive descent parser.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser documentation
// - 2026-10-19 v0.2.0: TINY grammar

/*
Package parser turns a TINY token sequence into an AST.

Grammar:

	Program    -> StmtSeq EOF
	StmtSeq    -> Stmt { ';' Stmt }
	Stmt       -> IfStmt | RepeatStmt | Assign | Read | Write
	IfStmt     -> IF Expr THEN StmtSeq [ELSE StmtSeq] END
	RepeatStmt -> REPEAT StmtSeq UNTIL Expr
	Assign     -> IDENTIFIER ASSIGN Expr
	Read       -> READ IDENTIFIER
	Write      -> WRITE Expr
	Expr       -> SimpleExpr [ (LESSTHAN | EQUAL) SimpleExpr ]
	SimpleExpr -> Term { (PLUS | MINUS) Term }
	Term       -> Factor { (MULT | DIV) Factor }
	Factor     -> NUMBER | IDENTIFIER | '(' Expr ')'

The grammar is LL(1). Each rule is one method that dispatches on the
category of the current token. Arithmetic operators are left-associative;
the relational operator is non-associative, so "a<b<c" is rejected while
"a<(b<c)" is accepted.

A statement sequence accepts one trailing ';' in front of END, UNTIL, ELSE
or EOF: after a ';' the sequence ends when the next token cannot begin a
statement.

The parser only needs (lexeme, category) pairs, so it accepts tokens from
the lexer as well as tokens read from a token file:

	program, err := parser.ParseSource("read x; write x")
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			fmt.Println(se.Kind, se.Found)
		}
	}

Parsing stops at the first error and returns a *SyntaxError. The cursor
never moves past the first EOF token, and a sequence without EOF behaves
as if one followed its last token. Nesting of statement sequences and
expressions is bounded by Options.MaxDepth so that adversarial input fails
with NestingTooDeep instead of exhausting the stack.

A Parser is not safe for concurrent use; separate parsers share no state.
*/
package parser
