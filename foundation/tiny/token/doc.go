// File: doc.go
// Title: TINY Token Package Documentation
// Description: Token categories and the Token value exchanged between the
//              lexer, the token file layer and the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token package

/*
Package token defines the lexical tokens of the TINY language.

A Token is a (lexeme, category) pair. Category is a closed enumeration whose
String form is the upper-case name written to token files ("IDENTIFIER",
"ASSIGN", ...). Every token sequence ends with exactly one EOF token whose
lexeme is "EOF".

Positions are informational only. Two tokens are considered the same when
lexeme and category match; use Token.Same and SameSequence for comparisons
that must hold across a token file round trip.
*/
package token
