// File: doc.go
// Title: TINY Lexer Package Documentation
// Description: Lexical analysis of TINY source text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.2.0: Split out of the parser package

/*
Package lexer converts TINY source text into tokens.

The scanner makes a single pass over the input:

  - whitespace and { ... } comments are skipped
  - a letter starts a word of letters and digits; words matching a keyword
    (if, then, end, repeat, until, read, write) in any case become that
    keyword with the original spelling kept, all others are identifiers
  - a digit starts a run of digits (NUMBER)
  - ":=" is ASSIGN; ; < = + - * / ( ) map to their categories
  - anything else, including a lone ':', is a one-character UNKNOWN token

Tokenize always returns a sequence ending in ("EOF", EOF) and never fails.
Rejecting UNKNOWN tokens is left to the parser.
*/
package lexer
