// File: doc.go
// Title: TINY Token File Package Documentation
// Description: Documents the token file format.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package tokenfile reads and writes TINY token files.

A token file holds one token per line, lexeme first, then the category
name, separated by a comma:

	read , READ
	x , IDENTIFIER
	; , SEMICOLON
	EOF , EOF

Reading trims every line and field, skips empty lines and lines starting
with '#', and appends an EOF token when the file does not end with one.
A line that does not split into exactly two fields, or names an unknown
category, fails with a *MalformedLineError.

Tokens read from a file carry no source position. Writing and reading back
reproduces the same (lexeme, category) sequence as long as no lexeme
contains a comma or starts with '#'; the lexer produces both as UNKNOWN
tokens.
*/
package tokenfile
