// File: token.go
// Title: TINY Token Definitions
// Description: Defines the closed set of token categories, source positions
//              and the immutable Token value shared by the lexer, the token
//              file reader and the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package token

import (
	"fmt"
)

// Category classifies a token
type Category int

const (
	// UNKNOWN is any character the lexer cannot classify. It satisfies no
	// grammar rule.
	UNKNOWN Category = iota

	// Keywords
	IF
	THEN
	ELSE
	END
	REPEAT
	UNTIL
	READ
	WRITE

	// Identifiers and literals
	IDENTIFIER
	NUMBER

	// Operators and delimiters
	ASSIGN        // :=
	SEMICOLON     // ;
	LESSTHAN      // <
	EQUAL         // =
	PLUS          // +
	MINUS         // -
	MULT          // *
	DIV           // /
	OPENBRACKET   // (
	CLOSEDBRACKET // )

	// EOF terminates every token sequence
	EOF
)

var categoryNames = [...]string{
	UNKNOWN:       "UNKNOWN",
	IF:            "IF",
	THEN:          "THEN",
	ELSE:          "ELSE",
	END:           "END",
	REPEAT:        "REPEAT",
	UNTIL:         "UNTIL",
	READ:          "READ",
	WRITE:         "WRITE",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	ASSIGN:        "ASSIGN",
	SEMICOLON:     "SEMICOLON",
	LESSTHAN:      "LESSTHAN",
	EQUAL:         "EQUAL",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	MULT:          "MULT",
	DIV:           "DIV",
	OPENBRACKET:   "OPENBRACKET",
	CLOSEDBRACKET: "CLOSEDBRACKET",
	EOF:           "EOF",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = Category(c)
	}
	return m
}()

// String returns the upper-case name used in token files
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// IsValid reports whether c is one of the declared categories
func (c Category) IsValid() bool {
	return c >= UNKNOWN && c <= EOF
}

// IsKeyword reports whether c is a reserved word category
func (c Category) IsKeyword() bool {
	return c >= IF && c <= WRITE
}

// StartsStatement reports whether a token of this category can begin a
// statement.
func (c Category) StartsStatement() bool {
	switch c {
	case IF, REPEAT, READ, WRITE, IDENTIFIER:
		return true
	default:
		return false
	}
}

// ParseCategory resolves a token file category name. The match is exact.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoriesByName[name]
	return c, ok
}

// Categories returns every category in declaration order
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for c := range categoryNames {
		out = append(out, Category(c))
	}
	return out
}

// Pos is a location in source text. Line and Column are 1-based, Offset is
// a 0-based byte offset. The zero Pos means "no position", which is what
// tokens read from a token file carry.
type Pos struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether the position refers to source text
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String returns "line:column", or "-" for the zero position
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is an immutable (lexeme, category) pair with the position of its
// first character.
type Token struct {
	Lexeme   string
	Category Category
	Pos      Pos
}

// EOFLexeme is the lexeme of the sentinel token
const EOFLexeme = "EOF"

// EOFToken returns the sentinel that terminates every token sequence
func EOFToken(pos Pos) Token {
	return Token{Lexeme: EOFLexeme, Category: EOF, Pos: pos}
}

// New creates a token without position
func New(lexeme string, category Category) Token {
	return Token{Lexeme: lexeme, Category: category}
}

// Same reports whether two tokens have equal lexeme and category,
// ignoring position.
func (t Token) Same(other Token) bool {
	return t.Lexeme == other.Lexeme && t.Category == other.Category
}

// String renders the token as ("lexeme", CATEGORY)
func (t Token) String() string {
	return fmt.Sprintf("(%q, %s)", t.Lexeme, t.Category)
}

// SameSequence reports whether two token sequences are equal modulo position
func SameSequence(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}
