// File: summary.go
// Title: Token Sequence Summary
// Description: Counts tokens per category for the tokenization report.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"github.com/msto63/tiny/foundation/tiny/token"
)

// Summary describes a token sequence
type Summary struct {
	Total   int
	Counts  map[token.Category]int
	Unknown []token.Token
}

// Summarize counts the tokens of a sequence per category and collects the
// UNKNOWN tokens in order of appearance.
func Summarize(tokens []token.Token) Summary {
	s := Summary{
		Total:  len(tokens),
		Counts: make(map[token.Category]int),
	}
	for _, tok := range tokens {
		s.Counts[tok.Category]++
		if tok.Category == token.UNKNOWN {
			s.Unknown = append(s.Unknown, tok)
		}
	}
	return s
}

// Keywords returns the number of keyword tokens
func (s Summary) Keywords() int {
	n := 0
	for c, count := range s.Counts {
		if c.IsKeyword() {
			n += count
		}
	}
	return n
}
