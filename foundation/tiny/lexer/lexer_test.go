// File: lexer_test.go
// Title: TINY Lexer Unit Tests
// Description: Tests for token classification, keyword folding, comments,
//              position tracking and the EOF sentinel.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive test suite
// - 2026-10-19 v0.2.0: Rewritten for the TINY token set

package lexer

import (
	"strings"
	"testing"

	"github.com/msto63/tiny/foundation/tiny/token"
)

func tok(lexeme string, c token.Category) token.Token {
	return token.New(lexeme, c)
}

func assertSame(t *testing.T, got, want []token.Token) {
	t.Helper()
	if !token.SameSequence(got, want) {
		t.Errorf("tokens mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []token.Token{tok("EOF", token.EOF)},
		},
		{
			name:  "assignment",
			input: "x:=1",
			expected: []token.Token{
				tok("x", token.IDENTIFIER),
				tok(":=", token.ASSIGN),
				tok("1", token.NUMBER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "all single character operators",
			input: "; < = + - * / ( )",
			expected: []token.Token{
				tok(";", token.SEMICOLON),
				tok("<", token.LESSTHAN),
				tok("=", token.EQUAL),
				tok("+", token.PLUS),
				tok("-", token.MINUS),
				tok("*", token.MULT),
				tok("/", token.DIV),
				tok("(", token.OPENBRACKET),
				tok(")", token.CLOSEDBRACKET),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "lone colon is unknown",
			input: "x : 1",
			expected: []token.Token{
				tok("x", token.IDENTIFIER),
				tok(":", token.UNKNOWN),
				tok("1", token.NUMBER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "colon at end of input",
			input: "x:",
			expected: []token.Token{
				tok("x", token.IDENTIFIER),
				tok(":", token.UNKNOWN),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "unknown characters are single tokens",
			input: "a!?b",
			expected: []token.Token{
				tok("a", token.IDENTIFIER),
				tok("!", token.UNKNOWN),
				tok("?", token.UNKNOWN),
				tok("b", token.IDENTIFIER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "words run across digits",
			input: "x1y2 12ab",
			expected: []token.Token{
				tok("x1y2", token.IDENTIFIER),
				tok("12", token.NUMBER),
				tok("ab", token.IDENTIFIER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "minus is never part of a number",
			input: "-5",
			expected: []token.Token{
				tok("-", token.MINUS),
				tok("5", token.NUMBER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "decimal point is unknown",
			input: "3.14",
			expected: []token.Token{
				tok("3", token.NUMBER),
				tok(".", token.UNKNOWN),
				tok("14", token.NUMBER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "underscore is not a letter",
			input: "a_b",
			expected: []token.Token{
				tok("a", token.IDENTIFIER),
				tok("_", token.UNKNOWN),
				tok("b", token.IDENTIFIER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "unterminated comment consumes the rest",
			input: "write x {never closed ; y := 2",
			expected: []token.Token{
				tok("write", token.WRITE),
				tok("x", token.IDENTIFIER),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "stray closing brace is unknown",
			input: "}",
			expected: []token.Token{
				tok("}", token.UNKNOWN),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "non-ASCII character is one unknown token",
			input: "x:=é",
			expected: []token.Token{
				tok("x", token.IDENTIFIER),
				tok(":=", token.ASSIGN),
				tok("é", token.UNKNOWN),
				tok("EOF", token.EOF),
			},
		},
		{
			name:  "else is an identifier by default",
			input: "else",
			expected: []token.Token{
				tok("else", token.IDENTIFIER),
				tok("EOF", token.EOF),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSame(t, Tokenize(tt.input), tt.expected)
		})
	}
}

func TestKeywordCaseInsensitivity(t *testing.T) {
	keywords := map[string]token.Category{
		"if":     token.IF,
		"then":   token.THEN,
		"end":    token.END,
		"repeat": token.REPEAT,
		"until":  token.UNTIL,
		"read":   token.READ,
		"write":  token.WRITE,
	}

	for word, want := range keywords {
		for _, spelling := range []string{word, strings.ToUpper(word), strings.ToUpper(word[:1]) + word[1:]} {
			tokens := Tokenize(spelling)
			if len(tokens) != 2 {
				t.Fatalf("Tokenize(%q) returned %d tokens", spelling, len(tokens))
			}
			if tokens[0].Category != want {
				t.Errorf("Tokenize(%q) category = %v, want %v", spelling, tokens[0].Category, want)
			}
			if tokens[0].Lexeme != spelling {
				t.Errorf("Tokenize(%q) lexeme = %q, original casing lost", spelling, tokens[0].Lexeme)
			}
		}
	}
}

func TestCommentElision(t *testing.T) {
	withComment := Tokenize("x{comment}:=1")
	without := Tokenize("x:=1")
	assertSame(t, withComment, without)

	multiline := Tokenize("{ header\n  spanning lines }\nx:=1 { trailing }")
	assertSame(t, multiline, without)
}

func TestEndToEndTokens(t *testing.T) {
	input := "read x;\nif x < 10 then\n   write x\nend"
	expected := []token.Token{
		tok("read", token.READ),
		tok("x", token.IDENTIFIER),
		tok(";", token.SEMICOLON),
		tok("if", token.IF),
		tok("x", token.IDENTIFIER),
		tok("<", token.LESSTHAN),
		tok("10", token.NUMBER),
		tok("then", token.THEN),
		tok("write", token.WRITE),
		tok("x", token.IDENTIFIER),
		tok("end", token.END),
		tok("EOF", token.EOF),
	}
	assertSame(t, Tokenize(input), expected)
}

func TestPositions(t *testing.T) {
	tokens := Tokenize("x := 1\n  y")
	expected := []token.Pos{
		{Line: 1, Column: 1, Offset: 0},
		{Line: 1, Column: 3, Offset: 2},
		{Line: 1, Column: 6, Offset: 5},
		{Line: 2, Column: 3, Offset: 9},
		{Line: 2, Column: 4, Offset: 10},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(expected))
	}
	for i, want := range expected {
		if tokens[i].Pos != want {
			t.Errorf("token %d %v at %+v, want %+v", i, tokens[i], tokens[i].Pos, want)
		}
	}
}

func TestPositionAfterMultiByteCharacter(t *testing.T) {
	tokens := Tokenize("é")
	eof := tokens[len(tokens)-1]
	if eof.Pos.Column != 2 || eof.Pos.Offset != len("é") {
		t.Errorf("EOF at %+v", eof.Pos)
	}
}

func TestNextTokenAfterEOF(t *testing.T) {
	l := New("x", Options{})
	if got := l.NextToken(); got.Category != token.IDENTIFIER {
		t.Fatalf("first token = %v", got)
	}
	first := l.NextToken()
	for i := 0; i < 3; i++ {
		if got := l.NextToken(); got != first || got.Category != token.EOF {
			t.Errorf("call %d after EOF = %v", i, got)
		}
	}
	if rest := l.Tokenize(); len(rest) != 1 || rest[0].Category != token.EOF {
		t.Errorf("Tokenize() after EOF = %v", rest)
	}
}

func TestElseKeywordOption(t *testing.T) {
	tokens := New("if x then y:=1 ELSE y:=2 end", Options{ElseKeyword: true}).Tokenize()

	var found bool
	for _, tk := range tokens {
		if tk.Lexeme == "ELSE" {
			found = true
			if tk.Category != token.ELSE {
				t.Errorf("ELSE category = %v", tk.Category)
			}
		}
	}
	if !found {
		t.Fatal("ELSE token missing")
	}

	if !IsKeyword("Else", Options{ElseKeyword: true}) || IsKeyword("else", Options{}) {
		t.Error("IsKeyword ignores the ElseKeyword option")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(Tokenize("read x; x := x + 1 $ write x"))

	if s.Total != 12 {
		t.Errorf("Total = %d, want 12", s.Total)
	}
	if s.Counts[token.IDENTIFIER] != 4 {
		t.Errorf("IDENTIFIER count = %d, want 4", s.Counts[token.IDENTIFIER])
	}
	if s.Keywords() != 2 {
		t.Errorf("Keywords() = %d, want 2", s.Keywords())
	}
	if len(s.Unknown) != 1 || s.Unknown[0].Lexeme != "$" {
		t.Errorf("Unknown = %v", s.Unknown)
	}
}

func FuzzTokenize(f *testing.F) {
	f.Add("read x;\nif x < 10 then\n   write x\nend")
	f.Add("repeat x := x - 1 until x = 0")
	f.Add("{ unterminated")
	f.Add(":::=:=")
	f.Add("\xff\xfe\x00é")

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Tokenize(input)
		if len(tokens) == 0 {
			t.Fatal("empty token sequence")
		}
		last := tokens[len(tokens)-1]
		if last.Category != token.EOF || last.Lexeme != "EOF" {
			t.Fatalf("last token = %v", last)
		}
		for _, tk := range tokens[:len(tokens)-1] {
			if tk.Category == token.EOF {
				t.Fatalf("EOF before end of sequence: %v", tokens)
			}
			if tk.Lexeme == "" {
				t.Fatalf("empty lexeme in %v", tokens)
			}
			if tk.Pos.Offset < 0 || tk.Pos.Offset+len(tk.Lexeme) > len(input) {
				t.Fatalf("token %v outside input", tk)
			}
		}
	})
}
