// File: lexer.go
// Title: TINY Lexical Analyzer
// Description: Converts TINY source text into a token sequence terminated by
//              a single EOF token. Scanning is one left-to-right pass with
//              one character of lookahead and never fails: characters that
//              fit no rule become single-character UNKNOWN tokens.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.2.0: TINY token set, brace comments, keyword folding

package lexer

import (
	"strings"
	"unicode/utf8"

	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/tiny/token"
)

// Options configures lexer behavior
type Options struct {
	// ElseKeyword makes "else" a keyword. Off by default, in which case
	// "else" is an ordinary identifier.
	ElseKeyword bool

	Logger *tinylog.Logger
}

// Lexer performs lexical analysis of TINY source text
type Lexer struct {
	input    string
	position int  // offset of the current character
	readPos  int  // offset after the current character
	ch       rune // current character, 0 at end of input
	line     int  // line of the current character (1-based)
	column   int  // column of the current character (1-based)

	keywords map[string]token.Category
	logger   *tinylog.Logger

	done bool
	eof  token.Token
}

var baseKeywords = map[string]token.Category{
	"if":     token.IF,
	"then":   token.THEN,
	"end":    token.END,
	"repeat": token.REPEAT,
	"until":  token.UNTIL,
	"read":   token.READ,
	"write":  token.WRITE,
}

var elseKeywords = func() map[string]token.Category {
	m := make(map[string]token.Category, len(baseKeywords)+1)
	for k, v := range baseKeywords {
		m[k] = v
	}
	m["else"] = token.ELSE
	return m
}()

var singleChars = map[rune]token.Category{
	';': token.SEMICOLON,
	'<': token.LESSTHAN,
	'=': token.EQUAL,
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.MULT,
	'/': token.DIV,
	'(': token.OPENBRACKET,
	')': token.CLOSEDBRACKET,
}

// New creates a lexer for the given source text
func New(input string, opts Options) *Lexer {
	if opts.Logger == nil {
		opts.Logger = tinylog.GetDefault()
	}

	l := &Lexer{
		input:    input,
		line:     1,
		column:   1,
		keywords: baseKeywords,
		logger:   opts.Logger.WithField("component", "tiny-lexer"),
	}
	if opts.ElseKeyword {
		l.keywords = elseKeywords
	}
	l.load()
	return l
}

// Tokenize scans source text with default options
func Tokenize(input string) []token.Token {
	return New(input, Options{}).Tokenize()
}

// NextToken returns the next token. Once EOF has been returned, every
// further call returns the same EOF token.
func (l *Lexer) NextToken() token.Token {
	if l.done {
		return l.eof
	}

	l.skipWhitespaceAndComments()

	pos := token.Pos{Line: l.line, Column: l.column, Offset: l.position}

	if l.atEnd() {
		l.done = true
		l.eof = token.EOFToken(pos)
		return l.eof
	}

	switch {
	case isLetter(l.ch):
		word := l.readWord()
		return token.Token{Lexeme: word, Category: l.lookupWord(word), Pos: pos}
	case isDigit(l.ch):
		return token.Token{Lexeme: l.readNumber(), Category: token.NUMBER, Pos: pos}
	}

	start := l.position
	category := token.UNKNOWN

	if l.ch == ':' {
		if l.peekChar() == '=' {
			l.readChar()
			category = token.ASSIGN
		}
	} else if c, ok := singleChars[l.ch]; ok {
		category = c
	}

	l.readChar()
	return token.Token{Lexeme: l.input[start:l.position], Category: category, Pos: pos}
}

// Tokenize returns all remaining tokens including the trailing EOF
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	unknown := 0

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Category == token.UNKNOWN {
			unknown++
		}
		if tok.Category == token.EOF {
			break
		}
	}

	l.logger.Debug("tokenization finished", tinylog.Fields{
		"tokens":  len(tokens),
		"unknown": unknown,
		"bytes":   len(l.input),
	})

	return tokens
}

// load decodes the character at readPos without moving line or column
func (l *Lexer) load() {
	l.position = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0
		return
	}

	r, width := rune(l.input[l.readPos]), 1
	if r >= utf8.RuneSelf {
		r, width = utf8.DecodeRuneInString(l.input[l.readPos:])
	}
	l.ch = r
	l.readPos += width
}

// readChar advances to the next character
func (l *Lexer) readChar() {
	if l.atEnd() {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.load()
}

// peekChar returns the byte after the current character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// skipWhitespaceAndComments skips whitespace and { ... } comments. An
// unterminated comment runs to end of input.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case isSpace(l.ch):
			l.readChar()
		case l.ch == '{':
			for !l.atEnd() && l.ch != '}' {
				l.readChar()
			}
			l.readChar() // closing brace
		default:
			return
		}
	}
}

// readWord reads a maximal run of letters and digits
func (l *Lexer) readWord() string {
	start := l.position
	for !l.atEnd() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of digits
func (l *Lexer) readNumber() string {
	start := l.position
	for !l.atEnd() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// lookupWord classifies a word as keyword or identifier, ignoring case
func (l *Lexer) lookupWord(word string) token.Category {
	if c, ok := l.keywords[strings.ToLower(word)]; ok {
		return c
	}
	return token.IDENTIFIER
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// IsKeyword reports whether word is a TINY keyword under the given options
func IsKeyword(word string, opts Options) bool {
	keywords := baseKeywords
	if opts.ElseKeyword {
		keywords = elseKeywords
	}
	_, ok := keywords[strings.ToLower(word)]
	return ok
}
