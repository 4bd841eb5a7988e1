// File: tokenfile.go
// Title: TINY Token File Format
// Description: Reads and writes the line-oriented token file exchanged
//              between the scanner and the parser. Each line holds one
//              token as "lexeme , CATEGORY".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tokenfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/msto63/tiny/foundation/tiny/token"
	"github.com/msto63/tiny/foundation/utils/filex"
)

// Separator between lexeme and category on a line
const Separator = " , "

// asciiSpace is trimmed from lines and fields. Non-ASCII whitespace is kept
// because the lexer emits it as UNKNOWN lexemes.
const asciiSpace = " \t\n\v\f\r"

// maxLineLength bounds a single token line
const maxLineLength = 16 * 1024 * 1024

// ErrMalformedTokenLine is matched by every *MalformedLineError
var ErrMalformedTokenLine = errors.New("malformed token line")

// MalformedLineError reports a token line that cannot be decoded
type MalformedLineError struct {
	Line   int    // 1-based line number
	Text   string // the trimmed line
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("invalid token line %d: %q: %s", e.Line, e.Text, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedTokenLine) succeed
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedTokenLine
}

// Format renders one token as a token file line without newline
func Format(t token.Token) string {
	return t.Lexeme + Separator + t.Category.String()
}

// Write writes one line per token, EOF included
func Write(w io.Writer, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	for _, t := range tokens {
		if _, err := bw.WriteString(Format(t)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a token file atomically: on failure the previous content
// of path, if any, is left untouched.
func WriteFile(path string, tokens []token.Token) error {
	var buf bytes.Buffer
	if err := Write(&buf, tokens); err != nil {
		return err
	}
	return filex.WriteAtomic(path, buf.Bytes(), 0o644)
}

// Read decodes a token file. Empty lines and lines starting with '#' are
// skipped. An EOF token is appended when the last token is not EOF.
func Read(r io.Reader) ([]token.Token, error) {
	var tokens []token.Token

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.Trim(sc.Text(), asciiSpace)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		t, err := ParseLine(line)
		if err != nil {
			var mle *MalformedLineError
			if errors.As(err, &mle) {
				mle.Line = lineNo
			}
			return nil, err
		}
		tokens = append(tokens, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	if len(tokens) == 0 || tokens[len(tokens)-1].Category != token.EOF {
		tokens = append(tokens, token.EOFToken(token.Pos{}))
	}
	return tokens, nil
}

// ReadFile reads and decodes the token file at path
func ReadFile(path string) ([]token.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// ParseLine decodes a single, already trimmed, token line
func ParseLine(line string) (token.Token, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return token.Token{}, &MalformedLineError{
			Text:   line,
			Reason: fmt.Sprintf("expected 2 comma-separated fields, got %d", len(fields)),
		}
	}

	lexeme := strings.Trim(fields[0], asciiSpace)
	name := strings.Trim(fields[1], asciiSpace)

	category, ok := token.ParseCategory(name)
	if !ok {
		return token.Token{}, &MalformedLineError{
			Text:   line,
			Reason: fmt.Sprintf("unknown category %q", name),
		}
	}

	return token.New(lexeme, category), nil
}
