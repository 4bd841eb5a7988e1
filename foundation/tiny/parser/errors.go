// File: errors.go
// Title: TINY Syntax Errors
// Description: Defines the single error type produced by the parser. Every
//              grammar violation is reported as a SyntaxError carrying the
//              offending token and, for mismatches, the expected category.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"

	"github.com/msto63/tiny/foundation/tiny/token"
)

// ErrorKind classifies a syntax error
type ErrorKind int

const (
	// UnexpectedStatement: the current token cannot begin a statement
	UnexpectedStatement ErrorKind = iota
	// Mismatch: a specific category was required and another was found
	Mismatch
	// UnexpectedFactor: the current token is not NUMBER, IDENTIFIER or (
	UnexpectedFactor
	// TrailingInput: tokens remain after a complete program
	TrailingInput
	// NestingTooDeep: statement or expression nesting exceeds MaxDepth
	NestingTooDeep
)

var errorKindNames = [...]string{
	UnexpectedStatement: "UnexpectedStatement",
	Mismatch:            "Mismatch",
	UnexpectedFactor:    "UnexpectedFactor",
	TrailingInput:       "TrailingInput",
	NestingTooDeep:      "NestingTooDeep",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError reports the first grammar violation of a parse
type SyntaxError struct {
	Kind ErrorKind

	// Expected is meaningful only when HasExpected is set
	Expected    token.Category
	HasExpected bool

	// Found is the offending token
	Found token.Token

	// Depth is the configured limit for NestingTooDeep
	Depth int
}

func (e *SyntaxError) Error() string {
	var msg string
	switch e.Kind {
	case Mismatch:
		msg = fmt.Sprintf("syntax error: expected %s but found %s", e.Expected, e.Found)
	case UnexpectedStatement:
		msg = fmt.Sprintf("syntax error: unexpected token %s where a statement was expected", e.Found)
	case UnexpectedFactor:
		msg = fmt.Sprintf("syntax error: unexpected token %s where a factor was expected", e.Found)
	case TrailingInput:
		msg = fmt.Sprintf("syntax error: unexpected trailing input %s after program", e.Found)
	case NestingTooDeep:
		msg = fmt.Sprintf("syntax error: nesting deeper than %d levels at %s", e.Depth, e.Found)
	default:
		msg = fmt.Sprintf("syntax error: %s at %s", e.Kind, e.Found)
	}

	if e.Found.Pos.IsValid() {
		msg += fmt.Sprintf(" at line %d, column %d", e.Found.Pos.Line, e.Found.Pos.Column)
	}
	return msg
}

// IsSyntaxError reports whether err is or wraps a *SyntaxError
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// AsSyntaxError returns the *SyntaxError in err's chain, if any
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
