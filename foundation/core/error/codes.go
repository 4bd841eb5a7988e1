// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the tiny toolchain so
//              that CLI output, logs and the run history classify failures
//              the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Front-end codes (syntax, token file, nesting)

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Front end
	CodeSyntax             Code = "SYNTAX"
	CodeMalformedTokenLine Code = "MALFORMED_TOKEN_LINE"
	CodeNestingTooDeep     Code = "NESTING_TOO_DEEP"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeIO,
		CodeSyntax, CodeMalformedTokenLine, CodeNestingTooDeep,
		CodeDatabaseError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeMalformedTokenLine, CodeNestingTooDeep:
		return "frontend"
	case CodeIO, CodeNotFound:
		return "io"
	case CodeDatabaseError:
		return "storage"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsRejection reports whether the code describes input the front end
// rejected, as opposed to a failure of the toolchain itself.
func (c Code) IsRejection() bool {
	return c.Category() == "frontend"
}
