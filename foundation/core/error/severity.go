// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them to
//              log levels when an error is reported through LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for front-end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks rejected user input (syntax errors, malformed token files)
	SeverityLow Severity = iota

	// SeverityMedium marks failures with an obvious workaround (missing file)
	SeverityMedium

	// SeverityHigh marks failures of the toolchain itself (storage, internal)
	SeverityHigh

	// SeverityCritical marks failures that leave no usable output at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeSyntax, CodeMalformedTokenLine, CodeNestingTooDeep, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
