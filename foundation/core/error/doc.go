// Package error provides structured error handling for the tiny toolchain.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type that carries a code, a severity, a
//              failing operation and free-form details. The lexer, parser and
//              token file reader return their own precise error types; the
//              application layer wraps them with this type before logging and
//              reporting, so every failure that leaves a command has a code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the TINY front end
//
// Usage:
//
//	import tinyerror "github.com/msto63/tiny/foundation/core/error"
//
//	err := tinyerror.Wrap(syntaxErr, "parse failed").
//		WithCode(tinyerror.CodeSyntax).
//		WithOperation("cli.parse").
//		WithDetail("file", "tokens.txt")
//
//	if tinyerror.HasCode(err, tinyerror.CodeSyntax) {
//		// report a rejection rather than a crash
//	}
package error
