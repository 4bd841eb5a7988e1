// File: files.go
// Title: Engine File Helpers
// Description: Reads source files and classifies file errors for the
//              engine's file based entry points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tiny

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	"github.com/msto63/tiny/foundation/tiny/tokenfile"
)

// readSource reads a whole source file
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fileError(err, path, "read source")
	}
	return string(data), nil
}

// fileError attaches an error code to a file access or token file error
func fileError(err error, path, operation string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return tinyerror.Wrap(err, fmt.Sprintf("input file '%s' does not exist", path)).
			WithCode(tinyerror.CodeNotFound).
			WithOperation(operation).
			WithDetail("path", path)
	case errors.Is(err, tokenfile.ErrMalformedTokenLine):
		return tinyerror.Wrap(err, fmt.Sprintf("malformed token file %s", path)).
			WithCode(tinyerror.CodeMalformedTokenLine).
			WithOperation(operation).
			WithDetail("path", path)
	default:
		return tinyerror.Wrap(err, fmt.Sprintf("failed to read %s", path)).
			WithCode(tinyerror.CodeIO).
			WithOperation(operation).
			WithDetail("path", path)
	}
}
