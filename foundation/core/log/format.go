// File: format.go
// Title: Log Format Definitions
// Description: Output formats and the slog handlers that render them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Formatters replaced by slog text and JSON handlers

package log

import (
	"io"
	"log/slog"
	"strings"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs key=value lines
	FormatText Format = iota

	// FormatJSON outputs one JSON object per line
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format. "console" and "logfmt"
// are accepted as aliases of text.
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "console", "logfmt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// newHandler builds the terminal handler for a format
func newHandler(format Format, w io.Writer, leveler slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       leveler,
		ReplaceAttr: replaceLevelName,
	}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// replaceLevelName prints our level names instead of slog's DEBUG-4 style
func replaceLevelName(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(levelFromSlog(lvl).String())
		}
	}
	return a
}

// toJournalKey converts an attribute key into a valid journal field name
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
