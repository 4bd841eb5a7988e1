// Package log provides structured logging for the tiny toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, field-based logging rendered through log/slog. The
//              terminal handler (text or JSON) and the optional systemd
//              journal handler are combined with a slog-multi fanout, so a
//              single call reaches every configured sink.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Rendering moved onto log/slog, journal output, async mode removed
//
// Usage:
//
//	import tinylog "github.com/msto63/tiny/foundation/core/log"
//
//	logger := tinylog.NewWithConfig(tinylog.Config{
//		Level:  tinylog.LevelDebug,
//		Format: tinylog.FormatText,
//		Name:   "lexer",
//	})
//
//	logger.Debug("token emitted", tinylog.Fields{"category": "NUMBER"})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
