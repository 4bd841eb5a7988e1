// ============================================================================
// TINY - Lexer and Parser Toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/utils/filex"
	"github.com/msto63/tiny/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format
	Format string // "text" or "json" (default: text)

	// LogFile receives a copy of every entry, appended. Empty disables it.
	LogFile string

	// Journal enables the systemd journal handler
	Journal bool

	// Output replaces stderr as the terminal output
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives the logger configuration from the application config.
// verbose forces debug level.
func FromConfig(cfg *config.Config, verbose bool) LoggerConfig {
	lc := DefaultLoggerConfig("tiny")
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.LogFile = cfg.General.LogFile
	lc.Journal = cfg.General.Journal
	if verbose {
		lc.Level = "debug"
	}
	return lc
}

// Logger is a foundation logger that owns its log file
type Logger struct {
	*tinylog.Logger
	file *os.File
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) (*Logger, error) {
	level, err := tinylog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, tinyerror.Wrap(err, "invalid log level").
			WithCode(tinyerror.CodeInvalidConfig).
			WithDetail("level", cfg.Level)
	}

	format := tinylog.FormatText
	if cfg.Format != "" {
		format, err = tinylog.ParseFormat(cfg.Format)
		if err != nil {
			return nil, tinyerror.Wrap(err, "invalid log format").
				WithCode(tinyerror.CodeInvalidConfig).
				WithDetail("format", cfg.Format)
		}
	}

	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var file *os.File
	if cfg.LogFile != "" {
		path := filex.ExpandPath(cfg.LogFile)
		if err := filex.EnsureParentDir(path, 0o755); err != nil {
			return nil, tinyerror.Wrap(err, "failed to create log directory").
				WithCode(tinyerror.CodeIO).
				WithDetail("path", path)
		}
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, tinyerror.Wrap(err, "failed to open log file").
				WithCode(tinyerror.CodeIO).
				WithDetail("path", path)
		}
		output = io.MultiWriter(output, file)
	}

	logger := tinylog.NewWithConfig(tinylog.Config{
		Level:   level,
		Format:  format,
		Output:  output,
		Name:    cfg.Name,
		Journal: cfg.Journal,
	})

	return &Logger{Logger: logger, file: file}, nil
}

// NewSimpleLogger creates a stderr logger with default settings
func NewSimpleLogger(name string) *tinylog.Logger {
	logger, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		return tinylog.New()
	}
	return logger.Logger
}
