// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type. Entries are emitted through a
//              slog logger whose handler fans out to the terminal handler
//              and, when enabled, the systemd journal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: slog backend with slog-multi fanout and journal handler

package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
)

// Fields holds structured key/value data attached to a log entry
type Fields map[string]interface{}

// Logger represents a structured logger with contextual information
type Logger struct {
	base    *slog.Logger // fanout without the name attribute
	slogger *slog.Logger
	level   *slog.LevelVar
	name    string

	// Context fields that are added to all log entries
	contextFields Fields

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // defaults to os.Stderr
	Name   string

	// Journal additionally sends entries to the systemd journal. If the
	// journal socket is unavailable a warning is written to Output and
	// logging continues without it.
	Journal bool
}

// New creates a logger writing text at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatText,
	})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(config.Level.slogLevel())

	terminal := newHandler(config.Format, output, levelVar)
	handlers := []slog.Handler{terminal}

	if config.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: levelVar,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	base := slog.New(slogmulti.Fanout(handlers...))
	slogger := base
	if config.Name != "" {
		slogger = base.With("logger", config.Name)
	}

	return &Logger{
		base:          base,
		slogger:       slogger,
		level:         levelVar,
		name:          config.Name,
		contextFields: make(Fields),
	}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}

// WithName returns a logger tagged with a different name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	clone.slogger = clone.base.With("logger", name)
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCorrelationID tags all entries with a correlation ID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.WithField("correlation_id", correlationID)
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs an error with its code and details. The level follows the
// severity of a *tinyerror.Error; rejected input is logged at info.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var coded *tinyerror.Error
	if !errors.As(err, &coded) {
		l.log(LevelError, err.Error(), nil)
		return
	}

	fields := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range coded.Details() {
		fields["error_"+k] = v
	}

	switch coded.Severity() {
	case tinyerror.SeverityLow:
		l.log(LevelInfo, err.Error(), nil, fields)
	case tinyerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), nil, fields)
	default:
		l.log(LevelError, err.Error(), nil, fields)
	}
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return levelFromSlog(l.level.Level())
}

// SetLevel changes the level. Loggers derived with With* share the level.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level.slogLevel())
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Slog exposes the underlying slog logger for libraries that take one
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	l.mutex.RLock()
	merged := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		merged[k] = v
	}
	l.mutex.RUnlock()

	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			merged[k] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys)+1)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, merged[k]))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.slogger.LogAttrs(context.Background(), level.slogLevel(), message, attrs...)
}

// clone creates a copy of the logger sharing handler and level
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		base:          l.base,
		slogger:       l.slogger,
		level:         l.level,
		name:          l.name,
		contextFields: make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

// Default logger instance
var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defaultLogger = logger
	defaultLoggerMu.Unlock()
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
