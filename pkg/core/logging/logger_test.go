package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("tiny-test")

	if cfg.Name != "tiny-test" {
		t.Errorf("Name = %v, want tiny-test", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestFromConfig(t *testing.T) {
	appCfg := config.Default()
	appCfg.General.LogLevel = "info"
	appCfg.General.LogFormat = "json"
	appCfg.General.LogFile = "/tmp/tiny.log"
	appCfg.General.Journal = true

	cfg := FromConfig(appCfg, false)
	if cfg.Level != "info" || cfg.Format != "json" || cfg.LogFile != "/tmp/tiny.log" || !cfg.Journal {
		t.Errorf("FromConfig() = %+v", cfg)
	}

	if verbose := FromConfig(appCfg, true); verbose.Level != "debug" {
		t.Errorf("FromConfig(verbose) level = %v, want debug", verbose.Level)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{
		Name:   "tiny-test",
		Level:  "info",
		Format: "json",
		Output: &buf,
	})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	if logger.GetLevel() != tinylog.LevelInfo {
		t.Errorf("GetLevel() = %v, want info", logger.GetLevel())
	}

	logger.Debug("hidden")
	logger.Info("visible", tinylog.Fields{"tokens": 12})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(out, `"msg":"visible"`) || !strings.Contains(out, `"tokens":12`) {
		t.Errorf("unexpected output: %s", out)
	}
	if !strings.Contains(out, `"logger":"tiny-test"`) {
		t.Errorf("logger name missing: %s", out)
	}
}

func TestNewLogger_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tiny.log")

	var terminal bytes.Buffer
	logger, err := NewLogger(LoggerConfig{
		Level:   "warn",
		Format:  "text",
		LogFile: path,
		Output:  &terminal,
	})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Warn("token file malformed")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "token file malformed") {
		t.Errorf("log file content = %q", data)
	}
	if !strings.Contains(terminal.String(), "token file malformed") {
		t.Errorf("terminal content = %q", terminal.String())
	}
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
	}{
		{"level", LoggerConfig{Level: "loud"}},
		{"format", LoggerConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLogger(tt.cfg)
			if !tinyerror.HasCode(err, tinyerror.CodeInvalidConfig) {
				t.Errorf("NewLogger() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("tiny")
	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
	if logger.Name() != "tiny" {
		t.Errorf("Name() = %v, want tiny", logger.Name())
	}
}
