// ============================================================================
// TINY - Lexer and Parser Toolchain
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML and validated
//              against an embedded CUE schema
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	"github.com/msto63/tiny/foundation/utils/filex"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "TINY_CONFIG"

//go:embed schema.cue
var schemaSource string

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Lexer   LexerConfig   `toml:"lexer" yaml:"lexer"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	History HistoryConfig `toml:"history" yaml:"history"`

	// Path is the file the configuration was loaded from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
	Journal   bool   `toml:"journal" yaml:"journal"`
}

// LexerConfig holds lexer settings
type LexerConfig struct {
	ElseKeyword bool `toml:"else_keyword" yaml:"else_keyword"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// OutputConfig holds CLI output settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// HistoryConfig holds run history settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
}

// Format is a configuration file format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Parser: ParserConfig{
			MaxDepth: 256,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		History: HistoryConfig{
			Path: "~/.local/share/tiny/history.db",
		},
	}
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables and ~ in path
	path = filex.ExpandPath(path)

	if !filex.IsFile(path) {
		return nil, tinyerror.Newf("config file not found: %s", path).
			WithCode(tinyerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, tinyerror.Wrap(err, "failed to read config file").
			WithCode(tinyerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, tinyerror.Wrap(err, fmt.Sprintf("invalid config file %s", path)).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes configuration content, validates it against the schema and
// applies defaults.
func Parse(content []byte, format Format) (*Config, error) {
	var raw map[string]interface{}
	if err := unmarshal(content, format, &raw); err != nil {
		return nil, tinyerror.Wrap(err, "failed to parse config").
			WithCode(tinyerror.CodeConfigError)
	}

	if err := Validate(raw); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := unmarshal(content, format, cfg); err != nil {
		return nil, tinyerror.Wrap(err, "failed to decode config").
			WithCode(tinyerror.CodeConfigError)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg, nil
}

// Validate checks decoded configuration data against the CUE schema
func Validate(raw map[string]interface{}) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({"+schemaSource+"})", cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return tinyerror.Wrap(err, "invalid config schema").
			WithCode(tinyerror.CodeInternal)
	}

	if raw == nil {
		raw = map[string]interface{}{}
	}
	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return tinyerror.Wrap(err, "failed to encode config").
			WithCode(tinyerror.CodeInvalidConfig)
	}

	if err := schema.Unify(value).Validate(); err != nil {
		return tinyerror.Wrap(err, "config does not match schema").
			WithCode(tinyerror.CodeInvalidConfig)
	}
	return nil
}

// LoadFromEnv loads configuration from the TINY_CONFIG environment variable
// or the first default location that exists. Without any config file the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if filex.IsFile(p) {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./tiny.toml",
		"./configs/tiny.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tiny", "tiny.toml"))
	}
	return paths
}

// DetectFormat determines the configuration format from the file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML // Default to TOML
	}
}

func unmarshal(content []byte, format Format, target interface{}) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(content, target)
	default:
		return toml.Unmarshal(content, target)
	}
}

// applyDefaults sets default values for settings left empty
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 256
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.History.Path == "" {
		c.History.Path = "~/.local/share/tiny/history.db"
	}
}

// expandEnvVars expands environment variables and ~ in path settings
func (c *Config) expandEnvVars() {
	c.General.LogFile = filex.ExpandPath(c.General.LogFile)
	c.History.Path = filex.ExpandPath(c.History.Path)
}
