// ============================================================================
// TINY - Lexer and Parser Toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolchain and its
//              components
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Build information, set with -ldflags "-X ..." at release time
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Component versions
const (
	Lexer     = "1.0.0"
	Parser    = "1.0.0"
	TokenFile = "1.0.0"
	History   = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "tokenfile":
		return TokenFile
	case "history":
		return History
	default:
		return Version
	}
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line version description
func (b BuildInfo) String() string {
	return fmt.Sprintf("tiny %s (commit %s, built %s, %s, %s)",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.Platform)
}
