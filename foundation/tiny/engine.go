// File: engine.go
// Title: TINY Front End Engine
// Description: High-level interface combining lexer, token file and parser.
//              Used by the command line tools and by library callers that
//              want source text or token files turned into an AST in one
//              call with timing and logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-19 v0.2.0: Lexer and parser pipeline for TINY

package tiny

import (
	"fmt"
	"time"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/tiny/ast"
	"github.com/msto63/tiny/foundation/tiny/lexer"
	"github.com/msto63/tiny/foundation/tiny/parser"
	"github.com/msto63/tiny/foundation/tiny/token"
	"github.com/msto63/tiny/foundation/tiny/tokenfile"
)

// Engine runs the TINY front end. It holds configuration only, so one
// Engine may be used from several goroutines.
type Engine struct {
	logger  *tinylog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger *tinylog.Logger

	// ElseKeyword makes the lexer recognize "else"
	ElseKeyword bool

	// MaxDepth is passed to the parser; zero selects parser.DefaultMaxDepth
	MaxDepth int
}

// Result is the outcome of a front end run
type Result struct {
	Tokens   []token.Token
	Program  *ast.Program // nil when parsing failed
	Duration time.Duration
}

// Accepted reports whether the run produced a program
func (r *Result) Accepted() bool {
	return r != nil && r.Program != nil
}

// New creates a new engine with the given options
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = tinylog.GetDefault()
	}
	if opts.MaxDepth < -1 {
		return nil, tinyerror.Newf("invalid max depth %d", opts.MaxDepth).
			WithCode(tinyerror.CodeInvalidConfig)
	}

	logger := opts.Logger.WithField("component", "tiny-engine")

	logger.Debug("TINY engine initialized", tinylog.Fields{
		"elseKeyword": opts.ElseKeyword,
		"maxDepth":    opts.MaxDepth,
	})

	return &Engine{logger: logger, options: opts}, nil
}

// Tokenize scans source text into tokens terminated by EOF
func (e *Engine) Tokenize(src string) []token.Token {
	timer := e.logger.StartTimer("tokenize").WithField("bytes", len(src))

	toks := lexer.New(src, lexer.Options{
		ElseKeyword: e.options.ElseKeyword,
		Logger:      e.options.Logger,
	}).Tokenize()

	timer.WithField("tokens", len(toks)).Stop()
	return toks
}

// Parse parses a token sequence. Syntax errors are returned as
// *parser.SyntaxError.
func (e *Engine) Parse(tokens []token.Token) (*ast.Program, error) {
	timer := e.logger.StartTimer("parse").WithField("tokens", len(tokens))

	program, err := parser.New(tokens, parser.Options{
		MaxDepth: e.options.MaxDepth,
		Logger:   e.options.Logger,
	}).ParseProgram()

	timer.WithField("accepted", err == nil).Stop()
	return program, err
}

// Compile tokenizes and parses source text. On a syntax error the result
// still carries the tokens.
func (e *Engine) Compile(src string) (*Result, error) {
	start := time.Now()

	result := &Result{Tokens: e.Tokenize(src)}
	program, err := e.Parse(result.Tokens)
	result.Program = program
	result.Duration = time.Since(start)

	return result, err
}

// ScanFile tokenizes a source file and writes the token file
func (e *Engine) ScanFile(sourcePath, tokenPath string) (*Result, error) {
	start := time.Now()

	src, err := readSource(sourcePath)
	if err != nil {
		return nil, err
	}

	result := &Result{Tokens: e.Tokenize(src)}
	if err := tokenfile.WriteFile(tokenPath, result.Tokens); err != nil {
		return nil, tinyerror.Wrap(err, fmt.Sprintf("failed to write token file %s", tokenPath)).
			WithCode(tinyerror.CodeIO).
			WithOperation("scan")
	}
	result.Duration = time.Since(start)

	e.logger.Debug("Token file written", tinylog.Fields{
		"source": sourcePath,
		"output": tokenPath,
		"tokens": len(result.Tokens),
	})
	return result, nil
}

// ParseFile reads a token file and parses it. A malformed token file is
// reported with CodeMalformedTokenLine before any parsing happens.
func (e *Engine) ParseFile(tokenPath string) (*Result, error) {
	start := time.Now()

	toks, err := tokenfile.ReadFile(tokenPath)
	if err != nil {
		return nil, fileError(err, tokenPath, "parse")
	}

	result := &Result{Tokens: toks}
	result.Program, err = e.Parse(toks)
	result.Duration = time.Since(start)
	return result, err
}

// CompileFile reads a source file, tokenizes and parses it
func (e *Engine) CompileFile(sourcePath string) (*Result, error) {
	src, err := readSource(sourcePath)
	if err != nil {
		return nil, err
	}
	return e.Compile(src)
}
