package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/tiny"
	"github.com/msto63/tiny/internal/history"
	"github.com/msto63/tiny/pkg/core/config"
	"github.com/msto63/tiny/pkg/core/logging"
)

// session bundles what one command invocation needs
type session struct {
	cfg     *config.Config
	logger  *logging.Logger
	log     *tinylog.Logger
	engine  *tiny.Engine
	history *history.Store
	runID   string
	out     io.Writer
	paint   painter
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newSession loads the configuration and builds logger, engine and, when
// enabled, the history store
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(logging.FromConfig(cfg, verbose))
	if err != nil {
		return nil, err
	}

	runID := history.NewID()
	log := logger.WithCorrelationID(runID).WithField("command", cmd.Name())

	engine, err := tiny.New(tiny.Options{
		Logger:      log,
		ElseKeyword: cfg.Lexer.ElseKeyword,
		MaxDepth:    cfg.Parser.MaxDepth,
	})
	if err != nil {
		logger.Close()
		return nil, err
	}

	s := &session{
		cfg:    cfg,
		logger: logger,
		log:    log,
		engine: engine,
		runID:  runID,
		out:    cmd.OutOrStdout(),
		paint:  painter{color: cfg.Output.Color && !noColor},
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			// Runs still work without a history
			log.WarnWithErr("History unavailable", err, tinylog.Fields{"path": cfg.History.Path})
		} else {
			s.history = store
		}
	}

	log.Debug("Session started", tinylog.Fields{"config": cfg.Path})
	return s, nil
}

// record stores the outcome of a run in the history, if enabled
func (s *session) record(command, input string, result *tiny.Result, runErr error, started time.Time) {
	if s.history == nil {
		return
	}

	run := &history.Run{
		ID:       s.runID,
		Command:  command,
		Input:    input,
		Accepted: runErr == nil && result != nil && (command == "scan" || result.Accepted()),
		Duration: time.Since(started),
	}
	if result != nil {
		run.Tokens = len(result.Tokens)
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := s.history.Record(context.Background(), run); err != nil {
		s.log.WarnWithErr("Failed to record run", err)
	}
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// Close releases the history store and the log file
func (s *session) Close() {
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			s.log.WarnWithErr("Failed to close history", err)
		}
	}
	s.logger.Close()
}
