package history

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	tinyerror "github.com/msto63/tiny/foundation/core/error"
	"github.com/msto63/tiny/foundation/utils/filex"
)

// Run is one recorded invocation of the toolchain
type Run struct {
	ID        string        `json:"id" yaml:"id"`
	Command   string        `json:"command" yaml:"command"`
	Input     string        `json:"input" yaml:"input"`
	Tokens    int           `json:"tokens" yaml:"tokens"`
	Accepted  bool          `json:"accepted" yaml:"accepted"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// Filter defines criteria for listing runs
type Filter struct {
	Command  string
	Accepted *bool
	Limit    int
}

// Stats summarizes the recorded runs
type Stats struct {
	Total    int64
	Accepted int64
	Rejected int64
	Last     time.Time
}

// Store persists runs in SQLite
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewID returns a fresh run id
func NewID() string {
	return uuid.NewString()
}

// Open opens or creates the history database at path
func Open(path string) (*Store, error) {
	path = filex.ExpandPath(path)

	// Ensure directory exists
	if err := filex.EnsureParentDir(path, 0o755); err != nil {
		return nil, tinyerror.Wrap(err, "failed to create history directory").
			WithCode(tinyerror.CodeDatabaseError).
			WithDetail("path", path)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, tinyerror.Wrap(err, "failed to open history database").
			WithCode(tinyerror.CodeDatabaseError).
			WithDetail("path", path)
	}

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, tinyerror.Wrap(err, "failed to initialize history schema").
			WithCode(tinyerror.CodeDatabaseError).
			WithDetail("path", path)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		command TEXT NOT NULL,
		input TEXT NOT NULL,
		tokens INTEGER NOT NULL,
		accepted INTEGER NOT NULL,
		error TEXT,
		duration_ns INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run. Missing ID and CreatedAt are filled in.
func (s *Store) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = NewID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	var errText sql.NullString
	if run.Error != "" {
		errText = sql.NullString{String: run.Error, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, command, input, tokens, accepted, error, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.CreatedAt, run.Command, run.Input, run.Tokens, run.Accepted, errText, int64(run.Duration))
	if err != nil {
		return tinyerror.Wrap(err, "failed to record run").
			WithCode(tinyerror.CodeDatabaseError).
			WithDetail("id", run.ID)
	}
	return nil
}

// List returns runs matching the filter, newest first
func (s *Store) List(ctx context.Context, filter Filter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, created_at, command, input, tokens, accepted, error, duration_ns FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Command != "" {
		query += " AND command = ?"
		args = append(args, filter.Command)
	}
	if filter.Accepted != nil {
		query += " AND accepted = ?"
		args = append(args, *filter.Accepted)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, tinyerror.Wrap(err, "failed to query runs").
			WithCode(tinyerror.CodeDatabaseError)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var errText sql.NullString
		var durationNS int64

		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.Command, &run.Input,
			&run.Tokens, &run.Accepted, &errText, &durationNS); err != nil {
			return nil, tinyerror.Wrap(err, "failed to scan run").
				WithCode(tinyerror.CodeDatabaseError)
		}

		if errText.Valid {
			run.Error = errText.String
		}
		run.Duration = time.Duration(durationNS)

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, tinyerror.Wrap(err, "failed to read runs").
			WithCode(tinyerror.CodeDatabaseError)
	}

	return runs, nil
}

// Stats returns counts over all recorded runs
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats Stats
	var accepted sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), SUM(accepted) FROM runs`).Scan(&stats.Total, &accepted)
	if err != nil {
		return nil, tinyerror.Wrap(err, "failed to count runs").
			WithCode(tinyerror.CodeDatabaseError)
	}
	stats.Accepted = accepted.Int64
	stats.Rejected = stats.Total - stats.Accepted

	if stats.Total > 0 {
		var last Run
		err := s.db.QueryRowContext(ctx, `SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&last.CreatedAt)
		if err != nil {
			return nil, tinyerror.Wrap(err, "failed to read last run").
				WithCode(tinyerror.CodeDatabaseError)
		}
		stats.Last = last.CreatedAt
	}

	return &stats, nil
}

// Prune deletes runs older than the given age
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, tinyerror.Wrap(err, "failed to prune runs").
			WithCode(tinyerror.CodeDatabaseError)
	}
	return result.RowsAffected()
}

// Close closes the database
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
