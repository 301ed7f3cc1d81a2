// Package storage keeps the history of finished runs in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultPath is where the run history lives unless overridden.
const DefaultPath = "~/.flapbird/runs.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID       uuid.UUID
	Score    int
	Flaps    int
	Pipes    int // groups spawned during the run
	Reason   string
	Seed     int64
	Duration time.Duration
	EndedAt  time.Time
}

// NewRun returns a run with a fresh ID ending now.
func NewRun(score, flaps, pipes int, reason string, seed int64, duration time.Duration) Run {
	return Run{
		ID:       uuid.New(),
		Score:    score,
		Flaps:    flaps,
		Pipes:    pipes,
		Reason:   reason,
		Seed:     seed,
		Duration: duration,
		EndedAt:  time.Now(),
	}
}

// Stats aggregates the whole history.
type Stats struct {
	Runs      int
	Best      int
	Average   float64
	TotalTime time.Duration
}

// Open creates or opens the database at path, creating parent directories and
// the schema as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			flaps INTEGER NOT NULL DEFAULT 0,
			pipes INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_ended ON runs(ended_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a finished run.
func (s *Store) Record(ctx context.Context, r Run) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, score, flaps, pipes, reason, seed, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Score, r.Flaps, r.Pipes, r.Reason, r.Seed,
		r.Duration.Milliseconds(), r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(ctx,
		`SELECT id, score, flaps, pipes, reason, seed, duration_ms, ended_at
		 FROM runs ORDER BY ended_at DESC, rowid DESC LIMIT ?`, limit)
}

// Top returns the best runs, highest score first.
func (s *Store) Top(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(ctx,
		`SELECT id, score, flaps, pipes, reason, seed, duration_ms, ended_at
		 FROM runs ORDER BY score DESC, ended_at ASC LIMIT ?`, limit)
}

// Get returns the run with the given ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Run, error) {
	runs, err := s.query(ctx,
		`SELECT id, score, flaps, pipes, reason, seed, duration_ms, ended_at
		 FROM runs WHERE id = ?`, id.String())
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, fmt.Errorf("storage: run %s: %w", id, sql.ErrNoRows)
	}
	return runs[0], nil
}

// Best returns the highest recorded score, 0 when there are no runs.
func (s *Store) Best(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM runs").Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats aggregates every recorded run.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var totalMs int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(duration_ms), 0)
		 FROM runs`,
	).Scan(&st.Runs, &st.Best, &st.Average, &totalMs)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.TotalTime = time.Duration(totalMs) * time.Millisecond
	return st, nil
}

// Clear deletes the whole history.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			id         string
			durationMs int64
			endedMs    int64
		)
		if err := rows.Scan(&id, &r.Score, &r.Flaps, &r.Pipes, &r.Reason, &r.Seed, &durationMs, &endedMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedMs)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// IsNotFound reports whether err means a run does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
