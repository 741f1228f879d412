package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one persisted run summary.
type Record struct {
	RunID       string
	Source      string
	Destination string
	Preview     bool
	Strategy    string
	StartedAt   time.Time
	Duration    time.Duration
	Moved       int
	Skipped     int
	Errored     int
	Categories  map[string]int
}

// Store persists run summaries in SQLite. It is best-effort infrastructure:
// callers treat failures as warnings, never as run failures.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun inserts one run summary row.
func (s *Store) RecordRun(ctx context.Context, rec Record) error {
	categories, err := json.Marshal(rec.Categories)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (
			run_id, source, destination, preview, strategy,
			started_at, duration_ms, moved, skipped, errored, categories
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Source,
		rec.Destination,
		boolToInt(rec.Preview),
		rec.Strategy,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.Duration.Milliseconds(),
		rec.Moved,
		rec.Skipped,
		rec.Errored,
		string(categories),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, source, destination, preview, strategy,
		       started_at, duration_ms, moved, skipped, errored, categories
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec        Record
			preview    int
			startedAt  string
			durationMS int64
			categories string
		)
		if err := rows.Scan(
			&rec.RunID, &rec.Source, &rec.Destination, &preview, &rec.Strategy,
			&startedAt, &durationMS, &rec.Moved, &rec.Skipped, &rec.Errored, &categories,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Preview = preview != 0
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if parsed, parseErr := time.Parse(time.RFC3339, startedAt); parseErr == nil {
			rec.StartedAt = parsed
		}
		if categories != "" {
			if err := json.Unmarshal([]byte(categories), &rec.Categories); err != nil {
				return nil, fmt.Errorf("decode categories: %w", err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
