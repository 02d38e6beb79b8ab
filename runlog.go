package vubresto

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrRunNotFound is returned when no run matches a query.
var ErrRunNotFound = errors.New("run not found")

// RunStore keeps a history of scraper runs in SQLite. It is an optional
// side channel: the pipeline stays correct without it, and store failures
// never propagate into the run itself.
type RunStore struct {
	db *sql.DB
}

// Run is the summary of one scraper run.
type Run struct {
	ID         uuid.UUID
	SourceURL  string
	StartedAt  time.Time
	FinishedAt time.Time
	FatalError *string
}

// RestaurantStats summarizes one restaurant within a run.
type RestaurantStats struct {
	Key        string
	Days       int
	Items      int
	NilItems   int
	WriteError *string
}

// NewRunStore opens (and if needed initializes) a run-history store at the
// given SQLite DSN.
func NewRunStore(dsn string) (*RunStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &RunStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the history tables if they don't exist.
func (s *RunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		source_url TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		fatal_error TEXT
	);
	CREATE TABLE IF NOT EXISTS run_restaurants (
		run_id TEXT NOT NULL REFERENCES runs(run_id),
		restaurant TEXT NOT NULL,
		days INTEGER NOT NULL,
		items INTEGER NOT NULL,
		nil_items INTEGER NOT NULL,
		write_error TEXT,
		PRIMARY KEY (run_id, restaurant)
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// RecordRun inserts one run and its per-restaurant stats in a single
// transaction. A zero run ID gets a fresh UUID.
func (s *RunStore) RecordRun(run Run, stats []RestaurantStats) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, source_url, started_at, finished_at, fatal_error)
		VALUES (?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.SourceURL,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.FatalError,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, st := range stats {
		_, err = tx.Exec(`
			INSERT INTO run_restaurants (run_id, restaurant, days, items, nil_items, write_error)
			VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID.String(), st.Key, st.Days, st.Items, st.NilItems, st.WriteError,
		)
		if err != nil {
			return fmt.Errorf("failed to insert restaurant stats: %w", err)
		}
	}

	return tx.Commit()
}

// LastRun returns the most recently started run.
func (s *RunStore) LastRun() (*Run, error) {
	row := s.db.QueryRow(`
		SELECT run_id, source_url, started_at, finished_at, fatal_error
		FROM runs ORDER BY started_at DESC LIMIT 1`)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last run: %w", err)
	}
	return run, nil
}

// ListRuns returns up to limit runs, most recent first.
func (s *RunStore) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT run_id, source_url, started_at, finished_at, fatal_error
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Restaurants returns the per-restaurant stats recorded for a run.
func (s *RunStore) Restaurants(runID uuid.UUID) ([]RestaurantStats, error) {
	rows, err := s.db.Query(`
		SELECT restaurant, days, items, nil_items, write_error
		FROM run_restaurants WHERE run_id = ? ORDER BY restaurant`,
		runID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurant stats: %w", err)
	}
	defer rows.Close()

	var stats []RestaurantStats
	for rows.Next() {
		var st RestaurantStats
		var writeError sql.NullString
		if err := rows.Scan(&st.Key, &st.Days, &st.Items, &st.NilItems, &writeError); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant stats: %w", err)
		}
		if writeError.Valid {
			st.WriteError = &writeError.String
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var idStr, startedStr, finishedStr string
	var run Run
	var fatalError sql.NullString

	err := row.Scan(&idStr, &run.SourceURL, &startedStr, &finishedStr, &fatalError)
	if err != nil {
		return nil, err
	}

	run.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", idStr, err)
	}
	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedStr)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at %q: %w", startedStr, err)
	}
	run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedStr)
	if err != nil {
		return nil, fmt.Errorf("invalid finished_at %q: %w", finishedStr, err)
	}
	if fatalError.Valid {
		run.FatalError = &fatalError.String
	}

	return &run, nil
}
