// Package store provides SQLite-based logging of generation runs.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Sayama3/L-System/results"
)

// Store handles SQLite database operations for run logging.
type Store struct {
	db *sql.DB
}

// Run is a persisted generation run record.
type Run struct {
	ID          string    `json:"id"`
	Seed        int64     `json:"seed"`
	Axiom       string    `json:"axiom"`
	Rules       string    `json:"rules"` // JSON object, symbol -> replacement
	Iterations  int       `json:"iterations"`
	Angle       float64   `json:"angle"`
	Length      int       `json:"length"` // derived string length
	Nodes       int       `json:"nodes"`
	Depth       int       `json:"depth"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	Diagnostics int       `json:"diagnostics"`
	CreatedAt   time.Time `json:"created_at"`
}

// New creates a new Store with the given database path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		axiom TEXT NOT NULL,
		rules TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		angle REAL NOT NULL,
		length INTEGER NOT NULL DEFAULT 0,
		nodes INTEGER NOT NULL DEFAULT 0,
		depth INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'success',
		error TEXT,
		diagnostics INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// LogRun persists a results record and returns the new run id.
func (s *Store) LogRun(res *results.Results) (string, error) {
	rules, err := json.Marshal(res.Grammar.Rules)
	if err != nil {
		return "", fmt.Errorf("marshal rules: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO runs (id, seed, axiom, rules, iterations, angle,
		 length, nodes, depth, status, error, diagnostics, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.Metadata.Seed, res.Grammar.Axiom, string(rules),
		res.Grammar.Iterations, res.Grammar.Angle,
		res.Derivation.Length, res.Tree.Nodes, res.Tree.Depth,
		res.Metadata.Status, res.Metadata.Error, len(res.Diagnostics),
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// GetRun retrieves a run by id.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, axiom, rules, iterations, angle, length,
		 nodes, depth, status, COALESCE(error, ''), diagnostics, created_at
		 FROM runs WHERE id = ?`, id)

	var r Run
	err := row.Scan(&r.ID, &r.Seed, &r.Axiom, &r.Rules, &r.Iterations,
		&r.Angle, &r.Length, &r.Nodes, &r.Depth, &r.Status, &r.Error,
		&r.Diagnostics, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &r, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, seed, axiom, rules, iterations, angle, length,
		 nodes, depth, status, COALESCE(error, ''), diagnostics, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Seed, &r.Axiom, &r.Rules,
			&r.Iterations, &r.Angle, &r.Length, &r.Nodes, &r.Depth,
			&r.Status, &r.Error, &r.Diagnostics, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// CountRuns returns the total number of logged runs.
func (s *Store) CountRuns() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}
