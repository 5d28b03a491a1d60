// Package storage provides SQLite-based persistence for run statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only summaries are stored; mazes themselves are never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished generate-and-solve cycle.
type Run struct {
	ID            string
	Session       string // "local" or the ssh user
	Generator     string
	Solver        string
	Width         int
	Height        int
	Seed          int64
	GenerateSteps int
	SolveSteps    int
	PathLength    int
	Solved        bool
	CreatedAt     time.Time
}

// AlgorithmStats aggregates runs of one generator/solver pair.
type AlgorithmStats struct {
	Generator     string
	Solver        string
	Runs          int
	Solved        int
	AvgGenerate   float64
	AvgSolve      float64
	AvgPathLength float64
	LastRun       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite has a single writer; one connection avoids "database is locked"
	// between ssh sessions.
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL DEFAULT 'local',
			generator TEXT NOT NULL,
			solver TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			generate_steps INTEGER NOT NULL DEFAULT 0,
			solve_steps INTEGER NOT NULL DEFAULT 0,
			path_length INTEGER NOT NULL DEFAULT 0,
			solved INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_algorithms ON runs(generator, solver);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a finished run and returns its ID. A run without an ID
// gets a fresh UUID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Session == "" {
		r.Session = "local"
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, session, generator, solver, width, height, seed, generate_steps, solve_steps, path_length, solved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Session, r.Generator, r.Solver, r.Width, r.Height, r.Seed,
		r.GenerateSteps, r.SolveSteps, r.PathLength, r.Solved,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, session, generator, solver, width, height, seed,
		        generate_steps, solve_steps, path_length, solved, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Session,
		&r.Generator,
		&r.Solver,
		&r.Width,
		&r.Height,
		&r.Seed,
		&r.GenerateSteps,
		&r.SolveSteps,
		&r.PathLength,
		&r.Solved,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// AlgorithmStats aggregates all runs per generator/solver pair, sorted by
// generator then solver.
func (s *Store) AlgorithmStats() ([]AlgorithmStats, error) {
	rows, err := s.db.Query(
		`SELECT generator, solver, COUNT(*), COALESCE(SUM(solved), 0),
		        AVG(generate_steps), AVG(solve_steps), AVG(path_length), MAX(created_at)
		 FROM runs
		 GROUP BY generator, solver
		 ORDER BY generator, solver`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get algorithm stats: %w", err)
	}
	defer rows.Close()

	var stats []AlgorithmStats
	for rows.Next() {
		var st AlgorithmStats
		var lastRun any
		if err := rows.Scan(&st.Generator, &st.Solver, &st.Runs, &st.Solved,
			&st.AvgGenerate, &st.AvgSolve, &st.AvgPathLength, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the SQLite text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
