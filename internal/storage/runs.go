package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeFormat is fixed-width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000Z07:00"

// Run represents a benchmark run in the database.
type Run struct {
	RunID          string     `json:"run_id" yaml:"run_id"`
	StartedAt      time.Time  `json:"started_at" yaml:"started_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty" yaml:"ended_at,omitempty"`
	ScrambleLength int        `json:"scramble_length" yaml:"scramble_length"`
	Seed           uint64     `json:"seed" yaml:"seed"`
	SolveCount     int        `json:"solve_count" yaml:"solve_count"`
	AppVersion     *string    `json:"app_version,omitempty" yaml:"app_version,omitempty"`
}

// RunRepository provides CRUD operations for benchmark runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create starts a new run and returns its ID.
func (r *RunRepository) Create(scrambleLength int, seed uint64, appVersion string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var appVersionPtr *string
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO bench_runs (run_id, started_at, scramble_length, seed, app_version)
		VALUES (?, ?, ?, ?, ?)
	`, id, startedAt.Format(timeFormat), scrambleLength, int64(seed), appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// Finish marks a run as complete with the number of solves it recorded.
func (r *RunRepository) Finish(runID string, solveCount int) error {
	endedAt := time.Now().UTC()

	res, err := r.db.Exec(`
		UPDATE bench_runs
		SET ended_at = ?, solve_count = ?
		WHERE run_id = ?
	`, endedAt.Format(timeFormat), solveCount, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to finish run: no run %s", runID)
	}

	return nil
}

const runColumns = `run_id, started_at, ended_at, scramble_length, seed, solve_count, app_version`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var run Run
	var startedAtStr string
	var endedAtStr sql.NullString
	var seed int64

	err := s.Scan(
		&run.RunID, &startedAtStr, &endedAtStr,
		&run.ScrambleLength, &seed, &run.SolveCount, &run.AppVersion,
	)
	if err != nil {
		return Run{}, err
	}

	run.Seed = uint64(seed)
	run.StartedAt, _ = time.Parse(timeFormat, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeFormat, endedAtStr.String)
		run.EndedAt = &t
	}
	return run, nil
}

// Get retrieves a run by ID. It returns nil when no run matches.
func (r *RunRepository) Get(runID string) (*Run, error) {
	run, err := scanRun(r.db.QueryRow(`
		SELECT `+runColumns+`
		FROM bench_runs
		WHERE run_id = ?
	`, runID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return &run, nil
}

// GetLast retrieves the most recent run.
func (r *RunRepository) GetLast() (*Run, error) {
	var runID string
	err := r.db.QueryRow(`
		SELECT run_id FROM bench_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&runID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last run: %w", err)
	}

	return r.Get(runID)
}

// List retrieves recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM bench_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Delete deletes a run and its results (cascading).
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM bench_runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
