package storage

import (
	"database/sql"
	"fmt"
)

// Result is the record of one solved scramble within a run.
type Result struct {
	RunID         string  `json:"run_id" yaml:"run_id"`
	Seq           int     `json:"seq" yaml:"seq"`
	ScrambleText  *string `json:"scramble,omitempty" yaml:"scramble,omitempty"`
	ScrambleMoves int     `json:"scramble_moves" yaml:"scramble_moves"`
	SolutionMoves int     `json:"solution_moves" yaml:"solution_moves"`
	RawMoves      int     `json:"raw_moves" yaml:"raw_moves"`
	PhaseMoves    [4]int  `json:"phase_moves" yaml:"phase_moves"`
	DurationMs    int64   `json:"duration_ms" yaml:"duration_ms"`
	Expanded      int     `json:"expanded" yaml:"expanded"`
	Recorded      int     `json:"recorded" yaml:"recorded"`
}

// Summary aggregates the results of one run.
type Summary struct {
	Count          int        `json:"count" yaml:"count"`
	MinMoves       int        `json:"min_moves" yaml:"min_moves"`
	MaxMoves       int        `json:"max_moves" yaml:"max_moves"`
	MeanMoves      float64    `json:"mean_moves" yaml:"mean_moves"`
	MeanRawMoves   float64    `json:"mean_raw_moves" yaml:"mean_raw_moves"`
	MeanPhaseMoves [4]float64 `json:"mean_phase_moves" yaml:"mean_phase_moves"`
	MeanDurationMs float64    `json:"mean_duration_ms" yaml:"mean_duration_ms"`
	TotalMs        int64      `json:"total_ms" yaml:"total_ms"`
	MeanExpanded   float64    `json:"mean_expanded" yaml:"mean_expanded"`
}

// ResultRepository provides operations for benchmark results.
type ResultRepository struct {
	db *DB
}

// NewResultRepository creates a new result repository.
func NewResultRepository(db *DB) *ResultRepository {
	return &ResultRepository{db: db}
}

const insertResult = `
	INSERT INTO bench_results (
		run_id, seq, scramble_text, scramble_moves, solution_moves, raw_moves,
		phase1_moves, phase2_moves, phase3_moves, phase4_moves,
		duration_ms, expanded, recorded
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func resultArgs(res Result) []any {
	return []any{
		res.RunID, res.Seq, res.ScrambleText, res.ScrambleMoves, res.SolutionMoves, res.RawMoves,
		res.PhaseMoves[0], res.PhaseMoves[1], res.PhaseMoves[2], res.PhaseMoves[3],
		res.DurationMs, res.Expanded, res.Recorded,
	}
}

// Add stores one result.
func (r *ResultRepository) Add(res Result) error {
	if _, err := r.db.Exec(insertResult, resultArgs(res)...); err != nil {
		return fmt.Errorf("failed to add result %d: %w", res.Seq, err)
	}
	return nil
}

// AddBatch stores several results in a single transaction.
func (r *ResultRepository) AddBatch(results []Result) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for _, res := range results {
			if _, err := tx.Exec(insertResult, resultArgs(res)...); err != nil {
				return fmt.Errorf("failed to add result %d: %w", res.Seq, err)
			}
		}
		return nil
	})
}

// ListByRun retrieves all results of a run in order.
func (r *ResultRepository) ListByRun(runID string) ([]Result, error) {
	rows, err := r.db.Query(`
		SELECT run_id, seq, scramble_text, scramble_moves, solution_moves, raw_moves,
		       phase1_moves, phase2_moves, phase3_moves, phase4_moves,
		       duration_ms, expanded, recorded
		FROM bench_results
		WHERE run_id = ?
		ORDER BY seq
	`, runID)

	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var res Result
		err := rows.Scan(
			&res.RunID, &res.Seq, &res.ScrambleText, &res.ScrambleMoves, &res.SolutionMoves, &res.RawMoves,
			&res.PhaseMoves[0], &res.PhaseMoves[1], &res.PhaseMoves[2], &res.PhaseMoves[3],
			&res.DurationMs, &res.Expanded, &res.Recorded,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// Summary aggregates the results of a run. A run without results yields a
// zero Summary.
func (r *ResultRepository) Summary(runID string) (Summary, error) {
	var s Summary
	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(MIN(solution_moves), 0),
		       COALESCE(MAX(solution_moves), 0),
		       COALESCE(AVG(solution_moves), 0),
		       COALESCE(AVG(raw_moves), 0),
		       COALESCE(AVG(phase1_moves), 0),
		       COALESCE(AVG(phase2_moves), 0),
		       COALESCE(AVG(phase3_moves), 0),
		       COALESCE(AVG(phase4_moves), 0),
		       COALESCE(AVG(duration_ms), 0),
		       COALESCE(SUM(duration_ms), 0),
		       COALESCE(AVG(expanded), 0)
		FROM bench_results
		WHERE run_id = ?
	`, runID).Scan(
		&s.Count, &s.MinMoves, &s.MaxMoves, &s.MeanMoves, &s.MeanRawMoves,
		&s.MeanPhaseMoves[0], &s.MeanPhaseMoves[1], &s.MeanPhaseMoves[2], &s.MeanPhaseMoves[3],
		&s.MeanDurationMs, &s.TotalMs, &s.MeanExpanded,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarise run: %w", err)
	}
	return s, nil
}
