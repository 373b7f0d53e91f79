// Package solver solves a cube in four phases, each a bidirectional search
// over a smaller move set, and merges redundant turns in the result.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/phase"
	"github.com/SeamusWaldron/cubesolver/internal/search"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// ErrNoSolution is returned when a phase search cannot reach its goal. This
// does not happen for cubes reachable from solved by legal moves.
var ErrNoSolution = errors.New("solver: no solution")

// PhaseReport describes one phase of a solve.
type PhaseReport struct {
	Phase    phase.Phase   `json:"phase" yaml:"phase"`
	Name     string        `json:"name" yaml:"name"`
	Moves    []types.Move  `json:"moves" yaml:"moves"`
	Expanded int           `json:"expanded" yaml:"expanded"`
	Forward  int           `json:"forward" yaml:"forward"`
	Backward int           `json:"backward" yaml:"backward"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report is the full outcome of a solve.
type Report struct {
	// Phases holds the raw moves of every phase, in order.
	Phases []PhaseReport `json:"phases" yaml:"phases"`
	// Moves is the concatenation of all phases after Simplify.
	Moves    []types.Move  `json:"moves" yaml:"moves"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Raw returns the phase moves concatenated without simplification.
func (r Report) Raw() []types.Move {
	var raw []types.Move
	for _, p := range r.Phases {
		raw = append(raw, p.Moves...)
	}
	return raw
}

// Expanded returns the total number of states expanded across all phases.
func (r Report) Expanded() int {
	n := 0
	for _, p := range r.Phases {
		n += p.Expanded
	}
	return n
}

// Solver runs the four phase searches. A Solver holds no search state
// between calls and may be shared.
type Solver struct {
	cfg *config
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cfg: cfg}
}

// Solve returns a move sequence that takes c to the solved cube. A solved
// cube yields an empty sequence.
func (s *Solver) Solve(ctx context.Context, c cube.CubieCube) ([]types.Move, error) {
	r, err := s.SolveReport(ctx, c)
	if err != nil {
		return nil, err
	}
	return r.Moves, nil
}

// SolveReport solves c and reports every phase. Phases run in order, each
// starting from the cube left by the previous one, and the first failure
// stops the solve.
func (s *Solver) SolveReport(ctx context.Context, c cube.CubieCube) (Report, error) {
	start := time.Now()
	log := s.cfg.logger

	var r Report
	cur := c
	for _, p := range phase.All {
		pr, err := s.solvePhase(ctx, p, cur)
		if err != nil {
			s.cfg.metrics.RecordFailure()
			log.Debug().Err(err).Str("phase", p.String()).Msg("phase failed")
			return Report{}, err
		}

		log.Debug().
			Str("phase", p.String()).
			Str("moves", notation.FormatSequence(pr.Moves)).
			Int("expanded", pr.Expanded).
			Int("forward", pr.Forward).
			Int("backward", pr.Backward).
			Dur("duration", pr.Duration).
			Msg("phase solved")

		cur = cur.ApplyMoves(pr.Moves)
		r.Phases = append(r.Phases, pr)
	}

	r.Moves = Simplify(r.Raw())
	r.Duration = time.Since(start)
	s.cfg.metrics.RecordSolve(len(r.Moves))

	log.Debug().
		Int("raw", len(r.Raw())).
		Int("moves", len(r.Moves)).
		Dur("duration", r.Duration).
		Msg("solve complete")

	return r, nil
}

func (s *Solver) solvePhase(ctx context.Context, p phase.Phase, c cube.CubieCube) (PhaseReport, error) {
	problem := search.Problem[cube.CubieCube, phase.ID, types.Move]{
		Moves: phase.Moves(p),
		Apply: cube.CubieCube.ApplyMove,
		Key: func(c cube.CubieCube) phase.ID {
			return phase.Encode(p, c)
		},
		Inverse: types.Move.Inverse,
	}

	start := time.Now()
	res, err := search.Bidirectional(ctx, problem, c, cube.Solved())
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, search.ErrExhausted) {
			return PhaseReport{}, fmt.Errorf("%w: phase %s: %w", ErrNoSolution, p, err)
		}
		return PhaseReport{}, fmt.Errorf("phase %s: %w", p, err)
	}

	s.cfg.metrics.RecordPhase(p.String(), elapsed, res.Expanded, len(res.Moves))

	return PhaseReport{
		Phase:    p,
		Name:     p.DisplayName(),
		Moves:    res.Moves,
		Expanded: res.Expanded,
		Forward:  res.Forward,
		Backward: res.Backward,
		Duration: elapsed,
	}, nil
}
