package cubesolver

import (
	"context"

	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

// Solver solves cubes. It holds no state between calls and is safe for
// concurrent use.
type Solver struct {
	inner    *solver.Solver
	validate bool
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{
		inner:    solver.New(solver.WithLogger(cfg.logger), solver.WithMetrics(cfg.metrics)),
		validate: cfg.validate,
	}
}

// Solve returns a move sequence that takes c to solved.
func (s *Solver) Solve(ctx context.Context, c Cube) ([]Move, error) {
	r, err := s.Report(ctx, c)
	if err != nil {
		return nil, err
	}
	return r.Moves, nil
}

// Report solves c and returns the moves of every phase along with search
// statistics.
func (s *Solver) Report(ctx context.Context, c Cube) (Report, error) {
	if s.validate {
		if err := c.Validate(); err != nil {
			return Report{}, err
		}
	}
	return s.inner.SolveReport(ctx, c)
}

var defaultSolver = New()

// Solve solves c with default settings.
func Solve(c Cube) ([]Move, error) {
	return defaultSolver.Solve(context.Background(), c)
}

// SolveFacelets parses a facelet string and solves it.
func SolveFacelets(facelets string) ([]Move, error) {
	c, err := ParseFacelets(facelets)
	if err != nil {
		return nil, err
	}
	return Solve(c)
}
