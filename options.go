package cubesolver

import (
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubesolver/internal/metrics"
)

// Option configures a Solver.
type Option func(*config)

type config struct {
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	validate bool
}

func defaultConfig() *config {
	return &config{
		logger:   zerolog.Nop(),
		validate: true,
	}
}

// WithLogger sets the logger for per-phase debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records solve metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithValidation enables or disables the reachability check on input cubes.
// When enabled (default), unreachable cubes fail fast with ErrInvalidCube
// instead of exhausting a phase search.
func WithValidation(enabled bool) Option {
	return func(c *config) {
		c.validate = enabled
	}
}
