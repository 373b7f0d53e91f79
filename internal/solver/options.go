package solver

import (
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubesolver/internal/metrics"
)

// Option configures a Solver.
type Option func(*config)

type config struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

func defaultConfig() *config {
	return &config{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for per-phase debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records phase and solve metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
