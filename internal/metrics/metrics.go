// Package metrics exposes Prometheus metrics for the solver.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Solve outcomes used as the status label.
const (
	StatusSolved = "solved"
	StatusFailed = "failed"
)

// Config configures metrics collection.
type Config struct {
	// Enabled controls whether metrics are collected at all.
	Enabled bool

	// Namespace is the metric name prefix.
	Namespace string
}

// DefaultConfig returns an enabled configuration with the cubesolver
// namespace.
func DefaultConfig() Config {
	return Config{Enabled: true, Namespace: "cubesolver"}
}

// Metrics collects solver metrics. A nil or disabled Metrics ignores every
// call, so callers never need to check.
type Metrics struct {
	solves         *prometheus.CounterVec
	phaseDuration  *prometheus.HistogramVec
	phaseExpanded  *prometheus.HistogramVec
	phaseLength    *prometheus.HistogramVec
	solutionLength prometheus.Histogram

	registry *prometheus.Registry
}

// New creates a metrics collector with its own registry.
func New(cfg Config) *Metrics {
	if !cfg.Enabled {
		return &Metrics{}
	}

	ns := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "solves_total",
				Help:      "Total number of solve attempts",
			},
			[]string{"status"},
		),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "phase_duration_seconds",
				Help:      "Time spent searching one phase",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"phase"},
		),
		phaseExpanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "phase_nodes_expanded",
				Help:      "States expanded by one phase search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"phase"},
		),
		phaseLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "phase_moves",
				Help:      "Moves found by one phase search",
				Buckets:   prometheus.LinearBuckets(0, 2, 10),
			},
			[]string{"phase"},
		),
		solutionLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "solution_length",
				Help:      "Moves in a simplified solution",
				Buckets:   prometheus.LinearBuckets(0, 5, 12),
			},
		),
	}

	registry.MustRegister(
		m.solves,
		m.phaseDuration,
		m.phaseExpanded,
		m.phaseLength,
		m.solutionLength,
	)

	return m
}

// RecordPhase records one phase search.
func (m *Metrics) RecordPhase(phase string, duration time.Duration, expanded, moves int) {
	if m == nil || m.phaseDuration == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
	m.phaseExpanded.WithLabelValues(phase).Observe(float64(expanded))
	m.phaseLength.WithLabelValues(phase).Observe(float64(moves))
}

// RecordSolve records a finished solve and the length of its solution.
func (m *Metrics) RecordSolve(length int) {
	if m == nil || m.solves == nil {
		return
	}
	m.solves.WithLabelValues(StatusSolved).Inc()
	m.solutionLength.Observe(float64(length))
}

// RecordFailure records a solve that returned an error.
func (m *Metrics) RecordFailure() {
	if m == nil || m.solves == nil {
		return
	}
	m.solves.WithLabelValues(StatusFailed).Inc()
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
