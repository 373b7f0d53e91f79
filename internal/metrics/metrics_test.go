package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func gathered(t *testing.T, m *Metrics) map[string]float64 {
	t.Helper()
	families, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			switch {
			case metric.GetCounter() != nil:
				out[key] = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				out[key] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return out
}

func TestRecordSolve(t *testing.T) {
	m := New(DefaultConfig())
	m.RecordSolve(31)
	m.RecordSolve(44)
	m.RecordFailure()

	got := gathered(t, m)
	if got["cubesolver_solves_total{status=solved}"] != 2 {
		t.Errorf("solved count = %v, want 2", got["cubesolver_solves_total{status=solved}"])
	}
	if got["cubesolver_solves_total{status=failed}"] != 1 {
		t.Errorf("failed count = %v, want 1", got["cubesolver_solves_total{status=failed}"])
	}
	if got["cubesolver_solution_length"] != 2 {
		t.Errorf("solution length samples = %v, want 2", got["cubesolver_solution_length"])
	}
}

func TestRecordPhase(t *testing.T) {
	m := New(DefaultConfig())
	m.RecordPhase("edge_orientation", 3*time.Millisecond, 120, 6)
	m.RecordPhase("edge_orientation", time.Millisecond, 40, 5)
	m.RecordPhase("half_turn_solve", time.Millisecond, 900, 12)

	got := gathered(t, m)
	tests := []struct {
		key  string
		want float64
	}{
		{"cubesolver_phase_duration_seconds{phase=edge_orientation}", 2},
		{"cubesolver_phase_nodes_expanded{phase=edge_orientation}", 2},
		{"cubesolver_phase_moves{phase=half_turn_solve}", 1},
	}
	for _, tt := range tests {
		if got[tt.key] != tt.want {
			t.Errorf("%s = %v, want %v", tt.key, got[tt.key], tt.want)
		}
	}
}

func TestDisabledIsNoOp(t *testing.T) {
	m := New(Config{Enabled: false})
	m.RecordSolve(10)
	m.RecordFailure()
	m.RecordPhase("x", time.Second, 1, 1)

	var nilMetrics *Metrics
	nilMetrics.RecordSolve(10)
	nilMetrics.RecordPhase("x", time.Second, 1, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("disabled handler status = %d, want 404", rec.Code)
	}
}

func TestHandler(t *testing.T) {
	m := New(DefaultConfig())
	m.RecordSolve(20)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cubesolver_solves_total") {
		t.Error("expected solves_total in exposition")
	}
}
