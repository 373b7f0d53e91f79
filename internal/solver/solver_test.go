package solver

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/metrics"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/phase"
	"github.com/SeamusWaldron/cubesolver/internal/search"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func assertNoSameFacePairs(t *testing.T, moves []types.Move) {
	t.Helper()
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Errorf("adjacent same-face moves %s %s at %d", moves[i-1], moves[i], i)
		}
	}
}

func TestSolveRandomScrambles(t *testing.T) {
	s := New()
	rng := cube.NewRand(42)

	for i := 0; i < 5; i++ {
		scramble, c := cube.Scramble(cube.DefaultScrambleLength, rng)
		moves, err := s.Solve(context.Background(), c)
		if err != nil {
			t.Fatalf("scramble %d: %v", i, err)
		}
		if !c.ApplyMoves(moves).IsSolved() {
			t.Errorf("scramble %d not solved\nscramble: %s\nsolution: %s",
				i, notation.FormatSequence(scramble), notation.FormatSequence(moves))
		}
		assertNoSameFacePairs(t, moves)
		t.Logf("scramble %d solved in %d moves", i, len(moves))
	}
}

func TestSolveFacelets(t *testing.T) {
	tests := []string{
		"OGOYWWWWYRBYRRRORRORBYGGWOBBWYBYYRWWWBBGOOGORGOGBBYGGY",
		"BGYRWOYGOWYOWRRYYBOWGBGRBORYWGGYBRBWWYGBORWYRBOOGBORWG",
		"BRGOWGWWBOOYRRBOGROOYOGYGRGYWWBYYRBBYBBGOYWWORGRYBWWRG",
	}

	s := New()
	for _, facelets := range tests {
		f, err := cube.ParseFacelets(facelets)
		if err != nil {
			t.Fatalf("ParseFacelets(%s): %v", facelets, err)
		}
		c, err := f.ToCubie()
		if err != nil {
			t.Fatalf("ToCubie(%s): %v", facelets, err)
		}

		moves, err := s.Solve(context.Background(), c)
		if err != nil {
			t.Fatalf("Solve(%s): %v", facelets, err)
		}
		if len(moves) == 0 {
			t.Errorf("%s: expected a nonempty solution", facelets)
		}
		assertNoSameFacePairs(t, moves)

		solved, err := f.ApplyMoves(moves)
		if err != nil {
			t.Fatalf("ApplyMoves: %v", err)
		}
		if solved != cube.NewFaceletCube() {
			t.Errorf("%s: solution leaves %s", facelets, solved)
		}
	}
}

func TestSolveSolved(t *testing.T) {
	r, err := New().SolveReport(context.Background(), cube.Solved())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Moves) != 0 {
		t.Errorf("expected empty solution, got %s", notation.FormatSequence(r.Moves))
	}
	if len(r.Phases) != len(phase.All) {
		t.Errorf("expected %d phase reports, got %d", len(phase.All), len(r.Phases))
	}
	if r.Expanded() != 0 {
		t.Errorf("expected no expansions, got %d", r.Expanded())
	}
}

func TestSolveReportPhases(t *testing.T) {
	_, c := cube.Scramble(60, cube.NewRand(3))
	r, err := New().SolveReport(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cur := c
	for i, pr := range r.Phases {
		if pr.Phase != phase.All[i] {
			t.Fatalf("report %d is for %s", i, pr.Phase)
		}

		allowed := make(map[types.Move]bool)
		for _, m := range phase.Moves(pr.Phase) {
			allowed[m] = true
		}
		for _, m := range pr.Moves {
			if !allowed[m] {
				t.Errorf("%s used forbidden move %s", pr.Phase, m)
			}
		}

		cur = cur.ApplyMoves(pr.Moves)
		if !phase.Reached(pr.Phase, cur) {
			t.Errorf("goal of %s not reached after its moves", pr.Phase)
		}
	}

	if !cur.IsSolved() {
		t.Error("raw phase moves do not solve the cube")
	}
	if !c.ApplyMoves(r.Moves).IsSolved() {
		t.Error("simplified moves do not solve the cube")
	}
	if len(r.Moves) > len(r.Raw()) {
		t.Errorf("simplified %d moves longer than raw %d", len(r.Moves), len(r.Raw()))
	}
}

func TestSolveUnreachable(t *testing.T) {
	c := cube.Solved()
	c.EO[cube.UF] = 1

	_, err := New().Solve(context.Background(), c)
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("expected ErrNoSolution, got %v", err)
	}
	if !errors.Is(err, search.ErrExhausted) {
		t.Errorf("expected wrapped ErrExhausted, got %v", err)
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := cube.Solved().ApplyMove(types.Move{Face: types.FaceF, Turn: types.Normal})
	_, err := New().Solve(ctx, c)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrNoSolution) {
		t.Error("cancellation reported as ErrNoSolution")
	}
}

func TestSolveLogsPhases(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, c := cube.Scramble(30, cube.NewRand(9))
	if _, err := New(WithLogger(logger)).Solve(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if n := strings.Count(out, `"message":"phase solved"`); n != 4 {
		t.Errorf("expected 4 phase events, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, `"phase":"half_turn_solve"`) {
		t.Errorf("expected phase field in log output:\n%s", out)
	}
}

func TestSolveRecordsMetrics(t *testing.T) {
	m := metrics.New(metrics.DefaultConfig())
	_, c := cube.Scramble(30, cube.NewRand(11))
	if _, err := New(WithMetrics(m)).Solve(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `cubesolver_solves_total{status="solved"} 1`) {
		t.Errorf("expected one solved solve in exposition:\n%s", body)
	}
	if !strings.Contains(body, `cubesolver_phase_nodes_expanded_count{phase="edge_orientation"} 1`) {
		t.Errorf("expected one phase one observation in exposition:\n%s", body)
	}
}
