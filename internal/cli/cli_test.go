package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesolver/internal/config"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/phase"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

const solvedFacelets = "WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB"

// isolate points HOME at a temp dir so no user config or database is used.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CUBESOLVER_CONFIG", "")
	log.Logger = zerolog.New(io.Discard)
	return home
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestSolveJSON(t *testing.T) {
	isolate(t)
	scramble := "R U F' D2 L B'"

	out := mustRun(t, "solve", "--scramble", scramble, "--format", "json")

	var got solveOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}

	if len(got.Phases) != 4 {
		t.Fatalf("phases = %d, want 4", len(got.Phases))
	}
	if got.Scramble != scramble {
		t.Errorf("scramble = %q, want %q", got.Scramble, scramble)
	}

	scr, err := notation.ParseSequence(scramble)
	if err != nil {
		t.Fatal(err)
	}
	sol, err := notation.ParseSequence(got.Solution)
	if err != nil {
		t.Fatal(err)
	}
	if len(sol) != got.Length {
		t.Errorf("length = %d, solution has %d moves", got.Length, len(sol))
	}
	if !cube.Solved().ApplyMoves(scr).ApplyMoves(sol).IsSolved() {
		t.Errorf("solution %q does not solve %q", got.Solution, scramble)
	}
	if got.Facelets != cube.FromCubie(cube.Solved().ApplyMoves(scr)).String() {
		t.Errorf("facelets = %s", got.Facelets)
	}
}

func TestSolveYAML(t *testing.T) {
	isolate(t)

	out := mustRun(t, "solve", "-s", "F R", "-f", "yaml")

	var got solveOutput
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(got.Phases) != 4 {
		t.Fatalf("phases = %d, want 4", len(got.Phases))
	}
	for i, p := range got.Phases {
		if p.Phase != i+1 {
			t.Errorf("phase %d numbered %d", i+1, p.Phase)
		}
		if p.Name != phase.Phase(i+1).DisplayName() {
			t.Errorf("phase %d name = %q", i+1, p.Name)
		}
	}
}

func TestSolveText(t *testing.T) {
	isolate(t)

	out := mustRun(t, "solve", solvedFacelets)
	if !strings.Contains(out, "Already solved.") {
		t.Errorf("output missing solved message:\n%s", out)
	}

	// Faces may be separated by spaces.
	spaced := strings.Join([]string{
		solvedFacelets[0:9], solvedFacelets[9:18], solvedFacelets[18:27],
		solvedFacelets[27:36], solvedFacelets[36:45], solvedFacelets[45:54],
	}, " ")
	out = mustRun(t, "solve", spaced)
	if !strings.Contains(out, "Already solved.") {
		t.Errorf("spaced facelets not accepted:\n%s", out)
	}

	out = mustRun(t, "solve", "--scramble", "R U")
	if !strings.Contains(out, "Solution (") {
		t.Errorf("output missing solution:\n%s", out)
	}
}

func TestSolveErrors(t *testing.T) {
	isolate(t)

	flipped := []byte(solvedFacelets)
	flipped[7], flipped[19] = flipped[19], flipped[7]

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no input", []string{"solve"}, nil},
		{"both inputs", []string{"solve", solvedFacelets, "--scramble", "R"}, nil},
		{"short facelets", []string{"solve", "WWW"}, cube.ErrInvalidFacelets},
		{"bad color", []string{"solve", strings.Replace(solvedFacelets, "W", "X", 1)}, cube.ErrInvalidFacelets},
		{"flipped edge", []string{"solve", string(flipped)}, cube.ErrInvalidCube},
		{"bad scramble", []string{"solve", "--scramble", "R X"}, notation.ErrInvalidNotation},
		{"bad format", []string{"solve", "-s", "R", "-f", "xml"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRandomDeterministic(t *testing.T) {
	isolate(t)

	a := mustRun(t, "random", "--seed", "42", "--length", "25")
	b := mustRun(t, "random", "--seed", "42", "--length", "25")
	if a != b {
		t.Errorf("same seed gave different scrambles:\n%s\n%s", a, b)
	}

	out := mustRun(t, "random", "--seed", "42", "--length", "25", "--format", "json")
	var got randomOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Length != 25 {
		t.Errorf("length = %d, want 25", got.Length)
	}
	moves, err := notation.ParseSequence(got.Scramble)
	if err != nil {
		t.Fatal(err)
	}
	if want := cube.FromCubie(cube.Solved().ApplyMoves(moves)).String(); got.Facelets != want {
		t.Errorf("facelets = %s, want %s", got.Facelets, want)
	}
	if !strings.HasPrefix(a, got.Scramble+"\n") {
		t.Errorf("text output %q does not start with scramble %q", a, got.Scramble)
	}
}

func TestRandomUsesConfiguredLength(t *testing.T) {
	isolate(t)
	t.Setenv("CUBESOLVER_SCRAMBLE_LENGTH", "12")

	out := mustRun(t, "random", "-f", "json")
	var got randomOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Length != 12 {
		t.Errorf("length = %d, want 12", got.Length)
	}

	if _, err := run(t, "random", "--length=-3"); err == nil {
		t.Error("expected error for negative length")
	}
}

func TestApply(t *testing.T) {
	isolate(t)

	out := mustRun(t, "apply", "solved", "R", "U", "R'", "U'")
	moves, err := notation.ParseSequence("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	want := cube.FromCubie(cube.Solved().ApplyMoves(moves)).String()
	if strings.TrimSpace(out) != want {
		t.Fatalf("apply = %q, want %q", out, want)
	}

	back := mustRun(t, "apply", want, "U", "R", "U'", "R'")
	if strings.TrimSpace(back) != solvedFacelets {
		t.Errorf("inverse apply = %q, want solved", back)
	}

	if _, err := run(t, "apply", "solved", "Q"); !errors.Is(err, notation.ErrInvalidNotation) {
		t.Errorf("err = %v, want ErrInvalidNotation", err)
	}
}

func TestBench(t *testing.T) {
	home := isolate(t)
	db := filepath.Join(home, "bench.db")

	out := mustRun(t, "--db", db, "bench", "--count", "3", "--length", "20", "--seed", "7")
	if !strings.Contains(out, "Solves:        3") {
		t.Errorf("bench output missing summary:\n%s", out)
	}

	out = mustRun(t, "--db", db, "bench", "list", "--format", "json")
	var runs []storage.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	run0 := runs[0]
	if run0.SolveCount != 3 || run0.ScrambleLength != 20 || run0.Seed != 7 {
		t.Errorf("run = %+v", run0)
	}
	if run0.EndedAt == nil {
		t.Error("run not finished")
	}

	out = mustRun(t, "--db", db, "bench", "show", "--format", "json")
	var detail runDetail
	if err := json.Unmarshal([]byte(out), &detail); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if detail.Run.RunID != run0.RunID {
		t.Errorf("show picked %s, want %s", detail.Run.RunID, run0.RunID)
	}
	if detail.Summary.Count != 3 || len(detail.Results) != 3 {
		t.Fatalf("summary count %d, results %d", detail.Summary.Count, len(detail.Results))
	}
	for i, res := range detail.Results {
		if res.Seq != i+1 || res.ScrambleMoves != 20 {
			t.Errorf("result %d = %+v", i, res)
		}
		sum := 0
		for _, n := range res.PhaseMoves {
			sum += n
		}
		if sum != res.RawMoves || res.SolutionMoves > res.RawMoves {
			t.Errorf("result %d: phases sum %d, raw %d, merged %d", i, sum, res.RawMoves, res.SolutionMoves)
		}
		if res.ScrambleText == nil {
			t.Errorf("result %d has no scramble text", i)
		}
	}

	out = mustRun(t, "--db", db, "bench", "show", run0.RunID)
	if !strings.Contains(out, run0.RunID) {
		t.Errorf("show output missing run id:\n%s", out)
	}

	if _, err := run(t, "--db", db, "bench", "show", "no-such-run"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestBenchEmpty(t *testing.T) {
	home := isolate(t)
	db := filepath.Join(home, "empty.db")

	out := mustRun(t, "--db", db, "bench", "list")
	if !strings.Contains(out, "No benchmark runs found") {
		t.Errorf("list output:\n%s", out)
	}
	if _, err := run(t, "--db", db, "bench", "show"); err == nil {
		t.Error("expected error with no runs")
	}
	if _, err := run(t, "--db", db, "bench", "--count", "0"); err == nil {
		t.Error("expected error for zero count")
	}
}

func TestConfigShow(t *testing.T) {
	isolate(t)

	out := mustRun(t, "config", "show")
	var got config.Config
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if got.Scramble.Length != 100 || got.Log.Level != "info" || got.Replay.IntervalMS != 400 {
		t.Errorf("config = %+v", got)
	}

	out = mustRun(t, "config", "show", "--verbose", "--db", "/tmp/x.db")
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Log.Level != "debug" || got.Database.Path != "/tmp/x.db" {
		t.Errorf("overrides not applied: %+v", got)
	}
}

func TestConfigInit(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "conf", "cubesolver.yaml")

	t.Setenv("CUBESOLVER_SCRAMBLE_LENGTH", "33")
	mustRun(t, "--config", path, "config", "init")

	if _, err := run(t, "--config", path, "config", "init"); err == nil {
		t.Error("expected error when file exists")
	}
	mustRun(t, "--config", path, "config", "init", "--force")

	t.Setenv("CUBESOLVER_SCRAMBLE_LENGTH", "")
	c, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Scramble.Length != 33 {
		t.Errorf("saved length = %d, want 33", c.Scramble.Length)
	}
}

func TestInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("CUBESOLVER_LOG_LEVEL", "loud")

	if _, err := run(t, "random"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestReplay(t *testing.T, scramble string, step bool) *replayModel {
	t.Helper()
	moves, err := notation.ParseSequence(scramble)
	if err != nil {
		t.Fatal(err)
	}
	c := cube.Solved().ApplyMoves(moves)
	report, err := solver.New().SolveReport(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	return newReplayModel(solver.NewTracker(c), report, 10*time.Millisecond, 1, step)
}

func TestReplayStepping(t *testing.T) {
	m := newTestReplay(t, "R U F' L2 D", true)
	if m.Init() != nil {
		t.Error("step mode should wait for input")
	}
	if len(m.moves) == 0 {
		t.Fatal("no moves to replay")
	}

	m.Update(key("n"))
	if m.tracker.Step() != 1 {
		t.Fatalf("step = %d after next, want 1", m.tracker.Step())
	}
	m.Update(key("b"))
	if m.tracker.Step() != 0 {
		t.Fatalf("step = %d after back, want 0", m.tracker.Step())
	}

	// Ticks are ignored in step mode.
	m.Update(replayTickMsg(time.Now()))
	if m.tracker.Step() != 0 {
		t.Errorf("tick advanced step mode")
	}

	for range len(m.moves) + 2 {
		m.Update(key("n"))
	}
	if m.tracker.Step() != len(m.moves) {
		t.Errorf("step = %d, want %d", m.tracker.Step(), len(m.moves))
	}
	if !m.tracker.IsSolved() {
		t.Fatal("replay did not solve the cube")
	}
	if len(m.marks) == 0 || m.marks[len(m.marks)-1].phase != phase.Four {
		t.Errorf("marks = %+v, want last mark at phase four", m.marks)
	}
	if last := m.marks[len(m.marks)-1]; last.step > len(m.moves) {
		t.Errorf("phase four reached after %d moves of %d", last.step, len(m.moves))
	}
	if !strings.Contains(m.View(), "SOLVED!") {
		t.Error("view does not show solved")
	}

	m.Update(key("r"))
	if m.tracker.Step() != 0 || len(m.marks) != 0 {
		t.Errorf("reset left step %d, marks %d", m.tracker.Step(), len(m.marks))
	}
}

func TestReplayBoundaries(t *testing.T) {
	m := newTestReplay(t, "F B2 R' D", true)
	if len(m.bounds) != 4 {
		t.Fatalf("bounds = %v, want 4 entries", m.bounds)
	}
	if m.bounds[3] != len(m.moves) {
		t.Errorf("last bound %d, want %d", m.bounds[3], len(m.moves))
	}
	for i := 1; i < len(m.bounds); i++ {
		if m.bounds[i] < m.bounds[i-1] {
			t.Errorf("bounds not monotonic: %v", m.bounds)
		}
	}

	// Each phase is complete once its moves have been played.
	for i, end := range m.bounds {
		for m.tracker.Step() < end {
			m.Update(key("n"))
		}
		if got := m.tracker.CurrentPhase(); got < phase.Phase(i+1) {
			t.Errorf("after %d moves current phase = %v, want >= %v", end, got, phase.Phase(i+1))
		}
	}
}

func TestReplayAutoplay(t *testing.T) {
	m := newTestReplay(t, "R U", false)
	if m.Init() == nil {
		t.Fatal("autoplay should schedule a tick")
	}

	_, cmd := m.Update(replayTickMsg(time.Now()))
	if m.tracker.Step() != 1 {
		t.Fatalf("step = %d after tick, want 1", m.tracker.Step())
	}
	if cmd == nil && !m.done() {
		t.Error("no further tick scheduled")
	}

	m.Update(key("p"))
	if !m.paused {
		t.Fatal("p did not pause")
	}
	m.Update(replayTickMsg(time.Now()))
	if m.tracker.Step() != 1 {
		t.Error("tick advanced while paused")
	}
	m.Update(key("n"))
	if m.tracker.Step() != 2 && !m.done() {
		t.Error("next did not advance while paused")
	}
}

func TestReplaySpeedAndQuit(t *testing.T) {
	m := newTestReplay(t, "R", false)

	for range 10 {
		m.Update(key("+"))
	}
	if m.speed != maxSpeed {
		t.Errorf("speed = %v, want %v", m.speed, maxSpeed)
	}
	for range 10 {
		m.Update(key("-"))
	}
	if m.speed != minSpeed {
		t.Errorf("speed = %v, want %v", m.speed, minSpeed)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if m.View() != "Replay ended.\n" {
		t.Errorf("view after quit = %q", m.View())
	}
}
