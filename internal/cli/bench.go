package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/metrics"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver on random scrambles",
	Long: `Solve a number of random scrambles and record move counts, search sizes
and timings in the benchmark database.

Examples:
  cubesolver bench --count 50
  cubesolver bench --count 20 --length 30 --seed 7
  cubesolver bench --metrics-addr :9090`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

var benchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List benchmark runs",
	Args:  cobra.NoArgs,
	RunE:  runBenchList,
}

var benchShowCmd = &cobra.Command{
	Use:   "show [RUN_ID]",
	Short: "Show a benchmark run (default: most recent)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBenchShow,
}

var (
	benchCount       int
	benchLength      int
	benchSeed        uint64
	benchMetricsAddr string
	benchListLimit   int
	benchFormat      string
)

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.AddCommand(benchListCmd)
	benchCmd.AddCommand(benchShowCmd)

	benchCmd.Flags().IntVarP(&benchCount, "count", "c", 10, "Number of scrambles to solve")
	benchCmd.Flags().IntVarP(&benchLength, "length", "n", 0, "Scramble length (default: scramble.length from config)")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 0, "Random seed (0 picks one)")
	benchCmd.Flags().StringVar(&benchMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")

	benchListCmd.Flags().IntVarP(&benchListLimit, "limit", "l", 20, "Maximum number of runs to list")
	benchListCmd.Flags().StringVarP(&benchFormat, "format", "f", formatText, "Output format: text, json or yaml")
	benchShowCmd.Flags().StringVarP(&benchFormat, "format", "f", formatText, "Output format: text, json or yaml")
}

// openStore opens the benchmark database.
func openStore() (*storage.DB, error) {
	db, err := storage.Open(getDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// benchMetrics returns the metrics sink for a run and the address to serve
// it on, or an empty address when it should not be served.
func benchMetrics() (*metrics.Metrics, string) {
	addr := benchMetricsAddr
	if addr == "" && cfg.Metrics.Enabled {
		addr = cfg.Metrics.Addr
	}
	mc := metrics.DefaultConfig()
	mc.Enabled = addr != ""
	return metrics.New(mc), addr
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchCount < 1 {
		return fmt.Errorf("invalid count %d", benchCount)
	}
	length, err := scrambleLength(benchLength)
	if err != nil {
		return err
	}

	seed := benchSeed
	if seed == 0 {
		seed = rand.Uint64()
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m, addr := benchMetrics()
	if addr != "" {
		go func() {
			if err := m.Serve(ctx, addr); err != nil {
				logger.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
			}
		}()
		logger.Info().Str("addr", addr).Msg("serving metrics")
	}

	runs := storage.NewRunRepository(db)
	results := storage.NewResultRepository(db)

	runID, err := runs.Create(length, seed, version)
	if err != nil {
		return err
	}
	logger.Info().Str("run", runID).Int("count", benchCount).Int("length", length).Uint64("seed", seed).Msg("bench started")

	s := newSolver(m)
	rng := cube.NewRand(seed)
	w := cmd.OutOrStdout()

	solved := 0
	var runErr error
	for i := 1; i <= benchCount; i++ {
		scramble, c := cube.Scramble(length, rng)

		report, err := s.SolveReport(ctx, c)
		if err != nil {
			runErr = fmt.Errorf("scramble %d: %w", i, err)
			break
		}
		if !c.ApplyMoves(report.Moves).IsSolved() {
			runErr = fmt.Errorf("scramble %d: solution does not solve the cube", i)
			break
		}

		text := notation.FormatSequence(scramble)
		res := storage.Result{
			RunID:         runID,
			Seq:           i,
			ScrambleText:  &text,
			ScrambleMoves: len(scramble),
			SolutionMoves: len(report.Moves),
			RawMoves:      len(report.Raw()),
			DurationMs:    report.Duration.Milliseconds(),
			Expanded:      report.Expanded(),
		}
		for j, p := range report.Phases {
			if j < len(res.PhaseMoves) {
				res.PhaseMoves[j] = len(p.Moves)
			}
			res.Recorded += p.Forward + p.Backward
		}
		if err := results.Add(res); err != nil {
			runErr = err
			break
		}
		solved++

		fmt.Fprintf(w, "%4d/%d  %2d moves  %6dms\n", i, benchCount, res.SolutionMoves, res.DurationMs)
	}

	if err := runs.Finish(runID, solved); err != nil {
		return errors.Join(runErr, err)
	}
	if runErr != nil {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Run %s stopped after %d solves", runID, solved)))
		return runErr
	}

	summary, err := results.Summary(runID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run: %s\n", runID)
	printSummary(w, summary)
	return nil
}

func printSummary(w io.Writer, s storage.Summary) {
	fmt.Fprintf(w, "Solves:        %d\n", s.Count)
	if s.Count == 0 {
		return
	}
	fmt.Fprintf(w, "Moves:         mean %.1f  min %d  max %d\n", s.MeanMoves, s.MinMoves, s.MaxMoves)
	fmt.Fprintf(w, "Before merge:  mean %.1f\n", s.MeanRawMoves)
	fmt.Fprintf(w, "Per phase:     %.1f / %.1f / %.1f / %.1f\n",
		s.MeanPhaseMoves[0], s.MeanPhaseMoves[1], s.MeanPhaseMoves[2], s.MeanPhaseMoves[3])
	fmt.Fprintf(w, "Expanded:      mean %.0f\n", s.MeanExpanded)
	fmt.Fprintf(w, "Time:          mean %.1fms  total %s\n", s.MeanDurationMs, time.Duration(s.TotalMs)*time.Millisecond)
}

func runBenchList(cmd *cobra.Command, args []string) error {
	if err := checkFormat(benchFormat); err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := storage.NewRunRepository(db).List(benchListLimit)
	if err != nil {
		return err
	}
	if runs == nil {
		runs = []storage.Run{}
	}

	return writeFormatted(cmd.OutOrStdout(), benchFormat, runs, func(w io.Writer) error {
		if len(runs) == 0 {
			fmt.Fprintln(w, "No benchmark runs found. Start one with: cubesolver bench")
			return nil
		}
		fmt.Fprintf(w, "%-36s  %-19s  %6s  %6s  %s\n", "RUN", "STARTED", "LENGTH", "SOLVES", "STATUS")
		for _, r := range runs {
			status := "complete"
			if r.EndedAt == nil {
				status = "incomplete"
			}
			fmt.Fprintf(w, "%-36s  %-19s  %6d  %6d  %s\n",
				r.RunID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.ScrambleLength, r.SolveCount, status)
		}
		return nil
	})
}

// runDetail is the machine-readable form of bench show.
type runDetail struct {
	Run     storage.Run      `json:"run" yaml:"run"`
	Summary storage.Summary  `json:"summary" yaml:"summary"`
	Results []storage.Result `json:"results" yaml:"results"`
}

func runBenchShow(cmd *cobra.Command, args []string) error {
	if err := checkFormat(benchFormat); err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	runs := storage.NewRunRepository(db)
	var run *storage.Run
	if len(args) > 0 {
		run, err = runs.Get(args[0])
	} else {
		run, err = runs.GetLast()
	}
	if err != nil {
		return err
	}
	if run == nil {
		if len(args) > 0 {
			return fmt.Errorf("run not found: %s", args[0])
		}
		return errors.New("no benchmark runs found")
	}

	results := storage.NewResultRepository(db)
	summary, err := results.Summary(run.RunID)
	if err != nil {
		return err
	}
	list, err := results.ListByRun(run.RunID)
	if err != nil {
		return err
	}

	detail := runDetail{Run: *run, Summary: summary, Results: list}
	return writeFormatted(cmd.OutOrStdout(), benchFormat, detail, func(w io.Writer) error {
		fmt.Fprintln(w, titleStyle.Render("Benchmark Run"))
		fmt.Fprintf(w, "Run:           %s\n", run.RunID)
		fmt.Fprintf(w, "Started:       %s\n", run.StartedAt.Local().Format(time.RFC3339))
		if run.EndedAt != nil {
			fmt.Fprintf(w, "Took:          %s\n", run.EndedAt.Sub(run.StartedAt).Round(time.Millisecond))
		}
		fmt.Fprintf(w, "Scramble:      %d moves, seed %d\n", run.ScrambleLength, run.Seed)
		if run.AppVersion != nil {
			fmt.Fprintf(w, "Version:       %s\n", *run.AppVersion)
		}
		fmt.Fprintln(w)
		printSummary(w, summary)
		return nil
	})
}
