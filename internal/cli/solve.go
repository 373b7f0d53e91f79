package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/metrics"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [FACELETS]",
	Short: "Solve a cube",
	Long: `Solve a cube given as a 54-letter facelet string, or as the scramble that
produced it from solved.

Examples:
  cubesolver solve OGOYWWWWYRBYRRRORRORBYGGWOBBWYBYYRWWWBBGOOGORGOGBBYGGY
  cubesolver solve --scramble "R U R' U' F2 D"
  cubesolver solve --scramble "R U F" --format json`,
	Args: cobra.MaximumNArgs(6),
	RunE: runSolve,
}

var (
	solveScramble string
	solveFormat   string
	solveNet      bool
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveScramble, "scramble", "s", "", "Scramble to apply to a solved cube instead of FACELETS")
	solveCmd.Flags().StringVarP(&solveFormat, "format", "f", formatText, "Output format: text, json or yaml")
	solveCmd.Flags().BoolVar(&solveNet, "net", false, "Print the cube as a colored net (text format only)")
}

// solveOutput is the machine-readable result of a solve.
type solveOutput struct {
	Facelets   string        `json:"facelets" yaml:"facelets"`
	Scramble   string        `json:"scramble,omitempty" yaml:"scramble,omitempty"`
	Solution   string        `json:"solution" yaml:"solution"`
	Length     int           `json:"length" yaml:"length"`
	RawLength  int           `json:"raw_length" yaml:"raw_length"`
	Expanded   int           `json:"expanded" yaml:"expanded"`
	DurationMs float64       `json:"duration_ms" yaml:"duration_ms"`
	Phases     []phaseOutput `json:"phases" yaml:"phases"`
}

type phaseOutput struct {
	Phase      int     `json:"phase" yaml:"phase"`
	Name       string  `json:"name" yaml:"name"`
	Moves      string  `json:"moves" yaml:"moves"`
	Length     int     `json:"length" yaml:"length"`
	Expanded   int     `json:"expanded" yaml:"expanded"`
	DurationMs float64 `json:"duration_ms" yaml:"duration_ms"`
}

// loadCube builds the input cube from facelet args or a scramble.
func loadCube(args []string, scramble string) (cube.CubieCube, error) {
	if scramble != "" && len(args) > 0 {
		return cube.CubieCube{}, errors.New("give either FACELETS or --scramble, not both")
	}

	if scramble != "" {
		moves, err := notation.ParseSequence(scramble)
		if err != nil {
			return cube.CubieCube{}, err
		}
		return cube.Solved().ApplyMoves(moves), nil
	}

	if len(args) == 0 {
		return cube.CubieCube{}, errors.New("missing FACELETS or --scramble")
	}

	f, err := cube.ParseFacelets(readFacelets(args))
	if err != nil {
		return cube.CubieCube{}, err
	}
	c, err := f.ToCubie()
	if err != nil {
		return cube.CubieCube{}, err
	}
	if err := c.Validate(); err != nil {
		return cube.CubieCube{}, err
	}
	return c, nil
}

// newSolver creates a solver logging to the command logger. m may be nil.
func newSolver(m *metrics.Metrics) *solver.Solver {
	return solver.New(solver.WithLogger(logger), solver.WithMetrics(m))
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := checkFormat(solveFormat); err != nil {
		return err
	}

	c, err := loadCube(args, solveScramble)
	if err != nil {
		return err
	}

	report, err := newSolver(nil).SolveReport(cmd.Context(), c)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	out := solveOutput{
		Facelets:   cube.FromCubie(c).String(),
		Scramble:   solveScramble,
		Solution:   notation.FormatSequence(report.Moves),
		Length:     len(report.Moves),
		RawLength:  len(report.Raw()),
		Expanded:   report.Expanded(),
		DurationMs: float64(report.Duration.Microseconds()) / 1000,
	}
	for _, p := range report.Phases {
		out.Phases = append(out.Phases, phaseOutput{
			Phase:      int(p.Phase),
			Name:       p.Name,
			Moves:      notation.FormatSequence(p.Moves),
			Length:     len(p.Moves),
			Expanded:   p.Expanded,
			DurationMs: float64(p.Duration.Microseconds()) / 1000,
		})
	}

	return writeFormatted(cmd.OutOrStdout(), solveFormat, out, func(w io.Writer) error {
		if solveNet {
			fmt.Fprintln(w, renderNet(cube.FromCubie(c)))
		}
		fmt.Fprintf(w, "Cube:     %s\n", out.Facelets)
		fmt.Fprintln(w)
		for _, p := range out.Phases {
			moves := p.Moves
			if moves == "" {
				moves = "-"
			}
			fmt.Fprintf(w, "Phase %d  %-30s %2d moves  %s\n", p.Phase, p.Name, p.Length, moves)
		}
		fmt.Fprintln(w)
		if out.Length == 0 {
			fmt.Fprintln(w, "Already solved.")
			return nil
		}
		fmt.Fprintf(w, "Solution (%d moves, %d before merging, %.1fms):\n", out.Length, out.RawLength, out.DurationMs)
		fmt.Fprintln(w, out.Solution)
		return nil
	})
}
