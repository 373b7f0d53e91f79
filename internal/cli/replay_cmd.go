package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

var replayCmd = &cobra.Command{
	Use:   "replay [FACELETS]",
	Short: "Step through a solution",
	Long: `Solve a cube and play the solution back move by move, showing the cube
and the phase each part of the solution completes.

Usage:
  cubesolver replay --scramble "R U R' U' F2"   # Play back automatically
  cubesolver replay --step FACELETS             # Step through moves manually
  cubesolver replay --speed 2.0 -s "F B U"      # Replay at 2x speed`,
	Args: cobra.MaximumNArgs(6),
	RunE: runReplay,
}

var (
	replayScramble string
	replaySpeed    float64
	replayStep     bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayScramble, "scramble", "s", "", "Scramble to apply to a solved cube instead of FACELETS")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	c, err := loadCube(args, replayScramble)
	if err != nil {
		return err
	}

	report, err := newSolver(nil).SolveReport(cmd.Context(), c)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	interval := time.Duration(cfg.Replay.IntervalMS) * time.Millisecond
	model := newReplayModel(solver.NewTracker(c), report, interval, replaySpeed, replayStep)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}
