package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
)

var applyCmd = &cobra.Command{
	Use:   "apply FACELETS MOVES...",
	Short: "Apply moves to a cube",
	Long: `Apply a move sequence to a cube and print the resulting facelet string.
Use "solved" as FACELETS to start from the solved cube.

Examples:
  cubesolver apply solved "R U R' U'"
  cubesolver apply WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB F2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var applyNet bool

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyNet, "net", false, "Print the result as a colored net")
}

func runApply(cmd *cobra.Command, args []string) error {
	start := cube.NewFaceletCube()
	if args[0] != "solved" {
		f, err := cube.ParseFacelets(args[0])
		if err != nil {
			return err
		}
		start = f
	}

	moves, err := notation.ParseTokens(args[1:])
	if err != nil {
		return err
	}

	result, err := start.ApplyMoves(moves)
	if err != nil {
		return err
	}

	logger.Debug().Str("moves", notation.FormatSequence(moves)).Msg("applied")

	w := cmd.OutOrStdout()
	if applyNet {
		fmt.Fprintln(w, renderNet(result))
	}
	fmt.Fprintln(w, result.String())
	return nil
}
