// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
	verbose bool

	// Loaded in PersistentPreRunE
	cfg    config.Config
	logger zerolog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Rubik's cube solver",
	Long: `cubesolver - A four-phase Rubik's cube solver.

Solve cubes given as 54-letter facelet strings or as scrambles, step through
solutions phase by phase, and benchmark the solver over random scrambles.

Facelet strings list the stickers face by face in the order U R F D L B,
each face row by row, using the letters W R G Y O B.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: $CUBESOLVER_CONFIG or ~/.config/cubesolver/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Benchmark database path (overrides database.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads configuration and configures logging for every command.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if verbose {
		c.Log.Level = "debug"
	}
	cfg = c

	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger = log.Logger.Level(level).With().Str("cmd", cmd.Name()).Logger()
	return nil
}

// getDBPath returns the database path from flag or config.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.Database.Path
}

// readFacelets joins args into one facelet string so nets can be pasted
// with spaces between faces.
func readFacelets(args []string) string {
	return strings.Join(strings.Fields(strings.Join(args, " ")), "")
}
