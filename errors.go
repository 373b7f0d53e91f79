package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

// Sentinel errors for the cubesolver package. Errors returned by this
// package wrap one of these; test with errors.Is.
var (
	// Input errors
	ErrInvalidFacelets = cube.ErrInvalidFacelets
	ErrUnknownCubie    = cube.ErrUnknownCubie
	ErrInvalidCube     = cube.ErrInvalidCube

	// Parsing errors
	ErrInvalidNotation = notation.ErrInvalidNotation

	// Search errors
	ErrNoSolution = solver.ErrNoSolution
)
