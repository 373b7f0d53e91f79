// Package cubesolver solves the 3x3x3 Rubik's cube.
//
// The solver reduces the cube in four phases. Each phase searches from the
// current cube and from the solved cube at the same time until the two
// frontiers meet, using a smaller move set than the phase before:
//
//  1. orient all edges (all 18 moves)
//  2. orient all corners and gather the middle-slice edges (F and B restricted to half turns)
//  3. bring the cube into the half-turn group (quarter turns on U and D only)
//  4. solve with half turns
//
// Solutions are short enough to follow by hand, typically 30 to 50 moves,
// but are not optimal.
//
// # Quick Start
//
//	c, err := cubesolver.ParseFacelets("OGOYWWWWYRBYRRRORRORBYGGWOBBWYBYYRWWWBBGOOGORGOGBBYGGY")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	moves, err := cubesolver.Solve(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cubesolver.FormatMoves(moves))
//
// # Facelet Strings
//
// A cube is written as 54 color letters, face by face in the order U R F D
// L B, each face row by row as seen from outside. The colors are W (up),
// R (right), G (front), Y (down), O (left) and B (back).
//
// # Cube Simulation
//
// Cubes are values. Applying moves returns a new cube:
//
//	c := cubesolver.NewCube().ApplyMoves([]cubesolver.Move{cubesolver.R, cubesolver.U, cubesolver.RPrime})
//	fmt.Println(cubesolver.Facelets(c))
package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/phase"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

// Cube is a cube state on the cubie level. The zero value is not a valid
// cube; use NewCube.
type Cube = cube.CubieCube

// Phase identifies one of the four solving phases.
type Phase = phase.Phase

// Report describes a solve phase by phase.
type Report = solver.Report

// NewCube returns a solved cube.
func NewCube() Cube {
	return cube.Solved()
}

// ParseFacelets parses a 54-letter facelet string into a cube and checks that
// the cube can be reached from solved.
func ParseFacelets(s string) (Cube, error) {
	f, err := cube.ParseFacelets(s)
	if err != nil {
		return Cube{}, err
	}
	c, err := f.ToCubie()
	if err != nil {
		return Cube{}, err
	}
	if err := c.Validate(); err != nil {
		return Cube{}, err
	}
	return c, nil
}

// Facelets returns the 54-letter facelet string of c.
func Facelets(c Cube) string {
	return cube.FromCubie(c).String()
}

// Net returns c unfolded as a text net.
func Net(c Cube) string {
	return cube.FromCubie(c).Net()
}

// ApplyMoves parses a move sequence such as "R U R' U'" and applies it to c.
func ApplyMoves(c Cube, moves string) (Cube, error) {
	seq, err := ParseMoves(moves)
	if err != nil {
		return c, err
	}
	return c.ApplyMoves(seq), nil
}

// Random returns a scramble of n uniformly drawn moves and the cube it
// produces. A seed of zero draws a fresh seed.
func Random(n int, seed uint64) ([]Move, Cube) {
	if n < 0 {
		n = 0
	}
	return cube.Scramble(n, cube.NewRand(seed))
}

// CompletedPhase returns the last solving phase whose goal c satisfies, or 0.
func CompletedPhase(c Cube) Phase {
	return phase.Completed(c)
}

// Invert returns the sequence that undoes moves.
func Invert(moves []Move) []Move {
	return notation.Invert(moves)
}

// Simplify merges consecutive turns of the same face.
func Simplify(moves []Move) []Move {
	return solver.Simplify(moves)
}

// DescribeMove returns a plain-language description of m for learners.
func DescribeMove(m Move) string {
	return notation.Describe(m)
}
