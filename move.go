package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Move represents a single face turn.
type Move = types.Move

// Face represents a cube face in standard notation.
type Face = types.Face

// Turn is the number of clockwise quarter turns a move applies.
type Turn = types.Turn

const (
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceL = types.FaceL // Left
	FaceR = types.FaceR // Right
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back
)

const (
	Normal = types.Normal // Clockwise (90 degrees)
	Prime  = types.Prime  // Counter-clockwise (90 degrees)
	Half   = types.Half   // Half turn (180 degrees)
)

// ParseMove parses a single move in standard notation, e.g. "R'".
func ParseMove(s string) (Move, error) {
	moves, err := notation.ParseSequence(s)
	if err != nil {
		return Move{}, err
	}
	if len(moves) != 1 {
		return Move{}, ErrInvalidNotation
	}
	return moves[0], nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats a slice of moves as a space-separated string.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}
