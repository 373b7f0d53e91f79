// Package notation provides move notation conversion utilities.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// ErrInvalidNotation is returned when a move token cannot be parsed.
var ErrInvalidNotation = errors.New("notation: invalid move notation")

// ParseNotation parses a standard cube notation token into a Move.
// Examples: R, R', R2, U, U', U2
func ParseNotation(s string) (types.Move, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return types.Move{}, false
	}

	face, ok := types.FaceFromLetter(s[0])
	if !ok {
		return types.Move{}, false
	}

	turn := types.Normal
	if len(s) > 1 {
		switch s[1] {
		case '\'', '`':
			turn = types.Prime
		case '2':
			turn = types.Half
		default:
			return types.Move{}, false
		}
	}

	return types.Move{Face: face, Turn: turn}, true
}

// ParseSequence parses a space-separated sequence of moves.
// The first invalid token aborts the parse.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, ok := ParseNotation(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidNotation, part, i+1)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseTokens parses already-split tokens, e.g. command-line arguments.
func ParseTokens(tokens []string) ([]types.Move, error) {
	return ParseSequence(strings.Join(tokens, " "))
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes moves.
func Invert(moves []types.Move) []types.Move {
	inv := make([]types.Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
