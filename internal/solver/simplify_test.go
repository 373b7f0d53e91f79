package solver

import (
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"R U F", "R U F"},
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R", "R'"},
		{"R2 R2", ""},
		{"R' R'", "R2"},
		{"U R R' U'", ""},
		{"U R R' F", "U F"},
		{"R R R", "R'"},
		{"R R R R", ""},
		{"R R R R R", "R"},
		{"U D U'", "U D U'"},
		{"F2 B B' F2 L", "L"},
	}

	for _, tt := range tests {
		in, err := notation.ParseSequence(tt.in)
		if err != nil {
			t.Fatalf("ParseSequence(%q): %v", tt.in, err)
		}
		got := notation.FormatSequence(Simplify(in))
		if got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyPreservesEffect(t *testing.T) {
	rng := cube.NewRand(5)
	for i := 0; i < 50; i++ {
		moves, c := cube.Scramble(40, rng)
		simplified := Simplify(moves)
		if cube.Solved().ApplyMoves(simplified) != c {
			t.Fatalf("simplify changed the effect of %s", notation.FormatSequence(moves))
		}
		if len(simplified) > len(moves) {
			t.Fatalf("simplify grew %d moves to %d", len(moves), len(simplified))
		}
		assertNoSameFacePairs(t, simplified)
	}
}
