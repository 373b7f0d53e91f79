package solver

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Simplify merges consecutive turns of the same face in one left-to-right
// pass. Each move is compared with the last move kept so far: a same-face
// pair is replaced by the sum of their quarter turns, or dropped when the
// sum is a full rotation. A drop uncovers the move before it, which the
// next move is then compared with, so "R U U' R'" cancels completely.
// Turns of opposite faces are never reordered.
func Simplify(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		if n == 0 || out[n-1].Face != m.Face {
			out = append(out, m)
			continue
		}
		merged, ok := out[n-1].Merge(m)
		out = out[:n-1]
		if ok {
			out = append(out, merged)
		}
	}
	return out
}
