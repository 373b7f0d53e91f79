// Package phase projects a cube onto the reduced invariants of the four
// solving phases and lists the moves each phase may use.
//
// Each phase fixes one invariant with a move set that cannot disturb the
// invariants fixed before it:
//
//   - One: all edges correctly flipped. Moves: all 18.
//   - Two: all corners twisted correctly and the E-slice edges inside the E
//     slice. Moves: F and B only as half turns.
//   - Three: every edge in its home slice, corners in their home tetrads and
//     even corner parity, so half turns alone can finish. Moves: only U and
//     D keep quarter turns.
//   - Four: solved. Moves: half turns of all six faces.
package phase

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Phase identifies one of the four solving phases. Phases are ordered, so
// they can be compared with < and >.
type Phase int

const (
	One Phase = iota + 1
	Two
	Three
	Four
)

// All lists the phases in solving order.
var All = [...]Phase{One, Two, Three, Four}

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case One:
		return "edge_orientation"
	case Two:
		return "corner_orientation"
	case Three:
		return "half_turn_reduction"
	case Four:
		return "half_turn_solve"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case One:
		return "Edge Orientation"
	case Two:
		return "Corner Orientation + E-Slice"
	case Three:
		return "Half-Turn Reduction"
	case Four:
		return "Half-Turn Solve"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the four phases.
func (p Phase) Valid() bool {
	return p >= One && p <= Four
}

var (
	u  = types.Move{Face: types.FaceU, Turn: types.Normal}
	u3 = types.Move{Face: types.FaceU, Turn: types.Prime}
	u2 = types.Move{Face: types.FaceU, Turn: types.Half}
	d  = types.Move{Face: types.FaceD, Turn: types.Normal}
	d3 = types.Move{Face: types.FaceD, Turn: types.Prime}
	d2 = types.Move{Face: types.FaceD, Turn: types.Half}
	l  = types.Move{Face: types.FaceL, Turn: types.Normal}
	l3 = types.Move{Face: types.FaceL, Turn: types.Prime}
	l2 = types.Move{Face: types.FaceL, Turn: types.Half}
	r  = types.Move{Face: types.FaceR, Turn: types.Normal}
	r3 = types.Move{Face: types.FaceR, Turn: types.Prime}
	r2 = types.Move{Face: types.FaceR, Turn: types.Half}
	f2 = types.Move{Face: types.FaceF, Turn: types.Half}
	b2 = types.Move{Face: types.FaceB, Turn: types.Half}
)

// permitted is indexed by Phase; index 0 is unused.
var permitted = [...][]types.Move{
	One:   types.AllMoves[:],
	Two:   {u, u3, u2, d, d3, d2, l, l3, l2, r, r3, r2, f2, b2},
	Three: {u, u3, u2, d, d3, d2, l2, r2, f2, b2},
	Four:  {u2, d2, l2, r2, f2, b2},
}

// Moves returns the moves a phase may use, in search order. The returned
// slice is shared and must not be modified.
func Moves(p Phase) []types.Move {
	if !p.Valid() {
		return nil
	}
	return permitted[p]
}
