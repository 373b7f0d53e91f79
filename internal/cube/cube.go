// Package cube provides a 3x3 Rubik's cube model on the cubie level:
// which corner and edge cubie sits in each slot, and how it is twisted.
package cube

import (
	"encoding/json"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Corner labels one of the 8 corner slots (and the cubie that belongs there).
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corner cubies.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if int(c) >= NumCorners {
		return "?"
	}
	return cornerNames[c]
}

// CornerFromIndex converts a small integer to a Corner label, failing for
// anything outside 0..7.
func CornerFromIndex(i int) (Corner, bool) {
	if i < 0 || i >= NumCorners {
		return 0, false
	}
	return Corner(i), true
}

// Edge labels one of the 12 edge slots (and the cubie that belongs there).
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edge cubies.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if int(e) >= NumEdges {
		return "?"
	}
	return edgeNames[e]
}

// EdgeFromIndex converts a small integer to an Edge label, failing for
// anything outside 0..11.
func EdgeFromIndex(i int) (Edge, bool) {
	if i < 0 || i >= NumEdges {
		return 0, false
	}
	return Edge(i), true
}

// CubieCube is the cube state on the cubie level.
//
// CP[i] is the corner cubie occupying slot i and CO[i] its twist (0..2, with
// 3..5 reserved for mirrored states). EP and EO do the same for edges, with
// EO[i] in {0,1}. Values are small and copied freely; every operation
// returns a new cube.
type CubieCube struct {
	CP [NumCorners]Corner `json:"cp"`
	CO [NumCorners]uint8  `json:"co"`
	EP [NumEdges]Edge     `json:"ep"`
	EO [NumEdges]uint8    `json:"eo"`
}

// Solved returns the identity cube.
func Solved() CubieCube {
	var c CubieCube
	for i := range c.CP {
		c.CP[i] = Corner(i)
	}
	for i := range c.EP {
		c.EP[i] = Edge(i)
	}
	return c
}

// IsSolved returns true if the cube is in the solved state.
func (c CubieCube) IsSolved() bool {
	return c == Solved()
}

// Multiply returns the cube reached by performing b after c.
func (c CubieCube) Multiply(b CubieCube) CubieCube {
	var r CubieCube

	for i := range r.EP {
		r.EP[i] = c.EP[b.EP[i]]
		r.EO[i] = (b.EO[i] + c.EO[b.EP[i]]) % 2
	}

	for i := range r.CP {
		r.CP[i] = c.CP[b.CP[i]]
		r.CO[i] = combineTwist(c.CO[b.CP[i]], b.CO[i])
	}

	return r
}

// combineTwist adds corner twist a (the cubie's twist before the move) and
// b (the twist the move imparts). Values 0..2 are regular orientations and
// 3..5 mirrored ones; the result stays inside the same extended range.
func combineTwist(a, b uint8) uint8 {
	x, y := int(a), int(b)
	var ori int
	switch {
	case x < 3 && y < 3:
		ori = x + y
		if ori >= 3 {
			ori -= 3
		}
	case x < 3 && y >= 3:
		ori = x + y
		if ori >= 6 {
			ori -= 3
		}
	case x >= 3 && y < 3:
		ori = x - y
		if ori < 3 {
			ori += 3
		}
	default:
		ori = x - y
		if ori < 0 {
			ori += 3
		}
	}
	return uint8(ori)
}

// ApplyMove returns the cube after turning one face.
func (c CubieCube) ApplyMove(m types.Move) CubieCube {
	if int(m.Face) >= types.NumFaces {
		return c
	}
	return c.Multiply(moveCubes[m.Token()])
}

// ApplyMoves applies a sequence of moves in order.
func (c CubieCube) ApplyMoves(moves []types.Move) CubieCube {
	for _, m := range moves {
		c = c.ApplyMove(m)
	}
	return c
}

// String renders the cube as JSON, e.g.
// {"cp":[0,1,2,3,4,5,6,7],"co":[0,0,0,0,0,0,0,0],...}.
func (c CubieCube) String() string {
	b, err := json.Marshal(c)
	if err != nil {
		return "{}"
	}
	return string(b)
}
