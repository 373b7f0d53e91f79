package cube

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// baseMoves holds one clockwise quarter turn per face, indexed by
// types.Face. Each entry says which cubie a slot receives and the twist or
// flip the turn adds to it. Every other move is derived from these.
var baseMoves = [types.NumFaces]CubieCube{
	types.FaceU: {
		CP: [NumCorners]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		EP: [NumEdges]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	},
	types.FaceD: {
		CP: [NumCorners]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		EP: [NumEdges]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	},
	types.FaceL: {
		CP: [NumCorners]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [NumCorners]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [NumEdges]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	},
	types.FaceR: {
		CP: [NumCorners]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [NumCorners]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [NumEdges]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	},
	types.FaceF: {
		CP: [NumCorners]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [NumCorners]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [NumEdges]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [NumEdges]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	types.FaceB: {
		CP: [NumCorners]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [NumCorners]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [NumEdges]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [NumEdges]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// moveCubes holds the cube for every move, indexed by types.Move.Token.
var moveCubes = buildMoveCubes()

// buildMoveCubes composes the base turns: a Normal turn once, a Half turn
// twice and a Prime turn three times.
func buildMoveCubes() [len(types.AllMoves)]CubieCube {
	var table [len(types.AllMoves)]CubieCube
	for _, m := range types.AllMoves {
		base := baseMoves[m.Face]
		c := Solved()
		for i := 0; i < int(m.Turn); i++ {
			c = c.Multiply(base)
		}
		table[m.Token()] = c
	}
	return table
}

// MoveCube returns the cube that a single move produces from solved.
func MoveCube(m types.Move) CubieCube {
	return moveCubes[m.Token()]
}
