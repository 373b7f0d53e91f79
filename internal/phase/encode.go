package phase

import "github.com/SeamusWaldron/cubesolver/internal/cube"

// IDLen is the number of words in a phase id.
const IDLen = 40

// ID is a cube reduced to what one phase cares about. Two cubes that are
// equivalent for a phase have identical ids, so an ID is used directly as a
// map key.
type ID [IDLen]uint32

// Reference layout: slots and cubie labels renumbered in reduction order.
//
//	[0,12)  edge in each edge slot
//	[12,20) corner in each corner slot
//	[20,32) flip of each edge slot
//	[32,40) twist of each corner slot
const (
	offEdges   = 0
	offCorners = 12
	offFlips   = 20
	offTwists  = 32
)

// edgeOrder lists edge slots in reduction order: the U layer, the D layer,
// then the E slice. Within a layer the even positions belong to the M slice
// and the odd ones to the S slice.
var edgeOrder = [cube.NumEdges]cube.Edge{
	cube.UF, cube.UR, cube.UB, cube.UL,
	cube.DF, cube.DR, cube.DB, cube.DL,
	cube.FR, cube.FL, cube.BR, cube.BL,
}

// cornerOrder lists corner slots in reduction order. Masking a rank with 5
// yields the same value for both corners of each pair that half turns keep
// together.
var cornerOrder = [cube.NumCorners]cube.Corner{
	cube.URF, cube.UBR, cube.ULB, cube.UFL,
	cube.DFR, cube.DLF, cube.DBL, cube.DRB,
}

var (
	edgeRank   = rankEdges()
	cornerRank = rankCorners()
)

func rankEdges() [cube.NumEdges]uint32 {
	var r [cube.NumEdges]uint32
	for i, e := range edgeOrder {
		r[e] = uint32(i)
	}
	return r
}

func rankCorners() [cube.NumCorners]uint32 {
	var r [cube.NumCorners]uint32
	for i, c := range cornerOrder {
		r[c] = uint32(i)
	}
	return r
}

// reference renumbers the full cube state into the reference layout.
func reference(c cube.CubieCube) ID {
	var id ID
	for i, slot := range edgeOrder {
		id[offEdges+i] = edgeRank[c.EP[slot]]
		id[offFlips+i] = uint32(c.EO[slot])
	}
	for i, slot := range cornerOrder {
		id[offCorners+i] = cornerRank[c.CP[slot]]
		id[offTwists+i] = uint32(c.CO[slot])
	}
	return id
}

// Encode reduces c to the id used while searching phase p.
func Encode(p Phase, c cube.CubieCube) ID {
	ref := reference(c)
	var id ID

	switch p {
	case One:
		copy(id[:cube.NumEdges], ref[offFlips:offFlips+cube.NumEdges])

	case Two:
		// Word 0: which edge slots hold an E-slice edge. Words 1-8: twists.
		for i := 0; i < cube.NumEdges; i++ {
			id[0] |= (ref[offEdges+i] / 8) << i
		}
		copy(id[1:1+cube.NumCorners], ref[offTwists:offTwists+cube.NumCorners])

	case Three:
		// Word 0: home slice of every edge (0 M, 1 S, 2 E), two bits each.
		for i := 0; i < cube.NumEdges; i++ {
			e := ref[offEdges+i]
			class := e & 1
			if e > 7 {
				class = 2
			}
			id[0] |= class << (2 * i)
		}
		// Word 1: tetrad pair of every corner, three bits each.
		for i := 0; i < cube.NumCorners; i++ {
			id[1] |= (ref[offCorners+i] & 5) << (3 * i)
		}
		// Word 2: corner permutation parity.
		for i := offCorners; i < offCorners+cube.NumCorners; i++ {
			for j := i + 1; j < offCorners+cube.NumCorners; j++ {
				if ref[i] > ref[j] {
					id[2] ^= 1
				}
			}
		}

	case Four:
		id = ref
	}

	return id
}

// Goal returns the id every phase-p search aims for.
func Goal(p Phase) ID {
	return goals[p]
}

// goals is indexed by Phase; index 0 is unused.
var goals = func() [Four + 1]ID {
	var g [Four + 1]ID
	for _, p := range All {
		g[p] = Encode(p, cube.Solved())
	}
	return g
}()

// Reached reports whether c already satisfies the goal of phase p.
func Reached(p Phase, c cube.CubieCube) bool {
	return Encode(p, c) == Goal(p)
}

// Completed returns the last phase whose goal c satisfies, checking the
// phases in order and stopping at the first one that is not reached. It
// returns 0 when not even phase One is complete.
func Completed(c cube.CubieCube) Phase {
	var done Phase
	for _, p := range All {
		if !Reached(p, c) {
			break
		}
		done = p
	}
	return done
}
