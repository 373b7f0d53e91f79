package cube

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// DefaultScrambleLength is the number of random turns used for a scramble
// when none is given.
const DefaultScrambleLength = 100

// Scramble draws n moves uniformly from all 18 face turns and returns them
// together with the cube they produce from solved.
func Scramble(n int, rng *rand.Rand) ([]types.Move, CubieCube) {
	moves := make([]types.Move, n)
	for i := range moves {
		moves[i] = types.AllMoves[rng.IntN(len(types.AllMoves))]
	}
	return moves, Solved().ApplyMoves(moves)
}

// NewRand returns a generator seeded from seed, or from the runtime's
// entropy source when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
