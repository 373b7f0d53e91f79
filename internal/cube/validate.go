package cube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cube package.
var (
	// ErrInvalidFacelets is returned for a malformed facelet string.
	ErrInvalidFacelets = errors.New("cube: invalid facelet representation")

	// ErrUnknownCubie is returned when stickers describe no real cubie.
	ErrUnknownCubie = errors.New("cube: unknown cubie")

	// ErrInvalidCube is returned for a cube no legal move sequence can reach.
	ErrInvalidCube = errors.New("cube: unreachable cube state")
)

// Validate checks the invariants that hold for every cube reachable from
// solved by legal moves: both permutations are bijections, the corner twist
// sums to 0 mod 3, the edge flip sums to 0 mod 2, and the corner and edge
// permutation parities agree.
func (c CubieCube) Validate() error {
	var seenCorners [NumCorners]bool
	for i, p := range c.CP {
		if int(p) >= NumCorners || seenCorners[p] {
			return fmt.Errorf("%w: corner permutation repeats or overflows at slot %d", ErrInvalidCube, i)
		}
		seenCorners[p] = true
	}

	var seenEdges [NumEdges]bool
	for i, p := range c.EP {
		if int(p) >= NumEdges || seenEdges[p] {
			return fmt.Errorf("%w: edge permutation repeats or overflows at slot %d", ErrInvalidCube, i)
		}
		seenEdges[p] = true
	}

	twist := 0
	for i, o := range c.CO {
		if o > 2 {
			return fmt.Errorf("%w: corner %d has twist %d", ErrInvalidCube, i, o)
		}
		twist += int(o)
	}
	if twist%3 != 0 {
		return fmt.Errorf("%w: total corner twist is not a multiple of 3", ErrInvalidCube)
	}

	flip := 0
	for i, o := range c.EO {
		if o > 1 {
			return fmt.Errorf("%w: edge %d has flip %d", ErrInvalidCube, i, o)
		}
		flip += int(o)
	}
	if flip%2 != 0 {
		return fmt.Errorf("%w: total edge flip is odd", ErrInvalidCube)
	}

	if c.cornerParity() != c.edgeParity() {
		return fmt.Errorf("%w: corner and edge permutation parities differ", ErrInvalidCube)
	}

	return nil
}

// cornerParity returns 1 when the corner permutation is odd.
func (c CubieCube) cornerParity() int {
	s := 0
	for i := 0; i < NumCorners; i++ {
		for j := i + 1; j < NumCorners; j++ {
			if c.CP[i] > c.CP[j] {
				s++
			}
		}
	}
	return s % 2
}

// edgeParity returns 1 when the edge permutation is odd.
func (c CubieCube) edgeParity() int {
	s := 0
	for i := 0; i < NumEdges; i++ {
		for j := i + 1; j < NumEdges; j++ {
			if c.EP[i] > c.EP[j] {
				s++
			}
		}
	}
	return s % 2
}
