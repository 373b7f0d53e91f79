package cube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ColorFromLetter parses a single color letter.
func ColorFromLetter(r rune) (Color, bool) {
	switch r {
	case 'W':
		return White, true
	case 'Y':
		return Yellow, true
	case 'G':
		return Green, true
	case 'B':
		return Blue, true
	case 'R':
		return Red, true
	case 'O':
		return Orange, true
	default:
		return 0, false
	}
}

// NumFacelets is the number of stickers on the cube.
const NumFacelets = 54

// Facelet positions. Faces are stored in the order U R F D L B; each face is
// numbered row by row as seen from outside the cube:
//
//	1 2 3
//	4 5 6
//	7 8 9
//
// The center (5) defines the face color and never moves.
const (
	U1 = iota
	U2
	U3
	U4
	U5
	U6
	U7
	U8
	U9
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	L1
	L2
	L3
	L4
	L5
	L6
	L7
	L8
	L9
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
)

// faceOrder lists the solved color of each block of nine facelets.
var faceOrder = [6]Color{White, Red, Green, Yellow, Orange, Blue}

// cornerFacelets lists, per corner slot, its stickers starting with the U or
// D sticker and continuing clockwise.
var cornerFacelets = [NumCorners][3]int{
	{U9, R1, F3}, {U7, F1, L3}, {U1, L1, B3}, {U3, B1, R3},
	{D3, F9, R7}, {D1, L9, F7}, {D7, B9, L7}, {D9, R9, B7},
}

// edgeFacelets lists, per edge slot, its two stickers.
var edgeFacelets = [NumEdges][2]int{
	{U6, R2}, {U8, F2}, {U4, L2}, {U2, B2},
	{D6, R8}, {D2, F8}, {D4, L8}, {D8, B8},
	{F6, R4}, {F4, L6}, {B6, L4}, {B4, R6},
}

// cornerColors lists the colors of each corner cubie in cornerFacelets order.
var cornerColors = [NumCorners][3]Color{
	{White, Red, Green}, {White, Green, Orange}, {White, Orange, Blue}, {White, Blue, Red},
	{Yellow, Green, Red}, {Yellow, Orange, Green}, {Yellow, Blue, Orange}, {Yellow, Red, Blue},
}

// edgeColors lists the colors of each edge cubie in edgeFacelets order.
var edgeColors = [NumEdges][2]Color{
	{White, Red}, {White, Green}, {White, Orange}, {White, Blue},
	{Yellow, Red}, {Yellow, Green}, {Yellow, Orange}, {Yellow, Blue},
	{Green, Red}, {Green, Orange}, {Blue, Orange}, {Blue, Red},
}

// FaceletCube is the cube described by its 54 sticker colors.
type FaceletCube struct {
	Facelets [NumFacelets]Color
}

// NewFaceletCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewFaceletCube() FaceletCube {
	var f FaceletCube
	for face, color := range faceOrder {
		for i := 0; i < 9; i++ {
			f.Facelets[face*9+i] = color
		}
	}
	return f
}

// ParseFacelets parses a 54-letter color string such as
// "WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB".
func ParseFacelets(s string) (FaceletCube, error) {
	s = strings.TrimSpace(s)
	var f FaceletCube
	if len(s) != NumFacelets {
		return f, fmt.Errorf("%w: expected %d facelets, got %d", ErrInvalidFacelets, NumFacelets, len(s))
	}
	for i, r := range s {
		color, ok := ColorFromLetter(r)
		if !ok {
			return f, fmt.Errorf("%w: unknown color %q at position %d", ErrInvalidFacelets, r, i+1)
		}
		f.Facelets[i] = color
	}
	return f, nil
}

// String returns the 54-letter color string.
func (f FaceletCube) String() string {
	var b strings.Builder
	b.Grow(NumFacelets)
	for _, c := range f.Facelets {
		b.WriteString(c.String())
	}
	return b.String()
}

// Face returns the nine stickers of one face block (0=U, 1=R, 2=F, 3=D,
// 4=L, 5=B).
func (f FaceletCube) Face(block int) [9]Color {
	var out [9]Color
	copy(out[:], f.Facelets[block*9:block*9+9])
	return out
}

// Net returns a text representation of the cube unfolded as
//
//	  U
//	L F R B
//	  D
func (f FaceletCube) Net() string {
	var b strings.Builder
	row := func(block, r int) {
		face := f.Face(block)
		for col := 0; col < 3; col++ {
			b.WriteString(face[r*3+col].String())
			b.WriteString(" ")
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(0, r)
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, block := range []int{4, 2, 1, 5} {
			row(block, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(3, r)
		b.WriteString("\n")
	}
	return b.String()
}

// FromCubie renders a cubie cube as stickers.
func FromCubie(c CubieCube) FaceletCube {
	f := NewFaceletCube()

	for i := 0; i < NumCorners; i++ {
		for k := 0; k < 3; k++ {
			pos := cornerFacelets[i][(k+int(c.CO[i]))%3]
			f.Facelets[pos] = cornerColors[c.CP[i]%NumCorners][k]
		}
	}

	for i := 0; i < NumEdges; i++ {
		for k := 0; k < 2; k++ {
			pos := edgeFacelets[i][(k+int(c.EO[i]))%2]
			f.Facelets[pos] = edgeColors[c.EP[i]%NumEdges][k]
		}
	}

	return f
}

// ToCubie identifies the cubie and orientation in every slot. It fails with
// ErrUnknownCubie when a slot's stickers match no cubie. The result is not
// checked for reachability; see CubieCube.Validate.
func (f FaceletCube) ToCubie() (CubieCube, error) {
	c := Solved()

	for i := 0; i < NumCorners; i++ {
		fac := cornerFacelets[i]

		ori := 0
		for ; ori < 3; ori++ {
			col := f.Facelets[fac[ori]]
			if col == White || col == Yellow {
				break
			}
		}
		if ori == 3 {
			return CubieCube{}, fmt.Errorf("%w: corner slot %s has no U/D sticker", ErrUnknownCubie, Corner(i))
		}

		col1 := f.Facelets[fac[(ori+1)%3]]
		col2 := f.Facelets[fac[(ori+2)%3]]

		found := false
		for j := 0; j < NumCorners; j++ {
			if col1 == cornerColors[j][1] && col2 == cornerColors[j][2] {
				corner, ok := CornerFromIndex(j)
				if !ok {
					break
				}
				c.CP[i] = corner
				c.CO[i] = uint8(ori)
				found = true
				break
			}
		}
		if !found {
			return CubieCube{}, fmt.Errorf("%w: corner slot %s", ErrUnknownCubie, Corner(i))
		}
	}

	for i := 0; i < NumEdges; i++ {
		a := f.Facelets[edgeFacelets[i][0]]
		b := f.Facelets[edgeFacelets[i][1]]

		found := false
		for j := 0; j < NumEdges && !found; j++ {
			edge, ok := EdgeFromIndex(j)
			if !ok {
				break
			}
			switch {
			case a == edgeColors[j][0] && b == edgeColors[j][1]:
				c.EP[i], c.EO[i] = edge, 0
				found = true
			case a == edgeColors[j][1] && b == edgeColors[j][0]:
				c.EP[i], c.EO[i] = edge, 1
				found = true
			}
		}
		if !found {
			return CubieCube{}, fmt.Errorf("%w: edge slot %s", ErrUnknownCubie, Edge(i))
		}
	}

	return c, nil
}

// ApplyMoves applies moves to the sticker cube by way of the cubie model.
func (f FaceletCube) ApplyMoves(moves []types.Move) (FaceletCube, error) {
	c, err := f.ToCubie()
	if err != nil {
		return f, err
	}
	return FromCubie(c.ApplyMoves(moves)), nil
}
