// Package types contains shared type definitions for the cubesolver module.
package types

// Face represents a cube face in standard notation.
type Face uint8

const (
	FaceU Face = iota // Up
	FaceD             // Down
	FaceL             // Left
	FaceR             // Right
	FaceF             // Front
	FaceB             // Back
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

// faceLetters is indexed by Face.
var faceLetters = [NumFaces]byte{'U', 'D', 'L', 'R', 'F', 'B'}

// Letter returns the single-letter notation of the face.
func (f Face) Letter() byte {
	if int(f) >= NumFaces {
		return '?'
	}
	return faceLetters[f]
}

func (f Face) String() string {
	return string(f.Letter())
}

// FaceFromLetter maps a notation letter (either case) to a Face.
func FaceFromLetter(b byte) (Face, bool) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	for i, l := range faceLetters {
		if l == b {
			return Face(i), true
		}
	}
	return 0, false
}

// Turn is the number of clockwise quarter turns a move applies.
type Turn uint8

const (
	Normal Turn = 1 // Clockwise quarter turn
	Half   Turn = 2 // 180 degree turn
	Prime  Turn = 3 // Counter-clockwise quarter turn
)

// TurnFromQuarters normalizes a quarter-turn count. It returns false when
// the count is a multiple of four, i.e. the turn is the identity.
func TurnFromQuarters(q int) (Turn, bool) {
	q = ((q % 4) + 4) % 4
	if q == 0 {
		return 0, false
	}
	return Turn(q), true
}

// Move represents a single face turn.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// AllMoves lists the 18 face turns in enumeration order. Search tie-breaks
// follow this order.
var AllMoves = [18]Move{
	{FaceU, Normal}, {FaceU, Prime}, {FaceU, Half},
	{FaceD, Normal}, {FaceD, Prime}, {FaceD, Half},
	{FaceL, Normal}, {FaceL, Prime}, {FaceL, Half},
	{FaceR, Normal}, {FaceR, Prime}, {FaceR, Half},
	{FaceF, Normal}, {FaceF, Prime}, {FaceF, Half},
	{FaceB, Normal}, {FaceB, Prime}, {FaceB, Half},
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case Prime:
		suffix = "'"
	case Half:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case Normal:
		inv.Turn = Prime
	case Prime:
		inv.Turn = Normal
	// Half is its own inverse
	}
	return inv
}

// IsQuarter reports whether the move is a 90 degree turn.
func (m Move) IsQuarter() bool {
	return m.Turn == Normal || m.Turn == Prime
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	_, ok := m.Merge(other)
	return m.Face == other.Face && !ok
}

// Merge combines two same-face moves into one. ok is false when the faces
// differ or when the two turns cancel out completely.
func (m Move) Merge(other Move) (merged Move, ok bool) {
	if m.Face != other.Face {
		return Move{}, false
	}
	turn, ok := TurnFromQuarters(int(m.Turn) + int(other.Turn))
	if !ok {
		return Move{}, false
	}
	return Move{Face: m.Face, Turn: turn}, true
}

// Token encodes the move as its index in AllMoves.
// Encoding: face*3 + turn_code where turn_code is Normal=0, Prime=1, Half=2.
func (m Move) Token() uint8 {
	var turnCode uint8
	switch m.Turn {
	case Normal:
		turnCode = 0
	case Prime:
		turnCode = 1
	case Half:
		turnCode = 2
	}
	return uint8(m.Face)*3 + turnCode
}

// MoveFromToken decodes a token back into a Move. It returns false for
// tokens outside 0..17.
func MoveFromToken(token uint8) (Move, bool) {
	if int(token) >= len(AllMoves) {
		return Move{}, false
	}
	return AllMoves[token], true
}
