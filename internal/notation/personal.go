package notation

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Describe converts a Move to a spoken description.
// Reference frame: White on top, Green in front, facing the cube.
//
// Mapping:
//
//	R  -> "R up"                 R' -> "R down"
//	L  -> "L down"               L' -> "L up"
//	U  -> "T rotate right"       U' -> "T rotate left"
//	D  -> "B rotate right"       D' -> "B rotate left"
//	F  -> "F rotate clockwise"   F' -> "F rotate anti-clockwise"
//	B  -> "Back rotate clockwise" B' -> "Back rotate anti-clockwise"
//
// Half turns append " x 2" to the clockwise description.
func Describe(m types.Move) string {
	if int(m.Face) >= types.NumFaces {
		return "?"
	}
	d := descriptions[m.Face]
	switch m.Turn {
	case types.Normal:
		return d.cw
	case types.Prime:
		return d.ccw
	case types.Half:
		return d.cw + " x 2"
	default:
		return "?"
	}
}

type description struct {
	cw, ccw string
}

// descriptions is indexed by types.Face.
var descriptions = [types.NumFaces]description{
	types.FaceU: {"T rotate right", "T rotate left"},
	types.FaceD: {"B rotate right", "B rotate left"},
	types.FaceL: {"L down", "L up"},
	types.FaceR: {"R up", "R down"},
	types.FaceF: {"F rotate clockwise", "F rotate anti-clockwise"},
	types.FaceB: {"Back rotate clockwise", "Back rotate anti-clockwise"},
}
