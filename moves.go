package cubesolver

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	c := cubesolver.NewCube().ApplyMoves(cubesolver.SexyMove)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: Normal} // Right clockwise
	RPrime = Move{Face: FaceR, Turn: Prime}  // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Half}   // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: Normal} // Left clockwise
	LPrime = Move{Face: FaceL, Turn: Prime}  // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Half}   // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: Normal} // Up clockwise
	UPrime = Move{Face: FaceU, Turn: Prime}  // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Half}   // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: Normal} // Down clockwise
	DPrime = Move{Face: FaceD, Turn: Prime}  // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Half}   // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: Normal} // Front clockwise
	FPrime = Move{Face: FaceF, Turn: Prime}  // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Half}   // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: Normal} // Back clockwise
	BPrime = Move{Face: FaceB, Turn: Prime}  // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Half}   // Back 180
)

// Sexy move: R U R' U' - six repetitions return to solved.
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// Checkerboard pattern, reachable with half turns only.
var Checkerboard = []Move{R2, L2, U2, D2, F2, B2}

// Superflip: every edge flipped in place, corners untouched.
var Superflip = []Move{U, R2, F, B, R, B2, R, U2, L, B2, R, UPrime, DPrime, R2, F, RPrime, L, B2, U2, F2}
