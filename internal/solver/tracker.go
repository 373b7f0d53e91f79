package solver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/phase"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Tracker follows a cube through a move sequence and reports when a phase
// goal is first reached.
type Tracker struct {
	start         cube.CubieCube
	cube          cube.CubieCube
	history       []types.Move
	highestPhase  phase.Phase // Monotonic - never goes backwards
	phaseCallback func(p phase.Phase, step int)
}

// NewTracker creates a tracker starting from c.
func NewTracker(c cube.CubieCube) *Tracker {
	t := &Tracker{start: c}
	t.Reset()
	return t
}

// SetPhaseCallback sets a callback that fires when a new phase is completed.
// step is the number of moves applied so far.
func (t *Tracker) SetPhaseCallback(cb func(p phase.Phase, step int)) {
	t.phaseCallback = cb
}

// Reset returns the tracker to its starting cube.
func (t *Tracker) Reset() {
	t.cube = t.start
	t.history = t.history[:0]
	t.highestPhase = phase.Completed(t.start)
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m types.Move) {
	t.cube = t.cube.ApplyMove(m)
	t.history = append(t.history, m)
	t.checkPhaseTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the last move. It reports false when there is nothing to
// undo. The highest phase is kept.
func (t *Tracker) Undo() bool {
	n := len(t.history)
	if n == 0 {
		return false
	}
	t.cube = t.cube.ApplyMove(t.history[n-1].Inverse())
	t.history = t.history[:n-1]
	return true
}

func (t *Tracker) checkPhaseTransition() {
	current := phase.Completed(t.cube)
	if current > t.highestPhase {
		t.highestPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current, len(t.history))
		}
	}
}

// CurrentPhase returns the last phase the current cube satisfies. This may
// go backwards when moves are undone.
func (t *Tracker) CurrentPhase() phase.Phase {
	return phase.Completed(t.cube)
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() phase.Phase {
	return t.highestPhase
}

// Step returns the number of moves applied.
func (t *Tracker) Step() int {
	return len(t.history)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the current cube.
func (t *Tracker) Cube() cube.CubieCube {
	return t.cube
}
