package cubesolver

// Tracker wraps a Cube with move history and phase change detection.
// It is the convenience type a driver (CLI, service layer) holds per
// logical session; the underlying Cube stays usable directly.
type Tracker struct {
	cube          *Cube
	history       []Move
	lastPhase     Phase
	phaseCallback func(phase Phase)
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker() *Tracker {
	return &Tracker{
		cube:      NewCube(),
		lastPhase: PhaseSolved,
	}
}

// SetPhaseCallback sets a callback that fires when the detected phase changes.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset returns the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.history = nil
	t.lastPhase = PhaseSolved
}

// ApplyMove applies a move, records it, and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.ApplyMove(m)
	t.history = append(t.history, m)
	t.checkPhaseTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// ExecuteMove parses and applies a notation token. An invalid token
// returns ErrInvalidMove and leaves cube and history unchanged.
func (t *Tracker) ExecuteMove(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		return err
	}
	t.ApplyMove(m)
	return nil
}

func (t *Tracker) checkPhaseTransition() {
	current := t.cube.DetectPhase()
	if current != t.lastPhase {
		t.lastPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current)
		}
	}
}

// History returns a copy of all moves applied since the last reset.
func (t *Tracker) History() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// CurrentPhase returns the current detected phase.
func (t *Tracker) CurrentPhase() Phase {
	return t.cube.DetectPhase()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube. Callers that need an independent
// working copy must Clone it; the tracker keeps ownership of this one.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
