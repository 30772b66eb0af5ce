package cubesolver

import (
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("New cube should be valid: %v", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.ApplyMove(m)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s", m.Notation())
		}
	}
}

func TestQuarterTurnOrderFour(t *testing.T) {
	faces := []CubeFace{CubeFaceU, CubeFaceD, CubeFaceF, CubeFaceB, CubeFaceR, CubeFaceL}
	for _, face := range faces {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.MoveFace(face, 1)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestDoubleEqualsTwoQuarterTurns(t *testing.T) {
	// The half turn is defined as two quarter turns; check the two code
	// paths agree exactly on every face.
	faces := []CubeFace{CubeFaceU, CubeFaceD, CubeFaceF, CubeFaceB, CubeFaceR, CubeFaceL}
	for _, face := range faces {
		double := NewCube()
		double.MoveFace(face, 2)

		twice := NewCube()
		twice.MoveFace(face, 1)
		twice.MoveFace(face, 1)

		if !double.Equal(twice) {
			t.Errorf("%v2 should equal two quarter turns", face)
			t.Log(double.String())
			t.Log(twice.String())
		}
	}
}

func TestDoubleIsOwnInverse(t *testing.T) {
	c := NewCube()
	c.MoveFace(CubeFaceR, 2)
	c.MoveFace(CubeFaceR, 2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	// Start from a non-trivial state so the check is not vacuous.
	base := NewCube()
	base.ApplyMoves(TPerm)

	for _, m := range AllMoves {
		c := base.Clone()
		c.ApplyMove(m)
		c.ApplyMove(m.Inverse())
		if !c.Equal(base) {
			t.Errorf("%s then %s should be identity", m.Notation(), m.Inverse().Notation())
		}
	}
}

func TestMoveClosurePreservesInvariants(t *testing.T) {
	// Every move applied to a valid state yields a valid state.
	c := NewCube()
	for i := 0; i < 10; i++ {
		for _, m := range AllMoves {
			c.ApplyMove(m)
			if err := c.Validate(); err != nil {
				t.Fatalf("state invalid after %s: %v", m.Notation(), err)
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(SexyMove)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube()
	clone := c.Clone()
	clone.ApplyMove(R)
	if !c.IsSolved() {
		t.Error("Mutating a clone should not affect the original")
	}
	if clone.IsSolved() {
		t.Error("Clone should have received the move")
	}
}

func TestFaceColorsIsSnapshot(t *testing.T) {
	c := NewCube()
	snap := c.FaceColors(CubeFaceU)
	snap[0] = Yellow
	if c.Facelets[CubeFaceU][0] != White {
		t.Error("FaceColors must not alias internal storage")
	}
}

func TestSetFaceletsRejectsInvalidState(t *testing.T) {
	c := NewCube()
	c.ApplyMoves(SexyMove)
	before := c.Clone()

	var bad [6][9]Color
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			bad[f][i] = White // 54 whites: color counts are wrong
		}
	}
	err := c.SetFacelets(bad)
	if err == nil {
		t.Fatal("SetFacelets should reject a state with bad color counts")
	}
	if !c.Equal(before) {
		t.Error("Rejected SetFacelets must leave the cube unchanged")
	}
}

func TestSetFaceletsAcceptsReachableState(t *testing.T) {
	scrambled := NewCube()
	scrambled.ApplyMoves(TPerm)

	c := NewCube()
	if err := c.SetFacelets(scrambled.Facelets); err != nil {
		t.Fatalf("SetFacelets should accept a reachable state: %v", err)
	}
	if !c.Equal(scrambled) {
		t.Error("SetFacelets should adopt the given facelets")
	}
}

func TestExecuteMoveInvalidTokenLeavesStateUnchanged(t *testing.T) {
	c := NewCube()
	c.ApplyMoves(SexyMove)
	before := c.Clone()

	if err := c.ExecuteMove("X"); err == nil {
		t.Fatal("ExecuteMove(\"X\") should fail")
	}
	if !c.Equal(before) {
		t.Error("Failed ExecuteMove must leave the cube unchanged")
	}
}

func TestReset(t *testing.T) {
	c := NewCube()
	c.ApplyMoves(TPerm)
	c.Reset()
	if !c.IsSolved() {
		t.Error("Reset should return the cube to solved")
	}
}

func TestScrambleAndReverse(t *testing.T) {
	c := NewCube()
	scramble := []Move{R, U, RPrime, UPrime, F, D, L2}
	c.ApplyMoves(scramble)

	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}

	c.ApplyMoves(InverseMoves(scramble))
	if !c.IsSolved() {
		t.Error("Cube should be solved after applying the inverse sequence")
		t.Log(c.String())
	}
}

func TestSolvePercent(t *testing.T) {
	c := NewCube()
	if got := c.SolvePercent(); got != 100.0 {
		t.Errorf("Solved cube should be 100%%, got %.1f", got)
	}
	c.ApplyMove(R)
	if got := c.SolvePercent(); got >= 100.0 {
		t.Errorf("Scrambled cube should be under 100%%, got %.1f", got)
	}
}

func TestPhaseDetection(t *testing.T) {
	c := NewCube()
	if phase := c.DetectPhase(); phase != PhaseSolved {
		t.Errorf("Solved cube should detect as PhaseSolved, got %v", phase)
	}

	c.ApplyMove(R)
	if phase := c.DetectPhase(); phase == PhaseSolved {
		t.Error("Scrambled cube should not detect as solved")
	}
	if c.IsWhiteCrossComplete() {
		t.Error("White cross should be broken after R move")
	}
}

func TestProgressOnSolvedCube(t *testing.T) {
	c := NewCube()
	p := c.GetProgress()
	if !p.WhiteCross || !p.FirstLayer || !p.MiddleLayer || !p.BottomCross || !p.CornersPositioned || !p.Solved {
		t.Errorf("Solved cube should satisfy every phase, got %+v", p)
	}
}

func TestTrackerHistoryAndReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.ApplyMoves(SexyMove)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after moves")
	}
	if got := len(tr.History()); got != 4 {
		t.Errorf("History should hold 4 moves, got %d", got)
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if got := len(tr.History()); got != 0 {
		t.Errorf("Reset should clear the history, got %d moves", got)
	}
}

func TestTrackerPhaseCallback(t *testing.T) {
	tr := NewTracker()

	var phases []Phase
	tr.SetPhaseCallback(func(p Phase) {
		phases = append(phases, p)
	})

	tr.ApplyMove(R)
	if len(phases) == 0 {
		t.Fatal("Phase callback should fire when the phase changes")
	}
	if phases[len(phases)-1] == PhaseSolved {
		t.Error("Phase after R should not be solved")
	}

	tr.ApplyMove(RPrime)
	if phases[len(phases)-1] != PhaseSolved {
		t.Errorf("Phase after undoing should be solved, got %v", phases[len(phases)-1])
	}
}

func TestTrackerExecuteMoveInvalid(t *testing.T) {
	tr := NewTracker()
	if err := tr.ExecuteMove("Q2"); err == nil {
		t.Fatal("ExecuteMove should reject an unknown face")
	}
	if !tr.IsSolved() || len(tr.History()) != 0 {
		t.Error("Failed ExecuteMove must not touch cube or history")
	}
}
