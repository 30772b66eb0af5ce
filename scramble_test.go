package cubesolver

import (
	"math/rand"
	"testing"
)

func TestScrambleLengthAndAlphabet(t *testing.T) {
	c := NewCube()
	moves := Scramble(c, 25, rand.New(rand.NewSource(1)))
	if len(moves) != 25 {
		t.Fatalf("Scramble should return 25 moves, got %d", len(moves))
	}
	for _, m := range moves {
		if _, err := ParseMove(m.Notation()); err != nil {
			t.Errorf("Scramble produced move outside the alphabet: %v", m)
		}
	}
}

func TestScrambleNoImmediateFaceRepeat(t *testing.T) {
	c := NewCube()
	moves := Scramble(c, 50, rand.New(rand.NewSource(2)))
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Errorf("Moves %d and %d turn the same face: %s %s",
				i-1, i, moves[i-1].Notation(), moves[i].Notation())
		}
	}
}

func TestScramblePerFaceCap(t *testing.T) {
	c := NewCube()
	n := 24
	moves := Scramble(c, n, rand.New(rand.NewSource(3)))
	counts := make(map[Face]int)
	for _, m := range moves {
		counts[m.Face]++
	}
	cap := (n + 3) / 4
	for face, count := range counts {
		if count > cap {
			t.Errorf("Face %s used %d times, cap is %d", face, count, cap)
		}
	}
}

func TestScrambleSeededIsReproducible(t *testing.T) {
	c1 := NewCube()
	c2 := NewCube()
	m1 := Scramble(c1, 20, rand.New(rand.NewSource(42)))
	m2 := Scramble(c2, 20, rand.New(rand.NewSource(42)))

	if FormatMoves(m1) != FormatMoves(m2) {
		t.Errorf("Same seed should give the same scramble:\n%s\n%s",
			FormatMoves(m1), FormatMoves(m2))
	}
	if !c1.Equal(c2) {
		t.Error("Same scramble should give the same state")
	}
}

func TestScrambleReturnedSequenceMatchesState(t *testing.T) {
	c := NewCube()
	moves := Scramble(c, 15, rand.New(rand.NewSource(7)))

	replay := NewCube()
	replay.ApplyMoves(moves)
	if !replay.Equal(c) {
		t.Error("Replaying the returned sequence should reproduce the scrambled state")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Scrambled state should stay valid: %v", err)
	}
}

func TestScrambleZeroMoves(t *testing.T) {
	c := NewCube()
	if moves := Scramble(c, 0, nil); len(moves) != 0 {
		t.Errorf("Scramble(0) should return no moves, got %d", len(moves))
	}
	if !c.IsSolved() {
		t.Error("Scramble(0) should leave the cube untouched")
	}
}
