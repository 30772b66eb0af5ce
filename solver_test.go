package cubesolver

import (
	"context"
	"math/rand"
	"testing"
)

func TestSolveAlreadySolved(t *testing.T) {
	c := NewCube()
	result := Solve(context.Background(), c)
	if !result.Solved() {
		t.Fatalf("Solved input should report StatusFound, got %v", result.Status)
	}
	if len(result.Solution) != 0 {
		t.Errorf("Solved input should yield an empty solution, got %s", FormatMoves(result.Solution))
	}
	if result.Stats.NodesVisited != 0 {
		t.Errorf("Solved input should visit zero nodes, got %d", result.Stats.NodesVisited)
	}
}

func TestSolveSingleMove(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.ApplyMove(m)

		result := Solve(context.Background(), c, WithMaxDepth(2))
		if !result.Solved() {
			t.Fatalf("One-move scramble %s should be solvable, got %v", m.Notation(), result.Status)
		}
		if len(result.Solution) != 1 {
			t.Errorf("Scramble %s should solve in one move, got %s", m.Notation(), FormatMoves(result.Solution))
		}

		c.ApplyMoves(result.Solution)
		if !c.IsSolved() {
			t.Errorf("Applying the solution for %s should solve the cube", m.Notation())
		}
	}
}

func TestSolveSmallScrambles(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c := NewCube()
		scramble := Scramble(c, n, rand.New(rand.NewSource(int64(n))))
		before := c.Clone()

		result := Solve(context.Background(), c, WithMaxDepth(n+2))
		if !result.Solved() {
			t.Fatalf("n=%d scramble %s should be solvable within depth %d (visited %d nodes)",
				n, FormatMoves(scramble), n+2, result.Stats.NodesVisited)
		}
		if !c.Equal(before) {
			t.Error("Solve must not mutate the caller's cube")
		}
		if len(result.Solution) > n {
			t.Errorf("n=%d solution longer than scramble: %s", n, FormatMoves(result.Solution))
		}
		if result.Stats.NodesVisited <= 0 {
			t.Errorf("n=%d should report visited nodes", n)
		}

		c.ApplyMoves(result.Solution)
		if !c.IsSolved() {
			t.Errorf("n=%d solution %s does not solve the cube", n, FormatMoves(result.Solution))
		}
	}
}

func TestSolveEndToEndSeeded(t *testing.T) {
	// Fresh cube, 5-move seeded scramble, solve with max depth 8.
	c := NewCube()
	scramble := Scramble(c, 5, rand.New(rand.NewSource(99)))

	result := Solve(context.Background(), c, WithMaxDepth(8))
	if !result.Solved() {
		t.Fatalf("Scramble %s should solve within depth 8", FormatMoves(scramble))
	}
	c.ApplyMoves(result.Solution)
	if !c.IsSolved() {
		t.Error("Applied solution should solve the cube")
	}
	if result.Stats.NodesVisited <= 0 {
		t.Error("NodesVisited should be reported")
	}
}

func TestSolveSolutionHasNoSameFaceRuns(t *testing.T) {
	c := NewCube()
	Scramble(c, 5, rand.New(rand.NewSource(11)))

	result := Solve(context.Background(), c, WithMaxDepth(7))
	if !result.Solved() {
		t.Fatal("scramble should be solvable")
	}
	for i := 1; i < len(result.Solution); i++ {
		if result.Solution[i].Face == result.Solution[i-1].Face {
			t.Errorf("Solution contains a same-face run: %s", FormatMoves(result.Solution))
		}
	}
}

func TestSolveExhaustedAtDepthBound(t *testing.T) {
	c := NewCube()
	Scramble(c, 10, rand.New(rand.NewSource(5)))

	result := Solve(context.Background(), c, WithMaxDepth(2))
	if result.Status != StatusExhausted {
		t.Fatalf("Deep scramble at depth 2 should exhaust, got %v", result.Status)
	}
	if result.Stats.DepthReached != 2 {
		t.Errorf("DepthReached = %d, want 2", result.Stats.DepthReached)
	}
	if result.Solution != nil {
		t.Error("Exhausted result should carry no solution")
	}
}

func TestSolveNodeBudget(t *testing.T) {
	c := NewCube()
	Scramble(c, 10, rand.New(rand.NewSource(6)))

	result := Solve(context.Background(), c,
		WithMaxDepth(20), WithNodeBudget(500), WithCheckInterval(16))
	if result.Status != StatusExhausted {
		t.Fatalf("Tiny node budget should exhaust, got %v", result.Status)
	}
	if result.Stats.NodesVisited == 0 {
		t.Error("Partial statistics should still be reported")
	}
	// The budget is checked every 16 nodes and each stack level counts
	// one more node while unwinding, so overshoot is small and bounded.
	if result.Stats.NodesVisited > 500+16+20 {
		t.Errorf("Budget overshoot too large: %d nodes", result.Stats.NodesVisited)
	}
}

func TestSolveCancellation(t *testing.T) {
	c := NewCube()
	Scramble(c, 12, rand.New(rand.NewSource(8)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Solve(ctx, c, WithMaxDepth(20), WithCheckInterval(1))
	if result.Status != StatusExhausted {
		t.Fatalf("Cancelled search should report StatusExhausted, got %v", result.Status)
	}
}

func TestSolveParallelWorkers(t *testing.T) {
	c := NewCube()
	scramble := Scramble(c, 4, rand.New(rand.NewSource(13)))
	before := c.Clone()

	result := Solve(context.Background(), c, WithMaxDepth(6), WithWorkers(4))
	if !result.Solved() {
		t.Fatalf("Parallel solve of %s should succeed", FormatMoves(scramble))
	}
	if !c.Equal(before) {
		t.Error("Parallel solve must not mutate the caller's cube")
	}
	c.ApplyMoves(result.Solution)
	if !c.IsSolved() {
		t.Errorf("Parallel solution %s does not solve the cube", FormatMoves(result.Solution))
	}
}

func TestSolveStatusString(t *testing.T) {
	if StatusFound.String() != "found" || StatusExhausted.String() != "exhausted" {
		t.Error("unexpected status strings")
	}
}

func TestLowerBoundIsAdmissible(t *testing.T) {
	// The heuristic may never exceed the true distance; for an n-move
	// scramble the true distance is at most n.
	for n := 1; n <= 6; n++ {
		c := NewCube()
		Scramble(c, n, rand.New(rand.NewSource(int64(100+n))))
		if lb := lowerBound(c); lb > n {
			t.Errorf("lowerBound=%d exceeds scramble length %d", lb, n)
		}
	}
	if lb := lowerBound(NewCube()); lb != 0 {
		t.Errorf("lowerBound of solved cube = %d, want 0", lb)
	}
}
