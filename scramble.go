package cubesolver

import (
	"math/rand"
	"time"
)

// Scramble applies n random moves to the cube and returns the exact
// sequence used, so the caller can audit or invert it.
//
// Move selection is uniform over the 18-move alphabet subject to two
// constraints: a move never turns the same face as the move before it,
// and no face accumulates more than ceil(n/4) moves. The per-face cap
// is soft: if the candidate set empties, the cap is dropped first and
// the no-repeat rule after that, so progress is always guaranteed.
//
// rng may be nil, in which case a time-seeded source is used. Supplying
// a seeded *rand.Rand makes the scramble reproducible.
func Scramble(c *Cube, n int, rng *rand.Rand) []Move {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	faceCap := (n + 3) / 4
	faceCount := make(map[Face]int, 6)
	var lastFace Face

	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		candidates := make([]Move, 0, len(AllMoves))
		for _, m := range AllMoves {
			if m.Face != lastFace && faceCount[m.Face] < faceCap {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			// Relax the per-face cap
			for _, m := range AllMoves {
				if m.Face != lastFace {
					candidates = append(candidates, m)
				}
			}
		}
		if len(candidates) == 0 {
			// Relax the no-repeat rule too
			candidates = AllMoves
		}

		m := candidates[rng.Intn(len(candidates))]
		c.ApplyMove(m)
		moves = append(moves, m)
		lastFace = m.Face
		faceCount[m.Face]++
	}

	return moves
}
