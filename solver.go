package cubesolver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// SolveStatus reports the outcome of a solve attempt.
type SolveStatus int

const (
	// StatusFound means a verified solution sequence was discovered.
	StatusFound SolveStatus = iota

	// StatusExhausted means no solution was found within the configured
	// depth, node budget, or before cancellation. This is an expected
	// outcome, not an error; callers may retry with a larger budget.
	StatusExhausted
)

func (s SolveStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// SolveStats carries basic search statistics.
type SolveStats struct {
	DepthReached int   // deepest completed or attempted iteration
	NodesVisited int64 // total nodes expanded across all iterations
}

// SolveResult is the outcome of Solver.Solve.
type SolveResult struct {
	Status   SolveStatus
	Solution []Move // nil unless Status == StatusFound
	Stats    SolveStats
}

// Solved reports whether a solution was found.
func (r SolveResult) Solved() bool {
	return r.Status == StatusFound
}

// Solver finds a move sequence returning a scrambled cube to the
// solved state using iterative-deepening depth-first search over the
// 18-move alphabet.
type Solver struct {
	cfg *config
}

// NewSolver creates a solver with the given options.
func NewSolver(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cfg: cfg}
}

// Solve is a convenience wrapper around NewSolver(opts...).Solve.
func Solve(ctx context.Context, c *Cube, opts ...Option) SolveResult {
	return NewSolver(opts...).Solve(ctx, c)
}

// Solve searches for a sequence of moves that solves the cube.
//
// The caller's cube is never mutated: the search runs on private
// clones, and a discovered sequence is verified by replaying it on a
// fresh clone before it is returned. An already-solved cube returns
// StatusFound with an empty solution and zero nodes visited.
//
// Cancellation is cooperative: ctx and the node budget are inspected
// every checkInterval nodes, and a cancelled or exhausted search
// reports StatusExhausted with partial statistics.
func (s *Solver) Solve(ctx context.Context, c *Cube) SolveResult {
	if c.IsSolved() {
		return SolveResult{Status: StatusFound, Solution: []Move{}}
	}

	st := &search{
		ctx:           ctx,
		nodeBudget:    s.cfg.nodeBudget,
		checkInterval: s.cfg.checkInterval,
	}

	var depthReached int
	for depth := 1; depth <= s.cfg.maxDepth; depth++ {
		depthReached = depth

		var solution []Move
		var found bool
		if s.cfg.workers > 1 {
			solution, found = s.searchDepthParallel(c, depth, st)
		} else {
			work := c.Clone()
			path := make([]Move, 0, depth)
			solution, found = dfs(work, depth, path, "", st)
		}

		if found {
			verify := c.Clone()
			verify.ApplyMoves(solution)
			if !verify.IsSolved() {
				// A sequence that fails verification means the move
				// engine violated its own invariants.
				panic(fmt.Sprintf("cubesolver: unverified solution %q", FormatMoves(solution)))
			}
			return SolveResult{
				Status:   StatusFound,
				Solution: solution,
				Stats:    SolveStats{DepthReached: depth, NodesVisited: st.nodes.Load()},
			}
		}

		if st.stop.Load() {
			break
		}
	}

	return SolveResult{
		Status: StatusExhausted,
		Stats:  SolveStats{DepthReached: depthReached, NodesVisited: st.nodes.Load()},
	}
}

// search holds the shared bookkeeping of one Solve call. Workers only
// touch it through atomics, so first-ply branches can run in parallel.
type search struct {
	ctx           context.Context
	nodeBudget    int64
	checkInterval int64
	nodes         atomic.Int64
	stop          atomic.Bool
}

// visit counts a node and reports whether the search may continue.
func (st *search) visit() bool {
	n := st.nodes.Add(1)
	if n%st.checkInterval == 0 {
		if st.nodeBudget > 0 && n >= st.nodeBudget {
			st.stop.Store(true)
		}
		if st.ctx != nil {
			select {
			case <-st.ctx.Done():
				st.stop.Store(true)
			default:
			}
		}
	}
	return !st.stop.Load()
}

// oppositeFace maps each face to the face on the opposite side of the cube.
var oppositeFace = map[Face]Face{
	FaceU: FaceD, FaceD: FaceU,
	FaceF: FaceB, FaceB: FaceF,
	FaceR: FaceL, FaceL: FaceR,
}

// faceRank fixes an arbitrary order per axis so that of the two
// interchangeable orderings of opposite-face moves (U D vs D U) only
// one is explored.
var faceRank = map[Face]int{
	FaceU: 0, FaceD: 1,
	FaceF: 2, FaceB: 3,
	FaceR: 4, FaceL: 5,
}

// skipMove prunes successors that can never be part of a canonical
// solution: a repeat of the previous face (same-face runs should have
// been coalesced) and the non-canonical ordering of two opposite-face
// moves (they commute, so one ordering suffices).
func skipMove(m Move, last Face) bool {
	if last == "" {
		return false
	}
	if m.Face == last {
		return true
	}
	return oppositeFace[m.Face] == last && faceRank[m.Face] < faceRank[last]
}

// lowerBound is an admissible estimate of the moves still needed: a
// single turn repositions at most 20 facelets, so a cube with n
// facelets off their center color needs at least ceil(n/20) moves.
func lowerBound(c *Cube) int {
	misplaced := 0
	for face := CubeFace(0); face < 6; face++ {
		center := c.Facelets[face][4]
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != center {
				misplaced++
			}
		}
	}
	return (misplaced + 19) / 20
}

// dfs runs a depth-bounded search on c, mutating it in place and
// undoing each move on backtrack. path holds the moves applied so far;
// last is the face of the most recent move ("" at the root).
func dfs(c *Cube, depth int, path []Move, last Face, st *search) ([]Move, bool) {
	if lowerBound(c) > depth {
		return nil, false
	}

	for _, m := range AllMoves {
		if skipMove(m, last) {
			continue
		}
		if !st.visit() {
			return nil, false
		}

		c.ApplyMove(m)
		path = append(path, m)

		if c.IsSolved() {
			solution := make([]Move, len(path))
			copy(solution, path)
			return solution, true
		}
		if depth > 1 {
			if solution, found := dfs(c, depth-1, path, m.Face, st); found {
				return solution, true
			}
		}

		path = path[:len(path)-1]
		c.ApplyMove(m.Inverse())
	}

	return nil, false
}

// searchDepthParallel explores one depth iteration with the first-ply
// branches distributed across workers. Each branch is searched on its
// own clone, so workers share nothing but the atomic counters in st.
func (s *Solver) searchDepthParallel(c *Cube, depth int, st *search) ([]Move, bool) {
	branches := make(chan Move, len(AllMoves))
	for _, m := range AllMoves {
		branches <- m
	}
	close(branches)

	results := make(chan []Move, 1)
	var wg sync.WaitGroup

	for w := 0; w < s.cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range branches {
				if st.stop.Load() {
					return
				}
				if !st.visit() {
					return
				}

				work := c.Clone()
				work.ApplyMove(m)
				path := make([]Move, 1, depth)
				path[0] = m

				var solution []Move
				var found bool
				if work.IsSolved() {
					solution, found = path, true
				} else if depth > 1 {
					solution, found = dfs(work, depth-1, path, m.Face, st)
				}

				if found {
					// Stop the other workers; only the first result is kept.
					st.stop.Store(true)
					select {
					case results <- solution:
					default:
					}
					return
				}
			}
		}()
	}

	wg.Wait()

	select {
	case solution := <-results:
		// A worker win is not a global stop reason for later iterations.
		st.stop.Store(false)
		return solution, true
	default:
		return nil, false
	}
}
