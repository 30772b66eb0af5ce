// Package cubesolver models a 3x3x3 Rubik's cube and computes move
// sequences that return a scrambled cube to the solved state.
//
// # Features
//
//   - Facelet-level cube model with validation and solved detection
//   - The full 18-move alphabet with notation parsing and sequence
//     inversion/optimization
//   - Constrained random scrambling with an injectable random source
//   - An iterative-deepening search solver with verified solutions,
//     node budgets, and cooperative cancellation
//   - Layer-by-layer progress detection
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := cubesolver.NewCube()
//	scramble := cubesolver.Scramble(cube, 6, nil)
//	fmt.Println("Scramble:", cubesolver.FormatMoves(scramble))
//
//	result := cubesolver.Solve(context.Background(), cube)
//	if result.Solved() {
//	    cube.ApplyMoves(result.Solution)
//	    fmt.Println("Solution:", cubesolver.FormatMoves(result.Solution))
//	}
//
// # Ownership
//
// Cube is a value type: the solver never mutates its input, and all
// read snapshots (FaceColors, Tracker.History) are copies. Callers
// that need an independent working cube call Clone explicitly.
package cubesolver
