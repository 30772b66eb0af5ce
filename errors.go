package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// ErrInvalidMove reports a move token outside the 18-move alphabet.
	// The cube state is left unchanged when this is returned.
	ErrInvalidMove = errors.New("cubesolver: invalid move notation")

	// ErrInvalidState reports an externally supplied cube state that
	// fails the structural or color-count invariants. The current state
	// is kept as-is; it is never silently replaced with a solved cube.
	ErrInvalidState = errors.New("cubesolver: invalid cube state")

	// ErrNoActiveCube reports an operation on a session that has no cube.
	ErrNoActiveCube = errors.New("cubesolver: no active cube")
)
