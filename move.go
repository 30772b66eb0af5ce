package cubesolver

import "strings"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move with face and turn direction.
// The 18 legal moves are the 6 faces times {CW, CCW, Double}.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidMove if the token is outside the 18-move alphabet.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidMove
	}

	// Extract face
	faceChar := s[0]
	var face Face
	switch faceChar {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidMove
	}

	// Extract turn
	turn := CW // Default is clockwise
	if len(s) > 1 {
		suffix := s[1:]
		switch suffix {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // Same as 180
		default:
			return Move{}, ErrInvalidMove
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Any invalid token fails the whole parse with ErrInvalidMove; a
// sequence is never silently shortened.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the inverse of a move sequence: reversed order
// with each move inverted. Applying a sequence followed by its inverse
// is the identity.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// Merge combines two same-face moves into one, or nil if they cancel.
// Returns ok=false when the moves are on different faces.
func (m Move) Merge(other Move) (merged *Move, ok bool) {
	if m.Face != other.Face {
		return nil, false
	}

	combined := int(m.Turn) + int(other.Turn)
	// Normalize net quarter turns to [-1, 2]
	combined = ((combined % 4) + 4) % 4
	if combined == 3 {
		combined = -1
	}

	if combined == 0 {
		return nil, true // Moves cancel out
	}

	return &Move{Face: m.Face, Turn: Turn(combined)}, true
}

// Optimize collapses consecutive same-face moves into their net rotation
// (a run summing to zero quarter turns is dropped entirely). The result
// has the same effect on any cube as the input, and optimizing an
// already-optimized sequence returns it unchanged.
func Optimize(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, m)
		// Fold the tail while the last two moves share a face; a drop
		// can expose a new same-face pair (e.g. R U U' R').
		for len(out) >= 2 && out[len(out)-1].Face == out[len(out)-2].Face {
			merged, _ := out[len(out)-2].Merge(out[len(out)-1])
			out = out[:len(out)-2]
			if merged != nil {
				out = append(out, *merged)
			}
		}
	}
	return out
}
