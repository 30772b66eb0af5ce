package cubesolver

import "fmt"

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ParseColor converts a single-character color code back into a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "W":
		return White, nil
	case "Y":
		return Yellow, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	case "R":
		return Red, nil
	case "O":
		return Orange, nil
	default:
		return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidState, s)
	}
}

// CubeFace represents a cube face for the cube model.
// This is distinct from Face which is used for move notation.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	case CubeFaceL:
		return Orange
	default:
		return White
	}
}

// Reset returns the cube to the solved configuration.
func (c *Cube) Reset() {
	for face := CubeFace(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Facelets = c.Facelets
	return clone
}

// Equal reports whether two cubes have identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets == other.Facelets
}

// IsSolved returns true if the cube is in the solved state.
// A cube is solved when every facelet matches its face's center color.
func (c *Cube) IsSolved() bool {
	for face := CubeFace(0); face < 6; face++ {
		center := c.Facelets[face][4]
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != center {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural invariants of the cube state:
// exactly 9 facelets of each of the 6 colors, and fixed center colors.
// Returns ErrInvalidState (wrapped with detail) on violation.
//
// Intended for boundary validation of externally supplied states; a
// correct move engine preserves these invariants, so internal code
// does not re-validate after every move.
func (c *Cube) Validate() error {
	var counts [6]int
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			col := c.Facelets[face][i]
			if col > Orange {
				return fmt.Errorf("%w: face %s position %d has unknown color %d",
					ErrInvalidState, CubeFace(face), i, col)
			}
			counts[col]++
		}
	}
	for col := Color(0); col <= Orange; col++ {
		if counts[col] != 9 {
			return fmt.Errorf("%w: color %s appears %d times, want 9",
				ErrInvalidState, col, counts[col])
		}
	}
	for face := CubeFace(0); face < 6; face++ {
		if c.Facelets[face][4] != faceToSolvedColor(face) {
			return fmt.Errorf("%w: face %s center is %s, want %s",
				ErrInvalidState, face, c.Facelets[face][4], faceToSolvedColor(face))
		}
	}
	return nil
}

// FaceColors returns a read-only snapshot of one face's 9 facelets.
// The returned array is a copy; mutating it does not affect the cube.
func (c *Cube) FaceColors(face CubeFace) [9]Color {
	return c.Facelets[face]
}

// SetFacelets replaces the cube's state with the given facelets after
// validating them. On ErrInvalidState the cube is left unchanged; the
// caller decides how to handle a rejected state (never auto-reset).
func (c *Cube) SetFacelets(facelets [6][9]Color) error {
	candidate := Cube{Facelets: facelets}
	if err := candidate.Validate(); err != nil {
		return err
	}
	c.Facelets = facelets
	return nil
}

// rotateFaceCW rotates a face 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face CubeFace) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// rotateFaceCCW rotates a face 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face CubeFace) {
	f := &c.Facelets[face]
	// Corner rotation: 0->6->8->2->0
	// Edge rotation: 1->3->7->5->1
	temp := f[0]
	f[0] = f[2]
	f[2] = f[8]
	f[8] = f[6]
	f[6] = temp

	temp = f[1]
	f[1] = f[5]
	f[5] = f[7]
	f[7] = f[3]
	f[3] = temp
}

// MoveFace applies a move to the cube using CubeFace.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees
func (c *Cube) MoveFace(face CubeFace, turn int) {
	switch turn {
	case 1: // CW
		c.moveCW(face)
	case -1: // CCW
		c.moveCCW(face)
	case 2: // 180 is canonically two quarter turns
		c.moveCW(face)
		c.moveCW(face)
	}
}

// moveCW applies a clockwise move.
func (c *Cube) moveCW(face CubeFace) {
	c.rotateFaceCW(face)
	c.cycleEdgesCW(face)
}

// moveCCW applies a counter-clockwise move.
func (c *Cube) moveCCW(face CubeFace) {
	c.rotateFaceCCW(face)
	c.cycleEdgesCCW(face)
}

// cycleEdgesCW cycles the side-strip facelets around a face (clockwise).
// The per-face index tables are explicit: inferring the mirrored-face
// index reversals is the most error-prone part of the whole model.
func (c *Cube) cycleEdgesCW(face CubeFace) {
	switch face {
	case CubeFaceU:
		// U affects F, L, B, R top rows
		c.cycle4Edge(
			int(CubeFaceF), []int{0, 1, 2},
			int(CubeFaceL), []int{0, 1, 2},
			int(CubeFaceB), []int{0, 1, 2},
			int(CubeFaceR), []int{0, 1, 2},
		)
	case CubeFaceD:
		// D affects F, R, B, L bottom rows (opposite direction)
		c.cycle4Edge(
			int(CubeFaceF), []int{6, 7, 8},
			int(CubeFaceR), []int{6, 7, 8},
			int(CubeFaceB), []int{6, 7, 8},
			int(CubeFaceL), []int{6, 7, 8},
		)
	case CubeFaceF:
		// F affects U bottom, R left, D top, L right
		c.cycle4Edge(
			int(CubeFaceU), []int{6, 7, 8},
			int(CubeFaceR), []int{0, 3, 6},
			int(CubeFaceD), []int{2, 1, 0},
			int(CubeFaceL), []int{8, 5, 2},
		)
	case CubeFaceB:
		// B affects U top, L left, D bottom, R right
		c.cycle4Edge(
			int(CubeFaceU), []int{2, 1, 0},
			int(CubeFaceL), []int{0, 3, 6},
			int(CubeFaceD), []int{6, 7, 8},
			int(CubeFaceR), []int{8, 5, 2},
		)
	case CubeFaceR:
		// R affects U right, B left, D right, F right
		c.cycle4Edge(
			int(CubeFaceU), []int{2, 5, 8},
			int(CubeFaceB), []int{6, 3, 0},
			int(CubeFaceD), []int{2, 5, 8},
			int(CubeFaceF), []int{2, 5, 8},
		)
	case CubeFaceL:
		// L affects U left, F left, D left, B right
		c.cycle4Edge(
			int(CubeFaceU), []int{0, 3, 6},
			int(CubeFaceF), []int{0, 3, 6},
			int(CubeFaceD), []int{0, 3, 6},
			int(CubeFaceB), []int{8, 5, 2},
		)
	}
}

// cycleEdgesCCW cycles the side-strip facelets around a face (counter-clockwise).
func (c *Cube) cycleEdgesCCW(face CubeFace) {
	// CCW is CW three times
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
}

// cycle4Edge cycles 4 triples of facelets with arbitrary indices.
func (c *Cube) cycle4Edge(f1 int, i1 []int, f2 int, i2 []int, f3 int, i3 []int, f4 int, i4 []int) {
	// Save first triple
	t := [3]Color{
		c.Facelets[f1][i1[0]],
		c.Facelets[f1][i1[1]],
		c.Facelets[f1][i1[2]],
	}

	// 1 <- 4
	c.Facelets[f1][i1[0]] = c.Facelets[f4][i4[0]]
	c.Facelets[f1][i1[1]] = c.Facelets[f4][i4[1]]
	c.Facelets[f1][i1[2]] = c.Facelets[f4][i4[2]]

	// 4 <- 3
	c.Facelets[f4][i4[0]] = c.Facelets[f3][i3[0]]
	c.Facelets[f4][i4[1]] = c.Facelets[f3][i3[1]]
	c.Facelets[f4][i4[2]] = c.Facelets[f3][i3[2]]

	// 3 <- 2
	c.Facelets[f3][i3[0]] = c.Facelets[f2][i2[0]]
	c.Facelets[f3][i3[1]] = c.Facelets[f2][i2[1]]
	c.Facelets[f3][i3[2]] = c.Facelets[f2][i2[2]]

	// 2 <- 1 (saved)
	c.Facelets[f2][i2[0]] = t[0]
	c.Facelets[f2][i2[1]] = t[1]
	c.Facelets[f2][i2[2]] = t[2]
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[CubeFaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				result += c.Facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[CubeFaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}

// ApplyMove applies a Move to the cube.
func (c *Cube) ApplyMove(m Move) {
	face := moveFaceToCubeFace(m.Face)
	turn := int(m.Turn)
	c.MoveFace(face, turn)
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ExecuteMove parses a notation token and applies it to the cube.
// An invalid token returns ErrInvalidMove and leaves the cube unchanged.
func (c *Cube) ExecuteMove(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		return err
	}
	c.ApplyMove(m)
	return nil
}

// CountSolvedFacelets returns, per face, how many facelets match that
// face's center color.
func (c *Cube) CountSolvedFacelets() [6]int {
	var counts [6]int
	for face := CubeFace(0); face < 6; face++ {
		center := c.Facelets[face][4]
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] == center {
				counts[face]++
			}
		}
	}
	return counts
}

// SolvePercent returns the percentage of facelets matching their center.
func (c *Cube) SolvePercent() float64 {
	total := 0
	for _, n := range c.CountSolvedFacelets() {
		total += n
	}
	return float64(total) / 54.0 * 100.0
}

// moveFaceToCubeFace converts Face to CubeFace.
func moveFaceToCubeFace(f Face) CubeFace {
	switch f {
	case FaceU:
		return CubeFaceU
	case FaceD:
		return CubeFaceD
	case FaceF:
		return CubeFaceF
	case FaceB:
		return CubeFaceB
	case FaceR:
		return CubeFaceR
	case FaceL:
		return CubeFaceL
	default:
		return CubeFaceU
	}
}
