package cubesolver

// Layer-by-layer progress detection.
// Standard orientation: White on top (U), Green in front (F).
// Used for reporting how much of a scrambled cube is already solved;
// the solver itself does not depend on these checks.

// Phase represents how far a cube has progressed through the
// layer-by-layer method, ordered from Scrambled (0) to Solved.
type Phase int

const (
	PhaseScrambled Phase = iota
	PhaseWhiteCross
	PhaseFirstLayer
	PhaseMiddleLayer
	PhaseBottomCross
	PhaseCornersPositioned
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseBottomCross:
		return "bottom_cross"
	case PhaseCornersPositioned:
		return "corners_positioned"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseMiddleLayer:
		return "Middle Layer"
	case PhaseBottomCross:
		return "Bottom Cross"
	case PhaseCornersPositioned:
		return "Corners Positioned"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// sideFaces are the four faces adjacent to both U and D, in cycle order.
var sideFaces = []CubeFace{CubeFaceF, CubeFaceR, CubeFaceB, CubeFaceL}

// matchesCenter reports whether the given positions on a face all
// carry the face's center color.
func (c *Cube) matchesCenter(face CubeFace, positions ...int) bool {
	center := c.Facelets[face][4]
	for _, pos := range positions {
		if c.Facelets[face][pos] != center {
			return false
		}
	}
	return true
}

// IsWhiteCrossComplete checks the four white edges: white showing on
// the U face edge positions, with each edge's side color matching the
// adjacent center.
func (c *Cube) IsWhiteCrossComplete() bool {
	for _, pos := range []int{1, 3, 5, 7} {
		if c.Facelets[CubeFaceU][pos] != White {
			return false
		}
	}
	for _, face := range sideFaces {
		if !c.matchesCenter(face, 1) {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks the full top layer: white cross plus the
// four white corners positioned and oriented.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsWhiteCrossComplete() {
		return false
	}
	if !c.matchesCenter(CubeFaceU, 0, 1, 2, 3, 5, 6, 7, 8) {
		return false
	}
	for _, face := range sideFaces {
		if !c.matchesCenter(face, 0, 2) {
			return false
		}
	}
	return true
}

// IsMiddleLayerComplete checks the four middle-layer edges (positions
// 3 and 5 on each side face) on top of a complete first layer.
func (c *Cube) IsMiddleLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}
	for _, face := range sideFaces {
		if !c.matchesCenter(face, 3, 5) {
			return false
		}
	}
	return true
}

// IsBottomCrossComplete checks that the four D-face edges show yellow.
// Their side colors may still be permuted.
func (c *Cube) IsBottomCrossComplete() bool {
	if !c.IsMiddleLayerComplete() {
		return false
	}
	for _, pos := range []int{1, 3, 5, 7} {
		if c.Facelets[CubeFaceD][pos] != Yellow {
			return false
		}
	}
	return true
}

// bottomCorners lists each D-layer corner's three facelet positions
// and the color set that corner holds when correctly placed.
var bottomCorners = []struct {
	positions [3][2]int // (face, index) pairs
	colors    [3]Color
}{
	{[3][2]int{{int(CubeFaceF), 8}, {int(CubeFaceR), 6}, {int(CubeFaceD), 2}}, [3]Color{Green, Red, Yellow}},
	{[3][2]int{{int(CubeFaceR), 8}, {int(CubeFaceB), 6}, {int(CubeFaceD), 8}}, [3]Color{Red, Blue, Yellow}},
	{[3][2]int{{int(CubeFaceB), 8}, {int(CubeFaceL), 6}, {int(CubeFaceD), 6}}, [3]Color{Blue, Orange, Yellow}},
	{[3][2]int{{int(CubeFaceL), 8}, {int(CubeFaceF), 6}, {int(CubeFaceD), 0}}, [3]Color{Orange, Green, Yellow}},
}

// AreBottomCornersPositioned checks that each bottom corner carries the
// right color set, ignoring orientation.
func (c *Cube) AreBottomCornersPositioned() bool {
	if !c.IsBottomCrossComplete() {
		return false
	}
	for _, corner := range bottomCorners {
		var have, want [6]int
		for i := 0; i < 3; i++ {
			have[c.Facelets[corner.positions[i][0]][corner.positions[i][1]]]++
			want[corner.colors[i]]++
		}
		if have != want {
			return false
		}
	}
	return true
}

// DetectPhase returns the highest phase the cube state satisfies.
func (c *Cube) DetectPhase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case c.AreBottomCornersPositioned():
		return PhaseCornersPositioned
	case c.IsBottomCrossComplete():
		return PhaseBottomCross
	case c.IsMiddleLayerComplete():
		return PhaseMiddleLayer
	case c.IsFirstLayerComplete():
		return PhaseFirstLayer
	case c.IsWhiteCrossComplete():
		return PhaseWhiteCross
	default:
		return PhaseScrambled
	}
}

// Progress reports which phases the current state satisfies.
type Progress struct {
	WhiteCross        bool
	FirstLayer        bool
	MiddleLayer       bool
	BottomCross       bool
	CornersPositioned bool
	Solved            bool
}

// GetProgress returns the current progress through all phases.
func (c *Cube) GetProgress() Progress {
	return Progress{
		WhiteCross:        c.IsWhiteCrossComplete(),
		FirstLayer:        c.IsFirstLayerComplete(),
		MiddleLayer:       c.IsMiddleLayerComplete(),
		BottomCross:       c.IsBottomCrossComplete(),
		CornersPositioned: c.AreBottomCornersPositioned(),
		Solved:            c.IsSolved(),
	}
}
