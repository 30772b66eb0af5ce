package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceletStyles maps each sticker color to a styled cell.
var faceletStyles = map[cubesolver.Color]lipgloss.Style{
	cubesolver.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	cubesolver.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
	cubesolver.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	cubesolver.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
	cubesolver.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubesolver.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
}

func renderFacelet(c cubesolver.Color) string {
	style, ok := faceletStyles[c]
	if !ok {
		return " ? "
	}
	return style.Render(fmt.Sprintf(" %s ", c))
}

func renderFaceRow(cb *cubesolver.Cube, face cubesolver.CubeFace, row int) string {
	colors := cb.FaceColors(face)
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(renderFacelet(colors[row*3+col]))
	}
	return b.String()
}

// renderCube draws the cube as an unfolded net:
//
//	      U
//	L  F  R  B
//	      D
func renderCube(cb *cubesolver.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 9)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderFaceRow(cb, cubesolver.CubeFaceU, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(renderFaceRow(cb, cubesolver.CubeFaceL, row))
		b.WriteString(renderFaceRow(cb, cubesolver.CubeFaceF, row))
		b.WriteString(renderFaceRow(cb, cubesolver.CubeFaceR, row))
		b.WriteString(renderFaceRow(cb, cubesolver.CubeFaceB, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderFaceRow(cb, cubesolver.CubeFaceD, row))
		b.WriteString("\n")
	}

	return b.String()
}

// renderProgress summarizes solve progress in one line.
func renderProgress(cb *cubesolver.Cube) string {
	if cb.IsSolved() {
		return phaseStyle.Render("SOLVED")
	}
	return fmt.Sprintf("%s (%.0f%% solved)",
		phaseStyle.Render(cb.DetectPhase().DisplayName()),
		cb.SolvePercent())
}
