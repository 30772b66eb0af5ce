package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI for playing with the cube. Type moves in
standard notation and press Enter to apply them.

Keyboard shortcuts:
  <moves> Enter - Apply a move sequence (e.g. R U R' U')
  ctrl+s        - Scramble the cube
  ctrl+f        - Search for a solution (max depth 8)
  ctrl+r        - Reset to solved
  ctrl+z        - Undo the last move
  q/Esc         - Quit (state is saved)`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Messages
type solveDoneMsg struct {
	result  cubesolver.SolveResult
	elapsed time.Duration
}

type playModel struct {
	tracker   *cubesolver.Tracker
	stateFile *session.StateFile

	input      string
	lastAction string
	solving    bool
	solution   []cubesolver.Move

	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(tracker *cubesolver.Tracker, sf *session.StateFile) *playModel {
	return &playModel{
		tracker:   tracker,
		stateFile: sf,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.solving {
			// Only allow quitting while the solver is running.
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if err := m.stateFile.Save(m.tracker); err != nil {
				m.err = err
			}
			return m, tea.Quit

		case "enter":
			if m.input != "" {
				m.applyInput()
			}

		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		case "ctrl+s":
			m.scramble()

		case "ctrl+f":
			m.solving = true
			m.err = nil
			return m, m.startSolve()

		case "ctrl+r":
			m.tracker.Reset()
			m.solution = nil
			m.err = nil
			m.lastAction = "Reset to solved"

		case "ctrl+z":
			m.undo()

		default:
			// Accumulate move notation characters.
			s := msg.String()
			if len(s) == 1 && strings.ContainsAny(s, "UDFBRLudfbrl2' `") {
				m.input += s
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case solveDoneMsg:
		m.solving = false
		if msg.result.Solved() {
			m.solution = msg.result.Solution
			m.lastAction = fmt.Sprintf("Solution found in %s (%d nodes)",
				formatDuration(msg.elapsed), msg.result.Stats.NodesVisited)
		} else {
			m.solution = nil
			m.lastAction = fmt.Sprintf("No solution within depth bound (%d nodes, %s)",
				msg.result.Stats.NodesVisited, formatDuration(msg.elapsed))
		}
	}

	return m, nil
}

func (m *playModel) applyInput() {
	moves, err := cubesolver.ParseMoves(m.input)
	if err != nil {
		m.err = err
		return
	}
	m.tracker.ApplyMoves(moves)
	m.lastAction = fmt.Sprintf("Applied %s", cubesolver.FormatMoves(moves))
	m.input = ""
	m.solution = nil
	m.err = nil
}

func (m *playModel) scramble() {
	scratch := m.tracker.Cube().Clone()
	seq := cubesolver.Scramble(scratch, 20, nil)
	m.tracker.ApplyMoves(seq)
	m.lastAction = fmt.Sprintf("Scrambled: %s", cubesolver.FormatMoves(seq))
	m.solution = nil
	m.err = nil
}

func (m *playModel) undo() {
	history := m.tracker.History()
	if len(history) == 0 {
		return
	}
	last := history[len(history)-1]
	m.tracker.ApplyMove(last.Inverse())
	m.lastAction = fmt.Sprintf("Undid %s", last.Notation())
	m.solution = nil
}

func (m *playModel) startSolve() tea.Cmd {
	cb := m.tracker.Cube().Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		start := time.Now()
		result := cubesolver.Solve(ctx, cb, cubesolver.WithMaxDepth(8))
		return solveDoneMsg{result: result, elapsed: time.Since(start)}
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "State saved. Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Solver"))
	b.WriteString("\n\n")

	b.WriteString(renderCube(m.tracker.Cube()))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Phase: %s\n", renderProgress(m.tracker.Cube())))
	b.WriteString(fmt.Sprintf("Moves applied: %d\n", len(m.tracker.History())))
	b.WriteString("\n")

	if m.solving {
		b.WriteString(phaseStyle.Render("Searching for a solution..."))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("Moves: %s\n", moveStyle.Render(m.input+"_")))
	}

	if m.lastAction != "" {
		b.WriteString(statusStyle.Render(m.lastAction))
		b.WriteString("\n")
	}
	if len(m.solution) > 0 {
		b.WriteString(fmt.Sprintf("Solution: %s\n", moveStyle.Render(cubesolver.FormatMoves(m.solution))))
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Type moves + Enter | ctrl+s=scramble ctrl+f=solve ctrl+z=undo ctrl+r=reset q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	tracker, sf, err := loadTracker()
	if err != nil {
		return err
	}

	model := newPlayModel(tracker, sf)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Persist whatever state the session ended with.
	return sf.Save(tracker)
}
