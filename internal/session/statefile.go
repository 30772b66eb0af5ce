package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubesolver"
)

// persistedState is the JSON layout of the state file: the cube as a
// per-face array of single-character color codes, plus the move
// history in standard notation.
type persistedState struct {
	Faces   map[string][]string `json:"faces"`
	History string              `json:"history,omitempty"`
}

// StateFile persists one cube between CLI invocations.
type StateFile struct {
	path string
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubesolver")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a state file manager for the given path.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path), nil
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// faceOrder maps the JSON face keys to model faces.
var faceOrder = []struct {
	key  string
	face cubesolver.CubeFace
}{
	{"U", cubesolver.CubeFaceU},
	{"D", cubesolver.CubeFaceD},
	{"F", cubesolver.CubeFaceF},
	{"B", cubesolver.CubeFaceB},
	{"R", cubesolver.CubeFaceR},
	{"L", cubesolver.CubeFaceL},
}

// Save writes the tracker's cube and history to the state file.
func (sf *StateFile) Save(tr *cubesolver.Tracker) error {
	state := persistedState{
		Faces:   make(map[string][]string, 6),
		History: cubesolver.FormatMoves(tr.History()),
	}
	cube := tr.Cube()
	for _, fo := range faceOrder {
		colors := cube.FaceColors(fo.face)
		codes := make([]string, 9)
		for i, c := range colors {
			codes[i] = c.String()
		}
		state.Faces[fo.key] = codes
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Write atomically via a temp file
	tmpPath := sf.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmpPath, sf.path); err != nil {
		return fmt.Errorf("failed to rename state file: %w", err)
	}

	return nil
}

// Load reads the state file and reconstructs a tracker. A missing file
// yields a fresh solved tracker. A file whose facelets violate the
// cube invariants is rejected with ErrInvalidState wrapped in the
// returned error; the caller decides whether to reset, never this code.
func (sf *StateFile) Load() (*cubesolver.Tracker, error) {
	data, err := os.ReadFile(sf.path)
	if os.IsNotExist(err) {
		return cubesolver.NewTracker(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	var facelets [6][9]cubesolver.Color
	for _, fo := range faceOrder {
		codes, ok := state.Faces[fo.key]
		if !ok || len(codes) != 9 {
			return nil, fmt.Errorf("state file face %s: %w", fo.key, cubesolver.ErrInvalidState)
		}
		for i, code := range codes {
			color, err := cubesolver.ParseColor(code)
			if err != nil {
				return nil, fmt.Errorf("state file face %s: %w", fo.key, err)
			}
			facelets[fo.face][i] = color
		}
	}

	// Prefer replaying the history: it restores both the cube and the
	// tracker's move log. Fall back to adopting the raw facelets when
	// there is no history or it disagrees with them.
	if state.History != "" {
		if moves, err := cubesolver.ParseMoves(state.History); err == nil {
			tr := cubesolver.NewTracker()
			tr.ApplyMoves(moves)
			if tr.Cube().Facelets == facelets {
				return tr, nil
			}
		}
	}

	tr := cubesolver.NewTracker()
	if err := tr.Cube().SetFacelets(facelets); err != nil {
		return nil, fmt.Errorf("state file: %w", err)
	}
	return tr, nil
}

// Remove deletes the state file. Removing a missing file is a no-op.
func (sf *StateFile) Remove() error {
	err := os.Remove(sf.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
