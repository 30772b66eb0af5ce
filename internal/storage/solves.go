package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents one recorded solve attempt.
type Solve struct {
	SolveID      string
	CreatedAt    time.Time
	ScrambleText string
	SolutionText string
	Status       string // "found" or "exhausted"
	MoveCount    int
	DepthReached int
	NodesVisited int64
	DurationMs   int64
}

// SolveRepository provides CRUD operations for solve attempts.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record stores a solve attempt and returns its generated ID.
func (r *SolveRepository) Record(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()
	if !s.CreatedAt.IsZero() {
		createdAt = s.CreatedAt.UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble_text, solution_text,
			status, move_count, depth_reached, nodes_visited, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.ScrambleText, s.SolutionText,
		s.Status, s.MoveCount, s.DepthReached, s.NodesVisited, s.DurationMs)

	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil when not found.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble_text, solution_text,
			status, move_count, depth_reached, nodes_visited, duration_ms
		FROM solves WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble_text, solution_text,
			status, move_count, depth_reached, nodes_visited, duration_ms
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	return solves, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string
	err := row.Scan(&s.SolveID, &createdAt, &s.ScrambleText, &s.SolutionText,
		&s.Status, &s.MoveCount, &s.DepthReached, &s.NodesVisited, &s.DurationMs)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &s, nil
}
