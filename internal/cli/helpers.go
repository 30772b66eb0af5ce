package cli

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/session"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

// openDB opens the history database and applies pending migrations.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// stateFile resolves the cube state file used to persist the cube
// between invocations.
func stateFile() (*session.StateFile, error) {
	path := statePath
	if path == "" {
		var err error
		path, err = session.DefaultStatePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve state path: %w", err)
		}
	}
	return session.NewStateFile(path), nil
}

// loadTracker loads the persisted cube, or a solved cube when no
// state exists yet.
func loadTracker() (*cubesolver.Tracker, *session.StateFile, error) {
	sf, err := stateFile()
	if err != nil {
		return nil, nil, err
	}
	tracker, err := sf.Load()
	if err != nil {
		return nil, nil, err
	}
	return tracker, sf, nil
}

// formatDuration renders a duration compactly for table output.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
