// Package session owns cube state on behalf of drivers: an in-memory
// store of independent per-session cubes, and a state file that
// persists one cube between CLI invocations.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubesolver"
)

// Store holds one independently owned Tracker per session ID.
// It replaces the ad-hoc global session map pattern: lifecycle
// (creation, eviction) is explicit and owned by the driver.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*cubesolver.Tracker
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*cubesolver.Tracker)}
}

// Create adds a new session with a solved cube and returns its ID.
func (s *Store) Create() string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = cubesolver.NewTracker()
	s.mu.Unlock()
	return id
}

// Get returns the tracker for a session, or ErrNoActiveCube if the
// session does not exist. The tracker is owned by a single call path
// at a time; the store does not serialize access to it.
func (s *Store) Get(id string) (*cubesolver.Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr, ok := s.sessions[id]
	if !ok {
		return nil, cubesolver.ErrNoActiveCube
	}
	return tr, nil
}

// Delete evicts a session. Deleting a missing session is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// IDs returns the live session IDs in unspecified order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}
