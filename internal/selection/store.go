package selection

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps the live sessions of a process, each isolated from the
// others. Only the catalog behind the manager is shared.
type Store struct {
	manager *Manager

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty store whose sessions are initialised by m.
func NewStore(m *Manager) *Store {
	return &Store{manager: m, sessions: make(map[uuid.UUID]*Session)}
}

// Manager returns the manager that owns session transitions.
func (s *Store) Manager() *Manager {
	return s.manager
}

// Open starts a new initialised session.
func (s *Store) Open() *Session {
	sess := NewSession()
	s.manager.Initialize(sess)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Close discards a session. Closing an unknown id is a no-op.
func (s *Store) Close(id uuid.UUID) {
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
