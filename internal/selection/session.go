// Package selection owns per-session filter state (selected categories,
// the towers they make available, and the user's narrowed tower list) and
// draws random teams from it.
package selection

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrItemNotAvailable = errors.New("tower not available")
	ErrInvalidTeamSize  = errors.New("invalid team size")
)

// Session is the mutable filter state for one user session. A nil slice
// means the field has not been populated yet; an explicitly empty
// selection is stored as a non-nil empty slice.
//
// Fields are only changed through Manager, which holds mu for the whole
// transition.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	categories []string
	available  []string
	selected   []string
}

// NewSession returns an unpopulated session with a fresh identifier.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// Snapshot is a point-in-time copy of a session for display.
type Snapshot struct {
	ID         uuid.UUID
	Categories []string
	Available  []string
	Selected   []string
}

// Snapshot copies the session fields.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:         s.ID,
		Categories: cloneStrings(s.categories),
		Available:  cloneStrings(s.available),
		Selected:   cloneStrings(s.selected),
	}
}

// IsSelected reports whether item is in the snapshot's selected towers.
func (s Snapshot) IsSelected(item string) bool {
	return contains(s.Selected, item)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
