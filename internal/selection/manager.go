package selection

import (
	"fmt"

	"github.com/atomicstack/tower-picker/internal/catalog"
	"github.com/atomicstack/tower-picker/internal/logging/events"
)

// Manager applies filter changes to sessions and samples teams. One Manager
// serves any number of sessions; it holds no per-session state.
type Manager struct {
	catalog *catalog.Catalog
	source  Source
}

// NewManager binds a manager to a catalog. A nil source uses NewSource(0).
func NewManager(c *catalog.Catalog, src Source) *Manager {
	if src == nil {
		src = NewSource(0)
	}
	return &Manager{catalog: c, source: src}
}

// Catalog returns the catalog the manager filters.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Initialize fills whichever session fields are still absent: every
// category, the towers they make available, and all of those towers as the
// selection. Populated fields are left alone.
func (m *Manager) Initialize(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.categories == nil {
		s.categories = m.catalog.Names()
	}
	if s.available == nil {
		s.available = DeriveAvailable(m.catalog, s.categories)
	}
	if s.selected == nil {
		s.selected = DeriveDefaultSelection(s.available)
	}
}

// SetCategories replaces the category filter and resets the tower
// selection to everything the new categories make available.
func (m *Manager) SetCategories(s *Session, categories []string) error {
	for _, name := range categories {
		if !m.catalog.Has(name) {
			events.Selection.Rejected(s.ID.String(), "categories", name)
			return fmt.Errorf("%w: %q", ErrInvalidCategory, name)
		}
	}
	normalized := normalizeCategories(m.catalog, categories)
	available := DeriveAvailable(m.catalog, normalized)

	s.mu.Lock()
	s.categories = normalized
	s.available = available
	s.selected = DeriveDefaultSelection(available)
	s.mu.Unlock()

	events.Selection.Categories(s.ID.String(), normalized, len(available))
	return nil
}

// SetItems narrows the tower selection. Every tower must be currently
// available and may appear only once; on error the session is unchanged.
func (m *Manager) SetItems(s *Session, items []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	allowed := make(map[string]struct{}, len(s.available))
	for _, item := range s.available {
		allowed[item] = struct{}{}
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := allowed[item]; !ok {
			events.Selection.Rejected(s.ID.String(), "towers", item)
			return fmt.Errorf("%w: %q", ErrItemNotAvailable, item)
		}
		if _, dup := seen[item]; dup {
			events.Selection.Rejected(s.ID.String(), "towers", item)
			return fmt.Errorf("%w: %q listed more than once", ErrItemNotAvailable, item)
		}
		seen[item] = struct{}{}
	}
	s.selected = cloneStrings(items)
	if s.selected == nil {
		s.selected = []string{}
	}
	events.Selection.Towers(s.ID.String(), len(s.selected))
	return nil
}

// Reset restores every category and every tower.
func (m *Manager) Reset(s *Session) {
	names := m.catalog.Names()
	available := DeriveAvailable(m.catalog, names)

	s.mu.Lock()
	s.categories = names
	s.available = available
	s.selected = DeriveDefaultSelection(available)
	s.mu.Unlock()

	events.Selection.Reset(s.ID.String())
}

// TeamSizeRange returns the inclusive bounds SampleTeam accepts. The upper
// bound is one less than the selection size, so max < min when fewer than
// two towers are selected.
func (m *Manager) TeamSizeRange(s *Session) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 1, len(s.selected) - 1
}

// SampleTeam draws size distinct towers uniformly at random from the
// session's selection. The session is not modified.
func (m *Manager) SampleTeam(s *Session, size int) ([]string, error) {
	s.mu.Lock()
	pool := cloneStrings(s.selected)
	s.mu.Unlock()

	if size < 1 || size > len(pool)-1 {
		events.Team.Rejected(s.ID.String(), size, len(pool))
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidTeamSize, size, len(pool)-1)
	}
	team := sample(m.source, pool, size)
	events.Team.Generated(s.ID.String(), team)
	return team, nil
}
