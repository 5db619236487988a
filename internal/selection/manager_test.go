package selection

import (
	"errors"
	"sort"
	"testing"

	"github.com/atomicstack/tower-picker/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Category{
		{Name: "Primary", Items: []string{"A", "B"}},
		{Name: "Support", Items: []string{"C"}},
	})
	require.NoError(t, err)
	return c
}

// firstSource always picks the lowest remaining index.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func newScenario(t *testing.T) (*Manager, *Session) {
	t.Helper()
	m := NewManager(scenarioCatalog(t), NewSource(42))
	s := NewSession()
	m.Initialize(s)
	return m, s
}

func TestInitializeSelectsEverything(t *testing.T) {
	_, s := newScenario(t)
	snap := s.Snapshot()

	assert.Equal(t, []string{"Primary", "Support"}, snap.Categories)
	assert.Equal(t, []string{"A", "B", "C"}, snap.Available)
	assert.Equal(t, snap.Available, snap.Selected)
}

func TestInitializeKeepsPopulatedFields(t *testing.T) {
	m := NewManager(scenarioCatalog(t), nil)
	s := &Session{categories: []string{"Support"}}
	m.Initialize(s)
	snap := s.Snapshot()
	assert.Equal(t, []string{"Support"}, snap.Categories)
	assert.Equal(t, []string{"C"}, snap.Available)
	assert.Equal(t, []string{"C"}, snap.Selected)

	s = &Session{selected: []string{}}
	m.Initialize(s)
	snap = s.Snapshot()
	assert.Equal(t, []string{"A", "B", "C"}, snap.Available)
	assert.Empty(t, snap.Selected)
	assert.NotNil(t, snap.Selected)

	m.Initialize(s)
	assert.Equal(t, snap, s.Snapshot())
}

func TestSetCategoriesDerivesInCatalogOrder(t *testing.T) {
	m, s := newScenario(t)

	require.NoError(t, m.SetCategories(s, []string{"Primary"}))
	snap := s.Snapshot()
	assert.Equal(t, []string{"A", "B"}, snap.Available)
	assert.Equal(t, []string{"A", "B"}, snap.Selected)

	require.NoError(t, m.SetCategories(s, []string{"Support", "Primary", "Support"}))
	snap = s.Snapshot()
	assert.Equal(t, []string{"Primary", "Support"}, snap.Categories)
	assert.Equal(t, []string{"A", "B", "C"}, snap.Available)
	assert.Equal(t, []string{"A", "B", "C"}, snap.Selected)

	require.NoError(t, m.SetCategories(s, nil))
	snap = s.Snapshot()
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Available)
	assert.Empty(t, snap.Selected)
}

func TestSetCategoriesResetsNarrowedSelection(t *testing.T) {
	m, s := newScenario(t)
	require.NoError(t, m.SetItems(s, []string{"C"}))
	require.NoError(t, m.SetCategories(s, []string{"Primary", "Support"}))
	assert.Equal(t, []string{"A", "B", "C"}, s.Snapshot().Selected)
}

func TestSetCategoriesRejectsUnknownWithoutChanges(t *testing.T) {
	m, s := newScenario(t)
	require.NoError(t, m.SetItems(s, []string{"B", "A"}))
	before := s.Snapshot()

	err := m.SetCategories(s, []string{"Primary", "Magic"})
	require.ErrorIs(t, err, ErrInvalidCategory)
	assert.Contains(t, err.Error(), "Magic")
	assert.Equal(t, before, s.Snapshot())
}

func TestSetItemsPreservesOrder(t *testing.T) {
	m, s := newScenario(t)
	require.NoError(t, m.SetItems(s, []string{"C", "A"}))
	assert.Equal(t, []string{"C", "A"}, s.Snapshot().Selected)
	assert.Equal(t, []string{"A", "B", "C"}, s.Snapshot().Available)

	require.NoError(t, m.SetItems(s, nil))
	assert.NotNil(t, s.Snapshot().Selected)
	assert.Empty(t, s.Snapshot().Selected)
}

func TestSetItemsRejectsUnavailable(t *testing.T) {
	m, s := newScenario(t)
	require.NoError(t, m.SetCategories(s, []string{"Primary"}))
	before := s.Snapshot()

	err := m.SetItems(s, []string{"A", "C"})
	require.ErrorIs(t, err, ErrItemNotAvailable)
	assert.Equal(t, before, s.Snapshot())

	err = m.SetItems(s, []string{"A", "A"})
	require.ErrorIs(t, err, ErrItemNotAvailable)
	assert.Equal(t, before, s.Snapshot())
}

func TestResetIsIdempotent(t *testing.T) {
	m, s := newScenario(t)
	require.NoError(t, m.SetCategories(s, []string{"Primary"}))
	require.NoError(t, m.SetItems(s, []string{"A"}))

	m.Reset(s)
	once := s.Snapshot()
	m.Reset(s)
	twice := s.Snapshot()

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"Primary", "Support"}, once.Categories)
	assert.Equal(t, []string{"A", "B", "C"}, once.Available)
	assert.Equal(t, []string{"A", "B", "C"}, once.Selected)
}

func TestSampleTeamReturnsDistinctSelectedTowers(t *testing.T) {
	c := catalog.Default()
	m := NewManager(c, NewSource(7))
	s := NewSession()
	m.Initialize(s)
	selected := s.Snapshot().Selected

	for size := 1; size < len(selected); size++ {
		team, err := m.SampleTeam(s, size)
		require.NoError(t, err)
		require.Len(t, team, size)
		seen := map[string]struct{}{}
		for _, member := range team {
			assert.Contains(t, selected, member)
			_, dup := seen[member]
			assert.False(t, dup, "duplicate %q in team %v", member, team)
			seen[member] = struct{}{}
		}
	}
	assert.Equal(t, selected, s.Snapshot().Selected)
}

func TestSampleTeamBounds(t *testing.T) {
	m, s := newScenario(t)
	for _, size := range []int{-1, 0, 3, 4} {
		_, err := m.SampleTeam(s, size)
		assert.ErrorIs(t, err, ErrInvalidTeamSize, "size %d", size)
	}
	lo, hi := m.TeamSizeRange(s)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)
}

func TestScenarioPrimaryOnly(t *testing.T) {
	m, s := newScenario(t)
	require.NoError(t, m.SetCategories(s, []string{"Primary"}))

	for i := 0; i < 50; i++ {
		team, err := m.SampleTeam(s, 1)
		require.NoError(t, err)
		require.Len(t, team, 1)
		assert.Contains(t, []string{"A", "B"}, team[0])
	}

	require.NoError(t, m.SetItems(s, []string{"A"}))
	assert.Equal(t, []string{"A"}, s.Snapshot().Selected)

	_, err := m.SampleTeam(s, 2)
	require.ErrorIs(t, err, ErrInvalidTeamSize)
	_, err = m.SampleTeam(s, 1)
	assert.True(t, errors.Is(err, ErrInvalidTeamSize), "single tower leaves an empty size range")

	m.Reset(s)
	snap := s.Snapshot()
	assert.Equal(t, []string{"Primary", "Support"}, snap.Categories)
	assert.Equal(t, []string{"A", "B", "C"}, snap.Selected)
}

func TestSampleIsUniformOverSubsets(t *testing.T) {
	m, s := newScenario(t)
	counts := map[string]int{}
	const draws = 6000
	for i := 0; i < draws; i++ {
		team, err := m.SampleTeam(s, 2)
		require.NoError(t, err)
		sort.Strings(team)
		counts[team[0]+team[1]]++
	}
	require.Len(t, counts, 3)
	for pair, n := range counts {
		assert.InDelta(t, draws/3, n, draws/10, "pair %s", pair)
	}
}

func TestSeededSourcesReproduce(t *testing.T) {
	c := catalog.Default()
	a := NewManager(c, NewSource(99))
	b := NewManager(c, NewSource(99))
	sa, sb := NewSession(), NewSession()
	a.Initialize(sa)
	b.Initialize(sb)

	teamA, err := a.SampleTeam(sa, 5)
	require.NoError(t, err)
	teamB, err := b.SampleTeam(sb, 5)
	require.NoError(t, err)
	assert.Equal(t, teamA, teamB)
}

func TestSampleLeavesPoolUntouched(t *testing.T) {
	pool := []string{"A", "B", "C", "D"}
	team := sample(firstSource{}, pool, 2)
	assert.Equal(t, []string{"A", "B"}, team)
	assert.Equal(t, []string{"A", "B", "C", "D"}, pool)
}

func TestDeriveAvailableIgnoresUnknown(t *testing.T) {
	c := scenarioCatalog(t)
	assert.Equal(t, []string{"C"}, DeriveAvailable(c, []string{"Support", "Nope"}))
	assert.Equal(t, []string{}, DeriveAvailable(c, nil))
}
