package state

import "github.com/atomicstack/tower-picker/internal/menu"

// Level holds the list state of one menu screen: the full item list, the
// filtered view of it, the cursor and viewport, and multi-select marks.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	MultiSelect    bool
	Marked         map[string]struct{}
	Node           *menu.Node
}

// NewLevel constructs a Level using the provided items and menu node.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
		Marked:     make(map[string]struct{}),
		Node:       node,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the position of id among the visible items, or -1.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the item list, re-applies the filter, and drops
// marks for items that disappeared. The viewport offset survives when it
// still fits.
func (l *Level) UpdateItems(items []menu.Item) {
	offset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.pruneMarks()
	l.applyFilter()
	if len(l.Items) == 0 || offset < 0 || offset >= len(l.Items) {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = offset
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
