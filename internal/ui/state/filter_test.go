package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/tower-picker/internal/menu"
)

func towerItems() []menu.Item {
	return []menu.Item{
		{ID: "Dart Monkey", Label: "Dart Monkey"},
		{ID: "Bomb Shooter", Label: "Bomb Shooter"},
		{ID: "Ice Monkey", Label: "Ice Monkey"},
	}
}

func TestSetFilterRemembersAndRestoresCursor(t *testing.T) {
	l := NewLevel("towers", "Towers", towerItems(), nil)
	l.Cursor = 2
	l.SetFilter("bomb", 4)

	if l.FilterCursor != 4 {
		t.Fatalf("expected caret at 4, got %d", l.FilterCursor)
	}
	if len(l.Items) != 1 || l.Items[0].ID != "Bomb Shooter" {
		t.Fatalf("expected only Bomb Shooter, got %#v", l.Items)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor on the match, got %d", l.Cursor)
	}

	l.SetFilter("", 0)
	if len(l.Items) != 3 {
		t.Fatalf("expected all items back, got %d", len(l.Items))
	}
	if l.Cursor != 2 || l.LastCursor != -1 {
		t.Fatalf("expected cursor restored to 2, got %d (last %d)", l.Cursor, l.LastCursor)
	}
}

func TestFilterEditing(t *testing.T) {
	l := newTestLevel("alpha")

	if !l.InsertFilterText("ab") || l.Filter != "ab" || l.FilterCursor != 2 {
		t.Fatalf("unexpected state after insert %q/%d", l.Filter, l.FilterCursor)
	}
	l.FilterCursor = 1
	if !l.InsertFilterText("z") || l.Filter != "azb" || l.FilterCursor != 2 {
		t.Fatalf("unexpected state after middle insert %q/%d", l.Filter, l.FilterCursor)
	}
	if !l.DeleteFilterRuneBackward() || l.Filter != "ab" || l.FilterCursor != 1 {
		t.Fatalf("unexpected state after backspace %q/%d", l.Filter, l.FilterCursor)
	}

	l.SetFilter("ice monkey", len("ice monkey"))
	if !l.DeleteFilterWordBackward() || l.Filter != "ice " {
		t.Fatalf("expected last word removed, got %q", l.Filter)
	}

	l.SetFilter("abc", 0)
	if l.DeleteFilterRuneBackward() || l.DeleteFilterWordBackward() {
		t.Fatalf("expected deletes at start to be no-ops")
	}
	if l.InsertFilterText("") {
		t.Fatalf("expected empty insert to be a no-op")
	}
}

func TestFilterCaretNavigation(t *testing.T) {
	l := newTestLevel("one", "two")
	l.SetFilter("one two", 7)

	if !l.MoveFilterCursorWordBackward() || l.FilterCursor != 4 {
		t.Fatalf("expected caret at 4, got %d", l.FilterCursor)
	}
	if !l.MoveFilterCursorWordForward() || l.FilterCursor != 7 {
		t.Fatalf("expected caret at 7, got %d", l.FilterCursor)
	}
	if !l.MoveFilterCursorRuneBackward() || l.FilterCursor != 6 {
		t.Fatalf("expected caret at 6, got %d", l.FilterCursor)
	}
	if !l.MoveFilterCursorRuneForward() || l.FilterCursor != 7 {
		t.Fatalf("expected caret at 7, got %d", l.FilterCursor)
	}
	if l.MoveFilterCursorRuneForward() || l.MoveFilterCursorEnd() {
		t.Fatalf("expected no movement past the end")
	}
	if !l.MoveFilterCursorStart() || l.FilterCursor != 0 {
		t.Fatalf("expected caret at 0, got %d", l.FilterCursor)
	}
	if l.MoveFilterCursorRuneBackward() || l.MoveFilterCursorWordBackward() {
		t.Fatalf("expected no movement before the start")
	}
}

func TestFilterItems(t *testing.T) {
	items := towerItems()
	if got := FilterItems(items, "dm"); len(got) != 1 || got[0].ID != "Dart Monkey" {
		t.Fatalf("expected fuzzy match on Dart Monkey, got %#v", got)
	}
	if got := FilterItems(items, "monkey"); len(got) != 2 || got[1].ID != "Ice Monkey" {
		t.Fatalf("expected both monkeys in order, got %#v", got)
	}
	if got := FilterItems(items, "  "); !reflect.DeepEqual(got, items) {
		t.Fatalf("expected blank query to return everything, got %#v", got)
	}
	if got := FilterItems(items, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}

	got := FilterItems(items, "ice")
	got[0].Label = "changed"
	if items[2].Label != "Ice Monkey" {
		t.Fatalf("expected source items untouched")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "primary", Label: "Primary"},
		{ID: "military", Label: "Military"},
		{ID: "magic", Label: "Magic"},
	}
	cases := map[string]int{
		"Military": 1,
		"magic":    2,
		"mi":       1,
		"ary":      0,
		"zzz":      0,
		"":         0,
	}
	for query, want := range cases {
		if got := BestMatchIndex(items, query); got != want {
			t.Fatalf("query %q: expected %d, got %d", query, want, got)
		}
	}
	if got := BestMatchIndex(nil, "anything"); got != -1 {
		t.Fatalf("expected -1 for empty list, got %d", got)
	}
}
