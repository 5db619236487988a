package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/tower-picker/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and the caret position within it.
// Starting a filter remembers the cursor; clearing it restores that cursor.
func (l *Level) SetFilter(query string, caret int) {
	trimmed := strings.TrimSpace(query)
	wasFiltering := strings.TrimSpace(l.Filter) != ""
	l.Filter = query
	l.FilterCursor = clamp(caret, 0, len([]rune(query)))

	switch {
	case trimmed != "":
		if !wasFiltering {
			l.LastCursor = l.Cursor
		}
		l.applyFilter()
		l.Cursor = 0
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	case wasFiltering:
		restore := l.LastCursor
		l.applyFilter()
		if restore >= 0 && restore < len(l.Items) {
			l.Cursor = restore
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	default:
		l.applyFilter()
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 || l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter caret.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// editFilter replaces runes [from, to) of the filter with insert and parks
// the caret after the inserted text.
func (l *Level) editFilter(from, to int, insert []rune) {
	runes := []rune(l.Filter)
	updated := make([]rune, 0, len(runes)-(to-from)+len(insert))
	updated = append(updated, runes[:from]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[to:]...)
	l.SetFilter(string(updated), from+len(insert))
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	pos := l.FilterCursorPos()
	l.editFilter(pos, pos, []rune(text))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.editFilter(pos-1, pos, nil)
	return true
}

// DeleteFilterWordBackward deletes the word before the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.editFilter(wordStart([]rune(l.Filter), pos), pos, nil)
	return true
}

func (l *Level) moveFilterCursor(to int) bool {
	if to == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = to
	return true
}

// MoveFilterCursorStart moves the caret to the start of the filter.
func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(0)
}

// MoveFilterCursorEnd moves the caret to the end of the filter.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorWordBackward moves the caret to the previous word start.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the caret past the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(max(l.FilterCursorPos()-1, 0))
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(min(l.FilterCursorPos()+1, len([]rune(l.Filter))))
}

// wordStart skips whitespace then non-whitespace leftwards from pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// wordEnd skips non-whitespace then whitespace rightwards from pos.
func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// FilterItems returns items whose label fuzzy-matches query, falling back
// to a case-insensitive substring match on label or ID. Order is preserved.
func FilterItems(items []menu.Item, query string) []menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, labels); len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]menu.Item, 0, len(matched))
		for i, item := range items {
			if _, ok := matched[i]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the item the cursor should land on for query:
// an exact match, then a label prefix, then a substring, then the closest
// fuzzy match. It returns -1 only for an empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	tiers := []func(menu.Item) bool{
		func(it menu.Item) bool {
			return strings.EqualFold(it.Label, trimmed) || strings.EqualFold(it.ID, trimmed)
		},
		func(it menu.Item) bool { return strings.HasPrefix(strings.ToLower(it.Label), lower) },
		func(it menu.Item) bool { return strings.HasPrefix(strings.ToLower(it.ID), lower) },
		func(it menu.Item) bool {
			return strings.Contains(strings.ToLower(it.Label), lower) || strings.Contains(strings.ToLower(it.ID), lower)
		},
	}
	for _, match := range tiers {
		for i, item := range items {
			if match(item) {
				return i
			}
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	best := -1
	bestDistance := 0
	for _, rank := range ranks {
		if best < 0 || rank.Distance < bestDistance || (rank.Distance == bestDistance && rank.OriginalIndex < best) {
			best = rank.OriginalIndex
			bestDistance = rank.Distance
		}
	}
	if best < 0 || best >= len(items) {
		return 0
	}
	return best
}
