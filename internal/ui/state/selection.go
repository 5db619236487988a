package state

// pruneMarks drops marks whose items are no longer in the full list.
func (l *Level) pruneMarks() {
	if len(l.Marked) == 0 {
		return
	}
	valid := make(map[string]struct{}, len(l.Full))
	for _, item := range l.Full {
		valid[item.ID] = struct{}{}
	}
	for id := range l.Marked {
		if _, ok := valid[id]; !ok {
			delete(l.Marked, id)
		}
	}
}

// IsMarked reports whether the given id is marked.
func (l *Level) IsMarked(id string) bool {
	_, ok := l.Marked[id]
	return ok
}

// SetMarks replaces the marks with ids, ignoring any not in the full list.
func (l *Level) SetMarks(ids []string) {
	l.Marked = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		l.Marked[id] = struct{}{}
	}
	l.pruneMarks()
}

// ToggleMark flips the mark on id and reports the new state.
func (l *Level) ToggleMark(id string) bool {
	if l.Marked == nil {
		l.Marked = make(map[string]struct{})
	}
	if _, ok := l.Marked[id]; ok {
		delete(l.Marked, id)
		return false
	}
	l.Marked[id] = struct{}{}
	return true
}

// ToggleCurrentMark toggles the item under the cursor on multi-select
// levels. It returns the toggled id, or "" when nothing changed.
func (l *Level) ToggleCurrentMark() (string, bool) {
	if !l.MultiSelect {
		return "", false
	}
	item, ok := l.Current()
	if !ok {
		return "", false
	}
	return item.ID, l.ToggleMark(item.ID)
}

// MarkVisible marks or unmarks every item that passes the current filter
// and returns how many items are marked afterwards.
func (l *Level) MarkVisible(marked bool) int {
	if l.Marked == nil {
		l.Marked = make(map[string]struct{})
	}
	for _, item := range l.Items {
		if marked {
			l.Marked[item.ID] = struct{}{}
		} else {
			delete(l.Marked, item.ID)
		}
	}
	return len(l.Marked)
}

// MarkedIDs returns marked ids in full-list order, ignoring the filter.
// The result is never nil so an empty marking is distinguishable from
// "no answer".
func (l *Level) MarkedIDs() []string {
	ids := make([]string, 0, len(l.Marked))
	for _, item := range l.Full {
		if l.IsMarked(item.ID) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
