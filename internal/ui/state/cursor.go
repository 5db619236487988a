package state

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// setCursor moves the cursor to idx clamped into range and reports whether
// it changed. An empty level pins the cursor to zero.
func (l *Level) setCursor(idx int) bool {
	old := l.Cursor
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	l.Cursor = clamp(idx, 0, len(l.Items)-1)
	return l.Cursor != old
}

// MoveCursorUp moves one row up, wrapping to the last item.
func (l *Level) MoveCursorUp() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	if l.Cursor <= 0 {
		return l.setCursor(n - 1)
	}
	return l.setCursor(l.Cursor - 1)
}

// MoveCursorDown moves one row down, wrapping to the first item.
func (l *Level) MoveCursorDown() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	if l.Cursor >= n-1 {
		return l.setCursor(0)
	}
	return l.setCursor(l.Cursor + 1)
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.setCursor(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.setCursor(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page of maxVisible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.setCursor(max(l.Cursor, 0) - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.setCursor(max(l.Cursor, 0) + l.pageSize(maxVisible))
}

// pageSize treats an unknown (<= 0) or oversized page as the whole list.
func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(n-maxVisible, 0)
	offset := clamp(l.ViewportOffset, 0, maxOffset)
	switch {
	case l.Cursor < offset:
		offset = l.Cursor
	case l.Cursor > offset+maxVisible-1:
		offset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
	l.ViewportOffset = offset
}
