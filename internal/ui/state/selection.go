package state

// Mark flags the item with the given id as the active choice of this level.
// Only one item is marked at a time.
func (l *Level) Mark(id string) {
	l.Marked = id
}

// IsMarked reports whether id is the marked item.
func (l *Level) IsMarked(id string) bool {
	return id != "" && l.Marked == id
}

// MarkedIndex returns the position of the marked item among the visible
// items, or -1.
func (l *Level) MarkedIndex() int {
	if l.Marked == "" {
		return -1
	}
	return l.IndexOf(l.Marked)
}

// CursorToMarked moves the cursor onto the marked item when it is visible.
func (l *Level) CursorToMarked() bool {
	idx := l.MarkedIndex()
	if idx < 0 || idx == l.Cursor {
		return false
	}
	l.Cursor = idx
	return true
}
