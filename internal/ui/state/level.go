package state

// List keeps cursor and viewport state for one on-screen list.
type List struct {
	ID             string
	Items          []ListItem
	Cursor         int
	ViewportOffset int
}

// NewList constructs an empty list.
func NewList(id string) *List {
	return &List{ID: id}
}

// IndexOf returns the index for a given item identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *List) Current() (ListItem, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return ListItem{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rows. The cursor follows the previously selected
// id when it survives, otherwise it is clamped to the new length.
func (l *List) UpdateItems(items []ListItem) {
	prevID := ""
	if cur, ok := l.Current(); ok {
		prevID = cur.ID
	}
	prevOffset := l.ViewportOffset
	l.Items = CloneItems(items)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if idx := l.IndexOf(prevID); idx >= 0 {
		l.Cursor = idx
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}
