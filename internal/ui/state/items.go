package state

// ListItem is one selectable row. ID is stable across reloads, Label is what
// match ranking looks at.
type ListItem struct {
	ID    string
	Label string
}

// CloneItems produces a shallow copy of the provided list items.
func CloneItems(items []ListItem) []ListItem {
	dup := make([]ListItem, len(items))
	copy(dup, items)
	return dup
}
