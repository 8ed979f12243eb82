package menu

import "strings"

// Filter narrows the item list. Category is an exact slug, Query is matched
// case-insensitively against both item names. Empty values match everything.
type Filter struct {
	Category string
	Query    string
}

// Active reports whether the filter narrows anything.
func (f Filter) Active() bool {
	return f.Category != "" || f.Query != ""
}

// FilterItems returns the items matching both parts of the filter, keeping
// server order.
func FilterItems(items []Item, f Filter) []Item {
	query := strings.ToLower(f.Query)
	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Category != "" && it.CategorySlug != f.Category {
			continue
		}
		if query != "" && !matchesQuery(it, query) {
			continue
		}
		filtered = append(filtered, it)
	}
	return filtered
}

func matchesQuery(it Item, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(it.NameUZ), lowerQuery) ||
		strings.Contains(strings.ToLower(it.NameRU), lowerQuery)
}
