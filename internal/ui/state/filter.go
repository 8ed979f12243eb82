package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search is the editable search query with a rune cursor.
type Search struct {
	Text   string
	Cursor int
}

// Set replaces the query and clamps the cursor.
func (s *Search) Set(text string, cursor int) {
	s.Text = text
	s.Cursor = clamp(cursor, 0, len([]rune(text)))
}

// CursorPos returns the rune offset of the cursor.
func (s *Search) CursorPos() int {
	return clamp(s.Cursor, 0, len([]rune(s.Text)))
}

// Clear empties the query. It reports false when it was already empty.
func (s *Search) Clear() bool {
	if s.Text == "" {
		return false
	}
	s.Set("", 0)
	return true
}

// Insert inserts text at the cursor.
func (s *Search) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Text)
	pos := s.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (s *Search) DeleteRuneBackward() bool {
	runes := []rune(s.Text)
	pos := s.CursorPos()
	if pos == 0 {
		return false
	}
	s.Set(string(append(runes[:pos-1], runes[pos:]...)), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (s *Search) DeleteWordBackward() bool {
	runes := []rune(s.Text)
	pos := s.CursorPos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	s.Set(string(append(runes[:i], runes[pos:]...)), i)
	return true
}

// MoveStart moves the cursor to the start.
func (s *Search) MoveStart() bool {
	if s.CursorPos() == 0 {
		return false
	}
	s.Cursor = 0
	return true
}

// MoveEnd moves the cursor to the end.
func (s *Search) MoveEnd() bool {
	end := len([]rune(s.Text))
	if s.CursorPos() == end {
		return false
	}
	s.Cursor = end
	return true
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (s *Search) MoveWordBackward() bool {
	pos := s.CursorPos()
	i := wordStart([]rune(s.Text), pos)
	if i == pos {
		return false
	}
	s.Cursor = i
	return true
}

// MoveWordForward moves the cursor past the next word.
func (s *Search) MoveWordForward() bool {
	runes := []rune(s.Text)
	pos := s.CursorPos()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	s.Cursor = i
	return true
}

// MoveRuneBackward moves the cursor one rune left.
func (s *Search) MoveRuneBackward() bool {
	pos := s.CursorPos()
	if pos == 0 {
		return false
	}
	s.Cursor = pos - 1
	return true
}

// MoveRuneForward moves the cursor one rune right.
func (s *Search) MoveRuneForward() bool {
	pos := s.CursorPos()
	if pos >= len([]rune(s.Text)) {
		return false
	}
	s.Cursor = pos + 1
	return true
}

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

// BestMatchIndex picks the row the cursor should land on for query. Exact
// and prefix matches win, then the closest fuzzy match. It never filters.
func BestMatchIndex(items []ListItem, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
