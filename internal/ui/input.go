package ui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/menu-admin/internal/logging/events"
	uistate "github.com/atomicstack/menu-admin/internal/ui/state"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput edits the search query. It reports false for keys that
// are not search edits so navigation can claim them.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if !m.search.Clear() {
			return false
		}
		events.Filter.Cleared()
		m.searchChanged()
		return true
	case "ctrl+w":
		if !m.search.DeleteWordBackward() {
			return false
		}
		events.Filter.WordBackspace(m.search.Text)
		m.searchChanged()
		return true
	case "ctrl+a":
		return m.moveSearchCursor(m.search.MoveStart)
	case "ctrl+e":
		return m.moveSearchCursor(m.search.MoveEnd)
	case "alt+b":
		return m.moveSearchCursor(m.search.MoveWordBackward)
	case "alt+f":
		return m.moveSearchCursor(m.search.MoveWordForward)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.search.DeleteRuneBackward() {
			return false
		}
		events.Filter.Backspace(m.search.Text)
		m.searchChanged()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		text := string(msg.Runes)
		if m.search.Text == "" {
			text = strings.TrimLeftFunc(text, unicode.IsSpace)
		}
		if text == "" {
			return false
		}
		return m.appendToSearch(text)
	case tea.KeySpace:
		if m.search.Text == "" {
			return false
		}
		return m.appendToSearch(" ")
	case tea.KeyLeft:
		return m.moveSearchCursor(m.search.MoveRuneBackward)
	case tea.KeyRight:
		return m.moveSearchCursor(m.search.MoveRuneForward)
	}
	return false
}

func (m *Model) appendToSearch(text string) bool {
	if !m.search.Insert(text) {
		return false
	}
	events.Filter.Append(m.search.Text)
	m.searchChanged()
	return true
}

func (m *Model) moveSearchCursor(move func() bool) bool {
	if !move() {
		return false
	}
	events.Filter.Cursor(m.search.Cursor)
	return true
}

// searchChanged re-filters the items and puts the cursor on the best match.
func (m *Model) searchChanged() {
	m.forceClearInfo()
	m.errMsg = ""
	m.refresh()
	if m.search.Text == "" {
		return
	}
	if idx := uistate.BestMatchIndex(m.items.Items, m.search.Text); idx >= 0 {
		m.items.SetCursor(idx)
		m.syncViewport(m.items)
	}
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.search.Text
	if text == "" {
		runes := []rune("(type to search items)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.search.CursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
