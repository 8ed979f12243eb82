package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menu"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeList {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "tab", "shift+tab":
		m.toggleFocus()
		return nil
	case "enter":
		return m.editCurrent()
	case "ctrl+n":
		return m.addForFocus()
	case "ctrl+x", "delete":
		return m.deleteCurrent()
	case "ctrl+r":
		return m.reload()
	case "ctrl+f":
		m.cycleCategoryFilter(1)
		return nil
	case "ctrl+b":
		m.cycleCategoryFilter(-1)
		return nil
	case "up":
		m.moveCursor((*list).MoveCursorUp)
		return nil
	case "down":
		m.moveCursor((*list).MoveCursorDown)
		return nil
	case "home":
		m.moveCursor((*list).MoveCursorHome)
		return nil
	case "end":
		m.moveCursor((*list).MoveCursorEnd)
		return nil
	case "pgup":
		page := m.maxVisibleItems()
		m.moveCursor(func(l *list) bool { return l.MoveCursorPageUp(page) })
		return nil
	case "pgdown":
		page := m.maxVisibleItems()
		m.moveCursor(func(l *list) bool { return l.MoveCursorPageDown(page) })
		return nil
	}
	m.handleTextInput(keyMsg)
	return nil
}

// handleEscapeKey clears a non-empty search first and quits otherwise.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.search.Clear() {
		events.Filter.Cleared()
		m.searchChanged()
		return nil
	}
	return tea.Quit
}

func (m *Model) focused() *list {
	if m.focus == listCategories {
		return m.categories
	}
	return m.items
}

func (m *Model) toggleFocus() {
	if m.focus == listCategories {
		m.focus = listItems
	} else {
		m.focus = listCategories
	}
	events.UI.Focus(m.focus)
}

func (m *Model) moveCursor(move func(*list) bool) {
	current := m.focused()
	if move(current) {
		events.UI.Cursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) editCurrent() tea.Cmd {
	current := m.focused()
	row, ok := current.Current()
	if !ok {
		return nil
	}
	if current.ID == listCategories {
		return m.runAction(menu.ActionCategoryEdit, row.ID, row.Label)
	}
	return m.runAction(menu.ActionItemEdit, row.ID, row.Label)
}

// reload fetches the menu again. With auto refresh on, the watcher does the
// fetch so manual and polled requests share its rate limit.
func (m *Model) reload() tea.Cmd {
	if m.backend == nil {
		return m.runAction(menu.ActionReload, "", "Reloading menu")
	}
	if m.loading {
		return nil
	}
	m.loading = true
	m.refreshRequested = true
	m.pendingID = menu.ActionReload
	m.pendingLabel = "Reloading menu"
	m.errMsg = ""
	m.forceClearInfo()
	events.Store.Reload("manual")
	m.backend.Refresh()
	return nil
}

func (m *Model) addForFocus() tea.Cmd {
	if m.focus == listCategories {
		return m.runAction(menu.ActionCategoryAdd, "", "Add Category")
	}
	return m.runAction(menu.ActionItemAdd, "", "Add Item")
}

func (m *Model) deleteCurrent() tea.Cmd {
	current := m.focused()
	row, ok := current.Current()
	if !ok {
		return nil
	}
	if current.ID == listCategories {
		return m.runAction(menu.ActionCategoryDelete, row.ID, row.Label)
	}
	return m.runAction(menu.ActionItemDelete, row.ID, row.Label)
}

// cycleCategoryFilter steps through All and then each category in server
// order, wrapping at both ends.
func (m *Model) cycleCategoryFilter(delta int) {
	opts := m.view.FilterOptions
	if len(opts) == 0 {
		return
	}
	idx := 0
	for i, opt := range opts {
		if opt.Value == m.category {
			idx = i
			break
		}
	}
	n := len(opts)
	idx = ((idx+delta)%n + n) % n
	m.category = opts[idx].Value
	events.Filter.Category(m.category)
	m.refresh()
}

// categoryLabel names the active category filter.
func (m *Model) categoryLabel() string {
	for _, opt := range m.view.FilterOptions {
		if opt.Value == m.category {
			return opt.Label
		}
	}
	return "All"
}

func (m *Model) syncViewport(l *list) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
