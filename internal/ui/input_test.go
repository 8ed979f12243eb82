package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/testutil"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	h := startHarness(t, testutil.NewFakeGateway(testutil.SampleMenu()))
	m := h.Model()
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bur")}) {
		t.Fatalf("expected key press to be handled")
	}
	if m.search.Text != "bur" || m.search.CursorPos() != 3 {
		t.Fatalf("unexpected search %#v", m.search)
	}
	titles := itemTitles(m.Rendered())
	if len(titles) != 2 || titles[0] != "Burger" || titles[1] != "Cheeseburger" {
		t.Fatalf("expected burger matches, got %v", titles)
	}
}

func TestSearchMatchesRussianNames(t *testing.T) {
	h := startHarness(t, testutil.NewFakeGateway(testutil.SampleMenu()))
	h.Type("ЧАЙ")
	titles := itemTitles(h.Model().Rendered())
	if len(titles) != 1 || titles[0] != "Choy" {
		t.Fatalf("expected case-insensitive RU match, got %v", titles)
	}
}

func TestSearchCursorLandsOnBestMatch(t *testing.T) {
	h := startHarness(t, testutil.NewFakeGateway(testutil.SampleMenu()))
	h.Type("cheeseburger")
	m := h.Model()
	row, ok := m.items.Current()
	if !ok || row.ID != "2" {
		t.Fatalf("expected cursor on item 2, got %#v", row)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := NewModel(testutil.NewFakeGateway(testutil.SampleMenu()), 0, 0, false, false, nil)
	m.search.Set("abc", 3)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := m.search.CursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := m.search.CursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow at the end to be ignored")
	}
}

func TestHandleTextInputEditing(t *testing.T) {
	m := NewModel(testutil.NewFakeGateway(testutil.SampleMenu()), 0, 0, false, false, nil)
	m.search.Set("cheese burger", 13)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}) {
		t.Fatalf("expected ctrl+w to be handled")
	}
	if m.search.Text != "cheese " {
		t.Fatalf("expected last word removed, got %q", m.search.Text)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("expected backspace to be handled")
	}
	if m.search.Text != "cheese" {
		t.Fatalf("expected trailing space removed, got %q", m.search.Text)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u to be handled")
	}
	if m.search.Text != "" {
		t.Fatalf("expected cleared search, got %q", m.search.Text)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u on empty search to be ignored")
	}
}

func TestLeadingSpaceIsIgnored(t *testing.T) {
	m := NewModel(testutil.NewFakeGateway(testutil.SampleMenu()), 0, 0, false, false, nil)
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}) {
		t.Fatalf("expected leading space to be ignored")
	}
}

func TestPastedTextKeepsInnerSpaces(t *testing.T) {
	h := startHarness(t, testutil.NewFakeGateway(testutil.SampleMenu()))
	m := h.Model()
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  chee burger"), Paste: true}) {
		t.Fatalf("expected pasted text to be handled")
	}
	if m.search.Text != "chee burger" {
		t.Fatalf("expected leading spaces trimmed only, got %q", m.search.Text)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("\tx")}) {
		t.Fatalf("expected control runes to be rejected")
	}
	m.search.Clear()
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("   ")}) {
		t.Fatalf("expected blank paste into empty search to be ignored")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := NewModel(testutil.NewFakeGateway(testutil.SampleMenu()), 0, 0, false, false, nil)
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "ype to search items") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	m.search.Set("cola", 4)
	if prompt := m.filterPrompt(); !strings.Contains(prompt, "cola") {
		t.Fatalf("expected query in prompt, got %q", prompt)
	}
}
