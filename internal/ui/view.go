package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/menu-admin/internal/format/table"
	"github.com/atomicstack/menu-admin/internal/menu"
	uistate "github.com/atomicstack/menu-admin/internal/ui/state"
)

const (
	headerTitle      = "Menu Admin"
	sideBySideWidth  = 90   // below this the panes are stacked
	categoryFraction = 0.35 // share of the width given to the category pane
	infoTTL          = 5 * time.Second
	footerHint       = "tab switch  ↑/↓ move  enter edit  ctrl+n add  ctrl+x delete  ctrl+f/ctrl+b category  ctrl+r reload  esc quit"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.headerLine()
	if m.alert != "" {
		return m.viewOverlay(header, m.alertBox())
	}
	switch m.mode {
	case ModeForm:
		if m.form != nil {
			return m.viewOverlay(header, m.formBox())
		}
	case ModeConfirm:
		if m.confirm != nil {
			return m.viewOverlay(header, m.confirmBox())
		}
	}
	if m.sideBySide() {
		return m.viewSideBySide(header)
	}
	return m.viewStacked(header)
}

func (m *Model) sideBySide() bool {
	return m.width >= sideBySideWidth
}

func (m *Model) headerLine() styledLine {
	segments := []string{headerTitle}
	switch {
	case m.loading && m.pendingLabel != "":
		segments = append(segments, m.pendingLabel+"…")
	case m.loading:
		segments = append(segments, "Loading…")
	case m.pendingLabel != "":
		segments = append(segments, "Saving "+m.pendingLabel+"…")
	}
	if m.backendLastErr != "" {
		segments = append(segments, "refresh failed: "+m.backendLastErr)
	}
	return styledLine{text: strings.Join(segments, " · "), style: styles.Header}
}

// viewStacked draws the category pane above the item pane.
func (m *Model) viewStacked(header styledLine) string {
	lines := []styledLine{header}
	lines = append(lines, m.categoryPane(m.width)...)
	lines = append(lines, m.itemPane(m.width)...)
	lines = append(lines, m.itemDetail())
	lines = append(lines, m.trailerLines()...)
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, applyWidth(m.bottomBar(), m.width)...)
	return renderLines(lines)
}

// viewSideBySide puts the category pane on the left and the item pane on the
// right; the bottom bar spans both.
func (m *Model) viewSideBySide(header styledLine) string {
	leftW := int(float64(m.width) * categoryFraction)
	rightW := m.width - leftW - 1

	left := applyWidth(m.categoryPane(leftW), leftW)
	right := append(m.itemPane(rightW), m.itemDetail())
	right = applyWidth(right, rightW)

	rows := max(len(left), len(right))
	leftCol := padLines(renderLines(left), rows, leftW)
	rightCol := renderLines(right)
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " ", rightCol)

	top := applyWidth([]styledLine{header}, m.width)
	trailer := applyWidth(m.trailerLines(), m.width)
	bottom := applyWidth(m.bottomBar(), m.width)

	parts := []string{renderLines(top), body}
	if len(trailer) > 0 {
		parts = append(parts, renderLines(trailer))
	}
	parts = append(parts, renderLines(bottom))
	return strings.Join(parts, "\n")
}

func (m *Model) paneTitle(id, label string, count int) styledLine {
	style := styles.PaneTitle
	if m.focus == id {
		style = styles.PaneTitleFocused
	}
	return styledLine{text: fmt.Sprintf("%s (%d)", label, count), style: style}
}

func (m *Model) categoryPane(width int) []styledLine {
	lines := []styledLine{m.paneTitle(listCategories, "Categories", len(m.view.Categories))}
	if len(m.view.Categories) == 0 {
		return append(lines, styledLine{text: m.emptyMessage("(no categories)"), style: styles.Muted})
	}
	rows := make([][]string, len(m.view.Categories))
	for i, c := range m.view.Categories {
		rows[i] = []string{c.Title, "[" + c.Badge + "]", c.Subtitle}
	}
	cells := table.Columns(rows, nil)
	visible, start := m.categories.Visible(m.maxVisibleItems())
	for i := range visible {
		idx := start + i
		lines = append(lines, m.buildRowLine(strings.Join(cells[idx], "  "), idx, m.categories, width))
	}
	return lines
}

func (m *Model) itemPane(width int) []styledLine {
	title := "Items"
	if m.category != "" {
		title = "Items in " + m.categoryLabel()
	}
	lines := []styledLine{m.paneTitle(listItems, title, len(m.view.Items))}
	if len(m.view.Items) == 0 {
		msg := "(no items)"
		if m.search.Text != "" {
			msg = fmt.Sprintf("No matches for %q", m.search.Text)
		}
		return append(lines, styledLine{text: m.emptyMessage(msg), style: styles.Muted})
	}
	rows := make([][]string, len(m.view.Items))
	for i, it := range m.view.Items {
		rows[i] = []string{it.Title, it.Price, it.Category, it.Subtitle, it.Image}
	}
	cells := table.Columns(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	visible, start := m.items.Visible(m.maxVisibleItems())
	for i := range visible {
		idx := start + i
		lines = append(lines, m.buildRowLine(strings.Join(cells[idx], "  "), idx, m.items, width))
	}
	return lines
}

func (m *Model) emptyMessage(fallback string) string {
	if _, ok := m.store.Snapshot(); !ok {
		return "Loading…"
	}
	return fallback
}

// itemDetail shows the descriptions of the item under the cursor.
func (m *Model) itemDetail() styledLine {
	row, ok := m.items.Current()
	if !ok {
		return styledLine{}
	}
	snap, _ := m.store.Snapshot()
	for _, it := range snap.Items {
		if row.ID != itemKey(it.ID) {
			continue
		}
		if it.DescUZ == "" && it.DescRU == "" {
			return styledLine{}
		}
		return styledLine{text: fmt.Sprintf("UZ: %s · RU: %s", oneLine(it.DescUZ), oneLine(it.DescRU)), style: styles.Muted}
	}
	return styledLine{}
}

func (m *Model) buildRowLine(text string, idx int, l *list, width int) styledLine {
	lineStyle := styles.Item
	indicator := " "
	if idx == l.Cursor {
		indicator = "▌"
		if m.focus == l.ID {
			lineStyle = styles.SelectedItem
		}
	}
	fullText := indicator + " " + text
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   styles.ItemIndicator,
		highlightFrom: 1,
	}
}

func (m *Model) trailerLines() []styledLine {
	var lines []styledLine
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerHint, style: styles.Footer})
	}
	return lines
}

// bottomBar is the status line followed by the search prompt.
func (m *Model) bottomBar() []styledLine {
	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	label := "Category: " + m.categoryLabel()
	if styles.Badge != nil {
		label = styles.Badge.Render(label)
	}
	return []styledLine{status, {text: m.filterPrompt() + "  " + label}}
}

func (m *Model) viewOverlay(header styledLine, box string) string {
	top := renderLines(applyWidth([]styledLine{header}, m.width))
	if m.width <= 0 || m.height <= 1 {
		return top + "\n" + box
	}
	return top + "\n" + lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) formBox() string {
	rows := []string{render(styles.ModalTitle, m.form.Title()), ""}
	for _, f := range m.form.Fields() {
		labelStyle := styles.FieldLabel
		if f.Focused {
			labelStyle = styles.FieldLabelFocused
		}
		rows = append(rows, render(labelStyle, f.Label), f.Input)
	}
	rows = append(rows, "")
	switch {
	case m.submit.Busy():
		rows = append(rows, render(styles.Loading, "Saving…"))
	case m.submit.Err != nil:
		rows = append(rows, render(styles.Error, "Error: "+m.submit.Err.Error()))
	}
	rows = append(rows, render(styles.Muted, m.form.Help()))
	return render(styles.Modal, strings.Join(rows, "\n"))
}

func (m *Model) confirmBox() string {
	rows := []string{render(styles.ModalTitle, "Confirm"), "", m.confirm.Message, ""}
	if m.submit.Busy() {
		rows = append(rows, render(styles.Loading, "Deleting…"))
	} else {
		rows = append(rows, render(styles.Muted, "y/enter confirm  n/esc cancel"))
	}
	return render(styles.Modal, strings.Join(rows, "\n"))
}

func (m *Model) alertBox() string {
	body := m.alert
	if m.width > 8 {
		body = truncateText(body, m.width-8)
	}
	rows := []string{render(styles.Error, body), "", render(styles.Muted, "enter to dismiss")}
	return render(styles.Alert, strings.Join(rows, "\n"))
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.categories)
	m.syncViewport(m.items)
	return nil
}

// maxVisibleItems returns how many rows one pane can show.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // header, item detail, status, search prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if m.sideBySide() {
		remain-- // pane title
	} else {
		remain = remain/2 - 1
	}
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func categoryListItems(rows []menu.CategoryRow) []uistate.ListItem {
	items := make([]uistate.ListItem, len(rows))
	for i, row := range rows {
		items[i] = uistate.ListItem{ID: row.Slug, Label: row.Title}
	}
	return items
}

func itemListItems(rows []menu.ItemRow) []uistate.ListItem {
	items := make([]uistate.ListItem, len(rows))
	for i, row := range rows {
		items[i] = uistate.ListItem{ID: row.Key(), Label: row.Title}
	}
	return items
}

func itemKey(id int64) string {
	return menu.ItemRow{ID: id}.Key()
}

func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func padLines(block string, rows, width int) string {
	lines := strings.Split(block, "\n")
	for len(lines) < rows {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if pad := width - lipgloss.Width(line); pad > 0 {
			lines[i] = line + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(lines, "\n")
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width display cells. Text that already
// carries escape sequences is cut with reflow so styles are not split.
func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
