package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows joined into lines, each column padded to its
// widest cell.
func Format(rows [][]string, alignments []Alignment) []string {
	cols := Columns(rows, alignments)
	out := make([]string, len(cols))
	for i, cells := range cols {
		out[i] = strings.Join(cells, "  ")
	}
	return out
}

// Columns pads every cell to the display width of its column without joining
// them, so callers can style cells individually. Rows shorter than the first
// row are padded with empty cells.
func Columns(rows [][]string, alignments []Alignment) [][]string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(widths))
		for c := range widths {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			pad := strings.Repeat(" ", max(widths[c]-lipgloss.Width(cell), 0))
			if c < len(alignments) && alignments[c] == AlignRight {
				cells[c] = pad + cell
			} else {
				cells[c] = cell + pad
			}
		}
		out[i] = cells
	}
	return out
}

// Widths returns the display width of the widest cell in each column.
func Widths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}
	return widths
}
