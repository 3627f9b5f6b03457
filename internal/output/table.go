package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	columnGap = "  "
	ellipsis  = "…"
)

// Table renders aligned columns for text output.
//
// Widths are measured in terminal cells, so styled or non-ASCII cells line up.
// A column with a maximum width elides the middle of longer cells, which keeps
// both the host and the file name of an icon URL visible.
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth map[int]int
	noHeader bool
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:  headers,
		maxWidth: make(map[int]int),
	}
}

// AddRow adds a row. Missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// SetNoHeader suppresses the header and its rule.
func (t *Table) SetNoHeader(noHeader bool) {
	t.noHeader = noHeader
}

// SetMaxWidth limits column col to width cells. A width of zero or less removes the limit.
func (t *Table) SetMaxWidth(col, width int) {
	if width <= 0 {
		delete(t.maxWidth, col)
		return
	}
	t.maxWidth[col] = width
}

// Render writes the table to w in a single write.
func (t *Table) Render(w io.Writer) error {
	lines := t.lines()
	if len(lines) == 0 {
		return nil
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the rendered table.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}

func (t *Table) showHeader() bool {
	return !t.noHeader && len(t.headers) > 0
}

// lines lays out the header, its rule and every row.
func (t *Table) lines() []string {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}

	cols := len(t.headers)
	for _, row := range t.rows {
		cols = max(cols, len(row))
	}

	grid := make([][]string, 0, len(t.rows)+1)
	if t.showHeader() {
		grid = append(grid, t.fit(t.headers, cols))
	}
	for _, row := range t.rows {
		grid = append(grid, t.fit(row, cols))
	}

	widths := make([]int, cols)
	for _, row := range grid {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(grid)+1)
	for i, row := range grid {
		lines = append(lines, joinPadded(row, widths))
		if i == 0 && t.showHeader() {
			rule := make([]string, cols)
			for c, width := range widths {
				rule[c] = strings.Repeat("-", width)
			}
			lines = append(lines, joinPadded(rule, widths))
		}
	}
	return lines
}

// fit extends row to cols cells and elides cells over their column limit.
func (t *Table) fit(row []string, cols int) []string {
	cells := make([]string, cols)
	for i := range cells {
		if i < len(row) {
			cells[i] = row[i]
		}
		if limit, ok := t.maxWidth[i]; ok {
			cells[i] = Elide(cells[i], limit)
		}
	}
	return cells
}

// joinPadded pads every cell but the last to its column width.
func joinPadded(cells []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(columnGap)
		}
		sb.WriteString(cell)
		if i < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
	}
	return sb.String()
}

// Elide shortens s to at most width cells by replacing its middle with an ellipsis.
func Elide(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}

	runes := []rune(s)
	keep := min(width-1, len(runes)-1)
	head := (keep + 1) / 2
	tail := keep - head
	return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
}
