package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls cell alignment within a column.
type Align int

// Column alignments.
const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes one table column.
type Column struct {
	Name  string
	Width int
	Align Align
}

// Table is a fixed-width text table with a bold header.
type Table struct {
	columns   []Column
	rows      [][]string
	indent    string
	separator bool
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:   columns,
		indent:    "  ",
		separator: true,
	}
}

// SetIndent sets the prefix written before every line.
func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

// SetHeaderSeparator toggles the rule under the header.
func (t *Table) SetHeaderSeparator(on bool) *Table {
	t.separator = on
	return t
}

// AddRow appends a row. Missing trailing cells render empty.
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
	return t
}

// Render returns the table as text, one line per row, with a trailing newline.
// A table without columns renders as the empty string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(t.indent)
	for i, col := range t.columns {
		if i > 0 {
			b.WriteByte(' ')
		}
		name := truncate(col.Name, col.Width)
		b.WriteString(t.pad(Bold.Render(name), name, col.Width, col.Align))
	}
	b.WriteByte('\n')

	if t.separator {
		b.WriteString(t.indent)
		for i, col := range t.columns {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(Dim.Render(strings.Repeat("─", col.Width)))
		}
		b.WriteByte('\n')
	}

	for _, row := range t.rows {
		b.WriteString(t.indent)
		for i, col := range t.columns {
			if i > 0 {
				b.WriteByte(' ')
			}
			// Cells may carry ANSI styling; measure and cut the plain text.
			plain := stripAnsi(row[i])
			cell := row[i]
			if cut := truncate(plain, col.Width); cut != plain {
				plain, cell = cut, cut
			}
			b.WriteString(t.pad(cell, plain, col.Width, col.Align))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// pad aligns styled within width using the visible length of plain.
func (t *Table) pad(styled, plain string, width int, align Align) string {
	gap := width - lipgloss.Width(plain)
	if gap <= 0 {
		return styled
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + styled
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + styled + strings.Repeat(" ", gap-left)
	default:
		return styled + strings.Repeat(" ", gap)
	}
}

// truncate shortens s to width visible cells, ending in "..." when cut.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+3 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
