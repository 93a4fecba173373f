package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column with name and width.
type Column struct {
	Name  string
	Width int
	Align Alignment
	Style lipgloss.Style
}

// Alignment specifies column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table renders rows under a bold header and a dim separator.
type Table struct {
	columns []Column
	rows    [][]string
	indent  string
}

func NewTable(columns ...Column) *Table {
	return &Table{columns: columns, indent: "  "}
}

func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

// AddRow adds a row of values. Missing trailing values are left blank.
func (t *Table) AddRow(values ...string) *Table {
	for len(values) < len(t.columns) {
		values = append(values, "")
	}
	t.rows = append(t.rows, values)
	return t
}

func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	var sb strings.Builder

	sb.WriteString(t.indent)
	total := 0
	for i, col := range t.columns {
		sb.WriteString(pad(Bold.Render(col.Name), col.Name, col.Width, col.Align))
		total += col.Width
		if i < len(t.columns)-1 {
			sb.WriteString(" ")
			total++
		}
	}
	sb.WriteString("\n")
	sb.WriteString(t.indent)
	sb.WriteString(Dim.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		sb.WriteString(t.indent)
		for i, col := range t.columns {
			val := truncate(row[i], col.Width)
			styled := val
			if col.Style.Value() != "" || col.Style.GetBold() {
				styled = col.Style.Render(val)
			}
			sb.WriteString(pad(styled, val, col.Width, col.Align))
			if i < len(t.columns)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// pad pads styled to width using the display width of plain.
func pad(styled, plain string, width int, align Alignment) string {
	w := lipgloss.Width(plain)
	if w >= width {
		return styled
	}
	fill := strings.Repeat(" ", width-w)
	if align == AlignRight {
		return fill + styled
	}
	return styled + fill
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width || width < 4 {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+3 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
