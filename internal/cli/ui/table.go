package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned tabular CLI output for header fields and table dumps
type Table struct {
	headers []string
	rows    [][]string
	title   string
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// WithTitle sets the table title
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Render renders the table
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, header := range t.headers {
		colWidths[i] = lipgloss.Width(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if width := lipgloss.Width(cell); width > colWidths[i] {
					colWidths[i] = width
				}
			}
		}
	}

	var output strings.Builder

	if t.title != "" {
		output.WriteString("\n")
		output.WriteString(titleStyle.Render(t.title))
		output.WriteString("\n\n")
	}

	headerParts := make([]string, len(t.headers))
	for i, header := range t.headers {
		headerParts[i] = padRight(tableHeaderStyle.Render(header), colWidths[i])
	}
	output.WriteString(strings.Join(headerParts, "  "))
	output.WriteString("\n")

	separatorChar := "─"
	if runtime.GOOS == "windows" {
		separatorChar = "-"
	}
	separatorParts := make([]string, len(t.headers))
	for i := range t.headers {
		separatorParts[i] = mutedStyle.Render(strings.Repeat(separatorChar, colWidths[i]))
	}
	output.WriteString(strings.Join(separatorParts, "  "))
	output.WriteString("\n")

	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i, cell := range row {
			if i < len(colWidths) {
				rowParts[i] = padRight(cell, colWidths[i])
			}
		}
		output.WriteString(strings.Join(rowParts, "  "))
		output.WriteString("\n")
	}

	output.WriteString("\n")
	return output.String()
}

// padRight pads
func padRight(text string, targetWidth int) string {
	visibleWidth := lipgloss.Width(text)
	if visibleWidth >= targetWidth {
		return text
	}
	return text + strings.Repeat(" ", targetWidth-visibleWidth)
}

// Print prints the table
func (t *Table) Print() {
	fmt.Print(t.Render())
}
