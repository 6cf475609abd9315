package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Column widths follow the widest cell; lipgloss.Width keeps ANSI escape
// sequences out of the measurement.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder

	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			rendered := cell
			if style != nil {
				rendered = style(cell)
			}
			b.WriteString(rendered)
			if i < cols-1 {
				pad := widths[i] - lipgloss.Width(cell)
				if pad < 0 {
					pad = 0
				}
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	sep := make([]string, cols)
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(sep, func(s string) string { return StyleDim.Render(s) })

	for _, row := range rows {
		writeRow(row, nil)
	}

	return b.String()
}
