package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative day string measured
// from a reference date. Both arguments are calendar dates.
func RelativeDateFrom(t time.Time, from time.Time) string {
	days := int(t.Sub(from).Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	default:
		return t.Format("Jan 2")
	}
}

// MilesLabel formats a distance for display.
func MilesLabel(miles float64) string {
	return fmt.Sprintf("%.1f mi", miles)
}
