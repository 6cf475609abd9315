package cli

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/cafb-tech/alacarte/internal/cli/formatter"
)

// alacarteHuhTheme returns a custom huh theme using the formatter palette.
func alacarteHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// preferences collects the find inputs gathered interactively.
type preferences struct {
	Address  string
	DateStr  string
	Period   string
	Dietary  string
	Language string
}

// DietaryNotes splits the free-text dietary answer into individual notes.
func (p preferences) DietaryNotes() []string {
	if p.Dietary == "" {
		return nil
	}
	parts := strings.Split(p.Dietary, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// runPreferenceForm asks for anything the flags did not provide.
func runPreferenceForm(p *preferences) error {
	var groups []*huh.Group

	if p.Address == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Where are you starting from?").
				Description("A street address or neighborhood").
				Placeholder("e.g. 1234 Good Hope Rd SE, Washington, DC").
				Value(&p.Address),
		))
	}

	if p.DateStr == "" || p.DateStr == "today" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("When do you want to pick up food?").
				Options(
					huh.NewOption("Today", "today"),
					huh.NewOption("Tomorrow", "tomorrow"),
				).
				Value(&p.DateStr),
		))
	}

	if p.Period == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("What time of day works best?").
				Options(
					huh.NewOption("Morning (6am-noon)", "morning"),
					huh.NewOption("Afternoon (noon-5pm)", "afternoon"),
					huh.NewOption("Evening (5pm-9pm)", "evening"),
					huh.NewOption("Night (9pm-midnight)", "night"),
				).
				Value(&p.Period),
		))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Any dietary needs?").
			Description("Comma separated, leave blank to skip").
			Placeholder("halal, vegetarian").
			Value(&p.Dietary),
	))

	return huh.NewForm(groups...).
		WithTheme(alacarteHuhTheme()).
		WithShowHelp(false).
		Run()
}
