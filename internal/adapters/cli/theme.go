package cli

import "github.com/charmbracelet/lipgloss"

// Theme is the colour palette used for result cards.
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color

	Perfect lipgloss.Color
	Great   lipgloss.Color
	Good    lipgloss.Color
	Fair    lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#7C3AED"),
		Muted:   lipgloss.Color("#6C7086"),
		Border:  lipgloss.Color("#45475A"),
		Error:   lipgloss.Color("#F38BA8"),
		Perfect: lipgloss.Color("#A6E3A1"),
		Great:   lipgloss.Color("#94E2D5"),
		Good:    lipgloss.Color("#F9E2AF"),
		Fair:    lipgloss.Color("#FAB387"),
	}
}

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	card   lipgloss.Style
	score  lipgloss.Style
	errMsg lipgloss.Style
	tiers  map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, t Theme) styles {
	tier := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(c)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(t.Primary),
		muted:  r.NewStyle().Foreground(t.Muted),
		card:   r.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		score:  r.NewStyle().Bold(true),
		errMsg: r.NewStyle().Foreground(t.Error),
		tiers: map[string]lipgloss.Style{
			"Perfect": tier(t.Perfect),
			"Great":   tier(t.Great),
			"Good":    tier(t.Good),
			"Fair":    tier(t.Fair),
		},
	}
}
