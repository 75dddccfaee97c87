package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Section region
	Region        lipgloss.Style
	Title         lipgloss.Style
	PreviousTitle lipgloss.Style
	Arrow         lipgloss.Style

	// Position indicator
	Dot       lipgloss.Style
	ActiveDot lipgloss.Style

	// Status line
	Status        lipgloss.Style
	StatusCapture lipgloss.Style
	StatusNative  lipgloss.Style
	Error         lipgloss.Style
	Success       lipgloss.Style

	// Help bar
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// DefaultStyles returns the styles for the default theme.
func DefaultStyles() Styles {
	return StylesFor(ThemeTokyoNight)
}

// StylesFor builds the style set for a theme.
func StylesFor(id ThemeID) Styles {
	c := Theme(id)
	return Styles{
		Body:  lipgloss.NewStyle().Foreground(c.Foreground),
		Muted: lipgloss.NewStyle().Foreground(c.Muted),
		Bold:  lipgloss.NewStyle().Foreground(c.Foreground).Bold(true),

		Region:        lipgloss.NewStyle().Background(c.Region),
		Title:         lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		PreviousTitle: lipgloss.NewStyle().Foreground(c.Muted).Faint(true),
		Arrow:         lipgloss.NewStyle().Foreground(c.Secondary),

		Dot:       lipgloss.NewStyle().Foreground(c.Muted),
		ActiveDot: lipgloss.NewStyle().Foreground(c.Primary).Bold(true),

		Status:        lipgloss.NewStyle().Foreground(c.Muted),
		StatusCapture: lipgloss.NewStyle().Foreground(c.Background).Background(c.Primary).Padding(0, 1),
		StatusNative:  lipgloss.NewStyle().Foreground(c.Background).Background(c.Muted).Padding(0, 1),
		Error:         lipgloss.NewStyle().Foreground(c.Error),
		Success:       lipgloss.NewStyle().Foreground(c.Success),

		HelpKey:  lipgloss.NewStyle().Foreground(c.Secondary),
		HelpDesc: lipgloss.NewStyle().Foreground(c.Muted),
	}
}
