package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ThemeID identifies a color theme.
type ThemeID string

const (
	ThemeTokyoNight ThemeID = "tokyo-night"
	ThemeDayLight   ThemeID = "day-light"
)

// ThemeColors defines all colors used by the application.
type ThemeColors struct {
	Background color.Color
	Foreground color.Color
	Muted      color.Color
	Border     color.Color

	Primary   color.Color
	Secondary color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color

	Region color.Color // section region backdrop
}

var themes = map[ThemeID]ThemeColors{
	ThemeTokyoNight: {
		Background: lipgloss.Color("#1a1b26"),
		Foreground: lipgloss.Color("#a9b1d6"),
		Muted:      lipgloss.Color("#565f89"),
		Border:     lipgloss.Color("#292e42"),
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#bb9af7"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
		Region:     lipgloss.Color("#1f2335"),
	},
	ThemeDayLight: {
		Background: lipgloss.Color("#fafafa"),
		Foreground: lipgloss.Color("#383a42"),
		Muted:      lipgloss.Color("#a0a1a7"),
		Border:     lipgloss.Color("#d4d4d4"),
		Primary:    lipgloss.Color("#4078f2"),
		Secondary:  lipgloss.Color("#a626a4"),
		Success:    lipgloss.Color("#50a14f"),
		Warning:    lipgloss.Color("#c18401"),
		Error:      lipgloss.Color("#e45649"),
		Region:     lipgloss.Color("#f0f0f0"),
	},
}

// Theme returns the colors for id, falling back to tokyo-night.
func Theme(id ThemeID) ThemeColors {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[ThemeTokyoNight]
}
