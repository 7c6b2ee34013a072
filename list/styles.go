package list

import (
	"github.com/charmbracelet/lipgloss"

	"rowselect/theme"
)

// Styles contains all the style definitions for the widget
type Styles struct {
	Title     lipgloss.Style
	Row       lipgloss.Style
	CursorRow lipgloss.Style
	Selected  lipgloss.Style
	Indicator lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Dim       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return StylesFromTheme(theme.Default())
}

// StylesFromTheme builds widget styles from a theme palette.
func StylesFromTheme(t *theme.Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TitleColor)).
			MarginBottom(1),
		Row:       lipgloss.NewStyle(),
		CursorRow: lipgloss.NewStyle().Background(lipgloss.Color(t.CursorBg)),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.SelectedFg)).Bold(true),
		Indicator: lipgloss.NewStyle().Foreground(lipgloss.Color(t.IndicatorColor)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpColor)).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Dim:  lipgloss.NewStyle().Faint(true),
	}
}
