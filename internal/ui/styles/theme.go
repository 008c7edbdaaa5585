// Package styles holds the color palette and pre-built lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/config"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Backgrounds
	Base     lipgloss.Color // Window background
	Surface0 lipgloss.Color // Panels, empty progress
	Surface1 lipgloss.Color // Cursor row, album art placeholder

	// Text hierarchy (most to least prominent)
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Overlay0 lipgloss.Color

	// Accents
	Blue     lipgloss.Color // Filled progress, playing track
	Lavender lipgloss.Color // Titles, focused borders
	Red      lipgloss.Color // Errors

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base        lipgloss.Style // Default text
	Muted       lipgloss.Style // Artist, album
	Subtle      lipgloss.Style // Hints, sizes
	Title       lipgloss.Style // Bold, accent
	Playing     lipgloss.Style // Loaded track in the playlist
	Cursor      lipgloss.Style // Cursor row highlight
	Error       lipgloss.Style
	Panel       lipgloss.Style // Bordered panel
	PanelFocus  lipgloss.Style
	BarFilled   lipgloss.Style
	BarEmpty    lipgloss.Style
	Placeholder lipgloss.Style // Album art block when there is no picture
}

// New builds a theme from the configured palette.
func New(p config.Theme) *Theme {
	return &Theme{
		Base:     lipgloss.Color(p.Base),
		Surface0: lipgloss.Color(p.Surface0),
		Surface1: lipgloss.Color(p.Surface1),
		Text:     lipgloss.Color(p.Text),
		Subtext0: lipgloss.Color(p.Subtext0),
		Overlay0: lipgloss.Color(p.Overlay0),
		Blue:     lipgloss.Color(p.Blue),
		Lavender: lipgloss.Color(p.Lavender),
		Red:      lipgloss.Color(p.Red),
	}
}

// Default returns the Catppuccin Mocha theme.
func Default() *Theme {
	return New(config.Default().Theme)
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.Text)
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Surface1)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.Subtext0),
		Subtle: lipgloss.NewStyle().Foreground(t.Overlay0),
		Title:  lipgloss.NewStyle().Foreground(t.Lavender).Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Blue).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.Surface1).
			Foreground(t.Text),
		Error:       lipgloss.NewStyle().Foreground(t.Red),
		Panel:       panel,
		PanelFocus:  panel.BorderForeground(t.Lavender),
		BarFilled:   lipgloss.NewStyle().Foreground(t.Blue),
		BarEmpty:    lipgloss.NewStyle().Foreground(t.Surface0),
		Placeholder: lipgloss.NewStyle().Background(t.Surface1),
	}
}

// PanelStyle returns the appropriate panel style based on focus state.
func (t *Theme) PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return t.S().PanelFocus
	}
	return t.S().Panel
}
