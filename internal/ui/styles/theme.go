package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the carousel.
type Theme struct {
	// Accent gradient used for card titles and borders, first to last card
	AccentFrom lipgloss.Color
	AccentTo   lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Navigation arrows
	Arrow         lipgloss.Color
	ArrowDisabled lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base          lipgloss.Style
	Muted         lipgloss.Style
	Subtle        lipgloss.Style
	Title         lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Error         lipgloss.Style
	Warning       lipgloss.Style
}

var defaultTheme = Theme{
	AccentFrom: lipgloss.Color("#a78bfa"),
	AccentTo:   lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Arrow:         lipgloss.Color("#a78bfa"),
	ArrowDisabled: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:          base,
		Muted:         lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:        lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:         base.Bold(true),
		Arrow:         lipgloss.NewStyle().Foreground(t.Arrow).Bold(true),
		ArrowDisabled: lipgloss.NewStyle().Foreground(t.ArrowDisabled),
		Error:         lipgloss.NewStyle().Foreground(t.Error),
		Warning:       lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// CardStyle returns the bordered box style for a card with the given accent.
func CardStyle(accent lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
}
