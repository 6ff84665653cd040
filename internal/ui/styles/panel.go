package styles

import "github.com/charmbracelet/lipgloss"

var (
	unfocusedBorderColor = lipgloss.Color("240")
	focusedBorderColor   = lipgloss.Color("39") // cyan/blue

	unfocusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(unfocusedBorderColor)

	focusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(focusedBorderColor)

	helpPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(focusedBorderColor).
			Padding(0, 1)
)

// PanelStyle returns the carousel frame style based on hover/focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedPanelStyle
	}
	return unfocusedPanelStyle
}

// HelpPanelStyle returns the style of the full help popup.
func HelpPanelStyle() lipgloss.Style {
	return helpPanelStyle
}
