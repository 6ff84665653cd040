// Package headerbar renders the one-line header above the carousel.
package headerbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/liquid/internal/ui/render"
	"github.com/llehouerou/liquid/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appName = "liquid"

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240"))

// Render returns the header for a deck: the program name and deck name on
// the left, the card count on the right. Narrow widths drop the count
// first, then the deck name.
func Render(deckName string, cards, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	name := styles.Accent().Bold(appName)
	left := name + separatorStyle.Render(" · ") + s.Muted.Render(render.Sanitize(deckName))
	right := s.Subtle.Render(humanize.Comma(int64(cards)) + " " + plural(cards, "card"))

	switch {
	case lipgloss.Width(left)+1+lipgloss.Width(right) <= width:
		return render.Row(left, right, width)
	case lipgloss.Width(left) <= width:
		return render.PadStyled(left, width)
	default:
		return render.PadStyled(name, width)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
