package carouselview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/liquid/internal/deck"
	"github.com/llehouerou/liquid/internal/ui"
	"github.com/llehouerou/liquid/internal/ui/render"
	"github.com/llehouerou/liquid/internal/ui/styles"
)

// renderCards draws every card once. Cards without an accent take their
// border color from the theme palette, spread across the deck.
func renderCards(cards []deck.Card, height int) [][]string {
	palette := styles.Accent().Colors(len(cards))

	out := make([][]string, len(cards))
	for i, c := range cards {
		border := palette[i]
		if c.Accent != "" {
			border = lipgloss.Color(c.Accent)
		}
		out[i] = renderCard(c, border, height)
	}
	return out
}

// renderCard returns the lines of a bordered card no taller than maxHeight
// when the content allows it. A card always keeps its title row.
func renderCard(c deck.Card, border lipgloss.Color, maxHeight int) []string {
	s := styles.T().S()

	var rows []string
	if title := render.Truncate(render.Sanitize(c.Title), ui.MaxCardWidth); title != "" {
		rows = append(rows, styles.Gradient{From: border, To: styles.T().AccentTo}.Bold(title))
	}

	bodyLines := max(maxHeight-ui.BorderHeight-len(rows), 0)
	for _, line := range render.WrapLines(c.Body, ui.MaxCardWidth, bodyLines) {
		rows = append(rows, s.Muted.Render(line))
	}
	if len(rows) == 0 {
		rows = append(rows, "")
	}

	box := styles.CardStyle(border).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return strings.Split(box, "\n")
}
