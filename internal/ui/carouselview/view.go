package carouselview

import (
	"strings"

	"github.com/llehouerou/liquid/internal/ui"
	"github.com/llehouerou/liquid/internal/ui/overlay"
	"github.com/llehouerou/liquid/internal/ui/render"
	"github.com/llehouerou/liquid/internal/ui/styles"
)

const (
	arrowPrevious = "‹"
	arrowNext     = "›"
)

// View draws the cards at their current positions between the two
// navigation gutters.
func (m *Model) View() string {
	height := m.Height()
	if height <= 0 {
		return ""
	}

	vw := m.ViewportWidth()
	lines := render.Canvas(vw, height)
	for i := range m.items {
		left := m.items[i].left()
		if left >= vw || left+m.widths[i] <= 0 {
			continue
		}
		overlay.Place(lines, m.cards[i], left, m.items[i].top, vw)
	}

	blank := render.EmptyLine(ui.NavWidth)
	prev, next := m.arrows()
	mid := height / 2

	var b strings.Builder
	for r, line := range lines {
		if r > 0 {
			b.WriteByte('\n')
		}
		if r == mid {
			b.WriteString(prev)
			b.WriteString(line)
			b.WriteString(next)
			continue
		}
		b.WriteString(blank)
		b.WriteString(line)
		b.WriteString(blank)
	}
	return b.String()
}

// arrows returns the left and right gutters of the middle row.
func (m *Model) arrows() (string, string) {
	if m.hideNavigation && !m.hovered {
		blank := render.EmptyLine(ui.NavWidth)
		return blank, blank
	}
	s := styles.T().S()

	prevStyle, nextStyle := s.Arrow, s.Arrow
	if m.atStart {
		prevStyle = s.ArrowDisabled
	}
	if m.atEnd {
		nextStyle = s.ArrowDisabled
	}
	pad := render.EmptyLine(ui.NavWidth - 1)
	return prevStyle.Render(arrowPrevious) + pad, pad + nextStyle.Render(arrowNext)
}
