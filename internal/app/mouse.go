package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/liquid/internal/ui/carouselview"
)

// handleMouse routes mouse events: hover reveals hidden arrows, clicks on
// the arrows navigate, a drag across the cards swipes, the wheel scrolls.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Cmdline.Active() {
		return m, nil
	}

	hit := m.Surface.HitTest(msg.X, msg.Y)
	if hovered := hit != carouselview.HitNone; hovered != m.Surface.Hovered() {
		m.Surface.SetHovered(hovered)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return m.handlePress(msg, hit)
	case tea.MouseActionRelease:
		if m.Carousel.Swiping() {
			cmd := m.navigated(m.Carousel.SwipeEnd(msg.X))
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handlePress(msg tea.MouseMsg, hit carouselview.Hit) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if hit != carouselview.HitNone {
			cmd = m.navigated(m.Carousel.Next())
		}
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if hit != carouselview.HitNone {
			cmd = m.navigated(m.Carousel.Previous())
		}
	case tea.MouseButtonLeft:
		if m.session.helpOpen {
			m.session.helpOpen = false
			break
		}
		switch hit {
		case carouselview.HitPrevious:
			cmd = m.navigated(m.Carousel.Previous())
		case carouselview.HitNext:
			cmd = m.navigated(m.Carousel.Next())
		case carouselview.HitItems:
			m.Carousel.SwipeStart(msg.X)
		case carouselview.HitNone:
		}
	}
	return m, cmd
}
