package carouselview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/liquid/internal/ui"
)

// FrameMsg advances running animations by one frame.
type FrameMsg struct {
	id int
}

// Tick returns the command scheduling the next frame, or nil when nothing
// moves or a frame is already scheduled. Call it after anything that may
// have started a move.
func (m *Model) Tick() tea.Cmd {
	if m.ticking || !m.Animating() {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{id: id}
	})
}

// Update handles frame messages addressed to this model.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != m.id {
		return nil
	}
	m.ticking = false
	m.Step()
	return m.Tick()
}

// Step advances every moving card by one frame.
func (m *Model) Step() {
	for i := range m.items {
		m.items[i].step(m.spring)
	}
}

// Hit is the part of the carousel under a screen cell.
type Hit int

const (
	HitNone     Hit = iota // outside the carousel
	HitPrevious            // left navigation gutter
	HitNext                // right navigation gutter
	HitItems               // the viewport
)

// HitTest locates a screen cell, using the origin set with SetOrigin.
func (m *Model) HitTest(screenX, screenY int) Hit {
	x, _, inside := m.Local(screenX, screenY)
	switch {
	case !inside:
		return HitNone
	case x < ui.NavWidth:
		return HitPrevious
	case x >= m.Width()-ui.NavWidth:
		return HitNext
	default:
		return HitItems
	}
}
