package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/liquid/internal/ui/carouselview"
	"github.com/llehouerou/liquid/internal/ui/cmdline"
	"github.com/llehouerou/liquid/internal/ui/layout"
)

// frame is the set of rows drawn around the carousel.
var frame = layout.FrameOpts{ShowHelp: true}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.layout(m.Carousel.Options().Height)
		m.Carousel.Redraw()
		cmd := m.afterMove()
		return m, cmd

	case carouselview.FrameMsg:
		return m, m.Surface.Update(msg)

	case statusClearMsg:
		m.clearStatus(msg)
		return m, nil

	case cmdline.SubmitMsg:
		return m.runCommand(msg.Text)

	case cmdline.CancelMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// layout sizes and positions the carousel for the current window size.
func (m *Model) layout(requested int) {
	h := layout.CarouselHeight(requested, m.Height, frame)
	m.Surface.SetSize(m.Width, h)
	m.Surface.SetOrigin(0, layout.CarouselRow(h, m.Height, frame))
}

// afterMove refreshes everything derived from the window and starts the
// animation frames if some card is moving.
func (m *Model) afterMove() tea.Cmd {
	m.Surface.SetEdges(m.Carousel.AtStart(), m.Carousel.AtEnd())
	m.saveWindow()
	return m.Surface.Tick()
}

// navigated handles the result of a carousel navigation.
func (m *Model) navigated(moved bool, err error) tea.Cmd {
	if err != nil {
		return m.setError(err)
	}
	if !moved {
		return nil
	}
	return m.afterMove()
}
