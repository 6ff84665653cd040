package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/errmsg"
	"github.com/llehouerou/liquid/internal/keymap"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Cmdline.Active() {
		return m, m.Cmdline.Update(msg)
	}

	action := m.Keys.Resolve(msg.String())

	// The help popup swallows every key. Quit still quits.
	if m.session.helpOpen {
		switch action {
		case keymap.ActionQuit:
			return m.quit()
		default:
			m.session.helpOpen = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch action {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.session.helpOpen = true
	case keymap.ActionCommand:
		m.Cmdline.SetSize(m.Width, 1)
		m.Cmdline.Open()
	case keymap.ActionNext:
		cmd = m.navigated(m.Carousel.Next())
	case keymap.ActionPrevious:
		cmd = m.navigated(m.Carousel.Previous())
	case keymap.ActionFirst:
		cmd = m.rewind(m.Carousel.Previous)
	case keymap.ActionLast:
		cmd = m.rewind(m.Carousel.Next)
	case keymap.ActionRedraw:
		m.Carousel.Redraw()
		cmd = m.afterMove()
	case keymap.ActionToggleNavigation:
		cmd = m.setOption(carousel.OptHideNavigation, !m.Carousel.Options().HideNavigation)
	case keymap.ActionToggleTransitions:
		cmd = m.setOption(carousel.OptNoTransitions, !m.Carousel.Options().NoTransitions)
	case keymap.ActionTaller:
		cmd = m.setOption(carousel.OptHeight, m.Carousel.Options().Height+1)
	case keymap.ActionShorter:
		cmd = m.setOption(carousel.OptHeight, m.Carousel.Options().Height-1)
	}

	return m, cmd
}

// rewind repeats a navigation until the window stops moving.
func (m *Model) rewind(step func() (bool, error)) tea.Cmd {
	movedAny := false
	for range m.Carousel.ItemCount() {
		moved, err := step()
		if err != nil {
			return m.setError(err)
		}
		if !moved {
			break
		}
		movedAny = true
	}
	return m.navigated(movedAny, nil)
}

// setOption changes an option, mirrors it on the view, saves it for the
// deck and reports it on the status line.
func (m *Model) setOption(name string, value any) tea.Cmd {
	if err := m.Carousel.SetOption(name, value); err != nil {
		return m.setStatus(errmsg.Format(errmsg.OpOptionSet, err), true)
	}

	opts := m.Carousel.Options()
	switch name {
	case carousel.OptHideNavigation:
		m.Surface.SetHideNavigation(opts.HideNavigation)
	case carousel.OptHeight:
		m.layout(opts.Height)
	}

	v, _ := opts.Get(name)
	m.rememberOption(name, v)

	text := fmt.Sprintf("%s = %s", name, formatValue(v))
	if name == carousel.OptNoTransitions && !opts.NoTransitions && !m.Carousel.UsesTransitions() {
		text += " (native transitions unavailable)"
	}
	return tea.Batch(m.setStatus(text, false), m.Surface.Tick())
}

func (m *Model) setError(err error) tea.Cmd {
	return m.setStatus(errmsg.Format(errmsg.OpNavigate, err), true)
}

// quit destroys the carousel and ends the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Carousel.Destroy()
	return m, tea.Quit
}
