package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/liquid/internal/keymap"
	"github.com/llehouerou/liquid/internal/ui/headerbar"
	"github.com/llehouerou/liquid/internal/ui/layout"
	"github.com/llehouerou/liquid/internal/ui/overlay"
	"github.com/llehouerou/liquid/internal/ui/render"
	"github.com/llehouerou/liquid/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	lines := render.Canvas(m.Width, m.Height)
	lines[0] = m.fit(headerbar.Render(m.Deck.Name, len(m.Deck.Cards), m.Width))

	_, row := m.Surface.Origin()
	for i, line := range strings.Split(m.Surface.View(), "\n") {
		if r := row + i; r > 0 && r < m.Height {
			lines[r] = m.fit(line)
		}
	}

	if m.Height > layout.HeaderHeight+layout.StatusHeight {
		lines[m.Height-2] = m.fit(m.renderStatus())
	}
	if m.Height > layout.HeaderHeight {
		lines[m.Height-1] = m.fit(m.renderHelpLine())
	}

	view := strings.Join(lines, "\n")
	if m.session.helpOpen {
		popup := lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.renderHelpPopup())
		view = overlay.Compose(view, popup, m.Width)
	}
	return view
}

// fit truncates or pads a styled line to the window width.
func (m Model) fit(line string) string {
	return render.PadStyled(ansi.Truncate(line, m.Width, ""), m.Width)
}

// renderStatus shows the prompt, a transient message, or the window summary.
func (m Model) renderStatus() string {
	if m.Cmdline.Active() {
		return m.Cmdline.View()
	}
	s := styles.T().S()
	if m.Status.Text != "" {
		if m.Status.IsError {
			return s.Error.Render(m.Status.Text)
		}
		return s.Base.Render(m.Status.Text)
	}

	win := m.Carousel.Window()
	left := ""
	if !win.IsEmpty() {
		first := m.Deck.Cards[win.First].Title
		last := m.Deck.Cards[win.Last].Title
		left = first
		if win.Last != win.First {
			left += " → " + last
		}
	}

	right := fmt.Sprintf("%s · seen %d", m.Carousel.String(), m.Seen())
	if m.session.moves > 0 {
		right += " · moved " + humanize.Time(m.session.lastMove)
	}
	return render.Row(s.Base.Render(left), s.Muted.Render(right), m.Width)
}

func (m Model) renderHelpLine() string {
	h := m.Help
	h.Width = m.Width
	return h.View(keymap.NewHelp(m.Keys))
}

func (m Model) renderHelpPopup() string {
	km := keymap.NewHelp(m.Keys)
	h := m.Help
	h.ShowAll = true
	body := h.View(km)

	padX := styles.HelpPanelStyle().GetHorizontalFrameSize()
	w, _ := layout.PopupSize(m.Width, m.Height, lipgloss.Width(body)+padX, lipgloss.Height(body))
	if lipgloss.Width(body)+padX > w {
		h.Width = max(w-padX, 1)
		body = h.View(km)
	}
	return styles.HelpPanelStyle().Render(body)
}
