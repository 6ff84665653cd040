// Package cmdline provides the one-line ":" prompt used to call carousel
// methods by name.
package cmdline

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/liquid/internal/ui"
	"github.com/llehouerou/liquid/internal/ui/render"
	"github.com/llehouerou/liquid/internal/ui/styles"
)

const (
	prompt = ":"
	cursor = "█"
)

// SubmitMsg carries the entered command line.
type SubmitMsg struct {
	Text string
}

// CancelMsg is sent when the prompt is dismissed without a command.
type CancelMsg struct{}

// Model is the prompt. It is inactive until Open is called.
type Model struct {
	ui.Base
	active  bool
	text    []rune
	history []string
	histPos int // len(history) when not browsing

	completions []string
}

// New creates an inactive prompt.
func New() *Model {
	return &Model{}
}

// Open activates the prompt with an empty line.
func (m *Model) Open() {
	m.active = true
	m.text = nil
	m.histPos = len(m.history)
}

// Close deactivates the prompt.
func (m *Model) Close() {
	m.active = false
	m.text = nil
}

// Active reports whether the prompt takes the keyboard.
func (m *Model) Active() bool {
	return m.active
}

// Text returns the line being edited.
func (m *Model) Text() string {
	return string(m.text)
}

// History returns the submitted lines, oldest first.
func (m *Model) History() []string {
	return m.history
}

// Update handles key presses while active.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.Close()
		return func() tea.Msg { return CancelMsg{} }

	case tea.KeyEnter:
		text := strings.TrimSpace(string(m.text))
		m.Close()
		if text == "" {
			return func() tea.Msg { return CancelMsg{} }
		}
		if len(m.history) == 0 || m.history[len(m.history)-1] != text {
			m.history = append(m.history, text)
		}
		return func() tea.Msg { return SubmitMsg{Text: text} }

	case tea.KeyBackspace:
		if len(m.text) == 0 {
			m.Close()
			return func() tea.Msg { return CancelMsg{} }
		}
		m.text = m.text[:len(m.text)-1]

	case tea.KeyUp:
		if m.histPos > 0 {
			m.histPos--
			m.text = []rune(m.history[m.histPos])
		}

	case tea.KeyDown:
		if m.histPos < len(m.history)-1 {
			m.histPos++
			m.text = []rune(m.history[m.histPos])
		} else {
			m.histPos = len(m.history)
			m.text = nil
		}

	case tea.KeyTab:
		m.complete()

	case tea.KeySpace:
		m.text = append(m.text, ' ')

	case tea.KeyRunes:
		m.text = append(m.text, key.Runes...)
	}

	return nil
}

// View renders the prompt on one line, keeping the end of long input
// visible.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()

	text := string(m.text)
	room := m.Width() - len(prompt) - 1
	if room > 0 && render.Width(text) > room {
		text = render.TruncateLeft(text, room)
	}
	line := s.Title.Render(prompt) + s.Base.Render(text) + s.Muted.Render(cursor)
	return render.PadStyled(line, m.Width())
}
