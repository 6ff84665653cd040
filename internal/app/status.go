package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 4 * time.Second

// Status is a transient message shown in place of the window summary.
type Status struct {
	Text    string
	IsError bool
	version int
}

// statusClearMsg clears the status if no newer one replaced it.
type statusClearMsg struct {
	version int
}

// setStatus shows text and returns the command that clears it later.
func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.Status = Status{Text: text, IsError: isError, version: m.Status.version + 1}
	version := m.Status.version
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{version: version}
	})
}

func (m *Model) clearStatus(msg statusClearMsg) {
	if msg.version == m.Status.version {
		m.Status = Status{version: m.Status.version}
	}
}
