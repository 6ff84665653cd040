package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a tea.Model in tests, keeping the commands it returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps a model and captures its init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// Send delivers a message and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing a rune key such as "q" or "?".
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (left, right, home...).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Commands returns the commands collected since creation or the last
// ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// Settle runs collected commands and feeds their messages back until no
// command is left or max rounds have run. Batches are expanded; tea.Quit
// stops the loop. Returns true if the model asked to quit.
func (h *Harness) Settle(maxRounds int) bool {
	for range maxRounds {
		pending := h.cmds
		h.cmds = nil
		if len(pending) == 0 {
			return false
		}
		for len(pending) > 0 {
			cmd := pending[0]
			pending = pending[1:]
			if cmd == nil {
				continue
			}
			switch msg := cmd().(type) {
			case nil:
			case tea.QuitMsg:
				return true
			case tea.BatchMsg:
				pending = append(pending, msg...)
			default:
				h.Send(msg)
			}
		}
	}
	return false
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
