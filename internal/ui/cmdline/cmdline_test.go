package cmdline

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/liquid/internal/ui/testutil"
)

func typeText(m *Model, text string) {
	for _, r := range text {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, k tea.KeyType) tea.Msg {
	return testutil.ExecuteCmd(m.Update(tea.KeyMsg{Type: k}))
}

func TestCmdline_Submit(t *testing.T) {
	m := New()
	m.Open()
	typeText(m, "option height 9")

	msg := press(m, tea.KeyEnter)

	submit, ok := msg.(SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg, got %T", msg)
	}
	if submit.Text != "option height 9" {
		t.Errorf("Text = %q, want %q", submit.Text, "option height 9")
	}
	if m.Active() {
		t.Error("prompt should close after submit")
	}
}

func TestCmdline_Cancel(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		key   tea.KeyType
	}{
		{"escape", "next", tea.KeyEsc},
		{"enter on blank line", "   ", tea.KeyEnter},
		{"backspace on empty line", "", tea.KeyBackspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Open()
			typeText(m, tt.typed)

			if msg := press(m, tt.key); msg != (CancelMsg{}) {
				t.Errorf("expected CancelMsg, got %#v", msg)
			}
			if m.Active() {
				t.Error("prompt should be closed")
			}
		})
	}
}

func TestCmdline_BackspaceIsRuneAware(t *testing.T) {
	m := New()
	m.Open()
	typeText(m, "né")

	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace}); cmd != nil {
		t.Fatal("backspace with text left should not close the prompt")
	}
	if m.Text() != "n" {
		t.Errorf("Text = %q, want %q", m.Text(), "n")
	}
}

func TestCmdline_History(t *testing.T) {
	m := New()
	for _, line := range []string{"next", "previous", "previous"} {
		m.Open()
		typeText(m, line)
		press(m, tea.KeyEnter)
	}

	if got := strings.Join(m.History(), ","); got != "next,previous" {
		t.Fatalf("History = %q, repeated lines should be kept once", got)
	}

	m.Open()
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Text() != "previous" {
		t.Errorf("after up: %q", m.Text())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Text() != "next" {
		t.Errorf("up stops at the oldest line: %q", m.Text())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Text() != "" {
		t.Errorf("down past the newest line clears: %q", m.Text())
	}
}

func TestCmdline_InactiveIgnoresKeys(t *testing.T) {
	m := New()
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("inactive prompt should not emit commands")
	}
	if m.View() != "" {
		t.Error("inactive prompt should render nothing")
	}
}

func TestCmdline_View(t *testing.T) {
	m := New()
	m.SetSize(12, 1)
	m.Open()
	typeText(m, "option height 12")

	view := m.View()
	if w := testutil.MeasureWidth(view); w != 12 {
		t.Errorf("view width = %d, want 12", w)
	}
	plain := testutil.StripANSI(view)
	if !strings.HasPrefix(plain, ":…") || !strings.Contains(plain, "12█") {
		t.Errorf("view = %q, want the tail of the line after the prompt", plain)
	}
}
