package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/errmsg"
	"github.com/llehouerou/liquid/internal/ui/cmdline"
)

// runCommand executes a ":" line: a public carousel method followed by its
// arguments, e.g. "next", "option height", "option height 9".
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}
	method := fields[0]
	args := make([]any, 0, len(fields)-1)
	for i, f := range fields[1:] {
		if method == carousel.MethodOption && i == 0 {
			args = append(args, f) // option name stays a string
			continue
		}
		args = append(args, parseValue(f))
	}

	m.log.Debug().Str("method", method).Int("args", len(args)).Msg("command")

	if method == carousel.MethodOption && len(args) == 2 {
		name, _ := args[0].(string)
		var cmd tea.Cmd
		if _, err := m.Carousel.Option(name); err != nil {
			cmd = m.setStatus(errmsg.Format(errmsg.OpInvoke, err), true)
		} else {
			cmd = m.setOption(name, args[1])
		}
		return m, cmd
	}

	result, err := m.Carousel.Invoke(method, args...)
	if err != nil {
		text := errmsg.Format(errmsg.OpInvoke, err)
		if errors.Is(err, carousel.ErrUnknownMethod) {
			if s, ok := cmdline.Suggest(method, carousel.Methods); ok {
				text += fmt.Sprintf(" (did you mean %s?)", s)
			}
		}
		cmd := m.setStatus(text, true)
		return m, cmd
	}

	var cmd tea.Cmd
	switch method {
	case carousel.MethodNext, carousel.MethodPrevious, carousel.MethodRedraw:
		move := m.afterMove()
		cmd = tea.Batch(m.setStatus(m.Carousel.String(), false), move)
	case carousel.MethodDestroy:
		cmd = tea.Quit
	case carousel.MethodOption:
		cmd = m.setStatus(fmt.Sprintf("%s = %s", args[0], formatValue(result)), false)
	}
	return m, cmd
}

// parseValue turns a typed or stored word into the value an option
// expects: an int, a bool, a duration, or the word itself.
func parseValue(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return s
}

// formatValue renders an option value so that parseValue reads it back.
func formatValue(v any) string {
	switch v := v.(type) {
	case time.Duration:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
