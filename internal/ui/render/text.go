// Package render provides text rendering utilities for carousel cards and
// the surrounding frame.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 so
// deck content cannot break the terminal. Non-breaking spaces become spaces.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if
// truncated. Wide characters (CJK, emoji) count for their display width.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// TruncateLeft keeps the last maxWidth cells of s, marking the cut with a
// leading ellipsis.
func TruncateLeft(s string, maxWidth int) string {
	s = Sanitize(s)
	w := runewidth.StringWidth(s)
	if w <= maxWidth {
		return s
	}
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.TruncateLeft(s, w-maxWidth+1, "…")
}

// Width returns the display width of plain text.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadStyled pads a string that may carry ANSI styles to width.
func PadStyled(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Center pads s on both sides to width. Extra space goes to the right.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Row creates a row with left and right aligned content separated by spaces.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}

// Canvas returns height blank lines of the given width.
func Canvas(width, height int) []string {
	lines := make([]string, max(height, 0))
	for i := range lines {
		lines[i] = EmptyLine(width)
	}
	return lines
}

// WrapLines splits text on newlines, sanitizes each line and truncates it to
// maxWidth. At most maxLines lines are kept; a dropped tail is marked with
// an ellipsis on the last kept line.
func WrapLines(text string, maxWidth, maxLines int) []string {
	if text == "" || maxLines <= 0 {
		return nil
	}
	raw := strings.Split(strings.TrimRight(text, "\n"), "\n")
	lines := make([]string, 0, min(len(raw), maxLines))
	for i, line := range raw {
		if i == maxLines {
			last := lines[len(lines)-1]
			lines[len(lines)-1] = Truncate(last+" …", maxWidth)
			break
		}
		lines = append(lines, Truncate(line, maxWidth))
	}
	return lines
}
