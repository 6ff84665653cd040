// Package overlay composes ANSI-styled blocks onto a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		// Strip ANSI to find visible content bounds
		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue // empty line (visually)
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		baseLines[i] = splice(baseLines[i], ansi.Cut(overlayLine, startCol, endCol), startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// Place draws block onto base with its top-left corner at (col, row).
// The block may start left of column 0 or run past width; only the part
// inside [0, width) is drawn. Rows outside base are dropped.
func Place(base []string, block []string, col, row, width int) {
	for i, line := range block {
		y := row + i
		if y < 0 || y >= len(base) {
			continue
		}

		lineWidth := ansi.StringWidth(line)
		from := max(-col, 0)
		to := min(lineWidth, width-col)
		if from >= to {
			continue
		}

		startCol := col + from
		endCol := col + to
		base[y] = splice(base[y], ansi.Cut(line, from, to), startCol, endCol, width)
	}
}

// splice replaces columns [startCol, endCol) of baseLine with content,
// padding the base to width first.
func splice(baseLine, content string, startCol, endCol, width int) string {
	baseWidth := ansi.StringWidth(baseLine)
	if baseWidth < width {
		baseLine += strings.Repeat(" ", width-baseWidth)
	}

	// When cutting through a wide character (like emoji), ansi.Cut may return
	// a shorter or longer string. Pad or trim to keep columns aligned.
	prefix := ansi.Cut(baseLine, 0, startCol)
	if w := ansi.StringWidth(prefix); w < startCol {
		prefix += strings.Repeat(" ", startCol-w)
	}

	result := prefix + content
	if w := ansi.StringWidth(content); w < endCol-startCol {
		result += strings.Repeat(" ", endCol-startCol-w)
	}

	if endCol < width {
		suffix := ansi.Cut(baseLine, endCol, width)
		expected := width - endCol
		switch w := ansi.StringWidth(suffix); {
		case w > expected:
			suffix = " " + ansi.Cut(suffix, w-expected+1, w)
		case w < expected:
			suffix += strings.Repeat(" ", expected-w)
		}
		result += suffix
	}

	return result
}
