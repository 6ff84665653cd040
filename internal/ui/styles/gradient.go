package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for colors that are not "#rrggbb", such as ANSI
// palette indexes, which cannot be blended.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient blends between two colors in HCL space.
type Gradient struct {
	From lipgloss.Color
	To   lipgloss.Color
}

// Accent returns the theme gradient used for titles and card borders.
func Accent() Gradient {
	t := T()
	return Gradient{From: t.AccentFrom, To: t.AccentTo}
}

// Colors returns n colors, the first being From and the last To.
func (g Gradient) Colors(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, n)
	out[0] = g.From
	if n == 1 {
		return out
	}

	a, b := blendable(g.From), blendable(g.To)
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(a.BlendHcl(b, t).Clamped().Hex())
	}
	out[n-1] = g.To
	return out
}

// Bold renders text in bold with one color step per grapheme cluster.
func (g Gradient) Bold(text string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	var b strings.Builder
	for i, c := range g.Colors(len(clusters)) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(clusters[i]))
	}
	return b.String()
}

func blendable(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
