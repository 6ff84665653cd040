package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientColors(t *testing.T) {
	g := Gradient{From: "#000000", To: "#ffffff"}

	t.Run("endpoints", func(t *testing.T) {
		p := g.Colors(3)
		require.Len(t, p, 3)
		assert.Equal(t, lipgloss.Color("#000000"), p[0])
		assert.Equal(t, lipgloss.Color("#ffffff"), p[2])
		assert.NotEqual(t, p[0], p[1])
		assert.NotEqual(t, p[2], p[1])
	})

	t.Run("single color", func(t *testing.T) {
		assert.Equal(t, []lipgloss.Color{"#000000"}, g.Colors(1))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, g.Colors(0))
	})

	t.Run("ansi colors blend from gray", func(t *testing.T) {
		p := Gradient{From: "39", To: "240"}.Colors(3)
		assert.Equal(t, lipgloss.Color("39"), p[0])
		assert.Regexp(t, `^#[0-9a-f]{6}$`, string(p[1]))
	})
}

func TestGradientBoldKeepsText(t *testing.T) {
	out := Accent().Bold("héllo 世界")
	assert.Equal(t, "héllo 世界", ansi.Strip(out))
	assert.Empty(t, Accent().Bold(""))
}
