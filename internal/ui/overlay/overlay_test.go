package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func blank(rows, width int) []string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return lines
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name string
		col  int
		row  int
		want []string
	}{
		{
			name: "inside",
			col:  2,
			row:  1,
			want: []string{"..........", "..abc.....", "..def.....", ".........."},
		},
		{
			name: "clipped on the left",
			col:  -2,
			row:  0,
			want: []string{"c.........", "f.........", "..........", ".........."},
		},
		{
			name: "clipped on the right",
			col:  8,
			row:  2,
			want: []string{"..........", "..........", "........ab", "........de"},
		},
		{
			name: "clipped at the bottom",
			col:  0,
			row:  3,
			want: []string{"..........", "..........", "..........", "abc......."},
		},
		{
			name: "entirely off to the right",
			col:  10,
			row:  0,
			want: []string{"..........", "..........", "..........", ".........."},
		},
		{
			name: "entirely off to the left",
			col:  -3,
			row:  0,
			want: []string{"..........", "..........", "..........", ".........."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := blank(4, 10)
			Place(base, []string{"abc", "def"}, tt.col, tt.row, 10)
			assert.Equal(t, tt.want, base)
		})
	}
}

func TestPlaceStyled(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	base := blank(1, 8)

	Place(base, []string{style.Render("wxyz")}, -1, 0, 8)

	assert.Equal(t, "xyz.....", ansi.Strip(base[0]))
	assert.Equal(t, 8, ansi.StringWidth(base[0]))
}

func TestPlacePadsShortBase(t *testing.T) {
	base := []string{""}
	Place(base, []string{"ab"}, 3, 0, 6)
	assert.Equal(t, "   ab ", base[0])
}

func TestCompose(t *testing.T) {
	base := "..........\n..........\n.........."
	over := "          \n   hi     \n"

	got := Compose(base, over, 10)

	assert.Equal(t, "..........\n...hi.....\n..........", got)
}
