package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	widths := []int{50, 50, 50, 50}
	w := Window{First: 1, Last: 2}

	// free space 120-100 = 20, extra 10 per item, starting at 5
	got := Layout(widths, 120, 140, w)

	require.Len(t, got, 4)
	assert.Equal(t, Placement{Index: 0, Left: -140, Visibility: Before}, got[0])
	assert.Equal(t, Placement{Index: 1, Left: 5, Visibility: Visible}, got[1])
	assert.Equal(t, Placement{Index: 2, Left: 65, Visibility: Visible}, got[2])
	assert.Equal(t, Placement{Index: 3, Left: 140, Visibility: After}, got[3])
}

func TestLayoutVariableWidths(t *testing.T) {
	widths := []int{10, 30, 20}
	w := Calculate(Forward, widths, 100, Window{})
	require.Equal(t, Window{First: 0, Last: 2}, w)

	got := Layout(widths, 100, 100, w)

	// free 40, extra 13, start 6
	assert.Equal(t, 6, got[0].Left)
	assert.Equal(t, 6+10+13, got[1].Left)
	assert.Equal(t, 6+10+13+30+13, got[2].Left)

	last := got[2]
	assert.Less(t, last.Left+widths[2], 100)
}

func TestLayoutEmptyWindow(t *testing.T) {
	widths := []int{200, 10}
	w := Calculate(Forward, widths, 100, Window{})
	require.True(t, w.IsEmpty())

	got := Layout(widths, 100, 110, w)
	for _, p := range got {
		assert.NotEqual(t, Visible, p.Visibility)
	}
}

func TestVisibilityString(t *testing.T) {
	assert.Equal(t, "before", Before.String())
	assert.Equal(t, "visible", Visible.String())
	assert.Equal(t, "after", After.String())
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
}
