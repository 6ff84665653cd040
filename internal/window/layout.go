package window

// Visibility tells where an item sits relative to the window.
type Visibility int

const (
	Before  Visibility = iota // pushed off to the left
	Visible                   // inside the viewport
	After                     // pushed off to the right
)

func (v Visibility) String() string {
	switch v {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "visible"
	}
}

// Placement is the left offset computed for one item.
type Placement struct {
	Index      int
	Left       int
	Visibility Visibility
}

// Layout computes the left offset of every item for window w.
//
// Items before the window go to -wrapperWidth, items after it to
// +wrapperWidth. Visible items start at half the extra spacing and each one
// advances the offset by its own width plus the extra spacing.
func Layout(widths []int, viewport, wrapperWidth int, w Window) []Placement {
	placements := make([]Placement, len(widths))

	extra := ExtraSpacing(viewport, Width(widths, w), w.Len())
	left := extra / 2

	for i, width := range widths {
		switch {
		case i < w.First:
			placements[i] = Placement{Index: i, Left: -wrapperWidth, Visibility: Before}
		case i > w.Last:
			placements[i] = Placement{Index: i, Left: wrapperWidth, Visibility: After}
		default:
			placements[i] = Placement{Index: i, Left: left, Visibility: Visible}
			left += width + extra
		}
	}

	return placements
}
