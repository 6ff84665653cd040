// Package window computes which contiguous run of variable-width items fits
// into a viewport, and how leftover width is spread between them.
//
// All functions are pure: the current window is passed in and a new one is
// returned, so callers never depend on state left behind by a previous call.
package window

// Direction selects which end of the window a calculation is anchored to.
type Direction int

const (
	Forward  Direction = iota // anchored at First, grows towards the end
	Backward                  // anchored at Last, grows towards index 0
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Window is an inclusive range of visible item indices.
// A window with Last < First is empty: nothing fits.
type Window struct {
	First int
	Last  int
}

// Empty is the window for a carousel with nothing to show.
var Empty = Window{First: 0, Last: -1}

// Len returns the number of visible items.
func (w Window) Len() int {
	return max(w.Last-w.First+1, 0)
}

// IsEmpty reports whether no item is visible.
func (w Window) IsEmpty() bool {
	return w.Len() == 0
}

// Contains reports whether index i is visible.
func (w Window) Contains(i int) bool {
	return i >= w.First && i <= w.Last
}

// Calculate returns the window that fits into viewport, starting from the
// anchor of cur selected by dir.
//
// A forward pass that runs off the end keeps its running total and continues
// backward from First-1; a backward pass that runs off the start continues
// forward from Last+1. The comparison is strict: an item that would make the
// total exactly equal to viewport is left out.
func Calculate(dir Direction, widths []int, viewport int, cur Window) Window {
	n := len(widths)
	if n == 0 {
		return Empty
	}

	first := min(max(cur.First, 0), n-1)
	last := min(max(cur.Last, -1), n-1)

	var total int
	switch dir {
	case Backward:
		if last < 0 {
			last = 0
		}
		first, total = backward(widths, viewport, last, 0)
		if first == 0 {
			last, _ = forward(widths, viewport, last+1, total)
		}
	default:
		last, total = forward(widths, viewport, first, 0)
		if last == n-1 {
			first, _ = backward(widths, viewport, first-1, total)
		}
	}

	return Window{First: first, Last: last}
}

// forward accumulates widths from start until the next item no longer fits.
// It returns the last index that fit (start-1 when none did) and the new total.
func forward(widths []int, viewport, start, total int) (int, int) {
	i := start
	for i < len(widths) {
		if total+widths[i] >= viewport {
			return i - 1, total
		}
		total += widths[i]
		i++
	}
	return len(widths) - 1, total
}

// backward accumulates widths from start down to 0 until the previous item no
// longer fits. It returns the first index that fit (start+1 when none did).
func backward(widths []int, viewport, start, total int) (int, int) {
	i := start
	for i >= 0 {
		if total+widths[i] >= viewport {
			return i + 1, total
		}
		total += widths[i]
		i--
	}
	return 0, total
}

// Next moves the window to the items after it. It returns false, and w
// unchanged, when the last item is already visible or when nothing after w
// can be shown.
//
// An empty window left by an item wider than the viewport is stepped over,
// so navigation never gets stuck on it. An oversized last item is the end.
func Next(widths []int, viewport int, w Window) (Window, bool) {
	if w.Last >= len(widths)-1 {
		return w, false
	}
	anchor := w.Last + 1
	if w.IsEmpty() && anchor < len(widths)-1 && widths[anchor] >= viewport {
		anchor++
	}
	next := Calculate(Forward, widths, viewport, Window{First: anchor, Last: anchor - 1})
	if next == w {
		return w, false
	}
	return next, true
}

// Previous moves the window to the items before it. It returns false, and w
// unchanged, when the first item is already visible or when nothing before w
// can be shown. An oversized first item is the start.
func Previous(widths []int, viewport int, w Window) (Window, bool) {
	if w.First <= 0 {
		return w, false
	}
	anchor := w.First - 1
	if w.IsEmpty() && anchor > 0 && widths[anchor] >= viewport {
		anchor--
	}
	prev := Calculate(Backward, widths, viewport, Window{First: anchor + 1, Last: anchor})
	if prev == w {
		return w, false
	}
	return prev, true
}

// Width returns the summed width of the items in w.
func Width(widths []int, w Window) int {
	total := 0
	for i := max(w.First, 0); i <= w.Last && i < len(widths); i++ {
		total += widths[i]
	}
	return total
}

// ExtraSpacing returns the padding added to each visible item so that the
// window fills the viewport. Negative free space yields 0: items never
// overlap.
func ExtraSpacing(viewport, visibleWidth, visibleCount int) int {
	free := viewport - visibleWidth
	if free <= 0 || visibleCount <= 0 {
		return 0
	}
	return free / visibleCount
}
