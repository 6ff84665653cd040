package carousel

import "time"

// Surface is what the carousel draws on. It owns the items; the carousel only
// tells it where each item should go.
type Surface interface {
	// ItemCount returns the number of items on the surface.
	ItemCount() int
	// MeasureItem returns the outer width and height of item i.
	MeasureItem(i int) (width, height int)
	// ViewportWidth returns the width available to visible items.
	ViewportWidth() int
	// WrapperWidth returns the outer width of the carousel, navigation
	// included. Hidden items are pushed this far out.
	WrapperWidth() int

	// Place puts item i at left/top immediately, without any animation.
	Place(i, left, top int)
	// SetLeft moves item i; a surface with a transition set animates the move.
	SetLeft(i, left int)
	// Animate tweens item i to left over d. A new animation on the same item
	// replaces the one in flight.
	Animate(i, left int, d time.Duration)

	// SetTransition declares a native transition of duration d on every item.
	SetTransition(d time.Duration)
	// ClearTransition removes the transition declared by SetTransition.
	ClearTransition()
}
