package carousel

type swipeState struct {
	active bool
	startX int
}

// SwipeStart records where a drag began.
func (c *Carousel) SwipeStart(x int) {
	c.swipe = swipeState{active: true, startX: x}
}

// SwipeCancel forgets a drag in progress.
func (c *Carousel) SwipeCancel() {
	c.swipe = swipeState{}
}

// Swiping reports whether a drag is in progress.
func (c *Carousel) Swiping() bool { return c.swipe.active }

// SwipeEnd finishes a drag at x. A leftward travel of at least the touch
// distance shows the next items, a rightward one the previous items.
// It returns whether the window moved.
func (c *Carousel) SwipeEnd(x int) (bool, error) {
	if !c.swipe.active {
		return false, nil
	}
	dx := x - c.swipe.startX
	c.swipe = swipeState{}

	switch {
	case dx <= -c.opts.TouchDistance:
		return c.Next()
	case dx >= c.opts.TouchDistance:
		return c.Previous()
	default:
		return false, nil
	}
}
