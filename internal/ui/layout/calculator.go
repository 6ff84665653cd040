// Package layout provides pure functions for UI dimension calculations.
package layout

// Fixed rows around the carousel.
const (
	HeaderHeight = 1 // deck name
	StatusHeight = 1 // window range and messages
	HelpHeight   = 1 // short help line
)

// FrameOpts describes which rows surround the carousel.
type FrameOpts struct {
	ShowHelp bool
}

// chromeHeight returns the rows used by everything but the carousel.
func chromeHeight(opts FrameOpts) int {
	h := HeaderHeight + StatusHeight
	if opts.ShowHelp {
		h += HelpHeight
	}
	return h
}

// AvailableHeight returns the rows left for the carousel.
func AvailableHeight(windowHeight int, opts FrameOpts) int {
	return max(windowHeight-chromeHeight(opts), 0)
}

// CarouselHeight returns the rows the carousel is drawn in: the requested
// height, shrunk to what the window can hold but never below one row.
func CarouselHeight(requested, windowHeight int, opts FrameOpts) int {
	return max(min(requested, AvailableHeight(windowHeight, opts)), 1)
}

// CarouselRow returns the 0-based row of the carousel's top edge,
// centered in the space between the header and the bottom rows.
func CarouselRow(carouselHeight, windowHeight int, opts FrameOpts) int {
	free := AvailableHeight(windowHeight, opts) - carouselHeight
	return HeaderHeight + max(free/2, 0)
}

// ViewportWidth returns the columns between the two navigation gutters.
func ViewportWidth(windowWidth, navWidth, minWidth int) int {
	return max(windowWidth-2*navWidth, minWidth)
}

// PopupSize returns the size of a centered popup: two thirds of the
// window, bounded by the content size.
func PopupSize(windowWidth, windowHeight, contentWidth, contentHeight int) (int, int) {
	w := min(contentWidth, windowWidth*2/3)
	h := min(contentHeight, windowHeight*2/3)
	return max(w, 1), max(h, 1)
}
