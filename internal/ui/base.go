package ui

// Base provides common UI component functionality for focus, size and
// screen position. Embed this in component models to get standard methods
// automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    items []Item
//	}
type Base struct {
	width, height int
	x, y          int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// SetOrigin records where the component's top-left cell is on screen.
func (b *Base) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// Origin returns the component's top-left cell on screen.
func (b Base) Origin() (x, y int) {
	return b.x, b.y
}

// Local converts screen coordinates to component coordinates and reports
// whether the point falls inside the component.
func (b Base) Local(screenX, screenY int) (x, y int, inside bool) {
	x = screenX - b.x
	y = screenY - b.y
	inside = x >= 0 && x < b.width && y >= 0 && y < b.height
	return x, y, inside
}
