// Package carouselview draws a deck of cards as a liquid carousel in the
// terminal. It is the surface a carousel.Carousel moves cards on.
package carouselview

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/deck"
	"github.com/llehouerou/liquid/internal/ui"
	"github.com/llehouerou/liquid/internal/ui/layout"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is the terminal surface. Width is the whole carousel including the
// navigation gutters; Height is the carousel height in rows.
type Model struct {
	ui.Base

	id      int
	cards   [][]string
	widths  []int
	heights []int
	items   []motion

	transition    time.Duration
	hasTransition bool
	spring        harmonica.Spring

	hideNavigation bool
	hovered        bool
	atStart        bool
	atEnd          bool

	ticking bool
}

// Verify Model implements carousel.Surface at compile time.
var _ carousel.Surface = (*Model)(nil)

// New renders the cards for a carousel of the given height.
func New(cards []deck.Card, height int) *Model {
	m := &Model{
		id:      nextID(),
		cards:   renderCards(cards, height),
		atStart: true,
		atEnd:   true,
	}
	m.widths = make([]int, len(m.cards))
	m.heights = make([]int, len(m.cards))
	m.items = make([]motion, len(m.cards))
	for i, lines := range m.cards {
		m.widths[i] = lipgloss.Width(lines[0]) + ui.CardMargin
		m.heights[i] = len(lines)
	}
	m.SetSize(0, height)
	return m
}

// ItemCount implements carousel.Surface.
func (m *Model) ItemCount() int {
	return len(m.cards)
}

// MeasureItem implements carousel.Surface.
func (m *Model) MeasureItem(i int) (int, int) {
	return m.widths[i], m.heights[i]
}

// ViewportWidth implements carousel.Surface.
func (m *Model) ViewportWidth() int {
	return layout.ViewportWidth(m.Width(), ui.NavWidth, ui.MinViewportWidth)
}

// WrapperWidth implements carousel.Surface.
func (m *Model) WrapperWidth() int {
	return max(m.Width(), m.ViewportWidth())
}

// Place implements carousel.Surface.
func (m *Model) Place(i, left, top int) {
	m.items[i].snap(left)
	m.items[i].top = top
}

// SetLeft implements carousel.Surface. Without a transition the card jumps.
func (m *Model) SetLeft(i, left int) {
	if !m.hasTransition || m.transition <= 0 {
		m.items[i].snap(left)
		return
	}
	m.items[i].springTo(left)
}

// Animate implements carousel.Surface.
func (m *Model) Animate(i, left int, d time.Duration) {
	m.items[i].tweenTo(left, d)
}

// SetTransition implements carousel.Surface.
func (m *Model) SetTransition(d time.Duration) {
	m.transition = d
	m.hasTransition = true
	m.spring = newSpring(d)
}

// ClearTransition implements carousel.Surface. Cards still springing land
// on their targets at once.
func (m *Model) ClearTransition() {
	m.hasTransition = false
	m.transition = 0
	for i := range m.items {
		if m.items[i].mode == motionSpring {
			m.items[i].snap(int(m.items[i].target))
		}
	}
}

// Left returns where card i is drawn now.
func (m *Model) Left(i int) int {
	return m.items[i].left()
}

// Top returns the row card i is drawn at.
func (m *Model) Top(i int) int {
	return m.items[i].top
}

// Target returns where card i is heading.
func (m *Model) Target(i int) int {
	return int(m.items[i].target)
}

// Animating reports whether any card is moving.
func (m *Model) Animating() bool {
	for i := range m.items {
		if m.items[i].moving() {
			return true
		}
	}
	return false
}

// SetHideNavigation shows the arrows only while hovered when set.
func (m *Model) SetHideNavigation(hide bool) {
	m.hideNavigation = hide
}

// SetHovered records whether the mouse is over the carousel.
func (m *Model) SetHovered(hovered bool) {
	m.hovered = hovered
}

// Hovered reports whether the mouse is over the carousel.
func (m *Model) Hovered() bool {
	return m.hovered
}

// SetEdges dims the arrow of each side that cannot move further.
func (m *Model) SetEdges(atStart, atEnd bool) {
	m.atStart = atStart
	m.atEnd = atEnd
}
