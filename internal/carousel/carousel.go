// Package carousel drives a liquid carousel: it measures the items of a
// Surface once, keeps the visible window, and tells the surface where every
// item goes after each navigation or resize.
package carousel

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/liquid/internal/window"
)

// Config holds everything New needs besides the surface.
type Config struct {
	Options Options
	Hooks   Hooks

	// TransitionsSupported is the result of capability detection. Native
	// transitions are used only when it is set and Options.NoTransitions
	// is not.
	TransitionsSupported bool

	// StartIndex is the first item of the initial window.
	StartIndex int

	Logger zerolog.Logger
}

// Carousel is a single carousel instance. It is not safe for concurrent use;
// all calls are expected from the UI loop.
type Carousel struct {
	surface Surface
	opts    Options
	hooks   Hooks
	log     zerolog.Logger

	widths  []int
	heights []int
	shown   []bool

	win      window.Window
	dir      window.Direction
	viewport int

	transitionsSupported bool
	useTransitions       bool

	swipe     swipeState
	destroyed bool
}

// New measures the surface's items, places them off to the right, fires the
// Init hook and draws the first window.
func New(s Surface, cfg Config) (*Carousel, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}

	hooks := cfg.Hooks
	if hooks == nil {
		hooks = HookFuncs{}
	}

	c := &Carousel{
		surface:              s,
		opts:                 cfg.Options,
		hooks:                hooks,
		log:                  cfg.Logger,
		transitionsSupported: cfg.TransitionsSupported,
		dir:                  window.Forward,
		win:                  window.Window{First: cfg.StartIndex, Last: cfg.StartIndex},
	}

	c.initItems()
	c.useTransitions = c.transitionsSupported && !c.opts.NoTransitions
	c.applyTransitions()

	c.hooks.Init(c)
	c.Redraw()

	c.log.Debug().
		Int("items", len(c.widths)).
		Bool("transitions", c.useTransitions).
		Msg("carousel initialized")

	return c, nil
}

func (c *Carousel) initItems() {
	n := c.surface.ItemCount()
	c.widths = make([]int, n)
	c.heights = make([]int, n)
	c.shown = make([]bool, n)

	wrapper := c.surface.WrapperWidth()
	for i := range n {
		c.widths[i], c.heights[i] = c.surface.MeasureItem(i)
		c.surface.Place(i, wrapper, c.itemTop(i))
	}
}

// itemTop centers item i vertically within the configured height.
func (c *Carousel) itemTop(i int) int {
	return max((c.opts.Height-c.heights[i])/2, 0)
}

func (c *Carousel) applyTransitions() {
	if c.useTransitions {
		c.surface.SetTransition(c.opts.AnimationDuration)
	} else if c.transitionsSupported {
		c.surface.ClearTransition()
	}
}

// Window returns the current visible window.
func (c *Carousel) Window() window.Window { return c.win }

// Direction returns the direction of the last window computation.
func (c *Carousel) Direction() window.Direction { return c.dir }

// ItemCount returns the number of items measured at init.
func (c *Carousel) ItemCount() int { return len(c.widths) }

// ItemWidth returns the width measured for item i at init.
func (c *Carousel) ItemWidth(i int) int { return c.widths[i] }

// Options returns a copy of the current options.
func (c *Carousel) Options() Options { return c.opts }

// UsesTransitions reports whether moves go through the surface's native
// transitions rather than explicit animations.
func (c *Carousel) UsesTransitions() bool { return c.useTransitions }

// Destroyed reports whether Destroy has been called.
func (c *Carousel) Destroyed() bool { return c.destroyed }

// AtStart reports whether Previous has nothing left to show.
func (c *Carousel) AtStart() bool {
	_, ok := window.Previous(c.widths, c.viewport, c.win)
	return !ok
}

// AtEnd reports whether Next has nothing left to show.
func (c *Carousel) AtEnd() bool {
	_, ok := window.Next(c.widths, c.viewport, c.win)
	return !ok
}

// Next shows the items after the current window. It returns false when the
// last item is already visible or a hook cancelled the move.
func (c *Carousel) Next() (bool, error) {
	return c.navigate(window.Forward)
}

// Previous shows the items before the current window. It returns false when
// the first item is already visible or a hook cancelled the move.
func (c *Carousel) Previous() (bool, error) {
	return c.navigate(window.Backward)
}

func (c *Carousel) navigate(dir window.Direction) (bool, error) {
	if c.destroyed {
		return false, ErrDestroyed
	}

	c.viewport = c.surface.ViewportWidth()
	step := window.Next
	if dir == window.Backward {
		step = window.Previous
	}
	next, ok := step(c.widths, c.viewport, c.win)
	if !ok {
		return false, nil
	}
	if !c.hooks.BeforeNavigate(dir, c.win) {
		c.log.Debug().Stringer("direction", dir).Msg("navigation cancelled by hook")
		return false, nil
	}

	c.win = next
	c.dir = dir
	c.draw()
	return true, nil
}

// Redraw re-reads the viewport width, recomputes the window in the current
// direction and moves every item. It is what a resize triggers.
func (c *Carousel) Redraw() {
	if c.destroyed {
		return
	}
	c.viewport = c.surface.ViewportWidth()
	c.win = window.Calculate(c.dir, c.widths, c.viewport, c.win)
	c.draw()
}

func (c *Carousel) draw() {
	placements := window.Layout(c.widths, c.viewport, c.surface.WrapperWidth(), c.win)
	for _, p := range placements {
		c.move(p.Index, p.Left)
		c.notify(p.Index, p.Visibility == window.Visible)
	}

	c.log.Debug().
		Stringer("direction", c.dir).
		Int("viewport", c.viewport).
		Int("first", c.win.First).
		Int("last", c.win.Last).
		Msg("window drawn")
}

func (c *Carousel) move(i, left int) {
	if c.useTransitions {
		c.surface.SetLeft(i, left)
		return
	}
	c.surface.Animate(i, left, c.opts.AnimationDuration)
}

func (c *Carousel) notify(i int, visible bool) {
	if c.shown[i] == visible {
		return
	}
	c.shown[i] = visible
	obs, ok := c.hooks.(ItemObserver)
	if !ok {
		return
	}
	if visible {
		obs.ItemShown(i)
	} else {
		obs.ItemHidden(i)
	}
}

// Option returns the value of a public option.
func (c *Carousel) Option(name string) (any, error) {
	return c.opts.Get(name)
}

// SetOption changes a public option. Changing the duration or the
// transition switch re-declares transitions; changing the height re-centers
// the items.
func (c *Carousel) SetOption(name string, value any) error {
	if c.destroyed {
		return ErrDestroyed
	}
	opts, err := c.opts.With(name, value)
	if err != nil {
		return err
	}
	c.opts = opts

	switch name {
	case OptAnimationDuration, OptNoTransitions:
		c.useTransitions = c.transitionsSupported && !c.opts.NoTransitions
		c.applyTransitions()
	case OptHeight:
		placements := window.Layout(c.widths, c.viewport, c.surface.WrapperWidth(), c.win)
		for _, p := range placements {
			c.surface.Place(p.Index, p.Left, c.itemTop(p.Index))
		}
	}

	c.log.Debug().Str("option", name).Interface("value", value).Msg("option set")
	return nil
}

// Destroy removes the transitions from the surface and fires the Destroy
// hook. Later navigation fails with ErrDestroyed.
func (c *Carousel) Destroy() {
	if c.destroyed {
		return
	}
	if c.useTransitions {
		c.surface.ClearTransition()
	}
	c.hooks.Destroy(c)
	c.destroyed = true
	c.log.Debug().Msg("carousel destroyed")
}

// String describes the carousel state for logs and the status line.
func (c *Carousel) String() string {
	if c.win.IsEmpty() {
		return fmt.Sprintf("0 of %d", len(c.widths))
	}
	return fmt.Sprintf("%d-%d of %d", c.win.First+1, c.win.Last+1, len(c.widths))
}
