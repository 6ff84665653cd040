package carousel

import "github.com/llehouerou/liquid/internal/window"

// Hooks receives lifecycle notifications.
type Hooks interface {
	// Init is called once the items are measured and placed, before the
	// first redraw.
	Init(c *Carousel)
	// Destroy is called when the carousel is torn down.
	Destroy(c *Carousel)
	// BeforeNavigate is called before next/previous moves the window.
	// Returning false cancels the navigation.
	BeforeNavigate(dir window.Direction, from window.Window) bool
}

// ItemObserver is an optional extension of Hooks, notified when an item
// enters or leaves the window.
type ItemObserver interface {
	ItemShown(i int)
	ItemHidden(i int)
}

// HookFuncs adapts plain functions to Hooks and ItemObserver. Nil fields are
// skipped.
type HookFuncs struct {
	OnInit           func(c *Carousel)
	OnDestroy        func(c *Carousel)
	OnBeforeNavigate func(dir window.Direction, from window.Window) bool
	OnItemShown      func(i int)
	OnItemHidden     func(i int)
}

func (h HookFuncs) Init(c *Carousel) {
	if h.OnInit != nil {
		h.OnInit(c)
	}
}

func (h HookFuncs) Destroy(c *Carousel) {
	if h.OnDestroy != nil {
		h.OnDestroy(c)
	}
}

func (h HookFuncs) BeforeNavigate(dir window.Direction, from window.Window) bool {
	if h.OnBeforeNavigate != nil {
		return h.OnBeforeNavigate(dir, from)
	}
	return true
}

func (h HookFuncs) ItemShown(i int) {
	if h.OnItemShown != nil {
		h.OnItemShown(i)
	}
}

func (h HookFuncs) ItemHidden(i int) {
	if h.OnItemHidden != nil {
		h.OnItemHidden(i)
	}
}

// Verify HookFuncs implements both interfaces at compile time.
var (
	_ Hooks        = HookFuncs{}
	_ ItemObserver = HookFuncs{}
)
