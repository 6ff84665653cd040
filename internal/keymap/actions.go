// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionCommand Action = "command" // open the ":" prompt

	// Carousel navigation
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
	ActionFirst    Action = "first" // rewind to the first window
	ActionLast     Action = "last"  // advance to the last window
	ActionRedraw   Action = "redraw"

	// Option toggles, saved per deck
	ActionToggleNavigation  Action = "toggle_navigation"  // hideNavigation
	ActionToggleTransitions Action = "toggle_transitions" // noTransitions
	ActionTaller            Action = "taller"
	ActionShorter           Action = "shorter"
)
