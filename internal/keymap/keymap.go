package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel", "options"
}

// Bindings contains every key binding, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},
	{ActionCommand, []string{":"}, "command", "global"},

	// Carousel
	{ActionPrevious, []string{"left", "h"}, "previous", "carousel"},
	{ActionNext, []string{"right", "l"}, "next", "carousel"},
	{ActionFirst, []string{"home", "g"}, "first", "carousel"},
	{ActionLast, []string{"end", "G"}, "last", "carousel"},
	{ActionRedraw, []string{"ctrl+l"}, "redraw", "carousel"},

	// Options
	{ActionToggleNavigation, []string{"n"}, "hide/show arrows", "options"},
	{ActionToggleTransitions, []string{"t"}, "transitions on/off", "options"},
	{ActionTaller, []string{"+", "="}, "taller", "options"},
	{ActionShorter, []string{"-"}, "shorter", "options"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
