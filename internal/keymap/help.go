package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyLabels shortens key names for the help line.
var keyLabels = map[string]string{
	"left":  "←",
	"right": "→",
	"home":  "⇱",
	"end":   "⇲",
}

// Help adapts a Resolver to bubbles' help.KeyMap.
type Help struct {
	r *Resolver
}

// NewHelp creates the help key map for a resolver.
func NewHelp(r *Resolver) Help {
	return Help{r: r}
}

// Binding returns the bubbles binding for an action.
func (h Help) Binding(action Action) key.Binding {
	keys := h.r.KeysFor(action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(label(keys), h.r.Description(action)),
	)
}

// ShortHelp lists the navigation keys and the help toggle.
func (h Help) ShortHelp() []key.Binding {
	return []key.Binding{
		h.Binding(ActionPrevious),
		h.Binding(ActionNext),
		h.Binding(ActionHelp),
		h.Binding(ActionQuit),
	}
}

// FullHelp lists every binding grouped by context.
func (h Help) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, ctx := range []string{"carousel", "options", "global"} {
		var group []key.Binding
		for _, b := range ByContext(ctx) {
			if len(h.r.KeysFor(b.Action)) > 0 {
				group = append(group, h.Binding(b.Action))
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func label(keys []string) string {
	shown := make([]string, 0, 2)
	for _, k := range keys {
		if l, ok := keyLabels[k]; ok {
			k = l
		}
		shown = append(shown, k)
		if len(shown) == 2 {
			break
		}
	}
	return strings.Join(shown, "/")
}
