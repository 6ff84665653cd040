package keymap

// Resolver maps key strings to actions.
type Resolver struct {
	bindings     map[string]Action   // key -> action
	byAction     map[Action][]string // action -> keys, in binding order
	descriptions map[Action]string
	order        []Action
}

// NewResolver creates a resolver from bindings. A key bound twice
// resolves to its last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings:     make(map[string]Action),
		byAction:     make(map[Action][]string),
		descriptions: make(map[Action]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		if _, seen := r.byAction[b.Action]; !seen {
			r.order = append(r.order, b.Action)
			r.descriptions[b.Action] = b.Description
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Description returns the help text of an action.
func (r *Resolver) Description(action Action) string {
	return r.descriptions[action]
}

// Actions returns every bound action in the order first bound.
func (r *Resolver) Actions() []Action {
	return r.order
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
