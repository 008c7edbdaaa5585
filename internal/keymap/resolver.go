package keymap

import "slices"

// Resolver looks up the action bound to a key press, as reported by
// tea.KeyMsg.String.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string // in binding order, for hints and help
}

// NewResolver indexes bindings. When a key appears in more than one binding
// the later one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, 2*len(bindings)),
		keys:    make(map[Action][]string, len(bindings)),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action for key, or "" when it is unbound.
func (r *Resolver) Resolve(key string) Action { return r.actions[key] }

// KeysFor returns the keys bound to a, first binding first.
func (r *Resolver) KeysFor(a Action) []string { return r.keys[a] }
