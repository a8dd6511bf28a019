package keymap

import "slices"

// Contexts group bindings by what they act on. Global bindings always apply;
// the others only while the app reports them active.
const (
	ContextGlobal    = "global"
	ContextPages     = "pages"     // a folder is loaded
	ContextSlideshow = "slideshow" // auto-advance is enabled
)

// Resolver maps key strings to actions, per context.
type Resolver struct {
	bindings  []Binding
	byContext map[string]map[string]Action // context -> key -> action
	keysOf    map[Action][]string          // action -> keys, for help
}

// NewResolver creates a resolver from bindings. Within a context the first
// binding of a key wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings:  bindings,
		byContext: make(map[string]map[string]Action),
		keysOf:    make(map[Action][]string),
	}
	for _, b := range bindings {
		keys := r.byContext[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.byContext[b.Context] = keys
		}
		for _, k := range b.Keys {
			if _, taken := keys[k]; !taken {
				keys[k] = b.Action
			}
			if !slices.Contains(r.keysOf[b.Action], k) {
				r.keysOf[b.Action] = append(r.keysOf[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, looking at the global context
// first and then at active in order. It returns "" when nothing matches.
func (r *Resolver) Resolve(key string, active ...string) Action {
	if a, ok := r.byContext[ContextGlobal][key]; ok {
		return a
	}
	for _, ctx := range active {
		if ctx == ContextGlobal {
			continue
		}
		if a, ok := r.byContext[ctx][key]; ok {
			return a
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action in any context.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keysOf[action]
}

// Conflicts returns, sorted, the keys bound to two different actions that
// can be active together: in the same context, or in the global context and
// any other one.
func (r *Resolver) Conflicts() []string {
	owner := make(map[string]map[string]Action)
	var out []string
	clash := func(key string) {
		if !slices.Contains(out, key) {
			out = append(out, key)
		}
	}

	for _, b := range r.bindings {
		if owner[b.Context] == nil {
			owner[b.Context] = make(map[string]Action)
		}
		for _, k := range b.Keys {
			if a, ok := owner[b.Context][k]; ok && a != b.Action {
				clash(k)
			}
			owner[b.Context][k] = b.Action
		}
	}

	for ctx, keys := range owner {
		if ctx == ContextGlobal {
			continue
		}
		for k, a := range keys {
			if g, ok := owner[ContextGlobal][k]; ok && g != a {
				clash(k)
			}
		}
	}

	slices.Sort(out)
	return out
}
