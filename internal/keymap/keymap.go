package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // one of the Context constants
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},
	{ActionReload, []string{"r"}, "Rescan folder", ContextGlobal},

	// Pages
	{ActionNextPage, []string{"right", "l", "pgdown"}, "Next page", ContextPages},
	{ActionPrevPage, []string{"left", "h", "pgup"}, "Previous page", ContextPages},
	{ActionFirstPage, []string{"home", "g"}, "First page", ContextPages},
	{ActionLastPage, []string{"end", "G"}, "Last page", ContextPages},
	{ActionNudgeForward, []string{"shift+right", "L"}, "Drag forward", ContextPages},
	{ActionNudgeBack, []string{"shift+left", "H"}, "Drag back", ContextPages},

	// Slideshow
	{ActionTogglePause, []string{" ", "p"}, "Pause/resume", ContextSlideshow},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// displayKey names a key the way the help footer shows it.
func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	default:
		return k
	}
}

// KeyBinding converts b into a bubbles binding for the help view. Only the
// first key is shown.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKey(b.Keys[0]), b.Description),
	)
}

// Help adapts bindings to bubbles' help.KeyMap.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds the help key map: one column per context in contexts, and
// a short line made of the given actions.
func NewHelp(contexts []string, short ...Action) Help {
	var h Help
	for _, ctx := range contexts {
		var col []key.Binding
		for _, b := range ByContext(ctx) {
			col = append(col, b.KeyBinding())
		}
		if len(col) > 0 {
			h.full = append(h.full, col)
		}
	}
	for _, a := range short {
		for _, b := range All {
			if b.Action == a {
				h.short = append(h.short, b.KeyBinding())
				break
			}
		}
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.full }
