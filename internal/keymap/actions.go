// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionReload Action = "reload"

	// Page actions
	ActionNextPage     Action = "next_page"
	ActionPrevPage     Action = "prev_page"
	ActionFirstPage    Action = "first_page"
	ActionLastPage     Action = "last_page"
	ActionNudgeForward Action = "nudge_forward" // drag without releasing
	ActionNudgeBack    Action = "nudge_back"

	// Slideshow actions
	ActionTogglePause Action = "toggle_pause"
)
