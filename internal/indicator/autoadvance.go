package indicator

import (
	"fmt"
	"math"
)

// completionEpsilon absorbs the rounding error of summing fractional steps,
// so a step of 0.01 completes on the hundredth tick.
const completionEpsilon = 1e-9

// Event is what a single auto-advance tick did.
type Event int

const (
	// EventIdle means the clock was stopped or suspended and nothing changed.
	EventIdle Event = iota
	// EventProgress means the active page received more progress.
	EventProgress
	// EventAdvanced means the active page completed and the next page became active.
	EventAdvanced
	// EventFinished means the last page completed and the clock stopped.
	EventFinished
	// EventRestarted means the only page completed and, wrapping, started
	// over with no progress.
	EventRestarted
)

// String returns the event name.
func (ev Event) String() string {
	switch ev {
	case EventIdle:
		return "Idle"
	case EventProgress:
		return "Progress"
	case EventAdvanced:
		return "Advanced"
	case EventFinished:
		return "Finished"
	case EventRestarted:
		return "Restarted"
	default:
		return "Unknown"
	}
}

// AutoAdvance is the timer side of the control: every Tick adds a fixed step
// of progress to the active page, and a page that reaches full progress hands
// over to the next one. It owns no timer; any scheduler may call Tick.
type AutoAdvance struct {
	engine    *Engine
	step      float64
	policy    EndPolicy
	progress  float64
	running   bool
	suspended bool
}

// NewAutoAdvance creates a running clock driving e. step is the progress added
// per tick and must lie in (0, 1].
func NewAutoAdvance(e *Engine, step float64, policy EndPolicy) (*AutoAdvance, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil engine", ErrInvalidConfiguration)
	}
	if math.IsNaN(step) || step <= 0 || step > 1 {
		return nil, fmt.Errorf("%w: step %v", ErrInvalidConfiguration, step)
	}
	return &AutoAdvance{
		engine:  e,
		step:    step,
		policy:  policy,
		running: true,
	}, nil
}

// Tick adds one step of progress to the active page.
func (a *AutoAdvance) Tick() (State, Event, error) {
	if !a.running || a.suspended {
		return a.engine.State(), EventIdle, nil
	}
	if !a.engine.LaidOut() {
		return a.engine.State(), EventIdle, ErrNotLaidOut
	}

	a.progress += a.step
	st, err := a.engine.UpdateSegments(a.engine.ActivePage(), a.progress)
	if err != nil {
		return st, EventIdle, err
	}
	if a.progress < 1-completionEpsilon {
		return st, EventProgress, nil
	}

	// Page complete: stop, move on, reset, restart.
	a.running = false
	a.progress = 0
	st, advanced, err := a.engine.Advance(a.policy)
	if err != nil {
		return st, EventIdle, err
	}
	switch {
	case advanced:
		a.running = true
		return st, EventAdvanced, nil
	case a.policy == EndWrap:
		a.running = true
		return st, EventRestarted, nil
	default:
		return st, EventFinished, nil
	}
}

// Progress returns the progress accumulated by the active page.
func (a *AutoAdvance) Progress() float64 {
	return a.progress
}

// Step returns the progress added per tick.
func (a *AutoAdvance) Step() float64 {
	return a.step
}

// Policy returns the end-of-pages policy.
func (a *AutoAdvance) Policy() EndPolicy {
	return a.policy
}

// Running reports whether ticks currently add progress.
func (a *AutoAdvance) Running() bool {
	return a.running && !a.suspended
}

// Suspended reports whether the clock is held by Suspend.
func (a *AutoAdvance) Suspended() bool {
	return a.suspended
}

// Suspend holds the clock without losing progress. Hosts suspend it for the
// duration of a drag so ticks cannot fight the scroll position.
func (a *AutoAdvance) Suspend() {
	a.suspended = true
}

// Resume releases a Suspend and continues from the current progress.
func (a *AutoAdvance) Resume() {
	a.suspended = false
}

// Restart starts the active page over from zero progress.
func (a *AutoAdvance) Restart() {
	a.progress = 0
	a.running = true
	a.suspended = false
}

// Stop halts the clock and clears progress.
func (a *AutoAdvance) Stop() {
	a.running = false
	a.progress = 0
}
