// Package indicator implements the state model of a segmented, auto-advancing
// page indicator.
//
// Each page owns one segment. The active segment is expanded to the room left
// over by the collapsed ones and fills up while its page is shown; during a
// page change the outgoing and incoming segments cross-fade. The engine is
// driven either by a continuous fractional page (scroll tracking) or by a
// discrete progress value (auto-advance), and returns an immutable State for
// the host to render.
//
// The engine is not safe for concurrent use. Hosts deliver scroll updates and
// timer ticks from a single goroutine.
package indicator

import (
	"fmt"
	"math"
)

// DefaultSpacing is the gap between two segments.
const DefaultSpacing = 3

// EndPolicy decides what auto-advance does after the last page.
type EndPolicy int

const (
	// EndStop keeps the last page active and stops advancing.
	EndStop EndPolicy = iota
	// EndWrap starts over from the first page.
	EndWrap
)

// String returns the policy name as used in configuration files.
func (p EndPolicy) String() string {
	switch p {
	case EndStop:
		return "stop"
	case EndWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParseEndPolicy parses "stop" or "wrap". Empty input means EndStop.
func ParseEndPolicy(s string) (EndPolicy, error) {
	switch s {
	case "", "stop":
		return EndStop, nil
	case "wrap":
		return EndWrap, nil
	}
	return EndStop, fmt.Errorf("%w: unknown end policy %q", ErrInvalidConfiguration, s)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSpacing sets the gap between segments, used to derive the expanded width.
func WithSpacing(spacing float64) Option {
	return func(e *Engine) {
		e.spacing = spacing
	}
}

// Engine computes segment widths and fills for a fixed number of pages.
type Engine struct {
	collapsedWidth      float64
	expandedWidth       float64
	spacing             float64
	totalPages          int
	totalCollapsedWidth float64
	laidOut             bool

	direction Direction
	state     State
}

// New creates an engine for totalPages segments whose resting width is
// collapsedWidth. The engine is unusable until SetAvailableWidth is called.
func New(collapsedWidth float64, totalPages int, opts ...Option) (*Engine, error) {
	e := &Engine{
		collapsedWidth: collapsedWidth,
		spacing:        DefaultSpacing,
		totalPages:     totalPages,
	}
	for _, opt := range opts {
		opt(e)
	}

	if totalPages <= 0 {
		return nil, fmt.Errorf("%w: total pages %d", ErrInvalidConfiguration, totalPages)
	}
	if !(collapsedWidth > 0) || math.IsInf(collapsedWidth, 0) {
		return nil, fmt.Errorf("%w: collapsed width %v", ErrInvalidConfiguration, collapsedWidth)
	}
	if !(e.spacing >= 0) || math.IsInf(e.spacing, 0) {
		return nil, fmt.Errorf("%w: spacing %v", ErrInvalidConfiguration, e.spacing)
	}

	e.totalCollapsedWidth = float64(totalPages)*collapsedWidth + float64(totalPages-1)*e.spacing
	e.state = State{
		Segments:       make([]Segment, totalPages),
		CollapsedWidth: collapsedWidth,
	}
	for i := range e.state.Segments {
		e.state.Segments[i] = Segment{Index: i, Width: collapsedWidth}
	}

	return e, nil
}

// Pages returns the number of segments.
func (e *Engine) Pages() int {
	return e.totalPages
}

// LaidOut reports whether SetAvailableWidth has been called.
func (e *Engine) LaidOut() bool {
	return e.laidOut
}

// CollapsedWidth returns the resting width of an inactive segment.
func (e *Engine) CollapsedWidth() float64 {
	return e.collapsedWidth
}

// ExpandedWidth returns the width of a fully active segment.
// It is zero until the engine is laid out.
func (e *Engine) ExpandedWidth() float64 {
	return e.expandedWidth
}

// TotalCollapsedWidth returns the width of the control with every segment collapsed.
func (e *Engine) TotalCollapsedWidth() float64 {
	return e.totalCollapsedWidth
}

// Spacing returns the gap between two segments.
func (e *Engine) Spacing() float64 {
	return e.spacing
}

// State returns the latest computed state.
func (e *Engine) State() State {
	return e.state
}

// ActivePage returns the page receiving auto-advance progress.
func (e *Engine) ActivePage() int {
	return e.state.ActivePage
}

// Direction returns the current direction of travel.
func (e *Engine) Direction() Direction {
	return e.direction
}

// SetAvailableWidth derives the expanded width from the room available to
// the control and shows page 0 fully expanded. Only the first call has an
// effect; use Resize to react to later geometry changes.
func (e *Engine) SetAvailableWidth(width float64) (State, error) {
	if e.laidOut {
		return e.state, nil
	}
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return e.state, fmt.Errorf("%w: available width %v", ErrInvalidConfiguration, width)
	}
	e.expandedWidth = e.deriveExpanded(width)
	e.laidOut = true
	return e.UpdateSegments(0, 1)
}

// Resize recomputes the expanded width for a new available width and
// re-applies the last update so the visible state is preserved.
func (e *Engine) Resize(width float64) (State, error) {
	if !e.laidOut {
		return e.SetAvailableWidth(width)
	}
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return e.state, fmt.Errorf("%w: available width %v", ErrInvalidConfiguration, width)
	}
	e.expandedWidth = e.deriveExpanded(width)
	return e.UpdateSegments(e.state.Target, e.state.Percent)
}

// deriveExpanded never goes below the collapsed width, so an undersized
// control degrades to equal segments instead of inverted bounds.
func (e *Engine) deriveExpanded(width float64) float64 {
	return math.Max(e.collapsedWidth, width-e.totalCollapsedWidth+e.collapsedWidth)
}

// SetScrollDirection records the direction of travel. It does not recompute
// anything; it only changes how later fractional updates pick the
// transition neighbor.
func (e *Engine) SetScrollDirection(d Direction) {
	e.direction = d
}

// UpdateByFraction updates the segments from a continuous page position such
// as 1.25 (a quarter of the way from page 1 to page 2).
//
// The integer part selects the target page by truncation and the fractional
// part (math.Mod, whose sign follows the dividend) is how far the target has
// been scrolled away. Negative positions are rejected: truncation and floor
// disagree below zero and no host produces them. Positions past the last
// page are treated as the last page.
func (e *Engine) UpdateByFraction(fractionalPage float64) (State, error) {
	if !e.laidOut {
		return e.state, ErrNotLaidOut
	}
	if math.IsNaN(fractionalPage) || fractionalPage < 0 {
		return e.state, fmt.Errorf("%w: fractional page %v", ErrOutOfRange, fractionalPage)
	}
	last := float64(e.totalPages - 1)
	if fractionalPage > last {
		fractionalPage = last
	}

	complete := math.Mod(fractionalPage, 1)
	safeComplete := clamp(complete, 0, 1)
	target := int(fractionalPage)

	return e.UpdateSegments(target, clamp(1-safeComplete, 0, 1))
}

// UpdateSegments is the core layout step shared by scrolling and auto-advance.
//
// The target segment gets percentComplete of the expanded width and the same
// fill. Its transition neighbor (see TransitionNeighbor) gets the remainder;
// every other segment is collapsed and empty. percentComplete is clamped
// to [0, 1].
func (e *Engine) UpdateSegments(target int, percentComplete float64) (State, error) {
	if !e.laidOut {
		return e.state, ErrNotLaidOut
	}
	if target < 0 || target >= e.totalPages {
		return e.state, fmt.Errorf("%w: target %d of %d", ErrOutOfRange, target, e.totalPages)
	}
	if math.IsNaN(percentComplete) {
		return e.state, fmt.Errorf("%w: percent complete is NaN", ErrOutOfRange)
	}
	percent := clamp(percentComplete, 0, 1)

	e.state = Compute(Layout{
		CollapsedWidth: e.collapsedWidth,
		ExpandedWidth:  e.expandedWidth,
		Pages:          e.totalPages,
	}, target, percent, e.direction, e.state.ActivePage)

	return e.state, nil
}

// Select makes index the active page and shows it fully expanded.
func (e *Engine) Select(index int) (State, error) {
	if !e.laidOut {
		return e.state, ErrNotLaidOut
	}
	if index < 0 || index >= e.totalPages {
		return e.state, fmt.Errorf("%w: page %d of %d", ErrOutOfRange, index, e.totalPages)
	}
	e.state.ActivePage = index
	return e.UpdateSegments(index, 1)
}

// Advance selects the page after the active one. At the last page, EndWrap
// selects page 0 and EndStop leaves the state alone; the boolean reports
// whether the active page changed.
func (e *Engine) Advance(policy EndPolicy) (State, bool, error) {
	if !e.laidOut {
		return e.state, false, ErrNotLaidOut
	}
	next := e.state.ActivePage + 1
	if next >= e.totalPages {
		if policy != EndWrap {
			return e.state, false, nil
		}
		next = 0
	}
	if next == e.state.ActivePage {
		// Single page control wrapping onto itself.
		st, err := e.Select(next)
		return st, false, err
	}
	st, err := e.Select(next)
	if err != nil {
		return st, false, err
	}
	return st, true, nil
}

// Layout holds the geometry Compute needs.
type Layout struct {
	CollapsedWidth float64
	ExpandedWidth  float64
	Pages          int
}

// Compute builds the state for one update without touching an engine.
// target must lie in [0, l.Pages) and percent in [0, 1].
func Compute(l Layout, target int, percent float64, d Direction, activePage int) State {
	st := State{
		Segments:       make([]Segment, l.Pages),
		ActivePage:     activePage,
		Direction:      d,
		Target:         target,
		Percent:        percent,
		CollapsedWidth: l.CollapsedWidth,
		ExpandedWidth:  l.ExpandedWidth,
	}
	fit := func(w float64) float64 {
		return clamp(w, l.CollapsedWidth, l.ExpandedWidth)
	}

	neighbor := TransitionNeighbor(target, d)
	for i := range st.Segments {
		seg := Segment{Index: i}
		switch {
		case i == target:
			seg.Width = fit(l.ExpandedWidth * percent)
			seg.Fill = percent
		case i == neighbor:
			seg.Width = fit(l.CollapsedWidth + l.ExpandedWidth*(1-percent))
			seg.Fill = 1 - percent
		default:
			seg.Width = fit(l.CollapsedWidth)
		}
		st.Segments[i] = seg
	}
	return st
}

// TransitionNeighbor returns the index of the segment sharing the
// cross-fade with target, or -1 when no transition is in progress.
//
// Both directions resolve to target+1: the target comes from truncating the
// fractional page, so it is always the lower of the two pages on screen and
// the other one is the next page whichever way the user drags. The result
// may equal the page count; callers ignore indices they do not own.
func TransitionNeighbor(target int, d Direction) int {
	switch d {
	case DirectionLeft, DirectionRight:
		return target + 1
	default:
		return -1
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
