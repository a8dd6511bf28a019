// Package pager tracks the horizontal scroll position of a paged carousel.
//
// The position is a continuous offset measured in pages. Dragging moves it
// directly; releasing or scrolling programmatically starts a settle animation
// that eases the offset onto a whole page, one Step per frame.
package pager

import (
	"math"

	"github.com/llehouerou/reel/internal/indicator"
)

const (
	// DefaultSettleFactor is the share of the remaining distance covered per frame.
	DefaultSettleFactor = 0.3

	// snapEpsilon is the distance under which a settle snaps onto its page.
	snapEpsilon = 0.005
)

// Option configures a Pager.
type Option func(*Pager)

// WithSettleFactor sets the share of the remaining distance covered by each
// animation frame. Values outside (0, 1] fall back to the default.
func WithSettleFactor(f float64) Option {
	return func(p *Pager) {
		if f > 0 && f <= 1 {
			p.settleFactor = f
		}
	}
}

// Pager holds the scroll offset of a carousel with a fixed page count.
type Pager struct {
	pages        int
	offset       float64
	target       int
	dragging     bool
	animating    bool
	direction    indicator.Direction
	settleFactor float64
}

// New creates a pager positioned on page 0. A page count below 1 is treated as 1.
func New(pages int, opts ...Option) *Pager {
	p := &Pager{
		pages:        max(pages, 1),
		settleFactor: DefaultSettleFactor,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pages returns the page count.
func (p *Pager) Pages() int {
	return p.pages
}

// Offset returns the raw scroll offset in pages.
func (p *Pager) Offset() float64 {
	return p.offset
}

// FractionalPage returns the offset clamped to [0, pages-1], the value fed
// to the indicator while scrolling.
func (p *Pager) FractionalPage() float64 {
	return clamp(p.offset, 0, float64(p.pages-1))
}

// CurrentPage returns the page nearest to the offset.
func (p *Pager) CurrentPage() int {
	return p.clampPage(int(math.Round(p.offset)))
}

// Target returns the page a running settle animation is heading to.
func (p *Pager) Target() int {
	return p.target
}

// Dragging reports whether a drag is in progress.
func (p *Pager) Dragging() bool {
	return p.dragging
}

// Animating reports whether a settle animation is in progress.
func (p *Pager) Animating() bool {
	return p.animating
}

// Direction returns the direction of the latest movement. It is reset to
// DirectionNone when a drag is released.
func (p *Pager) Direction() indicator.Direction {
	return p.direction
}

// Drag moves the offset by delta pages. Positive deltas reveal later pages
// (content moves left under the finger) and report DirectionRight; negative
// deltas report DirectionLeft. A drag interrupts any settle animation.
func (p *Pager) Drag(delta float64) indicator.Direction {
	p.dragging = true
	p.animating = false
	p.offset = clamp(p.offset+delta, 0, float64(p.pages-1))
	switch {
	case delta > 0:
		p.direction = indicator.DirectionRight
	case delta < 0:
		p.direction = indicator.DirectionLeft
	}
	return p.direction
}

// Release ends a drag and starts settling on the nearest page, which it returns.
func (p *Pager) Release() int {
	p.dragging = false
	p.direction = indicator.DirectionNone
	p.target = p.CurrentPage()
	p.animating = p.offset != float64(p.target)
	return p.target
}

// ScrollTo moves to page, either at once or through a settle animation.
func (p *Pager) ScrollTo(page int, animated bool) {
	p.dragging = false
	p.target = p.clampPage(page)
	if !animated || p.offset == float64(p.target) {
		p.offset = float64(p.target)
		p.animating = false
		return
	}
	p.animating = true
}

// Step advances a settle animation by one frame. It reports whether the
// offset now rests on the target page.
func (p *Pager) Step() (offset float64, settled bool) {
	if !p.animating {
		return p.offset, true
	}

	remaining := float64(p.target) - p.offset
	if remaining > 0 {
		p.direction = indicator.DirectionRight
	} else {
		p.direction = indicator.DirectionLeft
	}

	if math.Abs(remaining) <= snapEpsilon {
		p.offset = float64(p.target)
		p.animating = false
		return p.offset, true
	}

	p.offset += remaining * p.settleFactor
	return p.offset, false
}

func (p *Pager) clampPage(page int) int {
	return max(0, min(page, p.pages-1))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
