// Package carousel couples the page indicator, its auto-advance clock and the
// scroll position of the pages it describes.
//
// The Controller is the single owner of those three pieces. It keeps the
// clock suspended while the user drags or a user-initiated scroll settles,
// feeds scroll fractions to the indicator, and restarts the clock from zero
// once the pages come to rest.
package carousel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/llehouerou/reel/internal/indicator"
	"github.com/llehouerou/reel/internal/pager"
)

// Config holds the parameters of a Controller.
type Config struct {
	CollapsedWidth float64
	Spacing        float64
	AutoAdvance    bool
	Step           float64
	EndPolicy      indicator.EndPolicy
	SettleFactor   float64
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		CollapsedWidth: 2,
		Spacing:        1,
		AutoAdvance:    true,
		Step:           0.01,
		EndPolicy:      indicator.EndStop,
		SettleFactor:   pager.DefaultSettleFactor,
	}
}

// Update describes the result of one controller operation.
type Update struct {
	State       indicator.State
	Page        int
	PageChanged bool
	Animating   bool
	Event       indicator.Event
}

// Controller owns one indicator engine, its clock and a pager.
type Controller struct {
	engine *indicator.Engine
	auto   *indicator.AutoAdvance
	pager  *pager.Pager
	logger *slog.Logger

	paused bool
	// auto scrolls move the pager after the indicator already switched pages.
	autoScroll bool
	page       int
}

// New creates a controller for pages pages. The clock starts running, but
// nothing happens until Layout provides a width.
func New(pages int, cfg Config, logger *slog.Logger) (*Controller, error) {
	engine, err := indicator.New(cfg.CollapsedWidth, pages, indicator.WithSpacing(cfg.Spacing))
	if err != nil {
		return nil, fmt.Errorf("create indicator: %w", err)
	}

	var auto *indicator.AutoAdvance
	if cfg.AutoAdvance {
		auto, err = indicator.NewAutoAdvance(engine, cfg.Step, cfg.EndPolicy)
		if err != nil {
			return nil, fmt.Errorf("create auto-advance: %w", err)
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		engine: engine,
		auto:   auto,
		pager:  pager.New(pages, pager.WithSettleFactor(cfg.SettleFactor)),
		logger: logger.With("component", "carousel"),
	}, nil
}

// Pages returns the page count.
func (c *Controller) Pages() int {
	return c.engine.Pages()
}

// Page returns the page whose media is on screen.
func (c *Controller) Page() int {
	return c.page
}

// State returns the current indicator state.
func (c *Controller) State() indicator.State {
	return c.engine.State()
}

// LaidOut reports whether Layout has been called.
func (c *Controller) LaidOut() bool {
	return c.engine.LaidOut()
}

// Offset returns the scroll offset in pages.
func (c *Controller) Offset() float64 {
	return c.pager.Offset()
}

// NeedsFrames reports whether a settle animation wants frame callbacks.
func (c *Controller) NeedsFrames() bool {
	return c.pager.Animating()
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.pager.Dragging()
}

// AutoAdvanceEnabled reports whether the controller has a clock at all.
func (c *Controller) AutoAdvanceEnabled() bool {
	return c.auto != nil
}

// Paused reports whether the user paused auto-advance.
func (c *Controller) Paused() bool {
	return c.paused
}

// Progress returns the clock progress of the active page.
func (c *Controller) Progress() float64 {
	if c.auto == nil {
		return 0
	}
	return c.auto.Progress()
}

// Running reports whether clock ticks currently add progress.
func (c *Controller) Running() bool {
	return c.auto != nil && c.auto.Running()
}

// Layout provides the width available to the indicator. The first call lays
// the indicator out; later calls recompute the expanded width.
func (c *Controller) Layout(width float64) (Update, error) {
	var (
		st  indicator.State
		err error
	)
	if c.engine.LaidOut() {
		st, err = c.engine.Resize(width)
	} else {
		st, err = c.engine.SetAvailableWidth(width)
		if err == nil && c.page != 0 {
			st, err = c.engine.Select(c.page)
		}
	}
	if err != nil {
		return c.update(indicator.EventIdle), err
	}
	c.logger.Debug("layout", "width", width, "expanded", st.ExpandedWidth)
	return c.update(indicator.EventIdle), nil
}

// Nudge drags the pages by delta pages. The clock is held until the pages
// settle again.
func (c *Controller) Nudge(delta float64) (Update, error) {
	if !c.engine.LaidOut() {
		return c.update(indicator.EventIdle), indicator.ErrNotLaidOut
	}
	c.suspend()
	c.autoScroll = false
	dir := c.pager.Drag(delta)
	c.engine.SetScrollDirection(dir)
	_, err := c.engine.UpdateByFraction(c.pager.FractionalPage())
	return c.update(indicator.EventIdle), err
}

// Release ends a drag. The pages start settling on the nearest page.
func (c *Controller) Release() (Update, error) {
	if !c.pager.Dragging() {
		return c.update(indicator.EventIdle), nil
	}
	page := c.pager.Release()
	c.engine.SetScrollDirection(indicator.DirectionNone)
	if !c.pager.Animating() {
		return c.settle(page)
	}
	return c.update(indicator.EventIdle), nil
}

// Swipe scrolls steps pages forward (positive) or backward (negative) with a
// settle animation. A swipe past either end is a no-op.
func (c *Controller) Swipe(steps int) (Update, error) {
	if !c.engine.LaidOut() {
		return c.update(indicator.EventIdle), indicator.ErrNotLaidOut
	}
	from := c.pager.CurrentPage()
	if c.pager.Animating() {
		from = c.pager.Target()
	}
	target := max(0, min(from+steps, c.engine.Pages()-1))
	if target == from && !c.pager.Animating() {
		return c.update(indicator.EventIdle), nil
	}

	c.suspend()
	c.autoScroll = false
	c.pager.ScrollTo(target, true)
	if !c.pager.Animating() {
		return c.settle(target)
	}
	return c.update(indicator.EventIdle), nil
}

// Select jumps straight to page index, as a tap on its segment does.
func (c *Controller) Select(index int) (Update, error) {
	if index < 0 || index >= c.engine.Pages() {
		return c.update(indicator.EventIdle), fmt.Errorf("%w: page %d", indicator.ErrOutOfRange, index)
	}
	c.autoScroll = false
	c.pager.ScrollTo(index, false)
	if !c.engine.LaidOut() {
		// Applied by Layout.
		c.page = index
		return c.update(indicator.EventIdle), nil
	}
	return c.settle(index)
}

// Tick advances the clock by one step. Ticks are no-ops while the user drags,
// while a user scroll settles, and while paused.
func (c *Controller) Tick() (Update, error) {
	if c.auto == nil || c.pager.Dragging() || (c.pager.Animating() && !c.autoScroll) {
		return c.update(indicator.EventIdle), nil
	}

	st, ev, err := c.auto.Tick()
	if err != nil && !errors.Is(err, indicator.ErrNotLaidOut) {
		return c.update(ev), err
	}

	switch ev {
	case indicator.EventAdvanced:
		c.logger.Debug("auto-advanced", "page", st.ActivePage)
		c.autoScroll = true
		c.pager.ScrollTo(st.ActivePage, true)
		if !c.pager.Animating() {
			c.autoScroll = false
		}
	case indicator.EventRestarted:
		c.logger.Debug("auto-advance restarted", "page", st.ActivePage)
	case indicator.EventFinished:
		c.logger.Debug("auto-advance finished", "page", st.ActivePage)
	}
	return c.update(ev), err
}

// Frame advances a settle animation by one frame.
func (c *Controller) Frame() (Update, error) {
	if !c.pager.Animating() {
		return c.update(indicator.EventIdle), nil
	}

	_, settled := c.pager.Step()
	if c.autoScroll {
		// The indicator already shows the new page.
		if settled {
			c.autoScroll = false
		}
		return c.update(indicator.EventIdle), nil
	}

	c.engine.SetScrollDirection(c.pager.Direction())
	if _, err := c.engine.UpdateByFraction(c.pager.FractionalPage()); err != nil {
		return c.update(indicator.EventIdle), err
	}
	if settled {
		return c.settle(c.pager.CurrentPage())
	}
	return c.update(indicator.EventIdle), nil
}

// TogglePause pauses or resumes auto-advance and returns the new paused state.
// Resuming keeps the progress of the active page.
func (c *Controller) TogglePause() bool {
	if c.auto == nil {
		return false
	}
	c.paused = !c.paused
	switch {
	case c.paused:
		c.auto.Suspend()
	case !c.pager.Dragging() && !c.pager.Animating():
		c.auto.Resume()
	}
	c.logger.Debug("pause toggled", "paused", c.paused)
	return c.paused
}

// settle makes page the active page once the pages are at rest and starts the
// clock over. The clock is released even when the selection fails.
func (c *Controller) settle(page int) (Update, error) {
	c.engine.SetScrollDirection(indicator.DirectionNone)
	_, err := c.engine.Select(page)
	if c.auto != nil {
		c.auto.Restart()
		if c.paused {
			c.auto.Suspend()
		}
	}
	if err != nil {
		return c.update(indicator.EventIdle), err
	}
	c.logger.Debug("settled", "page", page)
	return c.update(indicator.EventIdle), nil
}

func (c *Controller) suspend() {
	if c.auto != nil {
		c.auto.Suspend()
	}
}

func (c *Controller) update(ev indicator.Event) Update {
	page := c.pager.CurrentPage()
	changed := page != c.page
	c.page = page
	return Update{
		State:       c.engine.State(),
		Page:        page,
		PageChanged: changed,
		Animating:   c.pager.Animating(),
		Event:       ev,
	}
}
