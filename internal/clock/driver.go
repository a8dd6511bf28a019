// Package clock drives a callback at a fixed interval on a background goroutine.
//
// The interactive UI schedules its ticks through bubbletea commands instead;
// Driver serves headless hosts that have no event loop of their own.
package clock

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrInvalidInterval is returned when the tick interval is not positive.
var ErrInvalidInterval = errors.New("clock: interval must be positive")

// TickFunc is called once per interval. Returning false stops the driver.
type TickFunc func(now time.Time) bool

// Driver calls a TickFunc at a fixed interval. Calls never overlap.
type Driver struct {
	interval time.Duration
	fn       TickFunc
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a stopped driver.
func New(interval time.Duration, fn TickFunc, logger *slog.Logger) (*Driver, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		interval: interval,
		fn:       fn,
		logger:   logger.With("component", "clock"),
	}, nil
}

// Interval returns the tick interval.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Start begins ticking. It is a no-op if the driver is already running.
// The driver stops when ctx is cancelled, Stop is called, or the TickFunc
// returns false; a stopped driver can be started again.
func (d *Driver) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})
	go d.run(ctx, cancel, d.done)
}

// Running reports whether the tick goroutine is alive.
func (d *Driver) Running() bool {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Done returns a channel closed when the current run ends. It is nil if the
// driver was never started.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

// Stop halts ticking and waits for the goroutine to exit.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (d *Driver) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer func() {
		cancel()
		d.mu.Lock()
		if d.done == done {
			d.cancel = nil
		}
		d.mu.Unlock()
		// Closed last: once Done fires, Start begins a new run.
		close(done)
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Debug("clock started", "interval", d.interval)
	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("clock stopped", "reason", ctx.Err())
			return
		case now := <-ticker.C:
			if !d.fn(now) {
				d.logger.Debug("clock stopped by tick func")
				return
			}
		}
	}
}
