// Command reelsim runs the page indicator headless and prints it as text,
// one line per auto-advance tick.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/llehouerou/reel/internal/clock"
	"github.com/llehouerou/reel/internal/indicator"
	"github.com/llehouerou/reel/internal/logging"
	"github.com/llehouerou/reel/internal/ui/indicatorbar"
)

type options struct {
	pages     int
	width     int
	collapsed float64
	spacing   float64
	interval  time.Duration
	step      float64
	ticks     int
	wrap      bool
	advances  bool
}

func main() {
	var o options
	flag.IntVar(&o.pages, "pages", 5, "number of pages")
	flag.IntVar(&o.width, "width", 60, "available width in cells")
	flag.Float64Var(&o.collapsed, "collapsed", 2, "collapsed segment width in cells")
	flag.Float64Var(&o.spacing, "spacing", indicator.DefaultSpacing, "gap between segments in cells")
	flag.DurationVar(&o.interval, "interval", 50*time.Millisecond, "tick interval")
	flag.Float64Var(&o.step, "step", 0.1, "progress added per tick, in (0, 1]")
	flag.IntVar(&o.ticks, "ticks", 0, "stop after this many ticks (0: until the last page completes)")
	flag.BoolVar(&o.wrap, "wrap", false, "wrap to the first page after the last")
	flag.BoolVar(&o.advances, "advances", false, "print only page changes")
	flag.Parse()

	logger := logging.Setup(os.Getenv("REEL_LOG_LEVEL"), os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := simulate(ctx, os.Stdout, o, logger); err != nil {
		fmt.Fprintln(os.Stderr, "reelsim:", err)
		os.Exit(1)
	}
}

// simulator owns the engine and clock; the driver calls tick serially.
type simulator struct {
	mu    sync.Mutex
	out   io.Writer
	opts  indicatorbar.Options
	auto  *indicator.AutoAdvance
	limit int
	ticks int
	only  bool
	err   error
}

func simulate(ctx context.Context, out io.Writer, o options, logger *slog.Logger) error {
	engine, err := indicator.New(o.collapsed, o.pages, indicator.WithSpacing(o.spacing))
	if err != nil {
		return err
	}
	st, err := engine.SetAvailableWidth(float64(o.width))
	if err != nil {
		return err
	}

	policy := indicator.EndStop
	if o.wrap {
		policy = indicator.EndWrap
	}
	auto, err := indicator.NewAutoAdvance(engine, o.step, policy)
	if err != nil {
		return err
	}

	s := &simulator{
		out:   out,
		opts:  indicatorbar.Options{Spacing: o.spacing, Width: o.width},
		auto:  auto,
		limit: o.ticks,
		only:  o.advances,
	}
	s.print(st, indicator.EventIdle)

	// A wrapping run with no tick limit would never end.
	if o.wrap && o.ticks <= 0 {
		s.limit = int(float64(o.pages)/o.step) + 1
	}

	d, err := clock.New(o.interval, s.tick, logger)
	if err != nil {
		return err
	}
	d.Start(ctx)
	<-d.Done()

	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Info("simulation done", "ticks", s.ticks, "page", engine.ActivePage())
	return s.err
}

func (s *simulator) tick(time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks++
	st, ev, err := s.auto.Tick()
	if err != nil {
		s.err = err
		return false
	}
	if !s.only || ev == indicator.EventAdvanced || ev == indicator.EventRestarted {
		s.print(st, ev)
	}

	if ev == indicator.EventFinished {
		return false
	}
	return s.limit <= 0 || s.ticks < s.limit
}

func (s *simulator) print(st indicator.State, ev indicator.Event) {
	fmt.Fprintf(s.out, "%4d  %s  page %d/%d  %.2f  %s\n",
		s.ticks,
		indicatorbar.RenderPlain(st, s.opts),
		st.ActivePage+1, len(st.Segments),
		s.auto.Progress(),
		ev)
}
