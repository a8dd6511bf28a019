// Package indicatorbar draws the segmented page indicator on one terminal line.
package indicatorbar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/reel/internal/indicator"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Height is the fixed height of the indicator bar.
const Height = 1

const (
	filledChar = "▓"
	trackChar  = "░"
)

// Options controls how segment widths map onto cells.
type Options struct {
	Spacing float64 // gap between segments, in cells
	Width   int     // hard limit on the rendered width; 0 means none
	Fill    lipgloss.Color
	Track   lipgloss.Color
}

// DefaultOptions returns options using the theme colors.
func DefaultOptions(spacing float64, width int) Options {
	return Options{
		Spacing: spacing,
		Width:   width,
		Fill:    styles.T().Primary,
		Track:   styles.T().Track,
	}
}

// span is the cell range [start, end) covered by a segment.
type span struct {
	start, end int
}

// spans rounds the running float positions so that rounding errors never
// accumulate: the bar is as wide as the rounded total of the float widths.
func spans(st indicator.State, spacing float64) []span {
	out := make([]span, len(st.Segments))
	x := 0.0
	prevEnd := 0
	for i, seg := range st.Segments {
		if i > 0 {
			x += spacing
		}
		start := max(int(math.Round(x)), prevEnd)
		x += seg.Width
		end := max(int(math.Round(x)), start+1)
		out[i] = span{start: start, end: end}
		prevEnd = end
	}
	return out
}

// Render draws every segment. Unfilled segments use the track color; a
// segment's color moves toward the fill color as its fill grows.
func Render(st indicator.State, opts Options) string {
	return draw(st, opts, func(seg indicator.Segment, cells int) string {
		if seg.Fill <= 0 {
			return lipgloss.NewStyle().Foreground(opts.Track).Render(strings.Repeat(trackChar, cells))
		}
		color := styles.Blend(opts.Track, opts.Fill, seg.Fill)
		return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(filledChar, cells))
	})
}

// RenderPlain draws the bar without colors. A segment is drawn filled up to
// its fill fraction, which keeps progress readable in plain text.
func RenderPlain(st indicator.State, opts Options) string {
	return draw(st, opts, func(seg indicator.Segment, cells int) string {
		filled := int(math.Round(seg.Fill * float64(cells)))
		return strings.Repeat(filledChar, filled) + strings.Repeat(trackChar, cells-filled)
	})
}

func draw(st indicator.State, opts Options, segment func(indicator.Segment, int) string) string {
	if len(st.Segments) == 0 {
		return ""
	}

	var b strings.Builder
	pos := 0
	for i, sp := range spans(st, opts.Spacing) {
		if gap := sp.start - pos; gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteString(segment(st.Segments[i], sp.end-sp.start))
		pos = sp.end
	}

	out := b.String()
	if opts.Width > 0 && ansi.StringWidth(out) > opts.Width {
		out = ansi.Truncate(out, opts.Width, "")
	}
	return out
}

// Width returns the number of cells Render uses for st.
func Width(st indicator.State, spacing float64) int {
	sp := spans(st, spacing)
	if len(sp) == 0 {
		return 0
	}
	return sp[len(sp)-1].end
}

// HitTest returns the index of the segment drawn at cell x, or -1 when x
// falls in a gap or outside the bar.
func HitTest(st indicator.State, opts Options, x int) int {
	if x < 0 || (opts.Width > 0 && x >= opts.Width) {
		return -1
	}
	for i, sp := range spans(st, opts.Spacing) {
		if x >= sp.start && x < sp.end {
			return i
		}
	}
	return -1
}
