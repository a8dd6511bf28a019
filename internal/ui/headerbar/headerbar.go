// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Info is what the header bar shows about the current page.
type Info struct {
	Name   string
	Kind   string
	Size   int64
	Page   int // zero-based
	Pages  int
	Paused bool
	Auto   bool // auto-advance enabled at all
	Wrap   bool // slideshow restarts after the last page
}

// Styles
var (
	counterStyle = lipgloss.NewStyle().
			Foreground(styles.T().Primary).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgBase)

	metaStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgMuted)

	pausedStyle = lipgloss.NewStyle().
			Foreground(styles.T().Secondary).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgSubtle)
)

// Render returns the header bar string for the given width: page counter and
// file name on the left, kind, size and pause state on the right.
func Render(info Info, width int) string {
	if width < 20 || info.Pages == 0 {
		return ""
	}

	counter := counterStyle.Render(fmt.Sprintf("%d/%d", info.Page+1, info.Pages))

	meta := []string{info.Kind}
	if info.Size > 0 {
		meta = append(meta, humanize.IBytes(uint64(info.Size)))
	}
	right := metaStyle.Render(strings.Join(meta, " · "))
	switch {
	case info.Auto && info.Paused:
		right += separatorStyle.Render(" │ ") + pausedStyle.Render(icons.Paused())
	case info.Auto:
		right += separatorStyle.Render(" │ ") + metaStyle.Render(icons.Auto())
	}
	if info.Auto && info.Wrap {
		right += " " + metaStyle.Render(icons.Wrap())
	}

	// Whatever is left goes to the name.
	nameWidth := width - lipgloss.Width(counter) - lipgloss.Width(right) - 3
	left := counter
	if nameWidth >= 4 {
		left += " " + nameStyle.Render(icons.FormatPage(info.Kind, render.TruncateName(info.Name, nameWidth-lipgloss.Width(icons.ForKind(info.Kind)))))
	}

	return render.Row(left, right, width)
}
