// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/ui/headerbar"
	"github.com/llehouerou/reel/internal/ui/indicatorbar"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	lines := []string{headerbar.Render(m.headerInfo(), m.Width)}
	if rows := m.pageRows(); rows > 0 {
		lines = append(lines, m.renderPage(rows))
	}
	lines = append(lines, m.renderIndicator(), m.renderFooter())

	view := enforceHeight(strings.Join(lines, "\n"), m.Height)

	// Prepend image transmission if pending (sent once per page)
	if m.artPending != "" {
		view = m.artPending + view
	}

	// Image placement goes last so the cursor restore leaves the frame intact.
	if m.pageRows() > 0 {
		view += m.art.Placement(headerbar.Height+1, 1)
	}

	return view
}

func (m Model) headerInfo() headerbar.Info {
	item, ok := m.currentItem()
	if !ok {
		return headerbar.Info{}
	}
	return headerbar.Info{
		Name:   item.Name,
		Kind:   string(item.Kind),
		Size:   item.Size,
		Page:   m.carousel.Page(),
		Pages:  m.carousel.Pages(),
		Paused: m.carousel.Paused(),
		Auto:   m.carousel.AutoAdvanceEnabled(),
		Wrap:   m.wraps(),
	}
}

// renderPage fills the page area: blank space under an image, otherwise a
// card describing the page.
func (m Model) renderPage(rows int) string {
	if m.art.HasImage() {
		return m.art.Placeholder()
	}

	s := styles.T().S()
	var card string
	item, ok := m.currentItem()
	switch {
	case m.loading:
		card = s.Muted.Render("Scanning " + render.TruncatePath(m.folder, m.Width-12) + "…")
	case !ok:
		card = s.Muted.Render("Nothing to show in " + render.TruncatePath(m.folder, m.Width-22))
	default:
		note := "no preview"
		if m.artLoading {
			note = "loading…"
		}
		inner := max(m.Width-8, 1)
		card = styles.FrameStyle(!m.carousel.Paused()).Render(lipgloss.JoinVertical(
			lipgloss.Center,
			s.Title.Render(render.TruncateName(item.Name, inner)),
			s.Muted.Render(string(item.Kind)),
			s.Subtle.Render(note),
		))
	}

	return lipgloss.Place(m.Width, rows, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) renderIndicator() string {
	if m.carousel == nil || !m.carousel.LaidOut() {
		return ""
	}
	bar := indicatorbar.Render(m.carousel.State(), m.indicatorOptions())
	return strings.Repeat(" ", m.indicatorLeft()) + bar
}

func (m Model) renderFooter() string {
	if m.showHelp {
		return m.help.View(m.helpKeys)
	}
	if m.status != "" {
		return styles.T().S().Error.Render(render.Truncate(m.status, m.Width))
	}
	return m.help.ShortHelpView(m.helpKeys.ShortHelp())
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	currentHeight := len(lines)

	if currentHeight == targetHeight {
		return view
	}

	if currentHeight < targetHeight {
		for i := currentHeight; i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}
