// internal/app/layout.go
package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/ui/headerbar"
	"github.com/llehouerou/reel/internal/ui/indicatorbar"
)

// Screen layout, top to bottom: header, page area, indicator, footer.

func (m Model) footerHeight() int {
	if m.showHelp {
		return max(lipgloss.Height(m.help.View(m.helpKeys)), 1)
	}
	return 1
}

// pageRows returns the height of the page area.
func (m Model) pageRows() int {
	return max(m.Height-headerbar.Height-indicatorbar.Height-m.footerHeight(), 0)
}

// indicatorRow returns the 0-based screen row of the indicator.
func (m Model) indicatorRow() int {
	return headerbar.Height + m.pageRows()
}

// indicatorWidth returns the cells available to the indicator.
func (m Model) indicatorWidth() int {
	w := m.Width
	if m.indicatorCfg.MaxWidth > 0 {
		w = min(w, m.indicatorCfg.MaxWidth)
	}
	return max(w, 0)
}

func (m Model) indicatorOptions() indicatorbar.Options {
	return indicatorbar.DefaultOptions(*m.indicatorCfg.Spacing, m.indicatorWidth())
}

// indicatorLeft returns the column where the centred indicator starts.
func (m Model) indicatorLeft() int {
	if m.carousel == nil || !m.carousel.LaidOut() {
		return 0
	}
	w := min(indicatorbar.Width(m.carousel.State(), *m.indicatorCfg.Spacing), m.indicatorWidth())
	return max((m.Width-w)/2, 0)
}
