package styles

import "github.com/charmbracelet/lipgloss"

var (
	framePanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.Border)

	activeFramePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.BorderFocus)
)

// FrameStyle returns the border around the page area. The border lights up
// while the user is moving the pages.
func FrameStyle(active bool) lipgloss.Style {
	if active {
		return activeFramePanelStyle
	}
	return framePanelStyle
}
