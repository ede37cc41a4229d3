package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

// ContentWidth returns the inner width shared by all cards on a screen so
// they line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6 // frame border + padding
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border box of content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
