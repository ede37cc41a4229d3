package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

// KeySelector renders a horizontal list of scale keys with one selected.
// Disabled selectors are drawn dimmed; the owning screen decides whether
// arrow keys move the selection.
type KeySelector struct {
	Keys     []string
	Selected string
	Disabled bool
}

// NewKeySelector creates a selector over keys.
func NewKeySelector(keys []string, selected string) KeySelector {
	return KeySelector{Keys: keys, Selected: selected}
}

// View renders the selector on one line, wrapping to width if needed.
func (k KeySelector) View(width int) string {
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, key := range k.Keys {
		var cell string
		switch {
		case key == k.Selected && k.Disabled:
			cell = theme.Body.Bold(true).Render("[" + key + "]")
		case key == k.Selected:
			cell = theme.Selected.Render("[" + key + "]")
		case k.Disabled:
			cell = theme.Disabled.Render(" " + key + " ")
		default:
			cell = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + key + " ")
		}

		w := lipgloss.Width(cell) + 1
		if width > 0 && lineWidth+w > width && lineWidth > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(cell + " ")
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
