package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

// ScoreBar shows correct answers out of total as a bar.
type ScoreBar struct {
	Correct int
	Total   int
	Width   int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(correct, total, width int) ScoreBar {
	return ScoreBar{Correct: correct, Total: total, Width: width}
}

// Ratio returns Correct/Total, or 0 when nothing was answered.
func (s ScoreBar) Ratio() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// View renders "Score: c / t" followed by the bar.
func (s ScoreBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score: %d / %d", s.Correct, s.Total))

	barWidth := s.Width - lipgloss.Width(label) - 2
	if barWidth < 4 {
		return label
	}

	filled := int(float64(barWidth) * s.Ratio())
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	return label + "  " +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
