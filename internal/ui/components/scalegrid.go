package components

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/scaletrainer/internal/scales"
	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

// ScaleGrid renders keys as rows and degrees 1..7 as columns. The row for
// highlight, if any, is drawn in the selected style.
func ScaleGrid(keys []string, highlight string) string {
	headers := []string{"Key"}
	for d := 1; d <= scales.DegreeCount; d++ {
		headers = append(headers, strconv.Itoa(d))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...)

	for _, key := range keys {
		notes, err := scales.Scale(key)
		if err != nil {
			continue
		}
		t.Row(append([]string{key}, notes...)...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		cell := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == table.HeaderRow:
			return cell.Foreground(theme.Accent).Bold(true).Align(lipgloss.Center)
		case row >= 0 && row < len(keys) && keys[row] == highlight:
			return cell.Inherit(theme.Selected)
		case col == 0:
			return cell.Foreground(theme.TextDim)
		default:
			return cell.Foreground(theme.Text)
		}
	})

	return t.Render()
}
