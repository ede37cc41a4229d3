package trainer

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/scales"
	tr "github.com/abhisek/scaletrainer/internal/trainer"
	"github.com/abhisek/scaletrainer/internal/ui/components"
	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

func (s *TrainerScreen) View(width, height int) string {
	st := s.session.Status()
	cw := components.ContentWidth(width)

	var sections []string

	// Key selector, locked while a quiz runs.
	selector := components.NewKeySelector(scales.Keys(), st.Key)
	selector.Disabled = st.Running()
	sections = append(sections, theme.Hint.Render("Key")+"\n"+selector.View(cw))

	sections = append(sections, components.NewScoreBar(st.Correct, st.Total, cw).View())

	if st.Running() {
		sections = append(sections, renderTimings(st))
		sections = append(sections, s.renderQuestion(st))
	}

	if st.Feedback != nil {
		sections = append(sections, renderFeedback(*st.Feedback))
	}

	sections = append(sections, renderButtons(st))

	if st.ShowScale {
		sections = append(sections, components.Card(renderScale(st.Key, st.Scale), cw))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.Center(strings.TrimRight(content, "\n"), width, height)
}

// renderTimings renders the last and average response time.
func renderTimings(st tr.Status) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Response: %.2fs  |  Average: %.2fs", st.LastResponseTime, st.AverageResponseTime))
}

// renderQuestion renders the asked degree and the answer box.
func (s *TrainerScreen) renderQuestion(st tr.Status) string {
	if st.Degree == 0 {
		return ""
	}
	degree := theme.Degree.Render(fmt.Sprintf("%d", st.Degree))
	answer := "Note: " + s.input.View()
	return lipgloss.JoinVertical(lipgloss.Center, degree, "", answer)
}

// renderFeedback renders the evaluation of the last answer.
func renderFeedback(fb tr.Feedback) string {
	if fb.Correct {
		return theme.Correct.Render("✓ " + fb.Message())
	}
	return theme.Incorrect.Render("✗ " + fb.Message())
}

// renderButtons renders the start/stop and scale triggers.
func renderButtons(st tr.Status) string {
	toggle := components.NewButton("Start", "Tab", components.ButtonPrimary)
	if st.Running() {
		toggle = components.NewButton("Stop", "Tab", components.ButtonDanger)
	}
	scale := components.NewButton("Show scale", "Ctrl+S", components.ButtonQuiet)
	if st.ShowScale {
		scale.Label = "Hide scale"
	}
	return components.ButtonRow(toggle, scale)
}

// renderScale lists the notes of key labelled by degree, four per row.
func renderScale(key string, notes []string) string {
	title := theme.Title.Render(key + " major")
	var rows []string
	var chips []string
	for i, n := range notes {
		if len(chips) > 0 {
			chips = append(chips, " ")
		}
		chips = append(chips, theme.NoteChip.Render(fmt.Sprintf("%d: %s", i+1, n)))
		if i%4 == 3 || i == len(notes)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
			chips = nil
		}
	}
	return title + "\n\n" + lipgloss.JoinVertical(lipgloss.Center, rows...)
}
