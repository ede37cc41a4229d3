package scaletable

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/router"
	"github.com/abhisek/scaletrainer/internal/scales"
	"github.com/abhisek/scaletrainer/internal/screen"
	"github.com/abhisek/scaletrainer/internal/ui/components"
	"github.com/abhisek/scaletrainer/internal/ui/layout"
	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

// TrainFunc builds a trainer screen for key, or returns nil if it cannot.
type TrainFunc func(key string) screen.Screen

// ScaleTableScreen lists every major scale with one row highlighted.
type ScaleTableScreen struct {
	keys     []string
	selected int
	train    TrainFunc
}

var _ screen.Screen = (*ScaleTableScreen)(nil)
var _ screen.KeyHintProvider = (*ScaleTableScreen)(nil)
var _ screen.StatusProvider = (*ScaleTableScreen)(nil)

// New creates a ScaleTableScreen with key highlighted. An unknown key
// highlights the first row. Enter replaces the table with train(key); a nil
// train disables it.
func New(key string, train TrainFunc) *ScaleTableScreen {
	keys := scales.Keys()
	selected := scales.IndexOf(key)
	if selected < 0 {
		selected = 0
	}
	return &ScaleTableScreen{keys: keys, selected: selected, train: train}
}

func (s *ScaleTableScreen) Init() tea.Cmd {
	return nil
}

func (s *ScaleTableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.selected = (s.selected - 1 + len(s.keys)) % len(s.keys)
	case "down", "j":
		s.selected = (s.selected + 1) % len(s.keys)
	case "enter":
		return s, s.startTraining()
	}
	return s, nil
}

// startTraining swaps this screen for a trainer in the highlighted key.
func (s *ScaleTableScreen) startTraining() tea.Cmd {
	if s.train == nil {
		return nil
	}
	next := s.train(s.Selected())
	if next == nil {
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ScaleTableScreen) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Major scales, degrees 1 to 7"),
		"",
		components.ScaleGrid(s.keys, s.Selected()),
	)
	return components.Center(content, width, height)
}

func (s *ScaleTableScreen) Title() string {
	return "Scale Table"
}

func (s *ScaleTableScreen) HeaderStatus() string {
	return s.Selected() + " major"
}

func (s *ScaleTableScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Highlight"}}
	if s.train != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Train"})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Selected returns the highlighted key.
func (s *ScaleTableScreen) Selected() string {
	return s.keys[s.selected]
}
