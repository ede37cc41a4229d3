package trainer

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scaletrainer/internal/screen"
	tr "github.com/abhisek/scaletrainer/internal/trainer"
	"github.com/abhisek/scaletrainer/internal/ui/components"
	"github.com/abhisek/scaletrainer/internal/ui/layout"
)

// TrainerScreen drives a trainer Session from keyboard input.
type TrainerScreen struct {
	session *tr.Session
	input   components.TextInput
}

var _ screen.Screen = (*TrainerScreen)(nil)
var _ screen.KeyHintProvider = (*TrainerScreen)(nil)
var _ screen.StatusProvider = (*TrainerScreen)(nil)
var _ screen.Leaver = (*TrainerScreen)(nil)

// New creates a TrainerScreen for session. The session should be idle.
func New(session *tr.Session) *TrainerScreen {
	// No character limit: padding around a note is trimmed when scoring.
	input := components.NewTextInput("type the note, then Enter", 0)
	input.Blur()
	return &TrainerScreen{
		session: session,
		input:   input,
	}
}

func (s *TrainerScreen) Init() tea.Cmd {
	return nil
}

func (s *TrainerScreen) Title() string {
	return "Major Scales"
}

func (s *TrainerScreen) HeaderStatus() string {
	st := s.session.Status()
	return fmt.Sprintf("%s major  %d/%d", st.Key, st.Correct, st.Total)
}

func (s *TrainerScreen) KeyHints() []layout.KeyHint {
	if s.session.Running() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Stop"},
			{Key: "Ctrl+S", Description: "Scale"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Key"},
		{Key: "Tab/Enter", Description: "Start"},
		{Key: "Ctrl+S", Description: "Scale"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrainerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case nextQuestionMsg:
		return s.handleNextQuestion(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other input internals.
	if s.session.Running() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *TrainerScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.toggle()
	case "ctrl+s":
		s.session.ToggleScale()
		return s, nil
	case "enter":
		if !s.session.Running() {
			return s, s.toggle()
		}
		return s, s.submit()
	case "left":
		if !s.session.Running() {
			s.session.CycleKey(-1)
			return s, nil
		}
	case "right":
		if !s.session.Running() {
			s.session.CycleKey(1)
			return s, nil
		}
	}

	if !s.session.Running() {
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.session.SetInput(s.input.Value())
	return s, cmd
}

// Leave stops a running session when the screen is closed.
func (s *TrainerScreen) Leave() {
	if s.session.Running() {
		s.session.Toggle()
	}
	s.input.Reset()
	s.input.Blur()
}

// toggle starts or stops the session and moves focus accordingly.
func (s *TrainerScreen) toggle() tea.Cmd {
	s.input.Reset()
	if s.session.Toggle() {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// submit scores the answer and schedules the next question.
func (s *TrainerScreen) submit() tea.Cmd {
	s.session.SetInput(s.input.Value())
	p, ok := s.session.Submit()
	if !ok {
		return nil
	}
	return nextQuestionCmd(p)
}

func (s *TrainerScreen) handleNextQuestion(msg nextQuestionMsg) (screen.Screen, tea.Cmd) {
	if !s.session.Advance(msg.Pending) {
		return s, nil
	}
	s.input.Reset()
	return s, s.input.Focus()
}

// nextQuestionCmd fires once after the Pending's delay.
func nextQuestionCmd(p tr.Pending) tea.Cmd {
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return nextQuestionMsg{Pending: p}
	})
}
