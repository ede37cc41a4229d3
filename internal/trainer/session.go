package trainer

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/abhisek/scaletrainer/internal/scales"
)

// ErrSessionRunning is returned when the key is changed during a quiz.
var ErrSessionRunning = errors.New("session is running")

// Toggle starts a quiz when idle and stops it when running. It reports
// whether the session is running afterwards.
//
// Starting resets the score and timings and asks the first question.
// Stopping clears the question, input, feedback and timings; the score stays
// readable until the next start resets it.
func (s *Session) Toggle() bool {
	s.run++

	if s.phase == PhaseRunning {
		s.phase = PhaseIdle
		s.degree = 0
		s.input = ""
		s.answered = false
		s.feedback = nil
		s.lastResponseTime = 0
		s.avgResponseTime = 0
		s.notifyStopped()
		return false
	}

	s.correct = 0
	s.total = 0
	s.avgResponseTime = 0
	s.lastResponseTime = 0
	s.phase = PhaseRunning
	s.id = uuid.New().String()
	s.notifyStarted()
	s.issueQuestion()
	return true
}

// issueQuestion draws a new degree. Repeats are allowed.
func (s *Session) issueQuestion() {
	s.degree = s.rng.Intn(scales.DegreeCount) + 1
	s.input = ""
	s.feedback = nil
	s.answered = false
	s.questionStartedAt = s.now()
}

// SetInput replaces the pending answer verbatim. Ignored when idle.
func (s *Session) SetInput(text string) {
	if s.phase != PhaseRunning {
		return
	}
	s.input = text
}

// Submit scores the pending answer against the current degree.
//
// It returns false and changes nothing when the session is idle, when no
// question is asked, or when the current question was already answered.
// Otherwise the returned Pending must be passed to Advance once its delay
// has elapsed.
func (s *Session) Submit() (Pending, bool) {
	if s.phase != PhaseRunning || s.degree == 0 || s.answered {
		return Pending{}, false
	}

	elapsed := s.now().Sub(s.questionStartedAt).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	s.lastResponseTime = round2(elapsed)

	// The previous mean is scaled by the previous total before the raw
	// sample is added; only the result is rounded.
	prevTotal := s.total
	s.total++
	s.avgResponseTime = round2((s.avgResponseTime*float64(prevTotal) + elapsed) / float64(s.total))

	expected := scales.MustNote(s.key, s.degree)
	correct := scales.Matches(s.input, expected)
	if correct {
		s.correct++
	}
	s.feedback = &Feedback{
		Correct:  correct,
		Expected: expected,
		Answer:   scales.Normalize(s.input),
	}
	s.answered = true

	s.notifyAnswer(Result{
		Key:      s.key,
		Degree:   s.degree,
		Expected: expected,
		Answer:   s.feedback.Answer,
		Correct:  correct,
		Elapsed:  s.lastResponseTime,
		Average:  s.avgResponseTime,
		Total:    s.total,
		Score:    s.correct,
	})

	return Pending{Run: s.run, Delay: s.delay}, true
}

// Advance issues the next question for a Pending returned by Submit. It is a
// no-op, returning false, when the session was stopped (or stopped and
// restarted) since the Pending was created.
func (s *Session) Advance(p Pending) bool {
	if s.phase != PhaseRunning || p.Run != s.run || !s.answered {
		return false
	}
	s.issueQuestion()
	return true
}

// SelectKey changes the scale key. Only allowed while idle.
func (s *Session) SelectKey(key string) error {
	if s.phase == PhaseRunning {
		return ErrSessionRunning
	}
	if !scales.IsKey(key) {
		return &scales.InvalidKeyError{Key: key}
	}
	s.key = key
	return nil
}

// CycleKey moves the selection delta positions through scales.Keys(),
// wrapping at both ends, and returns the selected key. Ignored while running.
func (s *Session) CycleKey(delta int) string {
	if s.phase == PhaseRunning {
		return s.key
	}
	keys := scales.Keys()
	i := scales.IndexOf(s.key)
	n := len(keys)
	s.key = keys[((i+delta)%n+n)%n]
	return s.key
}

// ToggleScale flips the scale listing and returns the new value.
func (s *Session) ToggleScale() bool {
	s.showScale = !s.showScale
	return s.showScale
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
