package trainer

import (
	"charm.land/log/v2"
)

// Observer is notified of session lifecycle events. Implementations must not
// call back into the Session.
type Observer interface {
	SessionStarted(id, key string)
	AnswerRecorded(id string, r Result)
	SessionStopped(id string, correct, total int)
}

func (s *Session) notifyStarted() {
	if s.observer != nil {
		s.observer.SessionStarted(s.id, s.key)
	}
}

func (s *Session) notifyAnswer(r Result) {
	if s.observer != nil {
		s.observer.AnswerRecorded(s.id, r)
	}
}

func (s *Session) notifyStopped() {
	if s.observer != nil {
		s.observer.SessionStopped(s.id, s.correct, s.total)
	}
}

// LogObserver writes session events to a structured logger.
type LogObserver struct {
	Logger *log.Logger
}

var _ Observer = LogObserver{}

func (o LogObserver) SessionStarted(id, key string) {
	o.Logger.Info("session started", "session", id, "key", key)
}

func (o LogObserver) AnswerRecorded(id string, r Result) {
	o.Logger.Debug("answer recorded",
		"session", id,
		"key", r.Key,
		"degree", r.Degree,
		"expected", r.Expected,
		"answer", r.Answer,
		"correct", r.Correct,
		"elapsed", r.Elapsed,
		"avg", r.Average,
	)
}

func (o LogObserver) SessionStopped(id string, correct, total int) {
	o.Logger.Info("session stopped", "session", id, "correct", correct, "total", total)
}
