package trainer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/scaletrainer/internal/scales"
)

// DefaultFeedbackDelay is how long the feedback stays up before the next
// question is issued.
const DefaultFeedbackDelay = 1000 * time.Millisecond

// Phase represents whether a quiz is running.
type Phase int

const (
	PhaseIdle    Phase = iota // No quiz; key selector enabled
	PhaseRunning              // Asking degrees and scoring answers
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Feedback is the evaluation of the most recent answer.
type Feedback struct {
	Correct  bool
	Expected string
	Answer   string
}

// Message renders the feedback line shown under the answer box.
func (f Feedback) Message() string {
	if f.Correct {
		return fmt.Sprintf("Correct! (%s)", f.Expected)
	}
	return fmt.Sprintf("Wrong. It was %s", f.Expected)
}

// Result describes one scored answer. It is handed to the Observer.
type Result struct {
	Key      string
	Degree   int
	Expected string
	Answer   string
	Correct  bool
	Elapsed  float64 // seconds, two decimals
	Average  float64 // running mean after this answer
	Total    int
	Score    int
}

// Pending is a scheduled request for the next question. It stays valid only
// for the run that produced it; see Session.Advance.
type Pending struct {
	Run   uint64
	Delay time.Duration
}

// Status is a read-only projection of a Session for rendering.
type Status struct {
	Key                 string
	Phase               Phase
	SessionID           string
	Degree              int // 0 when no question is asked
	Input               string
	Correct             int
	Total               int
	LastResponseTime    float64
	AverageResponseTime float64
	Feedback            *Feedback
	ShowScale           bool
	Scale               []string // notes of Key, tonic first
	AwaitingNext        bool     // answered, waiting for the next question
}

// Running reports whether the quiz is active.
func (s Status) Running() bool {
	return s.Phase == PhaseRunning
}

// Options configures a new Session.
type Options struct {
	// Key is the initial selected key. Default: scales.DefaultKey.
	Key string

	// FeedbackDelay is carried on every Pending. Default: 1s.
	FeedbackDelay time.Duration

	// Clock returns the current time. Default: time.Now.
	Clock func() time.Time

	// Rand draws question degrees. Default: seeded from the clock.
	Rand *rand.Rand

	// Observer receives session events. May be nil.
	Observer Observer
}

// Session owns the state of the trainer: the selected key, the quiz phase,
// the current question and the running score.
type Session struct {
	key   string
	phase Phase

	// id identifies the current run for logs; regenerated on every start.
	id string

	// run is bumped on every start and stop. Pending values from an older
	// run are ignored by Advance.
	run uint64

	degree   int
	input    string
	answered bool
	feedback *Feedback

	correct int
	total   int

	questionStartedAt time.Time
	lastResponseTime  float64
	avgResponseTime   float64

	showScale bool

	delay    time.Duration
	now      func() time.Time
	rng      *rand.Rand
	observer Observer
}

// New creates an idle Session.
func New(opts Options) (*Session, error) {
	if opts.Key == "" {
		opts.Key = scales.DefaultKey
	}
	if !scales.IsKey(opts.Key) {
		return nil, fmt.Errorf("new session: %w", &scales.InvalidKeyError{Key: opts.Key})
	}
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = DefaultFeedbackDelay
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Clock().UnixNano()))
	}

	return &Session{
		key:      opts.Key,
		phase:    PhaseIdle,
		delay:    opts.FeedbackDelay,
		now:      opts.Clock,
		rng:      opts.Rand,
		observer: opts.Observer,
	}, nil
}

// Status returns a snapshot of the session for rendering.
func (s *Session) Status() Status {
	st := Status{
		Key:                 s.key,
		Phase:               s.phase,
		SessionID:           s.id,
		Degree:              s.degree,
		Input:               s.input,
		Correct:             s.correct,
		Total:               s.total,
		LastResponseTime:    s.lastResponseTime,
		AverageResponseTime: s.avgResponseTime,
		ShowScale:           s.showScale,
		AwaitingNext:        s.answered,
	}
	if s.feedback != nil {
		fb := *s.feedback
		st.Feedback = &fb
	}
	st.Scale, _ = scales.Scale(s.key)
	return st
}

// Key returns the selected key.
func (s *Session) Key() string {
	return s.key
}

// Running reports whether the quiz is active.
func (s *Session) Running() bool {
	return s.phase == PhaseRunning
}
