package trainer

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scaletrainer/internal/screen"
	tr "github.com/abhisek/scaletrainer/internal/trainer"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testTrainerScreen(t *testing.T, key string) (*TrainerScreen, *tr.Session) {
	t.Helper()
	session, err := tr.New(tr.Options{
		Key:           key,
		FeedbackDelay: time.Millisecond,
		Rand:          rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return New(session), session
}

// send delivers msg and returns the resulting command.
func send(t *testing.T, s *TrainerScreen, msg tea.Msg) tea.Cmd {
	t.Helper()
	var scr screen.Screen = s
	scr, cmd := scr.Update(msg)
	if scr != s {
		t.Fatal("trainer screen should update in place")
	}
	return cmd
}

// typeText sends one key press per rune.
func typeText(t *testing.T, s *TrainerScreen, text string) {
	t.Helper()
	for _, r := range text {
		send(t, s, keyPress(r))
	}
}

// expectedNote returns the note for the degree currently asked.
func expectedNote(t *testing.T, session *tr.Session) string {
	t.Helper()
	st := session.Status()
	if st.Degree == 0 {
		t.Fatal("no question asked")
	}
	return st.Scale[st.Degree-1]
}

func TestTrainerScreen_Title(t *testing.T) {
	s, _ := testTrainerScreen(t, "Do")
	if s.Title() != "Major Scales" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestTrainerScreen_KeySelectorIdleOnly(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")

	send(t, s, specialKey(tea.KeyRight))
	if session.Key() != "Sol" {
		t.Errorf("Key = %q after right, want Sol", session.Key())
	}
	send(t, s, specialKey(tea.KeyLeft))
	send(t, s, specialKey(tea.KeyLeft))
	if session.Key() != "Fa" {
		t.Errorf("Key = %q after left x2, want Fa", session.Key())
	}

	send(t, s, specialKey(tea.KeyTab))
	send(t, s, specialKey(tea.KeyRight))
	if session.Key() != "Fa" {
		t.Errorf("Key changed while running: %q", session.Key())
	}
}

func TestTrainerScreen_TabStartsAndStops(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")

	send(t, s, specialKey(tea.KeyTab))
	if !session.Running() {
		t.Fatal("expected session running after Tab")
	}
	if d := session.Status().Degree; d < 1 || d > 7 {
		t.Errorf("Degree = %d, want 1..7", d)
	}

	send(t, s, specialKey(tea.KeyTab))
	if session.Running() {
		t.Fatal("expected session idle after second Tab")
	}
}

func TestTrainerScreen_EnterStartsWhenIdle(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")
	send(t, s, specialKey(tea.KeyEnter))
	if !session.Running() {
		t.Fatal("expected Enter to start an idle session")
	}
	if session.Status().Total != 0 {
		t.Error("starting should not score anything")
	}
}

func TestTrainerScreen_TypingIgnoredWhenIdle(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")
	typeText(t, s, "do")
	if session.Status().Input != "" {
		t.Errorf("Input = %q, want empty while idle", session.Status().Input)
	}
}

func TestTrainerScreen_CorrectAnswerThenNextQuestion(t *testing.T) {
	s, session := testTrainerScreen(t, "Sol")
	send(t, s, specialKey(tea.KeyTab))

	typeText(t, s, strings.ToLower(expectedNote(t, session)))
	cmd := send(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a scheduled next question")
	}

	st := session.Status()
	if st.Feedback == nil || !st.Feedback.Correct {
		t.Fatalf("expected correct feedback, got %+v", st.Feedback)
	}
	if st.Correct != 1 || st.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", st.Correct, st.Total)
	}

	msg := cmd()
	if _, ok := msg.(nextQuestionMsg); !ok {
		t.Fatalf("cmd produced %T, want nextQuestionMsg", msg)
	}
	send(t, s, msg)

	st = session.Status()
	if st.Feedback != nil || st.Input != "" || st.AwaitingNext {
		t.Errorf("expected a fresh question, got %+v", st)
	}
	if s.input.Value() != "" {
		t.Errorf("input box = %q, want cleared", s.input.Value())
	}
}

func TestTrainerScreen_WrongAnswer(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")
	send(t, s, specialKey(tea.KeyTab))

	typeText(t, s, "xx")
	send(t, s, specialKey(tea.KeyEnter))

	st := session.Status()
	if st.Feedback == nil || st.Feedback.Correct {
		t.Fatalf("expected wrong feedback, got %+v", st.Feedback)
	}
	if !strings.Contains(s.View(80, 30), "Wrong. It was "+expectedNote(t, session)) {
		t.Error("expected the correct note in the feedback line")
	}
}

func TestTrainerScreen_DoubleEnterScoresOnce(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")
	send(t, s, specialKey(tea.KeyTab))
	typeText(t, s, "do")

	send(t, s, specialKey(tea.KeyEnter))
	if cmd := send(t, s, specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("second Enter should not schedule another question")
	}
	if total := session.Status().Total; total != 1 {
		t.Errorf("Total = %d, want 1", total)
	}
}

func TestTrainerScreen_StopDuringDelay(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")
	send(t, s, specialKey(tea.KeyTab))
	typeText(t, s, "do")
	cmd := send(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a scheduled next question")
	}

	send(t, s, specialKey(tea.KeyTab)) // stop
	send(t, s, cmd())

	st := session.Status()
	if st.Running() || st.Degree != 0 {
		t.Errorf("stale timer revived the session: %+v", st)
	}
}

func TestTrainerScreen_ToggleScale(t *testing.T) {
	s, session := testTrainerScreen(t, "Sol")

	send(t, s, ctrlKey('s'))
	if !session.Status().ShowScale {
		t.Fatal("expected scale shown after Ctrl+S")
	}
	view := s.View(80, 30)
	if !strings.Contains(view, "Sol major") {
		t.Error("expected scale title in view")
	}
	if !strings.Contains(view, "7: FA#") {
		t.Error("expected degree-labelled notes in view")
	}

	send(t, s, ctrlKey('s'))
	if session.Status().ShowScale {
		t.Error("expected scale hidden after second Ctrl+S")
	}
}

func TestTrainerScreen_View(t *testing.T) {
	s, _ := testTrainerScreen(t, "Do")

	idle := s.View(80, 30)
	if !strings.Contains(idle, "Score: 0 / 0") {
		t.Error("expected score in idle view")
	}
	if !strings.Contains(idle, "Start") {
		t.Error("expected Start button in idle view")
	}
	if strings.Contains(idle, "Average") {
		t.Error("timings should only show while running")
	}

	send(t, s, specialKey(tea.KeyTab))
	running := s.View(80, 30)
	if !strings.Contains(running, "Stop") {
		t.Error("expected Stop button while running")
	}
	if !strings.Contains(running, "Average: 0.00s") {
		t.Error("expected timings while running")
	}
}

func TestTrainerScreen_KeyHintsAndStatus(t *testing.T) {
	s, _ := testTrainerScreen(t, "Mib")
	if len(s.KeyHints()) == 0 {
		t.Error("expected idle key hints")
	}
	if got := s.HeaderStatus(); got != "Mib major  0/0" {
		t.Errorf("HeaderStatus = %q", got)
	}

	send(t, s, specialKey(tea.KeyTab))
	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Enter" {
		t.Errorf("running hints = %+v", hints)
	}
}

// startAt restarts the session until degree is asked.
func startAt(t *testing.T, s *TrainerScreen, session *tr.Session, degree int) {
	t.Helper()
	for i := 0; i < 500; i++ {
		send(t, s, specialKey(tea.KeyTab))
		if session.Status().Degree == degree {
			return
		}
		send(t, s, specialKey(tea.KeyTab))
	}
	t.Fatalf("degree %d never asked", degree)
}

func TestTrainerScreen_PaddedAnswerIsNotTruncated(t *testing.T) {
	s, session := testTrainerScreen(t, "Fa#")
	startAt(t, s, session, 7)

	typeText(t, s, "      mi#")
	if got := session.Status().Input; got != "      mi#" {
		t.Fatalf("Input = %q, want the typed text verbatim", got)
	}
	send(t, s, specialKey(tea.KeyEnter))

	st := session.Status()
	if st.Feedback == nil || !st.Feedback.Correct {
		t.Fatalf("expected correct feedback, got %+v", st.Feedback)
	}
	if st.Feedback.Answer != "MI#" {
		t.Errorf("Answer = %q, want MI#", st.Feedback.Answer)
	}
	if st.Correct != 1 || st.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", st.Correct, st.Total)
	}
}

func TestTrainerScreen_LeaveStopsSession(t *testing.T) {
	s, session := testTrainerScreen(t, "Do")
	send(t, s, specialKey(tea.KeyTab))
	typeText(t, s, "do")
	cmd := send(t, s, specialKey(tea.KeyEnter))

	s.Leave()
	if session.Running() {
		t.Fatal("expected session stopped after Leave")
	}
	if s.input.Value() != "" {
		t.Errorf("input box = %q, want cleared", s.input.Value())
	}

	// The feedback timer may still fire after the screen is gone.
	send(t, s, cmd())
	if session.Running() || session.Status().Degree != 0 {
		t.Error("pending question revived a left session")
	}

	s.Leave()
	if session.Running() {
		t.Error("Leave on an idle session should not start it")
	}
}
