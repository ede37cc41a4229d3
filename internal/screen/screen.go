package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scaletrainer/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that want their own footer
// key hints instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a short status at the
// right of the header, such as the selected key and score.
type StatusProvider interface {
	HeaderStatus() string
}

// Leaver is implemented by screens that hold state to release when the
// router removes them from the stack.
type Leaver interface {
	Leave()
}
