package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

// ButtonKind selects the button color.
type ButtonKind int

const (
	ButtonPrimary ButtonKind = iota
	ButtonDanger
	ButtonQuiet
)

// Button is a labelled trigger bound to a hotkey. Screens handle the key;
// the button only renders it.
type Button struct {
	Label  string
	Hotkey string
	Kind   ButtonKind
}

// NewButton creates a new button.
func NewButton(label, hotkey string, kind ButtonKind) Button {
	return Button{Label: label, Hotkey: hotkey, Kind: kind}
}

// View renders the button as "[hotkey] Label".
func (b Button) View() string {
	label := b.Label
	if b.Hotkey != "" {
		label = "[" + b.Hotkey + "] " + label
	}
	switch b.Kind {
	case ButtonDanger:
		return theme.ButtonDanger.Render(label)
	case ButtonQuiet:
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}

// ButtonRow renders buttons side by side with a gap.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
