package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/router"
	"github.com/abhisek/scaletrainer/internal/scales"
	"github.com/abhisek/scaletrainer/internal/screen"
	"github.com/abhisek/scaletrainer/internal/screens/scaletable"
	trainerscreen "github.com/abhisek/scaletrainer/internal/screens/trainer"
	"github.com/abhisek/scaletrainer/internal/trainer"
	"github.com/abhisek/scaletrainer/internal/ui/components"
	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	opts       trainer.Options

	// last is the most recent training session; its key seeds the next one.
	last *trainer.Session
	err  error
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. opts is used for every training session started
// from the menu.
func New(opts trainer.Options) *HomeScreen {
	h := &HomeScreen{
		menuLabels: []string{"TRAIN", "SCALE TABLE", "QUIT"},
		opts:       opts,
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			next := h.trainerFor(h.currentKey())
			if next == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			key := h.currentKey()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: scaletable.New(key, h.trainerFor)}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// trainerFor creates a trainer screen with a fresh session in key. It
// returns nil and records the error when the session cannot be created.
func (h *HomeScreen) trainerFor(key string) screen.Screen {
	opts := h.opts
	opts.Key = key

	session, err := trainer.New(opts)
	if err != nil {
		h.err = err
		return nil
	}
	h.err = nil
	h.last = session
	return trainerscreen.New(session)
}

func (h *HomeScreen) currentKey() string {
	if h.last != nil {
		return h.last.Key()
	}
	if h.opts.Key == "" {
		return scales.DefaultKey
	}
	return h.opts.Key
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; header and footer take about 8 more rows.
	compact := height+8 < 30 || width < 80
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	if !compact {
		sections = append(sections, renderStaff(cw))
	}

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render("Name the note for each degree of the major scale")))

	if last := h.lastScore(); last != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(last))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if h.err != nil {
		sections = append(sections, theme.Incorrect.Render(h.err.Error()))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

// lastScore summarises the previous session, if one was played.
func (h *HomeScreen) lastScore() string {
	if h.last == nil {
		return ""
	}
	st := h.last.Status()
	if st.Total == 0 {
		return ""
	}
	return fmt.Sprintf("Last run: %s major  %d / %d", st.Key, st.Correct, st.Total)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) HeaderStatus() string {
	return h.currentKey() + " major"
}
