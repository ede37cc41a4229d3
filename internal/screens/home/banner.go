package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scaletrainer/internal/ui/theme"
)

const bannerFull = `╔═╗┌─┐┌─┐┬  ┌─┐  ╔╦╗┬─┐┌─┐┬┌┐┌┌─┐┬─┐
╚═╗│  ├─┤│  ├┤    ║ ├┬┘├─┤││││├┤ ├┬┘
╚═╝└─┘┴ ┴┴─┘└─┘   ╩ ┴└─┴ ┴┴┘└┘└─┘┴└─`

const bannerCompact = "S C A L E   T R A I N E R"

// bannerMinWidth is the narrowest content width that fits bannerFull.
const bannerMinWidth = 40

// staff is drawn under the banner in full mode.
const staff = `───────────────────────●──────
───────────────────●──────────
───────────────●──────────────
───────────●──────────────────
───────●──────────────────────`

func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := bannerFull
	if compact || cw < bannerMinWidth {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

func renderStaff(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(staff)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu draws each item as a fixed-width button.
func renderMenu(labels []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, buttons...))
}

// renderMenuCompact is renderMenu without borders for short terminals.
func renderMenuCompact(labels []string, selected int, cw int) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderFrame wraps content in a double border filling width x height.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
