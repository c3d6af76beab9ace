package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpModalWithViewport renders the help modal using the provided viewport.
func (m *ScoreboardModel) renderHelpModalWithViewport(vp *viewport.Model, width, height int) string {
	modalWidth := min(width-8, 72)
	modalHeight := height - 2

	contentWidth := modalWidth - 4
	contentHeight := max(1, modalHeight-4)

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(m.renderHelpModalContent())

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Courtside Help")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("↑↓/Wheel: Scroll | PgUp/PgDn: Page | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// renderHelpModalContent lists every binding followed by a short legend.
func (m *ScoreboardModel) renderHelpModalContent() string {
	var b strings.Builder
	b.WriteString("KEYS:\n")
	for _, binding := range m.keys.helpBindings() {
		h := binding.Help()
		fmt.Fprintf(&b, "  %-8s - %s\n", h.Key, h.Desc)
	}
	b.WriteString(`
GAME LIST:
  Dimmed games have not started yet.
  The highlighted game is the one shown on the right.

BOX SCORE:
  Green names are on the court.
  Scores come from the most recent play.
  "-" marks a quarter that has not been played.

DATES:
  d opens a prompt for MM/DD/YYYY; t returns to today.
  r re-fetches the current day and the selected game.
`)
	return b.String()
}
