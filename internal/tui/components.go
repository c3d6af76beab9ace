package tui

import (
	"strings"

	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/charmbracelet/lipgloss"
)

// renderBranding renders "Courtside" with an orange to gold gradient.
func renderBranding() string {
	colors := []string{"#F26B1D", "#F37A1F", "#F48A21", "#F59923", "#F6A825", "#F7B827", "#F8C729", "#F9D62B", "#FAE52D"}
	chars := []string{"C", "o", "u", "r", "t", "s", "i", "d", "e"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}
	return result
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (m *ScoreboardModel) renderStatusLine(v scoreboard.View) string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	w := m.width

	veryNarrow := w < 60
	narrow := w < 80
	medium := w < 120

	var leftText string
	if v.Date != "" {
		if veryNarrow {
			leftText = v.Date
		} else {
			leftText = "[" + v.Date + "]"
		}
	}

	var statusText string
	switch {
	case m.dateActive:
		statusText = "Enter: Go • ESC: Cancel"
	case m.helpVisible:
		statusText = "ESC: Close"
	case veryNarrow:
		statusText = "←→ • r • ? • q"
	case narrow:
		statusText = "?: Help • ←→: Game • r: Update • q: Quit"
	case medium:
		statusText = "?: Help • ↑↓ Enter: Pick • ←→: Game • r: Update • d: Date • q: Quit"
	default:
		statusText = "?: Help • ↑↓ Enter: Pick game • ←→: Prev/Next • PgUp/PgDn: Scroll • r: Update scores • d: Date • t: Today • q: Quit"
	}

	var rightParts []string
	if m.anyFetchInFlight() {
		rightParts = append(rightParts, spinnerFrame())
	}
	if errText := statusErrorText(v); errText != "" {
		rightParts = append(rightParts, lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorRed).
			Faint(true).
			Render(errText))
	}
	if m.dataSource != "" && !veryNarrow {
		dotColor := ColorGreen
		if v.ScoreboardErr != "" || v.BoxscoreErr != "" {
			dotColor = ColorRed
		}
		dot := lipgloss.NewStyle().Background(ColorNavy).Foreground(dotColor).Render("●")
		rightParts = append(rightParts, dot+" "+m.dataSource)
	}
	if !v.LastRefreshed.IsZero() && !narrow {
		rightParts = append(rightParts, "Updated "+v.LastRefreshed.Format("15:04:05"))
	}
	if w >= 30 {
		rightParts = append(rightParts, renderBranding())
	}
	rightText := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2

	if leftWidth+rightWidth >= w {
		if w < 20 {
			return baseStyle.Width(w).Render(leftText)
		}
		leftWidth = min(12, w/3)
		rightWidth = min(15, w/3)
		rightText = ""
	}

	centerWidth := max(0, w-leftWidth-rightWidth)

	leftStyle := baseStyle.Align(lipgloss.Left).Width(leftWidth)
	centerStyle := baseStyle.Align(lipgloss.Center).Width(centerWidth)
	rightStyle := baseStyle.Align(lipgloss.Right).Width(rightWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(truncate(leftText, leftWidth)),
		centerStyle.Render(truncate(statusText, centerWidth)),
		rightStyle.Render(rightText),
	)
}

// statusErrorText names which fetch failed last, if any.
func statusErrorText(v scoreboard.View) string {
	switch {
	case v.ScoreboardErr != "" && v.BoxscoreErr != "":
		return "scoreboard+box score error"
	case v.ScoreboardErr != "":
		return "scoreboard error"
	case v.BoxscoreErr != "":
		return "box score error"
	}
	return ""
}
