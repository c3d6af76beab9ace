package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 120 * time.Millisecond

// spinnerFrame picks a frame from the wall clock so it animates on re-render.
func spinnerFrame() string {
	return spinnerFrames[time.Now().UnixMilli()/spinnerInterval.Milliseconds()%int64(len(spinnerFrames))]
}

// renderLoadingPlaceholder renders an animated loading indicator.
func renderLoadingPlaceholder(text string, width, height int) string {
	loadingStyle := lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		loadingStyle.Render(spinnerFrame()+" "+text))
}

// handleSpinnerTick re-schedules spinner ticks while a fetch is in flight.
func (m *ScoreboardModel) handleSpinnerTick() (tea.Model, tea.Cmd) {
	m.spinning = false
	return m, m.startSpinnerIfNeeded()
}

func (m *ScoreboardModel) anyFetchInFlight() bool {
	return m.scoreboardInFlight || m.boxscoreInFlight
}

// startSpinnerIfNeeded schedules a spinner tick if anything is loading and
// no tick is already pending.
func (m *ScoreboardModel) startSpinnerIfNeeded() tea.Cmd {
	if !m.anyFetchInFlight() || m.spinning {
		return nil
	}
	m.spinning = true
	return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}
