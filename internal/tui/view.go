package tui

import (
	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the width available for the game pane, accounting for the game list.
func (m *ScoreboardModel) contentWidth() int {
	w := m.width - sidebarWidth
	if w < 40 {
		w = 40
	}
	return w
}

// bodyHeight is everything above the status line and the date prompt.
func (m *ScoreboardModel) bodyHeight() int {
	h := m.height - 1
	if m.dateActive {
		h--
	}
	if h < 3 {
		h = 3
	}
	return h
}

// resizeViewports fits the scrollable panes to the current layout.
func (m *ScoreboardModel) resizeViewports() {
	m.boxViewport.Width = max(1, m.contentWidth()-4)
	m.boxViewport.Height = max(1, m.bodyHeight()-2)
}

// refreshBoxContent re-renders the selected game into the box-score viewport.
func (m *ScoreboardModel) refreshBoxContent() {
	v := m.session.View()
	if v.Game == nil {
		m.boxViewport.SetContent("")
		return
	}
	m.boxViewport.SetContent(renderGameView(v.Game, m.boxViewport.Width))
}

// View renders the scoreboard.
func (m *ScoreboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing scoreboard..."
	}

	v := m.session.View()
	bodyH := m.bodyHeight()

	var body string
	if m.helpVisible {
		body = m.renderHelpModalWithViewport(&m.helpViewport, m.width, bodyH)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderGameList(v, bodyH),
			m.renderMainPane(v, m.contentWidth(), bodyH),
		)
	}

	parts := []string{body}
	if m.dateActive {
		parts = append(parts, m.renderDateInput())
	}
	parts = append(parts, m.renderStatusLine(v))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMainPane shows the selected game or the message for the current screen.
func (m *ScoreboardModel) renderMainPane(v scoreboard.View, width, height int) string {
	style := activeSectionStyle.Width(width - 2).Height(height - 2)
	innerW, innerH := max(1, width-4), max(1, height-2)

	var content string
	switch v.Screen {
	case scoreboard.ScreenLoading:
		content = renderLoadingPlaceholder(v.Message, innerW, innerH)
	case scoreboard.ScreenScoreboardError:
		content = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, errorStyle.Render(v.Message))
	case scoreboard.ScreenNoData, scoreboard.ScreenNoGames:
		content = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, helpStyle.Render(v.Message))
	case scoreboard.ScreenGame:
		content = m.boxViewport.View()
	}
	return style.Render(content)
}

func (m *ScoreboardModel) renderDateInput() string {
	line := m.dateInput.View()
	if m.dateErr != "" {
		line += "  " + errorStyle.Render(m.dateErr)
	}
	return line
}
