package tui

import (
	"context"
	"log"

	"github.com/tinytelemetry/courtside/internal/gamedate"
	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewports()
		m.refreshBoxContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case scoreboardLoadedMsg:
		if !m.session.ApplyScoreboard(msg.req, msg.games, msg.err) {
			return m, nil
		}
		m.scoreboardInFlight = false
		m.cursor = m.session.Selected()
		m.refreshBoxContent()
		return m, m.syncBoxscore()

	case boxscoreLoadedMsg:
		if !m.session.ApplyBoxscore(msg.req, msg.rec, msg.err) {
			return m, nil
		}
		m.boxscoreInFlight = false
		m.refreshBoxContent()
		return m, nil

	case SpinnerTickMsg:
		return m.handleSpinnerTick()

	case AutoRefreshMsg:
		return m, tea.Batch(m.refresh(), m.scheduleAutoRefresh())
	}

	return m, nil
}

func (m *ScoreboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.dateActive {
		return m.handleDateInput(msg)
	}
	if m.helpVisible {
		return m.handleHelpKeys(msg)
	}

	games := m.session.Games()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		m.helpViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(games)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.cursor < 0 || m.cursor >= len(games) {
			return m, nil
		}
		m.session.Select(m.cursor)
		return m, m.selectionChanged()

	case key.Matches(msg, m.keys.Previous):
		if !m.session.Navigate(scoreboard.Previous) {
			return m, nil
		}
		return m, m.selectionChanged()

	case key.Matches(msg, m.keys.Next):
		if !m.session.Navigate(scoreboard.Next) {
			return m, nil
		}
		return m, m.selectionChanged()

	case key.Matches(msg, m.keys.PageUp):
		m.boxViewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.boxViewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Date):
		m.dateActive = true
		m.dateErr = ""
		m.dateInput.SetValue("")
		return m, m.dateInput.Focus()

	case key.Matches(msg, m.keys.Today):
		return m, m.loadScoreboard("")
	}

	return m, nil
}

func (m *ScoreboardModel) handleDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeDateInput()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		value := m.dateInput.Value()
		if _, ok := gamedate.ValidateDate(value); !ok {
			m.dateErr = "use MM/DD/YYYY"
			return m, nil
		}
		m.closeDateInput()
		return m, m.loadScoreboard(value)
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) closeDateInput() {
	m.dateActive = false
	m.dateErr = ""
	m.dateInput.Blur()
}

func (m *ScoreboardModel) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.helpVisible = false
	case key.Matches(msg, m.keys.Up):
		m.helpViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.helpViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.helpViewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.helpViewport.HalfPageDown()
	}
	return m, nil
}

func (m *ScoreboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	vp := &m.boxViewport
	if m.helpVisible {
		vp = &m.helpViewport
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		vp.ScrollUp(1)
	case tea.MouseButtonWheelDown:
		vp.ScrollDown(1)
	}
	return m, nil
}

// selectionChanged syncs the cursor and box score after the selection moved.
func (m *ScoreboardModel) selectionChanged() tea.Cmd {
	m.cursor = m.session.Selected()
	m.boxViewport.GotoTop()
	m.refreshBoxContent()
	return m.syncBoxscore()
}

// loadScoreboard starts a scoreboard fetch for date; "" means today.
func (m *ScoreboardModel) loadScoreboard(date string) tea.Cmd {
	req, ok := m.session.BeginScoreboard(date, m.now(), nil)
	if !ok {
		return nil
	}
	m.scoreboardInFlight = true
	return tea.Batch(m.fetchScoreboardCmd(req), m.startSpinnerIfNeeded())
}

// refresh re-fetches the scoreboard and forces a new box-score fetch.
func (m *ScoreboardModel) refresh() tea.Cmd {
	req := m.session.Refresh(m.now())
	m.scoreboardInFlight = true
	return tea.Batch(m.fetchScoreboardCmd(req), m.syncBoxscore(), m.startSpinnerIfNeeded())
}

// syncBoxscore issues a box-score fetch when the selected game, its season
// or the refresh trigger changed since the last one.
func (m *ScoreboardModel) syncBoxscore() tea.Cmd {
	req, ok := m.session.NextBoxscore()
	if !ok {
		return nil
	}
	m.boxscoreInFlight = true
	return tea.Batch(m.fetchBoxscoreCmd(req), m.startSpinnerIfNeeded())
}

func (m *ScoreboardModel) fetchScoreboardCmd(req scoreboard.ScoreboardRequest) tea.Cmd {
	src, timeout := m.source, m.fetchTimeout
	return func() tea.Msg {
		games, err := scoreboard.FetchScoreboard(context.Background(), src, req, timeout)
		if err != nil {
			log.Printf("tui: scoreboard %s failed: %v", req.DayKey(), err)
		}
		return scoreboardLoadedMsg{req: req, games: games, err: err}
	}
}

func (m *ScoreboardModel) fetchBoxscoreCmd(req scoreboard.BoxscoreRequest) tea.Cmd {
	src, timeout := m.source, m.fetchTimeout
	return func() tea.Msg {
		rec, err := scoreboard.FetchBoxscore(context.Background(), src, req, timeout)
		if err != nil {
			log.Printf("tui: box score %s failed: %v", req.Key.GameID, err)
		}
		return boxscoreLoadedMsg{req: req, rec: rec, err: err}
	}
}
