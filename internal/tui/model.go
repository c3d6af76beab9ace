package tui

import (
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a ScoreboardModel.
type Options struct {
	Source          model.ScoreSource
	Location        *time.Location
	FetchTimeout    time.Duration
	RefreshInterval time.Duration // 0 disables automatic refresh
	DataSource      string        // shown in the status line
	Date            string        // initial MM/DD/YYYY date; empty means today
	Now             func() time.Time
}

// DateInputState holds the "go to date" prompt.
type DateInputState struct {
	dateInput  textinput.Model
	dateActive bool
	dateErr    string
}

// FetchState tracks requests that have not come back yet.
type FetchState struct {
	scoreboardInFlight bool
	boxscoreInFlight   bool
	spinning           bool // a SpinnerTickMsg is pending
}

// ScoreboardModel is the Bubble Tea model for the live scoreboard. The
// Session is only touched from Update, so it needs no locking.
type ScoreboardModel struct {
	keys    KeyMap
	session *scoreboard.Session

	source          model.ScoreSource
	fetchTimeout    time.Duration
	refreshInterval time.Duration
	dataSource      string
	initialDate     string
	now             func() time.Time

	width  int
	height int

	// cursor is the highlighted game list row; enter makes it the selection.
	cursor int

	boxViewport  viewport.Model
	helpViewport viewport.Model
	helpVisible  bool

	DateInputState
	FetchState
}

// SpinnerTickMsg triggers a re-render for the loading spinner.
type SpinnerTickMsg struct{}

// scoreboardLoadedMsg carries the result of one scoreboard request.
type scoreboardLoadedMsg struct {
	req   scoreboard.ScoreboardRequest
	games []model.GameSummary
	err   error
}

// boxscoreLoadedMsg carries the result of one box-score request.
type boxscoreLoadedMsg struct {
	req scoreboard.BoxscoreRequest
	rec model.BoxscoreRecord
	err error
}

// AutoRefreshMsg fires every refresh interval when auto refresh is on.
type AutoRefreshMsg time.Time

// NewScoreboardModel creates the scoreboard model.
func NewScoreboardModel(opts Options) *ScoreboardModel {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = model.DefaultFetchTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "MM/DD/YYYY"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = "Date: "

	return &ScoreboardModel{
		keys:            DefaultKeyMap(),
		session:         scoreboard.NewSession(opts.Location),
		source:          opts.Source,
		fetchTimeout:    opts.FetchTimeout,
		refreshInterval: opts.RefreshInterval,
		dataSource:      opts.DataSource,
		initialDate:     opts.Date,
		now:             opts.Now,
		boxViewport:     viewport.New(80, 20),
		helpViewport:    viewport.New(80, 20),
		DateInputState:  DateInputState{dateInput: ti},
	}
}

// Init loads the initial date, or today when none was given.
func (m *ScoreboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadScoreboard(m.initialDate), m.scheduleAutoRefresh())
}

// Snapshot returns the current render-ready scoreboard state.
func (m *ScoreboardModel) Snapshot() scoreboard.View {
	return m.session.View()
}

func (m *ScoreboardModel) scheduleAutoRefresh() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return AutoRefreshMsg(t)
	})
}

// ScoreboardPage adapts ScoreboardModel to the Page interface.
type ScoreboardPage struct {
	model *ScoreboardModel
}

// NewScoreboardPage wraps m as the app's main page.
func NewScoreboardPage(m *ScoreboardModel) *ScoreboardPage {
	return &ScoreboardPage{model: m}
}

func (p *ScoreboardPage) ID() string { return "scoreboard" }

func (p *ScoreboardPage) Init() tea.Cmd {
	return p.model.Init()
}

func (p *ScoreboardPage) Update(msg tea.Msg) tea.Cmd {
	_, cmd := p.model.Update(msg)
	return cmd
}

func (p *ScoreboardPage) View(width, height int) string {
	p.model.width = width
	p.model.height = height
	return p.model.View()
}
