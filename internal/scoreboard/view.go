package scoreboard

import (
	"fmt"
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
)

// Screen is the top-level state the render layers switch on.
type Screen string

const (
	ScreenLoading         Screen = "loading"          // nothing fetched yet
	ScreenNoData          Screen = "no_data"          // fetch failed and no games are held
	ScreenScoreboardError Screen = "scoreboard_error" // fetch failed, older games are held
	ScreenNoGames         Screen = "no_games"         // fetched, zero games that day
	ScreenGame            Screen = "game"
)

// GameKind selects how the selected game is rendered.
type GameKind string

const (
	GamePregame GameKind = "pregame"
	GameLive    GameKind = "live" // in progress or final
	GameError   GameKind = "error"
)

// Side names a team in a matchup.
type Side string

const (
	SideNone Side = ""
	SideAway Side = "away"
	SideHome Side = "home"
)

// User-facing messages for the non-game screens.
const (
	MsgLoading         = "Loading..."
	MsgNoData          = "No games today"
	MsgScoreboardError = "Error loading scoreboard"
	MsgNoGames         = "No games available today"
	MsgBoxscoreError   = "Error loading box score"
	MsgGameBegins      = "Game begins at"
)

// View is a render-ready snapshot of a Session.
type View struct {
	Screen         Screen       `json:"screen"`
	Message        string       `json:"message,omitempty"`
	Date           string       `json:"date,omitempty"`
	Options        []GameOption `json:"options"`
	Selected       int          `json:"selected"`
	SelectedActive bool         `json:"selected_active"`
	Game           *GameView    `json:"game,omitempty"`
	LastRefreshed  time.Time    `json:"last_refreshed,omitzero"`
	ScoreboardErr  string       `json:"scoreboard_error,omitempty"`
	BoxscoreErr    string       `json:"boxscore_error,omitempty"`
}

// GameOption is one entry in the game picker.
type GameOption struct {
	GameID string `json:"game_id"`
	Label  string `json:"label"`
	Active bool   `json:"active"` // false while the game is still scheduled
}

// GameView is the detail panel for the selected game.
type GameView struct {
	Kind      GameKind      `json:"kind"`
	Matchup   string        `json:"matchup"`
	Message   string        `json:"message,omitempty"`
	Status    string        `json:"status"`
	AwayScore int           `json:"away_score"`
	HomeScore int           `json:"home_score"`
	Leader    Side          `json:"leader,omitempty"`
	Period    int           `json:"period"`
	Quarters  *QuarterTable `json:"quarters,omitempty"`
	Away      *TeamBox      `json:"away,omitempty"`
	Home      *TeamBox      `json:"home,omitempty"`
	Records   []TeamRecord  `json:"records"`
}

// TeamBox is one team's player table.
type TeamBox struct {
	Title    string      `json:"title"`
	Players  []PlayerRow `json:"players"`
	Inactive []string    `json:"inactive"`
}

// PlayerRow is a formatted player line.
type PlayerRow struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Minutes    string `json:"minutes"`
	Points     int    `json:"points"`
	FieldGoals string `json:"field_goals"`
	Threes     string `json:"threes"`
	FreeThrows string `json:"free_throws"`
	Rebounds   int    `json:"rebounds"`
	OffReb     int    `json:"off_reb"`
	DefReb     int    `json:"def_reb"`
	Assists    int    `json:"assists"`
	Blocks     int    `json:"blocks"`
	Steals     int    `json:"steals"`
	Turnovers  int    `json:"turnovers"`
	BlockedAtt int    `json:"blocked_att"`
	Fouls      int    `json:"fouls"`
	PlusMinus  int    `json:"plus_minus"`
	OnCourt    bool   `json:"on_court"`
}

// TeamRecord is a team's win-loss record.
type TeamRecord struct {
	Team   string `json:"team"`
	Record string `json:"record"`
}

// OptionLabel formats a picker entry, e.g. "LAL vs. WAS - Final".
func OptionLabel(g model.GameSummary) string {
	status := g.StartTime
	if g.Status == model.StatusFinal {
		status = finalStatus
	}
	return fmt.Sprintf("%s vs. %s - %s", g.Away.TriCode, g.Home.TriCode, status)
}

// View derives the current render-ready snapshot.
func (s *Session) View() View {
	v := View{
		Options:       make([]GameOption, 0, len(s.games)),
		Selected:      s.selected,
		LastRefreshed: s.refresh.At,
	}
	if s.loaded {
		v.Date = s.date.String()
	}
	if s.scoreboardErr != nil {
		v.ScoreboardErr = s.scoreboardErr.Error()
	}
	if s.boxErr != nil {
		v.BoxscoreErr = s.boxErr.Error()
	}
	for _, g := range s.games {
		v.Options = append(v.Options, GameOption{
			GameID: g.GameID,
			Label:  OptionLabel(g),
			Active: g.Status != model.StatusScheduled,
		})
	}

	switch {
	case s.scoreboardErr != nil && len(s.games) == 0:
		v.Screen, v.Message = ScreenNoData, MsgNoData
		return v
	case s.scoreboardErr != nil:
		v.Screen, v.Message = ScreenScoreboardError, MsgScoreboardError
		return v
	case !s.loaded:
		v.Screen, v.Message = ScreenLoading, MsgLoading
		return v
	case len(s.games) == 0:
		v.Screen, v.Message = ScreenNoGames, MsgNoGames
		return v
	}

	game := s.games[s.selected]
	v.Screen = ScreenGame
	v.SelectedActive = game.Status != model.StatusScheduled

	rec, current := s.Boxscore()
	if !current {
		rec = model.BoxscoreRecord{}
	}
	v.Game = deriveGameView(game, rec, s.selectedBoxscoreErr())
	return v
}

func deriveGameView(game model.GameSummary, rec model.BoxscoreRecord, boxErr error) *GameView {
	gv := &GameView{
		Matchup: matchup(game, rec),
		Records: []TeamRecord{
			{Team: game.Away.TriCode, Record: game.Away.Record()},
			{Team: game.Home.TriCode, Record: game.Home.Record()},
		},
	}

	if boxErr != nil {
		gv.Kind = GameError
		gv.Message = MsgBoxscoreError
		return gv
	}

	if !rec.Started() {
		gv.Kind = GamePregame
		gv.Message = MsgGameBegins
		if rec.StatusText != "" {
			gv.Status = DeriveStatus(rec.StatusText, rec.Clock)
		} else {
			gv.Status = game.StartTime
		}
		return gv
	}

	gv.Kind = GameLive
	gv.Status = DeriveStatus(rec.StatusText, rec.Clock)
	gv.Period = rec.CurrentPeriod()
	if rec.LastPlay != nil {
		gv.AwayScore = rec.LastPlay.AwayScore
		gv.HomeScore = rec.LastPlay.HomeScore
	}
	switch {
	case gv.AwayScore > gv.HomeScore:
		gv.Leader = SideAway
	case gv.HomeScore > gv.AwayScore:
		gv.Leader = SideHome
	}

	table := DeriveQuarterTable(gv.Period, rec.Away, rec.Home)
	gv.Quarters = &table
	gv.Away = teamBox(rec.Away)
	gv.Home = teamBox(rec.Home)
	return gv
}

// matchup prefers the detail record's full names and falls back to the
// scoreboard's tri-codes while the record is still the placeholder.
func matchup(game model.GameSummary, rec model.BoxscoreRecord) string {
	if rec.Away.City != "" || rec.Home.City != "" {
		return rec.Away.FullName() + " at " + rec.Home.FullName()
	}
	return game.Away.TriCode + " at " + game.Home.TriCode
}

func teamBox(t model.TeamLine) *TeamBox {
	box := &TeamBox{
		Title:    t.FullName(),
		Players:  make([]PlayerRow, 0, len(t.Players)),
		Inactive: []string{},
	}
	for _, p := range t.Players {
		if p.Inactive() {
			box.Inactive = append(box.Inactive, p.Name())
			continue
		}
		box.Players = append(box.Players, PlayerRow{
			Name:       p.Name(),
			Position:   p.Position,
			Minutes:    fmt.Sprintf("%d:%02d", p.Minutes, p.Seconds),
			Points:     p.Points,
			FieldGoals: fmt.Sprintf("%d-%d", p.FGM, p.FGA),
			Threes:     fmt.Sprintf("%d-%d", p.TPM, p.TPA),
			FreeThrows: fmt.Sprintf("%d-%d", p.FTM, p.FTA),
			Rebounds:   p.Rebounds,
			OffReb:     p.OffRebounds,
			DefReb:     p.DefRebounds,
			Assists:    p.Assists,
			Blocks:     p.Blocks,
			Steals:     p.Steals,
			Turnovers:  p.Turnovers,
			BlockedAtt: p.BlockedAttempts,
			Fouls:      p.Fouls,
			PlusMinus:  p.PlusMinus,
			OnCourt:    p.OnCourt,
		})
	}
	return box
}
