package model

import "fmt"

// StatusCode is the numeric game state reported by the scoreboard feed.
type StatusCode int

const (
	StatusScheduled  StatusCode = 1
	StatusInProgress StatusCode = 2
	StatusFinal      StatusCode = 3
)

// Valid reports whether c is one of the known status codes.
func (c StatusCode) Valid() bool {
	return c >= StatusScheduled && c <= StatusFinal
}

func (c StatusCode) String() string {
	switch c {
	case StatusScheduled:
		return "scheduled"
	case StatusInProgress:
		return "in-progress"
	case StatusFinal:
		return "final"
	default:
		return fmt.Sprintf("status(%d)", int(c))
	}
}

// RegulationPeriods is the number of quarters in a regulation game.
const RegulationPeriods = 4

// TeamSummary is one side of a scoreboard entry.
type TeamSummary struct {
	TeamID  string `json:"team_id"`
	TriCode string `json:"tri_code"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Score   int    `json:"score"`
}

// Record returns the win-loss record as "W-L".
func (t TeamSummary) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// GameSummary is one entry in a day's scoreboard.
type GameSummary struct {
	GameID    string      `json:"game_id"`
	Season    string      `json:"season"`
	Status    StatusCode  `json:"status"`
	StartTime string      `json:"start_time"` // Eastern start time as published, e.g. "7:30 PM ET"
	Period    int         `json:"period"`
	Away      TeamSummary `json:"away"`
	Home      TeamSummary `json:"home"`
}

// PeriodScores maps an absolute period number to points scored in it.
// Periods 1-4 are quarters; 5 and above are overtimes.
type PeriodScores map[int]int

// Score returns the points for an absolute period.
func (p PeriodScores) Score(period int) (int, bool) {
	v, ok := p[period]
	return v, ok
}

// Quarter returns the points for quarter n (1-4).
func (p PeriodScores) Quarter(n int) (int, bool) {
	return p.Score(n)
}

// Overtime returns the points for overtime n, 1-indexed.
func (p PeriodScores) Overtime(n int) (int, bool) {
	return p.Score(RegulationPeriods + n)
}

// PlayerLine is a single player's box score row.
type PlayerLine struct {
	Number          string `json:"number"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Position        string `json:"position"`
	Minutes         int    `json:"minutes"`
	Seconds         int    `json:"seconds"`
	Points          int    `json:"points"`
	FGM             int    `json:"fgm"`
	FGA             int    `json:"fga"`
	TPM             int    `json:"tpm"`
	TPA             int    `json:"tpa"`
	FTM             int    `json:"ftm"`
	FTA             int    `json:"fta"`
	Rebounds        int    `json:"rebounds"`
	OffRebounds     int    `json:"off_rebounds"`
	DefRebounds     int    `json:"def_rebounds"`
	Assists         int    `json:"assists"`
	Blocks          int    `json:"blocks"`
	Steals          int    `json:"steals"`
	Turnovers       int    `json:"turnovers"`
	BlockedAttempts int    `json:"blocked_attempts"`
	Fouls           int    `json:"fouls"`
	PlusMinus       int    `json:"plus_minus"`
	OnCourt         bool   `json:"on_court"`
	Status          string `json:"status"`
}

// Name returns "First Last".
func (p PlayerLine) Name() string {
	return p.FirstName + " " + p.LastName
}

// Inactive reports whether the player is listed as inactive for the game.
func (p PlayerLine) Inactive() bool {
	return p.Status == "I"
}

// TeamLine is one team's line score and roster for a single game.
type TeamLine struct {
	Abbrev  string       `json:"abbrev"`
	City    string       `json:"city"`
	Name    string       `json:"name"`
	Score   int          `json:"score"`
	Periods PeriodScores `json:"periods"`
	Players []PlayerLine `json:"players"`
}

// FullName returns "City Name", e.g. "Boston Celtics".
func (t TeamLine) FullName() string {
	return t.City + " " + t.Name
}

// LastPlay is the score snapshot attached to the most recent play.
type LastPlay struct {
	AwayScore int `json:"away_score"`
	HomeScore int `json:"home_score"`
}

// BoxscoreRecord is the detailed record for one game. The zero value is the
// empty placeholder shown before the first successful fetch.
type BoxscoreRecord struct {
	GameID     string    `json:"game_id"`
	Period     *int      `json:"period,omitempty"` // nil until the game has started
	StatusText string    `json:"status_text"`
	Clock      string    `json:"clock"`
	LastPlay   *LastPlay `json:"last_play,omitempty"`
	Away       TeamLine  `json:"away"`
	Home       TeamLine  `json:"home"`
}

// Started reports whether detailed period data is present.
func (r BoxscoreRecord) Started() bool {
	return r.Period != nil
}

// CurrentPeriod returns the current period, or 0 before the game starts.
func (r BoxscoreRecord) CurrentPeriod() int {
	if r.Period == nil || *r.Period < 0 {
		return 0
	}
	return *r.Period
}
