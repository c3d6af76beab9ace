package nbadata

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/tinytelemetry/courtside/internal/model"
)

// flexInt accepts a JSON number, a numeric string, "" or null.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexInt(parseInt(s))
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexInt(int(n))
	return nil
}

// flexBool accepts true/false, 0/1 and "0"/"1".
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	switch strings.Trim(string(bytes.TrimSpace(b)), `"`) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

func parseInt(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	if s == "" {
		return 0
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	f, _ := strconv.ParseFloat(s, 64)
	return int(f)
}

// scoreboardDoc is the top level of the day scoreboard document.
type scoreboardDoc struct {
	Games *[]wireGame `json:"games"`
}

type wirePeriod struct {
	Current flexInt `json:"current"`
}

type wireTeamSummary struct {
	TeamID  string  `json:"teamId"`
	TriCode string  `json:"triCode"`
	Win     flexInt `json:"win"`
	Loss    flexInt `json:"loss"`
	Score   flexInt `json:"score"`
}

type wireGame struct {
	GameID           string          `json:"gameId"`
	SeasonYear       string          `json:"seasonYear"`
	StatusNum        flexInt         `json:"statusNum"`
	StartTimeEastern string          `json:"startTimeEastern"`
	Period           wirePeriod      `json:"period"`
	VTeam            wireTeamSummary `json:"vTeam"`
	HTeam            wireTeamSummary `json:"hTeam"`
}

func (t wireTeamSummary) normalize() model.TeamSummary {
	return model.TeamSummary{
		TeamID:  t.TeamID,
		TriCode: t.TriCode,
		Wins:    int(t.Win),
		Losses:  int(t.Loss),
		Score:   int(t.Score),
	}
}

func (g wireGame) normalize() model.GameSummary {
	status := model.StatusCode(g.StatusNum)
	if !status.Valid() {
		status = model.StatusScheduled
	}
	return model.GameSummary{
		GameID:    g.GameID,
		Season:    g.SeasonYear,
		Status:    status,
		StartTime: g.StartTimeEastern,
		Period:    max(0, int(g.Period.Current)),
		Away:      g.VTeam.normalize(),
		Home:      g.HTeam.normalize(),
	}
}

// gameDetailDoc is the top level of the game-detail document.
type gameDetailDoc struct {
	G *wireDetail `json:"g"`
}

type wireLastPlay struct {
	VS flexInt `json:"vs"`
	HS flexInt `json:"hs"`
}

type wireDetail struct {
	GID  string        `json:"gid"`
	Stt  string        `json:"stt"`
	Cl   string        `json:"cl"`
	P    *flexInt      `json:"p"`
	Lpla *wireLastPlay `json:"lpla"`
	Vls  wireTeamLine  `json:"vls"`
	Hls  wireTeamLine  `json:"hls"`
}

type wirePlayer struct {
	Num    string   `json:"num"`
	FN     string   `json:"fn"`
	LN     string   `json:"ln"`
	Pos    string   `json:"pos"`
	Min    flexInt  `json:"min"`
	Sec    flexInt  `json:"sec"`
	Pts    flexInt  `json:"pts"`
	FGM    flexInt  `json:"fgm"`
	FGA    flexInt  `json:"fga"`
	TPM    flexInt  `json:"tpm"`
	TPA    flexInt  `json:"tpa"`
	FTM    flexInt  `json:"ftm"`
	FTA    flexInt  `json:"fta"`
	Reb    flexInt  `json:"reb"`
	OReb   flexInt  `json:"oreb"`
	DReb   flexInt  `json:"dreb"`
	Ast    flexInt  `json:"ast"`
	Blk    flexInt  `json:"blk"`
	Stl    flexInt  `json:"stl"`
	Tov    flexInt  `json:"tov"`
	BlkA   flexInt  `json:"blka"`
	PF     flexInt  `json:"pf"`
	PM     flexInt  `json:"pm"`
	Court  flexBool `json:"court"`
	Status string   `json:"status"`
}

// periodKey matches line-score keys such as "q1" or "ot3".
var periodKey = regexp.MustCompile(`^(q|ot)(\d+)$`)

// wireTeamLine decodes the fixed team fields and folds every qN/otN key into
// an ordered period map, so consumers never look scores up by string key.
type wireTeamLine struct {
	TA      string
	TC      string
	TN      string
	S       int
	Periods model.PeriodScores
	Players []wirePlayer
}

func (t *wireTeamLine) UnmarshalJSON(b []byte) error {
	var fixed struct {
		TA    string       `json:"ta"`
		TC    string       `json:"tc"`
		TN    string       `json:"tn"`
		S     flexInt      `json:"s"`
		Pstsg []wirePlayer `json:"pstsg"`
	}
	if err := json.Unmarshal(b, &fixed); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	periods := make(model.PeriodScores)
	for k, v := range raw {
		m := periodKey.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil || n <= 0 {
			continue
		}
		var score flexInt
		if err := json.Unmarshal(v, &score); err != nil {
			continue
		}
		if m[1] == "q" {
			if n > model.RegulationPeriods {
				continue
			}
			periods[n] = int(score)
		} else {
			periods[model.RegulationPeriods+n] = int(score)
		}
	}

	*t = wireTeamLine{
		TA:      fixed.TA,
		TC:      fixed.TC,
		TN:      fixed.TN,
		S:       int(fixed.S),
		Periods: periods,
		Players: fixed.Pstsg,
	}
	return nil
}

func (p wirePlayer) normalize() model.PlayerLine {
	return model.PlayerLine{
		Number:          p.Num,
		FirstName:       p.FN,
		LastName:        p.LN,
		Position:        p.Pos,
		Minutes:         int(p.Min),
		Seconds:         int(p.Sec),
		Points:          int(p.Pts),
		FGM:             int(p.FGM),
		FGA:             int(p.FGA),
		TPM:             int(p.TPM),
		TPA:             int(p.TPA),
		FTM:             int(p.FTM),
		FTA:             int(p.FTA),
		Rebounds:        int(p.Reb),
		OffRebounds:     int(p.OReb),
		DefRebounds:     int(p.DReb),
		Assists:         int(p.Ast),
		Blocks:          int(p.Blk),
		Steals:          int(p.Stl),
		Turnovers:       int(p.Tov),
		BlockedAttempts: int(p.BlkA),
		Fouls:           int(p.PF),
		PlusMinus:       int(p.PM),
		OnCourt:         bool(p.Court),
		Status:          p.Status,
	}
}

func (t wireTeamLine) normalize() model.TeamLine {
	players := make([]model.PlayerLine, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, p.normalize())
	}
	periods := t.Periods
	if periods == nil {
		periods = model.PeriodScores{}
	}
	return model.TeamLine{
		Abbrev:  t.TA,
		City:    t.TC,
		Name:    t.TN,
		Score:   t.S,
		Periods: periods,
		Players: players,
	}
}

func (d wireDetail) normalize() model.BoxscoreRecord {
	rec := model.BoxscoreRecord{
		GameID:     d.GID,
		StatusText: d.Stt,
		Clock:      d.Cl,
		Away:       d.Vls.normalize(),
		Home:       d.Hls.normalize(),
	}
	// A zero period is published before tip-off; treat it like an absent one.
	if d.P != nil && *d.P > 0 {
		p := int(*d.P)
		rec.Period = &p
	}
	if d.Lpla != nil {
		rec.LastPlay = &model.LastPlay{AwayScore: int(d.Lpla.VS), HomeScore: int(d.Lpla.HS)}
	}
	return rec
}
