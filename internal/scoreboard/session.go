// Package scoreboard holds the refresh and selection state of the box-score
// viewer and derives everything the render layers need from it.
//
// A Session is not safe for concurrent use. The TUI drives it from the Bubble
// Tea update loop; the headless service wraps it in a Controller.
package scoreboard

import (
	"fmt"
	"log"
	"time"

	"github.com/tinytelemetry/courtside/internal/gamedate"
	"github.com/tinytelemetry/courtside/internal/model"
)

// Direction is a carousel step.
type Direction int

const (
	Previous Direction = iota
	Next
)

// ParseDirection maps "previous"/"prev"/"left" and "next"/"right".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "previous", "prev", "left":
		return Previous, true
	case "next", "right":
		return Next, true
	}
	return Previous, false
}

// RefreshTrigger changes on every manual refresh so the selected game is
// re-fetched even though its identity did not change.
type RefreshTrigger struct {
	Seq uint64
	At  time.Time
}

// ScoreboardRequest describes one scoreboard fetch.
type ScoreboardRequest struct {
	Date       gamedate.Date
	CacheToken int64
	Gen        uint64
	Pinned     bool // an explicit date was asked for, not "today"
}

// DayKey returns the YYYYMMDD form of the requested day.
func (r ScoreboardRequest) DayKey() string { return r.Date.DayKey() }

// Key returns the day key followed by the cache token.
func (r ScoreboardRequest) Key() string { return gamedate.RequestKey(r.Date, r.CacheToken) }

// BoxscoreKey identifies what the held box score should be. Any change to
// it triggers a new fetch.
type BoxscoreKey struct {
	GameID  string
	Season  string
	Refresh uint64
}

// BoxscoreRequest describes one box-score fetch.
type BoxscoreRequest struct {
	Key BoxscoreKey
	Gen uint64
}

// Session is the explicit, owned state of one viewer.
type Session struct {
	loc *time.Location

	// scoreboard
	games         []model.GameSummary
	loaded        bool
	date          gamedate.Date
	pinned        bool
	scoreboardErr error
	scoreboardGen uint64

	// selection
	selected int

	// box score
	box       model.BoxscoreRecord
	boxKey    BoxscoreKey // key the held record was fetched for
	boxErr    error
	boxErrKey BoxscoreKey // key of the fetch that set boxErr
	boxGen    uint64
	issuedKey BoxscoreKey
	issued    bool

	refresh RefreshTrigger
}

// NewSession creates a session that resolves "today" in loc.
func NewSession(loc *time.Location) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{loc: loc}
}

// BeginScoreboard prepares a scoreboard fetch. An empty date means today.
// A non-empty date must validate as MM/DD/YYYY; otherwise nothing changes
// and ok is false. override, when non-nil, replaces the cache token.
func (s *Session) BeginScoreboard(date string, now time.Time, override *int64) (ScoreboardRequest, bool) {
	var d gamedate.Date
	token := gamedate.CacheToken(now)

	if date == "" {
		today := gamedate.ResolveToday(now, s.loc)
		d = today.Date
		token = today.CacheToken
	} else {
		v, ok := gamedate.ValidateDate(date)
		if !ok {
			log.Printf("scoreboard: invalid date %q, takes MM/DD/YYYY", date)
			return ScoreboardRequest{}, false
		}
		d = v
	}
	if override != nil {
		token = *override
	}

	s.scoreboardGen++
	return ScoreboardRequest{Date: d, CacheToken: token, Gen: s.scoreboardGen, Pinned: date != ""}, true
}

// ApplyScoreboard stores the outcome of req. On success the game list is
// replaced wholesale; on failure the error flag is set and the previous list
// is kept. Results for anything but the latest request are dropped.
func (s *Session) ApplyScoreboard(req ScoreboardRequest, games []model.GameSummary, err error) bool {
	if req.Gen != s.scoreboardGen {
		return false
	}
	if err != nil {
		s.scoreboardErr = fmt.Errorf("fetching scoreboard %s: %w", req.DayKey(), err)
		log.Printf("scoreboard: %v", s.scoreboardErr)
		return true
	}

	s.games = append([]model.GameSummary(nil), games...)
	s.loaded = true
	s.date = req.Date
	s.pinned = req.Pinned
	s.scoreboardErr = nil
	s.clampSelection()
	return true
}

func (s *Session) clampSelection() {
	if len(s.games) == 0 {
		s.selected = 0
		return
	}
	if s.selected >= len(s.games) {
		s.selected = len(s.games) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Games returns the current game list.
func (s *Session) Games() []model.GameSummary { return s.games }

// Selected returns the current selection index.
func (s *Session) Selected() int { return s.selected }

// SelectedGame returns the selected game, if any.
func (s *Session) SelectedGame() (model.GameSummary, bool) {
	if len(s.games) == 0 {
		return model.GameSummary{}, false
	}
	return s.games[s.selected], true
}

// Select sets the selection to exactly i. Callers must keep i within the
// game list; an out-of-range index is a programming error and panics.
func (s *Session) Select(i int) {
	if i < 0 || i >= len(s.games) {
		panic(fmt.Sprintf("scoreboard: select index %d out of range [0,%d)", i, len(s.games)))
	}
	s.selected = i
}

// Navigate moves the selection one step, stopping at either end. It reports
// whether the selection changed.
func (s *Session) Navigate(dir Direction) bool {
	switch dir {
	case Previous:
		if s.selected == 0 {
			return false
		}
		s.selected--
	case Next:
		if len(s.games) == 0 || s.selected == len(s.games)-1 {
			return false
		}
		s.selected++
	default:
		return false
	}
	return true
}

// StampRefresh produces a new refresh trigger.
func (s *Session) StampRefresh(now time.Time) RefreshTrigger {
	s.refresh = RefreshTrigger{Seq: s.refresh.Seq + 1, At: now}
	return s.refresh
}

// Refresh stamps a new refresh trigger and prepares a scoreboard fetch.
// A day the user asked for explicitly is re-fetched; otherwise "today" is
// resolved again so the view follows the calendar.
func (s *Session) Refresh(now time.Time) ScoreboardRequest {
	s.StampRefresh(now)
	date := ""
	if s.pinned {
		date = s.date.String()
	}
	req, _ := s.BeginScoreboard(date, now, nil)
	return req
}

// LastRefreshed returns when the last manual refresh happened.
func (s *Session) LastRefreshed() time.Time { return s.refresh.At }

// CurrentBoxscoreKey returns the key the held box score should match.
func (s *Session) CurrentBoxscoreKey() (BoxscoreKey, bool) {
	g, ok := s.SelectedGame()
	if !ok {
		return BoxscoreKey{}, false
	}
	return BoxscoreKey{GameID: g.GameID, Season: g.Season, Refresh: s.refresh.Seq}, true
}

// NextBoxscore returns a fetch for the selected game when the
// (game, season, refresh) key differs from the last one issued.
func (s *Session) NextBoxscore() (BoxscoreRequest, bool) {
	key, ok := s.CurrentBoxscoreKey()
	if !ok {
		return BoxscoreRequest{}, false
	}
	if s.issued && key == s.issuedKey {
		return BoxscoreRequest{}, false
	}
	s.boxGen++
	s.issuedKey = key
	s.issued = true
	return BoxscoreRequest{Key: key, Gen: s.boxGen}, true
}

// ApplyBoxscore stores the outcome of req. A response for a request that
// has since been superseded is discarded and ApplyBoxscore returns false.
func (s *Session) ApplyBoxscore(req BoxscoreRequest, rec model.BoxscoreRecord, err error) bool {
	if req.Gen != s.boxGen {
		return false
	}
	if err != nil {
		s.boxErr = fmt.Errorf("fetching box score %s: %w", req.Key.GameID, err)
		s.boxErrKey = req.Key
		log.Printf("scoreboard: %v", s.boxErr)
		return true
	}
	s.box = rec
	s.boxKey = req.Key
	s.boxErr = nil
	return true
}

// Boxscore returns the held record and whether it belongs to the selected game.
func (s *Session) Boxscore() (model.BoxscoreRecord, bool) {
	g, ok := s.SelectedGame()
	if !ok {
		return s.box, false
	}
	return s.box, s.boxKey.GameID == g.GameID && s.boxKey.Season == g.Season
}

// selectedBoxscoreErr returns the box-score error only when it was raised
// for the selected game. A failure for another game must not mark a game
// whose own fetch is still pending.
func (s *Session) selectedBoxscoreErr() error {
	g, ok := s.SelectedGame()
	if !ok || s.boxErr == nil {
		return nil
	}
	if s.boxErrKey.GameID != g.GameID || s.boxErrKey.Season != g.Season {
		return nil
	}
	return s.boxErr
}

// ScoreboardErr returns the scoreboard error flag.
func (s *Session) ScoreboardErr() error { return s.scoreboardErr }

// BoxscoreErr returns the box-score error flag.
func (s *Session) BoxscoreErr() error { return s.boxErr }

// Loaded reports whether a scoreboard has ever been applied.
func (s *Session) Loaded() bool { return s.loaded }

// Date returns the day of the current game list.
func (s *Session) Date() gamedate.Date { return s.date }
