package scoreboard

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
)

var testNow = time.Date(2020, time.January, 26, 18, 0, 0, 0, time.UTC)

func testGames(n int) []model.GameSummary {
	games := make([]model.GameSummary, 0, n)
	for i := 0; i < n; i++ {
		games = append(games, model.GameSummary{
			GameID:    fmt.Sprintf("g%d", i),
			Season:    "2019",
			Status:    model.StatusInProgress,
			StartTime: "7:30 PM ET",
			Away:      model.TeamSummary{TriCode: fmt.Sprintf("A%02d", i), Wins: 10, Losses: 5},
			Home:      model.TeamSummary{TriCode: fmt.Sprintf("H%02d", i), Wins: 6, Losses: 9},
		})
	}
	return games
}

func loadedSession(t *testing.T, games []model.GameSummary) *Session {
	t.Helper()
	s := NewSession(time.UTC)
	req, ok := s.BeginScoreboard("", testNow, nil)
	if !ok {
		t.Fatal("BeginScoreboard(today) not ok")
	}
	if !s.ApplyScoreboard(req, games, nil) {
		t.Fatal("ApplyScoreboard dropped the latest response")
	}
	return s
}

func TestNavigateClampsAtBothEnds(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(3))
	if s.Navigate(Previous) {
		t.Fatal("Navigate(Previous) at 0 moved")
	}
	if s.Selected() != 0 {
		t.Fatalf("selected = %d, want 0", s.Selected())
	}

	s.Select(2)
	if s.Navigate(Next) {
		t.Fatal("Navigate(Next) at last moved")
	}
	if s.Selected() != 2 {
		t.Fatalf("selected = %d, want 2", s.Selected())
	}

	if !s.Navigate(Previous) || s.Selected() != 1 {
		t.Fatalf("selected = %d after Previous, want 1", s.Selected())
	}
}

func TestNavigateWithNoGames(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, nil)
	if s.Navigate(Next) || s.Navigate(Previous) {
		t.Fatal("Navigate moved with an empty game list")
	}
}

func TestSelectOutOfRangePanics(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(2))
	defer func() {
		if recover() == nil {
			t.Fatal("Select(5) did not panic")
		}
	}()
	s.Select(5)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Direction
		wantOK bool
	}{
		{"previous", Previous, true},
		{"left", Previous, true},
		{"next", Next, true},
		{"right", Next, true},
		{"up", Previous, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Fatalf("ParseDirection(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBeginScoreboardExplicitDate(t *testing.T) {
	t.Parallel()

	s := NewSession(time.UTC)
	req, ok := s.BeginScoreboard("11/12/2014", testNow, nil)
	if !ok {
		t.Fatal("BeginScoreboard(11/12/2014) not ok")
	}
	if req.DayKey() != "20141112" {
		t.Fatalf("day key = %q, want 20141112", req.DayKey())
	}
	if !req.Pinned {
		t.Fatal("explicit date not pinned")
	}

	override := int64(42)
	req, _ = s.BeginScoreboard("", testNow, &override)
	if req.CacheToken != 42 || req.DayKey() != "20200126" || req.Pinned {
		t.Fatalf("req = %+v, want today with token 42", req)
	}
}

func TestInvalidDateLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(2))
	pending, _ := s.BeginScoreboard("", testNow, nil)

	if _, ok := s.BeginScoreboard("13/45/abcd", testNow, nil); ok {
		t.Fatal("BeginScoreboard(13/45/abcd) ok")
	}
	if len(s.Games()) != 2 || s.ScoreboardErr() != nil {
		t.Fatalf("state changed: games=%d err=%v", len(s.Games()), s.ScoreboardErr())
	}
	if !s.ApplyScoreboard(pending, testGames(3), nil) {
		t.Fatal("invalid date superseded the pending request")
	}
}

func TestStaleScoreboardDiscarded(t *testing.T) {
	t.Parallel()

	s := NewSession(time.UTC)
	first, _ := s.BeginScoreboard("01/01/2020", testNow, nil)
	second, _ := s.BeginScoreboard("01/02/2020", testNow, nil)

	if !s.ApplyScoreboard(second, testGames(1), nil) {
		t.Fatal("latest response dropped")
	}
	if s.ApplyScoreboard(first, testGames(4), nil) {
		t.Fatal("stale response applied")
	}
	if len(s.Games()) != 1 || s.Date().DayKey() != "20200102" {
		t.Fatalf("games=%d date=%s, want 1 game on 20200102", len(s.Games()), s.Date().DayKey())
	}
}

func TestScoreboardErrorKeepsPreviousList(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(2))
	req, _ := s.BeginScoreboard("", testNow, nil)
	s.ApplyScoreboard(req, nil, errors.New("boom"))

	if len(s.Games()) != 2 {
		t.Fatalf("games = %d, want previous 2", len(s.Games()))
	}
	if s.ScoreboardErr() == nil {
		t.Fatal("scoreboard error flag not set")
	}

	req, _ = s.BeginScoreboard("", testNow, nil)
	s.ApplyScoreboard(req, testGames(2), nil)
	if s.ScoreboardErr() != nil {
		t.Fatalf("error flag = %v after success, want nil", s.ScoreboardErr())
	}
}

func TestShorterScoreboardClampsSelection(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(3))
	s.Select(2)

	req, _ := s.BeginScoreboard("", testNow, nil)
	s.ApplyScoreboard(req, testGames(1), nil)
	if s.Selected() != 0 {
		t.Fatalf("selected = %d, want 0", s.Selected())
	}
}

func TestNextBoxscoreOnlyWhenKeyChanges(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(2))

	req, ok := s.NextBoxscore()
	if !ok || req.Key.GameID != "g0" || req.Key.Season != "2019" {
		t.Fatalf("first NextBoxscore = %+v, %v", req, ok)
	}
	if _, ok := s.NextBoxscore(); ok {
		t.Fatal("NextBoxscore issued again with an unchanged key")
	}

	s.Navigate(Next)
	req, ok = s.NextBoxscore()
	if !ok || req.Key.GameID != "g1" {
		t.Fatalf("after Navigate NextBoxscore = %+v, %v", req, ok)
	}

	s.StampRefresh(testNow)
	req, ok = s.NextBoxscore()
	if !ok || req.Key.GameID != "g1" {
		t.Fatalf("after refresh NextBoxscore = %+v, %v, want g1 again", req, ok)
	}
}

func TestNextBoxscoreWithoutGames(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, nil)
	if _, ok := s.NextBoxscore(); ok {
		t.Fatal("NextBoxscore issued with no games")
	}
}

func TestStaleBoxscoreDiscarded(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(2))
	first, _ := s.NextBoxscore()
	s.Navigate(Next)
	second, _ := s.NextBoxscore()

	if s.ApplyBoxscore(first, model.BoxscoreRecord{GameID: "g0"}, nil) {
		t.Fatal("stale box score applied")
	}
	if !s.ApplyBoxscore(second, model.BoxscoreRecord{GameID: "g1"}, nil) {
		t.Fatal("latest box score dropped")
	}
	rec, current := s.Boxscore()
	if !current || rec.GameID != "g1" {
		t.Fatalf("held = %q current=%v, want g1 current", rec.GameID, current)
	}
}

func TestBoxscoreErrorKeepsRecord(t *testing.T) {
	t.Parallel()

	s := loadedSession(t, testGames(1))
	req, _ := s.NextBoxscore()
	s.ApplyBoxscore(req, model.BoxscoreRecord{GameID: "g0", StatusText: "Halftime"}, nil)

	s.StampRefresh(testNow)
	req, _ = s.NextBoxscore()
	s.ApplyBoxscore(req, model.BoxscoreRecord{}, errors.New("timeout"))

	if s.BoxscoreErr() == nil {
		t.Fatal("box score error flag not set")
	}
	if s.ScoreboardErr() != nil {
		t.Fatal("box score failure set the scoreboard flag")
	}
	if rec, _ := s.Boxscore(); rec.StatusText != "Halftime" {
		t.Fatalf("held status = %q, want previous record kept", rec.StatusText)
	}
}

func TestRefreshFollowsPinnedDate(t *testing.T) {
	t.Parallel()

	s := NewSession(time.UTC)
	req, _ := s.BeginScoreboard("11/12/2014", testNow, nil)
	s.ApplyScoreboard(req, testGames(1), nil)

	later := testNow.Add(time.Minute)
	req = s.Refresh(later)
	if req.DayKey() != "20141112" || !req.Pinned {
		t.Fatalf("refresh = %+v, want pinned 20141112", req)
	}
	if !s.LastRefreshed().Equal(later) {
		t.Fatalf("last refreshed = %v, want %v", s.LastRefreshed(), later)
	}

	today := loadedSession(t, testGames(1))
	req = today.Refresh(later)
	if req.DayKey() != "20200126" || req.Pinned {
		t.Fatalf("refresh = %+v, want today 20200126", req)
	}
}
