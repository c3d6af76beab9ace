package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tinytelemetry/courtside/internal/scoreboard"
)

func liveGameView(t *testing.T) *scoreboard.GameView {
	t.Helper()
	src := newStubSource()
	m := newTestModel(src)
	drain(m, m.Init())
	g := m.Snapshot().Game
	if g == nil || g.Kind != scoreboard.GameLive {
		t.Fatalf("fixture game = %+v, want live", g)
	}
	return g
}

func TestRenderGameViewLive(t *testing.T) {
	t.Parallel()

	out := renderGameView(liveGameView(t), 120)
	for _, want := range []string{"Boston Celtics at Los Angeles Lakers", "110", "108", "In Progress  1:02", "OT", "Jayson Tatum", "Inactive: Bench Guy", "BOS 30-12", "Points by period"} {
		if !strings.Contains(out, want) {
			t.Fatalf("live render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderGameViewPregameAndError(t *testing.T) {
	t.Parallel()

	pregame := &scoreboard.GameView{
		Kind:    scoreboard.GamePregame,
		Matchup: "BOS at LAL",
		Message: scoreboard.MsgGameBegins,
		Status:  "7:30 PM ET",
		Records: []scoreboard.TeamRecord{{Team: "BOS", Record: "1-0"}, {Team: "LAL", Record: "0-1"}},
	}
	if out := renderGameView(pregame, 80); !strings.Contains(out, "Game begins at 7:30 PM ET") {
		t.Fatalf("pregame render:\n%s", out)
	}

	failed := &scoreboard.GameView{Kind: scoreboard.GameError, Matchup: "BOS at LAL", Message: scoreboard.MsgBoxscoreError}
	if out := renderGameView(failed, 80); !strings.Contains(out, scoreboard.MsgBoxscoreError) {
		t.Fatalf("error render:\n%s", out)
	}
}

func TestQuarterChartData(t *testing.T) {
	t.Parallel()

	q := scoreboard.QuarterTable{
		Labels: []string{"Q1", "Q2", "Q3", "Q4", "OT"},
		Rows: []scoreboard.QuarterRow{
			{Team: "BOS", Cells: []string{"30", "25", "-", "-", ""}},
			{Team: "LAL", Cells: []string{"28", "31", "-", "-", ""}},
		},
	}
	data := quarterChartData(q)
	if len(data) != 5 {
		t.Fatalf("len = %d, want 5", len(data))
	}
	if data[1].Away != 25 || data[1].Home != 31 || data[1].Label != "Q2" {
		t.Fatalf("Q2 = %+v", data[1])
	}
	if data[2].Away != 0 || data[4].Home != 0 {
		t.Fatalf("unplayed/missing cells = %+v %+v, want zero", data[2], data[4])
	}
	if quarterChartData(scoreboard.QuarterTable{}) != nil {
		t.Fatal("empty table produced chart data")
	}
}

func TestListWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cursor, total, rows, want int
	}{
		{0, 5, 10, 0},
		{0, 20, 10, 0},
		{9, 20, 10, 4},
		{19, 20, 10, 10},
	}
	for _, tt := range tests {
		if got := listWindow(tt.cursor, tt.total, tt.rows); got != tt.want {
			t.Fatalf("listWindow(%d, %d, %d) = %d, want %d", tt.cursor, tt.total, tt.rows, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("LAL vs. WAS - Final", 30); got != "LAL vs. WAS - Final" {
		t.Fatalf("short label changed: %q", got)
	}
	if got := truncate("LAL vs. WAS - 10:30 PM ET", 10); got != "LAL vs. W…" {
		t.Fatalf("truncate = %q, want %q", got, "LAL vs. W…")
	}
}

func TestLoadSkinMergesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "midnight.yml")
	if err := os.WriteFile(path, []byte("name: midnight\ncolors:\n  navy: \"#000022\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSkin(path)
	if err != nil {
		t.Fatalf("LoadSkin() error = %v", err)
	}
	if s.Name != "midnight" || s.Colors.Navy != "#000022" {
		t.Fatalf("skin = %+v", s)
	}
	if s.Colors.Green != defaultPalette.Green {
		t.Fatalf("green = %q, want default %q", s.Colors.Green, defaultPalette.Green)
	}
}

func TestInitializeSkin(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skins", "red.yml"), []byte("colors:\n  blue: \"#FF0000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer applyPalette(defaultPalette)

	if err := InitializeSkin("red", dir); err != nil {
		t.Fatalf("InitializeSkin(red) error = %v", err)
	}
	if string(ColorBlue) != "#FF0000" {
		t.Fatalf("blue = %q, want #FF0000", ColorBlue)
	}

	if err := InitializeSkin("missing", dir); err == nil {
		t.Fatal("InitializeSkin(missing) error = nil")
	}
	if string(ColorBlue) != defaultPalette.Blue {
		t.Fatalf("blue = %q, want default after a failed load", ColorBlue)
	}

	if err := InitializeSkin("default", dir); err != nil {
		t.Fatalf("InitializeSkin(default) error = %v", err)
	}
}
