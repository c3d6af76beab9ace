package tui

import (
	"strings"

	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/charmbracelet/lipgloss"
)

// sidebarWidth fits "LAL vs. WAS - 10:30 PM ET" plus the cursor marker.
const sidebarWidth = 32

// listWindow returns the first visible row so the cursor stays on screen.
func listWindow(cursor, total, rows int) int {
	if rows <= 0 || total <= rows {
		return 0
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start > total-rows {
		start = total - rows
	}
	return start
}

// renderGameList renders the game picker. Scheduled games are dimmed and the
// selected game is highlighted; the cursor marks the row enter will pick.
func (m *ScoreboardModel) renderGameList(v scoreboard.View, height int) string {
	style := sectionStyle.Width(sidebarWidth - 2).Height(height - 2)
	innerW := sidebarWidth - 4

	lines := []string{chartTitleStyle.Render(gameListTitle(v))}
	if len(v.Options) == 0 {
		lines = append(lines, helpStyle.Render("No games"))
		return style.Render(strings.Join(lines, "\n"))
	}

	rows := height - 3
	start := listWindow(m.cursor, len(v.Options), rows)
	end := min(len(v.Options), start+max(rows, 0))

	for i := start; i < end; i++ {
		opt := v.Options[i]
		marker := "  "
		if i == m.cursor {
			marker = "▸ "
		}
		label := truncate(opt.Label, innerW-2)

		s := optionStyle
		switch {
		case i == v.Selected:
			s = optionSelected
		case !opt.Active:
			s = optionInactive
		}
		lines = append(lines, marker+s.Render(label))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func gameListTitle(v scoreboard.View) string {
	if v.Date == "" {
		return "Games"
	}
	return "Games " + v.Date
}

// truncate cuts s to at most w cells.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > w-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
