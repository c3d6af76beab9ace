package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var boxColumns = []string{"Player", "Pos", "Min", "Pts", "FG", "3P", "FT", "Reb", "OR", "DR", "Ast", "Blk", "Stl", "TO", "BA", "PF", "+/-"}

// renderGameView renders the selected game's detail panel.
func renderGameView(g *scoreboard.GameView, width int) string {
	sections := []string{matchupStyle.Render(g.Matchup)}

	switch g.Kind {
	case scoreboard.GameError:
		sections = append(sections, errorStyle.Render(g.Message))

	case scoreboard.GamePregame:
		sections = append(sections, statusStyle.Render(g.Message+" "+strings.TrimSpace(g.Status)))

	case scoreboard.GameLive:
		sections = append(sections, renderScoreLine(g), statusStyle.Render(g.Status))
		if g.Quarters != nil {
			sections = append(sections,
				"",
				renderQuarterTable(*g.Quarters),
				renderQuarterChart(*g.Quarters, width),
			)
		}
		if g.Away != nil {
			sections = append(sections, "", renderTeamBox(g.Away))
		}
		if g.Home != nil {
			sections = append(sections, "", renderTeamBox(g.Home))
		}
	}

	sections = append(sections, "", renderRecords(g.Records))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderScoreLine(g *scoreboard.GameView) string {
	awayTeam, homeTeam := teamCodes(g)

	away, home := scoreStyle, scoreStyle
	switch g.Leader {
	case scoreboard.SideAway:
		away = leaderScoreStyle
	case scoreboard.SideHome:
		home = leaderScoreStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		awayTeam,
		away.Render(strconv.Itoa(g.AwayScore)),
		"-",
		home.Render(strconv.Itoa(g.HomeScore)),
		homeTeam,
	)
}

// teamCodes returns the away and home abbreviations.
func teamCodes(g *scoreboard.GameView) (string, string) {
	if len(g.Records) < 2 {
		return "", ""
	}
	return g.Records[0].Team, g.Records[1].Team
}

func renderQuarterTable(q scoreboard.QuarterTable) string {
	headers := append([]string{""}, q.Labels...)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorGray)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle.Align(lipgloss.Right)
		})
	for _, r := range q.Rows {
		t.Row(append([]string{r.Team}, r.Cells...)...)
	}
	return t.String()
}

func renderTeamBox(box *scoreboard.TeamBox) string {
	players := box.Players
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorGray)).
		Headers(boxColumns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0 && row >= 0 && row < len(players) && players[row].OnCourt:
				return tableCellStyle.Inherit(onCourtStyle)
			case col == 0:
				return tableCellStyle
			default:
				return tableCellStyle.Align(lipgloss.Right)
			}
		})
	for _, p := range players {
		t.Row(playerCells(p)...)
	}

	parts := []string{chartTitleStyle.Render(box.Title), t.String()}
	if len(box.Inactive) > 0 {
		parts = append(parts, helpStyle.Render("Inactive: "+strings.Join(box.Inactive, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func playerCells(p scoreboard.PlayerRow) []string {
	return []string{
		p.Name,
		p.Position,
		p.Minutes,
		strconv.Itoa(p.Points),
		p.FieldGoals,
		p.Threes,
		p.FreeThrows,
		strconv.Itoa(p.Rebounds),
		strconv.Itoa(p.OffReb),
		strconv.Itoa(p.DefReb),
		strconv.Itoa(p.Assists),
		strconv.Itoa(p.Blocks),
		strconv.Itoa(p.Steals),
		strconv.Itoa(p.Turnovers),
		strconv.Itoa(p.BlockedAtt),
		strconv.Itoa(p.Fouls),
		fmt.Sprintf("%+d", p.PlusMinus),
	}
}

func renderRecords(records []scoreboard.TeamRecord) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, fmt.Sprintf("%s %s", r.Team, r.Record))
	}
	return helpStyle.Render(strings.Join(parts, "   "))
}
