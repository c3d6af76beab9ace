package tui

import (
	"strconv"

	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

const quarterChartHeight = 8

// periodPoints holds the away and home points for one column of the line score.
type periodPoints struct {
	Label string
	Away  float64
	Home  float64
}

// quarterChartData turns the line-score cells into numbers. Unplayed and
// missing cells count as zero.
func quarterChartData(q scoreboard.QuarterTable) []periodPoints {
	if len(q.Rows) < 2 {
		return nil
	}
	out := make([]periodPoints, 0, len(q.Labels))
	for i, label := range q.Labels {
		out = append(out, periodPoints{
			Label: label,
			Away:  cellPoints(q.Rows[0].Cells, i),
			Home:  cellPoints(q.Rows[1].Cells, i),
		})
	}
	return out
}

func cellPoints(cells []string, i int) float64 {
	if i >= len(cells) {
		return 0
	}
	n, err := strconv.Atoi(cells[i])
	if err != nil {
		return 0
	}
	return float64(n)
}

// renderQuarterChart draws paired away/home bars for each period.
func renderQuarterChart(q scoreboard.QuarterTable, width int) string {
	data := quarterChartData(q)
	if len(data) == 0 {
		return ""
	}

	awayStyle := lipgloss.NewStyle().Foreground(ColorBlue).Background(ColorBlue)
	homeStyle := lipgloss.NewStyle().Foreground(ColorOrange).Background(ColorOrange)

	// two bars of width 2 plus gaps per period
	chartWidth := min(max(width, 20), len(data)*6+2)

	bc := barchart.New(chartWidth, quarterChartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(2),
	)
	for _, p := range data {
		bc.Push(barchart.BarData{
			Label:  p.Label,
			Values: []barchart.BarValue{{Name: q.Rows[0].Team, Value: p.Away, Style: awayStyle}},
		})
		bc.Push(barchart.BarData{
			Label:  "",
			Values: []barchart.BarValue{{Name: q.Rows[1].Team, Value: p.Home, Style: homeStyle}},
		})
	}
	bc.Draw()

	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		awayStyle.Render("  "), " "+q.Rows[0].Team+"   ",
		homeStyle.Render("  "), " "+q.Rows[1].Team,
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render("Points by period"),
		bc.View(),
		legend,
	)
}
