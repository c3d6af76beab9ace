package scoreboard

import (
	"strconv"

	"github.com/tinytelemetry/courtside/internal/model"
)

// unplayed marks a regulation quarter that has not started yet.
const unplayed = "-"

// QuarterTable is a display-ready line-score grid.
// Every row has exactly len(Labels) cells.
type QuarterTable struct {
	Labels []string     `json:"labels"`
	Rows   []QuarterRow `json:"rows"`
}

// QuarterRow is one team's cells, parallel to QuarterTable.Labels.
type QuarterRow struct {
	Team  string   `json:"team"`
	Cells []string `json:"cells"`
}

// quarterColumns is max(4, currentPeriod).
func quarterColumns(currentPeriod int) int {
	if currentPeriod > model.RegulationPeriods {
		return currentPeriod
	}
	return model.RegulationPeriods
}

// QuarterLabels returns Q1..Q4 followed by OT, OT2, OT3... up to currentPeriod.
// The first overtime is unnumbered, so column i > 5 is labeled OT{i-4}.
func QuarterLabels(currentPeriod int) []string {
	n := quarterColumns(currentPeriod)
	labels := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		switch {
		case i <= model.RegulationPeriods:
			labels = append(labels, "Q"+strconv.Itoa(i))
		case i == model.RegulationPeriods+1:
			labels = append(labels, "OT")
		default:
			labels = append(labels, "OT"+strconv.Itoa(i-model.RegulationPeriods))
		}
	}
	return labels
}

// QuarterCells returns one team's cells for the given current period.
// Quarters not yet reached show "-". Overtime columns always show whatever
// the record holds; a missing score is rendered as an empty cell.
func QuarterCells(currentPeriod int, scores model.PeriodScores) []string {
	if currentPeriod < 0 {
		currentPeriod = 0
	}
	n := quarterColumns(currentPeriod)
	cells := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		switch {
		case i <= model.RegulationPeriods && i > currentPeriod:
			cells = append(cells, unplayed)
		case i <= model.RegulationPeriods:
			cells = append(cells, scoreCell(scores.Quarter(i)))
		default:
			cells = append(cells, scoreCell(scores.Overtime(i-model.RegulationPeriods)))
		}
	}
	return cells
}

// DeriveQuarterTable builds the away and home rows for currentPeriod.
func DeriveQuarterTable(currentPeriod int, away, home model.TeamLine) QuarterTable {
	return QuarterTable{
		Labels: QuarterLabels(currentPeriod),
		Rows: []QuarterRow{
			{Team: away.Abbrev, Cells: QuarterCells(currentPeriod, away.Periods)},
			{Team: home.Abbrev, Cells: QuarterCells(currentPeriod, home.Periods)},
		},
	}
}

func scoreCell(v int, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}
