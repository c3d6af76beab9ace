package tui

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a skin may override.
type Palette struct {
	Navy   string `yaml:"navy"`
	Blue   string `yaml:"blue"`
	Gray   string `yaml:"gray"`
	White  string `yaml:"white"`
	Green  string `yaml:"green"`
	Red    string `yaml:"red"`
	Orange string `yaml:"orange"`
}

var defaultPalette = Palette{
	Navy:   "#1B2A49",
	Blue:   "#3E8EDE",
	Gray:   "#7A7F8C",
	White:  "#F5F5F5",
	Green:  "#44D07B",
	Red:    "#FF5F5F",
	Orange: "#FFAA33",
}

var (
	ColorNavy   lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorGray   lipgloss.Color
	ColorWhite  lipgloss.Color
	ColorGreen  lipgloss.Color
	ColorRed    lipgloss.Color
	ColorOrange lipgloss.Color
)

var (
	sectionStyle       lipgloss.Style
	activeSectionStyle lipgloss.Style
	chartTitleStyle    lipgloss.Style
	helpStyle          lipgloss.Style
	matchupStyle       lipgloss.Style
	scoreStyle         lipgloss.Style
	leaderScoreStyle   lipgloss.Style
	statusStyle        lipgloss.Style
	errorStyle         lipgloss.Style
	optionStyle        lipgloss.Style
	optionInactive     lipgloss.Style
	optionSelected     lipgloss.Style
	onCourtStyle       lipgloss.Style
	tableHeaderStyle   lipgloss.Style
	tableCellStyle     lipgloss.Style
)

func init() {
	applyPalette(defaultPalette)
}

// applyPalette sets the package colors and rebuilds every style from them.
func applyPalette(p Palette) {
	ColorNavy = lipgloss.Color(p.Navy)
	ColorBlue = lipgloss.Color(p.Blue)
	ColorGray = lipgloss.Color(p.Gray)
	ColorWhite = lipgloss.Color(p.White)
	ColorGreen = lipgloss.Color(p.Green)
	ColorRed = lipgloss.Color(p.Red)
	ColorOrange = lipgloss.Color(p.Orange)

	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)
	activeSectionStyle = sectionStyle.
		BorderForeground(ColorBlue)
	chartTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)
	helpStyle = lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)
	matchupStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Bold(true)
	scoreStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Bold(true).
		Padding(0, 2)
	leaderScoreStyle = scoreStyle.
		Foreground(ColorGreen)
	statusStyle = lipgloss.NewStyle().
		Foreground(ColorOrange)
	errorStyle = lipgloss.NewStyle().
		Foreground(ColorRed).
		Bold(true)
	optionStyle = lipgloss.NewStyle().
		Foreground(ColorWhite)
	optionInactive = lipgloss.NewStyle().
		Foreground(ColorGray).
		Faint(true)
	optionSelected = lipgloss.NewStyle().
		Background(ColorBlue).
		Foreground(ColorWhite).
		Bold(true)
	onCourtStyle = lipgloss.NewStyle().
		Foreground(ColorGreen)
	tableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Padding(0, 1)
	tableCellStyle = lipgloss.NewStyle().
		Padding(0, 1)
}
