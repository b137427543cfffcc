package tui

import (
	"github.com/charmbracelet/lipgloss"

	"chartdeck/internal/canvas"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Theme is the palette handed to every demo: chrome colors for axes and
// labels plus a series ramp the demos index into.
type Theme struct {
	Name   string
	Accent string
	Axis   string
	Label  string
	Grid   string
	Series []string
}

// Color returns the i-th series color, cycling past the ramp's end.
func (t Theme) Color(i int) string {
	if len(t.Series) == 0 {
		return t.Accent
	}
	return t.Series[i%len(t.Series)]
}

// NamedTheme resolves a theme by name; unknown names fall back to dusk.
func NamedTheme(name string) Theme {
	switch name {
	case "neon":
		return Theme{
			Name:   "neon",
			Accent: "#ff2fd6",
			Axis:   "#3d4f66",
			Label:  "#9ab0cc",
			Grid:   "#222e3d",
			Series: canvas.Ramp([]string{"#00ffd0", "#fffb00", "#ff2fd6"}, 8),
		}
	case "mono":
		return Theme{
			Name:   "mono",
			Accent: "#d0d0d0",
			Axis:   "#555555",
			Label:  "#a0a0a0",
			Grid:   "#333333",
			Series: canvas.Ramp([]string{"#f0f0f0", "#707070"}, 8),
		}
	default:
		return Theme{
			Name:   "dusk",
			Accent: "#7C3AED",
			Axis:   "#3a4656",
			Label:  "#9aa7b8",
			Grid:   "#243141",
			Series: canvas.Ramp([]string{"#5ad1e6", "#7C3AED", "#e6639a", "#e6a95a"}, 8),
		}
	}
}
