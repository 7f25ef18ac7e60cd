package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// ansi256 maps core colors to terminal palette indexes. Empty means the
// terminal's default foreground.
var ansi256 = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorDarkBlue:     "18",
	core.ColorPurple:       "93",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

func styleFor(c core.Color) lipgloss.Style {
	if code, ok := ansi256[c]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return lipgloss.NewStyle()
}

// RenderScreen turns a Screen into styled terminal text. Runs of cells in
// the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	var run strings.Builder
	for y := range lines {
		var line strings.Builder
		cells := s.RowCells(y)
		for start := 0; start < len(cells); {
			color := cells[start].Color
			end := start
			run.Reset()
			for end < len(cells) && cells[end].Color == color {
				run.WriteRune(cells[end].Rune)
				end++
			}
			line.WriteString(styleFor(color).Render(run.String()))
			start = end
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
