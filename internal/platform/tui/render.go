package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avoronkov/cartage/internal/core"
)

// paletteStyles maps the pocket palette to lipgloss styles.
// ANSI 256 codes chosen to stay close to the intended palette.
var paletteStyles = map[core.Color]lipgloss.Style{
	core.ColorBlack:    lipgloss.NewStyle(),
	core.ColorStorm:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	core.ColorPlum:     lipgloss.NewStyle().Foreground(lipgloss.Color("96")),
	core.ColorForest:   lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
	core.ColorBrown:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorCharcoal: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorSlate:    lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
	core.ColorOrange:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorIndigo:   lipgloss.NewStyle().Foreground(lipgloss.Color("104")),
	core.ColorPink:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	core.ColorPeach:    lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := paletteStyles[startColor]
			if !ok {
				style = paletteStyles[core.ColorBlack]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
