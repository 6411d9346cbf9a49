package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one color so a run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run []rune

	for y := range rows {
		var line strings.Builder
		runColor := core.ColorDefault
		flush := func() {
			if len(run) > 0 {
				line.WriteString(styleFor(runColor).Render(string(run)))
				run = run[:0]
			}
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush()
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
