// Package tui runs snake games in the terminal with Bubble Tea, locally or
// over SSH. It decodes keys into intents, drives the tick loop and draws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate (ticks per second).
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
