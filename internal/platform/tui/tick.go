// Package tui runs games in a terminal with Bubble Tea: the local play loop,
// the game picker, the scoreboard and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the simulation one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
