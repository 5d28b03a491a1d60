// Package tui provides the Bubble Tea integration for the maze visualizer.
// It handles the terminal UI loop, input mapping, the algorithm picker, run
// history and ssh sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per host frame.
type TickMsg time.Time

// tickCmd schedules the next frame. The visualizer measures real time
// between ticks, so a late tick only lowers the reported fps.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
