// Package tui provides the Bubble Tea integration for the snake games.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one snake move.
type TickMsg time.Time

// tickInterval converts a move rate into the delay between ticks.
// Non-positive rates fall back to one move per second.
func tickInterval(movesPerSecond int) time.Duration {
	if movesPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(movesPerSecond)
}

// tickCmd schedules the next tick.
func tickCmd(movesPerSecond int) tea.Cmd {
	return tea.Tick(tickInterval(movesPerSecond), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
