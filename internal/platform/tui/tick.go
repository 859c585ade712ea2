// Package tui provides the Bubble Tea terminal editor for the course field.
// It handles the terminal UI loop, input mapping and field rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 4 * time.Second

// clearStatusMsg clears the status line if it still shows message seq.
type clearStatusMsg struct {
	seq int
}

// clearStatusCmd returns a command that expires status message seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
