// Package tui provides the Bubble Tea spectator view for autotetris and
// an SSH server that hands each connection its own autonomous game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minTick keeps a zero turn delay from spinning the event loop.
const minTick = time.Millisecond

// TickMsg is sent to trigger one agent turn.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(max(delay, minTick), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
