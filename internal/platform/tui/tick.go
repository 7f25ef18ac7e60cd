// Package tui is the terminal host: Bubble Tea models for playing a
// profile, the menu and scoreboard, key-hold emulation, and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the game
// model whose tick chain produced it.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickGen hands every GameModel its own tick generation.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick of generation
// gen after one interval at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
