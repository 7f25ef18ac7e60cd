// Package core holds the types shared by the simulation and every host:
// actions and input frames, the character screen, geometry, colors and
// the per-session runtime settings.
package core

// RuntimeConfig is what a host hands a game on Reset. The simulation runs
// in world units; the screen size only matters to Render.
type RuntimeConfig struct {
	ScreenW  int   // Columns (terminal) or pixels (window)
	ScreenH  int   // Rows (terminal) or pixels (window)
	TickRate int   // Ticks per second; <= 0 means 60
	Seed     int64 // 0 lets the runner seed from the clock
}

// TickSeconds is the simulated time covered by one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// GameState is the host-visible summary of a session.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// EventKind names something that happened during a tick.
type EventKind string

const (
	EventFired          EventKind = "fired"
	EventEnemySpawned   EventKind = "enemy_spawned"
	EventEnemyDestroyed EventKind = "enemy_destroyed"
	EventEnemyEscaped   EventKind = "enemy_escaped"
	EventPlayerHit      EventKind = "player_hit"
)

// Event is emitted by a tick. Score is the score after the event.
type Event struct {
	Kind  EventKind
	Score int
}

// StepResult is what Game.Step returns.
type StepResult struct {
	State  GameState
	Events []Event
}
