package skyshooter

import (
	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

// Phase is the session lifecycle state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Pattern is an enemy's movement pattern, fixed at spawn.
type Pattern uint8

const (
	PatternStraight Pattern = iota
	PatternDiagonal         // Moves sideways too, bouncing off the world edges
)

// Direction is the horizontal heading of a diagonal enemy.
type Direction int8

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Player is the player craft. Only X changes during a session.
type Player struct {
	X, Y float64
}

// Projectile is a shot travelling upward.
type Projectile struct {
	X, Y float64
}

// Enemy is a descending enemy craft.
type Enemy struct {
	X, Y       float64
	Pattern    Pattern
	Dir        Direction
	Multiplier float64 // Speed multiplier from the tier draw
	Sprite     int     // Tier sprite index, mapped to a glyph by each host
}

// State is the complete session state. Tick never mutates a State it is
// given; it returns a new one.
type State struct {
	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy
	Score       int
	Phase       Phase
	Elapsed     float64 // Seconds of unpaused play, drives the ramp and pattern gate
	Ticks       uint64
}

// NewState returns the initial state for a profile: player centered near
// the bottom edge, no entities, score 0.
func NewState(cfg config.ShooterConfig) State {
	return State{
		Player: Player{
			X: cfg.World.Width/2 - cfg.Player.Width/2,
			Y: cfg.World.Height - cfg.Player.Height - cfg.Player.BottomMargin,
		},
		Phase: PhasePlaying,
	}
}

// GameOver reports whether the session has ended.
func (s State) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Projectiles = append([]Projectile(nil), s.Projectiles...)
	out.Enemies = append([]Enemy(nil), s.Enemies...)
	return out
}

func playerRect(cfg config.ShooterConfig, p Player) core.RectF {
	return core.NewRectF(p.X, p.Y, cfg.Player.Width, cfg.Player.Height)
}

func projectileRect(cfg config.ShooterConfig, p Projectile) core.RectF {
	return core.NewRectF(p.X, p.Y, cfg.Projectile.Width, cfg.Projectile.Height)
}

func enemyRect(cfg config.ShooterConfig, e Enemy) core.RectF {
	return core.NewRectF(e.X, e.Y, cfg.Enemy.Width, cfg.Enemy.Height)
}
