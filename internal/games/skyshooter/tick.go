package skyshooter

import (
	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

// Input is the control state for one tick.
// Left and Right are held flags; Fire is a one-shot press.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// InputFromFrame converts a platform input frame to shooter input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Fire:  f.Has(core.ActionFire),
	}
}

// Rules binds a profile to its difficulty ramp. It holds no session state.
type Rules struct {
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager
}

// NewRules creates the rule set for a profile.
func NewRules(cfg config.ShooterConfig) *Rules {
	return &Rules{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg),
	}
}

// Config returns the profile the rules were built from.
func (r *Rules) Config() config.ShooterConfig {
	return r.cfg
}

// Speeds returns the speeds in effect at the given elapsed time.
func (r *Rules) Speeds(elapsed float64) config.Speeds {
	return r.difficulty.Speeds(elapsed)
}

// Tick advances s by one frame of dt seconds and returns the new state and
// the events the frame produced. Speeds are per tick; dt only advances the
// session clock. A finished session is returned unchanged.
//
// Frame order: move player, advance and retire projectiles, maybe spawn an
// enemy, advance each enemy and resolve its collisions, retire escaped
// enemies. A Fire press is applied last, so the new projectile first moves
// on the following tick.
func (r *Rules) Tick(s State, dt float64, in Input, rng RandSource) (State, []core.Event) {
	if s.Phase == PhaseGameOver {
		return s, nil
	}

	cfg := r.cfg
	next := s.Clone()
	next.Ticks++
	next.Elapsed += dt
	speeds := r.difficulty.Speeds(next.Elapsed)

	var events []core.Event
	emit := func(kind core.EventKind) {
		events = append(events, core.Event{Kind: kind, Score: next.Score})
	}

	// Player
	if in.Left {
		next.Player.X -= cfg.Player.Speed
	}
	if in.Right {
		next.Player.X += cfg.Player.Speed
	}
	next.Player.X = core.ClampF(next.Player.X, 0, cfg.World.Width-cfg.Player.Width)

	// Projectiles
	projectiles := next.Projectiles[:0]
	for _, p := range next.Projectiles {
		p.Y -= speeds.Projectile
		if p.Y < 0 {
			continue
		}
		projectiles = append(projectiles, p)
	}
	next.Projectiles = projectiles

	// Spawn
	if rng.Float64() < cfg.Enemy.SpawnChance {
		next.Enemies = append(next.Enemies, r.spawn(next, rng))
		emit(core.EventEnemySpawned)
	}

	// Enemies
	player := playerRect(cfg, next.Player)
	enemies := make([]Enemy, 0, len(next.Enemies))
	for i, e := range next.Enemies {
		e = r.advance(e, speeds)
		er := enemyRect(cfg, e)

		if er.Intersects(player) {
			next.Phase = PhaseGameOver
			// Enemies after the collider keep their positions
			enemies = append(enemies, next.Enemies[i+1:]...)
			emit(core.EventPlayerHit)
			break
		}

		if hit := r.hitProjectile(next.Projectiles, er); hit >= 0 {
			next.Projectiles = append(next.Projectiles[:hit], next.Projectiles[hit+1:]...)
			next.Score++
			emit(core.EventEnemyDestroyed)
			continue
		}

		if e.Y > cfg.World.Height {
			emit(core.EventEnemyEscaped)
			continue
		}

		enemies = append(enemies, e)
	}
	next.Enemies = enemies

	// Fire
	if in.Fire && next.Phase == PhasePlaying {
		next.Projectiles = append(next.Projectiles, Projectile{
			X: next.Player.X + cfg.Player.Width/2 - cfg.Projectile.Width/2,
			Y: next.Player.Y,
		})
		emit(core.EventFired)
	}

	return next, events
}

// spawn creates an enemy at the top edge at a random horizontal offset.
func (r *Rules) spawn(s State, rng RandSource) Enemy {
	cfg := r.cfg
	e := Enemy{
		X:       rng.Float64() * (cfg.World.Width - cfg.Enemy.Width),
		Y:       -cfg.Enemy.Height,
		Pattern: PatternStraight,
		Dir:     DirNone,
	}
	e.Multiplier, e.Sprite = drawTier(cfg.Tiers, s.Score, rng)

	p := cfg.Patterns
	if p.Enabled && s.Elapsed >= p.DiagonalAfter && rng.Float64() < p.DiagonalChance {
		e.Pattern = PatternDiagonal
		e.Dir = DirRight
		if rng.Intn(2) == 0 {
			e.Dir = DirLeft
		}
	}
	return e
}

// advance moves one enemy. Diagonal enemies reverse at either world edge.
func (r *Rules) advance(e Enemy, speeds config.Speeds) Enemy {
	e.Y += speeds.Enemy * e.Multiplier
	if e.Pattern != PatternDiagonal {
		return e
	}

	maxX := r.cfg.World.Width - r.cfg.Enemy.Width
	e.X += float64(e.Dir) * speeds.Diagonal * e.Multiplier
	switch {
	case e.X <= 0:
		e.X = 0
		e.Dir = DirRight
	case e.X >= maxX:
		e.X = maxX
		e.Dir = DirLeft
	}
	return e
}

// hitProjectile returns the index of the first projectile overlapping the
// enemy, or -1.
func (r *Rules) hitProjectile(projectiles []Projectile, enemy core.RectF) int {
	for i, p := range projectiles {
		if projectileRect(r.cfg, p).Intersects(enemy) {
			return i
		}
	}
	return -1
}
