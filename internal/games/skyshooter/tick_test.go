package skyshooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

const dt = 1.0 / 60.0

// scriptRand replays fixed values. When a script runs out Float64 returns
// 0.99, which is above every spawn chance, and Intn returns 0.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func noSpawn() RandSource { return &scriptRand{} }

func eventKinds(events []core.Event) []core.EventKind {
	kinds := make([]core.EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestNewStateCentersPlayer(t *testing.T) {
	s := NewState(config.DefaultClassicConfig())

	assert.Equal(t, 215.0, s.Player.X)
	assert.Equal(t, 580.0, s.Player.Y)
	assert.Empty(t, s.Projectiles)
	assert.Empty(t, s.Enemies)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestIdleSessionIsStable(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	start := s.Player

	for range 300 {
		s, _ = rules.Tick(s, dt, Input{}, noSpawn())
	}

	assert.Equal(t, start, s.Player)
	assert.Equal(t, 0, s.Score)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Projectiles)
	assert.Equal(t, uint64(300), s.Ticks)
}

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	rules := NewRules(cfg)
	maxX := cfg.World.Width - cfg.Player.Width

	s := NewState(cfg)
	for range 100 {
		s, _ = rules.Tick(s, dt, Input{Left: true}, noSpawn())
		require.GreaterOrEqual(t, s.Player.X, 0.0)
		require.LessOrEqual(t, s.Player.X, maxX)
	}
	assert.Equal(t, 0.0, s.Player.X)

	for range 200 {
		s, _ = rules.Tick(s, dt, Input{Right: true}, noSpawn())
		require.GreaterOrEqual(t, s.Player.X, 0.0)
		require.LessOrEqual(t, s.Player.X, maxX)
	}
	assert.Equal(t, maxX, s.Player.X)
}

func TestPlayerMovesBySpeed(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())

	s, _ = rules.Tick(s, dt, Input{Left: true}, noSpawn())
	assert.Equal(t, 210.0, s.Player.X)

	s, _ = rules.Tick(s, dt, Input{Right: true}, noSpawn())
	assert.Equal(t, 215.0, s.Player.X)

	// Both held cancel out
	s, _ = rules.Tick(s, dt, Input{Left: true, Right: true}, noSpawn())
	assert.Equal(t, 215.0, s.Player.X)
}

func TestFireSpawnsProjectileAtNose(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())

	s, events := rules.Tick(s, dt, Input{Fire: true}, noSpawn())

	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, Projectile{X: 237.5, Y: 580}, s.Projectiles[0])
	assert.Equal(t, []core.EventKind{core.EventFired}, eventKinds(events))
}

func TestProjectileRisesUntilOffscreen(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s, _ = rules.Tick(s, dt, Input{Fire: true}, noSpawn())

	prev := s.Projectiles[0].Y
	ticks := 0
	for len(s.Projectiles) > 0 {
		s, _ = rules.Tick(s, dt, Input{}, noSpawn())
		ticks++
		if len(s.Projectiles) == 0 {
			break
		}
		require.Equal(t, prev-4, s.Projectiles[0].Y, "projectile must rise by exactly its speed")
		require.GreaterOrEqual(t, s.Projectiles[0].Y, 0.0)
		prev = s.Projectiles[0].Y
	}

	// 580 / 4 = 145 ticks to reach y = 0, removed on the next
	assert.Equal(t, 146, ticks)
}

func TestSpawnAtTopEdge(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())

	rng := &scriptRand{floats: []float64{0.01, 0.5}}
	s, events := rules.Tick(s, dt, Input{}, rng)

	require.Len(t, s.Enemies, 1)
	e := s.Enemies[0]
	assert.Equal(t, 215.0, e.X)
	// Spawned at -height, then advanced by the same tick
	assert.Equal(t, -48.0, e.Y)
	assert.Equal(t, PatternStraight, e.Pattern)
	assert.Equal(t, DirNone, e.Dir)
	assert.Equal(t, 1.0, e.Multiplier)
	assert.Equal(t, 0, e.Sprite)
	assert.Equal(t, []core.EventKind{core.EventEnemySpawned}, eventKinds(events))
}

func TestNoSpawnAboveChance(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())

	s, events := rules.Tick(s, dt, Input{}, &scriptRand{floats: []float64{0.02}})

	assert.Empty(t, s.Enemies)
	assert.Empty(t, events)
}

func TestEnemyDescendsByMultipliedSpeed(t *testing.T) {
	rules := NewRules(config.DefaultTieredConfig())
	s := NewState(rules.Config())
	s.Enemies = []Enemy{{X: 0, Y: 100, Multiplier: 1.3, Sprite: 1}}

	s, _ = rules.Tick(s, dt, Input{}, noSpawn())

	require.Len(t, s.Enemies, 1)
	assert.InDelta(t, 102.6, s.Enemies[0].Y, 1e-9)
	assert.Equal(t, 0.0, s.Enemies[0].X, "straight enemies keep x")
}

func TestDiagonalEnemyBounces(t *testing.T) {
	cfg := config.DefaultTieredConfig()
	rules := NewRules(cfg)
	maxX := cfg.World.Width - cfg.Enemy.Width

	s := NewState(cfg)
	s.Enemies = []Enemy{
		{X: 1, Y: 0, Pattern: PatternDiagonal, Dir: DirLeft, Multiplier: 1},
		{X: maxX - 1, Y: 0, Pattern: PatternDiagonal, Dir: DirRight, Multiplier: 1},
		{X: 200, Y: 0, Pattern: PatternDiagonal, Dir: DirRight, Multiplier: 2},
	}

	s, _ = rules.Tick(s, dt, Input{}, noSpawn())
	require.Len(t, s.Enemies, 3)

	assert.Equal(t, 0.0, s.Enemies[0].X)
	assert.Equal(t, DirRight, s.Enemies[0].Dir)

	assert.Equal(t, maxX, s.Enemies[1].X)
	assert.Equal(t, DirLeft, s.Enemies[1].Dir)

	// diagonal speed 1.5 x multiplier 2
	assert.Equal(t, 203.0, s.Enemies[2].X)
	assert.Equal(t, 4.0, s.Enemies[2].Y)
	assert.Equal(t, DirRight, s.Enemies[2].Dir)

	s, _ = rules.Tick(s, dt, Input{}, noSpawn())
	assert.Equal(t, 1.5, s.Enemies[0].X)
	assert.Equal(t, maxX-1.5, s.Enemies[1].X)
}

func TestProjectileDestroysEnemy(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s.Projectiles = []Projectile{{X: 237.5, Y: 300}}
	s.Enemies = []Enemy{{X: 215, Y: 280, Multiplier: 1}}

	s, events := rules.Tick(s, dt, Input{}, noSpawn())

	assert.Empty(t, s.Projectiles)
	assert.Empty(t, s.Enemies)
	assert.Equal(t, 1, s.Score)
	require.Equal(t, []core.EventKind{core.EventEnemyDestroyed}, eventKinds(events))
	assert.Equal(t, 1, events[0].Score)
}

func TestOneProjectileDestroysOneEnemy(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s.Projectiles = []Projectile{{X: 100, Y: 300}}
	s.Enemies = []Enemy{
		{X: 80, Y: 280, Multiplier: 1},
		{X: 90, Y: 285, Multiplier: 1},
	}

	s, _ = rules.Tick(s, dt, Input{}, noSpawn())

	assert.Equal(t, 1, s.Score)
	assert.Empty(t, s.Projectiles)
	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 90.0, s.Enemies[0].X)
}

func TestFireThenEnemyOverlap(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())

	// A projectile in flight at (px, py)
	s.Projectiles = []Projectile{{X: 237.5, Y: 300}}
	s, _ = rules.Tick(s, dt, Input{}, noSpawn())
	require.Len(t, s.Projectiles, 1)
	p := s.Projectiles[0]

	// One frame later an enemy appears with an overlapping box
	s.Enemies = []Enemy{{X: p.X - 20, Y: p.Y - 40, Multiplier: 1}}

	s, events := rules.Tick(s, dt, Input{}, noSpawn())

	assert.Equal(t, 1, s.Score)
	assert.Empty(t, s.Projectiles)
	assert.Empty(t, s.Enemies)
	assert.False(t, s.GameOver())
	assert.Equal(t, []core.EventKind{core.EventEnemyDestroyed}, eventKinds(events))
}

func TestEnemyEscapesBottom(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s.Score = 3
	s.Enemies = []Enemy{{X: 0, Y: 639, Multiplier: 1}}

	s, events := rules.Tick(s, dt, Input{}, noSpawn())

	assert.Empty(t, s.Enemies)
	assert.Equal(t, 3, s.Score)
	assert.False(t, s.GameOver())
	assert.Equal(t, []core.EventKind{core.EventEnemyEscaped}, eventKinds(events))
}

func TestEnemyAtBottomEdgeStays(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s.Enemies = []Enemy{{X: 0, Y: 638, Multiplier: 1}}

	s, _ = rules.Tick(s, dt, Input{}, noSpawn())

	// y == height has not crossed yet
	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 640.0, s.Enemies[0].Y)
}

func TestPlayerCollisionEndsSession(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s.Score = 7
	s.Enemies = []Enemy{
		{X: 215, Y: 540, Multiplier: 1},
		{X: 0, Y: 100, Multiplier: 1},
	}

	s, events := rules.Tick(s, dt, Input{Fire: true}, noSpawn())

	assert.True(t, s.GameOver())
	assert.Equal(t, 7, s.Score)
	assert.Empty(t, s.Projectiles, "fire is ignored once the session ends")
	assert.Equal(t, []core.EventKind{core.EventPlayerHit}, eventKinds(events))
	assert.Equal(t, 7, events[0].Score)

	// The collider is destroyed, later enemies are left where they were
	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 100.0, s.Enemies[0].Y)
}

func TestGameOverFreezesState(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s.Enemies = []Enemy{{X: 215, Y: 540, Multiplier: 1}, {X: 0, Y: 100, Multiplier: 1}}
	s, _ = rules.Tick(s, dt, Input{}, noSpawn())
	require.True(t, s.GameOver())

	frozen := s.Clone()
	always := &scriptRand{floats: []float64{0, 0, 0, 0, 0, 0}}
	for range 50 {
		var events []core.Event
		s, events = rules.Tick(s, dt, Input{Left: true, Fire: true}, always)
		require.Empty(t, events)
	}

	assert.Equal(t, frozen, s)
	assert.Len(t, always.floats, 6, "no random draws after game over")
}

func TestTickDoesNotMutateInput(t *testing.T) {
	rules := NewRules(config.DefaultClassicConfig())
	s := NewState(rules.Config())
	s.Projectiles = []Projectile{{X: 10, Y: 300}}
	s.Enemies = []Enemy{{X: 300, Y: 100, Multiplier: 1}}
	before := s.Clone()

	_, _ = rules.Tick(s, dt, Input{Right: true, Fire: true}, noSpawn())

	assert.Equal(t, before, s)
}

func TestTierDraw(t *testing.T) {
	tiers := config.DefaultTieredConfig().Tiers

	tests := []struct {
		name     string
		score    int
		roll     float64
		wantMult float64
		wantSpr  int
	}{
		{"only first tier below 10", 5, 0.99, 1.0, 0},
		{"second tier eligible", 10, 0.75, 1.3, 1},
		{"second tier low roll", 10, 0.25, 1.0, 0},
		{"all tiers top roll", 35, 0.9, 1.6, 2},
		{"all tiers middle roll", 35, 0.5, 1.3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mult, sprite := drawTier(tiers, tt.score, &scriptRand{floats: []float64{tt.roll}})
			assert.Equal(t, tt.wantMult, mult)
			assert.Equal(t, tt.wantSpr, sprite)
		})
	}
}

func TestTierDrawWithoutTiersConsumesNothing(t *testing.T) {
	rng := &scriptRand{floats: []float64{0.5}}
	mult, sprite := drawTier(nil, 100, rng)

	assert.Equal(t, 1.0, mult)
	assert.Equal(t, 0, sprite)
	assert.Len(t, rng.floats, 1)
}

func TestBackground(t *testing.T) {
	bgs := config.DefaultTieredConfig().Backgrounds

	assert.Equal(t, 0, Background(bgs, 0))
	assert.Equal(t, 0, Background(bgs, 9))
	assert.Equal(t, 1, Background(bgs, 10))
	assert.Equal(t, 2, Background(bgs, 25))
	assert.Equal(t, 2, Background(bgs, 44))
	assert.Equal(t, 3, Background(bgs, 45))
	assert.Equal(t, 0, Background(nil, 100))
}

func TestDiagonalGatedByElapsedTime(t *testing.T) {
	rules := NewRules(config.DefaultTieredConfig())

	// Before diagonal_after: spawn, x and tier rolls only
	early := NewState(rules.Config())
	rng := &scriptRand{floats: []float64{0.01, 0.5, 0.1, 0.0}, ints: []int{1}}
	early, _ = rules.Tick(early, dt, Input{}, rng)
	require.Len(t, early.Enemies, 1)
	assert.Equal(t, PatternStraight, early.Enemies[0].Pattern)
	assert.Len(t, rng.floats, 1, "pattern roll must not be drawn before the gate")

	// After the gate a low roll makes the enemy diagonal
	late := NewState(rules.Config())
	late.Elapsed = 20
	rng = &scriptRand{floats: []float64{0.01, 0.5, 0.1, 0.1}, ints: []int{1}}
	late, _ = rules.Tick(late, dt, Input{}, rng)
	require.Len(t, late.Enemies, 1)
	assert.Equal(t, PatternDiagonal, late.Enemies[0].Pattern)
	assert.Equal(t, DirRight, late.Enemies[0].Dir)

	// A high roll keeps it straight
	late = NewState(rules.Config())
	late.Elapsed = 20
	late, _ = rules.Tick(late, dt, Input{}, &scriptRand{floats: []float64{0.01, 0.5, 0.1, 0.9}})
	require.Len(t, late.Enemies, 1)
	assert.Equal(t, PatternStraight, late.Enemies[0].Pattern)
}

func TestRampedSpeedsAfterGrace(t *testing.T) {
	rules := NewRules(config.DefaultRampedConfig())

	s := NewState(rules.Config())
	s.Elapsed = 1
	s.Enemies = []Enemy{{X: 0, Y: 100, Multiplier: 1}}
	s, _ = rules.Tick(s, 0.5, Input{}, noSpawn())
	assert.Equal(t, 102.0, s.Enemies[0].Y, "base speed during grace")

	s = NewState(rules.Config())
	s.Elapsed = 12.5
	s.Enemies = []Enemy{{X: 0, Y: 100, Multiplier: 1}}
	s.Projectiles = []Projectile{{X: 400, Y: 300}}
	s, _ = rules.Tick(s, 0.5, Input{}, noSpawn())
	assert.InDelta(t, 102.5, s.Enemies[0].Y, 1e-9)
	assert.InDelta(t, 293.2, s.Projectiles[0].Y, 1e-9)
}

func TestScoreCountsDestroyedEnemies(t *testing.T) {
	rules := NewRules(config.DefaultRampedConfig())
	s := NewState(rules.Config())
	rng := NewRand(99)
	maxX := rules.Config().World.Width - rules.Config().Player.Width

	prev := 0
	for i := 0; i < 5000 && !s.GameOver(); i++ {
		in := Input{Fire: i%7 == 0, Left: (i/40)%2 == 0, Right: (i/40)%2 == 1}

		var events []core.Event
		s, events = rules.Tick(s, dt, in, rng)

		destroyed := 0
		for _, e := range events {
			if e.Kind == core.EventEnemyDestroyed {
				destroyed++
			}
		}
		require.Equal(t, prev+destroyed, s.Score)
		require.GreaterOrEqual(t, s.Player.X, 0.0)
		require.LessOrEqual(t, s.Player.X, maxX)
		prev = s.Score
	}
}
