package skyshooter

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// EntitySnapshot is one entity in world units.
type EntitySnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Sprite int     `json:"sprite,omitempty"`
}

// Snapshot is a host-neutral picture of a session. The browser host sends
// it as the frame payload; tests compare hashes for determinism.
type Snapshot struct {
	Tick        uint64           `json:"tick"`
	Score       int              `json:"score"`
	GameOver    bool             `json:"game_over"`
	Paused      bool             `json:"paused"`
	Background  int              `json:"background"`
	WorldW      float64          `json:"world_w"`
	WorldH      float64          `json:"world_h"`
	Player      EntitySnapshot   `json:"player"`
	Projectiles []EntitySnapshot `json:"projectiles"`
	Enemies     []EntitySnapshot `json:"enemies"`
}

// Snapshot returns the current session as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	cfg := g.rules.Config()
	s := g.state

	snap := Snapshot{
		Tick:        s.Ticks,
		Score:       s.Score,
		GameOver:    s.GameOver(),
		Paused:      g.paused,
		Background:  Background(cfg.Backgrounds, s.Score),
		WorldW:      cfg.World.Width,
		WorldH:      cfg.World.Height,
		Player:      EntitySnapshot{X: s.Player.X, Y: s.Player.Y, W: cfg.Player.Width, H: cfg.Player.Height},
		Projectiles: make([]EntitySnapshot, 0, len(s.Projectiles)),
		Enemies:     make([]EntitySnapshot, 0, len(s.Enemies)),
	}
	for _, p := range s.Projectiles {
		snap.Projectiles = append(snap.Projectiles, EntitySnapshot{
			X: p.X, Y: p.Y, W: cfg.Projectile.Width, H: cfg.Projectile.Height,
		})
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EntitySnapshot{
			X: e.X, Y: e.Y, W: cfg.Enemy.Width, H: cfg.Enemy.Height, Sprite: e.Sprite,
		})
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) { put(math.Float64bits(f)) }
	putE := func(e EntitySnapshot) {
		putF(e.X)
		putF(e.Y)
		put(uint64(e.Sprite)) //#nosec G115 -- hash computation
	}

	put(snap.Tick)
	put(uint64(snap.Score)) //#nosec G115 -- hash computation
	if snap.GameOver {
		put(1)
	} else {
		put(0)
	}
	putE(snap.Player)
	put(uint64(len(snap.Projectiles)))
	for _, p := range snap.Projectiles {
		putE(p)
	}
	put(uint64(len(snap.Enemies)))
	for _, e := range snap.Enemies {
		putE(e)
	}

	return h.Sum64()
}
