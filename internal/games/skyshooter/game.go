// Package skyshooter implements a vertical arcade shooter.
// The player craft slides along the bottom edge and fires upward at enemy
// craft descending from the top. One enemy reaching the player ends the run.
//
// The simulation is Rules.Tick, a pure function over State. Game wraps it
// in the registry.Game interface so the platform hosts can drive it.
package skyshooter

import (
	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is one playable profile of the shooter.
type Game struct {
	profile string
	title   string

	rules   *Rules
	state   State
	rng     RandSource
	paused  bool
	events  []core.Event
	loadErr error

	runtime core.RuntimeConfig
}

// New creates a game for a profile. Reset must be called before Step.
func New(profile string) *Game {
	g := &Game{profile: profile, title: "Sky Shooter"}
	if cfg, ok := config.DefaultConfig(profile); ok {
		g.title = cfg.Title
	}
	return g
}

// ID returns the profile name, used for CLI commands and score storage.
func (g *Game) ID() string {
	return g.profile
}

// Title returns the display name for this profile.
func (g *Game) Title() string {
	return g.title
}

var summaries = map[string]string{
	config.ProfileClassic: "Straight drops at fixed speed",
	config.ProfileTiered:  "Tougher craft as the score climbs",
	config.ProfileRamped:  "Tiers, diagonals and rising speed",
}

// Summary describes the profile in one line.
func (g *Game) Summary() string {
	if s, ok := summaries[g.profile]; ok {
		return s
	}
	return "Custom profile"
}

// Reset loads the profile and starts a fresh session.
// A profile that fails to load falls back to the built-in default;
// the error is kept for the host to report through LoadErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.profile, configPath)
	g.loadErr = err
	if err != nil {
		if def, ok := config.DefaultConfig(g.profile); ok {
			cfg = def
		} else {
			cfg = config.DefaultClassicConfig()
		}
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if cfg.Title != "" {
		g.title = cfg.Title
	}

	g.rules = NewRules(cfg)
	g.state = NewState(cfg)
	g.rng = NewRand(runtime.Seed)
	g.paused = false
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.state.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.state, g.events = g.rules.Tick(g.state, g.runtime.TickSeconds(), InputFromFrame(in), g.rng)

	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver(),
		Paused:   g.paused,
	}
}

// Session returns a copy of the simulation state.
func (g *Game) Session() State {
	return g.state.Clone()
}

// Config returns the profile in effect for the current session.
func (g *Game) Config() config.ShooterConfig {
	return g.rules.Config()
}

// LoadErr returns the error from the last profile load, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Register every built-in profile with the registry
func init() {
	for _, profile := range config.Profiles() {
		registry.Register(profile, func() registry.Game {
			return New(profile)
		})
	}
}
