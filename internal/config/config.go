// Package config provides YAML/TOML profile loading and difficulty management
// for the shooter. A profile fixes every constant the simulation uses, so the
// three game variants differ only in data.
package config

// ShooterConfig contains all configuration for one shooter profile.
// Sizes, positions and speeds are in world units; speeds are per tick.
type ShooterConfig struct {
	Name        string           `yaml:"name" toml:"name"`
	Title       string           `yaml:"title" toml:"title"`
	World       WorldConfig      `yaml:"world" toml:"world"`
	Player      PlayerConfig     `yaml:"player" toml:"player"`
	Projectile  ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Enemy       EnemyConfig      `yaml:"enemy" toml:"enemy"`
	Tiers       []EnemyTier      `yaml:"tiers" toml:"tiers"`
	Backgrounds []BackgroundTier `yaml:"backgrounds" toml:"backgrounds"`
	Patterns    PatternConfig    `yaml:"patterns" toml:"patterns"`
	Difficulty  DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the size of the playfield.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"` // Gap between craft and bottom edge
}

// ProjectileConfig defines the player's projectiles.
type ProjectileConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// EnemyConfig defines the base enemy craft.
type EnemyConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	SpawnChance float64 `yaml:"spawn_chance" toml:"spawn_chance"` // Probability per tick
}

// EnemyTier is one entry of the score-tiered enemy draw.
// A tier is eligible once the score reaches MinScore; among eligible tiers
// one is picked with probability proportional to Weight.
type EnemyTier struct {
	MinScore        int     `yaml:"min_score" toml:"min_score"`
	Weight          float64 `yaml:"weight" toml:"weight"`
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
	Sprite          int     `yaml:"sprite" toml:"sprite"`
}

// BackgroundTier selects the background shown once the score reaches MinScore.
type BackgroundTier struct {
	MinScore   int `yaml:"min_score" toml:"min_score"`
	Background int `yaml:"background" toml:"background"`
}

// PatternConfig controls diagonal movement.
type PatternConfig struct {
	Enabled        bool    `yaml:"enabled" toml:"enabled"`
	DiagonalAfter  float64 `yaml:"diagonal_after" toml:"diagonal_after"`   // Seconds of play before diagonals may appear
	DiagonalChance float64 `yaml:"diagonal_chance" toml:"diagonal_chance"` // Probability a spawn is diagonal
	DiagonalSpeed  float64 `yaml:"diagonal_speed" toml:"diagonal_speed"`
}

// DifficultyConfig defines the time-based difficulty ramp.
// After GraceSeconds every ramped speed grows linearly with elapsed time:
// speed = base + rate * (elapsed - grace), capped at max when max > 0.
type DifficultyConfig struct {
	Enabled      bool        `yaml:"enabled" toml:"enabled"`
	GraceSeconds float64     `yaml:"grace_seconds" toml:"grace_seconds"`
	EnemySpeed   RampSetting `yaml:"enemy_speed" toml:"enemy_speed"`
	Diagonal     RampSetting `yaml:"diagonal_speed" toml:"diagonal_speed"`
	Projectile   RampSetting `yaml:"projectile_speed" toml:"projectile_speed"`
}

// RampSetting is the linear growth of one speed.
type RampSetting struct {
	Rate float64 `yaml:"rate" toml:"rate"` // Units per tick gained per second of play
	Max  float64 `yaml:"max" toml:"max"`   // 0 means uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Enemy.SpawnChance *= 0.75
		scaleRamp(&cfg.Difficulty, 0.5)
	case DifficultyHard:
		cfg.Enemy.SpawnChance = min(1, cfg.Enemy.SpawnChance*1.5)
		scaleRamp(&cfg.Difficulty, 1.5)
	}
}

func scaleRamp(d *DifficultyConfig, factor float64) {
	d.EnemySpeed.Rate *= factor
	d.Diagonal.Rate *= factor
	d.Projectile.Rate *= factor
}
