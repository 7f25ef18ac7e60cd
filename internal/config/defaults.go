package config

import (
	_ "embed"
)

// Profile names shipped with the game.
const (
	ProfileClassic = "classic"
	ProfileTiered  = "tiered"
	ProfileRamped  = "ramped"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/tiered.yaml
var defaultTieredYAML []byte

//go:embed defaults/ramped.yaml
var defaultRampedYAML []byte

// Profiles returns the built-in profile names in menu order.
func Profiles() []string {
	return []string{ProfileClassic, ProfileTiered, ProfileRamped}
}

// DefaultClassicConfig returns the classic profile: the base fixed rules.
func DefaultClassicConfig() ShooterConfig {
	return ShooterConfig{
		Name:  ProfileClassic,
		Title: "Sky Shooter Classic",
		World: WorldConfig{Width: 480, Height: 640},
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			Speed:        5,
			BottomMargin: 10,
		},
		Projectile: ProjectileConfig{Width: 5, Height: 15, Speed: 4},
		Enemy: EnemyConfig{
			Width:       50,
			Height:      50,
			Speed:       2,
			SpawnChance: 0.02,
		},
	}
}

// DefaultTieredConfig returns the tiered profile: score-driven sprites,
// backgrounds and speed multipliers, plus diagonal enemies.
func DefaultTieredConfig() ShooterConfig {
	cfg := DefaultClassicConfig()
	cfg.Name = ProfileTiered
	cfg.Title = "Sky Shooter Tiered"
	cfg.Projectile = ProjectileConfig{Width: 8, Height: 20, Speed: 6}
	cfg.Tiers = []EnemyTier{
		{MinScore: 0, Weight: 1, SpeedMultiplier: 1.0, Sprite: 0},
		{MinScore: 10, Weight: 1, SpeedMultiplier: 1.3, Sprite: 1},
		{MinScore: 30, Weight: 1, SpeedMultiplier: 1.6, Sprite: 2},
	}
	cfg.Backgrounds = []BackgroundTier{
		{MinScore: 10, Background: 1},
		{MinScore: 25, Background: 2},
		{MinScore: 45, Background: 3},
	}
	cfg.Patterns = PatternConfig{
		Enabled:        true,
		DiagonalAfter:  10,
		DiagonalChance: 0.3,
		DiagonalSpeed:  1.5,
	}
	return cfg
}

// DefaultRampedConfig returns the ramped profile: tiered rules plus the
// time-based difficulty ramp.
func DefaultRampedConfig() ShooterConfig {
	cfg := DefaultTieredConfig()
	cfg.Name = ProfileRamped
	cfg.Title = "Sky Shooter Ramped"
	cfg.Difficulty = DifficultyConfig{
		Enabled:      true,
		GraceSeconds: 3,
		EnemySpeed:   RampSetting{Rate: 0.05, Max: 8},
		Diagonal:     RampSetting{Rate: 0.03, Max: 5},
		Projectile:   RampSetting{Rate: 0.08, Max: 14},
	}
	return cfg
}

// DefaultConfig returns the hard-coded config for a profile.
// The second result is false for unknown profiles.
func DefaultConfig(profile string) (ShooterConfig, bool) {
	switch profile {
	case ProfileClassic:
		return DefaultClassicConfig(), true
	case ProfileTiered:
		return DefaultTieredConfig(), true
	case ProfileRamped:
		return DefaultRampedConfig(), true
	default:
		return ShooterConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a profile.
func GetDefaultYAML(profile string) []byte {
	switch profile {
	case ProfileClassic:
		return defaultClassicYAML
	case ProfileTiered:
		return defaultTieredYAML
	case ProfileRamped:
		return defaultRampedYAML
	default:
		return nil
	}
}
