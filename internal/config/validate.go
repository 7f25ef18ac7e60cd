package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks that a profile can drive the simulation.
// All problems are reported together.
func (c ShooterConfig) Validate() error {
	var errs []error

	// NaN and infinities slip through every ordered comparison
	finite := func(name string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number, got %v", name, v))
			return false
		}
		return true
	}
	positive := func(name string, v float64) {
		if finite(name, v) && v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	unit := func(name string, v float64) {
		if finite(name, v) && (v < 0 || v > 1) {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)
	positive("projectile.speed", c.Projectile.Speed)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.speed", c.Enemy.Speed)

	if finite("player.bottom_margin", c.Player.BottomMargin) && c.Player.BottomMargin < 0 {
		errs = append(errs, fmt.Errorf("player.bottom_margin must not be negative, got %v", c.Player.BottomMargin))
	}
	if c.Player.Width > c.World.Width || c.Player.Height+c.Player.BottomMargin > c.World.Height {
		errs = append(errs, errors.New("player does not fit in the world"))
	}
	if c.Enemy.Width > c.World.Width {
		errs = append(errs, errors.New("enemy is wider than the world"))
	}
	unit("enemy.spawn_chance", c.Enemy.SpawnChance)

	for i, t := range c.Tiers {
		positive(fmt.Sprintf("tiers[%d].weight", i), t.Weight)
		positive(fmt.Sprintf("tiers[%d].speed_multiplier", i), t.SpeedMultiplier)
		if i > 0 && t.MinScore < c.Tiers[i-1].MinScore {
			errs = append(errs, fmt.Errorf("tiers[%d].min_score is lower than the previous tier", i))
		}
	}
	if len(c.Tiers) > 0 && c.Tiers[0].MinScore != 0 {
		errs = append(errs, errors.New("tiers[0].min_score must be 0 so a spawn always has a tier"))
	}
	for i, b := range c.Backgrounds {
		if i > 0 && b.MinScore < c.Backgrounds[i-1].MinScore {
			errs = append(errs, fmt.Errorf("backgrounds[%d].min_score is lower than the previous entry", i))
		}
	}

	if c.Patterns.Enabled {
		positive("patterns.diagonal_speed", c.Patterns.DiagonalSpeed)
		unit("patterns.diagonal_chance", c.Patterns.DiagonalChance)
	}

	if d := c.Difficulty; d.Enabled {
		if finite("difficulty.grace_seconds", d.GraceSeconds) && d.GraceSeconds < 0 {
			errs = append(errs, errors.New("difficulty.grace_seconds must not be negative"))
		}
		checkRamp := func(name string, base float64, s RampSetting) {
			if finite("difficulty."+name+".rate", s.Rate) && s.Rate < 0 {
				errs = append(errs, fmt.Errorf("difficulty.%s.rate must not be negative", name))
			}
			if finite("difficulty."+name+".max", s.Max) && s.Max != 0 && s.Max < base {
				errs = append(errs, fmt.Errorf("difficulty.%s.max is below the base speed", name))
			}
		}
		checkRamp("enemy_speed", c.Enemy.Speed, d.EnemySpeed)
		checkRamp("diagonal_speed", c.Patterns.DiagonalSpeed, d.Diagonal)
		checkRamp("projectile_speed", c.Projectile.Speed, d.Projectile)
	}

	return errors.Join(errs...)
}
