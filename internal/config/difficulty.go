package config

// Speeds is the set of speeds the simulation uses for one tick.
type Speeds struct {
	Enemy      float64 // Base vertical enemy speed
	Diagonal   float64 // Base horizontal speed of diagonal enemies
	Projectile float64 // Upward projectile speed
}

// DifficultyManager computes the current speeds from elapsed session time.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base Speeds
}

// NewDifficultyManager creates a difficulty manager for a profile.
func NewDifficultyManager(cfg ShooterConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg: cfg.Difficulty,
		base: Speeds{
			Enemy:      cfg.Enemy.Speed,
			Diagonal:   cfg.Patterns.DiagonalSpeed,
			Projectile: cfg.Projectile.Speed,
		},
	}
}

// IsEnabled returns whether the ramp is active for this profile.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Base returns the speeds before any ramp is applied.
func (d *DifficultyManager) Base() Speeds {
	return d.base
}

// Speeds returns the speeds for the given elapsed session time in seconds.
// During the grace period, or when the ramp is disabled, the base speeds apply.
func (d *DifficultyManager) Speeds(elapsed float64) Speeds {
	if !d.cfg.Enabled || elapsed <= d.cfg.GraceSeconds {
		return d.base
	}
	t := elapsed - d.cfg.GraceSeconds
	return Speeds{
		Enemy:      ramp(d.base.Enemy, d.cfg.EnemySpeed, t),
		Diagonal:   ramp(d.base.Diagonal, d.cfg.Diagonal, t),
		Projectile: ramp(d.base.Projectile, d.cfg.Projectile, t),
	}
}

func ramp(base float64, s RampSetting, t float64) float64 {
	v := base + s.Rate*t
	if s.Max > 0 && v > s.Max {
		return s.Max
	}
	return v
}
