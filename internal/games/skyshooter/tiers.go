package skyshooter

import "github.com/vovakirdan/skyshooter/internal/config"

// drawTier picks the tier of a new enemy. Tiers whose MinScore has been
// reached are eligible, weighted by Weight. With no tiers configured the
// enemy gets multiplier 1 and sprite 0 and no random draw is consumed.
func drawTier(tiers []config.EnemyTier, score int, rng RandSource) (multiplier float64, sprite int) {
	var total float64
	for _, t := range tiers {
		if t.MinScore <= score {
			total += t.Weight
		}
	}
	if total <= 0 {
		return 1, 0
	}

	roll := rng.Float64() * total
	var last config.EnemyTier
	for _, t := range tiers {
		if t.MinScore > score {
			continue
		}
		last = t
		if roll < t.Weight {
			return t.SpeedMultiplier, t.Sprite
		}
		roll -= t.Weight
	}
	// Rounding left roll just past the final weight
	return last.SpeedMultiplier, last.Sprite
}

// Background returns the background index for a score: the entry with the
// highest MinScore reached, or 0 before the first threshold.
func Background(backgrounds []config.BackgroundTier, score int) int {
	bg := 0
	for _, b := range backgrounds {
		if score >= b.MinScore {
			bg = b.Background
		}
	}
	return bg
}
