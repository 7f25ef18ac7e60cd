package skyshooter

import "math/rand"

// RandSource supplies every random decision the simulation makes.
// *rand.Rand satisfies it; tests script it.
type RandSource interface {
	Float64() float64 // In [0, 1)
	Intn(n int) int   // In [0, n)
}

// NewRand returns a seeded RandSource. Equal seeds give equal sessions.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}
