// Package registry maps profile IDs to game constructors. Game packages
// register their profiles from init(); hosts look them up by ID and never
// import a game package directly.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// Game is what every host drives. Implementations hold pure simulation
// state: no Bubble Tea, no ebiten, no sockets. Hosts own input mapping,
// timing and drawing.
type Game interface {
	// ID is the profile name used on the command line and in score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh session. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into a character grid.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// Summarizer is implemented by games that can describe their profile in
// one line for pickers and listings.
type Summarizer interface {
	Summary() string
}

// ProfileInfo describes a registered profile.
type ProfileInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    ProfileInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	order   []string
)

// Register adds a profile. Profiles are listed in registration order.
// Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: profile %q already registered", id))
	}

	sample := f()
	info := ProfileInfo{ID: id, Title: sample.Title()}
	if s, ok := sample.(Summarizer); ok {
		info.Summary = s.Summary()
	}

	entries[id] = entry{info: info, factory: f}
	order = append(order, id)
}

// List returns every registered profile in registration order.
func List() []ProfileInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ProfileInfo, 0, len(order))
	for _, id := range order {
		out = append(out, entries[id].info)
	}
	return out
}

// IDs returns the registered profile IDs in registration order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Clone(order)
}

// Create returns a new game for a profile.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown profile %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a profile is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
