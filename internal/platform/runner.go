// Package platform holds the session driver shared by every host.
// A host (terminal, SSH, window, browser) translates its own input into
// core.InputFrame, calls Runner.Step on its own schedule, and draws the
// result. The Runner owns restart, score saving and logging.
package platform

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/registry"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

// loadErrorer is implemented by games that fall back to defaults when
// their config cannot be loaded.
type loadErrorer interface {
	LoadErr() error
}

// Runner drives one game for one player across restarts.
type Runner struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	player string

	fixedSeed bool
	runID     string
	started   time.Time
	state     core.GameState
	saved     bool

	now func() time.Time
}

// NewRunner creates a runner. store and logger may be nil; a nil store
// disables score saving and a nil logger discards output.
// A zero seed in cfg is replaced by the clock on every (re)start.
func NewRunner(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return &Runner{
		game:      game,
		store:     store,
		logger:    logger,
		config:    cfg,
		player:    player,
		fixedSeed: cfg.Seed != 0,
		now:       time.Now,
	}
}

// Start begins a new session.
func (r *Runner) Start() {
	if !r.fixedSeed {
		r.config.Seed = r.now().UnixNano()
	}
	r.game.Reset(r.config)
	if le, ok := r.game.(loadErrorer); ok && le.LoadErr() != nil {
		r.logger.Warn("profile config rejected, using defaults", "game", r.game.ID(), "error", le.LoadErr())
	}
	r.state = r.game.State()
	r.runID = uuid.NewString()
	r.started = r.now()
	r.saved = false

	r.logger.Info("session started",
		"game", r.game.ID(),
		"player", r.player,
		"run", r.runID,
		"seed", r.config.Seed,
	)
}

// Restart ends the current session and starts a fresh one.
func (r *Runner) Restart() {
	r.logger.Info("session restarted", "game", r.game.ID(), "player", r.player, "previous_score", r.state.Score)
	r.Start()
}

// Step advances the game by one tick. A Restart action restarts a finished
// session instead of stepping it.
func (r *Runner) Step(in core.InputFrame) core.StepResult {
	if r.state.GameOver && in.Has(core.ActionRestart) {
		r.Restart()
		return core.StepResult{State: r.state}
	}

	result := r.game.Step(in)
	r.state = result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventEnemyDestroyed, core.EventEnemyEscaped, core.EventPlayerHit:
			r.logger.Debug(string(ev.Kind), "game", r.game.ID(), "score", ev.Score)
		}
	}

	if r.state.GameOver && !r.saved {
		r.saved = true
		r.finish()
	}

	return result
}

// finish logs the game over and saves a positive score once.
func (r *Runner) finish() {
	duration := r.now().Sub(r.started)
	r.logger.Info("game over",
		"game", r.game.ID(),
		"player", r.player,
		"score", r.state.Score,
		"duration", duration.Round(time.Second),
	)

	if r.store == nil || r.state.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID:       r.game.ID(),
		Player:       r.player,
		RunID:        r.runID,
		Score:        r.state.Score,
		DurationSecs: int(duration.Seconds()),
	}
	if _, err := r.store.SaveScore(entry); err != nil {
		r.logger.Warn("could not save score", "game", r.game.ID(), "error", err)
	}
}

// Game returns the game being driven.
func (r *Runner) Game() registry.Game {
	return r.game
}

// State returns the state after the last step.
func (r *Runner) State() core.GameState {
	return r.state
}

// RunID returns the UUID of the current session.
func (r *Runner) RunID() string {
	return r.runID
}

// Config returns the runtime config of the current session.
func (r *Runner) Config() core.RuntimeConfig {
	return r.config
}

// Resize updates the screen size used for rendering. The simulation runs in
// world units and is not reset.
func (r *Runner) Resize(w, h int) {
	r.config.ScreenW = w
	r.config.ScreenH = h
}
