package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/platform"
	"github.com/vovakirdan/skyshooter/internal/registry"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

// SessionConfig holds what a menu session needs to start games.
type SessionConfig struct {
	Store   *storage.Store
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Player  string
	Game    GameOptions
}

// SessionModel manages the full session flow: menu -> game -> menu,
// with the scoreboard reachable from the menu.
// Used by the local menu command and by every SSH connection.
type SessionModel struct {
	cfg        SessionConfig
	sessionID  string
	logger     *log.Logger
	menu       MenuModel
	scoreboard *ScoreboardModel
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	sessionID := uuid.NewString()
	logger := cfg.Logger
	if logger != nil {
		logger = logger.With("session", sessionID)
	}
	cfg.Game.ExitOnBack = false

	return SessionModel{
		cfg:       cfg,
		sessionID: sessionID,
		logger:    logger,
		menu:      NewMenuModel(cfg.Store, cfg.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a finished game
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.cfg.Store, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		m.scoreboard = &sb
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered profiles
			m.menu = NewMenuModel(m.cfg.Store, m.cfg.Runtime)
			return m, nil
		}

		runner := platform.NewRunner(game, m.cfg.Store, m.logger, m.cfg.Runtime, m.cfg.Player)
		gameModel := NewGameModel(runner, m.cfg.Game)
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates while the scoreboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.menu = NewMenuModel(m.cfg.Store, m.cfg.Runtime)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		// Rebuild the menu so best scores are fresh
		m.menu = NewMenuModel(m.cfg.Store, m.cfg.Runtime)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// ID returns the session UUID used in logs.
func (m SessionModel) ID() string {
	return m.sessionID
}

// RunSession runs the menu flow in the local terminal until the player quits.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
