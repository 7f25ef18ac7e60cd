package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/platform"
)

// GameOptions tunes a GameModel for its host.
type GameOptions struct {
	// Hold is the key-hold window for movement keys (0 = DefaultHoldWindow).
	Hold time.Duration

	// ScreenshotDir receives Ctrl+S screenshots. Empty disables screenshots.
	ScreenshotDir string

	// ExitOnBack quits the program on Back instead of returning to a menu.
	ExitOnBack bool
}

// DefaultScreenshotDir returns ~/.skyshooter/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyshooter", "screenshots")
}

// GameModel is the Bubble Tea model for playing one profile.
// The runner owns the session; the model maps keys and draws frames.
type GameModel struct {
	runner     *platform.Runner
	screen     *core.Screen
	keys       *KeyMapper
	inputFrame core.InputFrame
	opts       GameOptions
	now        func() time.Time
	gen        uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The session starts in Init.
func NewGameModel(runner *platform.Runner, opts GameOptions) GameModel {
	cfg := runner.Config()
	return GameModel{
		runner:     runner,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       NewKeyMapper(opts.Hold),
		inputFrame: core.NewInputFrame(),
		opts:       opts,
		now:        time.Now,
		gen:        nextTickGen(),
	}
}

// Init starts the session and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.runner.Start()
	return tickCmd(m.runner.Config().TickRate, m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runner.Resize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		// A tick chain from an earlier game in the same program
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if m.opts.ScreenshotDir != "" {
			m.saveScreenshot()
		}
		return m, nil
	}

	// B or Esc leaves a paused or finished session
	state := m.runner.State()
	if action, _ := m.keys.MapKey(msg); action == core.ActionBack && (state.GameOver || state.Paused) {
		m.backToMenu = true
		if m.opts.ExitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.Press(msg, m.now(), &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick steps the session with the keys pressed or held since the last tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.keys.Held(m.now(), &m.inputFrame)
	res := m.runner.Step(m.inputFrame)
	m.inputFrame.Clear()

	// Movement keys do not survive a pause or a game over
	if res.State.Paused || res.State.GameOver {
		m.keys.Release()
	}

	return m, tickCmd(m.runner.Config().TickRate, m.gen)
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.runner.Game().Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.opts.ScreenshotDir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.runner.Game().ID(), timestamp)
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.runner.Game().Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one session in the terminal until the player quits.
func Run(runner *platform.Runner, opts GameOptions) error {
	opts.ExitOnBack = true
	model := NewGameModel(runner, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
