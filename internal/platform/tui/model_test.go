package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/platform"
)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestModel(t *testing.T, opts GameOptions) (GameModel, *skyshooter.Game, *testClock) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	game := skyshooter.New("classic")
	runner := platform.NewRunner(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, "tester")
	m := NewGameModel(runner, opts)
	clock := &testClock{t: time.Unix(1000, 0)}
	m.now = clock.now
	m.Init()
	require.NoError(t, game.LoadErr())
	return m, game, clock
}

// tick builds a tick message from the model's own tick chain.
func (m GameModel) tick(at time.Time) TickMsg {
	return TickMsg{At: at, Gen: m.gen}
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	gm, ok := updated.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func TestGameModelFire(t *testing.T) {
	m, game, clock := newTestModel(t, GameOptions{})

	m, _ = send(t, m, spaceKey)
	m, cmd := send(t, m, m.tick(clock.t))
	assert.NotNil(t, cmd, "tick should schedule the next tick")
	assert.Len(t, game.Session().Projectiles, 1)

	// Fire is one-shot
	send(t, m, m.tick(clock.t))
	assert.Len(t, game.Session().Projectiles, 1)
}

func TestGameModelHeldMovement(t *testing.T) {
	m, game, clock := newTestModel(t, GameOptions{Hold: 100 * time.Millisecond})
	startX := game.Session().Player.X

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	clock.t = clock.t.Add(16 * time.Millisecond)
	m, _ = send(t, m, m.tick(clock.t))
	clock.t = clock.t.Add(16 * time.Millisecond)
	m, _ = send(t, m, m.tick(clock.t))
	assert.InDelta(t, startX-10, game.Session().Player.X, 1e-9)

	// Released once the hold window passes
	clock.t = clock.t.Add(time.Second)
	send(t, m, m.tick(clock.t))
	assert.InDelta(t, startX-10, game.Session().Player.X, 1e-9)
}

func TestGameModelPauseReleasesHeldKeys(t *testing.T) {
	m, game, clock := newTestModel(t, GameOptions{Hold: 100 * time.Millisecond})
	startX := game.Session().Player.X

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, m.tick(clock.t))
	require.InDelta(t, startX-5, game.Session().Player.X, 1e-9)

	m, _ = send(t, m, runeKey('p'))
	clock.t = clock.t.Add(16 * time.Millisecond)
	m, _ = send(t, m, m.tick(clock.t))
	require.True(t, m.runner.State().Paused)

	// Resume inside the hold window: left is no longer held
	m, _ = send(t, m, runeKey('p'))
	clock.t = clock.t.Add(16 * time.Millisecond)
	send(t, m, m.tick(clock.t))
	assert.False(t, m.runner.State().Paused)
	assert.InDelta(t, startX-5, game.Session().Player.X, 1e-9)
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m, game, clock := newTestModel(t, GameOptions{})
	other, _, _ := newTestModel(t, GameOptions{})
	require.NotEqual(t, m.gen, other.gen)

	_, cmd := send(t, m, other.tick(clock.t))
	assert.Nil(t, cmd, "a foreign tick must not start a second chain")
	assert.Zero(t, game.Session().Ticks)

	_, cmd = send(t, m, m.tick(clock.t))
	assert.NotNil(t, cmd)
	assert.Equal(t, uint64(1), game.Session().Ticks)
}

func TestGameModelBackOnlyWhenPaused(t *testing.T) {
	m, _, clock := newTestModel(t, GameOptions{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored while playing")

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, m.tick(clock.t))
	require.True(t, m.runner.State().Paused)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd, "embedded model leaves quitting to the session")
}

func TestGameModelExitOnBack(t *testing.T) {
	m, _, clock := newTestModel(t, GameOptions{ExitOnBack: true})

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, m.tick(clock.t))
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
}

func TestGameModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t, GameOptions{})

	m, cmd := send(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	m, game, clock := newTestModel(t, GameOptions{})

	for range 5 {
		m, _ = send(t, m, m.tick(clock.t))
	}
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, uint64(5), game.Session().Ticks)
	assert.Equal(t, 100, m.runner.Config().ScreenW)
	assert.Equal(t, 30, len(strings.Split(m.View(), "\n")))
}

func TestGameModelView(t *testing.T) {
	m, _, _ := newTestModel(t, GameOptions{})
	assert.Contains(t, m.View(), "Score: 0")
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _, _ := newTestModel(t, GameOptions{ScreenshotDir: dir})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "classic_"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Score: 0")
}

func TestGameModelScreenshotDisabled(t *testing.T) {
	m, _, _ := newTestModel(t, GameOptions{})
	assert.NotPanics(t, func() { send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS}) })
}
