package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return NewSessionModel(SessionConfig{
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
		Player:  "tester",
	})
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	sm, ok := updated.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, nil)
	assert.NotEmpty(t, m.ID())
	assert.Contains(t, m.View(), "S K Y")

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel, "enter should start the selected profile")
	assert.NotNil(t, cmd, "game start schedules the first tick")
	assert.Contains(t, m.View(), "Score: 0")

	m, _ = sessionSend(t, m, runeKey('p'))
	m, _ = sessionSend(t, m, m.gameModel.tick(time.Now()))
	stale := m.gameModel.tick(time.Now())
	m, cmd = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.gameModel)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Select a profile")

	// A stale tick from the finished game is ignored by the menu
	m, cmd = sessionSend(t, m, stale)
	assert.Nil(t, cmd)
	assert.Nil(t, m.gameModel)
}

func TestSessionStaleTickAfterReselect(t *testing.T) {
	m := newTestSession(t, nil)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)
	m, _ = sessionSend(t, m, runeKey('p'))
	m, _ = sessionSend(t, m, m.gameModel.tick(time.Now()))
	stale := m.gameModel.tick(time.Now())
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, m.gameModel)

	// The next game starts before the old chain's tick arrives
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)
	game, ok := m.gameModel.runner.Game().(*skyshooter.Game)
	require.True(t, ok)

	m, cmd := sessionSend(t, m, stale)
	assert.Nil(t, cmd, "the stale tick must not start a second chain")
	assert.Zero(t, game.Session().Ticks)

	_, cmd = sessionSend(t, m, m.gameModel.tick(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, uint64(1), game.Session().Ticks)
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveScore(storage.ScoreEntry{GameID: "classic", Player: "ada", Score: 12, DurationSecs: 65})
	require.NoError(t, err)

	m := newTestSession(t, store)
	assert.Contains(t, m.View(), "best 12")

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scoreboard)
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "ada")
	assert.Contains(t, view, "1:05")

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.scoreboard)
	assert.Contains(t, m.View(), "Select a profile")
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, nil)

	m, cmd := sessionSend(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:   "-",
		5:   "0:05",
		65:  "1:05",
		600: "10:00",
	}
	for secs, want := range tests {
		assert.Equal(t, want, formatDuration(secs), "formatDuration(%d)", secs)
	}
}
