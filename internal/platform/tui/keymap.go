package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press or auto-repeat. Terminals never report key release.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions and emulates
// held movement keys from press/repeat timestamps.
type KeyMapper struct {
	hold      time.Duration
	lastLeft  time.Time
	lastRight time.Time
}

// NewKeyMapper creates a key mapper. A non-positive hold uses DefaultHoldWindow.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyMapper{hold: hold}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionExit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Press records a key press into frame. Movement keys start or extend a
// hold; pressing one direction releases the other. One-shot actions are
// set directly. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.lastLeft = now
		km.lastRight = time.Time{}
	case core.ActionRight:
		km.lastRight = now
		km.lastLeft = time.Time{}
	default:
		frame.Set(action)
	}
	return isQuit
}

// Held sets the movement actions still inside the hold window at now.
func (km *KeyMapper) Held(now time.Time, frame *core.InputFrame) {
	if km.holding(km.lastLeft, now) {
		frame.Set(core.ActionLeft)
	}
	if km.holding(km.lastRight, now) {
		frame.Set(core.ActionRight)
	}
}

// Release drops all held keys.
func (km *KeyMapper) Release() {
	km.lastLeft = time.Time{}
	km.lastRight = time.Time{}
}

func (km *KeyMapper) holding(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < km.hold
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
