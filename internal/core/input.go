package core

// Action is a semantic input, independent of the device that produced it.
// Hosts translate terminal keys, window keys or browser events into actions.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // held: move left
	ActionRight          // held: move right
	ActionFire           // one-shot: launch a projectile
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // menu selection
	ActionBack           // leave a paused or finished session
	ActionPause          // toggle pause
	ActionRestart        // new session after game over
	ActionExit           // leave the host

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Fire", "Up", "Down",
	"Confirm", "Back", "Pause", "Restart", "Exit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions for one tick. Left and Right stay set
// on every tick their key is held; Fire, Pause and Restart are set on a
// single tick. The zero value is an empty frame and frames copy by value.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set adds an action. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action is in the frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear removes every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
