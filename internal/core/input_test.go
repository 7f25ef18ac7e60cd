package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if f != NewInputFrame() {
		t.Fatal("zero frame should equal a new frame")
	}

	f.Set(ActionLeft)
	f.Set(ActionFire)
	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Right was never set")
	}

	f.Set(ActionNone)
	f.Set(Action(200))
	if f.Has(ActionNone) || f.Has(Action(200)) {
		t.Error("None and unknown actions are ignored")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	c := f.Clone()
	f.Clear()

	if f.Has(ActionPause) {
		t.Error("Clear should remove every action")
	}
	if !c.Has(ActionPause) {
		t.Error("clone should keep its actions after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionFire:    "Fire",
		ActionRestart: "Restart",
		ActionExit:    "Exit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
