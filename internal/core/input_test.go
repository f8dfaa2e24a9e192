package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}
	if f.Has(ActionUp) {
		t.Error("zero frame should not report actions")
	}

	f.Set(ActionUp)
	f.Set(ActionUndo)
	if !f.Has(ActionUp) || !f.Has(ActionUndo) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionUndo) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameQueue(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionRight)
	f.Push(ActionUndo)
	f.Push(ActionRight)

	if len(f.Queue) != 3 || f.Queue[0] != ActionRight || f.Queue[1] != ActionUndo {
		t.Fatalf("Queue = %v, expected arrival order", f.Queue)
	}
	if !f.Has(ActionRight) {
		t.Error("pushed action should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Queue) != 0 || !f.Empty() {
		t.Error("Clear should drop the queue")
	}
	if len(clone.Queue) != 3 {
		t.Error("Clone should keep its own queue")
	}
}

func TestActionQueued(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionUndo} {
		if !a.Queued() {
			t.Errorf("%s should be queued", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionConfirm, ActionQuit} {
		if a.Queued() {
			t.Errorf("%s should not be queued", a)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionUndo, "Undo"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
