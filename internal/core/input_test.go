package core

import "testing"

func TestInputFrameClearKeepsHeldIntents(t *testing.T) {
	f := NewInputFrame()
	f.Left = true
	f.Set(ActionFire)
	f.ClickAt(10, 20)

	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear() should drop pulse actions")
	}
	if f.Click != nil {
		t.Error("Clear() should drop the pointer click")
	}
	if !f.Left {
		t.Error("Clear() should keep held intents")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Right = true
	f.Set(ActionSave)
	f.ClickAt(1, 2)

	c := f.Clone()
	f.Clear()
	f.Right = false

	if !c.Has(ActionSave) || !c.Right || c.Click == nil || c.Click.X != 1 {
		t.Errorf("Clone() should be independent of the original, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionFire, "Fire"},
		{ActionLoad, "Load"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
