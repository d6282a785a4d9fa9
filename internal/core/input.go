package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow - move ship left (held)
	ActionRight        // Right arrow - move ship right (held)
	ActionFire         // Space - fire a projectile
	ActionStart        // Enter - press the Play control
	ActionSave         // S - save level/score/lives
	ActionLoad         // L - load level/score/lives
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click is a pointer press in world coordinates.
type Click struct {
	X, Y int
}

// InputFrame represents the input state for one simulation tick.
//
// Left and Right are held intents and carry over as long as the key is down.
// Every other action is a pulse that was triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
	Left    bool
	Right   bool
	Click   *Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// ClickAt records a pointer press for this frame.
func (f *InputFrame) ClickAt(x, y int) {
	f.Click = &Click{X: x, Y: y}
}

// Clear resets the pulses for the next frame. Held intents are kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Left = f.Left
	clone.Right = f.Right
	if f.Click != nil {
		c := *f.Click
		clone.Click = &c
	}
	return clone
}
