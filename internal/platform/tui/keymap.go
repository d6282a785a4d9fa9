package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invasion/internal/core"
)

// Terminals report key presses but never releases. A held arrow key shows up
// as a press followed, after the keyboard's repeat delay, by a stream of
// repeats. A direction counts as held until no press arrives for a while.
const (
	holdInitial = 550 * time.Millisecond // Covers the keyboard repeat delay
	holdRepeat  = 150 * time.Millisecond // Covers the gap between repeats
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Start      key.Binding
	Save       key.Binding
	Load       key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Save, k.Load, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Start},
		{k.Save, k.Load, k.Scores, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Load: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Save):
		return core.ActionSave
	case key.Matches(msg, k.Load):
		return core.ActionLoad
	}
	return core.ActionNone
}

// holdTracker turns repeated key presses into held Left/Right intents.
type holdTracker struct {
	until map[core.Action]time.Time
}

func newHoldTracker() *holdTracker {
	return &holdTracker{until: make(map[core.Action]time.Time)}
}

// Press records a press of a held action at now. Pressing one direction
// releases the other.
func (h *holdTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	default:
		return
	}

	if h.Held(a, now) {
		h.until[a] = now.Add(holdRepeat)
		return
	}
	h.until[a] = now.Add(holdInitial)
}

// Held reports whether a is still considered down at now.
func (h *holdTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	if !ok {
		return false
	}
	if now.After(until) {
		delete(h.until, a)
		return false
	}
	return true
}

// Reset releases everything.
func (h *holdTracker) Reset() {
	clear(h.until)
}

// Apply copies the held directions into the input frame.
func (h *holdTracker) Apply(in *core.InputFrame, now time.Time) {
	in.Left = h.Held(core.ActionLeft, now)
	in.Right = h.Held(core.ActionRight, now)
}
