package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invasion/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"s", runeKey('s'), core.ActionSave},
		{"l", runeKey('l'), core.ActionLoad},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldTrackerInitialPress(t *testing.T) {
	h := newHoldTracker()
	start := time.Unix(1000, 0)

	h.Press(core.ActionLeft, start)

	if !h.Held(core.ActionLeft, start.Add(holdInitial-time.Millisecond)) {
		t.Error("Held() = false during the repeat delay, expected true")
	}
	if h.Held(core.ActionLeft, start.Add(holdInitial+time.Millisecond)) {
		t.Error("Held() = true after the repeat delay, expected false")
	}
}

func TestHoldTrackerRepeats(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(1000, 0)

	h.Press(core.ActionRight, now)
	for i := 0; i < 10; i++ {
		now = now.Add(30 * time.Millisecond)
		h.Press(core.ActionRight, now)
	}

	if !h.Held(core.ActionRight, now.Add(holdRepeat-time.Millisecond)) {
		t.Error("Held() = false between repeats, expected true")
	}
	if h.Held(core.ActionRight, now.Add(holdRepeat+time.Millisecond)) {
		t.Error("Held() = true after repeats stopped, expected false")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(1000, 0)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now)

	in := core.NewInputFrame()
	h.Apply(&in, now)
	if in.Left || !in.Right {
		t.Errorf("Apply() Left=%v Right=%v, expected false, true", in.Left, in.Right)
	}

	h.Reset()
	h.Apply(&in, now)
	if in.Left || in.Right {
		t.Errorf("Apply() after Reset() Left=%v Right=%v, expected false, false", in.Left, in.Right)
	}
}

func TestHoldTrackerIgnoresPulses(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(1000, 0)

	h.Press(core.ActionFire, now)
	if h.Held(core.ActionFire, now) {
		t.Error("Held(Fire) = true, expected pulses to be ignored")
	}
}
