// Package audio plays short synthesised sound effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/invasion/internal/invasion"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player reacts to game events with sound. Implementations must be safe to
// call from the goroutine that steps the game.
type Player interface {
	Play(t invasion.EventType)
	Close()
}

// Nop is a Player that stays silent. Used for SSH sessions and --sound=false.
type Nop struct{}

// Play does nothing.
func (Nop) Play(invasion.EventType) {}

// Close does nothing.
func (Nop) Close() {}

// SoundManager mixes event cues onto the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Initialize must be called before
// any sound is heard.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// 100ms buffer keeps latency low enough for shot feedback
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the cue for t, if it has one.
func (sm *SoundManager) Play(t invasion.EventType) {
	c, ok := cueFor(t)
	if !ok {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	// The speaker goroutine reads the mixer under its own lock.
	speaker.Lock()
	sm.mixer.Add(c.streamer(sampleRate))
	speaker.Unlock()
}

// Close stops all sounds. The speaker itself stays open; beep has no way to
// reopen it after Close.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

var (
	_ Player = Nop{}
	_ Player = (*SoundManager)(nil)
)
