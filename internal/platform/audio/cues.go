package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/invasion/internal/invasion"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// cue describes a short sound effect: a frequency sweep with a linear fade out.
type cue struct {
	from, to float64 // Hz
	length   time.Duration
	wave     WaveType
	volume   float64
}

var cues = map[invasion.EventType]cue{
	invasion.EventShotFired:  {from: 880, to: 440, length: 80 * time.Millisecond, wave: WaveSquare, volume: 0.15},
	invasion.EventEnemyHit:   {from: 220, to: 110, length: 120 * time.Millisecond, wave: WaveSquare, volume: 0.25},
	invasion.EventShipHit:    {from: 160, to: 40, length: 400 * time.Millisecond, wave: WaveSquare, volume: 0.3},
	invasion.EventLifeGained: {from: 660, to: 1320, length: 200 * time.Millisecond, wave: WaveSine, volume: 0.25},
	invasion.EventLevelUp:    {from: 440, to: 880, length: 250 * time.Millisecond, wave: WaveSine, volume: 0.2},
	invasion.EventGameOver:   {from: 330, to: 55, length: 900 * time.Millisecond, wave: WaveSine, volume: 0.3},
}

// cueFor returns the cue played for t. Events without sound return false.
func cueFor(t invasion.EventType) (cue, bool) {
	c, ok := cues[t]
	return c, ok
}

// streamer returns a finite stream playing the cue once.
func (c cue) streamer(sr beep.SampleRate) beep.Streamer {
	n := sr.N(c.length)
	return beep.Take(n, newToneGenerator(sr, c, n))
}

// toneGenerator generates a swept tone that fades to silence over total
// samples. It never ends by itself; wrap it in beep.Take.
type toneGenerator struct {
	sr    beep.SampleRate
	cue   cue
	total int
	pos   int
	phase float64
}

// newToneGenerator creates a generator for c lasting total samples.
func newToneGenerator(sr beep.SampleRate, c cue, total int) *toneGenerator {
	if total < 1 {
		total = 1
	}
	return &toneGenerator{sr: sr, cue: c, total: total}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.cue.from + (g.cue.to-g.cue.from)*progress

		var val float64
		switch g.cue.wave {
		case WaveSquare:
			if g.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * g.phase)
		}

		sample := val * g.cue.volume * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase) // Keep in [0, 1)
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
