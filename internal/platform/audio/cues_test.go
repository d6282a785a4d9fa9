package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/invasion/internal/invasion"
)

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		event invasion.EventType
		want  bool
	}{
		{invasion.EventShotFired, true},
		{invasion.EventEnemyHit, true},
		{invasion.EventShipHit, true},
		{invasion.EventGameOver, true},
		{invasion.EventScoreChanged, false},
		{invasion.EventSaved, false},
		{invasion.EventPersistenceFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			if _, ok := cueFor(tt.event); ok != tt.want {
				t.Errorf("cueFor(%v) ok = %v, expected %v", tt.event, ok, tt.want)
			}
		})
	}
}

func TestToneGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for event, c := range cues {
		gen := newToneGenerator(rate, c, rate.N(c.length))

		samples := make([][2]float64, 512)
		n, ok := gen.Stream(samples)
		if !ok || n != len(samples) {
			t.Fatalf("%v: Stream() = %d, %v, expected %d, true", event, n, ok, len(samples))
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -c.volume || samples[i][0] > c.volume {
				t.Errorf("%v: sample %d out of range: %f", event, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("%v: sample %d channels differ", event, i)
			}
		}
		if gen.Err() != nil {
			t.Errorf("%v: Err() = %v, expected nil", event, gen.Err())
		}
	}
}

func TestToneGeneratorFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	c := cue{from: 100, to: 100, length: time.Second, wave: WaveSquare, volume: 0.5}
	gen := newToneGenerator(rate, c, 1000)

	samples := make([][2]float64, 1000)
	gen.Stream(samples)

	if first := samples[0][0]; first != 0.5 {
		t.Errorf("first sample = %f, expected 0.5", first)
	}
	last := samples[999][0]
	if last > 0.001 || last < -0.001 {
		t.Errorf("last sample = %f, expected close to 0", last)
	}
}

func TestCueStreamerIsFinite(t *testing.T) {
	rate := beep.SampleRate(1000)
	c := cue{from: 200, to: 100, length: 100 * time.Millisecond, wave: WaveSine, volume: 0.2}
	s := c.streamer(rate)

	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > 1000 {
			t.Fatal("streamer did not end")
		}
	}
	if total != 100 {
		t.Errorf("streamed %d samples, expected 100", total)
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	// Must not touch the speaker before Initialize.
	sm.Play(invasion.EventShotFired)
	sm.Close()

	var p Player = Nop{}
	p.Play(invasion.EventGameOver)
	p.Close()
}
