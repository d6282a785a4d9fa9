package invasion

import (
	"testing"
	"time"

	"github.com/vovakirdan/invasion/internal/config"
	"github.com/vovakirdan/invasion/internal/core"
)

func testSettings(t *testing.T, mutate func(*config.InvasionConfig)) *Settings {
	t.Helper()
	cfg := config.DefaultInvasionConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewSettings(cfg)
	if err != nil {
		t.Fatalf("NewSettings() error = %v", err)
	}
	return s
}

// newTestGame creates an idle game whose life-lost pause is recorded
// instead of slept.
func newTestGame(t *testing.T, mutate func(*config.InvasionConfig), opts ...Option) (*Game, *[]time.Duration) {
	t.Helper()
	var pauses []time.Duration
	opts = append([]Option{WithSleeper(func(d time.Duration) { pauses = append(pauses, d) })}, opts...)
	return New(testSettings(t, mutate), opts...), &pauses
}

// startedGame returns a game that has just left Idle.
func startedGame(t *testing.T, mutate func(*config.InvasionConfig), opts ...Option) (*Game, *[]time.Duration) {
	t.Helper()
	g, pauses := newTestGame(t, mutate, opts...)
	res := g.Step(input(core.ActionStart))
	if res.State.Phase != PhasePlaying {
		t.Fatalf("Step(start) phase = %v, expected %v", res.State.Phase, PhasePlaying)
	}
	return g, pauses
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// setEnemies replaces the fleet with enemies at the given positions.
func setEnemies(g *Game, positions ...[2]float64) {
	g.fleet.enemies = nil
	for _, p := range positions {
		g.fleet.enemies = append(g.fleet.enemies, &Enemy{
			X:        p[0],
			Y:        p[1],
			W:        g.settings.EnemyWidth,
			H:        g.settings.EnemyHeight,
			settings: g.settings,
		})
	}
}

func addProjectile(g *Game, x, y float64) {
	g.projectiles = append(g.projectiles, &Projectile{
		X:  x,
		Y:  y,
		W:  g.settings.ProjectileWidth,
		H:  g.settings.ProjectileHeight,
		VY: -g.settings.ProjectileSpeed,
	})
}

type fakePersistence struct {
	rec     Record
	saved   int
	saveErr error
	loadErr error
}

func (p *fakePersistence) Save(r Record) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.rec = r
	p.saved++
	return nil
}

func (p *fakePersistence) Load() (Record, error) {
	if p.loadErr != nil {
		return Record{}, p.loadErr
	}
	return p.rec, nil
}
