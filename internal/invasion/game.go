package invasion

import (
	"time"

	"github.com/vovakirdan/invasion/internal/core"
)

// timeStep is the simulated time of one Step, in ticks. Speeds in Settings
// are per tick.
const timeStep = 1.0

// Sleeper blocks the caller for d. The life-lost pause uses it.
type Sleeper func(d time.Duration)

// Option configures a Game.
type Option func(*Game)

// WithPersistence sets the collaborator used by save and load actions.
func WithPersistence(p Persistence) Option {
	return func(g *Game) {
		g.persistence = p
	}
}

// WithSleeper replaces time.Sleep for the life-lost pause.
func WithSleeper(s Sleeper) Option {
	return func(g *Game) {
		g.sleep = s
	}
}

// Game is the simulation context. It exclusively owns the settings, the
// stats, every entity and the optional bonus token. It is not safe for
// concurrent use; each frontend session owns its own Game.
type Game struct {
	settings *Settings
	stats    Stats
	phase    Phase

	// Entities
	ship        *Ship
	fleet       *Fleet
	projectiles []*Projectile
	bonus       *BonusToken // nil when no token is falling

	// Collaborators
	persistence Persistence
	sleep       Sleeper

	tick   uint64
	events []Event
}

// New creates a game in the Idle phase. The fleet is already built so the
// playfield is populated behind the Play control.
func New(s *Settings, opts ...Option) *Game {
	g := &Game{
		settings: s,
		stats:    newStats(s.ShipLimit),
		phase:    PhaseIdle,
		fleet:    NewFleet(),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ship = newShip(s)
	g.fleet.Build(s, g.ship.H)
	return g
}

// Step runs one frame: input is applied first, then, if a game is being
// played, every entity advances and collisions are resolved.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = nil

	if in.Has(core.ActionQuit) {
		return g.result(true)
	}

	g.handleInput(in)

	if g.phase == PhasePlaying {
		g.tick++
		g.update(timeStep)
	}

	return g.result(false)
}

// handleInput maps intents onto the simulation.
func (g *Game) handleInput(in core.InputFrame) {
	g.ship.MovingLeft = in.Left
	g.ship.MovingRight = in.Right

	if !g.stats.Active {
		if in.Has(core.ActionStart) || g.startControlHit(in.Click) {
			g.start()
		}
	}

	if in.Has(core.ActionFire) && g.phase == PhasePlaying {
		g.fire()
	}
	if in.Has(core.ActionSave) {
		g.save()
	}
	if in.Has(core.ActionLoad) {
		g.load()
	}
}

// startControlHit reports whether a click landed on the Play control.
func (g *Game) startControlHit(c *core.Click) bool {
	if c == nil {
		return false
	}
	return g.settings.StartControl().Contains(c.X, c.Y)
}

// update advances every entity in a fixed order and then resolves
// collisions against the post-move positions.
func (g *Game) update(dt float64) {
	g.ship.Advance(dt)
	g.advanceProjectiles(dt)
	if g.bonus != nil {
		g.bonus.Advance(dt)
	}
	g.fleet.Advance(g.settings, dt)

	g.resolveCollisions()
}

// advanceProjectiles moves every projectile and drops those that left the
// top of the playfield.
func (g *Game) advanceProjectiles(dt float64) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Advance(dt)
		if !p.Expired() {
			kept = append(kept, p)
		}
	}
	g.projectiles = kept
}

// fire spawns a projectile unless the cap is reached.
func (g *Game) fire() {
	if len(g.projectiles) >= g.settings.BulletsAllowed {
		return
	}
	g.projectiles = append(g.projectiles, newProjectile(g.settings, g.ship))
	g.emit(EventShotFired)
}

// start begins a new game from Idle or GameOver.
func (g *Game) start() {
	g.settings.Reset()
	g.stats = newStats(g.settings.ShipLimit)
	g.stats.Active = true

	g.fleet.Clear()
	g.projectiles = nil
	g.bonus = nil
	g.fleet.Build(g.settings, g.ship.H)
	g.ship.Center()

	g.phase = PhasePlaying
	g.tick = 0
	g.emit(EventGameStarted)
	g.emit(EventScoreChanged)
}

// shipHit takes a life, or ends the game on the last ship.
func (g *Game) shipHit() {
	if g.stats.ShipsLeft <= 1 {
		g.endGame()
		return
	}

	g.stats.ShipsLeft--
	g.emit(EventShipHit)

	g.fleet.Clear()
	g.projectiles = nil
	g.fleet.Build(g.settings, g.ship.H)
	g.ship.Center()

	if g.settings.LifeLostPause > 0 && g.sleep != nil {
		g.sleep(g.settings.LifeLostPause)
	}
}

// endGame moves to GameOver. Stats are kept until the next start.
func (g *Game) endGame() {
	g.stats.Active = false
	g.phase = PhaseGameOver
	g.ship.MovingLeft = false
	g.ship.MovingRight = false
	g.emit(EventGameOver)
}

// levelUp is run when the fleet has been destroyed.
func (g *Game) levelUp() {
	g.projectiles = nil
	g.fleet.Build(g.settings, g.ship.H)
	g.settings.IncreaseSpeed()
	g.stats.Level++
	g.bonus = newBonus(g.settings)
	g.emit(EventLevelUp)
	g.emit(EventBonusSpawned)
}

// save writes the current level, score and lives. A failure leaves the
// game untouched.
func (g *Game) save() {
	if g.persistence == nil {
		g.fail(errNoPersistence)
		return
	}
	rec := Record{Level: g.stats.Level, Score: g.stats.Score, Lives: g.stats.ShipsLeft}
	if err := g.persistence.Save(rec); err != nil {
		g.fail(err)
		return
	}
	g.emit(EventSaved)
}

// load applies a saved record to the stats. Nothing else changes. A
// failed or invalid load leaves the game untouched.
func (g *Game) load() {
	if g.persistence == nil {
		g.fail(errNoPersistence)
		return
	}
	rec, err := g.persistence.Load()
	if err != nil {
		g.fail(err)
		return
	}
	if err := rec.Validate(); err != nil {
		g.fail(err)
		return
	}

	g.stats.Level = rec.Level
	g.stats.Score = rec.Score
	g.stats.ShipsLeft = rec.Lives
	g.emit(EventLoaded)
	g.emit(EventScoreChanged)
}

func (g *Game) fail(err error) {
	g.events = append(g.events, Event{Type: EventPersistenceFailed, Err: err})
}

func (g *Game) emit(t EventType) {
	g.events = append(g.events, Event{Type: t})
}

func (g *Game) result(stop bool) StepResult {
	return StepResult{
		State:  g.State(),
		Events: g.events,
		Stop:   stop,
	}
}

// State returns the externally visible state.
func (g *Game) State() GameState {
	return GameState{
		Phase:          g.phase,
		Active:         g.stats.Active,
		Score:          g.stats.Score,
		Level:          g.stats.Level,
		ShipsLeft:      g.stats.ShipsLeft,
		PointerVisible: !g.stats.Active,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Stats returns a copy of the game stats.
func (g *Game) Stats() Stats {
	return g.stats
}

// Settings returns the game's settings. Callers must treat them as read-only.
func (g *Game) Settings() *Settings {
	return g.settings
}

// Ship returns the player's ship.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Fleet returns the enemy fleet.
func (g *Game) Fleet() *Fleet {
	return g.fleet
}

// Projectiles returns the live projectiles. The slice must not be modified.
func (g *Game) Projectiles() []*Projectile {
	return g.projectiles
}

// Bonus returns the falling bonus token, or nil.
func (g *Game) Bonus() *BonusToken {
	return g.bonus
}

// Tick returns the number of simulated frames since the game started.
func (g *Game) Tick() uint64 {
	return g.tick
}
