package invasion

import "github.com/vovakirdan/invasion/internal/core"

// Entity is anything that moves on the playfield and takes part in
// collisions. Positions are kept in float64 world units; Bounds truncates
// them to the integer rectangle used for overlap tests and drawing.
type Entity interface {
	Advance(dt float64)
	Bounds() core.Rect
}

// Ship is the player's ship. It moves horizontally along the bottom edge.
type Ship struct {
	X, Y float64
	W, H int

	// Held movement intents
	MovingLeft  bool
	MovingRight bool

	settings *Settings
}

func newShip(s *Settings) *Ship {
	sh := &Ship{W: s.ShipWidth, H: s.ShipHeight, settings: s}
	sh.Center()
	return sh
}

// Center places the ship at the bottom center of the playfield.
func (sh *Ship) Center() {
	sh.X = float64(sh.settings.ScreenWidth-sh.W) / 2
	sh.Y = float64(sh.settings.ScreenHeight - sh.H)
}

// Advance moves the ship by its held intents. Both intents cancel out.
// The ship never leaves [0, ScreenWidth-W].
func (sh *Ship) Advance(dt float64) {
	step := sh.settings.ShipSpeed * dt
	if sh.MovingRight {
		sh.X += step
	}
	if sh.MovingLeft {
		sh.X -= step
	}
	sh.X = core.ClampF(sh.X, 0, float64(sh.settings.ScreenWidth-sh.W))
}

// Bounds returns the ship's rectangle.
func (sh *Ship) Bounds() core.Rect {
	return core.RectAt(sh.X, sh.Y, sh.W, sh.H)
}

// Projectile is a shot fired by the ship. It travels straight up.
type Projectile struct {
	X, Y float64
	W, H int
	VY   float64
}

// newProjectile spawns a projectile at the ship's top center.
func newProjectile(s *Settings, ship *Ship) *Projectile {
	return &Projectile{
		X:  ship.X + float64(ship.W-s.ProjectileWidth)/2,
		Y:  ship.Y,
		W:  s.ProjectileWidth,
		H:  s.ProjectileHeight,
		VY: -s.ProjectileSpeed,
	}
}

// Advance moves the projectile along its velocity.
func (p *Projectile) Advance(dt float64) {
	p.Y += p.VY * dt
}

// Bounds returns the projectile's rectangle.
func (p *Projectile) Bounds() core.Rect {
	return core.RectAt(p.X, p.Y, p.W, p.H)
}

// Expired reports whether the projectile has left the top of the playfield.
func (p *Projectile) Expired() bool {
	return p.Bounds().Bottom() <= 0
}

// Enemy is one member of the fleet. Its horizontal velocity is the fleet's
// shared speed and direction, read from the settings.
type Enemy struct {
	X, Y float64
	W, H int

	settings *Settings
}

// Advance moves the enemy horizontally in the fleet direction.
func (e *Enemy) Advance(dt float64) {
	e.X += e.settings.EnemySpeed * float64(e.settings.FleetDirection) * dt
}

// Bounds returns the enemy's rectangle.
func (e *Enemy) Bounds() core.Rect {
	return core.RectAt(e.X, e.Y, e.W, e.H)
}

// AtEdge reports whether the enemy touches the left or right screen edge.
func (e *Enemy) AtEdge() bool {
	b := e.Bounds()
	return b.Right() >= e.settings.ScreenWidth || b.X <= 0
}

// BonusToken is the extra-life pickup that falls after a level is cleared.
type BonusToken struct {
	X, Y float64
	W, H int
	VY   float64
}

// newBonus spawns a token horizontally centered at the configured height.
func newBonus(s *Settings) *BonusToken {
	return &BonusToken{
		X:  float64(s.ScreenWidth-s.BonusWidth) / 2,
		Y:  s.BonusStartY,
		W:  s.BonusWidth,
		H:  s.BonusHeight,
		VY: s.BonusSpeed,
	}
}

// Advance moves the token down.
func (b *BonusToken) Advance(dt float64) {
	b.Y += b.VY * dt
}

// Bounds returns the token's rectangle.
func (b *BonusToken) Bounds() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}

var (
	_ Entity = (*Ship)(nil)
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*BonusToken)(nil)
)
