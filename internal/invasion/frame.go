package invasion

import "github.com/vovakirdan/invasion/internal/core"

// Frame is everything a renderer needs to draw one frame, in world units.
// It holds copies, so it stays valid after the next Step.
type Frame struct {
	Width      int
	Height     int
	Background core.Color

	Ship            core.Rect
	Enemies         []core.Rect
	Projectiles     []core.Rect
	ProjectileColor core.Color
	Bonus           *core.Rect

	Score     int
	Level     int
	ShipsLeft int
	Phase     Phase

	// Play control, drawn while no game is running
	ShowStartControl bool
	StartControl     core.Rect
	ButtonColor      core.Color
	TextColor        core.Color
}

// Frame captures the current positions and HUD values.
func (g *Game) Frame() Frame {
	s := g.settings
	f := Frame{
		Width:      s.ScreenWidth,
		Height:     s.ScreenHeight,
		Background: s.Background,

		Ship:            g.ship.Bounds(),
		Enemies:         make([]core.Rect, 0, g.fleet.Len()),
		Projectiles:     make([]core.Rect, 0, len(g.projectiles)),
		ProjectileColor: s.ProjectileColor,

		Score:     g.stats.Score,
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
		Phase:     g.phase,

		ShowStartControl: !g.stats.Active,
		StartControl:     s.StartControl(),
		ButtonColor:      s.ButtonColor,
		TextColor:        s.TextColor,
	}

	for _, e := range g.fleet.Enemies() {
		f.Enemies = append(f.Enemies, e.Bounds())
	}
	for _, p := range g.projectiles {
		f.Projectiles = append(f.Projectiles, p.Bounds())
	}
	if g.bonus != nil {
		b := g.bonus.Bounds()
		f.Bonus = &b
	}
	return f
}
