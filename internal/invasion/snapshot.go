package invasion

import "math"

// Snapshot contains the simulation state in primitive types, for
// determinism testing and debugging.
type Snapshot struct {
	Tick      uint64
	Phase     int
	Score     int
	Level     int
	ShipsLeft int

	ShipX     float64
	Direction int
	Speedups  int

	// Enemy positions, 2 values each: X, Y
	EnemyData []float64
	// Projectile positions, 2 values each: X, Y
	ProjectileData []float64

	HasBonus bool
	BonusY   float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     int(g.phase),
		Score:     g.stats.Score,
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
		ShipX:     g.ship.X,
		Direction: g.settings.FleetDirection,
		Speedups:  g.settings.SpeedupsApplied(),
	}

	snap.EnemyData = make([]float64, 0, g.fleet.Len()*2)
	for _, e := range g.fleet.Enemies() {
		snap.EnemyData = append(snap.EnemyData, e.X, e.Y)
	}
	snap.ProjectileData = make([]float64, 0, len(g.projectiles)*2)
	for _, p := range g.projectiles {
		snap.ProjectileData = append(snap.ProjectileData, p.X, p.Y)
	}
	if g.bonus != nil {
		snap.HasBonus = true
		snap.BonusY = g.bonus.Y
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShipX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction+1)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speedups)        //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}

	if snap.HasBonus {
		h = h*31 + math.Float64bits(snap.BonusY)
	}
	return h
}
