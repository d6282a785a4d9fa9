package invasion

// resolveCollisions runs the collision and scoring pass. The order matters:
// projectile hits are fully resolved before the level-clear check, and the
// ship is tested against the fleet as it stands after a possible rebuild.
func (g *Game) resolveCollisions() {
	if destroyed := g.resolveProjectileHits(); destroyed > 0 {
		g.stats.Score += destroyed * g.settings.EnemyPoints
		g.emit(EventEnemyHit)
		g.emit(EventScoreChanged)
	}

	if g.fleet.Empty() {
		g.levelUp()
	}

	if g.shipCollides() {
		g.shipHit()
	}

	// The pickup only counts while the game is still running.
	if g.phase == PhasePlaying {
		g.resolveBonus()
	}
}

// resolveProjectileHits removes every projectile that overlaps an enemy,
// together with the first enemy it overlaps. Returns the number of enemies
// destroyed.
func (g *Game) resolveProjectileHits() int {
	destroyed := 0
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		if e := g.fleet.FirstOverlap(p.Bounds()); e != nil {
			g.fleet.Remove(e)
			destroyed++
			continue
		}
		kept = append(kept, p)
	}
	g.projectiles = kept
	return destroyed
}

// shipCollides reports whether the fleet reached the ship or the bottom.
func (g *Game) shipCollides() bool {
	if g.fleet.FirstOverlap(g.ship.Bounds()) != nil {
		return true
	}
	return g.fleet.ReachedBottom(g.settings.ScreenHeight)
}

// resolveBonus handles the pickup and the despawn rules of the bonus token.
func (g *Game) resolveBonus() {
	if g.bonus == nil {
		return
	}

	b := g.bonus.Bounds()
	switch {
	case g.ship.Bounds().Intersects(b):
		g.stats.ShipsLeft++
		g.bonus = nil
		g.emit(EventLifeGained)
	case b.Y <= 0:
		g.bonus = nil
	case g.settings.BonusDespawnOffscreen && b.Y >= g.settings.ScreenHeight:
		g.bonus = nil
	}
}
