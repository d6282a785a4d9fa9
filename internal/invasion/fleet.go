package invasion

import "github.com/vovakirdan/invasion/internal/core"

// Fleet owns the set of live enemies. It is the only writer of their
// collective drop and of the shared direction flip.
type Fleet struct {
	enemies []*Enemy
	flips   int // Direction flips since the last Build
}

// NewFleet creates an empty fleet.
func NewFleet() *Fleet {
	return &Fleet{}
}

// GridSize returns the number of columns and rows that fit on the
// playfield above a ship of the given height. Both are clamped at zero.
func GridSize(s *Settings, shipHeight int) (cols, rows int) {
	usableW := s.ScreenWidth - 2*s.EnemyWidth
	cols = usableW / (2 * s.EnemyWidth)

	usableH := s.ScreenHeight - 3*s.EnemyHeight - shipHeight
	rows = usableH / (2 * s.EnemyHeight)

	return core.Max(cols, 0), core.Max(rows, 0)
}

// Build replaces the fleet with a fresh grid. Each enemy is placed one
// enemy-size gap apart, starting one enemy size in from the top-left corner.
func (f *Fleet) Build(s *Settings, shipHeight int) {
	cols, rows := GridSize(s, shipHeight)

	f.enemies = make([]*Enemy, 0, cols*rows)
	f.flips = 0
	for row := range rows {
		for col := range cols {
			f.enemies = append(f.enemies, &Enemy{
				X:        float64(s.EnemyWidth + 2*s.EnemyWidth*col),
				Y:        float64(s.EnemyHeight + 2*s.EnemyHeight*row),
				W:        s.EnemyWidth,
				H:        s.EnemyHeight,
				settings: s,
			})
		}
	}
}

// Enemies returns the live enemies. The slice must not be modified.
func (f *Fleet) Enemies() []*Enemy {
	return f.enemies
}

// Len returns the number of live enemies.
func (f *Fleet) Len() int {
	return len(f.enemies)
}

// Empty reports whether every enemy has been destroyed.
func (f *Fleet) Empty() bool {
	return len(f.enemies) == 0
}

// Flips returns the number of direction flips since the last Build.
func (f *Fleet) Flips() int {
	return f.flips
}

// Clear removes every enemy.
func (f *Fleet) Clear() {
	f.enemies = nil
}

// Remove deletes e from the fleet. Removing an enemy that is not in the
// fleet is a no-op and returns false.
func (f *Fleet) Remove(e *Enemy) bool {
	for i, cur := range f.enemies {
		if cur == e {
			f.enemies = append(f.enemies[:i], f.enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Advance runs one fleet frame: if any enemy touches an edge the whole
// fleet drops and the direction flips, once, then every enemy moves
// horizontally. Returns true if a flip happened.
func (f *Fleet) Advance(s *Settings, dt float64) bool {
	flipped := false
	if f.touchesEdge() {
		f.changeDirection(s)
		flipped = true
	}
	for _, e := range f.enemies {
		e.Advance(dt)
	}
	return flipped
}

// touchesEdge reports whether any enemy is at the left or right edge.
func (f *Fleet) touchesEdge() bool {
	for _, e := range f.enemies {
		if e.AtEdge() {
			return true
		}
	}
	return false
}

// changeDirection drops the whole fleet and reverses its direction.
func (f *Fleet) changeDirection(s *Settings) {
	for _, e := range f.enemies {
		e.Y += s.FleetDropSpeed
	}
	s.FleetDirection = -s.FleetDirection
	f.flips++
}

// FirstOverlap returns the first enemy that overlaps r, or nil.
func (f *Fleet) FirstOverlap(r core.Rect) *Enemy {
	for _, e := range f.enemies {
		if e.Bounds().Intersects(r) {
			return e
		}
	}
	return nil
}

// ReachedBottom reports whether any enemy's bottom edge has reached height.
func (f *Fleet) ReachedBottom(height int) bool {
	for _, e := range f.enemies {
		if e.Bounds().Bottom() >= height {
			return true
		}
	}
	return false
}
