package invasion

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/invasion/internal/core"
)

// Visual characters for terminal rendering
const (
	ShipGlyph       = '█'
	EnemyGlyph      = '▓'
	ProjectileGlyph = '│'
	BonusGlyph      = '♥'
	LifeGlyph       = '▲'
)

// maxLifeGlyphs limits the ships drawn in the HUD; more are shown as a count.
const maxLifeGlyphs = 8

// Viewport maps world coordinates onto a grid of terminal cells.
type Viewport struct {
	sx, sy float64
}

// NewViewport creates a viewport that stretches a worldW x worldH playfield
// over cols x rows cells.
func NewViewport(worldW, worldH, cols, rows int) Viewport {
	v := Viewport{}
	if worldW > 0 {
		v.sx = float64(cols) / float64(worldW)
	}
	if worldH > 0 {
		v.sy = float64(rows) / float64(worldH)
	}
	return v
}

// ToScreen converts a world rectangle into cells. Every non-empty rectangle
// covers at least one cell.
func (v Viewport) ToScreen(r core.Rect) core.Rect {
	x0 := int(math.Round(float64(r.X) * v.sx))
	y0 := int(math.Round(float64(r.Y) * v.sy))
	x1 := int(math.Round(float64(r.Right()) * v.sx))
	y1 := int(math.Round(float64(r.Bottom()) * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ToWorld converts a cell to the world coordinates of its center.
func (v Viewport) ToWorld(col, row int) (x, y int) {
	if v.sx == 0 || v.sy == 0 {
		return 0, 0
	}
	return int((float64(col) + 0.5) / v.sx), int((float64(row) + 0.5) / v.sy)
}

// Render draws the current frame onto a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(g.Frame(), dst)
}

// RenderFrame draws f onto dst, scaled to the screen size.
func RenderFrame(f Frame, dst *core.Screen) {
	dst.Fill(f.Background)
	vp := NewViewport(f.Width, f.Height, dst.Width(), dst.Height())

	for _, r := range f.Enemies {
		dst.DrawRect(vp.ToScreen(r), EnemyGlyph, core.ColorEnemy)
	}
	if f.Bonus != nil {
		dst.DrawRect(vp.ToScreen(*f.Bonus), BonusGlyph, core.ColorBonus)
	}
	for _, r := range f.Projectiles {
		dst.DrawRect(vp.ToScreen(r), ProjectileGlyph, f.ProjectileColor)
	}
	dst.DrawRect(vp.ToScreen(f.Ship), ShipGlyph, core.ColorShip)

	drawHUD(dst, f)

	if f.ShowStartControl {
		drawStartControl(dst, vp, f)
	}
}

// drawHUD draws ships left at the top left and score and level at the top
// right.
func drawHUD(dst *core.Screen, f Frame) {
	dst.DrawTextColored(1, 0, livesText(f.ShipsLeft), core.ColorShip)

	score := "Score: " + FormatScore(f.Score)
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorHUD)

	level := fmt.Sprintf("Level: %d", f.Level)
	dst.DrawTextColored(dst.Width()-len(level)-1, 1, level, core.ColorHUD)
}

func livesText(n int) string {
	if n <= maxLifeGlyphs {
		return strings.Repeat(string(LifeGlyph), n)
	}
	return fmt.Sprintf("%c x%d", LifeGlyph, n)
}

// drawStartControl draws the Play control and, after a game, the result.
func drawStartControl(dst *core.Screen, vp Viewport, f Frame) {
	box := vp.ToScreen(f.StartControl)
	if box.H < 3 {
		box.Y -= (3 - box.H) / 2
		box.H = 3
	}
	dst.FillRect(box, f.ButtonColor)

	label := "Play"
	dst.DrawTextColored(box.X+(box.W-len(label))/2, box.Y+box.H/2, label, f.TextColor)

	hint := "enter or click to start"
	if f.Phase == PhaseGameOver {
		over := "GAME OVER"
		dst.DrawTextColored((dst.Width()-len(over))/2, box.Y-2, over, core.ColorHUD)
	}
	dst.DrawTextColored((dst.Width()-len(hint))/2, box.Bottom()+1, hint, core.ColorHUD)
}

// FormatScore rounds the score to the nearest ten and adds thousands
// separators.
func FormatScore(score int) string {
	rounded := int(math.Round(float64(score)/10) * 10)
	s := strconv.Itoa(rounded)

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
