// Package window runs the game in a desktop window with Ebitengine. The
// window's logical size is the playfield, so mouse positions arrive in world
// units and the pointer can be hidden while a game is running.
package window

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/invasion/internal/core"
	"github.com/vovakirdan/invasion/internal/invasion"
	"github.com/vovakirdan/invasion/internal/platform/session"
)

// Debug font cell size used to place HUD text.
const (
	glyphW = 6
	glyphH = 16
)

// Game adapts an invasion.Game to ebiten.Game.
type Game struct {
	game     *invasion.Game
	recorder *session.Recorder
	input    core.InputFrame

	pointerVisible bool
	cursorSet      bool
}

// New wraps game for the window frontend.
func New(game *invasion.Game, opts session.Options) *Game {
	return &Game{
		game:     game,
		recorder: session.NewRecorder(game, opts),
		input:    core.NewInputFrame(),
	}
}

// Update reads input and advances the simulation by one frame.
func (g *Game) Update() error {
	g.pollInput()

	result := g.game.Step(g.input)
	g.input.Clear()
	g.recorder.Handle(result.Events)

	if result.Stop {
		return ebiten.Termination
	}

	g.syncCursor(result.State.PointerVisible)
	return nil
}

// pollInput copies the keyboard and mouse state into the input frame.
func (g *Game) pollInput() {
	g.input.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	g.input.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)

	pulses := []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
		{core.ActionStart, []ebiten.Key{ebiten.KeyEnter}},
		{core.ActionSave, []ebiten.Key{ebiten.KeyS}},
		{core.ActionLoad, []ebiten.Key{ebiten.KeyL}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
	}
	for _, p := range pulses {
		for _, k := range p.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.input.Set(p.action)
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.input.ClickAt(x, y)
	}
}

// syncCursor shows the pointer only while no game is running.
func (g *Game) syncCursor(visible bool) {
	if g.cursorSet && visible == g.pointerVisible {
		return
	}
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	g.pointerVisible = visible
	g.cursorSet = true
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.game.Frame()

	screen.Fill(rgba(f.Background))

	for _, r := range f.Enemies {
		fillRect(screen, r, core.ColorEnemy)
	}
	if f.Bonus != nil {
		fillRect(screen, *f.Bonus, core.ColorBonus)
	}
	for _, r := range f.Projectiles {
		fillRect(screen, r, f.ProjectileColor)
	}
	fillRect(screen, f.Ship, core.ColorShip)

	drawHUD(screen, f)
	if f.ShowStartControl {
		drawStartControl(screen, f)
	}
}

// Layout fixes the logical screen to the playfield.
func (g *Game) Layout(_, _ int) (int, int) {
	s := g.game.Settings()
	return s.ScreenWidth, s.ScreenHeight
}

func drawHUD(screen *ebiten.Image, f invasion.Frame) {
	ebitenutil.DebugPrintAt(screen, "Ships: "+strconv.Itoa(f.ShipsLeft), 10, 8)

	score := "Score: " + invasion.FormatScore(f.Score)
	ebitenutil.DebugPrintAt(screen, score, f.Width-len(score)*glyphW-10, 8)

	level := "Level: " + strconv.Itoa(f.Level)
	ebitenutil.DebugPrintAt(screen, level, f.Width-len(level)*glyphW-10, 8+glyphH)
}

func drawStartControl(screen *ebiten.Image, f invasion.Frame) {
	box := f.StartControl
	fillRect(screen, box, f.ButtonColor)

	cx, cy := box.Center()
	label := "Play"
	ebitenutil.DebugPrintAt(screen, label, cx-len(label)*glyphW/2, cy-glyphH/2)

	if f.Phase == invasion.PhaseGameOver {
		over := "GAME OVER"
		ebitenutil.DebugPrintAt(screen, over, cx-len(over)*glyphW/2, box.Y-2*glyphH)
	}
}

func fillRect(screen *ebiten.Image, r core.Rect, c core.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

// rgba converts a game color. The default color is drawn as black.
func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

var _ ebiten.Game = (*Game)(nil)
