package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/invasion/internal/invasion"
	"github.com/vovakirdan/invasion/internal/platform/session"
)

// Options configure the desktop window.
type Options struct {
	Title    string
	Scale    float64 // Window size relative to the playfield
	TickRate int     // Simulation ticks per second
	Session  session.Options
}

// Run opens the window and blocks until the player quits or the window is
// closed.
func Run(game *invasion.Game, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Alien Invasion"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	s := game.Settings()
	ebiten.SetWindowSize(int(float64(s.ScreenWidth)*opts.Scale), int(float64(s.ScreenHeight)*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w := New(game, opts.Session)
	defer w.recorder.Close()

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
