// Package session handles what a frontend does with the events of a step:
// sound, logging and the high score table.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invasion/internal/invasion"
	"github.com/vovakirdan/invasion/internal/platform/audio"
	"github.com/vovakirdan/invasion/internal/storage"
)

// Options are the collaborators of a session. All fields are optional.
type Options struct {
	Store  *storage.Store // High scores; nil disables recording
	Board  string         // Score table the game records into
	Player string         // Name recorded with the score
	Sound  audio.Player
	Logger *log.Logger
}

// Recorder consumes step events for one game.
type Recorder struct {
	game       *invasion.Game
	opts       Options
	scoreSaved bool // Whether score has been saved for current game over
}

// NewRecorder creates a recorder for game. Missing collaborators are
// replaced by silent ones.
func NewRecorder(game *invasion.Game, opts Options) *Recorder {
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Recorder{game: game, opts: opts}
}

// Options returns the effective options.
func (r *Recorder) Options() Options {
	return r.opts
}

// Logger returns the session logger.
func (r *Recorder) Logger() *log.Logger {
	return r.opts.Logger
}

// Handle plays sounds and records what happened during a step.
func (r *Recorder) Handle(events []invasion.Event) {
	logger := r.opts.Logger
	for _, e := range events {
		r.opts.Sound.Play(e.Type)

		switch e.Type {
		case invasion.EventGameStarted:
			r.scoreSaved = false
			logger.Debug("game started", "player", r.opts.Player, "board", r.opts.Board)
		case invasion.EventGameOver:
			r.saveScore()
		case invasion.EventSaved:
			stats := r.game.Stats()
			logger.Info("game saved", "player", r.opts.Player, "level", stats.Level, "score", stats.Score, "lives", stats.ShipsLeft)
		case invasion.EventLoaded:
			stats := r.game.Stats()
			logger.Info("game loaded", "player", r.opts.Player, "level", stats.Level, "score", stats.Score, "lives", stats.ShipsLeft)
		case invasion.EventPersistenceFailed:
			logger.Warn("save or load failed", "player", r.opts.Player, "error", e.Err)
		}
	}
}

// saveScore records the final score once per game.
func (r *Recorder) saveScore() {
	if r.scoreSaved {
		return
	}
	r.scoreSaved = true

	stats := r.game.Stats()
	r.opts.Logger.Info("game over", "player", r.opts.Player, "score", stats.Score, "level", stats.Level)
	if r.opts.Store == nil || stats.Score <= 0 {
		return
	}

	_, err := r.opts.Store.SaveScore(storage.ScoreEntry{
		Board:  r.opts.Board,
		Player: r.opts.Player,
		Score:  stats.Score,
		Level:  stats.Level,
	})
	if err != nil {
		r.opts.Logger.Warn("could not save score", "error", err)
	}
}

// Close releases the sound device.
func (r *Recorder) Close() {
	r.opts.Sound.Close()
}
