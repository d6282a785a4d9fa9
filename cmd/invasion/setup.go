package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invasion/internal/config"
	"github.com/vovakirdan/invasion/internal/invasion"
	"github.com/vovakirdan/invasion/internal/platform/audio"
	"github.com/vovakirdan/invasion/internal/storage"
)

// loadConfig reads the game config and applies the difficulty preset.
// It returns the score board the preset records into.
func loadConfig() (config.InvasionConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvasionConfig{}, "", err
	}

	cfg, err := config.LoadInvasion(flagConfig)
	if err != nil {
		return config.InvasionConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	// Validate now so a bad file is reported before the screen switches
	if _, err := invasion.NewSettings(cfg); err != nil {
		return config.InvasionConfig{}, "", err
	}
	return cfg, board(preset), nil
}

// board names the score table for a preset.
func board(preset config.DifficultyPreset) string {
	if preset == "" {
		return string(config.DifficultyNormal)
	}
	return string(preset)
}

// newLogger logs to the --log file, or nowhere. The terminal is busy with
// the game screen.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invasion",
	})
	return logger, func() { f.Close() }, nil
}

// profile returns the name saves and scores are recorded under locally.
func profile() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// persistence picks where save/load goes: the --save-file file, or the
// player's slot in the database.
func persistence(store *storage.Store, player string) (invasion.Persistence, error) {
	if flagSaveFile != "" {
		return storage.NewSaveFile(flagSaveFile)
	}
	if store == nil {
		return nil, nil
	}
	return store.SaveSlot(player), nil
}

// newSound opens the speaker when --sound is set. Audio problems never stop
// the game.
func newSound(logger *log.Logger) audio.Player {
	if !flagSound {
		return audio.Nop{}
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return audio.Nop{}
	}
	return sm
}

// newGame builds a game from the loaded config.
func newGame(cfg config.InvasionConfig, p invasion.Persistence) (*invasion.Game, error) {
	settings, err := invasion.NewSettings(cfg)
	if err != nil {
		return nil, err
	}
	var opts []invasion.Option
	if p != nil {
		opts = append(opts, invasion.WithPersistence(p))
	}
	return invasion.New(settings, opts...), nil
}
