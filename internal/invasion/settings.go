// Package invasion implements the fleet shooter: a ship at the bottom of the
// playfield fires upward at a descending grid of enemies.
//
// The package is pure simulation. Input arrives as core.InputFrame, output
// leaves as StepResult events and a render Frame; the platform layer owns the
// terminal, window, audio and storage.
package invasion

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/invasion/internal/config"
	"github.com/vovakirdan/invasion/internal/core"
)

// ErrConfigurationInvalid is returned by NewSettings when a size or speed is
// not positive or a value is outside its domain.
var ErrConfigurationInvalid = errors.New("invasion: invalid configuration")

// Settings holds the per-level configuration.
//
// The geometry is fixed for the lifetime of a game. ShipSpeed,
// ProjectileSpeed, EnemySpeed, EnemyPoints and FleetDirection are dynamic:
// IncreaseSpeed scales them on every level-up and Reset restores the base
// values for a new game.
type Settings struct {
	ScreenWidth  int
	ScreenHeight int
	Background   core.Color

	ShipWidth  int
	ShipHeight int
	ShipSpeed  float64
	ShipLimit  int

	ProjectileWidth  int
	ProjectileHeight int
	ProjectileSpeed  float64
	ProjectileColor  core.Color
	BulletsAllowed   int

	EnemyWidth     int
	EnemyHeight    int
	EnemySpeed     float64
	EnemyPoints    int
	FleetDirection int
	FleetDropSpeed float64

	BonusWidth            int
	BonusHeight           int
	BonusSpeed            float64
	BonusStartY           float64
	BonusDespawnOffscreen bool

	LifeLostPause time.Duration

	ButtonWidth  int
	ButtonHeight int
	ButtonColor  core.Color
	TextColor    core.Color

	base   config.InvasionConfig
	scaler *config.SpeedScaler
}

// NewSettings validates cfg and returns settings initialized to level 1.
func NewSettings(cfg config.InvasionConfig) (*Settings, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	bg, err := parseColor("screen.background", cfg.Screen.Background)
	if err != nil {
		return nil, err
	}
	projColor, err := parseColor("projectile.color", cfg.Projectile.Color)
	if err != nil {
		return nil, err
	}
	buttonColor, err := parseColor("ui.button_color", cfg.UI.ButtonColor)
	if err != nil {
		return nil, err
	}
	textColor, err := parseColor("ui.text_color", cfg.UI.TextColor)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Background:   bg,

		ShipWidth:  cfg.Ship.Width,
		ShipHeight: cfg.Ship.Height,
		ShipLimit:  cfg.Ship.Lives,

		ProjectileWidth:  cfg.Projectile.Width,
		ProjectileHeight: cfg.Projectile.Height,
		ProjectileColor:  projColor,
		BulletsAllowed:   cfg.Projectile.Allowed,

		EnemyWidth:     cfg.Fleet.EnemyWidth,
		EnemyHeight:    cfg.Fleet.EnemyHeight,
		FleetDropSpeed: cfg.Fleet.DropSpeed,

		BonusWidth:            cfg.Bonus.Width,
		BonusHeight:           cfg.Bonus.Height,
		BonusSpeed:            cfg.Bonus.Speed,
		BonusStartY:           cfg.Bonus.StartY,
		BonusDespawnOffscreen: cfg.Bonus.DespawnOffscreen,

		LifeLostPause: time.Duration(cfg.Timing.LifeLostPauseMS) * time.Millisecond,

		ButtonWidth:  cfg.UI.ButtonWidth,
		ButtonHeight: cfg.UI.ButtonHeight,
		ButtonColor:  buttonColor,
		TextColor:    textColor,

		base:   cfg,
		scaler: config.NewSpeedScaler(cfg.Difficulty),
	}
	s.Reset()
	return s, nil
}

// Reset restores the dynamic settings to their level-1 values.
func (s *Settings) Reset() {
	s.ShipSpeed = s.base.Ship.Speed
	s.ProjectileSpeed = s.base.Projectile.Speed
	s.EnemySpeed = s.base.Fleet.Speed
	s.EnemyPoints = s.base.Fleet.Points
	s.FleetDirection = s.base.Fleet.Direction
	s.scaler.Reset()
}

// IncreaseSpeed applies one level-up: speeds and point value are scaled and
// the fleet starts the new level moving right.
func (s *Settings) IncreaseSpeed() {
	speed, score := s.scaler.Next()
	s.ShipSpeed *= speed
	s.ProjectileSpeed *= speed
	s.EnemySpeed *= speed
	s.EnemyPoints = int(float64(s.EnemyPoints) * score)
	s.FleetDirection = 1
}

// SpeedupsApplied returns the number of level-ups applied since Reset.
func (s *Settings) SpeedupsApplied() int {
	return s.scaler.Steps()
}

// ScreenRect returns the playfield rectangle.
func (s *Settings) ScreenRect() core.Rect {
	return core.NewRect(0, 0, s.ScreenWidth, s.ScreenHeight)
}

// StartControl returns the Play control, centered on the playfield.
func (s *Settings) StartControl() core.Rect {
	return s.ScreenRect().Centered(s.ButtonWidth, s.ButtonHeight)
}

// validate checks every value that the simulation relies on.
func validate(cfg config.InvasionConfig) error {
	sizes := []struct {
		name string
		v    int
	}{
		{"screen.width", cfg.Screen.Width},
		{"screen.height", cfg.Screen.Height},
		{"ship.width", cfg.Ship.Width},
		{"ship.height", cfg.Ship.Height},
		{"ship.lives", cfg.Ship.Lives},
		{"projectile.width", cfg.Projectile.Width},
		{"projectile.height", cfg.Projectile.Height},
		{"projectile.allowed", cfg.Projectile.Allowed},
		{"fleet.enemy_width", cfg.Fleet.EnemyWidth},
		{"fleet.enemy_height", cfg.Fleet.EnemyHeight},
		{"bonus.width", cfg.Bonus.Width},
		{"bonus.height", cfg.Bonus.Height},
		{"ui.button_width", cfg.UI.ButtonWidth},
		{"ui.button_height", cfg.UI.ButtonHeight},
	}
	for _, f := range sizes {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrConfigurationInvalid, f.name, f.v)
		}
	}

	speeds := []struct {
		name string
		v    float64
	}{
		{"ship.speed", cfg.Ship.Speed},
		{"projectile.speed", cfg.Projectile.Speed},
		{"fleet.speed", cfg.Fleet.Speed},
		{"fleet.drop_speed", cfg.Fleet.DropSpeed},
		{"bonus.speed", cfg.Bonus.Speed},
	}
	for _, f := range speeds {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrConfigurationInvalid, f.name, f.v)
		}
	}

	if cfg.Fleet.Direction != 1 && cfg.Fleet.Direction != -1 {
		return fmt.Errorf("%w: fleet.direction must be 1 or -1, got %d", ErrConfigurationInvalid, cfg.Fleet.Direction)
	}
	if cfg.Fleet.Points < 0 {
		return fmt.Errorf("%w: fleet.points must not be negative, got %d", ErrConfigurationInvalid, cfg.Fleet.Points)
	}
	if cfg.Bonus.StartY < 0 {
		return fmt.Errorf("%w: bonus.start_y must not be negative, got %v", ErrConfigurationInvalid, cfg.Bonus.StartY)
	}
	if cfg.Difficulty.SpeedupScale < 0 || cfg.Difficulty.ScoreScale < 0 || cfg.Difficulty.MaxSpeedups < 0 {
		return fmt.Errorf("%w: difficulty values must not be negative", ErrConfigurationInvalid)
	}
	if cfg.Timing.LifeLostPauseMS < 0 {
		return fmt.Errorf("%w: timing.life_lost_pause_ms must not be negative", ErrConfigurationInvalid)
	}
	return nil
}

func parseColor(name, v string) (core.Color, error) {
	c, err := core.ParseColor(v)
	if err != nil {
		return core.Color{}, fmt.Errorf("%w: %s: %v", ErrConfigurationInvalid, name, err)
	}
	return c, nil
}
