package invasion

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/invasion/internal/config"
	"github.com/vovakirdan/invasion/internal/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewSettingsDefaults(t *testing.T) {
	s := testSettings(t, nil)

	if s.ScreenWidth != 800 || s.ScreenHeight != 600 {
		t.Errorf("screen = %dx%d, expected 800x600", s.ScreenWidth, s.ScreenHeight)
	}
	if s.FleetDirection != 1 {
		t.Errorf("FleetDirection = %d, expected 1", s.FleetDirection)
	}
	if s.BulletsAllowed != 3 {
		t.Errorf("BulletsAllowed = %d, expected 3", s.BulletsAllowed)
	}
	if s.LifeLostPause != 500*time.Millisecond {
		t.Errorf("LifeLostPause = %v, expected 500ms", s.LifeLostPause)
	}
	if s.Background != core.RGB(230, 230, 230) {
		t.Errorf("Background = %v, expected #e6e6e6", s.Background.Hex())
	}
	if got := s.StartControl(); got != core.NewRect(300, 275, 200, 50) {
		t.Errorf("StartControl() = %+v, expected centered 200x50", got)
	}
}

func TestNewSettingsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.InvasionConfig)
	}{
		{"zero ship speed", func(c *config.InvasionConfig) { c.Ship.Speed = 0 }},
		{"negative enemy speed", func(c *config.InvasionConfig) { c.Fleet.Speed = -1 }},
		{"zero projectile speed", func(c *config.InvasionConfig) { c.Projectile.Speed = 0 }},
		{"negative enemy width", func(c *config.InvasionConfig) { c.Fleet.EnemyWidth = -20 }},
		{"zero screen height", func(c *config.InvasionConfig) { c.Screen.Height = 0 }},
		{"zero bullets", func(c *config.InvasionConfig) { c.Projectile.Allowed = 0 }},
		{"direction zero", func(c *config.InvasionConfig) { c.Fleet.Direction = 0 }},
		{"direction two", func(c *config.InvasionConfig) { c.Fleet.Direction = 2 }},
		{"negative points", func(c *config.InvasionConfig) { c.Fleet.Points = -5 }},
		{"bad color", func(c *config.InvasionConfig) { c.Screen.Background = "grey" }},
		{"negative pause", func(c *config.InvasionConfig) { c.Timing.LifeLostPauseMS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultInvasionConfig()
			tt.mutate(&cfg)
			_, err := NewSettings(cfg)
			if !errors.Is(err, ErrConfigurationInvalid) {
				t.Errorf("NewSettings() error = %v, expected ErrConfigurationInvalid", err)
			}
		})
	}
}

func TestSettingsIncreaseSpeed(t *testing.T) {
	s := testSettings(t, nil)
	s.FleetDirection = -1

	s.IncreaseSpeed()

	if !almostEqual(s.ShipSpeed, 5*1.1) {
		t.Errorf("ShipSpeed = %v, expected %v", s.ShipSpeed, 5*1.1)
	}
	if !almostEqual(s.ProjectileSpeed, 6*1.1) {
		t.Errorf("ProjectileSpeed = %v, expected %v", s.ProjectileSpeed, 6*1.1)
	}
	if !almostEqual(s.EnemySpeed, 1.5*1.1) {
		t.Errorf("EnemySpeed = %v, expected %v", s.EnemySpeed, 1.5*1.1)
	}
	if s.EnemyPoints != 75 {
		t.Errorf("EnemyPoints = %d, expected 75", s.EnemyPoints)
	}
	if s.FleetDirection != 1 {
		t.Errorf("FleetDirection = %d, expected reset to 1", s.FleetDirection)
	}
	if s.SpeedupsApplied() != 1 {
		t.Errorf("SpeedupsApplied() = %d, expected 1", s.SpeedupsApplied())
	}
}

func TestSettingsReset(t *testing.T) {
	s := testSettings(t, nil)
	s.IncreaseSpeed()
	s.IncreaseSpeed()
	s.FleetDirection = -1

	s.Reset()

	if s.ShipSpeed != 5 || s.ProjectileSpeed != 6 || s.EnemySpeed != 1.5 {
		t.Errorf("speeds after Reset() = %v/%v/%v, expected 5/6/1.5", s.ShipSpeed, s.ProjectileSpeed, s.EnemySpeed)
	}
	if s.EnemyPoints != 50 {
		t.Errorf("EnemyPoints after Reset() = %d, expected 50", s.EnemyPoints)
	}
	if s.FleetDirection != 1 {
		t.Errorf("FleetDirection after Reset() = %d, expected 1", s.FleetDirection)
	}
	if s.SpeedupsApplied() != 0 {
		t.Errorf("SpeedupsApplied() after Reset() = %d, expected 0", s.SpeedupsApplied())
	}
}

func TestSettingsSpeedupCap(t *testing.T) {
	s := testSettings(t, func(c *config.InvasionConfig) { c.Difficulty.MaxSpeedups = 1 })

	s.IncreaseSpeed()
	capped := s.EnemySpeed
	s.IncreaseSpeed()

	if s.EnemySpeed != capped {
		t.Errorf("EnemySpeed = %v after cap, expected %v", s.EnemySpeed, capped)
	}
	if s.EnemyPoints != 75 {
		t.Errorf("EnemyPoints = %d after cap, expected 75", s.EnemyPoints)
	}
}
