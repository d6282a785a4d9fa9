package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default configuration.
// It mirrors defaults/invasion.yaml and is used when the embedded file
// cannot be parsed.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Screen: ScreenConfig{
			Width:      800,
			Height:     600,
			Background: "#e6e6e6",
		},
		Ship: ShipConfig{
			Width:  50,
			Height: 40,
			Speed:  5.0,
			Lives:  3,
		},
		Projectile: ProjectileConfig{
			Width:   3,
			Height:  15,
			Speed:   6.0,
			Color:   "#3c3c3c",
			Allowed: 3,
		},
		Fleet: FleetConfig{
			EnemyWidth:  40,
			EnemyHeight: 30,
			Speed:       1.5,
			DropSpeed:   10,
			Direction:   1,
			Points:      50,
		},
		Bonus: BonusConfig{
			Width:  30,
			Height: 30,
			Speed:  2.0,
			StartY: 30,
		},
		Difficulty: DifficultyConfig{
			SpeedupScale: 1.1,
			ScoreScale:   1.5,
			MaxSpeedups:  0,
		},
		Timing: TimingConfig{
			LifeLostPauseMS: 500,
		},
		UI: UIConfig{
			ButtonWidth:  200,
			ButtonHeight: 50,
			ButtonColor:  "#008700",
			TextColor:    "#ffffff",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
