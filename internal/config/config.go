// Package config provides YAML-based game configuration loading and
// difficulty management for the invasion game.
package config

import "fmt"

// InvasionConfig contains the base (level 1) configuration of the game.
// World units are pixels of the logical playfield, independent of the
// terminal or window the game is shown in.
type InvasionConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Fleet      FleetConfig      `yaml:"fleet"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
	UI         UIConfig         `yaml:"ui"`
}

// ScreenConfig defines the logical playfield.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // "#rrggbb"
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per tick
	Lives  int     `yaml:"lives"` // Ships at the start of a game
}

// ProjectileConfig defines the ship's projectiles.
type ProjectileConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	Color   string  `yaml:"color"`
	Allowed int     `yaml:"allowed"` // Max projectiles on screen at once
}

// FleetConfig defines the enemy grid.
type FleetConfig struct {
	EnemyWidth  int     `yaml:"enemy_width"`
	EnemyHeight int     `yaml:"enemy_height"`
	Speed       float64 `yaml:"speed"`
	DropSpeed   float64 `yaml:"drop_speed"`
	Direction   int     `yaml:"direction"` // 1 = right, -1 = left
	Points      int     `yaml:"points"`    // Score per destroyed enemy
}

// BonusConfig defines the extra-life token spawned on level clear.
type BonusConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`   // Fall speed, pixels per tick
	StartY float64 `yaml:"start_y"` // Spawn height; spawned horizontally centered

	// DespawnOffscreen also removes the token once it falls below the
	// bottom edge. Off by default: only the top-edge rule applies.
	DespawnOffscreen bool `yaml:"despawn_offscreen"`
}

// DifficultyConfig defines how speeds grow on every level-up.
type DifficultyConfig struct {
	SpeedupScale float64 `yaml:"speedup_scale"` // Speed multiplier per level
	ScoreScale   float64 `yaml:"score_scale"`   // Point value multiplier per level
	MaxSpeedups  int     `yaml:"max_speedups"`  // 0 = unbounded
}

// TimingConfig defines fixed delays.
type TimingConfig struct {
	LifeLostPauseMS int `yaml:"life_lost_pause_ms"`
}

// UIConfig defines the Play control.
type UIConfig struct {
	ButtonWidth  int    `yaml:"button_width"`
	ButtonHeight int    `yaml:"button_height"`
	ButtonColor  string `yaml:"button_color"`
	TextColor    string `yaml:"text_color"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
