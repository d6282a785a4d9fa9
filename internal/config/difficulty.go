package config

// SpeedScaler tracks the multiplicative speed-up applied on every level-up.
type SpeedScaler struct {
	cfg   DifficultyConfig
	steps int
}

// NewSpeedScaler creates a scaler for the given difficulty settings.
func NewSpeedScaler(cfg DifficultyConfig) *SpeedScaler {
	return &SpeedScaler{cfg: cfg}
}

// Reset forgets all applied steps (new game).
func (s *SpeedScaler) Reset() {
	s.steps = 0
}

// Steps returns how many speed-ups have been applied since the last reset.
func (s *SpeedScaler) Steps() int {
	return s.steps
}

// Capped reports whether max_speedups has been reached.
func (s *SpeedScaler) Capped() bool {
	return s.cfg.MaxSpeedups > 0 && s.steps >= s.cfg.MaxSpeedups
}

// Next records one level-up and returns the factors to multiply speeds and
// point values by. Once capped it returns 1, 1.
func (s *SpeedScaler) Next() (speed, score float64) {
	if s.Capped() {
		return 1, 1
	}
	s.steps++
	return factor(s.cfg.SpeedupScale), factor(s.cfg.ScoreScale)
}

// factor treats an unset scale as "no change".
func factor(f float64) float64 {
	if f <= 0 {
		return 1
	}
	return f
}
