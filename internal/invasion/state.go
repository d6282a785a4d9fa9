package invasion

import "fmt"

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // Play control visible, simulation paused
	PhasePlaying               // Simulation advances every frame
	PhaseGameOver              // Like Idle, but the last game's stats are kept
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Stats is the single source of truth for score, level and lives.
type Stats struct {
	Active    bool
	Score     int
	Level     int
	ShipsLeft int
}

// newStats returns the stats of a game that has not started.
func newStats(lives int) Stats {
	return Stats{Level: 1, ShipsLeft: lives}
}

// Validate checks score >= 0, level >= 1 and ships left >= 0.
func (s Stats) Validate() error {
	switch {
	case s.Score < 0:
		return fmt.Errorf("invasion: score %d is negative", s.Score)
	case s.Level < 1:
		return fmt.Errorf("invasion: level %d is below 1", s.Level)
	case s.ShipsLeft < 0:
		return fmt.Errorf("invasion: ships left %d is negative", s.ShipsLeft)
	}
	return nil
}

// GameState is the externally visible state after a step.
type GameState struct {
	Phase     Phase
	Active    bool
	Score     int
	Level     int
	ShipsLeft int

	// PointerVisible is false while a game is running.
	PointerVisible bool
}

// GameOver reports whether the last game has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by every Step.
type StepResult struct {
	State  GameState
	Events []Event
	Stop   bool // Quit requested; the caller should end its loop
}
