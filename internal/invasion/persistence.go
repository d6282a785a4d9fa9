package invasion

import (
	"errors"
	"fmt"
)

// Record is the persisted part of a game. Its encoding belongs to the
// Persistence implementation.
type Record struct {
	Level int
	Score int
	Lives int
}

// Validate rejects records that would break the stats invariants.
func (r Record) Validate() error {
	if r.Level < 1 || r.Score < 0 || r.Lives < 0 {
		return fmt.Errorf("invasion: invalid record level=%d score=%d lives=%d", r.Level, r.Score, r.Lives)
	}
	return nil
}

// Persistence stores and restores a single Record. It is called only on
// explicit save and load actions.
type Persistence interface {
	Save(Record) error
	Load() (Record, error)
}

// errNoPersistence is reported when save or load is requested but the game
// was created without a Persistence.
var errNoPersistence = errors.New("invasion: no persistence configured")
