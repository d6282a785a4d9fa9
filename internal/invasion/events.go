package invasion

import "fmt"

// EventType identifies something that happened during a step. Events are
// fire-and-forget notifications for audio and logging; nothing in the
// simulation reads them back.
type EventType int

const (
	EventShotFired EventType = iota
	EventEnemyHit
	EventScoreChanged
	EventShipHit
	EventLevelUp
	EventBonusSpawned
	EventLifeGained
	EventGameStarted
	EventGameOver
	EventSaved
	EventLoaded
	EventPersistenceFailed
)

var eventNames = [...]string{
	EventShotFired:         "shot_fired",
	EventEnemyHit:          "enemy_hit",
	EventScoreChanged:      "score_changed",
	EventShipHit:           "ship_hit",
	EventLevelUp:           "level_up",
	EventBonusSpawned:      "bonus_spawned",
	EventLifeGained:        "life_gained",
	EventGameStarted:       "game_started",
	EventGameOver:          "game_over",
	EventSaved:             "saved",
	EventLoaded:            "loaded",
	EventPersistenceFailed: "persistence_failed",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is a single notification. Err is set for EventPersistenceFailed.
type Event struct {
	Type EventType
	Err  error
}

// HasEvent reports whether events contains an event of type t.
func HasEvent(events []Event, t EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}
