package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/invasion/internal/invasion"
)

// SaveSlot is a per-profile saved game in the database. It implements
// invasion.Persistence.
type SaveSlot struct {
	store   *Store
	profile string
}

// SaveSlot returns the slot for the given profile. Local play uses the
// system user name; SSH sessions use the remote user name.
func (s *Store) SaveSlot(profile string) *SaveSlot {
	return &SaveSlot{store: s, profile: profile}
}

// Profile returns the profile the slot belongs to.
func (ss *SaveSlot) Profile() string {
	return ss.profile
}

// Save overwrites the profile's saved game.
func (ss *SaveSlot) Save(r invasion.Record) error {
	_, err := ss.store.db.Exec(
		`INSERT INTO saves (profile, level, score, lives, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
		   level = excluded.level,
		   score = excluded.score,
		   lives = excluded.lives,
		   updated_at = excluded.updated_at`,
		ss.profile, r.Level, r.Score, r.Lives,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game for %q: %w", ss.profile, err)
	}
	return nil
}

// Load returns the profile's saved game, or ErrNoSave.
func (ss *SaveSlot) Load() (invasion.Record, error) {
	var r invasion.Record
	err := ss.store.db.QueryRow(
		"SELECT level, score, lives FROM saves WHERE profile = ?",
		ss.profile,
	).Scan(&r.Level, &r.Score, &r.Lives)

	if errors.Is(err, sql.ErrNoRows) {
		return invasion.Record{}, ErrNoSave
	}
	if err != nil {
		return invasion.Record{}, fmt.Errorf("storage: cannot load game for %q: %w", ss.profile, err)
	}
	return r, nil
}

// Delete removes the profile's saved game. Deleting a missing save is not
// an error.
func (ss *SaveSlot) Delete() error {
	if _, err := ss.store.db.Exec("DELETE FROM saves WHERE profile = ?", ss.profile); err != nil {
		return fmt.Errorf("storage: cannot delete save for %q: %w", ss.profile, err)
	}
	return nil
}

var _ invasion.Persistence = (*SaveSlot)(nil)
