package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/invasion/internal/invasion"
)

// DefaultSaveFile is the save file used by --save-file without a value.
const DefaultSaveFile = "~/.invasion/savefile.msgpack"

// savedGame is the on-disk layout of a save file.
type savedGame struct {
	Level int `msgpack:"level"`
	Score int `msgpack:"score"`
	Lives int `msgpack:"lives"`
}

// SaveFile stores a single saved game in a msgpack file. It implements
// invasion.Persistence.
type SaveFile struct {
	path string
}

// NewSaveFile returns a save file at path. A leading ~ is expanded. The file
// is not touched until the first Save or Load.
func NewSaveFile(path string) (*SaveFile, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &SaveFile{path: p}, nil
}

// Path returns the expanded file path.
func (f *SaveFile) Path() string {
	return f.path
}

// Save replaces the file contents. The file is written next to its final
// location and renamed, so a crash never leaves a half-written save.
func (f *SaveFile) Save(r invasion.Record) error {
	data, err := msgpack.Marshal(&savedGame{Level: r.Level, Score: r.Score, Lives: r.Lives})
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write save file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: cannot replace save file: %w", err)
	}
	return nil
}

// Load reads the file. A missing file yields ErrNoSave.
func (f *SaveFile) Load() (invasion.Record, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return invasion.Record{}, ErrNoSave
	}
	if err != nil {
		return invasion.Record{}, fmt.Errorf("storage: cannot read save file: %w", err)
	}

	var g savedGame
	if err := msgpack.Unmarshal(data, &g); err != nil {
		return invasion.Record{}, fmt.Errorf("storage: corrupt save file %s: %w", f.path, err)
	}
	return invasion.Record{Level: g.Level, Score: g.Score, Lives: g.Lives}, nil
}

var _ invasion.Persistence = (*SaveFile)(nil)
