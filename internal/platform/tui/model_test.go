package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invasion/internal/config"
	"github.com/vovakirdan/invasion/internal/core"
	"github.com/vovakirdan/invasion/internal/invasion"
	"github.com/vovakirdan/invasion/internal/storage"
)

var testNow = time.Unix(1_700_000_000, 0)

func newTestModel(t *testing.T, opts ModelOptions, gameOpts ...invasion.Option) Model {
	t.Helper()
	s, err := invasion.NewSettings(config.DefaultInvasionConfig())
	if err != nil {
		t.Fatalf("NewSettings() failed: %v", err)
	}
	gameOpts = append([]invasion.Option{invasion.WithSleeper(func(time.Duration) {})}, gameOpts...)
	g := invasion.New(s, gameOpts...)

	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, opts)
	m.clock = func() time.Time { return testNow }
	return m
}

// send feeds msg to the model and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg(testNow))
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t, ModelOptions{})

	m, _ = tick(t, m)
	if m.gameState.Active || m.gameState.Phase != invasion.PhaseIdle {
		t.Errorf("state = %+v, expected idle", m.gameState)
	}
	if !m.gameState.PointerVisible {
		t.Error("PointerVisible = false while idle, expected true")
	}
}

func TestModelEnterStartsGame(t *testing.T) {
	m := newTestModel(t, ModelOptions{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := tick(t, m)

	if !m.gameState.Active {
		t.Error("Active = false after enter, expected true")
	}
	if cmd == nil {
		t.Error("tick returned no command, expected the next tick")
	}
}

func TestModelClickStartsGame(t *testing.T) {
	m := newTestModel(t, ModelOptions{})

	// 80x24 playfield: the default Play control covers columns 30-49 and
	// rows 11-13.
	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = tick(t, m)

	if !m.gameState.Active {
		t.Error("Active = false after clicking Play, expected true")
	}
}

func TestModelClickOutsideControl(t *testing.T) {
	m := newTestModel(t, ModelOptions{})

	m, _ = send(t, m, tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = tick(t, m)

	if m.gameState.Active {
		t.Error("Active = true after clicking outside Play, expected false")
	}
}

func TestModelHeldKeyMovesShip(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)

	before := m.game.Ship().X
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 5; i++ {
		m, _ = tick(t, m)
	}

	if got := m.game.Ship().X; got >= before {
		t.Errorf("Ship().X = %v, expected less than %v", got, before)
	}

	// Without repeats the key counts as released.
	m.clock = func() time.Time { return testNow.Add(time.Second) }
	stopped := m.game.Ship().X
	m, _ = tick(t, m)
	if got := m.game.Ship().X; got != stopped {
		t.Errorf("Ship().X = %v after release, expected %v", got, stopped)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, ModelOptions{})

	m, _ = send(t, m, runeKey('q'))
	m, cmd := tick(t, m)

	if !m.quitting {
		t.Error("quitting = false, expected true")
	}
	if cmd == nil {
		t.Fatal("tick returned no command, expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("tick command did not quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestModelRecordsScoreOnce(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	save, err := storage.NewSaveFile(filepath.Join(dir, "save.msgpack"))
	if err != nil {
		t.Fatalf("NewSaveFile() failed: %v", err)
	}
	if err := save.Save(invasion.Record{Level: 3, Score: 450, Lives: 2}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	m := newTestModel(t, ModelOptions{Store: store, Board: "normal", Player: "ann"}, invasion.WithPersistence(save))
	m, _ = send(t, m, runeKey('l'))
	m, _ = tick(t, m)

	if got := m.game.Stats().Score; got != 450 {
		t.Fatalf("Score = %d after load, expected 450", got)
	}

	over := []invasion.Event{{Type: invasion.EventGameOver}}
	m.handleEvents(over)
	m.handleEvents(over)

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("TopScores() returned %d entries, expected 1", len(scores))
	}
	if scores[0].Score != 450 || scores[0].Level != 3 || scores[0].Player != "ann" {
		t.Errorf("score entry = %+v, expected ann 450 at level 3", scores[0])
	}
}

func TestModelScoreboardOverlay(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore(storage.ScoreEntry{Board: "hard", Player: "bob", Score: 1200, Level: 4})

	m := newTestModel(t, ModelOptions{Store: store, Board: "normal"})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("scoreboard not shown after tab")
	}
	if got := m.scoreboard.Board(); got != "normal" {
		t.Errorf("Board() = %q, expected %q", got, "normal")
	}

	// Ticks keep coming but the game does not advance.
	m, cmd := tick(t, m)
	if cmd == nil || m.scoreboard == nil {
		t.Error("tick closed the scoreboard or stopped ticking")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("scoreboard still shown after esc")
	}
}
