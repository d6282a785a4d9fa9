package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invasion/internal/core"
	"github.com/vovakirdan/invasion/internal/invasion"
	"github.com/vovakirdan/invasion/internal/platform/session"
	"github.com/vovakirdan/invasion/internal/storage"
)

// ModelOptions are the collaborators of a game screen. All fields are optional.
type ModelOptions = session.Options

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *invasion.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	recorder   *session.Recorder
	keys       KeyMap
	help       help.Model
	hold       *holdTracker
	inputFrame core.InputFrame
	gameState  invasion.GameState
	scoreboard *ScoreboardModel
	clock      func() time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *invasion.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		recorder:   session.NewRecorder(game, opts),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       newHoldTracker(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		clock:      time.Now,
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(rows int) int {
	if rows > 1 {
		return rows - 1
	}
	return rows
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		if _, ok := msg.(TickMsg); !ok {
			return m.updateScoreboard(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		if opts := m.recorder.Options(); !m.gameState.Active && opts.Store != nil {
			sb := NewScoreboardModel(opts.Store, opts.Board, m.config.ScreenW, m.config.ScreenH)
			sb.embedded = true
			m.scoreboard = &sb
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.clock())
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns a left click into a click in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	s := m.game.Settings()
	vp := invasion.NewViewport(s.ScreenWidth, s.ScreenHeight, m.screen.Width(), m.screen.Height())
	x, y := vp.ToWorld(msg.X, msg.Y)
	m.inputFrame.ClickAt(x, y)
	return m, nil
}

// handleResize processes window resize events. The playfield is fixed in
// world units, so the game keeps running and is only rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Apply(&m.inputFrame, m.clock())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	if result.Stop {
		m.quitting = true
		m.recorder.Close()
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleEvents passes step events to the recorder. Held keys are dropped
// whenever a game starts or ends.
func (m *Model) handleEvents(events []invasion.Event) {
	m.recorder.Handle(events)
	if invasion.HasEvent(events, invasion.EventGameStarted) || invasion.HasEvent(events, invasion.EventGameOver) {
		m.hold.Reset()
	}
}

// updateScoreboard forwards messages to the scoreboard overlay.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, playfieldHeight(wsm.Height))
	}

	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.scoreboard = nil
		m.inputFrame.Set(core.ActionQuit)
		return m, nil
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir, err := storage.ExpandHome(filepath.Join("~", ".invasion", "screenshots"))
	if err != nil {
		m.recorder.Logger().Warn("could not save screenshot", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.recorder.Logger().Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("invasion_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.recorder.Logger().Warn("could not save screenshot", "error", err)
		return
	}
	m.recorder.Logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game *invasion.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the Play control
	)

	_, err := p.Run()
	return err
}
