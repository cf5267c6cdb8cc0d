package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yeo-develop/crappybird/internal/core"
	"github.com/yeo-develop/crappybird/internal/games/flappy"
)

// helpRows is the number of terminal rows reserved under the playfield.
const helpRows = 1

// Model is the Bubble Tea model that runs the game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	start      time.Time // Time of the first tick; frame times count from here
	started    bool
	best       int    // Best score of this session, never persisted
	shotDir    string // Screenshot directory, empty disables screenshots
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so Init can stay side-effect free.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(playfieldConfig(cfg))

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		shotDir:    defaultScreenshotDir(),
	}
}

// defaultScreenshotDir returns ~/.crappybird/screenshots, or empty if home is unavailable.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crappybird", "screenshots")
}

// WithScreenshotDir returns a copy of m that saves screenshots to dir.
// An empty dir disables screenshots.
func (m Model) WithScreenshotDir(dir string) Model {
	m.shotDir = dir
	return m
}

// playfieldRows returns the rows left for the game after the help line.
func playfieldRows(screenH int) int {
	return core.Max(screenH-helpRows, 0)
}

func playfieldConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = playfieldRows(cfg.ScreenH)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Screenshot) {
			if m.shotDir != "" {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.SaveScreenshot(m.shotDir)
			}
			return m, nil
		}
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(m.keys.MouseAction(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleAction records input for the next frame.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The run keeps going; only
// the playfield height changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.game.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if !m.started {
		m.start = t
		m.started = true
	}

	result := m.game.Step(t.Sub(m.start), m.inputFrame)
	m.gameState = result.State
	if m.gameState.Score > m.best {
		m.best = m.gameState.Score
	}

	// Input is edge-triggered: each tap is consumed by exactly one frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// GameState returns the state reported by the latest frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := m.help.View(m.keys)
	if m.best > 0 {
		status = fmt.Sprintf("best %d • %s", m.best, status)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status)
}

// SaveScreenshot writes the current screen as plain text to dir and
// returns the file path.
func (m Model) SaveScreenshot(dir string) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game *flappy.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // clicks flap
	)

	_, err := p.Run()
	return err
}
