package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// helpHeight is the number of rows reserved below the game for the key help.
const helpHeight = 1

// Game is a session the terminal loop can drive.
type Game interface {
	// Update advances the game by elapsed wall-clock time with the frame's input.
	Update(elapsed time.Duration, in core.InputFrame) core.StepResult
	// Render draws the current screen into dst.
	Render(dst *core.Screen)
	// GameState returns the current summary without advancing anything.
	GameState() core.GameState
}

// debugStater is implemented by games that can dump their internals for debug logs.
type debugStater interface {
	DebugState() string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	inputFrame    core.InputFrame
	gameState     core.GameState
	lastFrame     time.Time
	screenshotDir string
	status        string // Shown next to the help line
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all log output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		inputFrame:    core.NewInputFrame(),
		gameState:     game.GameState(),
		screenshotDir: ScreenshotDir(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "screen", m.gameState.Screen, "fps", m.config.TickRate)
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; layout is recomputed on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleFrame runs one frame of the game with the time since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = max(now.Sub(m.lastFrame), 0)
	}
	m.lastFrame = now

	result := m.game.Update(elapsed, m.inputFrame)
	m.inputFrame.Clear()

	m.logTransition(m.gameState, result.State)
	m.gameState = result.State

	if result.Quit {
		m.logger.Info("quit requested", "screen", m.gameState.Screen)
		m.quitting = true
		return m, tea.Quit
	}

	return m, frameCmd(m.config.TickRate)
}

// logTransition records screen changes and finished games.
func (m Model) logTransition(prev, next core.GameState) {
	if prev.Screen == next.Screen {
		return
	}
	m.logger.Debug("screen changed", "from", prev.Screen, "to", next.Screen)
	if d, ok := m.game.(debugStater); ok {
		m.logger.Debug("game state", "dump", d.DebugState())
	}

	if next.GameOver {
		m.logger.Info("game over", "score", next.Score, "won", next.Won)
	}
}

// ScreenshotDir returns the directory screenshots are written to.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot()
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

func (m *Model) writeScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("snake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
