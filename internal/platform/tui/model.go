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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	input     core.InputFrame
	gameState core.GameState
	keys      GameKeyMap
	help      help.Model
	log       *log.Logger

	// Full terminal size; the game gets what the footer leaves.
	width, height int

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the full terminal size.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		log:    logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse steers the paddle from pointer motion. A left click restarts
// a finished game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.SetPointer(msg.X)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.gameState.GameOver {
		m.input.Set(core.ActionRestart)
	}
	return m, nil
}

// relayout fits the game screen to the terminal minus the footer.
func (m *Model) relayout() {
	m.help.Width = m.width
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

func (m Model) gameHeight() int {
	return max(0, m.height-lipgloss.Height(m.footer()))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.gameState = result.State

	// The game keeps the last pointer position itself.
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

func (m Model) footer() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program for game. cfg carries the full terminal size.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // paddle follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
