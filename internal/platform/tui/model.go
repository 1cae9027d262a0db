package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running the snake game.
// Each model owns its own game, so SSH sessions never share state.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model with a fresh, not yet started game.
func NewModel(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game := snake.New()
	game.SetStartLabel(keys.StartLabel())
	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:     cfg,
		keys:       keys,
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.gameState.Score)
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
// The board has a fixed size in pixels, so only the mapping to cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: queued input, then the simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransition reports state machine changes and meals.
func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case prev.Stopped && !cur.Stopped:
		m.logger.Info("round started")
	case !prev.GameOver && cur.GameOver:
		m.logger.Info("game over", "score", cur.Score, "ticks", m.game.Ticks(), "elapsed", m.game.Elapsed())
		m.logger.Debug("final state", "state", m.game.DebugState())
	case !prev.Stopped && cur.Stopped:
		m.logger.Info("round stopped", "score", cur.Score)
	}

	if cur.Score > prev.Score && !cur.Stopped {
		snap := m.game.Snapshot()
		m.logger.Debug("food eaten", "score", cur.Score, "speed", snap.Speed, "length", snap.DesiredTailLength)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program in the local terminal.
func Run(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) error {
	model := NewModel(cfg, keys, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
