// Package window runs the snake core in a native window at the board's
// 640x480 pixel geometry.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	background = color.RGBA{0x10, 0x10, 0x10, 0xff}
	tailColor  = color.RGBA{0x1b, 0x7a, 0x2e, 0xff}
	headColor  = color.RGBA{0x3c, 0xd0, 0x4f, 0xff}
	foodColor  = color.RGBA{0xe0, 0x3a, 0x3a, 0xff}
)

// keyActions lists the keys polled each frame, in the order they are applied.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeySpace, core.ActionStart},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyEscape, core.ActionStop},
	{ebiten.KeyQ, core.ActionQuit},
}

// Window implements ebiten.Game around a snake.Game.
type Window struct {
	game   *snake.Game
	input  core.InputFrame
	state  core.GameState
	logger *log.Logger
}

// New creates a window game for the given runtime config.
func New(cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW = snake.BoardWidth
	cfg.ScreenH = snake.BoardHeight

	g := snake.New()
	g.Reset(cfg)

	return &Window{
		game:   g,
		state:  g.State(),
		logger: logger,
	}
}

// Update polls input and advances the game by one frame.
func (w *Window) Update() error {
	return w.Step(inpututil.IsKeyJustPressed)
}

// Step runs one frame with the keys for which pressed reports true.
// It returns ebiten.Termination when a quit key was pressed.
func (w *Window) Step(pressed func(ebiten.Key) bool) error {
	w.input.Clear()
	for _, ka := range keyActions {
		if pressed(ka.key) {
			w.input.Set(ka.action)
		}
	}
	if w.input.Has(core.ActionQuit) {
		w.logger.Debug("quit requested", "score", w.state.Score)
		return ebiten.Termination
	}

	w.game.Step(w.input)

	next := w.game.State()
	w.logTransition(w.state, next)
	w.state = next
	return nil
}

// logTransition reports state machine changes.
func (w *Window) logTransition(prev, cur core.GameState) {
	switch {
	case prev.Stopped && !cur.Stopped:
		w.logger.Info("round started")
	case !prev.GameOver && cur.GameOver:
		w.logger.Info("game over", "score", cur.Score, "ticks", w.game.Ticks())
	case !prev.Stopped && cur.Stopped:
		w.logger.Info("round stopped", "score", cur.Score)
	}
}

// State returns the game state as of the last frame.
func (w *Window) State() core.GameState {
	return w.state
}

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := w.game.Snapshot()

	for _, seg := range snap.Tail {
		fillRect(screen, seg, tailColor)
	}
	fillRect(screen, snap.Head, headColor)
	if snap.FoodVisible {
		fillRect(screen, snap.Food, foodColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Speed: %d", snap.Score, snap.Speed), 8, 4)
	switch snap.Phase() {
	case snake.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press SPACE to restart", 210, 230)
	case snake.PhaseNotStarted:
		ebitenutil.DebugPrintAt(screen, "press SPACE to start", 250, 230)
	}
}

// Layout keeps the logical screen at board size regardless of window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return snake.BoardWidth, snake.BoardHeight
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	ebiten.SetWindowSize(snake.BoardWidth, snake.BoardHeight)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(cfg.TickRate)

	w := New(cfg, logger)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
