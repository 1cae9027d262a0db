// Package snake implements a single-player Snake on a fixed 640x480 pixel
// board: the snake grows as it eats, speeds up every ten points and the round
// ends when the head leaves the board or runs into the tail.
//
// State holds the rules and is driven with explicit timestamps. Game wraps it
// for fixed-rate frame loops and draws it into a core.Screen.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// clockEpoch is the timestamp of tick zero on the simulated clock.
var clockEpoch = time.Unix(0, 0).UTC()

// Game runs a State at a fixed tick rate with a simulated clock, so that a
// given seed and input sequence always plays out the same way.
type Game struct {
	state      *State
	tick       uint64
	frame      time.Duration
	clock      time.Time
	startLabel string
}

// New creates a game. Reset must be called before the first Step.
func New() *Game {
	return &Game{startLabel: "SPACE"}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// SetStartLabel sets the key name shown in the start and restart prompts.
func (g *Game) SetStartLabel(label string) {
	if label != "" {
		g.startLabel = label
	}
}

// Reset creates a fresh, not yet started game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.state = NewState(cfg.Seed)
	g.tick = 0
	g.frame = time.Second / time.Duration(tickRate)
	g.clock = clockEpoch
}

// Step applies the frame's actions in arrival order, then advances the
// simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	for _, a := range input.Actions() {
		g.state.ApplyInput(a)
	}

	g.tick++
	g.clock = g.clock.Add(g.frame)
	g.state.Tick(g.clock)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.GameOver(),
		Stopped:  g.state.Stopped(),
	}
}

// Snapshot returns an immutable view of the board.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Ticks returns the number of steps since the last Reset.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Elapsed returns simulated time since the last Reset.
func (g *Game) Elapsed() time.Duration {
	return g.clock.Sub(clockEpoch)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	snap := g.state.Snapshot()
	return fmt.Sprintf("tick=%d phase=%s score=%d speed=%d head=(%d,%d) dir=(%d,%d) tail=%d/%d food=(%d,%d) visible=%v",
		g.tick, snap.Phase(), snap.Score, snap.Speed, snap.Head.X, snap.Head.Y,
		snap.Direction.DX, snap.Direction.DY, len(snap.Tail), snap.DesiredTailLength+TailBuffer,
		snap.Food.X, snap.Food.Y, snap.FoodVisible)
}
