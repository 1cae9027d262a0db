package snake

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newGame(12345)
	g2 := newGame(12345)

	for i := 0; i < 600; i++ {
		var in core.InputFrame
		switch i {
		case 0:
			in = frame(core.ActionStart)
		case 60:
			in = frame(core.ActionDown)
		case 120:
			in = frame(core.ActionRight)
		case 200:
			in = frame(core.ActionUp)
		}

		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%s\n%s", g1.DebugState(), g2.DebugState())
	}
	if g1.Ticks() != 600 || g2.Ticks() != 600 {
		t.Errorf("Ticks() = %d/%d, expected 600", g1.Ticks(), g2.Ticks())
	}
}

func TestStepStartsAndMoves(t *testing.T) {
	g := newGame(1)

	res := g.Step(frame())
	if !res.State.Stopped {
		t.Fatal("game should wait for a start action")
	}

	res = g.Step(frame(core.ActionStart))
	if res.State.Stopped || res.State.GameOver {
		t.Fatalf("state after start = %+v, expected running", res.State)
	}
	// Start resets, then the same step ticks once.
	if x := g.Snapshot().Head.X; x != StartHeadX+InitialSpeed {
		t.Errorf("head x = %d, expected %d", x, StartHeadX+InitialSpeed)
	}
}

func TestStepAppliesActionsInOrder(t *testing.T) {
	g := newGame(1)
	g.Step(frame(core.ActionStart))

	g.Step(frame(core.ActionLeft, core.ActionUp))
	if dir := g.Snapshot().Direction; dir != (Vector{DY: -2}) {
		t.Errorf("direction = %+v, expected the later Up to win", dir)
	}

	g.Step(frame(core.ActionUp, core.ActionLeft))
	if dir := g.Snapshot().Direction; dir != (Vector{DX: -2}) {
		t.Errorf("direction = %+v, expected the later Left to win", dir)
	}
}

func TestStepStopAndQuit(t *testing.T) {
	g := newGame(1)
	g.Step(frame(core.ActionStart))

	res := g.Step(frame(core.ActionQuit))
	if res.State.Stopped {
		t.Error("quit is handled by the platform and must not stop the game")
	}

	res = g.Step(frame(core.ActionStop))
	if !res.State.Stopped || res.State.GameOver {
		t.Errorf("state after stop = %+v, expected stopped without game over", res.State)
	}
}

func TestSimulatedClock(t *testing.T) {
	g := newGame(1)
	for i := 0; i < 60; i++ {
		g.Step(frame())
	}

	expected := 60 * (time.Second / 60)
	if g.Elapsed() != expected {
		t.Errorf("Elapsed() = %v, expected %v", g.Elapsed(), expected)
	}

	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 0})
	g.Step(frame())
	if g.Elapsed() != time.Second/60 {
		t.Errorf("Elapsed() with default tick rate = %v, expected %v", g.Elapsed(), time.Second/60)
	}
}

func TestFoodCooldownInFrames(t *testing.T) {
	g := newGame(1)
	g.Step(frame(core.ActionStart))

	// Run until the start food is eaten.
	steps := 0
	for g.Snapshot().FoodVisible {
		g.Step(frame())
		steps++
		if steps > 100 {
			t.Fatal("snake never reached the start food")
		}
	}
	if g.State().Score != 1 {
		t.Fatalf("Score = %d, expected 1", g.State().Score)
	}

	// Hidden for about half a second of frames.
	hidden := 0
	for !g.Snapshot().FoodVisible {
		g.Step(frame())
		hidden++
		if hidden > 40 {
			t.Fatal("food never reappeared")
		}
	}
	if hidden < 29 || hidden > 31 {
		t.Errorf("food hidden for %d frames, expected about 30", hidden)
	}
}

func TestGameOverReportedInState(t *testing.T) {
	g := newGame(1)
	g.Step(frame(core.ActionStart))
	g.Step(frame(core.ActionUp))

	// 150px up at 2px per tick leaves the board after 76 ticks.
	var res core.StepResult
	for i := 0; i < 100 && !res.State.GameOver; i++ {
		res = g.Step(frame())
	}

	if !res.State.GameOver || !res.State.Stopped {
		t.Fatalf("state = %+v, expected game over", res.State)
	}

	res = g.Step(frame(core.ActionStart))
	if res.State.GameOver || res.State.Stopped || res.State.Score != 0 {
		t.Errorf("state after restart = %+v, expected a fresh round", res.State)
	}
}
