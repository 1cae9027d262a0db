package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewViewport(t *testing.T) {
	vp := NewViewport(80, 24)

	if vp.TooSmall {
		t.Fatal("80x24 should fit the board")
	}
	if vp.CellW != 10 || vp.CellH != 23 {
		t.Errorf("cell = %dx%d, expected 10x23", vp.CellW, vp.CellH)
	}
	if vp.Cols != 64 || vp.Rows != 21 {
		t.Errorf("board = %dx%d cells, expected 64x21", vp.Cols, vp.Rows)
	}
	if vp.Frame != core.NewRect(7, 1, 66, 23) {
		t.Errorf("Frame = %+v, expected {7 1 66 23}", vp.Frame)
	}

	big := NewViewport(200, 60)
	if big.CellW != minCellW || big.CellH != minCellH || big.Cols != 64 || big.Rows != 24 {
		t.Errorf("large screen viewport = %+v, expected the minimum cell size", big)
	}

	if !NewViewport(20, 8).TooSmall {
		t.Error("20x8 should be too small")
	}
}

func TestViewportCells(t *testing.T) {
	vp := NewViewport(80, 24)

	tests := []struct {
		name     string
		r        core.Rect
		expected core.Rect
		visible  bool
	}{
		{"start head", core.NewRect(150, 150, 20, 20), core.NewRect(23, 8, 2, 2), true},
		{"start food", core.NewRect(250, 150, 10, 10), core.NewRect(33, 8, 1, 1), true},
		{"partly off left", core.NewRect(-10, 150, 20, 20), core.NewRect(8, 8, 1, 2), true},
		{"fully off left", core.NewRect(-30, 150, 20, 20), core.Rect{}, false},
		{"fully off bottom", core.NewRect(300, 490, 20, 20), core.Rect{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := vp.Cells(tc.r)
			if ok != tc.visible {
				t.Fatalf("visible = %v, expected %v", ok, tc.visible)
			}
			if got != tc.expected {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRenderNotStarted(t *testing.T) {
	g := newGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD = %q, expected the score", screen.Row(0))
	}
	if !strings.Contains(out, "press SPACE to start") {
		t.Error("stopped game should show the start prompt")
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("not-started game should not show game over")
	}
	if screen.Get(7, 1) != '┌' {
		t.Errorf("board frame corner = %q, expected '┌'", screen.Get(7, 1))
	}
}

func TestRenderRunning(t *testing.T) {
	g := newGame(1)
	g.Step(frame(core.ActionStart))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if strings.Contains(screen.String(), "press SPACE") {
		t.Error("running game should not show the start prompt")
	}

	head := screen.GetCell(23, 8)
	if head.Rune != glyphHead || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %q/%v, expected head glyph", head.Rune, head.Color)
	}
	food := screen.GetCell(33, 8)
	if food.Rune != glyphFood || food.Color != core.ColorBrightRed {
		t.Errorf("food cell = %q/%v, expected food glyph", food.Rune, food.Color)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newGame(1)
	g.SetStartLabel("ENTER")
	g.Step(frame(core.ActionStart))
	g.state.head = core.NewRect(-1, 150, SnakeSize, SnakeSize)
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over should be shown")
	}
	if !strings.Contains(out, "press ENTER to restart") {
		t.Error("restart hint should use the start label")
	}
	if strings.Contains(out, "to start") {
		t.Error("start prompt is only for a game that is not over")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(1)
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("tiny screen should ask for a resize")
	}
}
