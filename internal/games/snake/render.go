package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide, so one cell
// covers at least 10x20 board pixels.
const (
	minCellW  = 10
	minCellH  = 20
	hudHeight = 1
	minCols   = 16
	minRows   = 6
)

// Cell glyphs.
const (
	glyphHead = '█'
	glyphTail = '▓'
	glyphFood = '●'
)

// Viewport maps board pixels onto terminal cells.
type Viewport struct {
	CellW, CellH int       // Board pixels per cell
	Cols, Rows   int       // Board size in cells
	Frame        core.Rect // Border box in screen cells
	TooSmall     bool
}

// NewViewport fits the board into a screen of the given size, below the HUD.
func NewViewport(screenW, screenH int) Viewport {
	availW := screenW - 2
	availH := screenH - hudHeight - 2
	if availW < minCols || availH < minRows {
		return Viewport{TooSmall: true}
	}

	v := Viewport{
		CellW: max(minCellW, core.CeilDiv(BoardWidth, availW)),
		CellH: max(minCellH, core.CeilDiv(BoardHeight, availH)),
	}
	v.Cols = core.CeilDiv(BoardWidth, v.CellW)
	v.Rows = core.CeilDiv(BoardHeight, v.CellH)
	v.Frame = core.NewRect((screenW-v.Cols-2)/2, hudHeight, v.Cols+2, v.Rows+2)
	return v
}

// Cells converts a board rectangle to the screen cells it touches, clipped
// to the inside of the frame. ok is false when nothing is visible.
func (v Viewport) Cells(r core.Rect) (core.Rect, bool) {
	c0 := core.Clamp(core.FloorDiv(r.X, v.CellW), 0, v.Cols)
	c1 := core.Clamp(core.CeilDiv(r.Right(), v.CellW), 0, v.Cols)
	r0 := core.Clamp(core.FloorDiv(r.Y, v.CellH), 0, v.Rows)
	r1 := core.Clamp(core.CeilDiv(r.Bottom(), v.CellH), 0, v.Rows)
	if c1 <= c0 || r1 <= r0 {
		return core.Rect{}, false
	}
	return core.NewRect(v.Frame.X+1+c0, v.Frame.Y+1+r0, c1-c0, r1-r0), true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.state.Snapshot()

	g.renderHUD(dst, snap)

	vp := NewViewport(dst.Width(), dst.Height())
	if vp.TooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue", core.ColorBrightWhite)
		return
	}

	dst.DrawBox(vp.Frame, core.ColorGray)
	renderBoard(dst, vp, snap)

	switch snap.Phase() {
	case PhaseGameOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d - press %s to restart", snap.Score, g.startLabel), core.ColorBrightRed)
	case PhaseNotStarted:
		renderOverlay(dst, fmt.Sprintf("press %s to start", g.startLabel), "arrows steer, ESC stops", core.ColorBrightWhite)
	}
}

// renderHUD draws the top status line. The score is always visible.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s | Score: %d  Speed: %d  Length: %d", g.Title(), snap.Score, snap.Speed, snap.DesiredTailLength)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderBoard draws tail, head and food.
func renderBoard(dst *core.Screen, vp Viewport, snap Snapshot) {
	for _, seg := range snap.Tail {
		if cells, ok := vp.Cells(seg); ok {
			dst.DrawRect(cells, glyphTail, core.ColorDarkGreen)
		}
	}
	if cells, ok := vp.Cells(snap.Head); ok {
		dst.DrawRect(cells, glyphHead, core.ColorBrightGreen)
	}
	if snap.FoodVisible {
		if cells, ok := vp.Cells(snap.Food); ok {
			dst.DrawRect(cells, glyphFood, core.ColorBrightRed)
		}
	}
}

// renderOverlay draws a centered two-line message box; the first line
// takes the given color.
func renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
