package breakout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/breakout-host/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	WallChar   = '░'
	BrickChar  = '█'
)

// Row colors for bricks (cycling through).
var brickColors = []core.Color{core.ColorBrick, core.ColorCyan, core.ColorGreen, core.ColorYellow}

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Viewport maps world units (y up, origin at the centre) onto screen cells
// (y down, origin top-left).
type Viewport struct {
	minX, maxY float64
	sx, sy     float64
	top        int
	cols, rows int
}

// NewViewport fits bounds into a cols x rows cell area starting at row top.
func NewViewport(bounds core.Box, top, cols, rows int) Viewport {
	lo, hi := bounds.Min(), bounds.Max()
	return Viewport{
		minX: lo.X,
		maxY: hi.Y,
		sx:   float64(cols) / (hi.X - lo.X),
		sy:   float64(rows) / (hi.Y - lo.Y),
		top:  top,
		cols: cols,
		rows: rows,
	}
}

// Rect returns the cells covered by b. Every box covers at least one cell.
func (v Viewport) Rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0 := int(math.Floor((lo.X - v.minX) * v.sx))
	x1 := int(math.Ceil((hi.X - v.minX) * v.sx))
	y0 := int(math.Floor((v.maxY - hi.Y) * v.sy))
	y1 := int(math.Ceil((v.maxY - lo.Y) * v.sy))

	x0 = core.Clamp(x0, 0, v.cols-1)
	y0 = core.Clamp(y0, 0, v.rows-1)
	x1 = core.Clamp(x1, x0+1, v.cols)
	y1 = core.Clamp(y1, y0+1, v.rows)
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

// Cell returns the cell containing world point p.
func (v Viewport) Cell(p core.Vec2) (int, int) {
	x := core.Clamp(int(math.Floor((p.X-v.minX)*v.sx)), 0, v.cols-1)
	y := core.Clamp(int(math.Floor((v.maxY-p.Y)*v.sy)), 0, v.rows-1)
	return x, v.top + y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateFailed {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start Breakout")
		dst.DrawTextCentered(dst.Height()/2+1, truncate(fmt.Sprint(g.err), dst.Width()))
		return
	}

	// Check for screen too small
	if dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	vp := NewViewport(g.world.Bounds, hudRows, dst.Width(), dst.Height()-hudRows)
	g.renderColliders(dst, vp)
	g.renderBall(dst, vp)
	g.renderOverlay(dst)
}

// renderHUD draws the scoreboard text and the speed.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, g.world.Scoreboard.Text, core.ColorYellow)

	speedText := fmt.Sprintf("Speed: %.0f", g.speed)
	dst.DrawTextColor(dst.Width()-len(speedText)-1, 0, speedText, core.ColorGray)
}

// renderColliders draws walls, bricks and the paddle.
func (g *Game) renderColliders(dst *core.Screen, vp Viewport) {
	for _, c := range g.world.Colliders {
		r := vp.Rect(*c.Box)
		switch c.Kind {
		case ColliderSolid:
			dst.FillRect(r, WallChar, core.ColorGray)
		case ColliderScorable:
			dst.FillRect(r, BrickChar, brickColors[c.Row%len(brickColors)])
		case ColliderPaddle:
			dst.FillRect(r, PaddleChar, core.ColorPaddle)
		}
	}
}

// renderBall draws the ball on top of everything else.
func (g *Game) renderBall(dst *core.Screen, vp Viewport) {
	x, y := vp.Cell(g.world.Ball.Box.Center)
	dst.SetColor(x, y, BallChar, core.ColorBall)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateCleared:
		subtitle := fmt.Sprintf("%s  |  Press R to restart", g.world.Scoreboard.Text)
		drawCenteredBox(dst, "ALL BRICKS CLEARED", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-utf8.RuneCountInString(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
