package snake

import (
	"math"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// hudHeight is the HUD line plus its separator.
const hudHeight = 2

// RequiredScreen returns the terminal size needed to draw board: one
// character per block, a border, and the HUD.
func RequiredScreen(b Board) (w, h int) {
	return b.Cols() + 2, b.Rows() + 2 + hudHeight
}

func (e *engine) render(dst *core.Screen, hud string) {
	dst.Clear()

	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}

	w, h := RequiredScreen(e.board)
	if dst.Width() < w || dst.Height() < h {
		RenderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	frame := area.CenterIn(w, h-hudHeight)
	dst.DrawBox(frame, core.ColorGray)

	plot := func(c Cell, r rune, color core.Color) {
		col, row := e.board.GridPos(c)
		dst.SetColored(frame.X+1+col, frame.Y+1+row, r, color)
	}

	if e.food != NoFood {
		plot(e.food, foodGlyph(e.frame), core.ColorBrightRed)
	}

	last := len(e.body) - 1
	for i := last; i >= 0; i-- {
		switch i {
		case 0:
			plot(e.body[i], headGlyph(e.dir), core.ColorBrightGreen)
		case last:
			plot(e.body[i], '·', core.ColorGreen)
		default:
			plot(e.body[i], 'o', core.ColorGreen)
		}
	}
}

func headGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return '^'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '>'
	}
}

// foodGlyph pulses the food with the frame counter.
func foodGlyph(frame int) rune {
	if 1+0.15*math.Sin(float64(frame)) >= 1 {
		return '@'
	}
	return '*'
}

// RenderOverlay draws a centered two-line message box.
func RenderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().CenterIn(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
