package colorwipe

import "github.com/vovakirdan/tile-arcade/internal/core"

const hudHeight = 2

// layout places the board on the screen below the HUD.
type layout struct {
	originX, originY int
	cellW, cellH     int
}

func newLayout(screenW, screenH, rows, cols int) layout {
	cellW := core.Clamp(screenW/max(cols, 1), 1, 10)
	cellH := core.Clamp((screenH-hudHeight)/max(rows, 1), 1, 5)
	return layout{
		originX: (screenW - cellW*cols) / 2,
		originY: hudHeight + (screenH-hudHeight-cellH*rows)/2,
		cellW:   cellW,
		cellH:   cellH,
	}
}

// rect returns the screen area of a cell.
func (l layout) rect(row, col int) core.Rect {
	return core.NewRect(l.originX+col*l.cellW, l.originY+row*l.cellH, l.cellW, l.cellH)
}

// cellAt maps a screen position to a cell; the result may be off the board.
func (l layout) cellAt(x, y int) (row, col int) {
	dx, dy := x-l.originX, y-l.originY
	if dx < 0 || dy < 0 {
		return -1, -1
	}
	return dy / l.cellH, dx / l.cellW
}
