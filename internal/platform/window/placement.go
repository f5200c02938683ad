package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/iso"
)

// Sprite sizes relative to the tile.
const (
	coinWidth    = 0.25
	coinHeight   = 0.35
	playerWidth  = 0.7
	playerHeight = 1.2
)

// placement is a destination rectangle in window pixels.
type placement struct {
	X, Y, W, H float64
}

// tilePlacement covers the tile's bounding box.
func tilePlacement(p iso.Point, tw, th float64) placement {
	return placement{X: p.X, Y: p.Y, W: tw, H: th}
}

// coinPlacement centers a coin on the tile.
func coinPlacement(p iso.Point, tw, th float64) placement {
	w, h := tw*coinWidth, th*coinHeight
	return placement{X: p.X + (tw-w)/2, Y: p.Y + (th-h)/2, W: w, H: h}
}

// playerPlacement stands the player on the tile with its feet a quarter
// tile above the bottom corner.
func playerPlacement(p iso.Point, tw, th float64) placement {
	w, h := tw*playerWidth, th*playerHeight
	return placement{X: p.X + (tw-w)/2, Y: p.Y + (th - h) - th/4, W: w, H: h}
}

// keyState reports key and mouse state; the window passes ebiten's polling
// functions and tests pass fakes.
type keyState struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// inputFrame samples the keyboard for one tick. Arrows are read as held keys
// so a held arrow keeps walking at the move cooldown. Restart and pause
// trigger on the press only.
func (k keyState) inputFrame() core.InputFrame {
	in := core.NewInputFrame()
	held := map[ebiten.Key]core.Action{
		ebiten.KeyArrowUp:    core.ActionUp,
		ebiten.KeyArrowDown:  core.ActionDown,
		ebiten.KeyArrowLeft:  core.ActionLeft,
		ebiten.KeyArrowRight: core.ActionRight,
	}
	for key, action := range held {
		if k.pressed(key) {
			in.Set(action)
		}
	}
	if k.justPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if k.justPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	return in
}

// clickStep turns a click into a step towards a neighbouring cell.
// Clicks farther than one cell away, or on the player, yield no step.
func clickStep(proj iso.Projector, player isocoins.Position, x, y float64) (dRow, dCol int) {
	i, j := proj.Cell(x, y)
	dRow, dCol = i-player.Row, j-player.Col
	if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 {
		return 0, 0
	}
	return dRow, dCol
}

// setStep adds the directional actions for a grid step.
func setStep(in *core.InputFrame, dRow, dCol int) {
	switch {
	case dRow < 0:
		in.Set(core.ActionUp)
	case dRow > 0:
		in.Set(core.ActionDown)
	}
	switch {
	case dCol < 0:
		in.Set(core.ActionLeft)
	case dCol > 0:
		in.Set(core.ActionRight)
	}
}

// tileInRange reports whether index names one of the tiles bands of a tileset.
func tileInRange(index, tiles int) bool {
	return index >= 0 && index < tiles
}
