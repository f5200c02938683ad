package isocoins

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// tileStyle is how a tile kind looks in the terminal.
type tileStyle struct {
	glyph rune
	color core.Color
}

// tilePalette follows the order of the tiles in the tileset strip.
var tilePalette = []tileStyle{
	{'.', core.ColorGreen},     // grass
	{':', core.ColorYellow},    // sand
	{'=', core.ColorBlue},      // water
	{'~', core.ColorBrightRed}, // lava
	{',', core.ColorGray},      // stone
	{'#', core.ColorWhite},     // wall
	{'+', core.ColorCyan},      // spawn
}

var unknownTile = tileStyle{'?', core.ColorMagenta}

// styleFor picks the style of a tile index. Configured hazard, wall and
// spawn indices always look like lava, wall and spawn.
func styleFor(index int, kinds TileKinds) tileStyle {
	switch index {
	case kinds.Hazard:
		return tilePalette[3]
	case kinds.Wall:
		return tilePalette[5]
	case kinds.Spawn:
		return tilePalette[6]
	}
	if index >= 0 && index < len(tilePalette) {
		return tilePalette[index]
	}
	return unknownTile
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)

	switch g.session.Outcome() {
	case OutcomeWon:
		elapsed, _ := g.session.WinTime()
		dst.DrawOverlay("You won!", "All coins in "+formatSeconds(elapsed), "Press R to restart")
	case OutcomeLost:
		dst.DrawOverlay("Game over", "You stepped on lava!", "Press R to restart")
	default:
		if g.paused {
			dst.DrawOverlay("Paused", "Press P to continue")
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	collected, total := g.session.Coins()
	hud := fmt.Sprintf(" Iso Coins | Map: %s | Coins: %d/%d | Time: %s",
		g.mapName, collected, total, formatSeconds(g.session.Elapsed()))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws tiles back to front, then coins, then the player.
func (g *Game) renderGrid(dst *core.Screen) {
	proj := g.projector()
	grid := g.session.Grid()
	kinds := g.session.Rules().Kinds
	player := g.session.Player()

	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			style := styleFor(grid.At(i, j).Index, kinds)
			if i == player.Row && j == player.Col {
				style.color = style.color.Dim()
			}

			top := proj.Project(i, j)
			x0, y0 := int(math.Floor(top.X)), int(math.Floor(top.Y))
			x1, y1 := int(math.Ceil(top.X+proj.TileW)), int(math.Ceil(top.Y+proj.TileH))
			for sy := y0; sy < y1; sy++ {
				for sx := x0; sx < x1; sx++ {
					if proj.Contains(i, j, float64(sx)+0.5, float64(sy)+0.5) {
						dst.SetWithColor(sx, sy+hudHeight, style.glyph, style.color)
					}
				}
			}
		}
	}

	coin := g.session.Rules().Coin.Glyph(g.session.CoinFrame())
	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			if grid.At(i, j).HasCoin {
				c := proj.Center(i, j)
				dst.SetWithColor(int(c.X), int(c.Y)+hudHeight, coin, core.ColorBrightYellow)
			}
		}
	}

	if grid.InBounds(player.Row, player.Col) {
		glyph := g.session.PlayerAnimation().Glyph(g.session.PlayerFrame())
		color := core.ColorBrightWhite
		switch g.session.Outcome() {
		case OutcomeWon:
			color = core.ColorBrightGreen
		case OutcomeLost:
			color = core.ColorBrightRed
		}
		c := proj.Center(player.Row, player.Col)
		dst.SetWithColor(int(c.X), int(c.Y)+hudHeight, glyph, color)
	}
}
