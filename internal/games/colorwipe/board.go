package colorwipe

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Distance returns the Euclidean distance between two colors.
func (c RGB) Distance(o RGB) float64 {
	dr, dg, db := c.R-o.R, c.G-o.G, c.B-o.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Terminal converts the color to 8 bits per channel.
func (c RGB) Terminal() core.RGB {
	return core.RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// randomColor picks each channel from 256 levels.
func randomColor(rng *rand.Rand) RGB {
	return RGB{
		R: float64(rng.Intn(256)) / 255,
		G: float64(rng.Intn(256)) / 255,
		B: float64(rng.Intn(256)) / 255,
	}
}

// Cell is one square of the board.
type Cell struct {
	Color RGB
	Wiped bool
}

// Board is a rows×cols grid of colored cells.
type Board struct {
	rows, cols int
	cells      []Cell
}

// NewBoard fills a board with random colors. With palette > 0 the colors
// are drawn from that many distinct random colors.
func NewBoard(rows, cols int, rng *rand.Rand, palette int) *Board {
	b := &Board{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}

	var colors []RGB
	for range palette {
		colors = append(colors, randomColor(rng))
	}
	for i := range b.cells {
		if len(colors) > 0 {
			b.cells[i].Color = colors[rng.Intn(len(colors))]
		} else {
			b.cells[i].Color = randomColor(rng)
		}
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col). It panics when out of bounds.
func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.cols+col]
}

// SetColor recolors a cell.
func (b *Board) SetColor(row, col int, c RGB) {
	b.cells[row*b.cols+col].Color = c
}

// Remaining counts the cells not wiped yet.
func (b *Board) Remaining() int {
	n := 0
	for _, c := range b.cells {
		if !c.Wiped {
			n++
		}
	}
	return n
}

// Wipe removes every remaining cell within threshold of color and
// returns how many were removed.
func (b *Board) Wipe(color RGB, threshold float64) int {
	n := 0
	for i := range b.cells {
		c := &b.cells[i]
		if !c.Wiped && c.Color.Distance(color) <= threshold {
			c.Wiped = true
			n++
		}
	}
	return n
}
