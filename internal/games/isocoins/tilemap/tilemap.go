// Package tilemap loads the text tile maps used by the isometric coin game.
//
// A map file looks like:
//
//	tilesetIso.png
//	3 4
//	1 1c 2 1
//	1 3 5c 1   / lava in the middle
//	1 1 1 1c
//
// Line 1 names the tileset image, line 2 holds "<rows> <cols>", and each of
// the following rows lists one token per column. A token is a tile index with
// an optional trailing 'c' marking a coin. A token starting with '/' turns the
// rest of the line into a comment.
package tilemap

import "fmt"

// Tile is one cell of the map.
type Tile struct {
	Index   int
	HasCoin bool
}

// Map is a rows×cols grid of tiles plus the tileset it is drawn with.
// Its shape never changes after loading.
type Map struct {
	tileset string
	rows    int
	cols    int
	cells   []Tile
}

// New creates an empty rows×cols map where every tile has index 0.
func New(tileset string, rows, cols int) *Map {
	return &Map{
		tileset: tileset,
		rows:    rows,
		cols:    cols,
		cells:   make([]Tile, rows*cols),
	}
}

// Tileset returns the tileset file name as written in the map file.
func (m *Map) Tileset() string { return m.tileset }

// Rows returns the number of rows.
func (m *Map) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Map) Cols() int { return m.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the tile at (row, col). It panics when out of bounds.
func (m *Map) At(row, col int) Tile {
	return m.cells[m.index(row, col)]
}

// Set replaces the tile at (row, col). It panics when out of bounds.
func (m *Map) Set(row, col int, t Tile) {
	m.cells[m.index(row, col)] = t
}

// ClearCoin removes the coin at (row, col) and reports whether one was there.
func (m *Map) ClearCoin(row, col int) bool {
	i := m.index(row, col)
	had := m.cells[i].HasCoin
	m.cells[i].HasCoin = false
	return had
}

// CoinCount returns how many cells currently hold a coin.
func (m *Map) CoinCount() int {
	n := 0
	for _, t := range m.cells {
		if t.HasCoin {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	c := &Map{
		tileset: m.tileset,
		rows:    m.rows,
		cols:    m.cols,
		cells:   make([]Tile, len(m.cells)),
	}
	copy(c.cells, m.cells)
	return c
}

func (m *Map) index(row, col int) int {
	if !m.InBounds(row, col) {
		panic(fmt.Sprintf("tilemap: cell (%d, %d) outside %dx%d grid", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}
