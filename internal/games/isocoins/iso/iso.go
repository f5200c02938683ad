// Package iso maps grid cells onto a 2:1 diamond (isometric) layout.
//
// The projection is the one the renderers and mouse hit-testing share, so it
// lives in its own package with no state beyond its parameters.
package iso

import "math"

// Point is a position in screen space. Units are whatever the tile size is
// expressed in: pixels for the window, character cells for the terminal.
type Point struct {
	X, Y float64
}

// Projector converts between grid cells and screen positions.
// Rows and Cols describe the whole grid and are only used for centering.
type Projector struct {
	TileW, TileH float64
	ViewW, ViewH float64
	Rows, Cols   float64
}

// New builds a projector for a rows×cols grid drawn with tileW×tileH tiles
// inside a viewW×viewH viewport.
func New(tileW, tileH, viewW, viewH float64, rows, cols int) Projector {
	return Projector{
		TileW: tileW,
		TileH: tileH,
		ViewW: viewW,
		ViewH: viewH,
		Rows:  float64(rows),
		Cols:  float64(cols),
	}
}

// Offset returns the translation that centers the grid's diamond in the viewport.
func (p Projector) Offset() Point {
	return Point{
		X: p.ViewW/2 - p.TileW/2,
		Y: p.ViewH/2 - (p.Rows+p.Cols)*p.TileH/4,
	}
}

// Project returns the top-left corner of the bounding box of cell (i, j),
// where i is the row and j the column.
func (p Projector) Project(i, j int) Point {
	off := p.Offset()
	return Point{
		X: float64(j-i)*p.TileW/2 + off.X,
		Y: float64(i+j)*p.TileH/2 + off.Y,
	}
}

// Center returns the center of the diamond of cell (i, j).
func (p Projector) Center(i, j int) Point {
	a := p.Project(i, j)
	return Point{X: a.X + p.TileW/2, Y: a.Y + p.TileH/2}
}

// Cell returns the cell whose diamond contains the screen point (x, y).
// The result may lie outside the grid; callers check bounds.
func (p Projector) Cell(x, y float64) (i, j int) {
	off := p.Offset()
	// a = j - i and b = i + j, both measured in half tiles from cell (0, 0)'s center.
	a := (x - off.X - p.TileW/2) / (p.TileW / 2)
	b := (y - off.Y - p.TileH/2) / (p.TileH / 2)
	i = int(math.Floor((b-a)/2 + 0.5))
	j = int(math.Floor((a+b)/2 + 0.5))
	return i, j
}

// Extent returns the width and height of the whole grid's bounding box.
func (p Projector) Extent() (w, h float64) {
	return (p.Rows + p.Cols) * p.TileW / 2, (p.Rows + p.Cols) * p.TileH / 2
}

// Contains reports whether (x, y) lies inside the diamond of cell (i, j).
func (p Projector) Contains(i, j int, x, y float64) bool {
	c := p.Center(i, j)
	return math.Abs(x-c.X)/(p.TileW/2)+math.Abs(y-c.Y)/(p.TileH/2) <= 1
}
