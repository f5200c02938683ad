package iso

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProjectOriginAndDiagonal(t *testing.T) {
	p := New(64, 32, 1280, 720, 5, 5)

	a := p.Project(0, 0)
	b := p.Project(1, 1)

	if a.X != b.X {
		t.Errorf("Project(0,0).X = %v, Project(1,1).X = %v, expected equal", a.X, b.X)
	}
	if b.Y-a.Y != 32 {
		t.Errorf("Y difference = %v, expected tile height 32", b.Y-a.Y)
	}
}

func TestProjectKnownValues(t *testing.T) {
	// 1280x720 viewport, 64x32 tiles, 4x6 grid:
	// offset = (1280/2 - 32, 720/2 - (4+6)*32/4) = (608, 280)
	p := New(64, 32, 1280, 720, 4, 6)

	tests := []struct {
		i, j int
		x, y float64
	}{
		{0, 0, 608, 280},
		{0, 1, 640, 296},
		{1, 0, 576, 296},
		{3, 5, 672, 408},
	}
	for _, tc := range tests {
		got := p.Project(tc.i, tc.j)
		if got.X != tc.x || got.Y != tc.y {
			t.Errorf("Project(%d, %d) = (%v, %v), expected (%v, %v)", tc.i, tc.j, got.X, got.Y, tc.x, tc.y)
		}
	}
}

func TestProjectAntiDiagonalKeepsY(t *testing.T) {
	p := New(64, 32, 800, 600, 7, 7)

	a := p.Project(2, 4)
	b := p.Project(3, 3)

	if a.Y != b.Y {
		t.Errorf("cells on the same anti-diagonal should share Y: %v vs %v", a.Y, b.Y)
	}
	if a.X-b.X != 64 {
		t.Errorf("X difference = %v, expected one tile width", a.X-b.X)
	}
}

func TestGridIsCentered(t *testing.T) {
	p := New(64, 32, 1280, 720, 6, 6)

	top := p.Project(0, 0)
	bottom := p.Project(5, 5)

	// The diamond spans from the top of (0,0) to the bottom of (rows-1, cols-1).
	mid := (top.Y + bottom.Y + p.TileH) / 2
	if mid != 360 {
		t.Errorf("vertical center = %v, expected 360", mid)
	}
	if top.X+p.TileW/2 != 640 {
		t.Errorf("horizontal center = %v, expected 640", top.X+p.TileW/2)
	}

	w, h := p.Extent()
	if w != 384 || h != 192 {
		t.Errorf("Extent() = (%v, %v), expected (384, 192)", w, h)
	}
}

func TestCellOfCenter(t *testing.T) {
	p := New(8, 4, 80, 24, 5, 5)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			c := p.Center(i, j)
			gi, gj := p.Cell(c.X, c.Y)
			if gi != i || gj != j {
				t.Errorf("Cell(Center(%d, %d)) = (%d, %d)", i, j, gi, gj)
			}
		}
	}
}

func TestCellRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a point inside a cell's diamond maps back to that cell", prop.ForAll(
		func(i, j int, fx, fy float64) bool {
			p := New(64, 32, 1280, 720, 20, 20)
			c := p.Center(i, j)
			// Stay strictly inside the diamond: |dx|/32 + |dy|/16 < 1.
			dx := fx * 32 * 0.45
			dy := fy * 16 * 0.45
			x, y := c.X+dx, c.Y+dy
			if !p.Contains(i, j, x, y) {
				return false
			}
			gi, gj := p.Cell(x, y)
			return gi == i && gj == j
		},
		gen.IntRange(0, 19),
		gen.IntRange(0, 19),
		gen.Float64Range(-1, 1),
		gen.Float64Range(-1, 1),
	))

	properties.Property("stepping down-right moves straight down by one tile height", prop.ForAll(
		func(i, j, rows, cols int) bool {
			p := New(64, 32, 1024, 768, rows, cols)
			a := p.Project(i, j)
			b := p.Project(i+1, j+1)
			return a.X == b.X && math.Abs(b.Y-a.Y-32) < 1e-9
		},
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
