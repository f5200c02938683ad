package window

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/iso"
)

func TestSpritePlacements(t *testing.T) {
	p := iso.Point{X: 100, Y: 50}

	tests := []struct {
		name string
		got  placement
		want placement
	}{
		{"tile", tilePlacement(p, 64, 32), placement{X: 100, Y: 50, W: 64, H: 32}},
		{"coin", coinPlacement(p, 64, 32), placement{X: 124, Y: 60.4, W: 16, H: 11.2}},
		{"player", playerPlacement(p, 64, 32), placement{X: 109.6, Y: 35.6, W: 44.8, H: 38.4}},
	}
	for _, tt := range tests {
		g, w := tt.got, tt.want
		if !near(g.X, w.X) || !near(g.Y, w.Y) || !near(g.W, w.W) || !near(g.H, w.H) {
			t.Errorf("%s placement = %+v, want %+v", tt.name, g, w)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func fakeKeys(held []ebiten.Key, pressed []ebiten.Key) keyState {
	in := func(keys []ebiten.Key) func(ebiten.Key) bool {
		return func(k ebiten.Key) bool {
			for _, x := range keys {
				if x == k {
					return true
				}
			}
			return false
		}
	}
	return keyState{pressed: in(held), justPressed: in(pressed)}
}

func TestInputFrame(t *testing.T) {
	in := fakeKeys([]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowLeft, ebiten.KeyR}, nil).inputFrame()
	if dRow, dCol := in.Direction(); dRow != -1 || dCol != -1 {
		t.Errorf("Direction() = %d,%d; want -1,-1", dRow, dCol)
	}
	// Holding R without a fresh press does not restart again.
	if in.Has(core.ActionRestart) {
		t.Error("held R should not restart")
	}

	in = fakeKeys(nil, []ebiten.Key{ebiten.KeyR, ebiten.KeyP}).inputFrame()
	if !in.Has(core.ActionRestart) || !in.Has(core.ActionPause) {
		t.Errorf("pressed R and P should map to restart and pause, got %v", in.Actions)
	}
}

func TestClickStep(t *testing.T) {
	proj := iso.New(64, 32, 1280, 720, 5, 5)
	player := isocoins.Position{Row: 2, Col: 2}

	tests := []struct {
		name       string
		row, col   int
		dRow, dCol int
	}{
		{"down", 3, 2, 1, 0},
		{"left", 2, 1, 0, -1},
		{"diagonal", 1, 1, -1, -1},
		{"self", 2, 2, 0, 0},
		{"too far", 4, 2, 0, 0},
	}
	for _, tt := range tests {
		c := proj.Center(tt.row, tt.col)
		dRow, dCol := clickStep(proj, player, c.X, c.Y)
		if dRow != tt.dRow || dCol != tt.dCol {
			t.Errorf("%s: clickStep() = %d,%d; want %d,%d", tt.name, dRow, dCol, tt.dRow, tt.dCol)
		}
	}
}

func TestSetStep(t *testing.T) {
	in := core.NewInputFrame()
	setStep(&in, 1, -1)
	if dRow, dCol := in.Direction(); dRow != 1 || dCol != -1 {
		t.Errorf("Direction() = %d,%d; want 1,-1", dRow, dCol)
	}

	in = core.NewInputFrame()
	setStep(&in, 0, 0)
	if len(in.Actions) != 0 {
		t.Errorf("zero step set %v", in.Actions)
	}
}

func TestLoadRGBA(t *testing.T) {
	dir := t.TempDir()
	sprites := filepath.Join(dir, "sprites")
	if err := os.MkdirAll(sprites, 0o755); err != nil {
		t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.NRGBA{R: 200, A: 255})
	img.Set(1, 0, color.NRGBA{R: 200, A: 10})
	f, err := os.Create(filepath.Join(sprites, "Coin.PNG"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := loadRGBA(dir, "coin.png")
	if err != nil {
		t.Fatalf("loadRGBA() error = %v", err)
	}
	if c := got.RGBAAt(0, 0); c.R != 200 || c.A != 255 {
		t.Errorf("opaque pixel = %+v", c)
	}
	if c := got.RGBAAt(1, 0); c.A != 0 {
		t.Errorf("faint pixel should be transparent, got %+v", c)
	}

	if _, err := loadRGBA(dir, "missing.png"); err == nil {
		t.Error("expected an error for a missing texture")
	}
}

func TestTileDrawableSkipsUnknownIndex(t *testing.T) {
	var buf bytes.Buffer
	w := &Window{
		cfg:      config.IsoCoinsWindow{TilesetTiles: 7},
		log:      log.New(&buf),
		badTiles: make(map[int]bool),
	}

	for _, index := range []int{0, 3, 6} {
		if !w.tileDrawable(index) {
			t.Errorf("tileDrawable(%d) = false, expected true", index)
		}
	}
	for i := 0; i < 3; i++ {
		if w.tileDrawable(7) || w.tileDrawable(-1) {
			t.Fatal("indices outside the tileset should not be drawn")
		}
	}
	if n := strings.Count(buf.String(), "tile index outside the tileset"); n != 2 {
		t.Errorf("logged %d warnings, expected one per bad index:\n%s", n, buf.String())
	}
}
