package window

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tile-arcade/internal/assets"
)

// sheet is a loaded strip texture.
type sheet struct {
	img   *ebiten.Image
	strip assets.Strip
}

// frame returns band i of the sheet as a sub-image.
func (s *sheet) frame(i int) *ebiten.Image {
	return s.img.SubImage(s.strip.Frame(i)).(*ebiten.Image)
}

// textures loads strips on first use and remembers failures so a missing
// file is logged once and then skipped.
type textures struct {
	dir    string
	log    *log.Logger
	sheets map[string]*sheet
}

func newTextures(dir string, logger *log.Logger) *textures {
	return &textures{dir: dir, log: logger, sheets: make(map[string]*sheet)}
}

// get returns the strip for name split into frames, or nil when it cannot
// be loaded.
func (t *textures) get(name string, frames int) *sheet {
	if name == "" {
		return nil
	}
	if s, ok := t.sheets[name]; ok {
		return s
	}

	img, err := loadRGBA(t.dir, name)
	if err != nil {
		t.log.Warn("texture not loaded, skipping", "name", name, "error", err)
		t.sheets[name] = nil
		return nil
	}
	s := &sheet{
		img:   ebiten.NewImageFromImage(img),
		strip: assets.NewStrip(img, frames),
	}
	t.sheets[name] = s
	return s
}

// loadRGBA resolves name under dir and decodes it with premultiplied alpha.
func loadRGBA(dir, name string) (*image.RGBA, error) {
	path, err := assets.Resolve(dir, name, "textures", "sprites")
	if err != nil {
		return nil, err
	}
	img, err := assets.Load(path)
	if err != nil {
		return nil, err
	}
	return assets.Premultiply(img), nil
}
