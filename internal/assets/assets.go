// Package assets loads the images used by the pixel front end: the tileset
// strip and the sprite sheets of animated entities.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrNotFound is returned by Resolve when no candidate file exists.
var ErrNotFound = errors.New("assets: not found")

// Load decodes the image at path into non-premultiplied RGBA.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Premultiply converts a sprite to premultiplied alpha. Pixels with alpha
// below 128 become fully transparent so sprite edges stay crisp.
func Premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			a := img.Pix[si+3]
			if a < 128 {
				continue // dst is zeroed
			}
			for c := 0; c < 3; c++ {
				dst.Pix[di+c] = uint8(uint16(img.Pix[si+c]) * uint16(a) / 255)
			}
			dst.Pix[di+3] = a
		}
	}
	return dst
}

// Resolve finds name under dir, trying dir itself and then each of subdirs.
// Matching is case-insensitive on the file name. Absolute names are
// returned as they are when they exist.
func Resolve(dir, name string, subdirs ...string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return name, nil
	}

	candidates := []string{dir}
	for _, sub := range subdirs {
		candidates = append(candidates, filepath.Join(dir, sub))
	}
	for _, base := range candidates {
		full := filepath.Join(base, filepath.Dir(name))
		if found, err := findFold(full, filepath.Base(name)); err == nil {
			return found, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s)", ErrNotFound, name, strings.Join(candidates, ", "))
}

// findFold returns the entry of dir whose name matches filename ignoring case.
func findFold(dir, filename string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(e.Name(), filename) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fs.ErrNotExist
}
