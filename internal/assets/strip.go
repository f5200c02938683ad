package assets

import "image"

// Strip splits an image into equal-width horizontal bands: the tiles of a
// tileset or the frames of a sprite sheet.
type Strip struct {
	Bounds image.Rectangle
	Frames int
}

// NewStrip describes img as a strip of n frames.
func NewStrip(img image.Image, n int) Strip {
	return Strip{Bounds: img.Bounds(), Frames: n}
}

// FrameWidth returns the width of one band in pixels.
func (s Strip) FrameWidth() int {
	if s.Frames <= 0 {
		return 0
	}
	return s.Bounds.Dx() / s.Frames
}

// Frame returns the bounds of band i. Out of range indices wrap around so a
// sheet with fewer frames than the animation still draws something.
func (s Strip) Frame(i int) image.Rectangle {
	if s.Frames <= 0 {
		return image.Rectangle{}
	}
	i %= s.Frames
	if i < 0 {
		i += s.Frames
	}
	w := s.FrameWidth()
	x0 := s.Bounds.Min.X + i*w
	return image.Rect(x0, s.Bounds.Min.Y, x0+w, s.Bounds.Max.Y)
}
