// Package raster provides the in-memory pixel surface the canvas engine paints on.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/user/rasterpaint/pkg/ports"
)

// White is the background color of new and newly grown areas.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Surface is a width×height buffer of 8-bit RGBA pixels anchored at (0,0).
type Surface struct {
	img *image.RGBA
}

// New creates a surface filled with White.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface size %dx%d: %w", width, height, ErrInvalidParameter)
	}
	s := &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	s.Fill(White)
	return s, nil
}

// FromImage copies img into a new surface. Transparent areas of img are
// composited over White so the surface stays opaque.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: White}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return &Surface{img: dst}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Contains reports whether (x, y) addresses a pixel of the surface.
func (s *Surface) Contains(x, y int) bool {
	return image.Pt(x, y).In(s.img.Rect)
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) (color.RGBA, error) {
	if !s.Contains(x, y) {
		return color.RGBA{}, fmt.Errorf("read (%d,%d) of %dx%d: %w", x, y, s.Width(), s.Height(), ErrOutOfBounds)
	}
	return s.img.RGBAAt(x, y), nil
}

// Set writes the pixel at (x, y). Writes outside the surface are ignored.
func (s *Surface) Set(x, y int, c color.Color) {
	if !s.Contains(x, y) {
		return
	}
	s.img.Set(x, y, c)
}

// Fill paints every pixel with c.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	dst := &image.RGBA{
		Pix:    make([]uint8, len(s.img.Pix)),
		Stride: s.img.Stride,
		Rect:   s.img.Rect,
	}
	copy(dst.Pix, s.img.Pix)
	return &Surface{img: dst}
}

// CopyFrom replaces the content and dimensions of s with a copy of src.
func (s *Surface) CopyFrom(src *Surface) {
	if s.img.Rect == src.img.Rect {
		copy(s.img.Pix, src.img.Pix)
		return
	}
	s.img = src.Clone().img
}

// Resize grows the surface to at least width×height. Existing pixels keep
// their position and new area is White. The surface never shrinks: an axis
// that would get smaller keeps its current size. It reports whether the
// dimensions changed.
func (s *Surface) Resize(width, height int) bool {
	w := max(width, s.Width())
	h := max(height, s.Height())
	if w == s.Width() && h == s.Height() {
		return false
	}
	grown := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(grown, grown.Rect, &image.Uniform{C: White}, image.Point{}, draw.Src)
	draw.Draw(grown, s.img.Rect, s.img, image.Point{}, draw.Src)
	s.img = grown
	return true
}

// Equal reports whether both surfaces have the same size and identical pixels.
func (s *Surface) Equal(other *Surface) bool {
	if other == nil || s.img.Rect != other.img.Rect {
		return false
	}
	return bytes.Equal(s.img.Pix, other.img.Pix)
}

// Image returns the surface as an image.Image. Callers must not mutate it.
func (s *Surface) Image() image.Image { return s.img }

// RGBA exposes the backing buffer for painters owned by the engine.
func (s *Surface) RGBA() *image.RGBA { return s.img }

// Decode decodes data into a new surface using codec.
func Decode(codec ports.Codec, data []byte) (*Surface, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrDecode)
	}
	img, _, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image has no pixels: %w", ErrDecode)
	}
	return FromImage(img), nil
}

// Encode encodes the surface in the given format.
func (s *Surface) Encode(codec ports.Codec, format ports.ImageFormat, quality int) ([]byte, error) {
	data, err := codec.Encode(s.img, format, quality)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncode, format, err)
	}
	return data, nil
}
