// Package floodfill implements region fill over a raster surface.
package floodfill

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/rasterpaint/pkg/raster"
)

// Fill replaces the 4-connected region of same-colored pixels containing seed
// with c and returns the number of pixels written. A region that already has
// color c is left alone.
func Fill(s *raster.Surface, seed image.Point, c color.RGBA) (int, error) {
	target, err := s.At(seed.X, seed.Y)
	if err != nil {
		return 0, fmt.Errorf("fill seed: %w", err)
	}
	if target == c {
		return 0, nil
	}

	img := s.RGBA()
	bounds := img.Rect
	filled := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A pixel can be pushed by several neighbors before it is written.
		if !p.In(bounds) || img.RGBAAt(p.X, p.Y) != target {
			continue
		}
		img.SetRGBA(p.X, p.Y, c)
		filled++

		for _, n := range [4]image.Point{
			{X: p.X + 1, Y: p.Y},
			{X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y + 1},
			{X: p.X, Y: p.Y - 1},
		} {
			if n.In(bounds) && img.RGBAAt(n.X, n.Y) == target {
				stack = append(stack, n)
			}
		}
	}
	return filled, nil
}
