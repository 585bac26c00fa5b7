package tools

import (
	"fmt"
	"image/color"

	"github.com/user/rasterpaint/pkg/raster"
)

// Brush size limits used when a State is built without explicit ones.
const (
	DefaultBrushSize = 3
	MinBrushSize     = 1
	MaxBrushSize     = 50
)

// State is the user-selected tool configuration.
type State struct {
	Tool       Kind
	BrushSize  int
	Primary    color.RGBA
	Secondary  color.RGBA
	Background color.RGBA

	MinBrush int
	MaxBrush int
}

// DefaultState returns a brush with size 3, black primary and white secondary.
func DefaultState() State {
	return State{
		Tool:       Brush,
		BrushSize:  DefaultBrushSize,
		Primary:    color.RGBA{A: 255},
		Secondary:  raster.White,
		Background: raster.White,
		MinBrush:   MinBrushSize,
		MaxBrush:   MaxBrushSize,
	}
}

// SetBrushSize changes the brush size if n lies within the configured range.
func (s *State) SetBrushSize(n int) error {
	if n < s.MinBrush || n > s.MaxBrush {
		return fmt.Errorf("brush size %d outside [%d, %d]: %w", n, s.MinBrush, s.MaxBrush, raster.ErrInvalidParameter)
	}
	s.BrushSize = n
	return nil
}

// ColorFor returns the color bound to a gesture started with role.
func (s *State) ColorFor(role ButtonRole) color.RGBA {
	if role == Secondary {
		return s.Secondary
	}
	return s.Primary
}
