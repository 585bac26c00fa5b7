package canvas

import (
	"fmt"
	"image/color"

	"github.com/user/rasterpaint/pkg/history"
	"github.com/user/rasterpaint/pkg/raster"
	"github.com/user/rasterpaint/pkg/tools"
)

// DefaultJPEGQuality is the quality used for .jpg saves.
const DefaultJPEGQuality = 90

// Config contains the engine settings.
type Config struct {
	// Surface
	Width      int
	Height     int
	Background color.RGBA

	// Tools
	BrushSize      int
	MinBrushSize   int
	MaxBrushSize   int
	Primary        color.RGBA
	Secondary      color.RGBA
	SprayParticles int
	SpraySeed      int64 // 0 picks a random seed

	// History
	HistoryLimit int

	// Output
	JPEGQuality int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Background: raster.White,

		BrushSize:      tools.DefaultBrushSize,
		MinBrushSize:   tools.MinBrushSize,
		MaxBrushSize:   tools.MaxBrushSize,
		Primary:        color.RGBA{A: 255},
		Secondary:      raster.White,
		SprayParticles: tools.DefaultSprayParticles,

		HistoryLimit: history.DefaultLimit,

		JPEGQuality: DefaultJPEGQuality,
	}
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d: %w", c.Width, c.Height, raster.ErrInvalidParameter)
	}
	if c.MinBrushSize < 1 || c.MaxBrushSize < c.MinBrushSize {
		return fmt.Errorf("brush range [%d, %d]: %w", c.MinBrushSize, c.MaxBrushSize, raster.ErrInvalidParameter)
	}
	if c.BrushSize < c.MinBrushSize || c.BrushSize > c.MaxBrushSize {
		return fmt.Errorf("brush size %d outside [%d, %d]: %w", c.BrushSize, c.MinBrushSize, c.MaxBrushSize, raster.ErrInvalidParameter)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d: %w", c.JPEGQuality, raster.ErrInvalidParameter)
	}
	return nil
}

func (c Config) toolState() tools.State {
	return tools.State{
		Tool:       tools.Brush,
		BrushSize:  c.BrushSize,
		Primary:    c.Primary,
		Secondary:  c.Secondary,
		Background: c.Background,
		MinBrush:   c.MinBrushSize,
		MaxBrush:   c.MaxBrushSize,
	}
}
