// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/user/rasterpaint/pkg/adapters/ggrenderer"
	"github.com/user/rasterpaint/pkg/canvas"
	"github.com/user/rasterpaint/pkg/history"
	"github.com/user/rasterpaint/pkg/tools"
)

// ErrInvalidColor is returned for color strings ParseColor does not understand.
var ErrInvalidColor = errors.New("config: invalid color")

// Config represents the full configuration for the paint engine and CLI.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas" toml:"canvas"`
	Brush   BrushConfig   `yaml:"brush" toml:"brush"`
	Colors  ColorConfig   `yaml:"colors" toml:"colors"`
	History HistoryConfig `yaml:"history" toml:"history"`
	Text    TextConfig    `yaml:"text" toml:"text"`
	Spray   SprayConfig   `yaml:"spray" toml:"spray"`
	Output  OutputConfig  `yaml:"output" toml:"output"`

	// Debug
	Debug    bool   `yaml:"debug" toml:"debug"`
	DebugDir string `yaml:"debug_dir" toml:"debug_dir"`
}

// CanvasConfig is the initial surface.
type CanvasConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Background string `yaml:"background" toml:"background"`
}

// BrushConfig is the brush size and its allowed range.
type BrushConfig struct {
	Size int `yaml:"size" toml:"size"`
	Min  int `yaml:"min" toml:"min"`
	Max  int `yaml:"max" toml:"max"`
}

// ColorConfig holds the initial button colors.
type ColorConfig struct {
	Primary   string `yaml:"primary" toml:"primary"`
	Secondary string `yaml:"secondary" toml:"secondary"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	Limit int `yaml:"limit" toml:"limit"`
}

// TextConfig configures the text tool.
type TextConfig struct {
	FontSize float64 `yaml:"font_size" toml:"font_size"`
}

// SprayConfig configures the spray tool.
type SprayConfig struct {
	Particles int   `yaml:"particles" toml:"particles"`
	Seed      int64 `yaml:"seed" toml:"seed"`
}

// OutputConfig configures saved files.
type OutputConfig struct {
	JPEGQuality int `yaml:"jpeg_quality" toml:"jpeg_quality"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:      800,
			Height:     600,
			Background: "#ffffff",
		},
		Brush: BrushConfig{
			Size: tools.DefaultBrushSize,
			Min:  tools.MinBrushSize,
			Max:  tools.MaxBrushSize,
		},
		Colors: ColorConfig{
			Primary:   "#000000",
			Secondary: "#ffffff",
		},
		History: HistoryConfig{Limit: history.DefaultLimit},
		Text:    TextConfig{FontSize: ggrenderer.DefaultFontSize},
		Spray:   SprayConfig{Particles: tools.DefaultSprayParticles},
		Output:  OutputConfig{JPEGQuality: canvas.DefaultJPEGQuality},

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file, or a TOML file when the
// extension is .toml. Keys missing from the file keep their defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the engine would reject.
func (c Config) Validate() error {
	ec, err := c.ToEngineConfig()
	if err != nil {
		return err
	}
	if c.Text.FontSize <= 0 {
		return fmt.Errorf("text font size %.1f must be positive", c.Text.FontSize)
	}
	if c.History.Limit < 1 {
		return fmt.Errorf("history limit %d must be at least 1", c.History.Limit)
	}
	return ec.Validate()
}

// ToEngineConfig converts Config to canvas.Config.
func (c Config) ToEngineConfig() (canvas.Config, error) {
	background, err := ParseColor(c.Canvas.Background)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("canvas background: %w", err)
	}
	primary, err := ParseColor(c.Colors.Primary)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("primary color: %w", err)
	}
	secondary, err := ParseColor(c.Colors.Secondary)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("secondary color: %w", err)
	}

	return canvas.Config{
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Background: background,

		BrushSize:      c.Brush.Size,
		MinBrushSize:   c.Brush.Min,
		MaxBrushSize:   c.Brush.Max,
		Primary:        primary,
		Secondary:      secondary,
		SprayParticles: c.Spray.Particles,
		SpraySeed:      c.Spray.Seed,

		HistoryLimit: c.History.Limit,

		JPEGQuality: c.Output.JPEGQuality,
	}, nil
}

const hexDigits = "0123456789abcdefABCDEF"

// ParseColor parses "#rrggbb", "#rgb" (the leading # is optional) or a CSS
// color name into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, hexDigits) != "" {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor renders c as "#rrggbb". Alpha is dropped.
func FormatColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	rgba.A = 255
	cf, _ := colorful.MakeColor(rgba)
	return cf.Hex()
}
