// Package filters applies whole-image transforms to canvas content.
package filters

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"

	"github.com/user/rasterpaint/pkg/raster"
)

// Kind identifies a filter.
type Kind int

const (
	Blur Kind = iota
	Sharpen
	Grayscale
	Invert
	Brightness
	Contrast
)

// Factor range accepted by Brightness and Contrast. 1.0 leaves the image unchanged.
const (
	MinFactor     = 0.0
	MaxFactor     = 2.0
	DefaultFactor = 1.0
)

// blurRadius approximates a small fixed smoothing kernel.
const blurRadius = 2

var kindNames = map[Kind]string{
	Blur:       "blur",
	Sharpen:    "sharpen",
	Grayscale:  "grayscale",
	Invert:     "invert",
	Brightness: "brightness",
	Contrast:   "contrast",
}

// String returns the filter name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// NeedsFactor reports whether the filter takes a user-supplied factor.
func (k Kind) NeedsFactor() bool {
	return k == Brightness || k == Contrast
}

// ParseKind parses a filter name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q: %w", s, raster.ErrInvalidParameter)
}

// Kinds returns all filters in menu order.
func Kinds() []Kind {
	return []Kind{Blur, Sharpen, Grayscale, Invert, Brightness, Contrast}
}

// ValidateFactor checks that factor lies in [MinFactor, MaxFactor].
func ValidateFactor(factor float64) error {
	if factor < MinFactor || factor > MaxFactor || factor != factor {
		return fmt.Errorf("factor %.2f outside [%.1f, %.1f]: %w", factor, MinFactor, MaxFactor, raster.ErrInvalidParameter)
	}
	return nil
}

// Apply renders kind over src into a new image. src is never modified.
// factor is only consulted for filters where NeedsFactor is true.
func Apply(src image.Image, kind Kind, factor float64) (*image.RGBA, error) {
	if kind.NeedsFactor() {
		if err := ValidateFactor(factor); err != nil {
			return nil, err
		}
	}

	switch kind {
	case Blur:
		return blur.Box(src, blurRadius), nil
	case Sharpen:
		return effect.Sharpen(src), nil
	case Grayscale:
		// bild yields a single-channel image; expand back to RGBA.
		return clone.AsRGBA(effect.Grayscale(src)), nil
	case Invert:
		return effect.Invert(src), nil
	case Brightness:
		if factor == DefaultFactor {
			return clone.AsRGBA(src), nil
		}
		return adjust.Brightness(src, factor-1), nil
	case Contrast:
		if factor == DefaultFactor {
			return clone.AsRGBA(src), nil
		}
		return adjust.Contrast(src, factor-1), nil
	default:
		return nil, fmt.Errorf("filter %d: %w", kind, raster.ErrInvalidParameter)
	}
}
