package ports

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// ImageFormat specifies an image file format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatBMP
	FormatWebP
	FormatPDF
)

// String returns the canonical extension-like name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatWebP:
		return "webp"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// FormatFromPath picks an ImageFormat from a file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".webp":
		return FormatWebP, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return 0, fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}

// Codec converts between encoded bytes and images.
type Codec interface {
	// Decode detects the format from the content and decodes it.
	Decode(data []byte) (image.Image, ImageFormat, error)

	// Encode encodes img in the given format. quality is used by lossy formats.
	Encode(img image.Image, format ImageFormat, quality int) ([]byte, error)
}
