// Package imagecodec provides the image codec used for opening and saving canvases.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/user/rasterpaint/pkg/ports"
)

// DefaultJPEGQuality is used when Encode receives a quality outside 1..100.
const DefaultJPEGQuality = 90

var (
	// ErrUnsupportedFormat is returned for content or formats the codec cannot handle.
	ErrUnsupportedFormat = errors.New("imagecodec: unsupported format")
)

// Codec implements ports.Codec.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Decode sniffs the content type and decodes PNG, JPEG, BMP or WebP data.
func (c *Codec) Decode(data []byte) (image.Image, ports.ImageFormat, error) {
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return nil, 0, fmt.Errorf("%w: unrecognized content", ErrUnsupportedFormat)
	}

	reader := bytes.NewReader(data)
	var (
		img    image.Image
		format ports.ImageFormat
	)
	switch kind.MIME.Value {
	case "image/png":
		img, err = png.Decode(reader)
		format = ports.FormatPNG
	case "image/jpeg":
		img, err = jpeg.Decode(reader)
		format = ports.FormatJPEG
	case "image/bmp":
		img, err = bmp.Decode(reader)
		format = ports.FormatBMP
	case "image/webp":
		img, err = webp.Decode(reader)
		format = ports.FormatWebP
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, format, nil
}

// Encode encodes an image to the specified format.
func (c *Codec) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatJPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatBMP:
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode BMP: %w", err)
		}
	case ports.FormatPDF:
		if err := encodePDF(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PDF: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// Ensure Codec implements ports.Codec
var _ ports.Codec = (*Codec)(nil)
