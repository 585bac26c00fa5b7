package mocks

import (
	"errors"
	"image"

	"github.com/user/rasterpaint/pkg/ports"
)

// Codec is a mock implementation of ports.Codec.
type Codec struct {
	DecodeFunc func(data []byte) (image.Image, ports.ImageFormat, error)
	EncodeFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

func (m *Codec) Decode(data []byte) (image.Image, ports.ImageFormat, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return nil, 0, errors.New("mock codec: decode not configured")
}

func (m *Codec) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, format, quality)
	}
	return []byte{}, nil
}

var _ ports.Codec = (*Codec)(nil)
