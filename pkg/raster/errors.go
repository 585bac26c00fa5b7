package raster

import "errors"

var (
	// ErrDecode is returned when image data is malformed or in an unsupported format.
	ErrDecode = errors.New("raster: decode failed")

	// ErrEncode is returned when a surface cannot be encoded or written.
	ErrEncode = errors.New("raster: encode failed")

	// ErrOutOfBounds is returned when a pixel read falls outside the surface.
	ErrOutOfBounds = errors.New("raster: coordinates out of bounds")

	// ErrInvalidParameter is returned for dimensions, sizes or factors outside their allowed range.
	ErrInvalidParameter = errors.New("raster: invalid parameter")
)
