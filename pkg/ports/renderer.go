package ports

import (
	"image"
	"image/color"
)

// Renderer creates painters that draw directly into an RGBA buffer.
type Renderer interface {
	// NewPainter returns a Painter whose output lands in dst.
	NewPainter(dst *image.RGBA) Painter
}

// Painter provides the anti-aliased primitives the drawing tools need.
// Coordinates are in pixels with the origin at the top-left corner.
type Painter interface {
	// StrokeLine draws a segment from (x1, y1) to (x2, y2).
	StrokeLine(x1, y1, x2, y2 float64, pen Pen)

	// StrokeRect outlines a rectangle.
	StrokeRect(r image.Rectangle, pen Pen)

	// StrokeEllipse outlines the ellipse inscribed in r.
	StrokeEllipse(r image.Rectangle, pen Pen)

	// StrokePolygon outlines a closed polygon through pts.
	StrokePolygon(pts []image.Point, pen Pen)

	// FillLinearGradient fills r with a gradient running from p0 (color from)
	// to p1 (color to).
	FillLinearGradient(r image.Rectangle, p0, p1 image.Point, from, to color.Color)

	// DrawText draws text with its baseline starting at (x, y).
	DrawText(text string, x, y int, c color.Color)
}

// LineCap specifies how open segment ends are drawn.
type LineCap int

const (
	CapSquare LineCap = iota
	CapRound
	CapButt
)

// LineJoin specifies how connected segments meet.
type LineJoin int

const (
	JoinBevel LineJoin = iota
	JoinRound
)

// Pen describes stroke properties.
type Pen struct {
	Color color.Color
	Width float64
	Cap   LineCap
	Join  LineJoin
	Dash  []float64 // alternating on/off lengths; empty means solid
}
