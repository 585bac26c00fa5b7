// Package ggrenderer provides a painter implementation using the gg library.
package ggrenderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/rasterpaint/pkg/ports"
)

// DefaultFontSize is the text tool size in points.
const DefaultFontSize = 12

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	face font.Face
}

// New creates a Renderer whose text uses Go Regular at the given size.
func New(fontSize float64) (*Renderer, error) {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Renderer{face: truetype.NewFace(f, &truetype.Options{Size: fontSize})}, nil
}

// NewPainter wraps dst in a gg context. Drawing lands directly in dst.
func (r *Renderer) NewPainter(dst *image.RGBA) ports.Painter {
	dc := gg.NewContextForRGBA(dst)
	if r.face != nil {
		dc.SetFontFace(r.face)
	}
	return &Painter{dc: dc}
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Painter implements ports.Painter using gg.Context.
type Painter struct {
	dc *gg.Context
}

// applyPen configures the context for stroking with pen.
func (p *Painter) applyPen(pen ports.Pen) {
	p.dc.SetColor(pen.Color)
	p.dc.SetLineWidth(pen.Width)

	switch pen.Cap {
	case ports.CapRound:
		p.dc.SetLineCapRound()
	case ports.CapButt:
		p.dc.SetLineCapButt()
	default:
		p.dc.SetLineCapSquare()
	}

	switch pen.Join {
	case ports.JoinRound:
		p.dc.SetLineJoinRound()
	default:
		p.dc.SetLineJoinBevel()
	}

	p.dc.SetDash(pen.Dash...)
}

// StrokeLine draws a segment between two points.
func (p *Painter) StrokeLine(x1, y1, x2, y2 float64, pen ports.Pen) {
	p.applyPen(pen)
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
}

// StrokeRect outlines a rectangle.
func (p *Painter) StrokeRect(r image.Rectangle, pen ports.Pen) {
	p.applyPen(pen)
	p.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	p.dc.Stroke()
}

// StrokeEllipse outlines the ellipse inscribed in r.
func (p *Painter) StrokeEllipse(r image.Rectangle, pen ports.Pen) {
	p.applyPen(pen)
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	p.dc.DrawEllipse(float64(r.Min.X)+rx, float64(r.Min.Y)+ry, rx, ry)
	p.dc.Stroke()
}

// StrokePolygon outlines a closed polygon.
func (p *Painter) StrokePolygon(pts []image.Point, pen ports.Pen) {
	if len(pts) < 2 {
		return
	}
	p.applyPen(pen)
	p.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, pt := range pts[1:] {
		p.dc.LineTo(float64(pt.X), float64(pt.Y))
	}
	p.dc.ClosePath()
	p.dc.Stroke()
}

// FillLinearGradient fills r with a two-stop linear gradient.
func (p *Painter) FillLinearGradient(r image.Rectangle, p0, p1 image.Point, from, to color.Color) {
	grad := gg.NewLinearGradient(float64(p0.X), float64(p0.Y), float64(p1.X), float64(p1.Y))
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)

	p.dc.SetFillStyle(grad)
	p.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	p.dc.Fill()
}

// DrawText draws text with its baseline at (x, y).
func (p *Painter) DrawText(text string, x, y int, c color.Color) {
	p.dc.SetColor(c)
	p.dc.DrawString(text, float64(x), float64(y))
}

// Ensure Painter implements ports.Painter
var _ ports.Painter = (*Painter)(nil)
