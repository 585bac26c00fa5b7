package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/rasterpaint/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer. Every painter it
// hands out shares one call log.
type Renderer struct {
	NewPainterFunc func(dst *image.RGBA) ports.Painter

	mu    sync.Mutex
	Calls []PainterCall
}

// PainterCall records one primitive drawn through a mock Painter.
type PainterCall struct {
	Op     string
	Rect   image.Rectangle
	Points []image.Point
	Text   string
	Color  color.Color
	Pen    ports.Pen
}

func (m *Renderer) NewPainter(dst *image.RGBA) ports.Painter {
	if m.NewPainterFunc != nil {
		return m.NewPainterFunc(dst)
	}
	return &Painter{renderer: m}
}

// Ops returns the recorded operation names in order.
func (m *Renderer) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ops := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Last returns the most recent call.
func (m *Renderer) Last() (PainterCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return PainterCall{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

func (m *Renderer) record(c PainterCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, c)
}

var _ ports.Renderer = (*Renderer)(nil)

// Painter is a mock implementation of ports.Painter that draws nothing.
type Painter struct {
	renderer *Renderer
}

func (m *Painter) StrokeLine(x1, y1, x2, y2 float64, pen ports.Pen) {
	m.renderer.record(PainterCall{
		Op:     "line",
		Points: []image.Point{{X: int(x1), Y: int(y1)}, {X: int(x2), Y: int(y2)}},
		Color:  pen.Color,
		Pen:    pen,
	})
}

func (m *Painter) StrokeRect(r image.Rectangle, pen ports.Pen) {
	m.renderer.record(PainterCall{Op: "rect", Rect: r, Color: pen.Color, Pen: pen})
}

func (m *Painter) StrokeEllipse(r image.Rectangle, pen ports.Pen) {
	m.renderer.record(PainterCall{Op: "ellipse", Rect: r, Color: pen.Color, Pen: pen})
}

func (m *Painter) StrokePolygon(pts []image.Point, pen ports.Pen) {
	m.renderer.record(PainterCall{Op: "polygon", Points: append([]image.Point(nil), pts...), Color: pen.Color, Pen: pen})
}

func (m *Painter) FillLinearGradient(r image.Rectangle, p0, p1 image.Point, from, to color.Color) {
	m.renderer.record(PainterCall{Op: "gradient", Rect: r, Points: []image.Point{p0, p1}, Color: from})
}

func (m *Painter) DrawText(text string, x, y int, c color.Color) {
	m.renderer.record(PainterCall{Op: "text", Points: []image.Point{{X: x, Y: y}}, Text: text, Color: c})
}

var _ ports.Painter = (*Painter)(nil)
