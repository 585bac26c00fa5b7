package tools

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/user/rasterpaint/pkg/floodfill"
	"github.com/user/rasterpaint/pkg/ports"
	"github.com/user/rasterpaint/pkg/raster"
)

// DefaultSprayParticles is the number of dots scattered per spray move.
const DefaultSprayParticles = 20

// Prompt strings shown by the collaborator for the text tool.
const (
	TextPromptTitle = "Text Tool"
	TextPromptLabel = "Enter text:"
)

var selectionPen = ports.Pen{
	Color: color.RGBA{A: 255},
	Width: 1,
	Cap:   ports.CapButt,
	Dash:  []float64{4, 2},
}

type phase int

const (
	idle phase = iota
	dragging
)

// gesture holds everything bound when a pointer button goes down.
type gesture struct {
	tool   Kind
	role   ButtonRole
	color  color.RGBA
	size   int
	anchor image.Point
	last   image.Point
	dirty  bool
}

// Outcome reports what a pointer event did to the surface.
type Outcome struct {
	// Changed is true when the event altered pixels.
	Changed bool
	// Commit is true when a gesture finished with a change that belongs in history.
	Commit bool
}

// Options tunes an Engine.
type Options struct {
	SprayParticles int
	Rand           *rand.Rand
}

// Engine routes pointer events to the current tool. It is not safe for
// concurrent use.
type Engine struct {
	state     *State
	renderer  ports.Renderer
	prompter  ports.Prompter
	rng       *rand.Rand
	particles int

	phase   phase
	gesture gesture
	preview *raster.Surface

	polygon      []image.Point
	polygonColor color.RGBA
	polygonSize  int
	polygonBase  *raster.Surface

	selection    image.Rectangle
	hasSelection bool
}

// NewEngine creates an Engine operating with state.
func NewEngine(state *State, renderer ports.Renderer, prompter ports.Prompter, opts Options) *Engine {
	if opts.SprayParticles <= 0 {
		opts.SprayParticles = DefaultSprayParticles
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Engine{
		state:     state,
		renderer:  renderer,
		prompter:  prompter,
		rng:       opts.Rand,
		particles: opts.SprayParticles,
	}
}

// State returns the tool state the engine reads at gesture start.
func (e *Engine) State() *State { return e.state }

// Dragging reports whether a gesture is in progress.
func (e *Engine) Dragging() bool { return e.phase == dragging }

// PolygonVertices returns the vertices of the polygon being built.
func (e *Engine) PolygonVertices() []image.Point {
	return append([]image.Point(nil), e.polygon...)
}

// Selection returns the last marquee rectangle, if any.
func (e *Engine) Selection() (image.Rectangle, bool) {
	return e.selection, e.hasSelection
}

// ClearSelection forgets the marquee rectangle.
func (e *Engine) ClearSelection() {
	e.selection = image.Rectangle{}
	e.hasSelection = false
}

// SetTool switches tools. Any gesture or polygon in progress is discarded and
// the surface is restored to its state before that gesture.
func (e *Engine) SetTool(s *raster.Surface, k Kind) {
	e.Cancel(s)
	e.state.Tool = k
}

// Cancel discards the gesture or polygon in progress. It reports whether the
// surface was restored.
func (e *Engine) Cancel(s *raster.Surface) bool {
	restored := false
	if e.phase == dragging {
		s.CopyFrom(e.preview)
		e.reset()
		restored = true
	}
	if e.polygonBase != nil {
		s.CopyFrom(e.polygonBase)
		restored = true
	}
	e.resetPolygon()
	return restored
}

// Start handles a pointer press at p.
func (e *Engine) Start(s *raster.Surface, p image.Point, role ButtonRole) (Outcome, error) {
	if e.state.Tool == Polygon {
		return e.polygonClick(s, p, role), nil
	}
	if e.phase == dragging {
		// A second button while dragging does not start a new gesture.
		return Outcome{}, nil
	}

	e.gesture = gesture{
		tool:   e.state.Tool,
		role:   role,
		color:  e.state.ColorFor(role),
		size:   e.state.BrushSize,
		anchor: p,
		last:   p,
	}
	e.preview = s.Clone()
	e.phase = dragging

	switch e.gesture.tool {
	case Fill:
		n, err := floodfill.Fill(s, p, e.gesture.color)
		if err != nil {
			e.reset()
			return Outcome{}, fmt.Errorf("fill at (%d,%d): %w", p.X, p.Y, err)
		}
		e.gesture.dirty = n > 0
	case Text:
		e.gesture.dirty = e.drawText(s, p)
	case Selection:
		e.ClearSelection()
	}

	return Outcome{Changed: e.gesture.dirty}, nil
}

// Move handles pointer motion to p while a button is held.
func (e *Engine) Move(s *raster.Surface, p image.Point) Outcome {
	if e.phase != dragging {
		return Outcome{}
	}

	g := &e.gesture
	changed := true
	switch {
	case g.tool == Brush || g.tool == Eraser:
		c := g.color
		if g.tool == Eraser {
			c = e.state.Background
		}
		e.painter(s).StrokeLine(float64(g.last.X), float64(g.last.Y), float64(p.X), float64(p.Y), ports.Pen{
			Color: c,
			Width: float64(g.size),
			Cap:   ports.CapRound,
			Join:  ports.JoinRound,
		})
	case g.tool == Spray:
		changed = e.spray(s, p)
	case g.tool.shape():
		s.CopyFrom(e.preview)
		e.drawShape(s, p)
	default:
		changed = false
	}

	if changed && g.tool != Selection {
		g.dirty = true
	}
	g.last = p
	return Outcome{Changed: changed}
}

// End handles the pointer release at p and finishes the gesture.
func (e *Engine) End(s *raster.Surface, p image.Point) Outcome {
	if e.phase != dragging {
		return Outcome{}
	}

	out := Outcome{}
	if p != e.gesture.last && (e.gesture.tool.continuous() || e.gesture.tool.shape()) {
		out = e.Move(s, p)
	}

	if e.gesture.tool == Selection {
		// The marquee is an overlay; pixels go back to the pre-gesture state.
		e.selection = normalized(e.gesture.anchor, e.gesture.last)
		e.hasSelection = true
		s.CopyFrom(e.preview)
		out.Changed = true
	}

	// Strokes that landed entirely off the surface leave it unchanged.
	out.Commit = e.gesture.dirty && (e.preview == nil || !s.Equal(e.preview))
	out.Changed = out.Changed || out.Commit
	e.reset()
	return out
}

func (e *Engine) reset() {
	e.phase = idle
	e.gesture = gesture{}
	e.preview = nil
}

func (e *Engine) resetPolygon() {
	e.polygon = nil
	e.polygonBase = nil
}

func (e *Engine) painter(s *raster.Surface) ports.Painter {
	return e.renderer.NewPainter(s.RGBA())
}

// drawShape renders the shape tool from the anchor to p.
func (e *Engine) drawShape(s *raster.Surface, p image.Point) {
	g := e.gesture
	pen := ports.Pen{Color: g.color, Width: float64(g.size)}
	painter := e.painter(s)

	switch g.tool {
	case Line:
		painter.StrokeLine(float64(g.anchor.X), float64(g.anchor.Y), float64(p.X), float64(p.Y), pen)
	case Rectangle:
		painter.StrokeRect(normalized(g.anchor, p), pen)
	case Circle:
		painter.StrokeEllipse(normalized(g.anchor, p), pen)
	case Gradient:
		painter.FillLinearGradient(normalized(g.anchor, p), g.anchor, p, g.color, color.Transparent)
	case Selection:
		painter.StrokeRect(normalized(g.anchor, p), selectionPen)
	}
}

// spray scatters dots around p with a normal spread of one brush size.
// It reports whether any dot landed on the surface.
func (e *Engine) spray(s *raster.Surface, p image.Point) bool {
	sigma := float64(e.gesture.size)
	hit := false
	for i := 0; i < e.particles; i++ {
		x := p.X + int(e.rng.NormFloat64()*sigma)
		y := p.Y + int(e.rng.NormFloat64()*sigma)
		if s.Contains(x, y) {
			s.Set(x, y, e.gesture.color)
			hit = true
		}
	}
	return hit
}

// drawText asks for the text and draws it at p. It reports whether anything was drawn.
func (e *Engine) drawText(s *raster.Surface, p image.Point) bool {
	if e.prompter == nil {
		return false
	}
	text, ok := e.prompter.PromptText(TextPromptTitle, TextPromptLabel)
	if !ok || text == "" {
		return false
	}
	e.painter(s).DrawText(text, p.X, p.Y, e.gesture.color)
	return true
}

// polygonClick adds a vertex on primary clicks and finishes the polygon on
// secondary clicks.
func (e *Engine) polygonClick(s *raster.Surface, p image.Point, role ButtonRole) Outcome {
	if role == Secondary {
		if len(e.polygon) < 3 {
			restored := e.polygonBase != nil
			if restored {
				s.CopyFrom(e.polygonBase)
			}
			e.resetPolygon()
			return Outcome{Changed: restored}
		}
		e.renderPolygon(s)
		e.resetPolygon()
		return Outcome{Changed: true, Commit: true}
	}

	if len(e.polygon) == 0 {
		e.polygonBase = s.Clone()
		e.polygonColor = e.state.ColorFor(Primary)
		e.polygonSize = e.state.BrushSize
	}
	e.polygon = append(e.polygon, p)
	if len(e.polygon) < 3 {
		return Outcome{}
	}
	e.renderPolygon(s)
	return Outcome{Changed: true}
}

func (e *Engine) renderPolygon(s *raster.Surface) {
	s.CopyFrom(e.polygonBase)
	e.painter(s).StrokePolygon(e.polygon, ports.Pen{
		Color: e.polygonColor,
		Width: float64(e.polygonSize),
	})
}

// normalized returns the rectangle spanned by two corners.
func normalized(a, b image.Point) image.Rectangle {
	return image.Rectangle{Min: a, Max: b}.Canon()
}
