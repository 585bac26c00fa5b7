// Package canvas owns the drawing surface and exposes the operations a user
// interface calls: pointer events, tool settings, undo/redo, filters and file
// load/save.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/user/rasterpaint/pkg/filters"
	"github.com/user/rasterpaint/pkg/floodfill"
	"github.com/user/rasterpaint/pkg/history"
	"github.com/user/rasterpaint/pkg/ports"
	"github.com/user/rasterpaint/pkg/raster"
	"github.com/user/rasterpaint/pkg/tools"
)

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("canvas: missing dependency")

// Deps are the collaborators the engine talks to.
// Prompter, FileSystem and Sink may be nil.
type Deps struct {
	Renderer   ports.Renderer
	Codec      ports.Codec
	FileSystem ports.FileSystem
	Prompter   ports.Prompter
	Sink       ports.SnapshotSink
	Logger     ports.Logger
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a pointer press, motion or release in surface coordinates.
type PointerEvent struct {
	Kind PointerKind
	Pos  image.Point
	Role tools.ButtonRole
}

// Engine is a single-document paint engine. It is not safe for concurrent
// use; the caller serializes all calls.
type Engine struct {
	cfg     Config
	deps    Deps
	logger  ports.Logger
	surface *raster.Surface
	state   *tools.State
	tools   *tools.Engine
	history *history.Manager
	seq     int
}

// New creates an engine with a blank canvas of the configured size. The blank
// canvas is the first history entry.
func New(cfg Config, deps Deps) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch {
	case deps.Renderer == nil:
		return nil, fmt.Errorf("%w: renderer", ErrMissingDependency)
	case deps.Codec == nil:
		return nil, fmt.Errorf("%w: codec", ErrMissingDependency)
	case deps.Logger == nil:
		return nil, fmt.Errorf("%w: logger", ErrMissingDependency)
	}

	surface, err := raster.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	surface.Fill(cfg.Background)

	var rng *rand.Rand
	if cfg.SpraySeed != 0 {
		rng = rand.New(rand.NewSource(cfg.SpraySeed))
	}

	state := cfg.toolState()
	e := &Engine{
		cfg:     cfg,
		deps:    deps,
		logger:  deps.Logger.WithComponent("canvas"),
		surface: surface,
		state:   &state,
		history: history.New(cfg.HistoryLimit),
	}
	e.tools = tools.NewEngine(e.state, deps.Renderer, deps.Prompter, tools.Options{
		SprayParticles: cfg.SprayParticles,
		Rand:           rng,
	})
	e.record("new")
	return e, nil
}

// record pushes the current surface onto history and hands it to the
// snapshot sink when one is enabled.
func (e *Engine) record(reason string) {
	snap := e.history.Record(e.surface)
	e.seq++
	e.logger.Debug("Recorded snapshot %d (%s)", e.seq, reason)

	if e.deps.Sink == nil || !e.deps.Sink.Enabled() {
		return
	}
	if err := e.deps.Sink.SaveSnapshot(e.seq, snap.Revision.String(), snap.Surface.Image()); err != nil {
		e.logger.Warn("Failed to save snapshot %d: %s", e.seq, err)
	}
}

// cancelGesture drops any gesture in progress before a whole-surface operation.
func (e *Engine) cancelGesture() {
	if e.tools.Cancel(e.surface) {
		e.logger.Debug("Discarded gesture in progress")
	}
}

// PointerDown starts a gesture, or adds a polygon vertex, at p.
func (e *Engine) PointerDown(p image.Point, role tools.ButtonRole) error {
	out, err := e.tools.Start(e.surface, p, role)
	if err != nil {
		return err
	}
	if out.Commit {
		e.record(e.state.Tool.String())
	}
	return nil
}

// PointerMove continues the gesture in progress. It is ignored while idle.
func (e *Engine) PointerMove(p image.Point) {
	e.tools.Move(e.surface, p)
}

// PointerUp ends the gesture and records it when it changed the surface.
func (e *Engine) PointerUp(p image.Point) {
	tool := e.state.Tool
	if out := e.tools.End(e.surface, p); out.Commit {
		e.record(tool.String())
	}
}

// HandlePointer dispatches ev to PointerDown, PointerMove or PointerUp.
func (e *Engine) HandlePointer(ev PointerEvent) error {
	switch ev.Kind {
	case PointerDown:
		return e.PointerDown(ev.Pos, ev.Role)
	case PointerMove:
		e.PointerMove(ev.Pos)
	case PointerUp:
		e.PointerUp(ev.Pos)
	default:
		return fmt.Errorf("pointer event kind %d: %w", ev.Kind, raster.ErrInvalidParameter)
	}
	return nil
}

// SetTool selects the active tool. An unfinished gesture or polygon is
// discarded.
func (e *Engine) SetTool(k tools.Kind) {
	e.tools.SetTool(e.surface, k)
}

// SetBrushSize changes the brush size. Sizes outside the configured range are
// rejected with raster.ErrInvalidParameter.
func (e *Engine) SetBrushSize(n int) error {
	return e.state.SetBrushSize(n)
}

// SetPrimaryColor sets the color used by primary-button gestures.
func (e *Engine) SetPrimaryColor(c color.Color) {
	e.state.Primary = opaque(c)
}

// SetSecondaryColor sets the color used by secondary-button gestures.
func (e *Engine) SetSecondaryColor(c color.Color) {
	e.state.Secondary = opaque(c)
}

// State returns a copy of the tool state.
func (e *Engine) State() tools.State {
	return *e.state
}

// Undo restores the previous history entry. It reports false when there is
// nothing to undo.
func (e *Engine) Undo() bool {
	e.cancelGesture()
	s, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.surface.CopyFrom(s)
	e.logger.Debug("Undo, %d entries left", e.history.UndoLen())
	return true
}

// Redo re-applies the most recently undone entry.
func (e *Engine) Redo() bool {
	e.cancelGesture()
	s, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.surface.CopyFrom(s)
	e.logger.Debug("Redo, %d entries left", e.history.RedoLen())
	return true
}

// CanUndo reports whether Undo would change the surface.
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change the surface.
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// ApplyFilter applies kind to the whole surface. Brightness and contrast ask
// the prompter for a factor; a cancelled prompt leaves the surface untouched
// and reports false.
func (e *Engine) ApplyFilter(kind filters.Kind) (bool, error) {
	factor := filters.DefaultFactor
	if kind.NeedsFactor() {
		if e.deps.Prompter == nil {
			return false, nil
		}
		title, label := factorPrompt(kind)
		f, ok := e.deps.Prompter.PromptFactor(title, label, filters.DefaultFactor, filters.MinFactor, filters.MaxFactor)
		if !ok {
			e.logger.Debug("Filter %s cancelled", kind)
			return false, nil
		}
		factor = f
	}
	if err := e.ApplyFilterFactor(kind, factor); err != nil {
		return false, err
	}
	return true, nil
}

// ApplyFilterFactor applies kind with an explicit factor. The factor is
// ignored by filters that do not take one.
func (e *Engine) ApplyFilterFactor(kind filters.Kind, factor float64) error {
	e.cancelGesture()
	out, err := filters.Apply(e.surface.Image(), kind, factor)
	if err != nil {
		return fmt.Errorf("apply %s: %w", kind, err)
	}
	e.surface.CopyFrom(raster.FromImage(out))
	e.record(kind.String())
	return nil
}

func factorPrompt(kind filters.Kind) (string, string) {
	switch kind {
	case filters.Brightness:
		return "Brightness", "Enter brightness factor (0.0-2.0):"
	default:
		return "Contrast", "Enter contrast factor (0.0-2.0):"
	}
}

// Fill flood-fills the region at p with the color bound to role. It reports
// whether any pixel changed; an unchanged surface records nothing.
func (e *Engine) Fill(p image.Point, role tools.ButtonRole) (bool, error) {
	e.cancelGesture()
	n, err := floodfill.Fill(e.surface, p, e.state.ColorFor(role))
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	e.logger.Debug("Filled %d pixels at (%d,%d)", n, p.X, p.Y)
	e.record("fill")
	return true, nil
}

// NewCanvas clears the surface to the background color, keeping its size.
func (e *Engine) NewCanvas() {
	e.cancelGesture()
	e.tools.ClearSelection()
	e.surface.Fill(e.cfg.Background)
	e.record("new")
}

// Resize grows the surface to at least w x h. Existing pixels stay anchored at
// the top-left and the new area is white. It reports false when neither axis
// grew.
func (e *Engine) Resize(w, h int) (bool, error) {
	if w <= 0 || h <= 0 {
		return false, fmt.Errorf("resize to %dx%d: %w", w, h, raster.ErrInvalidParameter)
	}
	e.cancelGesture()
	if !e.surface.Resize(w, h) {
		return false, nil
	}
	e.logger.Debug("Resized to %dx%d", e.surface.Width(), e.surface.Height())
	e.record("resize")
	return true, nil
}

// Save encodes the surface in the format named by the path extension and
// writes it through the file system.
func (e *Engine) Save(path string) error {
	if e.deps.FileSystem == nil {
		return fmt.Errorf("%w: file system", ErrMissingDependency)
	}
	format, err := ports.FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%w: %v", raster.ErrEncode, err)
	}
	data, err := e.surface.Encode(e.deps.Codec, format, e.cfg.JPEGQuality)
	if err != nil {
		return err
	}
	if err := e.deps.FileSystem.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", raster.ErrEncode, path, err)
	}
	e.logger.Debug("Saved %s (%s, %d bytes)", path, format, len(data))
	return nil
}

// Open loads an image, scales it to fit the current canvas keeping its aspect
// ratio and places it at the top-left of a white canvas of the current size.
// On failure the surface is left untouched.
func (e *Engine) Open(path string) error {
	if e.deps.FileSystem == nil {
		return fmt.Errorf("%w: file system", ErrMissingDependency)
	}
	data, err := e.deps.FileSystem.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	img, format, err := e.deps.Codec.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", raster.ErrDecode, path, err)
	}

	e.cancelGesture()
	e.tools.ClearSelection()
	e.surface.CopyFrom(fitOnto(img, e.surface.Width(), e.surface.Height()))
	e.logger.Debug("Opened %s (%s, %dx%d)", path, format, img.Bounds().Dx(), img.Bounds().Dy())
	e.record("open")
	return nil
}

// fitOnto scales img to the largest size that fits w x h and draws it over
// white at the origin.
func fitOnto(img image.Image, w, h int) *raster.Surface {
	dst, _ := raster.New(w, h)
	b := img.Bounds()
	if b.Empty() {
		return dst
	}

	scale := math.Min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	fw := max(1, int(math.Round(float64(b.Dx())*scale)))
	fh := max(1, int(math.Round(float64(b.Dy())*scale)))

	var src image.Image = img
	if fw != b.Dx() || fh != b.Dy() {
		src = imaging.Resize(img, fw, fh, imaging.Lanczos)
	}
	draw.Draw(dst.RGBA(), image.Rect(0, 0, fw, fh), src, src.Bounds().Min, draw.Over)
	return dst
}

// Image returns a copy of the surface.
func (e *Engine) Image() *image.RGBA {
	return e.surface.Clone().RGBA()
}

// Size returns the surface dimensions.
func (e *Engine) Size() (int, int) {
	return e.surface.Width(), e.surface.Height()
}

// Revision returns the id of the history entry on display.
func (e *Engine) Revision() string {
	snap, ok := e.history.Current()
	if !ok {
		return ""
	}
	return snap.Revision.String()
}

// Snapshots returns how many snapshots were recorded since New.
func (e *Engine) Snapshots() int { return e.seq }

// Selection returns the last marquee rectangle drawn with the selection tool.
func (e *Engine) Selection() (image.Rectangle, bool) {
	return e.tools.Selection()
}

// PolygonVertices returns the vertices of the polygon in progress.
func (e *Engine) PolygonVertices() []image.Point {
	return e.tools.PolygonVertices()
}

func opaque(c color.Color) color.RGBA {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A == 255 {
		return rgba
	}
	// Composite over white so the surface stays opaque.
	a := uint32(rgba.A)
	blend := func(v uint8) uint8 { return uint8(uint32(v) + (255 - a)) }
	return color.RGBA{R: blend(rgba.R), G: blend(rgba.G), B: blend(rgba.B), A: 255}
}
