package script

import (
	"context"
	"errors"
	"testing"

	"github.com/user/rasterpaint/pkg/adapters/ggrenderer"
	"github.com/user/rasterpaint/pkg/adapters/imagecodec"
	"github.com/user/rasterpaint/pkg/adapters/scriptprompter"
	"github.com/user/rasterpaint/pkg/canvas"
	"github.com/user/rasterpaint/pkg/mocks"
	"github.com/user/rasterpaint/pkg/ports"
	"github.com/user/rasterpaint/pkg/raster"
)

const sampleScript = `
steps:
  - tool: line
  - brush: 3
  - color: "#ff0000"
  - stroke:
      points: [[10, 10], [100, 10]]
  - tool: fill
  - fill:
      at: [5, 50]
      button: secondary
  - factor: 1.0
  - filter:
      name: brightness
  - filter:
      name: invert
  - undo: 1
  - save: out.png
`

type fixture struct {
	engine   *canvas.Engine
	prompter *scriptprompter.Prompter
	fs       *mocks.FileSystem
	logger   *mocks.Logger
	runner   *Runner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	r, err := ggrenderer.New(0)
	if err != nil {
		t.Fatalf("ggrenderer.New failed: %v", err)
	}
	f := &fixture{
		prompter: scriptprompter.New(),
		fs:       mocks.NewFileSystem(),
		logger:   &mocks.Logger{},
	}
	cfg := canvas.DefaultConfig()
	cfg.Width, cfg.Height = 200, 120
	f.engine, err = canvas.New(cfg, canvas.Deps{
		Renderer:   r,
		Codec:      imagecodec.New(),
		FileSystem: f.fs,
		Prompter:   f.prompter,
		Logger:     f.logger,
	})
	if err != nil {
		t.Fatalf("canvas.New failed: %v", err)
	}
	f.runner = NewRunner(f.engine, f.prompter, f.logger)
	return f
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(s.Steps) != 11 {
		t.Fatalf("expected 11 steps, got %d", len(s.Steps))
	}
	if s.Steps[3].Action() != "stroke" || len(s.Steps[3].Stroke.Points) != 2 {
		t.Errorf("unexpected stroke step %+v", s.Steps[3])
	}
	if s.Steps[5].Fill.Button != "secondary" {
		t.Errorf("unexpected fill step %+v", s.Steps[5].Fill)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":        "steps: [",
		"empty step":    "steps:\n  - {}\n",
		"two actions":   "steps:\n  - tool: line\n    brush: 4\n",
		"unknown tool":  "steps:\n  - tool: lasso\n",
		"no points":     "steps:\n  - stroke: {points: []}\n",
		"short polygon": "steps:\n  - polygon: {points: [[1, 1], [2, 2]]}\n",
		"bad button":    "steps:\n  - click: {at: [1, 1], button: middle}\n",
		"bad filter":    "steps:\n  - filter: {name: emboss}\n",
		"bad resize":    "steps:\n  - resize: {width: 0, height: 10}\n",
		"negative undo": "steps:\n  - undo: -1\n",
	}
	for name, src := range tests {
		if _, err := Parse([]byte(src)); !errors.Is(err, ErrInvalidScript) {
			t.Errorf("%s: expected ErrInvalidScript, got %v", name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.PutFile("session.yaml", []byte(sampleScript))

	if _, err := Load(fs, "session.yaml"); err != nil {
		t.Errorf("Load failed: %v", err)
	}
	if _, err := Load(fs, "missing.yaml"); err == nil {
		t.Error("expected error for missing script")
	}
}

func TestRunner_Run(t *testing.T) {
	f := newFixture(t)
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	res, err := f.runner.Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Steps != 11 || res.Failed != 0 {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Actions["filter"] != 2 {
		t.Errorf("expected 2 filters, got %d", res.Actions["filter"])
	}
	if len(res.Saved) != 1 || res.Saved[0] != "out.png" {
		t.Errorf("unexpected saves %v", res.Saved)
	}
	if _, ok := f.fs.GetFile("out.png"); !ok {
		t.Error("expected out.png to be written")
	}
	if texts, factors := f.prompter.Pending(); texts != 0 || factors != 0 {
		t.Errorf("all answers must be consumed, pending %d %d", texts, factors)
	}

	// The invert was undone: red line on a white (secondary) fill.
	img := f.engine.Image()
	if c := img.RGBAAt(50, 10); c.R != 255 || c.G != 0 {
		t.Errorf("expected red line, got %v", c)
	}
	if c := img.RGBAAt(50, 60); c != raster.White {
		t.Errorf("expected white background, got %v", c)
	}
}

func TestRunner_LenientLogsFailures(t *testing.T) {
	f := newFixture(t)
	s, err := Parse([]byte("steps:\n  - fill: {at: [500, 500]}\n  - brush: 99\n  - new: true\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	res, err := f.runner.Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Failed != 2 || len(res.Errors) != 2 {
		t.Fatalf("expected 2 failures, got %+v", res)
	}
	if !errors.Is(res.Errors[0], raster.ErrOutOfBounds) {
		t.Errorf("expected out of bounds, got %v", res.Errors[0])
	}
	if res.Errors[1].Index != 2 || res.Errors[1].Action != "brush" {
		t.Errorf("unexpected step error %+v", res.Errors[1])
	}
	if f.logger.Count(ports.LevelWarn) != 2 {
		t.Errorf("expected 2 warnings, got %d", f.logger.Count(ports.LevelWarn))
	}
}

func TestRunner_StrictStops(t *testing.T) {
	f := newFixture(t)
	s, err := Parse([]byte("strict: true\nsteps:\n  - brush: 99\n  - new: true\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	res, err := f.runner.Run(context.Background(), s)
	var stepErr StepError
	if !errors.As(err, &stepErr) || stepErr.Index != 1 {
		t.Fatalf("expected StepError for step 1, got %v", err)
	}
	if res.Steps != 1 {
		t.Errorf("expected the run to stop after step 1, got %d", res.Steps)
	}
}

func TestRunner_ContextCancelled(t *testing.T) {
	f := newFixture(t)
	s, _ := Parse([]byte("steps:\n  - new: true\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := f.runner.Run(ctx, s)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.Steps != 0 {
		t.Errorf("no step may run after cancellation, got %d", res.Steps)
	}
}

func TestRunner_PolygonAndText(t *testing.T) {
	f := newFixture(t)
	before := f.engine.Snapshots()
	s, err := Parse([]byte(`
steps:
  - polygon: {points: [[10, 10], [150, 10], [80, 100]]}
  - text: "Hi"
  - tool: text
  - click: {at: [20, 60]}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := f.runner.Run(context.Background(), s); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := f.engine.Snapshots() - before; got != 2 {
		t.Errorf("expected polygon and text snapshots, got %d", got)
	}
	if len(f.engine.PolygonVertices()) != 0 {
		t.Error("polygon must be closed")
	}
	if c := f.engine.Image().RGBAAt(80, 10); c == raster.White {
		t.Error("expected polygon edge")
	}
}

func TestRunner_RejectsUnvalidatedScript(t *testing.T) {
	f := newFixture(t)
	before := f.engine.Snapshots()
	s := &Script{Steps: []Step{
		{New: true},
		{Stroke: &StrokeStep{}},
	}}

	res, err := f.runner.Run(context.Background(), s)
	if !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript, got %v", err)
	}
	if res.Steps != 0 || f.engine.Snapshots() != before {
		t.Error("no step may run from an invalid script")
	}
}
