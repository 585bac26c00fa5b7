// Package script describes a paint session as a list of steps and replays it
// against a canvas engine.
package script

import (
	"errors"
	"fmt"
	"image"

	"gopkg.in/yaml.v3"

	"github.com/user/rasterpaint/pkg/filters"
	"github.com/user/rasterpaint/pkg/ports"
	"github.com/user/rasterpaint/pkg/tools"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("script: invalid script")

// Script is a replayable session.
type Script struct {
	// Strict aborts the run on the first failing step instead of logging it.
	Strict bool   `yaml:"strict"`
	Steps  []Step `yaml:"steps"`
}

// Point is an [x, y] pair.
type Point [2]int

func (p Point) pt() image.Point { return image.Pt(p[0], p[1]) }

// Step holds exactly one action.
type Step struct {
	Tool      string      `yaml:"tool,omitempty"`
	Brush     int         `yaml:"brush,omitempty"`
	Color     string      `yaml:"color,omitempty"`
	Secondary string      `yaml:"secondary,omitempty"`
	Stroke    *StrokeStep `yaml:"stroke,omitempty"`
	Click     *ClickStep  `yaml:"click,omitempty"`
	Polygon   *StrokeStep `yaml:"polygon,omitempty"`
	Fill      *ClickStep  `yaml:"fill,omitempty"`
	Text      *string     `yaml:"text,omitempty"`
	Factor    *float64    `yaml:"factor,omitempty"`
	Filter    *FilterStep `yaml:"filter,omitempty"`
	Undo      int         `yaml:"undo,omitempty"`
	Redo      int         `yaml:"redo,omitempty"`
	Resize    *ResizeStep `yaml:"resize,omitempty"`
	New       bool        `yaml:"new,omitempty"`
	Open      string      `yaml:"open,omitempty"`
	Save      string      `yaml:"save,omitempty"`
}

// StrokeStep is a press at the first point, motion through the rest and a
// release at the last. For polygons each point is a primary click and the
// polygon is closed with a secondary click.
type StrokeStep struct {
	Points []Point `yaml:"points"`
	Button string  `yaml:"button,omitempty"`
}

// ClickStep is a press and release at one point.
type ClickStep struct {
	At     Point  `yaml:"at"`
	Button string `yaml:"button,omitempty"`
}

// FilterStep applies a filter. Without a factor, brightness and contrast take
// their factor from a queued `factor` step.
type FilterStep struct {
	Name   string   `yaml:"name"`
	Factor *float64 `yaml:"factor,omitempty"`
}

// ResizeStep grows the canvas.
type ResizeStep struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script through fs.
func Load(fs ports.FileSystem, path string) (*Script, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Validate checks every step before anything runs.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i+1, err)
		}
	}
	return nil
}

// Action returns the name of the step's action.
func (st Step) Action() string {
	names := st.actions()
	if len(names) != 1 {
		return ""
	}
	return names[0]
}

func (st Step) actions() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(st.Tool != "", "tool")
	add(st.Brush != 0, "brush")
	add(st.Color != "", "color")
	add(st.Secondary != "", "secondary")
	add(st.Stroke != nil, "stroke")
	add(st.Click != nil, "click")
	add(st.Polygon != nil, "polygon")
	add(st.Fill != nil, "fill")
	add(st.Text != nil, "text")
	add(st.Factor != nil, "factor")
	add(st.Filter != nil, "filter")
	add(st.Undo != 0, "undo")
	add(st.Redo != 0, "redo")
	add(st.Resize != nil, "resize")
	add(st.New, "new")
	add(st.Open != "", "open")
	add(st.Save != "", "save")
	return names
}

func (st Step) validate() error {
	names := st.actions()
	switch len(names) {
	case 0:
		return errors.New("empty step")
	case 1:
	default:
		return fmt.Errorf("step has several actions %v", names)
	}

	switch {
	case st.Tool != "":
		if _, err := tools.ParseKind(st.Tool); err != nil {
			return err
		}
	case st.Stroke != nil:
		if len(st.Stroke.Points) == 0 {
			return errors.New("stroke needs at least one point")
		}
		return validButton(st.Stroke.Button)
	case st.Polygon != nil:
		if len(st.Polygon.Points) < 3 {
			return errors.New("polygon needs at least three points")
		}
	case st.Click != nil:
		return validButton(st.Click.Button)
	case st.Fill != nil:
		return validButton(st.Fill.Button)
	case st.Filter != nil:
		if _, err := filters.ParseKind(st.Filter.Name); err != nil {
			return err
		}
	case st.Undo < 0 || st.Redo < 0:
		return errors.New("undo/redo counts must be positive")
	case st.Resize != nil:
		if st.Resize.Width <= 0 || st.Resize.Height <= 0 {
			return fmt.Errorf("resize to %dx%d", st.Resize.Width, st.Resize.Height)
		}
	}
	return nil
}

func validButton(s string) error {
	_, err := tools.ParseButtonRole(s)
	return err
}
