package script

import (
	"context"
	"fmt"
	"time"

	"github.com/user/rasterpaint/pkg/canvas"
	"github.com/user/rasterpaint/pkg/config"
	"github.com/user/rasterpaint/pkg/filters"
	"github.com/user/rasterpaint/pkg/ports"
	"github.com/user/rasterpaint/pkg/tools"
)

// AnswerQueue receives the answers of text and factor steps so the engine's
// prompter can hand them out later.
type AnswerQueue interface {
	QueueText(s string)
	QueueFactor(f float64)
}

// Result describes a finished run.
type Result struct {
	Steps    int
	Failed   int
	Actions  map[string]int
	Saved    []string
	Errors   []StepError
	Duration time.Duration
}

// StepError is a step that failed without aborting the run.
type StepError struct {
	Index  int
	Action string
	Err    error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Action, e.Err)
}

func (e StepError) Unwrap() error { return e.Err }

// Runner replays scripts against one engine.
type Runner struct {
	engine  *canvas.Engine
	answers AnswerQueue
	logger  ports.Logger
}

// NewRunner creates a Runner. answers must be the queue behind the engine's
// prompter.
func NewRunner(engine *canvas.Engine, answers AnswerQueue, logger ports.Logger) *Runner {
	return &Runner{
		engine:  engine,
		answers: answers,
		logger:  logger.WithComponent("script"),
	}
}

// Run executes the steps in order. The context is checked between steps.
// Failing steps are logged and skipped unless the script is strict.
// A script that does not validate is rejected before any step runs.
func (r *Runner) Run(ctx context.Context, s *Script) (Result, error) {
	start := time.Now()
	res := Result{Actions: make(map[string]int)}
	if err := s.Validate(); err != nil {
		return res, err
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}

		action := st.Action()
		r.logger.Debug("Step %d: %s", i+1, action)
		err := r.runStep(st)
		res.Steps++
		res.Actions[action]++
		if err == nil {
			if st.Save != "" {
				res.Saved = append(res.Saved, st.Save)
			}
			continue
		}

		stepErr := StepError{Index: i + 1, Action: action, Err: err}
		if s.Strict {
			res.Duration = time.Since(start)
			return res, stepErr
		}
		r.logger.Warn("Step %d (%s) failed: %s", i+1, action, err)
		res.Failed++
		res.Errors = append(res.Errors, stepErr)
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (r *Runner) runStep(st Step) error {
	e := r.engine
	switch {
	case st.Tool != "":
		k, err := tools.ParseKind(st.Tool)
		if err != nil {
			return err
		}
		e.SetTool(k)

	case st.Brush != 0:
		return e.SetBrushSize(st.Brush)

	case st.Color != "":
		c, err := config.ParseColor(st.Color)
		if err != nil {
			return err
		}
		e.SetPrimaryColor(c)

	case st.Secondary != "":
		c, err := config.ParseColor(st.Secondary)
		if err != nil {
			return err
		}
		e.SetSecondaryColor(c)

	case st.Stroke != nil:
		role, err := tools.ParseButtonRole(st.Stroke.Button)
		if err != nil {
			return err
		}
		pts := st.Stroke.Points
		if err := e.PointerDown(pts[0].pt(), role); err != nil {
			return err
		}
		for _, p := range pts[1:] {
			e.PointerMove(p.pt())
		}
		e.PointerUp(pts[len(pts)-1].pt())

	case st.Click != nil:
		role, err := tools.ParseButtonRole(st.Click.Button)
		if err != nil {
			return err
		}
		if err := e.PointerDown(st.Click.At.pt(), role); err != nil {
			return err
		}
		e.PointerUp(st.Click.At.pt())

	case st.Polygon != nil:
		// Selecting the tool also drops a polygon left open by earlier clicks.
		e.SetTool(tools.Polygon)
		for _, p := range st.Polygon.Points {
			if err := e.PointerDown(p.pt(), tools.Primary); err != nil {
				return err
			}
			e.PointerUp(p.pt())
		}
		last := st.Polygon.Points[len(st.Polygon.Points)-1].pt()
		if err := e.PointerDown(last, tools.Secondary); err != nil {
			return err
		}
		e.PointerUp(last)

	case st.Fill != nil:
		role, err := tools.ParseButtonRole(st.Fill.Button)
		if err != nil {
			return err
		}
		if _, err := e.Fill(st.Fill.At.pt(), role); err != nil {
			return err
		}

	case st.Text != nil:
		r.answers.QueueText(*st.Text)

	case st.Factor != nil:
		r.answers.QueueFactor(*st.Factor)

	case st.Filter != nil:
		kind, err := filters.ParseKind(st.Filter.Name)
		if err != nil {
			return err
		}
		if st.Filter.Factor != nil {
			return e.ApplyFilterFactor(kind, *st.Filter.Factor)
		}
		applied, err := e.ApplyFilter(kind)
		if err != nil {
			return err
		}
		if !applied {
			r.logger.Info("Filter %s cancelled", kind)
		}

	case st.Undo > 0:
		for i := 0; i < st.Undo; i++ {
			if !e.Undo() {
				r.logger.Debug("Nothing left to undo")
				break
			}
		}

	case st.Redo > 0:
		for i := 0; i < st.Redo; i++ {
			if !e.Redo() {
				r.logger.Debug("Nothing left to redo")
				break
			}
		}

	case st.Resize != nil:
		if _, err := e.Resize(st.Resize.Width, st.Resize.Height); err != nil {
			return err
		}

	case st.New:
		e.NewCanvas()

	case st.Open != "":
		return e.Open(st.Open)

	case st.Save != "":
		return e.Save(st.Save)

	default:
		return fmt.Errorf("%w: empty step", ErrInvalidScript)
	}
	return nil
}
