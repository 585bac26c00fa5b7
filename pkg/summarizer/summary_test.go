package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/rasterpaint/pkg/mocks"
	"gopkg.in/yaml.v3"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := NewBuilder().
		WithSession(SessionInfo{Script: "s.yaml", Steps: 4}).
		WithCanvas(CanvasInfo{Width: 10, Height: 20, Snapshots: 3}).
		WithTools(ToolInfo{Tool: "brush", BrushSize: 3}).
		WithOutput("out.jpg", "jpeg", 512).
		Build()

	if summary.Session.Script != "s.yaml" || summary.Session.Steps != 4 {
		t.Errorf("unexpected session %+v", summary.Session)
	}
	if summary.Canvas.Width != 10 || summary.Canvas.Snapshots != 3 {
		t.Errorf("unexpected canvas %+v", summary.Canvas)
	}
	if summary.Tools.Tool != "brush" {
		t.Errorf("unexpected tools %+v", summary.Tools)
	}
	if summary.Output != (OutputInfo{Path: "out.jpg", Format: "jpeg", FileSize: 512}) {
		t.Errorf("unexpected output %+v", summary.Output)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) (string, error) { return "report " + s.Session.Script, nil }), fs)

	if err := w.Write("reports/summary.md", &Summary{Session: SessionInfo{Script: "a.yaml"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, ok := fs.GetFile("reports/summary.md")
	if !ok || string(data) != "report a.yaml" {
		t.Errorf("unexpected file %q (%v)", data, ok)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error { return errors.New("read-only") }
	w := NewWriter(NewMarkdownFormatter(), fs)

	err := w.Write("summary.md", NewSummary())
	if err == nil || !strings.Contains(err.Error(), "write summary") {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestWriter_FormatError(t *testing.T) {
	fs := mocks.NewFileSystem()
	boom := errors.New("boom")
	w := NewWriter(FormatFunc(func(*Summary) (string, error) { return "", boom }), fs)

	if err := w.Write("summary.md", NewSummary()); !errors.Is(err, boom) {
		t.Errorf("expected formatter error, got %v", err)
	}
	if _, ok := fs.GetFile("summary.md"); ok {
		t.Error("nothing may be written when formatting fails")
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Formatter
	}{
		{"report.md", &MarkdownFormatter{}},
		{"REPORT.Markdown", &MarkdownFormatter{}},
		{"report.yaml", YAMLFormatter{}},
		{"report.yml", YAMLFormatter{}},
	}
	for _, tt := range tests {
		got, err := ForPath(tt.path)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.path, err)
			continue
		}
		switch tt.want.(type) {
		case *MarkdownFormatter:
			if _, ok := got.(*MarkdownFormatter); !ok {
				t.Errorf("%s: expected markdown formatter, got %T", tt.path, got)
			}
		case YAMLFormatter:
			if _, ok := got.(YAMLFormatter); !ok {
				t.Errorf("%s: expected yaml formatter, got %T", tt.path, got)
			}
		}
	}

	if _, err := ForPath("report.html"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	s := NewBuilder().
		WithSession(SessionInfo{Script: "s.yaml", Steps: 4, Actions: map[string]int{"stroke": 2}}).
		WithCanvas(CanvasInfo{Width: 10, Height: 20, CanUndo: true}).
		WithTools(ToolInfo{Tool: "spray", BrushSize: 5}).
		WithOutput("out.png", "png", 99).
		Build()

	out, err := YAMLFormatter{}.Format(s)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var back Summary
	if err := yaml.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if back.Session.Actions["stroke"] != 2 || back.Tools.Tool != "spray" || !back.Canvas.CanUndo {
		t.Errorf("unexpected round trip %+v", back)
	}
	if !strings.Contains(out, "brush_size: 5") {
		t.Errorf("expected snake_case keys, got:\n%s", out)
	}
}
