package summarizer

import (
	"strings"
	"testing"
	"time"
)

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Session: SessionInfo{
			Script:     "session.yaml",
			Steps:      12,
			Failed:     1,
			DurationMs: 42,
			Actions:    map[string]int{"stroke": 3, "filter": 2},
			Errors:     []string{"step 4 (fill): out of bounds"},
		},
		Canvas: CanvasInfo{
			Width:     800,
			Height:    600,
			Revision:  "4b1c",
			Snapshots: 7,
			CanUndo:   true,
		},
		Tools: ToolInfo{
			Tool:      "line",
			BrushSize: 3,
			Primary:   "#ff0000",
			Secondary: "#ffffff",
		},
		Output: OutputInfo{
			Path:     "out.png",
			Format:   "png",
			FileSize: 2048,
		},
	}

	result, _ := formatter.Format(summary)

	checks := []string{
		"# Paint Session Summary",
		"session.yaml",
		"| Steps | 12 |",
		"| Failed Steps | 1 |",
		"42 ms",
		"| filter | 2 |",
		"| stroke | 3 |",
		"800x600",
		"4b1c",
		"| Undo Available | Yes |",
		"| Redo Available | No |",
		"#ff0000",
		"out.png",
		"2.00 KB",
		"step 4 (fill): out of bounds",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}

	if strings.Index(result, "| filter |") > strings.Index(result, "| stroke |") {
		t.Error("expected actions sorted by name")
	}
}

func TestMarkdownFormatter_OmitsEmptySections(t *testing.T) {
	result, _ := NewMarkdownFormatter().Format(&Summary{GeneratedAt: time.Now()})

	for _, section := range []string{"## Output", "## Errors", "## Actions"} {
		if strings.Contains(result, section) {
			t.Errorf("expected %q to be omitted", section)
		}
	}
	if !strings.Contains(result, "| Script | - |") {
		t.Error("expected a dash for the missing script")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Paint Session Summary": "ペイントセッションの概要",
			"Brush Size":            "ブラシサイズ",
			"Yes":                   "はい",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	formatter := NewMarkdownFormatter(WithTranslator(translator))
	result, _ := formatter.Format(&Summary{
		GeneratedAt: time.Now(),
		Canvas:      CanvasInfo{CanUndo: true},
	})

	for _, want := range []string{"ペイントセッションの概要", "ブラシサイズ", "はい"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	formatter := NewMarkdownFormatter(WithVersion("v1.2.0"))

	result, _ := formatter.Format(&Summary{GeneratedAt: time.Now()})

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
