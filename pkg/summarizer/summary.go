// Package summarizer provides summary generation for paint sessions.
package summarizer

import "time"

// Summary contains all data collected during a scripted paint session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time `yaml:"generated_at"`

	// Script replay results
	Session SessionInfo `yaml:"session"`

	// Final surface state
	Canvas CanvasInfo `yaml:"canvas"`

	// Tool state at the end of the session
	Tools ToolInfo `yaml:"tools"`

	// Output file details
	Output OutputInfo `yaml:"output,omitempty"`
}

// SessionInfo contains the replay statistics.
type SessionInfo struct {
	Script     string         `yaml:"script"`
	Steps      int            `yaml:"steps"`
	Failed     int            `yaml:"failed"`
	DurationMs int64          `yaml:"duration_ms"`
	Actions    map[string]int `yaml:"actions,omitempty"`
	Errors     []string       `yaml:"errors,omitempty"`
}

// CanvasInfo describes the surface and its history.
type CanvasInfo struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Revision  string `yaml:"revision"`
	Snapshots int    `yaml:"snapshots"`
	CanUndo   bool   `yaml:"can_undo"`
	CanRedo   bool   `yaml:"can_redo"`
}

// ToolInfo contains the tool configuration.
type ToolInfo struct {
	Tool      string `yaml:"tool"`
	BrushSize int    `yaml:"brush_size"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

// OutputInfo contains information about the saved image.
type OutputInfo struct {
	Path     string `yaml:"path"`
	Format   string `yaml:"format"`
	FileSize int64  `yaml:"file_size"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSession sets the replay statistics.
func (b *Builder) WithSession(session SessionInfo) *Builder {
	b.summary.Session = session
	return b
}

// WithCanvas sets the surface information.
func (b *Builder) WithCanvas(canvas CanvasInfo) *Builder {
	b.summary.Canvas = canvas
	return b
}

// WithTools sets the tool state.
func (b *Builder) WithTools(tools ToolInfo) *Builder {
	b.summary.Tools = tools
	return b
}

// WithOutput sets output file information.
func (b *Builder) WithOutput(path, format string, size int64) *Builder {
	b.summary.Output = OutputInfo{
		Path:     path,
		Format:   format,
		FileSize: size,
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
