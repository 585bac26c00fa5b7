package summarizer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ForPath for a report extension it cannot render.
var ErrUnknownFormat = errors.New("summarizer: unknown report format")

// Formatter renders a Summary into the bytes of a report file.
type Formatter interface {
	Format(summary *Summary) (string, error)
}

// FormatFunc adapts a plain function to Formatter.
type FormatFunc func(summary *Summary) (string, error)

func (f FormatFunc) Format(summary *Summary) (string, error) {
	return f(summary)
}

// YAMLFormatter renders the summary as a YAML document for tooling that
// post-processes scripted sessions.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(s *Summary) (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("summarizer: marshal yaml: %w", err)
	}
	return string(data), nil
}

// ForPath picks a formatter from the report extension. Markdown options only
// apply to .md and .markdown reports.
func ForPath(path string, opts ...Option) (Formatter, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".md", ".markdown":
		return NewMarkdownFormatter(opts...), nil
	case ".yaml", ".yml":
		return YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
