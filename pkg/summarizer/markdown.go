package summarizer

import (
	"fmt"
	"sort"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// Option configures a MarkdownFormatter.
type Option func(*MarkdownFormatter)

// WithTranslator translates headings and labels.
func WithTranslator(t func(string) string) Option {
	return func(f *MarkdownFormatter) { f.translate = t }
}

// WithVersion adds the program version to the footer.
func WithVersion(v string) Option {
	return func(f *MarkdownFormatter) { f.version = v }
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	f := &MarkdownFormatter{translate: func(s string) string { return s }}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) (string, error) {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Paint Session Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&b, "## %s\n\n", t("Session"))
	row := func(label, value string) { fmt.Fprintf(&b, "| %s | %s |\n", t(label), value) }
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row("Script", orDash(s.Session.Script))
	row("Steps", fmt.Sprintf("%d", s.Session.Steps))
	row("Failed Steps", fmt.Sprintf("%d", s.Session.Failed))
	row("Duration", fmt.Sprintf("%d ms", s.Session.DurationMs))
	b.WriteString("\n")

	if len(s.Session.Actions) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Actions"))
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Action"), t("Count"))
		names := make([]string, 0, len(s.Session.Actions))
		for name := range s.Session.Actions {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "| %s | %d |\n", name, s.Session.Actions[name])
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Canvas"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row("Size", fmt.Sprintf("%dx%d", s.Canvas.Width, s.Canvas.Height))
	row("Revision", orDash(s.Canvas.Revision))
	row("Snapshots", fmt.Sprintf("%d", s.Canvas.Snapshots))
	row("Undo Available", f.yesNo(s.Canvas.CanUndo))
	row("Redo Available", f.yesNo(s.Canvas.CanRedo))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Tools"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row("Tool", orDash(s.Tools.Tool))
	row("Brush Size", fmt.Sprintf("%d", s.Tools.BrushSize))
	row("Primary Color", orDash(s.Tools.Primary))
	row("Secondary Color", orDash(s.Tools.Secondary))
	b.WriteString("\n")

	if s.Output.Path != "" {
		fmt.Fprintf(&b, "## %s\n\n", t("Output"))
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
		row("File", s.Output.Path)
		row("Format", orDash(s.Output.Format))
		row("File Size", formatBytes(s.Output.FileSize))
		b.WriteString("\n")
	}

	if len(s.Session.Errors) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Errors"))
		for _, e := range s.Session.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		b.WriteString("\n")
	}

	if f.version != "" {
		fmt.Fprintf(&b, "---\n%s %s\n", t("Generated by rasterpaint"), f.version)
	}
	return b.String(), nil
}

func (f *MarkdownFormatter) yesNo(v bool) string {
	if v {
		return f.translate("Yes")
	}
	return f.translate("No")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatBytes renders a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
