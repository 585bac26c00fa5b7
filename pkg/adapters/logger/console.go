// Package logger provides the console logger used by the paint CLI.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/user/rasterpaint/pkg/ports"
)

const (
	ansiReset  = "\033[0m"
	ansiGray   = "\033[90m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiCyan   = "\033[36m"
)

// stream is one output destination with its own color decision, so piping
// stdout to a file keeps stderr colored on a terminal.
type stream struct {
	w     io.Writer
	color bool
}

func newStream(w io.Writer) stream {
	s := stream{w: w}
	if f, ok := w.(*os.File); ok {
		s.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return s
}

// ConsoleLogger writes translated messages: debug and info to the output
// stream, warn and error to the error stream. Message strings are go-l10n
// keys as well as format strings.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	out       stream
	errOut    stream
}

// Option configures a ConsoleLogger.
type Option func(*ConsoleLogger)

// WithWriters replaces stdout and stderr. Color is enabled only for
// writers that are terminals.
func WithWriters(out, errOut io.Writer) Option {
	return func(l *ConsoleLogger) {
		l.out = newStream(out)
		l.errOut = newStream(errOut)
	}
}

// NewConsole creates a logger at level. LevelQuiet drops everything.
func NewConsole(level ports.LogLevel, opts ...Option) *ConsoleLogger {
	l := &ConsoleLogger{
		level:  level,
		out:    newStream(os.Stdout),
		errOut: newStream(os.Stderr),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log(ports.LevelDebug, msg, args) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.log(ports.LevelInfo, msg, args) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.log(ports.LevelWarn, msg, args) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log(ports.LevelError, msg, args) }

// WithComponent returns a logger tagged with component. Nested components
// are joined with a slash, e.g. "canvas/history".
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	child := *l
	if l.component != "" && component != "" {
		child.component = l.component + "/" + component
	} else if component != "" {
		child.component = component
	}
	return &child
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args []interface{}) {
	if level < l.level {
		return
	}
	s := l.out
	if level >= ports.LevelWarn {
		s = l.errOut
	}

	text := l10n.F(msg, args...)
	if s.color {
		if l.component != "" {
			text = ansiCyan + "[" + l.component + "]" + ansiReset + " " + text
		}
		switch level {
		case ports.LevelDebug:
			text = ansiGray + text + ansiReset
		case ports.LevelWarn:
			text = ansiYellow + text + ansiReset
		case ports.LevelError:
			text = ansiRed + text + ansiReset
		}
	} else {
		if l.component != "" {
			text = "[" + l.component + "] " + text
		}
		// Without color the severity would be lost in redirected logs.
		if level >= ports.LevelWarn {
			text = level.String() + ": " + text
		}
	}
	fmt.Fprintln(s.w, text)
}
