package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/rasterpaint/pkg/ports"
)

func newTestLogger(level ports.LogLevel) (*ConsoleLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewConsole(level, WithWriters(&out, &errOut)), &out, &errOut
}

func TestConsoleLogger_LevelFilter(t *testing.T) {
	log, out, _ := newTestLogger(ports.LevelInfo)

	log.Debug("hidden %d", 1)
	log.Info("Saved %s (%s, %d bytes)", "a.png", "png", 10)

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message must be filtered at info level")
	}
	if !strings.Contains(out.String(), "a.png") || !strings.Contains(out.String(), "10 bytes") {
		t.Errorf("expected formatted info message, got %q", out.String())
	}
}

func TestConsoleLogger_WarningsGoToErrorStream(t *testing.T) {
	log, out, errOut := newTestLogger(ports.LevelDebug)

	log.Warn("Failed to write summary: %s", "disk full")
	log.Error("boom")

	if out.Len() != 0 {
		t.Errorf("warnings must not reach stdout, got %q", out.String())
	}
	want := "warn: Failed to write summary: disk full\nerror: boom\n"
	if errOut.String() != want {
		t.Errorf("got %q, want %q", errOut.String(), want)
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	log, out, _ := newTestLogger(ports.LevelDebug)

	log.WithComponent("canvas").Debug("Resized to %dx%d", 10, 20)
	log.WithComponent("canvas").WithComponent("history").Info("x")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if lines[0] != "[canvas] Resized to 10x20" {
		t.Errorf("unexpected line %q", lines[0])
	}
	if lines[1] != "[canvas/history] x" {
		t.Errorf("unexpected nested component line %q", lines[1])
	}
}

func TestConsoleLogger_ChildKeepsLevel(t *testing.T) {
	log, out, _ := newTestLogger(ports.LevelWarn)
	log.WithComponent("script").Info("hidden")
	if out.Len() != 0 {
		t.Errorf("child logger must keep the parent level, got %q", out.String())
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	log, out, errOut := newTestLogger(ports.LevelQuiet)
	log.Error("boom")
	log.WithComponent("x").Warn("still nothing")
	if out.Len()+errOut.Len() != 0 {
		t.Errorf("quiet logger must not write, got %q %q", out.String(), errOut.String())
	}
}
