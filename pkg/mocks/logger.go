package mocks

import (
	"fmt"
	"sync"

	"github.com/user/rasterpaint/pkg/ports"
)

// Logger is a mock implementation of ports.Logger that keeps every message.
type Logger struct {
	mu       sync.Mutex
	Messages []LogEntry
	prefix   string
	root     *Logger
}

// LogEntry is one recorded log call with its arguments already formatted.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.add(ports.LevelDebug, msg, args) }
func (m *Logger) Info(msg string, args ...interface{})  { m.add(ports.LevelInfo, msg, args) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.add(ports.LevelWarn, msg, args) }
func (m *Logger) Error(msg string, args ...interface{}) { m.add(ports.LevelError, msg, args) }

func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{prefix: component, root: m.base()}
}

// Count returns how many messages were logged at level.
func (m *Logger) Count(level ports.LogLevel) int {
	r := m.base()
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.Messages {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (m *Logger) base() *Logger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *Logger) add(level ports.LogLevel, msg string, args []interface{}) {
	r := m.base()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, LogEntry{
		Level:     level,
		Component: m.prefix,
		Message:   fmt.Sprintf(msg, args...),
	})
}

var _ ports.Logger = (*Logger)(nil)
