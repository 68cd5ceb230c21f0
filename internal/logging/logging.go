// Package logging provides the JSON-lines logger used by the intake
// service and a no-op logger for the CLI and tests.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/opencnc/intake/internal/interfaces"
)

// Level is a log severity. Messages below a logger's minimum level are
// dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "error"
	}
}

// StdoutLogger implements interfaces.Logger by printing one JSON object
// per line. Persistent fields added via With() are repeated on every line.
type StdoutLogger struct {
	component string
	minLevel  Level
	persist   []interfaces.Field

	mu  *sync.Mutex
	out io.Writer
}

// NewStdoutLogger creates a logger writing to stdout at info level.
// component is optional and is included on every line when set.
func NewStdoutLogger(component string) *StdoutLogger {
	return &StdoutLogger{
		component: component,
		minLevel:  LevelInfo,
		mu:        &sync.Mutex{},
		out:       os.Stdout,
	}
}

// NewWriterLogger creates a logger writing to w at the given minimum
// level. Useful for tests and for redirecting logs to a file.
func NewWriterLogger(w io.Writer, component string, min Level) *StdoutLogger {
	return &StdoutLogger{
		component: component,
		minLevel:  min,
		mu:        &sync.Mutex{},
		out:       w,
	}
}

type logLine struct {
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	Time      string         `json:"time"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func (s *StdoutLogger) log(level Level, msg string, fields ...interfaces.Field) {
	if level < s.minLevel {
		return
	}

	m := make(map[string]any, len(s.persist)+len(fields))
	for _, f := range s.persist {
		m[f.Key] = f.Value
	}
	for _, f := range fields {
		m[f.Key] = f.Value
	}

	line := logLine{
		Level:     level.String(),
		Msg:       msg,
		Component: s.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Fields:    m,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	enc, err := json.Marshal(line)
	if err != nil {
		fmt.Fprintf(s.out, "%s %s %v\n", level, msg, m)
		return
	}
	fmt.Fprintln(s.out, string(enc))
}

func (s *StdoutLogger) Debug(msg string, fields ...interfaces.Field) {
	s.log(LevelDebug, msg, fields...)
}

func (s *StdoutLogger) Info(msg string, fields ...interfaces.Field) {
	s.log(LevelInfo, msg, fields...)
}

func (s *StdoutLogger) Warn(msg string, fields ...interfaces.Field) {
	s.log(LevelWarn, msg, fields...)
}

func (s *StdoutLogger) Error(msg string, fields ...interfaces.Field) {
	s.log(LevelError, msg, fields...)
}

// With returns a child logger that repeats the given fields on every
// line. A "component" field replaces the component name instead.
func (s *StdoutLogger) With(fields ...interfaces.Field) interfaces.Logger {
	child := &StdoutLogger{
		component: s.component,
		minLevel:  s.minLevel,
		persist:   append([]interfaces.Field(nil), s.persist...),
		mu:        s.mu,
		out:       s.out,
	}
	for _, f := range fields {
		if f.Key == "component" {
			if str, ok := f.Value.(string); ok {
				child.component = str
				continue
			}
		}
		child.persist = append(child.persist, f)
	}
	return child
}

// NoopLogger discards everything. The CLI uses it so reports stay clean
// on stdout.
type NoopLogger struct{}

// NewNoopLogger returns a logger that drops all messages.
func NewNoopLogger() *NoopLogger { return &NoopLogger{} }

func (n *NoopLogger) Debug(string, ...interfaces.Field)          {}
func (n *NoopLogger) Info(string, ...interfaces.Field)           {}
func (n *NoopLogger) Warn(string, ...interfaces.Field)           {}
func (n *NoopLogger) Error(string, ...interfaces.Field)          {}
func (n *NoopLogger) With(...interfaces.Field) interfaces.Logger { return n }
