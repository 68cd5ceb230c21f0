// Package interfaces holds the small cross-package contracts of the
// intake service. Implementations live elsewhere; packages depend on
// these types so backends can be swapped without import cycles.
package interfaces

// Logger is the structured logging contract shared by every component.
// It stays deliberately small so any backend (stdout JSON lines, a test
// recorder, a no-op) can satisfy it without adapters.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger that attaches the given fields to every
	// subsequent message.
	With(fields ...Field) Logger
}

// Field is one structured key/value pair on a log message.
type Field struct {
	Key   string
	Value any
}
