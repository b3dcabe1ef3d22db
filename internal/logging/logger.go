// Package logging provides the structured logging surface of the benchmark
// harness. It keeps zerolog behind a small interface so the runner and the
// techniques never depend on a concrete logging backend, and so tests can
// swap in a no-op logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the logging interface consumed across the application.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Error logs an error message with the associated error.
	Error(msg string, err error, fields ...Field)

	// Debug logs a debug message.
	Debug(msg string, fields ...Field)
}

// Field is a key-value pair attached to a structured log event.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an integer field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a duration field, rendered as a string so log consumers see
// "50ms" rather than a bare nanosecond count.
func Dur(key string, value interface{ String() string }) Field {
	return Field{Key: key, Value: value.String()}
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewLogger creates a Logger emitting JSON lines to w, tagged with a
// component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	}
}

// Info logs an informational message.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	attach(z.logger.Info(), fields).Msg(msg)
}

// Error logs an error message.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	attach(z.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs a debug message.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	attach(z.logger.Debug(), fields).Msg(msg)
}

// attach applies fields to the event with their native zerolog types where
// possible, falling back to Interface for anything else.
func attach(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case error:
			event = event.Err(v)
		case bool:
			event = event.Bool(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// NopLogger discards all log output. It is the default for consumers that do
// not provide a logger, and keeps tests quiet.
type NopLogger struct{}

// Info discards the message.
func (NopLogger) Info(string, ...Field) {}

// Error discards the message.
func (NopLogger) Error(string, error, ...Field) {}

// Debug discards the message.
func (NopLogger) Debug(string, ...Field) {}

// compile-time interface checks
var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = NopLogger{}
)
