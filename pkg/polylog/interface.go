package polylog

import (
	"context"
	"time"
)

// Level is the logging level of a backend; each implementation package
// provides its own concrete type.
type Level interface {
	String() string
	Int() int
}

// LoggerOption configures a logger at construction time. Options are specific
// to the implementation they come from and MUST NOT be mixed across backends.
type LoggerOption func(logger Logger)

// Logger is the interface shared by all polylog backends.
type Logger interface {
	// Debug starts a new message with debug level.
	Debug() Event
	// Info starts a new message with info level.
	Info() Event
	// Warn starts a new message with warn level.
	Warn() Event
	// Error starts a new message with error level.
	Error() Event
	// WithLevel starts a new message with the given level.
	WithLevel(level Level) Event

	// With returns a child logger with the given key/value pairs added to
	// every message it logs. keyVals MUST alternate between string keys and
	// values.
	With(keyVals ...any) Logger

	// WithContext returns a copy of ctx with the receiver attached.
	// Use Ctx to retrieve it.
	WithContext(ctx context.Context) context.Context

	// Write implements io.Writer so that the logger can be used as the output
	// of other writers (e.g. the standard library log package).
	Write(p []byte) (n int, err error)
}

// Event is a single log message under construction. Nothing is written
// until one of Msg, Msgf or Send is called.
type Event interface {
	Str(key, value string) Event
	Strs(key string, values []string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Int64(key string, value int64) Event
	Uint64(key string, value uint64) Event
	Float64(key string, value float64) Event
	Dur(key string, value time.Duration) Event
	Err(err error) Event
	// Fields adds a map[string]any of fields to the event.
	Fields(fields map[string]any) Event

	// Enabled reports whether the event would be written.
	Enabled() bool

	Msg(msg string)
	Msgf(format string, args ...any)
	Send()
}
