package polylog

import (
	"context"
	"time"
)

var (
	_ Logger = noopLogger{}
	_ Event  = noopEvent{}
)

// noopLogger discards every message. Ctx returns it when neither the context
// nor DefaultContextLogger provide a logger.
type noopLogger struct{}

func (noopLogger) Debug() Event                { return noopEvent{} }
func (noopLogger) Info() Event                 { return noopEvent{} }
func (noopLogger) Warn() Event                 { return noopEvent{} }
func (noopLogger) Error() Event                { return noopEvent{} }
func (noopLogger) WithLevel(Level) Event       { return noopEvent{} }
func (l noopLogger) With(...any) Logger        { return l }
func (noopLogger) Write(p []byte) (int, error) { return len(p), nil }

func (l noopLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, CtxKey, Logger(l))
}

type noopEvent struct{}

func (e noopEvent) Str(string, string) Event        { return e }
func (e noopEvent) Strs(string, []string) Event     { return e }
func (e noopEvent) Bool(string, bool) Event         { return e }
func (e noopEvent) Int(string, int) Event           { return e }
func (e noopEvent) Int64(string, int64) Event       { return e }
func (e noopEvent) Uint64(string, uint64) Event     { return e }
func (e noopEvent) Float64(string, float64) Event   { return e }
func (e noopEvent) Dur(string, time.Duration) Event { return e }
func (e noopEvent) Err(error) Event                 { return e }
func (e noopEvent) Fields(map[string]any) Event     { return e }
func (noopEvent) Enabled() bool                     { return false }
func (noopEvent) Msg(string)                        {}
func (noopEvent) Msgf(string, ...any)               {}
func (noopEvent) Send()                             {}
