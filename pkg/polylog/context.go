package polylog

import "context"

type ctxKey struct{}

// CtxKey is the context key under which WithContext stores the logger. It is
// independent from any key the underlying logging library may use itself.
var CtxKey = ctxKey{}

// DefaultContextLogger is returned by Ctx when no logger is attached to the
// context. It is assigned by the polyzero package's init function to avoid an
// import cycle, so it is nil unless polyzero is linked.
var DefaultContextLogger Logger

// Ctx returns the Logger attached to ctx, falling back to DefaultContextLogger
// and then to a logger which discards everything. It never returns nil.
func Ctx(ctx context.Context) Logger {
	if logger, ok := ctx.Value(CtxKey).(Logger); ok && logger != nil {
		return logger
	}
	if DefaultContextLogger != nil {
		return DefaultContextLogger
	}
	return noopLogger{}
}
