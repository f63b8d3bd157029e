package polyzero

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

var _ polylog.Logger = (*zerologLogger)(nil)

func init() {
	polylog.DefaultContextLogger = NewLogger(WithLevel(InfoLevel))
}

// zerologLogger wraps a zerolog.Logger to implement polylog.Logger.
type zerologLogger struct {
	// NB: Default (0) is Debug.
	level  Level
	output io.Writer
	text   bool
	zerolog.Logger
}

// NewLogger constructs a zerolog-backed polylog.Logger. By default, it writes
// JSON to os.Stderr at the Debug level.
func NewLogger(opts ...polylog.LoggerOption) polylog.Logger {
	ze := &zerologLogger{
		level:  DebugLevel,
		output: os.Stderr,
	}

	for _, opt := range opts {
		opt(ze)
	}

	output := ze.output
	if ze.text {
		output = zerolog.ConsoleWriter{
			Out:        ze.output,
			TimeFormat: time.RFC3339,
		}
	}

	ze.Logger = zerolog.New(output).
		Level(zerolog.Level(ze.level)).
		With().Timestamp().
		Logger()

	return ze
}

func (ze *zerologLogger) Debug() polylog.Event {
	return newEvent(ze.Logger.Debug())
}

func (ze *zerologLogger) Info() polylog.Event {
	return newEvent(ze.Logger.Info())
}

func (ze *zerologLogger) Warn() polylog.Event {
	return newEvent(ze.Logger.Warn())
}

func (ze *zerologLogger) Error() polylog.Event {
	return newEvent(ze.Logger.Error())
}

func (ze *zerologLogger) WithLevel(level polylog.Level) polylog.Event {
	return newEvent(ze.Logger.WithLevel(zerolog.Level(level.Int())))
}

func (ze *zerologLogger) With(keyVals ...any) polylog.Logger {
	return &zerologLogger{
		level:  ze.level,
		output: ze.output,
		text:   ze.text,
		Logger: ze.Logger.With().Fields(keyVals).Logger(),
	}
}

// WithContext attaches the receiver to ctx under polylog.CtxKey and also
// under zerolog's own context key, so zerolog.Ctx works on the result too.
func (ze *zerologLogger) WithContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, polylog.CtxKey, ze)
	return ze.Logger.WithContext(ctx)
}

func (ze *zerologLogger) Write(p []byte) (n int, err error) {
	return ze.Logger.Write(p)
}
