package polyzap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

var _ polylog.Logger = (*zapLogger)(nil)

type zapLogger struct {
	// NB: Default (0) is Info.
	level       zapcore.Level
	writeSyncer zapcore.WriteSyncer
	text        bool
	logger      *zap.Logger
}

// NewLogger constructs a zap-backed polylog.Logger. By default, it writes
// JSON to os.Stderr at the Info level.
func NewLogger(opts ...polylog.LoggerOption) polylog.Logger {
	za := &zapLogger{}

	for _, opt := range opts {
		opt(za)
	}

	za.buildLoggerAndSetDefaults()

	return za
}

func (za *zapLogger) Debug() polylog.Event {
	return newEvent(za.logger, zapcore.DebugLevel)
}

func (za *zapLogger) Info() polylog.Event {
	return newEvent(za.logger, zapcore.InfoLevel)
}

func (za *zapLogger) Warn() polylog.Event {
	return newEvent(za.logger, zapcore.WarnLevel)
}

func (za *zapLogger) Error() polylog.Event {
	return newEvent(za.logger, zapcore.ErrorLevel)
}

func (za *zapLogger) WithLevel(level polylog.Level) polylog.Event {
	return newEvent(za.logger, zapcore.Level(level.Int()))
}

func (za *zapLogger) With(keyVals ...any) polylog.Logger {
	var (
		fields  []zap.Field
		nextKey any
	)
	for keyValIdx, keyVal := range keyVals {
		if keyValIdx%2 == 0 {
			nextKey = keyVal
			continue
		}
		fields = append(fields, zap.Any(fmt.Sprintf("%s", nextKey), keyVal))
	}

	return &zapLogger{
		level:       za.level,
		writeSyncer: za.writeSyncer,
		text:        za.text,
		logger:      za.logger.With(fields...),
	}
}

func (za *zapLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, polylog.CtxKey, za)
}

// Write logs p as a single message at the logger's level.
func (za *zapLogger) Write(p []byte) (n int, err error) {
	za.logger.Log(za.level, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (za *zapLogger) buildLoggerAndSetDefaults() {
	if za.writeSyncer == nil {
		za.writeSyncer = zapcore.AddSync(os.Stderr)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	var encoder zapcore.Encoder
	if za.text {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, za.writeSyncer, za.level)
	za.logger = zap.New(core)
}
