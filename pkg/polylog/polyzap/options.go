package polyzap

import (
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

// WithOutput sets the writer which log messages are written to (default: os.Stderr).
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zapLogger).writeSyncer = zapcore.AddSync(output)
	}
}

// WithLevel sets the minimum level of messages which are written (default: info).
func WithLevel(level polylog.Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zapLogger).level = zapcore.Level(level.Int())
	}
}

// WithTextFormat uses zap's console encoder instead of the JSON encoder.
func WithTextFormat() polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zapLogger).text = true
	}
}
