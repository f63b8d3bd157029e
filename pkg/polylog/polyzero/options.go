package polyzero

import (
	"io"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

// WithOutput sets the writer which log messages are written to (default: os.Stderr).
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).output = output
	}
}

// WithLevel sets the minimum level of messages which are written (default: debug).
func WithLevel(level polylog.Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).level = Level(level.Int())
	}
}

// WithTextFormat writes human-readable lines instead of JSON objects.
func WithTextFormat() polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).text = true
	}
}
