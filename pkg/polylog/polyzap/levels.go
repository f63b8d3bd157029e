package polyzap

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

const (
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	WarnLevel  = Level(zapcore.WarnLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
)

var _ polylog.Level = Level(0)

type Level zapcore.Level

func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// ParseLevel converts a level name (debug|info|warn|error) into a Level.
func ParseLevel(levelStr string) (Level, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(levelStr)); err != nil {
		return 0, fmt.Errorf("unsupported zap level %q: %w", levelStr, err)
	}

	level := Level(zapLevel)
	if level < DebugLevel || level > ErrorLevel {
		return 0, fmt.Errorf("unsupported zap level %q", levelStr)
	}
	return level, nil
}

func (lvl Level) String() string {
	return zapcore.Level(lvl).String()
}

func (lvl Level) Int() int {
	return int(lvl)
}
