package polyzero

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

const (
	DebugLevel = Level(zerolog.DebugLevel)
	InfoLevel  = Level(zerolog.InfoLevel)
	WarnLevel  = Level(zerolog.WarnLevel)
	ErrorLevel = Level(zerolog.ErrorLevel)
)

var _ polylog.Level = Level(0)

// Level implements polylog.Level for zerolog levels.
type Level zerolog.Level

// Levels returns all supported levels, from most to least verbose.
func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// ParseLevel converts a level name (debug|info|warn|error) into a Level.
func ParseLevel(levelStr string) (Level, error) {
	for _, level := range Levels() {
		if level.String() == levelStr {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unsupported zerolog level %q", levelStr)
}

func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

func (lvl Level) Int() int {
	return int(lvl)
}
