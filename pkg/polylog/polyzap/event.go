package polyzap

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

var _ polylog.Event = (*zapEvent)(nil)

// zapEvent accumulates fields until one of Msg, Msgf or Send is called.
type zapEvent struct {
	logger *zap.Logger
	level  zapcore.Level
	fields []zapcore.Field
}

func newEvent(logger *zap.Logger, level zapcore.Level) polylog.Event {
	return &zapEvent{
		logger: logger,
		level:  level,
	}
}

func (zae *zapEvent) Str(key, value string) polylog.Event {
	zae.fields = append(zae.fields, zap.String(key, value))
	return zae
}

func (zae *zapEvent) Strs(key string, values []string) polylog.Event {
	zae.fields = append(zae.fields, zap.Strings(key, values))
	return zae
}

func (zae *zapEvent) Bool(key string, value bool) polylog.Event {
	zae.fields = append(zae.fields, zap.Bool(key, value))
	return zae
}

func (zae *zapEvent) Int(key string, value int) polylog.Event {
	zae.fields = append(zae.fields, zap.Int(key, value))
	return zae
}

func (zae *zapEvent) Int64(key string, value int64) polylog.Event {
	zae.fields = append(zae.fields, zap.Int64(key, value))
	return zae
}

func (zae *zapEvent) Uint64(key string, value uint64) polylog.Event {
	zae.fields = append(zae.fields, zap.Uint64(key, value))
	return zae
}

func (zae *zapEvent) Float64(key string, value float64) polylog.Event {
	zae.fields = append(zae.fields, zap.Float64(key, value))
	return zae
}

func (zae *zapEvent) Dur(key string, value time.Duration) polylog.Event {
	zae.fields = append(zae.fields, zap.Duration(key, value))
	return zae
}

func (zae *zapEvent) Err(err error) polylog.Event {
	zae.fields = append(zae.fields, zap.Error(err))
	return zae
}

func (zae *zapEvent) Fields(fields map[string]any) polylog.Event {
	for key, value := range fields {
		zae.fields = append(zae.fields, zap.Any(key, value))
	}
	return zae
}

func (zae *zapEvent) Enabled() bool {
	return zae.logger.Core().Enabled(zae.level)
}

func (zae *zapEvent) Msg(msg string) {
	if !zae.Enabled() {
		return
	}
	zae.logger.Log(zae.level, msg, zae.fields...)
}

func (zae *zapEvent) Msgf(format string, args ...any) {
	zae.Msg(fmt.Sprintf(format, args...))
}

func (zae *zapEvent) Send() {
	zae.Msg("")
}
