package polyzap_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/polylog/polyzap"
)

func TestZapLogger_EventMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := polyzap.NewLogger(
		polyzap.WithOutput(&buf),
		polyzap.WithLevel(polyzap.DebugLevel),
	)

	logger.Warn().
		Str("Str", "str_value").
		Strs("Strs", []string{"a", "b"}).
		Bool("Bool", true).
		Int("Int", 42).
		Int64("Int64", 42).
		Uint64("Uint64", 42).
		Float64("Float64", 420.69).
		Dur("Dur", 1500*time.Millisecond).
		Err(errors.New("42")).
		Fields(map[string]any{"key1": "value1"}).
		Msgf("%s", "Msgf")

	output := buf.String()
	for _, expected := range []string{
		`"level":"warn"`,
		`"msg":"Msgf"`,
		`"Str":"str_value"`,
		`"Strs":["a","b"]`,
		`"Bool":true`,
		`"Int":42`,
		`"Int64":42`,
		`"Uint64":42`,
		`"Float64":420.69`,
		`"Dur":1.5`,
		`"error":"42"`,
		`"key1":"value1"`,
	} {
		require.Contains(t, output, expected)
	}
}

func TestZapLogger_Levels_Discard(t *testing.T) {
	for _, loggerLevel := range polyzap.Levels() {
		t.Run(loggerLevel.String()+" level logger", func(t *testing.T) {
			var buf bytes.Buffer
			logger := polyzap.NewLogger(
				polyzap.WithOutput(&buf),
				polyzap.WithLevel(loggerLevel),
			)

			for _, eventLevel := range polyzap.Levels() {
				buf.Reset()
				event := logger.WithLevel(eventLevel)
				event.Msg("discard me?")

				if eventLevel.Int() >= loggerLevel.Int() {
					require.True(t, event.Enabled())
					require.Contains(t, buf.String(), "discard me?")
				} else {
					require.False(t, event.Enabled())
					require.Empty(t, buf.String())
				}
			}
		})
	}
}

func TestZapLogger_WithAndContext(t *testing.T) {
	var buf bytes.Buffer
	logger := polyzap.NewLogger(polyzap.WithOutput(&buf)).
		With("component", "transfer")

	ctx := logger.WithContext(context.Background())
	polylog.Ctx(ctx).Info().Msg("from context")

	require.Contains(t, buf.String(), `"component":"transfer"`)
	require.Contains(t, buf.String(), "from context")
}

func TestZapLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := polyzap.NewLogger(
		polyzap.WithOutput(&buf),
		polyzap.WithTextFormat(),
	)

	logger.Info().Str("hash", "ABCD").Msg("broadcast")

	output := buf.String()
	require.Contains(t, output, "INFO")
	require.Contains(t, output, "broadcast")
	require.Contains(t, output, `{"hash": "ABCD"}`)
}

func TestParseLevel(t *testing.T) {
	level, err := polyzap.ParseLevel("error")
	require.NoError(t, err)
	require.Equal(t, polyzap.ErrorLevel, level)

	_, err = polyzap.ParseLevel("panic")
	require.Error(t, err)

	_, err = polyzap.ParseLevel("loud")
	require.Error(t, err)
}
