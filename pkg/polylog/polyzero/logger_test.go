package polyzero_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/polylog/polyzero"
)

func TestZerologLogger_EventMethods(t *testing.T) {
	tests := []struct {
		desc                   string
		logFn                  func(polylog.Event)
		expectedOutputContains string
	}{
		{
			desc:                   "Msg",
			logFn:                  func(e polylog.Event) { e.Msg("Msg") },
			expectedOutputContains: `"message":"Msg"`,
		},
		{
			desc:                   "Msgf",
			logFn:                  func(e polylog.Event) { e.Msgf("%s", "Msgf") },
			expectedOutputContains: `"message":"Msgf"`,
		},
		{
			desc:                   "Str",
			logFn:                  func(e polylog.Event) { e.Str("Str", "str_value").Send() },
			expectedOutputContains: `"Str":"str_value"`,
		},
		{
			desc:                   "Strs",
			logFn:                  func(e polylog.Event) { e.Strs("Strs", []string{"a", "b"}).Send() },
			expectedOutputContains: `"Strs":["a","b"]`,
		},
		{
			desc:                   "Bool",
			logFn:                  func(e polylog.Event) { e.Bool("Bool", true).Send() },
			expectedOutputContains: `"Bool":true`,
		},
		{
			desc:                   "Int",
			logFn:                  func(e polylog.Event) { e.Int("Int", 42).Send() },
			expectedOutputContains: `"Int":42`,
		},
		{
			desc:                   "Int64",
			logFn:                  func(e polylog.Event) { e.Int64("Int64", 42).Send() },
			expectedOutputContains: `"Int64":42`,
		},
		{
			desc:                   "Uint64",
			logFn:                  func(e polylog.Event) { e.Uint64("Uint64", 42).Send() },
			expectedOutputContains: `"Uint64":42`,
		},
		{
			desc:                   "Float64",
			logFn:                  func(e polylog.Event) { e.Float64("Float64", 420.69).Send() },
			expectedOutputContains: `"Float64":420.69`,
		},
		{
			desc:                   "Dur",
			logFn:                  func(e polylog.Event) { e.Dur("Dur", 1500*time.Millisecond).Send() },
			expectedOutputContains: `"Dur":1500`,
		},
		{
			desc:                   "Err",
			logFn:                  func(e polylog.Event) { e.Err(errors.New("42")).Send() },
			expectedOutputContains: `"error":"42"`,
		},
		{
			desc: "Fields",
			logFn: func(e polylog.Event) {
				e.Fields(map[string]any{"key1": "value1", "key2": 42}).Send()
			},
			expectedOutputContains: `"key1":"value1","key2":42`,
		},
	}

	for _, level := range polyzero.Levels() {
		for _, test := range tests {
			t.Run(fmt.Sprintf("%s/%s", level.String(), test.desc), func(t *testing.T) {
				var buf bytes.Buffer
				logger := polyzero.NewLogger(polyzero.WithOutput(&buf))

				test.logFn(logger.WithLevel(level))

				output := buf.String()
				require.Contains(t, output, fmt.Sprintf(`"level":"%s"`, level.String()))
				require.Contains(t, output, test.expectedOutputContains)
				require.Contains(t, output, `"time":"`)
			})
		}
	}
}

func TestZerologLogger_Levels_Discard(t *testing.T) {
	// Each logger MUST write events at or above its level and drop the rest.
	for _, loggerLevel := range polyzero.Levels() {
		t.Run(loggerLevel.String()+" level logger", func(t *testing.T) {
			var buf bytes.Buffer
			logger := polyzero.NewLogger(
				polyzero.WithOutput(&buf),
				polyzero.WithLevel(loggerLevel),
			)

			for _, eventLevel := range polyzero.Levels() {
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

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := polyzero.NewLogger(polyzero.WithOutput(&buf)).
		With("component", "transfer", "attempt", 1)

	logger.Info().Msg("with fields")
	require.Contains(t, buf.String(), `"component":"transfer","attempt":1`)
}

func TestZerologLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := polyzero.NewLogger(
		polyzero.WithOutput(&buf),
		polyzero.WithTextFormat(),
	)

	logger.Info().Str("hash", "ABCD").Msg("broadcast")

	output := buf.String()
	require.NotContains(t, output, `"message"`)
	require.Contains(t, output, "broadcast")
	require.Contains(t, output, "hash")
	require.Contains(t, output, "ABCD")
}

func TestZerologLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := polyzero.NewLogger(polyzero.WithOutput(&buf))

	ctx := logger.WithContext(context.Background())
	polylog.Ctx(ctx).Info().Msg("from context")

	require.Contains(t, buf.String(), "from context")
	require.Equal(t, polylog.DefaultContextLogger, polylog.Ctx(context.Background()))
}

func TestParseLevel(t *testing.T) {
	level, err := polyzero.ParseLevel("warn")
	require.NoError(t, err)
	require.Equal(t, polyzero.WarnLevel, level)

	_, err = polyzero.ParseLevel("verbose")
	require.Error(t, err)
}
