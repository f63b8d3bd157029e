package polylog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

func TestCtx_WithoutDefaultLogger(t *testing.T) {
	defaultLogger := polylog.DefaultContextLogger
	polylog.DefaultContextLogger = nil
	t.Cleanup(func() { polylog.DefaultContextLogger = defaultLogger })

	logger := polylog.Ctx(context.Background())
	require.NotNil(t, logger)

	// None of these may panic.
	event := logger.With("key", "value").Info().
		Str("str", "value").
		Uint64("uint64", 1).
		Err(context.Canceled)
	require.False(t, event.Enabled())
	event.Msg("discarded")
	logger.Debug().Msgf("discarded %d", 1)

	n, err := logger.Write([]byte("discarded"))
	require.NoError(t, err)
	require.Equal(t, len("discarded"), n)

	ctx := logger.WithContext(context.Background())
	require.Equal(t, logger, polylog.Ctx(ctx))
}
