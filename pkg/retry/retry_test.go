package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/pkg/retry"
)

var errNotYet = errors.New("not yet")

func TestCall_SucceedsAfterRetries(t *testing.T) {
	var attempts int
	result, err := retry.Call(
		func() (string, error) {
			attempts++
			if attempts < 3 {
				return "", errNotYet
			}
			return "included", nil
		},
		retry.WithFixedDelayFn(context.Background(), time.Millisecond),
	)

	require.NoError(t, err)
	require.Equal(t, "included", result)
	require.Equal(t, 3, attempts)
}

func TestCall_NonRetryable(t *testing.T) {
	var attempts int
	_, err := retry.Call(
		func() (int, error) {
			attempts++
			return 0, retry.ErrNonRetryable.Wrap("rpc unreachable")
		},
		retry.WithFixedDelayFn(context.Background(), time.Millisecond),
	)

	require.ErrorIs(t, err, retry.ErrNonRetryable)
	require.Equal(t, 1, attempts)
}

func TestCall_ContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := retry.Call(
		func() (int, error) { return 0, errNotYet },
		retry.WithFixedDelayFn(ctx, 5*time.Millisecond),
	)

	require.ErrorIs(t, err, errNotYet)
	require.Less(t, time.Since(start), time.Second)
}

func TestWithFixedDelayFn_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var attempts int
	_, err := retry.Call(
		func() (int, error) {
			attempts++
			return 0, errNotYet
		},
		retry.WithFixedDelayFn(ctx, time.Hour),
	)

	require.ErrorIs(t, err, errNotYet)
	require.Equal(t, 1, attempts)
}
