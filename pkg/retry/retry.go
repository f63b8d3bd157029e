package retry

import (
	"context"
	"errors"
	"time"
)

// RetryStrategyFunc is called after each failed attempt with the zero-based
// retry count. It blocks for the desired delay and returns false to stop.
type RetryStrategyFunc func(retryCount int) bool

// Call executes work repeatedly until it succeeds, returns an error wrapping
// ErrNonRetryable, or the retry strategy indicates that no more retries should
// be attempted. The last error returned by work is returned.
func Call[T any](
	work func() (T, error),
	retryStrategy RetryStrategyFunc,
) (T, error) {
	for retryCount := 0; ; retryCount++ {
		result, err := work()
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrNonRetryable) {
			return result, err
		}
		if !retryStrategy(retryCount) {
			return result, err
		}
	}
}

// WithFixedDelayFn creates a retry strategy which waits delay between attempts
// and gives up as soon as ctx is done. Callers bound the total wait time with
// a context deadline.
func WithFixedDelayFn(ctx context.Context, delay time.Duration) RetryStrategyFunc {
	return func(int) bool {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			return ctx.Err() == nil
		}
	}
}
