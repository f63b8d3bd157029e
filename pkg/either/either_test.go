package either_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/pkg/either"
)

func TestAsyncError_Sync(t *testing.T) {
	expectedErr := errors.New("check tx failed")
	asyncErr := either.SyncErr(expectedErr)

	require.True(t, asyncErr.IsSyncError())
	require.False(t, asyncErr.IsAsyncError())

	errCh, err := asyncErr.SyncOrAsyncError()
	require.Nil(t, errCh)
	require.ErrorIs(t, err, expectedErr)
}

func TestAsyncError_Async(t *testing.T) {
	expectedErr := errors.New("deliver tx failed")
	errCh := make(chan error, 1)
	asyncErr := either.AsyncErr(errCh)

	require.False(t, asyncErr.IsSyncError())
	require.True(t, asyncErr.IsAsyncError())

	gotCh, err := asyncErr.SyncOrAsyncError()
	require.NoError(t, err)

	errCh <- expectedErr
	require.ErrorIs(t, <-gotCh, expectedErr)
}

func TestEither_ValueOrError(t *testing.T) {
	value, err := either.Success(42).ValueOrError()
	require.NoError(t, err)
	require.Equal(t, 42, value)

	value, err = either.Error[int](errors.New("boom")).ValueOrError()
	require.Error(t, err)
	require.Zero(t, value)
}
