package retry

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	codespace = "retry"
	// ErrNonRetryable allows the work function to stop retrying early.
	ErrNonRetryable = sdkerrors.Register(codespace, 1100, "non-retryable error")
)
