package either

// SyncErr returns an AsyncError holding an error which occurred before any
// asynchronous work was started.
func SyncErr(err error) AsyncError {
	return AsyncError(Error[chan error](err))
}

// AsyncErr returns an AsyncError holding a channel on which the outcome of the
// asynchronous work is reported.
func AsyncErr(errCh chan error) AsyncError {
	return AsyncError(Success[chan error](errCh))
}

// SyncOrAsyncError returns the error channel or the synchronous error; the
// channel is nil whenever the error is not.
func (soaErr AsyncError) SyncOrAsyncError() (chan error, error) {
	return Either[chan error](soaErr).ValueOrError()
}

func (soaErr AsyncError) IsSyncError() bool {
	return Either[chan error](soaErr).IsError()
}

func (soaErr AsyncError) IsAsyncError() bool {
	return Either[chan error](soaErr).IsSuccess()
}
