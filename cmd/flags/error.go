package flags

import cosmoserrors "cosmossdk.io/errors"

var (
	codespace = "flags"

	// ErrFlagNotRegistered is returned when a config key is bound to a flag
	// which was never added to the flag set.
	ErrFlagNotRegistered = cosmoserrors.Register(codespace, 1200, "flag not registered")
	ErrFlagInvalidValue  = cosmoserrors.Register(codespace, 1201, "invalid flag value")
)
