package tx

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	codespace = "tx_client"

	// ErrEmptySigningKeyName represents an error which indicates that the
	// provided signing key name is empty or unspecified.
	ErrEmptySigningKeyName = errorsmod.Register(codespace, 1100, "empty signing key name")

	// ErrNoSuchSigningKey represents an error signifying that the requested
	// signing key does not exist or could not be located.
	ErrNoSuchSigningKey = errorsmod.Register(codespace, 1101, "signing key not found")

	// ErrSigningKeyAddr is raised when there's a failure in retrieving the
	// associated address for the provided signing key.
	ErrSigningKeyAddr = errorsmod.Register(codespace, 1102, "failed to get address for signing key")

	// ErrInvalidMsg signifies that there was an issue in validating the
	// transaction message. This could be due to format, content, or other
	// constraints imposed on the message.
	ErrInvalidMsg = errorsmod.Register(codespace, 1103, "failed to validate tx message")

	// ErrCheckTx indicates an error occurred during the ABCI check transaction
	// process, which verifies the transaction's integrity before it is added
	// to the mempool.
	ErrCheckTx = errorsmod.Register(codespace, 1104, "error during ABCI check tx")

	// ErrDeliverTx indicates that the transaction was included in a block but
	// its execution failed.
	ErrDeliverTx = errorsmod.Register(codespace, 1105, "error during ABCI deliver tx")

	// ErrTxTimeout is raised when a transaction has taken too long to be
	// committed after being broadcast.
	ErrTxTimeout = errorsmod.Register(codespace, 1106, "tx timed out")

	// ErrInvalidTxHash is returned when the broadcast response carries a hash
	// which cannot be decoded.
	ErrInvalidTxHash = errorsmod.Register(codespace, 1107, "invalid tx hash")

	// ErrInvalidFeeConfig is returned when the gas and fee options are
	// inconsistent (e.g. both a fee amount and gas prices are set).
	ErrInvalidFeeConfig = errorsmod.Register(codespace, 1108, "invalid fee configuration")

	// ErrSimulateTx is returned when gas estimation by simulation fails.
	ErrSimulateTx = errorsmod.Register(codespace, 1109, "failed to simulate tx")

	// ErrSignTx is returned when the tx could not be signed.
	ErrSignTx = errorsmod.Register(codespace, 1110, "failed to sign tx")

	// ErrBroadcastTx is returned when the node could not be reached or
	// rejected the broadcast request itself.
	ErrBroadcastTx = errorsmod.Register(codespace, 1111, "failed to broadcast tx")

	// ErrQueryTx is returned when polling for a broadcast tx fails for any
	// reason other than the tx not being indexed yet.
	ErrQueryTx = errorsmod.Register(codespace, 1112, "failed to query tx")
)
