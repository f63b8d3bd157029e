package transfer

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "transfer"

	// ErrTransferMissingMnemonic is returned when no mnemonic is configured.
	ErrTransferMissingMnemonic = sdkerrors.Register(codespace, 1100, "MNEMONIC not found in environment variables")

	// ErrTransferEmptyBalance is returned when the sending account holds no tokens.
	ErrTransferEmptyBalance = sdkerrors.Register(codespace, 1101, "account has no tokens")

	// ErrTransferInvalidRecipient is returned when the recipient is not a valid
	// bech32 account address.
	ErrTransferInvalidRecipient = sdkerrors.Register(codespace, 1102, "invalid address")

	ErrTransferInvalidAmount     = sdkerrors.Register(codespace, 1103, "invalid transfer amount")
	ErrTransferInvalidConfig     = sdkerrors.Register(codespace, 1104, "invalid configuration")
	ErrTransferMissingDependency = sdkerrors.Register(codespace, 1105, "missing sender dependency")
)
