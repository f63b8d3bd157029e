package wallet

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "wallet"

	// ErrWalletEmptyMnemonic is returned when no mnemonic was provided.
	ErrWalletEmptyMnemonic = sdkerrors.Register(codespace, 1100, "empty mnemonic")

	// ErrWalletInvalidMnemonic is returned when the mnemonic is not a valid
	// BIP-39 phrase (unknown word, wrong word count or bad checksum).
	ErrWalletInvalidMnemonic = sdkerrors.Register(codespace, 1101, "invalid mnemonic")

	// ErrWalletKeyDerivation is returned when the keyring fails to derive or
	// store the key.
	ErrWalletKeyDerivation = sdkerrors.Register(codespace, 1102, "failed to derive key from mnemonic")
)
