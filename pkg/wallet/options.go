package wallet

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// AccountOption configures NewAccountFromMnemonic.
type AccountOption func(*accountConfig)

type accountConfig struct {
	hdPath          string
	bip39Passphrase string
	keyName         string
	addressPrefix   string
	cdc             codec.Codec
}

// WithHDPath sets the BIP-44 derivation path (default: m/44'/118'/0'/0/0).
func WithHDPath(hdPath string) AccountOption {
	return func(cfg *accountConfig) {
		cfg.hdPath = hdPath
	}
}

// WithBIP39Passphrase sets the optional BIP-39 passphrase ("25th word").
func WithBIP39Passphrase(passphrase string) AccountOption {
	return func(cfg *accountConfig) {
		cfg.bip39Passphrase = passphrase
	}
}

// WithKeyName sets the name of the key in the in-memory keyring (default: sender).
func WithKeyName(keyName string) AccountOption {
	return func(cfg *accountConfig) {
		cfg.keyName = keyName
	}
}

// WithAddressPrefix sets the bech32 prefix used by Account.String.
func WithAddressPrefix(prefix string) AccountOption {
	return func(cfg *accountConfig) {
		cfg.addressPrefix = prefix
	}
}

// WithCodec sets the codec backing the in-memory keyring.
func WithCodec(cdc codec.Codec) AccountOption {
	return func(cfg *accountConfig) {
		cfg.cdc = cdc
	}
}
