package wallet

import (
	"strings"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/tyler-smith/go-bip39"

	"github.com/pokt-network/sendtokens/app"
)

const (
	// DefaultHDPath is the Cosmos Hub derivation path (coin type 118).
	DefaultHDPath = "m/44'/118'/0'/0/0"

	// DefaultKeyName is the name under which the derived key is stored.
	DefaultKeyName = "sender"
)

// Account is the signing identity of a transfer.
type Account struct {
	KeyName string
	Address cosmostypes.AccAddress
	PubKey  cryptotypes.PubKey
	// Keyring holds the private key under KeyName.
	Keyring cosmoskeyring.Keyring

	addressPrefix string
}

// String returns the bech32 address of the account.
func (acc *Account) String() string {
	addr, err := cosmostypes.Bech32ifyAddressBytes(acc.addressPrefix, acc.Address)
	if err != nil {
		return acc.Address.String()
	}
	return addr
}

// NewAccountFromMnemonic derives a secp256k1 key from mnemonic and stores it in
// a fresh in-memory keyring.
//
// The mnemonic is normalized (lower case, single spaces) before validation.
// The same mnemonic, passphrase and HD path always derive the same address.
func NewAccountFromMnemonic(mnemonic string, opts ...AccountOption) (*Account, error) {
	cfg := &accountConfig{
		hdPath:        DefaultHDPath,
		keyName:       DefaultKeyName,
		addressPrefix: app.DefaultAccountAddressPrefix,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cdc == nil {
		cfg.cdc = app.MakeEncodingConfig(cfg.addressPrefix).Marshaler
	}

	mnemonic = NormalizeMnemonic(mnemonic)
	if mnemonic == "" {
		return nil, ErrWalletEmptyMnemonic
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		// NB: the mnemonic is a secret and MUST NOT be part of the error.
		return nil, ErrWalletInvalidMnemonic.Wrapf(
			"%d words, expected a valid BIP-39 phrase of 12, 15, 18, 21 or 24 words",
			len(strings.Fields(mnemonic)),
		)
	}

	kr := cosmoskeyring.NewInMemory(cfg.cdc)
	record, err := kr.NewAccount(
		cfg.keyName,
		mnemonic,
		cfg.bip39Passphrase,
		cfg.hdPath,
		hd.Secp256k1,
	)
	if err != nil {
		return nil, ErrWalletKeyDerivation.Wrapf("hd path %q: %s", cfg.hdPath, err)
	}

	address, err := record.GetAddress()
	if err != nil {
		return nil, ErrWalletKeyDerivation.Wrapf("%s", err)
	}

	pubKey, err := record.GetPubKey()
	if err != nil {
		return nil, ErrWalletKeyDerivation.Wrapf("%s", err)
	}

	return &Account{
		KeyName:       cfg.keyName,
		Address:       address,
		PubKey:        pubKey,
		Keyring:       kr,
		addressPrefix: cfg.addressPrefix,
	}, nil
}

// NormalizeMnemonic lower-cases mnemonic and collapses all whitespace into
// single spaces.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}
