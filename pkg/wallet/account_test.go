package wallet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/pkg/wallet"
)

// testMnemonic is the well known BIP-39 test vector; never fund it.
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestNewAccountFromMnemonic_Deterministic(t *testing.T) {
	acc1, err := wallet.NewAccountFromMnemonic(testMnemonic)
	require.NoError(t, err)

	acc2, err := wallet.NewAccountFromMnemonic("  ABANDON abandon abandon abandon abandon abandon\nabandon abandon abandon abandon abandon about ")
	require.NoError(t, err)

	require.Equal(t, acc1.Address, acc2.Address)
	require.Equal(t, acc1.PubKey, acc2.PubKey)
	require.True(t, strings.HasPrefix(acc1.String(), "cosmos1"))
	require.Equal(t, wallet.DefaultKeyName, acc1.KeyName)

	record, err := acc1.Keyring.Key(acc1.KeyName)
	require.NoError(t, err)
	recordAddr, err := record.GetAddress()
	require.NoError(t, err)
	require.Equal(t, acc1.Address, recordAddr)
}

func TestNewAccountFromMnemonic_Options(t *testing.T) {
	defaultAcc, err := wallet.NewAccountFromMnemonic(testMnemonic)
	require.NoError(t, err)

	otherPathAcc, err := wallet.NewAccountFromMnemonic(testMnemonic, wallet.WithHDPath("m/44'/118'/0'/0/1"))
	require.NoError(t, err)
	require.NotEqual(t, defaultAcc.Address, otherPathAcc.Address)

	passphraseAcc, err := wallet.NewAccountFromMnemonic(testMnemonic, wallet.WithBIP39Passphrase("secret"))
	require.NoError(t, err)
	require.NotEqual(t, defaultAcc.Address, passphraseAcc.Address)

	prefixedAcc, err := wallet.NewAccountFromMnemonic(
		testMnemonic,
		wallet.WithAddressPrefix("osmo"),
		wallet.WithKeyName("alice"),
	)
	require.NoError(t, err)
	require.Equal(t, defaultAcc.Address, prefixedAcc.Address)
	require.True(t, strings.HasPrefix(prefixedAcc.String(), "osmo1"))
	require.Equal(t, "alice", prefixedAcc.KeyName)
}

func TestNewAccountFromMnemonic_Errors(t *testing.T) {
	tests := []struct {
		desc        string
		mnemonic    string
		expectedErr error
	}{
		{
			desc:        "empty",
			mnemonic:    "",
			expectedErr: wallet.ErrWalletEmptyMnemonic,
		},
		{
			desc:        "whitespace only",
			mnemonic:    " \n\t ",
			expectedErr: wallet.ErrWalletEmptyMnemonic,
		},
		{
			desc:        "bad checksum",
			mnemonic:    strings.Repeat("abandon ", 12),
			expectedErr: wallet.ErrWalletInvalidMnemonic,
		},
		{
			desc:        "unknown word",
			mnemonic:    strings.Replace(testMnemonic, "about", "aboot", 1),
			expectedErr: wallet.ErrWalletInvalidMnemonic,
		},
		{
			desc:        "wrong word count",
			mnemonic:    "abandon abandon about",
			expectedErr: wallet.ErrWalletInvalidMnemonic,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			acc, err := wallet.NewAccountFromMnemonic(test.mnemonic)
			require.ErrorIs(t, err, test.expectedErr)
			require.Nil(t, acc)
			if trimmed := strings.TrimSpace(test.mnemonic); trimmed != "" {
				require.NotContains(t, err.Error(), trimmed)
			}
		})
	}
}
