package testkeyring

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/testutil/testclient"
)

// NewTestKeyringWithKey creates a new in-memory keyring with a freshly
// generated key named keyName.
func NewTestKeyringWithKey(t *testing.T, keyName string) (keyring.Keyring, *keyring.Record) {
	t.Helper()

	kr := keyring.NewInMemory(testclient.EncodingConfig.Marshaler)
	record, _, err := kr.NewMnemonic(
		keyName,
		keyring.English,
		cosmostypes.FullFundraiserPath,
		keyring.DefaultBIP39Passphrase,
		hd.Secp256k1,
	)
	require.NoError(t, err)

	return kr, record
}

// KeyAddress returns the address of the given keyring record.
func KeyAddress(t *testing.T, record *keyring.Record) cosmostypes.AccAddress {
	t.Helper()

	addr, err := record.GetAddress()
	require.NoError(t, err)
	return addr
}
