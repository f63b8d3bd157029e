package app_test

import (
	"testing"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/app"
)

// The module address is derived off of its semantic name, so its bech32 form
// only depends on the configured prefix.
func TestInitSDKConfig(t *testing.T) {
	t.Cleanup(func() { app.InitSDKConfig(app.DefaultAccountAddressPrefix) })

	app.InitSDKConfig("pokt")

	config := cosmostypes.GetConfig()
	require.Equal(t, "pokt", config.GetBech32AccountAddrPrefix())
	require.Equal(t, "poktvaloper", config.GetBech32ValidatorAddrPrefix())
	require.Equal(t, "poktvalconspub", config.GetBech32ConsensusPubPrefix())

	govAddr, err := cosmostypes.Bech32ifyAddressBytes(
		config.GetBech32AccountAddrPrefix(),
		authtypes.NewModuleAddress(govtypes.ModuleName),
	)
	require.NoError(t, err)
	require.Equal(t, "pokt10d07y265gmmuvt4z0w9aw880jnsr700j8yv32t", govAddr)
}

func TestMakeEncodingConfig(t *testing.T) {
	encodingConfig := app.MakeEncodingConfig(app.DefaultAccountAddressPrefix)

	for _, typeURL := range []string{
		"/cosmos.bank.v1beta1.MsgSend",
		"/cosmos.auth.v1beta1.BaseAccount",
		"/cosmos.crypto.secp256k1.PubKey",
	} {
		_, err := encodingConfig.InterfaceRegistry.Resolve(typeURL)
		require.NoErrorf(t, err, "resolving %s", typeURL)
	}

	require.NotNil(t, encodingConfig.TxConfig.TxEncoder())
	require.NotNil(t, encodingConfig.TxConfig.TxDecoder())
}
