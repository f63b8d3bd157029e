// Package testclient provides the codecs and cosmos-sdk client contexts shared
// by tests which build, sign or decode transactions without a running node.
package testclient

import (
	"testing"

	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostx "github.com/cosmos/cosmos-sdk/client/tx"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/pokt-network/sendtokens/app"
)

const (
	// TestChainID is the chain ID used to sign test transactions.
	TestChainID = "sendtokens-test-1"

	// TestDenom is the denomination of test amounts and fees.
	TestDenom = "token"
)

// EncodingConfig encapsulates encoding configurations for tests.
var EncodingConfig = app.MakeEncodingConfig(app.DefaultAccountAddressPrefix)

func init() {
	app.InitSDKConfig(app.DefaultAccountAddressPrefix)
}

// NewTestClientCtx returns a client context with the test codecs and the
// given keyring. It has no RPC client; callers which need one set it with
// WithClient.
func NewTestClientCtx(t *testing.T, keyring cosmoskeyring.Keyring) cosmosclient.Context {
	t.Helper()

	return cosmosclient.Context{}.
		WithCodec(EncodingConfig.Marshaler).
		WithTxConfig(EncodingConfig.TxConfig).
		WithInterfaceRegistry(EncodingConfig.InterfaceRegistry).
		WithLegacyAmino(EncodingConfig.Amino).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithKeyring(keyring).
		WithChainID(TestChainID)
}

// NewTestTxFactory returns a tx factory which signs with keys from the client
// context's keyring for TestChainID.
func NewTestTxFactory(t *testing.T, clientCtx cosmosclient.Context) cosmostx.Factory {
	t.Helper()

	return cosmostx.Factory{}.
		WithChainID(clientCtx.ChainID).
		WithKeybase(clientCtx.Keyring).
		WithTxConfig(clientCtx.TxConfig).
		WithAccountRetriever(clientCtx.AccountRetriever)
}
