package testtx

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/depinject"
	abci "github.com/cometbft/cometbft/abci/types"
	cometbytes "github.com/cometbft/cometbft/libs/bytes"
	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
	comettypes "github.com/cometbft/cometbft/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokt-network/sendtokens/internal/mocks/mockclient"
	"github.com/pokt-network/sendtokens/pkg/client"
	"github.com/pokt-network/sendtokens/pkg/client/tx"
	txtypes "github.com/pokt-network/sendtokens/pkg/client/tx/types"
	"github.com/pokt-network/sendtokens/testutil/testclient"
)

const (
	// TestAccountNumber and TestAccountSequence are returned by the mock
	// account retriever of every context built here.
	TestAccountNumber   = uint64(1)
	TestAccountSequence = uint64(1)

	// TestHeight is the height at which mocked txs are included.
	TestHeight = int64(42)
	// TestGasUsed is the gas reported for mocked included txs.
	TestGasUsed = int64(61_234)
)

// NewOneTimeTxTxContext creates a mock transaction context which signs and
// encodes txs for real, then reports the broadcast tx as included at
// TestHeight on the first inclusion query.
func NewOneTimeTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	expectedTx *cometbytes.HexBytes,
) *mockclient.MockTxContext {
	t.Helper()

	txCtxMock := NewBaseTxContext(t, signingKeyName, keyring, expectedTx)
	expectSuccessfulBroadcast(txCtxMock)

	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.AssignableToTypeOf(false),
	).DoAndReturn(
		func(_ context.Context, txHash []byte, _ bool) (*cometrpctypes.ResultTx, error) {
			return &cometrpctypes.ResultTx{
				Hash:   txHash,
				Height: TestHeight,
				TxResult: abci.ExecTxResult{
					Code:      0,
					GasUsed:   TestGasUsed,
					GasWanted: int64(tx.DefaultGasLimit),
				},
				Tx: expectedTx.Bytes(),
			}, nil
		},
	).Times(1)

	return txCtxMock
}

// NewOneTimeErrTxTimeoutTxContext creates a mock transaction context whose
// broadcast succeeds but whose inclusion queries never find the tx.
// expectedErrMsg is populated with the error returned by every QueryTx call.
func NewOneTimeErrTxTimeoutTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	expectedErrMsg *string,
) *mockclient.MockTxContext {
	t.Helper()

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewBaseTxContext(t, signingKeyName, keyring, &expectedTx)
	expectSuccessfulBroadcast(txCtxMock)

	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.AssignableToTypeOf(false),
	).DoAndReturn(
		func(_ context.Context, txHash []byte, _ bool) (*cometrpctypes.ResultTx, error) {
			*expectedErrMsg = fmt.Sprintf("tx (%X) not found", txHash)
			return nil, fmt.Errorf("%s", *expectedErrMsg)
		},
	).MinTimes(1)

	return txCtxMock
}

// NewOneTimeErrQueryTxTxContext creates a mock transaction context whose
// broadcast succeeds but whose first inclusion query fails with queryErr.
func NewOneTimeErrQueryTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	queryErr error,
) *mockclient.MockTxContext {
	t.Helper()

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewBaseTxContext(t, signingKeyName, keyring, &expectedTx)
	expectSuccessfulBroadcast(txCtxMock)

	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.AssignableToTypeOf(false),
	).Return(nil, queryErr).Times(1)

	return txCtxMock
}

// NewOneTimeErrCheckTxTxContext creates a mock transaction context whose
// broadcast is rejected by CheckTx with a non-zero code.
// expectedErrMsg is populated with the raw log of the broadcast response.
func NewOneTimeErrCheckTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	expectedErrMsg *string,
) *mockclient.MockTxContext {
	t.Helper()

	signerAddr := signerAddress(t, keyring, signingKeyName)
	*expectedErrMsg = fmt.Sprintf(
		"spendable balance 0token is smaller than 1000token: insufficient funds: sender %s",
		signerAddr,
	)

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewBaseTxContext(t, signingKeyName, keyring, &expectedTx)

	// intercept #BroadcastTx() call to mock response and prevent actual broadcast
	txCtxMock.EXPECT().BroadcastTx(gomock.Any()).
		DoAndReturn(func(txBytes []byte) (*cosmostypes.TxResponse, error) {
			var expectedTxHash cometbytes.HexBytes = comettypes.Tx(txBytes).Hash()
			return &cosmostypes.TxResponse{
				TxHash:    expectedTxHash.String(),
				Code:      5,
				Codespace: "sdk",
				RawLog:    *expectedErrMsg,
			}, nil
		}).Times(1)

	return txCtxMock
}

// NewOneTimeErrDeliverTxTxContext creates a mock transaction context whose
// broadcast succeeds but whose tx fails execution once included.
// expectedErrMsg is populated with the log of the included tx result.
func NewOneTimeErrDeliverTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
	signingKeyName string,
	expectedErrMsg *string,
) *mockclient.MockTxContext {
	t.Helper()

	*expectedErrMsg = "out of gas in location: WriteFlat; gasWanted: 200000, gasUsed: 200431: out of gas"

	var expectedTx cometbytes.HexBytes
	txCtxMock := NewBaseTxContext(t, signingKeyName, keyring, &expectedTx)
	expectSuccessfulBroadcast(txCtxMock)

	txCtxMock.EXPECT().QueryTx(
		gomock.Any(),
		gomock.AssignableToTypeOf([]byte{}),
		gomock.AssignableToTypeOf(false),
	).DoAndReturn(
		func(_ context.Context, txHash []byte, _ bool) (*cometrpctypes.ResultTx, error) {
			return &cometrpctypes.ResultTx{
				Hash:   txHash,
				Height: TestHeight,
				TxResult: abci.ExecTxResult{
					Code:      11,
					Log:       *expectedErrMsg,
					Codespace: "sdk",
				},
				Tx: expectedTx.Bytes(),
			}, nil
		},
	).Times(1)

	return txCtxMock
}

// NewBaseTxContext creates a mock transaction context which proxies keyring
// access, tx building, signing and encoding to a real transaction context.
// The bytes of the last encoded tx are stored in expectedTx.
func NewBaseTxContext(
	t *testing.T,
	signingKeyName string,
	keyring cosmoskeyring.Keyring,
	expectedTx *cometbytes.HexBytes,
) *mockclient.MockTxContext {
	t.Helper()

	txCtxMock, txCtx := NewAnyTimesTxTxContext(t, keyring)
	txCtxMock.EXPECT().NewTxBuilder().
		DoAndReturn(txCtx.NewTxBuilder).
		AnyTimes()
	txCtxMock.EXPECT().SignTx(
		gomock.Any(),
		gomock.Eq(signingKeyName),
		gomock.AssignableToTypeOf(txCtx.NewTxBuilder()),
		gomock.Eq(false), gomock.Eq(false),
	).DoAndReturn(txCtx.SignTx).AnyTimes()
	txCtxMock.EXPECT().EncodeTx(gomock.Any()).
		DoAndReturn(
			func(txBuilder cosmosclient.TxBuilder) (_ []byte, err error) {
				// Intercept the call to EncodeTx in order to capture the tx bytes.
				*expectedTx, err = txCtx.EncodeTx(txBuilder)
				require.NoError(t, err)
				return expectedTx.Bytes(), nil
			},
		).AnyTimes()

	return txCtxMock
}

// NewAnyTimesTxTxContext creates a mock transaction context with the given
// keyring, along with the real transaction context it proxies to. The real
// context uses a mock account retriever so that signing needs no node.
func NewAnyTimesTxTxContext(
	t *testing.T,
	keyring cosmoskeyring.Keyring,
) (*mockclient.MockTxContext, client.TxContext) {
	t.Helper()

	ctrl := gomock.NewController(t)

	accountRetrieverMock := mockclient.NewMockAccountRetriever(ctrl)
	accountRetrieverMock.EXPECT().
		GetAccountNumberSequence(gomock.Any(), gomock.Any()).
		Return(TestAccountNumber, TestAccountSequence, nil).
		AnyTimes()

	clientCtx := testclient.NewTestClientCtx(t, keyring).
		WithAccountRetriever(accountRetrieverMock)
	txFactory := testclient.NewTestTxFactory(t, clientCtx)

	txCtx, err := tx.NewTxContext(depinject.Supply(
		txtypes.Context(clientCtx),
		txFactory,
	))
	require.NoError(t, err)

	txCtxMock := mockclient.NewMockTxContext(ctrl)
	txCtxMock.EXPECT().GetKeyring().Return(keyring).AnyTimes()
	txCtxMock.EXPECT().GetClientCtx().Return(clientCtx).AnyTimes()

	return txCtxMock, txCtx
}

func expectSuccessfulBroadcast(txCtxMock *mockclient.MockTxContext) {
	// intercept #BroadcastTx() call to mock response and prevent actual broadcast
	txCtxMock.EXPECT().BroadcastTx(gomock.Any()).
		DoAndReturn(func(txBytes []byte) (*cosmostypes.TxResponse, error) {
			var expectedTxHash cometbytes.HexBytes = comettypes.Tx(txBytes).Hash()
			return &cosmostypes.TxResponse{
				TxHash: expectedTxHash.String(),
			}, nil
		}).Times(1)
}

func signerAddress(t *testing.T, keyring cosmoskeyring.Keyring, keyName string) cosmostypes.AccAddress {
	t.Helper()

	signerKey, err := keyring.Key(keyName)
	require.NoError(t, err)

	signerAddr, err := signerKey.GetAddress()
	require.NoError(t, err)
	return signerAddr
}
