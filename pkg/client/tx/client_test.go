package tx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/depinject"
	"cosmossdk.io/math"
	cometbytes "github.com/cometbft/cometbft/libs/bytes"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokt-network/sendtokens/pkg/client"
	"github.com/pokt-network/sendtokens/pkg/client/tx"
	txtypes "github.com/pokt-network/sendtokens/pkg/client/tx/types"
	"github.com/pokt-network/sendtokens/pkg/encoding"
	_ "github.com/pokt-network/sendtokens/pkg/polylog/polyzero"
	"github.com/pokt-network/sendtokens/testutil/testclient"
	"github.com/pokt-network/sendtokens/testutil/testclient/testtx"
	"github.com/pokt-network/sendtokens/testutil/testkeyring"
)

const (
	testSigningKeyName = "test_signer"
	testMemo           = "rent for october"
	txCommitTimeout    = 50 * time.Millisecond
	txPollInterval     = 5 * time.Millisecond
)

// testRecipient is an arbitrary, valid recipient address.
var testRecipient = cosmostypes.AccAddress("recipient_address___").String()

func TestTxClient_SignAndBroadcast_Succeeds(t *testing.T) {
	var (
		// expectedTx is the expected transactions bytes that will be signed and broadcast
		// by the transaction client. It is computed and assigned in the
		// testtx.NewOneTimeTxTxContext helper function.
		expectedTx cometbytes.HexBytes
		ctx        = context.Background()
	)

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	txCtxMock := testtx.NewOneTimeTxTxContext(t, keyring, testSigningKeyName, &expectedTx)

	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		testtx.WithDefaultTxClientOptions(testSigningKeyName)...,
	)
	require.NoError(t, err)
	require.Equal(t, signingAddr, txClient.SigningAddress())

	sendMsg := newSendMsg(t, signingAddr, 1000)

	txResponse, eitherErr := txClient.SignAndBroadcast(ctx, testMemo, sendMsg)
	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)
	require.NotNil(t, txResponse)

	// The broadcast response hash must be the hash of the signed tx bytes.
	require.Equal(t,
		encoding.TxBytesToNormalizedHash(expectedTx),
		encoding.NormalizeTxHashHex(txResponse.TxHash),
	)

	select {
	case err, ok := <-errCh:
		require.NoError(t, err)
		require.False(t, ok, "expected the error channel to be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tx inclusion")
	}

	decodedTx := decodeTx(t, expectedTx)
	require.Equal(t, testMemo, decodedTx.(cosmostypes.TxWithMemo).GetMemo())

	feeTx := decodedTx.(cosmostypes.FeeTx)
	require.Equal(t, uint64(tx.DefaultGasLimit), feeTx.GetGas())
	// 0.025token * 200000 gas
	require.Equal(t, "5000token", feeTx.GetFee().String())

	msgs := decodedTx.GetMsgs()
	require.Len(t, msgs, 1)
	require.Equal(t, sendMsg.String(), msgs[0].(*banktypes.MsgSend).String())
}

func TestTxClient_SignAndBroadcast_FeeFromGasPricesRoundsUp(t *testing.T) {
	var (
		expectedTx cometbytes.HexBytes
		ctx        = context.Background()
	)

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	txCtxMock := testtx.NewOneTimeTxTxContext(t, keyring, testSigningKeyName, &expectedTx)

	gasPrices := cosmostypes.NewDecCoins(
		cosmostypes.NewDecCoinFromDec(testclient.TestDenom, math.LegacyMustNewDecFromStr("0.0251234")),
	)
	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		tx.WithSigningKeyName(testSigningKeyName),
		tx.WithGasPrices(gasPrices),
		tx.WithCommitTimeout(time.Second),
		tx.WithPollInterval(txPollInterval),
	)
	require.NoError(t, err)

	_, eitherErr := txClient.SignAndBroadcast(ctx, "", newSendMsg(t, signingAddr, 1))
	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)
	require.NoError(t, <-errCh)

	// 0.0251234token * 200000 gas = 5024.68token
	feeTx := decodeTx(t, expectedTx).(cosmostypes.FeeTx)
	require.Equal(t, "5025token", feeTx.GetFee().String())
}

func TestTxClient_SignAndBroadcast_SimulatedGas(t *testing.T) {
	var (
		expectedTx cometbytes.HexBytes
		ctx        = context.Background()
	)

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	txCtxMock := testtx.NewOneTimeTxTxContext(t, keyring, testSigningKeyName, &expectedTx)
	txCtxMock.EXPECT().
		GetSimulatedTxGas(gomock.Any(), gomock.Eq(testSigningKeyName), gomock.Any()).
		Return(uint64(100_000), nil).
		Times(1)

	feeAmount := cosmostypes.NewCoins(cosmostypes.NewInt64Coin(testclient.TestDenom, 2500))
	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		tx.WithSigningKeyName(testSigningKeyName),
		tx.WithSimulatedGas(),
		tx.WithGasAdjustment(1.5),
		tx.WithFeeAmount(feeAmount),
		tx.WithCommitTimeout(time.Second),
		tx.WithPollInterval(txPollInterval),
	)
	require.NoError(t, err)

	_, eitherErr := txClient.SignAndBroadcast(ctx, "", newSendMsg(t, signingAddr, 1))
	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)
	require.NoError(t, <-errCh)

	feeTx := decodeTx(t, expectedTx).(cosmostypes.FeeTx)
	require.Equal(t, uint64(150_000), feeTx.GetGas())
	require.Equal(t, feeAmount.String(), feeTx.GetFee().String())
}

func TestTxContext_GetSimulatedTxGas(t *testing.T) {
	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	node := testclient.NewFakeNode(testclient.TestChainID).
		WithAccount(signingAddr, nil).
		WithSimulatedGas(100_000)
	txCtx := newNodeTxContext(t, keyring, node)

	// The tx factory carries no gas adjustment; the raw simulated gas is returned.
	gas, err := txCtx.GetSimulatedTxGas(context.Background(), testSigningKeyName, newSendMsg(t, signingAddr, 1))
	require.NoError(t, err)
	require.Equal(t, uint64(100_000), gas)
	require.Contains(t, node.Queries(), testclient.SimulateQueryPath)
}

func TestTxClient_SignAndBroadcast_SimulatedGasFromNode(t *testing.T) {
	ctx := context.Background()

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	node := testclient.NewFakeNode(testclient.TestChainID).
		WithAccount(signingAddr, nil).
		WithSimulatedGas(100_000)
	txCtx := newNodeTxContext(t, keyring, node)

	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtx),
		tx.WithSigningKeyName(testSigningKeyName),
		tx.WithSimulatedGas(),
		tx.WithGasAdjustment(1.5),
		tx.WithCommitTimeout(time.Second),
		tx.WithPollInterval(txPollInterval),
	)
	require.NoError(t, err)

	txResponse, eitherErr := txClient.SignAndBroadcast(ctx, testMemo, newSendMsg(t, signingAddr, 1))
	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)
	require.NotNil(t, txResponse)
	require.NoError(t, <-errCh)

	broadcasts := node.Broadcasts()
	require.Len(t, broadcasts, 1)

	feeTx := decodeTx(t, broadcasts[0]).(cosmostypes.FeeTx)
	require.Equal(t, uint64(150_000), feeTx.GetGas())
}

func TestTxClient_NewTxClient_Error(t *testing.T) {
	ctx := context.Background()
	keyring, _ := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)

	feeAmount := cosmostypes.NewCoins(cosmostypes.NewInt64Coin(testclient.TestDenom, 1))
	gasPrices := cosmostypes.NewDecCoins(cosmostypes.NewInt64DecCoin(testclient.TestDenom, 1))

	tests := []struct {
		desc        string
		opts        []client.TxClientOption
		expectedErr error
	}{
		{
			desc:        "empty signing key name",
			opts:        nil,
			expectedErr: tx.ErrEmptySigningKeyName,
		},
		{
			desc:        "unknown signing key name",
			opts:        []client.TxClientOption{tx.WithSigningKeyName("nobody")},
			expectedErr: tx.ErrNoSuchSigningKey,
		},
		{
			desc: "fee amount and gas prices",
			opts: []client.TxClientOption{
				tx.WithSigningKeyName(testSigningKeyName),
				tx.WithFeeAmount(feeAmount),
				tx.WithGasPrices(gasPrices),
			},
			expectedErr: tx.ErrInvalidFeeConfig,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			txCtxMock, _ := testtx.NewAnyTimesTxTxContext(t, keyring)

			txClient, err := tx.NewTxClient(ctx, depinject.Supply(txCtxMock), test.opts...)
			require.ErrorIs(t, err, test.expectedErr)
			require.Nil(t, txClient)
		})
	}
}

func TestTxClient_SignAndBroadcast_CheckTxError(t *testing.T) {
	var (
		expectedErrMsg string
		ctx            = context.Background()
	)

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	txCtxMock := testtx.NewOneTimeErrCheckTxTxContext(t, keyring, testSigningKeyName, &expectedErrMsg)

	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		testtx.WithDefaultTxClientOptions(testSigningKeyName)...,
	)
	require.NoError(t, err)

	txResponse, eitherErr := txClient.SignAndBroadcast(ctx, testMemo, newSendMsg(t, signingAddr, 1000))
	require.Nil(t, txResponse)
	require.True(t, eitherErr.IsSyncError())

	errCh, err := eitherErr.SyncOrAsyncError()
	require.Nil(t, errCh)
	require.ErrorIs(t, err, tx.ErrCheckTx)
	require.ErrorContains(t, err, expectedErrMsg)
	require.ErrorContains(t, err, "code 5")
}

func TestTxClient_SignAndBroadcast_DeliverTxError(t *testing.T) {
	var (
		expectedErrMsg string
		ctx            = context.Background()
	)

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	txCtxMock := testtx.NewOneTimeErrDeliverTxTxContext(t, keyring, testSigningKeyName, &expectedErrMsg)

	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		testtx.WithDefaultTxClientOptions(testSigningKeyName)...,
	)
	require.NoError(t, err)

	txResponse, eitherErr := txClient.SignAndBroadcast(ctx, testMemo, newSendMsg(t, signingAddr, 1000))
	require.NotNil(t, txResponse)

	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, tx.ErrDeliverTx)
		require.ErrorContains(t, err, expectedErrMsg)
		require.ErrorContains(t, err, "code 11")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the deliver tx error")
	}
}

func TestTxClient_SignAndBroadcast_Timeout(t *testing.T) {
	var (
		expectedErrMsg string
		ctx            = context.Background()
	)

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	txCtxMock := testtx.NewOneTimeErrTxTimeoutTxContext(t, keyring, testSigningKeyName, &expectedErrMsg)

	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		tx.WithSigningKeyName(testSigningKeyName),
		tx.WithCommitTimeout(txCommitTimeout),
		tx.WithPollInterval(txPollInterval),
	)
	require.NoError(t, err)

	_, eitherErr := txClient.SignAndBroadcast(ctx, testMemo, newSendMsg(t, signingAddr, 1000))
	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, tx.ErrTxTimeout)
		require.ErrorContains(t, err, expectedErrMsg)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the tx timeout error")
	}
}

func TestTxClient_SignAndBroadcast_QueryTxError(t *testing.T) {
	ctx := context.Background()

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	queryErr := errors.New("post failed: dial tcp 127.0.0.1:26657: connect: connection refused")
	txCtxMock := testtx.NewOneTimeErrQueryTxTxContext(t, keyring, testSigningKeyName, queryErr)

	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		tx.WithSigningKeyName(testSigningKeyName),
		tx.WithCommitTimeout(time.Minute),
		tx.WithPollInterval(txPollInterval),
	)
	require.NoError(t, err)

	_, eitherErr := txClient.SignAndBroadcast(ctx, "", newSendMsg(t, signingAddr, 1000))
	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)

	// Polling stops at the first error which is not "tx not found".
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, tx.ErrQueryTx)
		require.NotErrorIs(t, err, tx.ErrTxTimeout)
		require.ErrorContains(t, err, "connection refused")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the query tx error")
	}
}

func TestTxClient_SignAndBroadcast_ContextCanceled(t *testing.T) {
	var expectedErrMsg string

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keyring, signingKey := testkeyring.NewTestKeyringWithKey(t, testSigningKeyName)
	signingAddr := testkeyring.KeyAddress(t, signingKey)

	txCtxMock := testtx.NewOneTimeErrTxTimeoutTxContext(t, keyring, testSigningKeyName, &expectedErrMsg)

	txClient, err := tx.NewTxClient(
		ctx, depinject.Supply(txCtxMock),
		tx.WithSigningKeyName(testSigningKeyName),
		tx.WithCommitTimeout(time.Minute),
		tx.WithPollInterval(txPollInterval),
	)
	require.NoError(t, err)

	_, eitherErr := txClient.SignAndBroadcast(ctx, "", newSendMsg(t, signingAddr, 1000))
	errCh, err := eitherErr.SyncOrAsyncError()
	require.NoError(t, err)

	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
		require.NotErrorIs(t, err, tx.ErrTxTimeout)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the cancellation error")
	}
}

func newSendMsg(t *testing.T, from cosmostypes.AccAddress, amount int64) *banktypes.MsgSend {
	t.Helper()

	toAddr, err := cosmostypes.AccAddressFromBech32(testRecipient)
	require.NoError(t, err)

	return banktypes.NewMsgSend(
		from, toAddr,
		cosmostypes.NewCoins(cosmostypes.NewInt64Coin(testclient.TestDenom, amount)),
	)
}

func decodeTx(t *testing.T, txBz []byte) cosmostypes.Tx {
	t.Helper()

	decodedTx, err := testclient.EncodingConfig.TxConfig.TxDecoder()(txBz)
	require.NoError(t, err)
	return decodedTx
}

// newNodeTxContext returns a tx context which signs with keyring and talks to node.
func newNodeTxContext(t *testing.T, keyring cosmoskeyring.Keyring, node *testclient.FakeNode) client.TxContext {
	t.Helper()

	clientCtx := testclient.NewTestClientCtx(t, keyring).WithClient(node)
	txCtx, err := tx.NewTxContext(depinject.Supply(
		txtypes.Context(clientCtx),
		testclient.NewTestTxFactory(t, clientCtx),
	))
	require.NoError(t, err)
	return txCtx
}
