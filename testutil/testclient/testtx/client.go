package testtx

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/math"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/pokt-network/sendtokens/internal/mocks/mockclient"
	"github.com/pokt-network/sendtokens/pkg/client"
	"github.com/pokt-network/sendtokens/pkg/client/tx"
	"github.com/pokt-network/sendtokens/pkg/either"
	"github.com/pokt-network/sendtokens/testutil/testclient"
)

// TestTxHash is the (display formatted) hash of every tx "broadcast" by the
// mock clients built here.
const TestTxHash = "6A0DB0B4B4D2F9A7C4B8E6F2D2B0C4E1A9F3D7C5B1E0A2C4D6F8A0B2C4D6E8F0"

type signAndBroadcastFn func(context.Context, string, ...cosmostypes.Msg) (*cosmostypes.TxResponse, either.AsyncError)

// NewOneTimeSignAndBroadcastTxClient constructs a mock TxClient with the
// expectation to perform a SignAndBroadcast operation, which will call and receive
// the return from the given signAndBroadcast function.
func NewOneTimeSignAndBroadcastTxClient(
	t *testing.T,
	signingAddr cosmostypes.AccAddress,
	signAndBroadcast signAndBroadcastFn,
) *mockclient.MockTxClient {
	t.Helper()

	ctrl := gomock.NewController(t)

	txClient := mockclient.NewMockTxClient(ctrl)
	txClient.EXPECT().SigningAddress().Return(signingAddr).AnyTimes()
	txClient.EXPECT().SignAndBroadcast(
		gomock.Any(),
		gomock.Any(),
		gomock.Any(),
	).DoAndReturn(signAndBroadcast).Times(1)

	return txClient
}

// NewOneTimeDelayedSignAndBroadcastTxClient constructs a mock TxClient whose
// broadcast succeeds and whose tx is included after the given delay.
func NewOneTimeDelayedSignAndBroadcastTxClient(
	t *testing.T,
	signingAddr cosmostypes.AccAddress,
	delay time.Duration,
) *mockclient.MockTxClient {
	t.Helper()

	return NewOneTimeSignAndBroadcastTxClient(t, signingAddr, newSignAndBroadcastSucceedsDelayed(delay))
}

// NewOneTimeErrSignAndBroadcastTxClient constructs a mock TxClient whose
// SignAndBroadcast fails synchronously with err.
func NewOneTimeErrSignAndBroadcastTxClient(
	t *testing.T,
	signingAddr cosmostypes.AccAddress,
	err error,
) *mockclient.MockTxClient {
	t.Helper()

	return NewOneTimeSignAndBroadcastTxClient(t, signingAddr,
		func(context.Context, string, ...cosmostypes.Msg) (*cosmostypes.TxResponse, either.AsyncError) {
			return nil, either.SyncErr(err)
		},
	)
}

// NewOneTimeAsyncErrSignAndBroadcastTxClient constructs a mock TxClient whose
// broadcast succeeds but whose async error channel then receives err.
func NewOneTimeAsyncErrSignAndBroadcastTxClient(
	t *testing.T,
	signingAddr cosmostypes.AccAddress,
	err error,
) *mockclient.MockTxClient {
	t.Helper()

	return NewOneTimeSignAndBroadcastTxClient(t, signingAddr,
		func(context.Context, string, ...cosmostypes.Msg) (*cosmostypes.TxResponse, either.AsyncError) {
			errCh := make(chan error, 1)
			errCh <- err
			close(errCh)
			return &cosmostypes.TxResponse{TxHash: TestTxHash}, either.AsyncErr(errCh)
		},
	)
}

// newSignAndBroadcastSucceedsDelayed returns a signAndBroadcastFn that succeeds
// after the given delay.
func newSignAndBroadcastSucceedsDelayed(delay time.Duration) signAndBroadcastFn {
	return func(context.Context, string, ...cosmostypes.Msg) (*cosmostypes.TxResponse, either.AsyncError) {
		errCh := make(chan error)

		go func() {
			time.Sleep(delay)
			close(errCh)
		}()

		return &cosmostypes.TxResponse{TxHash: TestTxHash}, either.AsyncErr(errCh)
	}
}

// WithDefaultTxClientOptions returns the options used by tests which build a
// real tx client: a fixed gas limit, gas prices in testclient.TestDenom and
// short inclusion polling.
func WithDefaultTxClientOptions(testSigningKeyName string) []client.TxClientOption {
	gasPrices := cosmostypes.NewDecCoins(
		cosmostypes.NewDecCoinFromDec(testclient.TestDenom, math.LegacyMustNewDecFromStr("0.025")),
	)

	return []client.TxClientOption{
		tx.WithSigningKeyName(testSigningKeyName),
		tx.WithGasLimit(tx.DefaultGasLimit),
		tx.WithGasPrices(gasPrices),
		tx.WithCommitTimeout(time.Second),
		tx.WithPollInterval(5 * time.Millisecond),
	}
}
