package tx

import (
	"context"
	"errors"
	"strings"
	"time"

	"cosmossdk.io/depinject"
	"cosmossdk.io/math"
	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/multierr"

	"github.com/pokt-network/sendtokens/pkg/client"
	"github.com/pokt-network/sendtokens/pkg/either"
	"github.com/pokt-network/sendtokens/pkg/encoding"
	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/retry"
)

const (
	// DefaultGasLimit is used when neither a gas limit nor simulation is configured.
	DefaultGasLimit = 200_000

	// DefaultGasAdjustment is the multiplier applied to simulated gas.
	DefaultGasAdjustment = 1.4

	// DefaultCommitTimeout is how long a broadcast tx may take to be included
	// in a block before it is considered timed out.
	DefaultCommitTimeout = 60 * time.Second

	// DefaultPollInterval is how often the node is queried for a pending tx.
	DefaultPollInterval = 3 * time.Second
)

var _ client.TxClient = (*txClient)(nil)

// txClient orchestrates building, signing, broadcasting, and querying of
// transactions.
//
// Inclusion is detected by polling the node for the tx hash every
// pollInterval. If the tx is not found within commitTimeout, it is considered
// as timed out and the asynchronous error channel receives ErrTxTimeout. Any
// other query error stops the polling and is reported as ErrQueryTx.
type txClient struct {
	// signingKeyName is the name of the key in the keyring to use for signing
	// transactions.
	signingKeyName string
	// signingAddr is the address of the signing key referenced by signingKeyName.
	// It is hydrated from the keyring by calling Keyring#Key() with signingKeyName.
	signingAddr cosmostypes.AccAddress
	// txCtx is the transactions context which encapsulates transactions building, signing,
	// broadcasting, and querying, as well as keyring access.
	txCtx client.TxContext

	gasLimit      uint64
	simulateGas   bool
	gasAdjustment float64

	// feeAmount and gasPrices are mutually exclusive.
	feeAmount cosmostypes.Coins
	gasPrices cosmostypes.DecCoins

	commitTimeout time.Duration
	pollInterval  time.Duration
}

// NewTxClient attempts to construct a new TxClient using the given dependencies
// and options.
//
// Required dependencies:
//   - client.TxContext
//
// Available options:
//   - WithSigningKeyName
//   - WithGasLimit
//   - WithSimulatedGas
//   - WithGasAdjustment
//   - WithFeeAmount
//   - WithGasPrices
//   - WithCommitTimeout
//   - WithPollInterval
func NewTxClient(
	ctx context.Context,
	deps depinject.Config,
	opts ...client.TxClientOption,
) (_ client.TxClient, err error) {
	txnClient := &txClient{}

	if err = depinject.Inject(
		deps,
		&txnClient.txCtx,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(txnClient)
	}

	if err = txnClient.validateConfigAndSetDefaults(); err != nil {
		return nil, err
	}

	polylog.Ctx(ctx).Debug().
		Str("signer", txnClient.signingAddr.String()).
		Bool("simulate_gas", txnClient.simulateGas).
		Uint64("gas_limit", txnClient.gasLimit).
		Msg("tx client ready")

	return txnClient, nil
}

// SigningAddress returns the address of the signing key.
func (txnClient *txClient) SigningAddress() cosmostypes.AccAddress {
	return txnClient.signingAddr
}

// SignAndBroadcast signs a set of Cosmos SDK messages, constructs a transaction,
// and broadcasts it to the network. The function performs several steps to
// ensure the messages and the resultant transaction are valid:
//
//  1. Validates each message in the provided set.
//  2. Determines the gas limit, fixed or simulated.
//  3. Constructs the transaction with fee and memo.
//  4. Signs and validates the constructed transaction.
//  5. Serializes and broadcasts the transaction.
//  6. Checks the broadcast (CheckTx) response for errors.
//  7. Starts polling for the transaction's inclusion.
//
// If any step encounters an error, it returns an either.AsyncError populated with
// the synchronous error. Otherwise it returns the CheckTx response and an
// either.AsyncError populated with the error channel which will receive if the
// transaction fails in DeliverTx or times out.
func (txnClient *txClient) SignAndBroadcast(
	ctx context.Context,
	memo string,
	msgs ...cosmostypes.Msg,
) (*cosmostypes.TxResponse, either.AsyncError) {
	logger := polylog.Ctx(ctx)

	var validationErrs error
	for i, msg := range msgs {
		validatableMsg, ok := msg.(cosmostypes.HasValidateBasic)
		if ok {
			if err := validatableMsg.ValidateBasic(); err != nil {
				validationErr := ErrInvalidMsg.Wrapf("in msg with index %d: %s", i, err)
				validationErrs = multierr.Append(validationErrs, validationErr)
			}
		}
	}
	if validationErrs != nil {
		return nil, either.SyncErr(validationErrs)
	}

	gasLimit, err := txnClient.getGasLimit(ctx, msgs...)
	if err != nil {
		return nil, either.SyncErr(err)
	}

	// Construct the transactions using cosmos' transactions builder.
	txBuilder := txnClient.txCtx.NewTxBuilder()
	if err = txBuilder.SetMsgs(msgs...); err != nil {
		return nil, either.SyncErr(err)
	}

	txBuilder.SetGasLimit(gasLimit)
	txBuilder.SetFeeAmount(txnClient.getFeeAmount(gasLimit))
	txBuilder.SetMemo(memo)

	// sign transactions
	if err = txnClient.txCtx.SignTx(
		ctx,
		txnClient.signingKeyName,
		txBuilder,
		false, false,
	); err != nil {
		return nil, either.SyncErr(ErrSignTx.Wrapf("%s", err))
	}

	// ensure transactions is valid
	// NOTE: this makes the transactions valid; i.e. it is *REQUIRED*
	if err = txBuilder.GetTx().ValidateBasic(); err != nil {
		return nil, either.SyncErr(err)
	}

	// serialize transactions
	txBz, err := txnClient.txCtx.EncodeTx(txBuilder)
	if err != nil {
		return nil, either.SyncErr(err)
	}

	txResponse, err := txnClient.txCtx.BroadcastTx(txBz)
	if err != nil {
		return nil, either.SyncErr(ErrBroadcastTx.Wrapf("%s", err))
	}

	if txResponse.Code != 0 {
		return nil, either.SyncErr(ErrCheckTx.Wrapf(
			"code %d (codespace %q): %s",
			txResponse.Code, txResponse.Codespace, txResponse.RawLog,
		))
	}

	txHashHex := encoding.NormalizeTxHashHex(txResponse.TxHash)
	txHash, err := encoding.TxHashHexToBytes(txHashHex)
	if err != nil {
		return nil, either.SyncErr(ErrInvalidTxHash.Wrapf("%s", err))
	}

	logger.Info().
		Str("tx_hash", encoding.DisplayTxHash(txHashHex)).
		Uint64("gas_wanted", gasLimit).
		Msg("tx broadcast, awaiting inclusion")

	// NB: intentionally buffered to avoid blocking on send. Only intended
	// to send/receive a single error.
	errCh := make(chan error, 1)
	go txnClient.goAwaitInclusion(ctx, txHash, errCh)

	return txResponse, either.AsyncErr(errCh)
}

// validateConfigAndSetDefaults ensures that the necessary configurations for the
// txClient are set, and populates any missing defaults.
func (txnClient *txClient) validateConfigAndSetDefaults() error {
	if txnClient.signingKeyName == "" {
		return ErrEmptySigningKeyName
	}

	keyRecord, err := txnClient.txCtx.GetKeyring().Key(txnClient.signingKeyName)
	if err != nil {
		return ErrNoSuchSigningKey.Wrapf("name %q: %s", txnClient.signingKeyName, err)
	}

	signingAddr, err := keyRecord.GetAddress()
	if err != nil {
		return ErrSigningKeyAddr.Wrapf("name %q: %s", txnClient.signingKeyName, err)
	}
	txnClient.signingAddr = signingAddr

	if !txnClient.feeAmount.Empty() && !txnClient.gasPrices.Empty() {
		return ErrInvalidFeeConfig.Wrap("fee amount and gas prices are mutually exclusive")
	}
	if err = txnClient.feeAmount.Validate(); err != nil {
		return ErrInvalidFeeConfig.Wrapf("fee amount: %s", err)
	}
	if err = txnClient.gasPrices.Validate(); err != nil {
		return ErrInvalidFeeConfig.Wrapf("gas prices: %s", err)
	}

	if txnClient.gasLimit == 0 {
		txnClient.gasLimit = DefaultGasLimit
	}
	if txnClient.gasAdjustment <= 0 {
		txnClient.gasAdjustment = DefaultGasAdjustment
	}
	if txnClient.commitTimeout <= 0 {
		txnClient.commitTimeout = DefaultCommitTimeout
	}
	if txnClient.pollInterval <= 0 {
		txnClient.pollInterval = DefaultPollInterval
	}
	return nil
}

// getGasLimit returns the configured gas limit or, if simulation is enabled,
// the simulated gas multiplied by the gas adjustment.
func (txnClient *txClient) getGasLimit(ctx context.Context, msgs ...cosmostypes.Msg) (uint64, error) {
	if !txnClient.simulateGas {
		return txnClient.gasLimit, nil
	}

	simulatedGas, err := txnClient.txCtx.GetSimulatedTxGas(ctx, txnClient.signingKeyName, msgs...)
	if err != nil {
		return 0, err
	}

	gasLimit := uint64(txnClient.gasAdjustment * float64(simulatedGas))
	polylog.Ctx(ctx).Debug().
		Uint64("simulated_gas", simulatedGas).
		Float64("gas_adjustment", txnClient.gasAdjustment).
		Uint64("gas_limit", gasLimit).
		Msg("estimated gas by simulation")

	return gasLimit, nil
}

// getFeeAmount returns the fixed fee amount or, when gas prices are set, the
// fee derived from them and gasLimit rounded up to whole units.
func (txnClient *txClient) getFeeAmount(gasLimit uint64) cosmostypes.Coins {
	if txnClient.gasPrices.Empty() {
		return txnClient.feeAmount
	}

	gasLimitDec := math.LegacyNewDecFromInt(math.NewIntFromUint64(gasLimit))
	feeAmountDec := txnClient.gasPrices.MulDec(gasLimitDec)

	feeCoins, changeCoins := feeAmountDec.TruncateDecimal()
	// Ensure that any decimal remainder is added to the corresponding coin as a
	// whole number.
	// Since changeCoins is the result of DecCoins#TruncateDecimal, each of its
	// coins is less than 1 unit of the corresponding fee coin.
	for _, change := range changeCoins {
		if change.IsPositive() {
			feeCoins = feeCoins.Add(cosmostypes.NewInt64Coin(change.Denom, 1))
		}
	}
	return feeCoins
}

// goAwaitInclusion polls the node for txHash until it is found, the commit
// timeout elapses or ctx is done. It sends at most one error on errCh and
// closes it. It is intended to be called in a goroutine.
func (txnClient *txClient) goAwaitInclusion(
	ctx context.Context,
	txHash []byte,
	errCh chan error,
) {
	defer close(errCh)

	logger := polylog.Ctx(ctx)
	txHashHex := encoding.DisplayTxHash(encoding.TxHashBytesToNormalizedHex(txHash))

	pollCtx, cancel := context.WithTimeout(ctx, txnClient.commitTimeout)
	defer cancel()

	resultTx, err := retry.Call(
		func() (*cometrpctypes.ResultTx, error) {
			res, queryErr := txnClient.txCtx.QueryTx(pollCtx, txHash, false)
			if queryErr == nil {
				return res, nil
			}
			if !isTxNotFound(queryErr) && pollCtx.Err() == nil {
				return nil, retry.ErrNonRetryable.Wrapf("%s", queryErr)
			}
			logger.Debug().
				Str("tx_hash", txHashHex).
				Err(queryErr).
				Msg("tx not yet included")
			return nil, queryErr
		},
		retry.WithFixedDelayFn(pollCtx, txnClient.pollInterval),
	)
	if err != nil {
		// Cancellation of the caller's context is reported as such rather than
		// as a timeout.
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.DeadlineExceeded) {
			errCh <- ctxErr
			return
		}
		if errors.Is(err, retry.ErrNonRetryable) {
			errCh <- ErrQueryTx.Wrapf("tx %s: %s", txHashHex, err)
			return
		}
		errCh <- ErrTxTimeout.Wrapf(
			"tx %s was not included in a block after %s: %s",
			txHashHex, txnClient.commitTimeout, err,
		)
		return
	}

	if resultTx.TxResult.Code != 0 {
		errCh <- ErrDeliverTx.Wrapf(
			"tx %s at height %d: code %d (codespace %q): %s",
			txHashHex, resultTx.Height,
			resultTx.TxResult.Code, resultTx.TxResult.Codespace, resultTx.TxResult.Log,
		)
		return
	}

	logger.Info().
		Str("tx_hash", txHashHex).
		Int64("height", resultTx.Height).
		Int64("gas_used", resultTx.TxResult.GasUsed).
		Msg("tx included in block")
}

// isTxNotFound reports whether err is the node's answer for a tx which is not
// (yet) indexed.
func isTxNotFound(err error) bool {
	return strings.Contains(err.Error(), "not found")
}
