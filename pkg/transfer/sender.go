package transfer

import (
	"context"
	"errors"
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/pokt-network/sendtokens/pkg/client"
	"github.com/pokt-network/sendtokens/pkg/client/tx"
	"github.com/pokt-network/sendtokens/pkg/encoding"
	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/wallet"
	"github.com/pokt-network/sendtokens/telemetry"
)

const sendEventType = "send"

// Sender sends tokens from a single account.
type Sender struct {
	account        *wallet.Account
	txClient       client.TxClient
	bankQuerier    client.BankQueryClient
	accountQuerier client.AccountQueryClient
	txQuerier      client.TxQueryClient
	logger         polylog.Logger
}

// NewSender constructs a Sender. All of WithAccount, WithTxClient,
// WithBankQueryClient, WithAccountQueryClient and WithTxQueryClient are required.
func NewSender(opts ...SenderOption) (*Sender, error) {
	s := &Sender{}
	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.account == nil:
		return nil, ErrTransferMissingDependency.Wrap("account")
	case s.txClient == nil:
		return nil, ErrTransferMissingDependency.Wrap("tx client")
	case s.bankQuerier == nil:
		return nil, ErrTransferMissingDependency.Wrap("bank query client")
	case s.accountQuerier == nil:
		return nil, ErrTransferMissingDependency.Wrap("account query client")
	case s.txQuerier == nil:
		return nil, ErrTransferMissingDependency.Wrap("tx query client")
	}

	if !s.account.Address.Equals(s.txClient.SigningAddress()) {
		return nil, ErrTransferMissingDependency.Wrapf(
			"tx client signs as %s, expected %s",
			s.txClient.SigningAddress(), s.account,
		)
	}

	return s, nil
}

// CheckBalance ensures that the sending account exists on chain and holds
// tokens, and returns its balances.
//
// A missing account is reported as query.ErrQueryAccountNotFound and an
// account without tokens as ErrTransferEmptyBalance.
func (s *Sender) CheckBalance(ctx context.Context) (cosmostypes.Coins, error) {
	logger := s.loggerFor(ctx)
	address := s.account.String()

	account, err := s.accountQuerier.GetAccount(ctx, address)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("address", address).
		Uint64("account_number", account.GetAccountNumber()).
		Uint64("sequence", account.GetSequence()).
		Msg("found account")

	balances, err := s.bankQuerier.GetAllBalances(ctx, address)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("address", address).
		Str("balance", balances.String()).
		Msg("account balance")

	if balances.Empty() {
		return nil, ErrTransferEmptyBalance.Wrapf("%s: please fund the account first", address)
	}
	return balances, nil
}

// Send transfers tokens to the recipient and waits until the tx is included in
// a block and can be queried by its hash.
func (s *Sender) Send(ctx context.Context, transfer Transfer) (_ *Result, err error) {
	logger := s.loggerFor(ctx)
	start := time.Now()

	defer telemetry.EventSuccessCounter(
		sendEventType,
		func() float32 { return 1 },
		func() error { return err },
	)
	defer func() {
		telemetry.TransferCounter(transferStatus(err))
		telemetry.ObserveTransferDuration(start)
	}()

	toAddr, err := cosmostypes.AccAddressFromBech32(transfer.Recipient)
	if err != nil {
		return nil, ErrTransferInvalidRecipient.Wrapf("recipient %q: %s", transfer.Recipient, err)
	}
	if transfer.Amount.Empty() || !transfer.Amount.IsValid() {
		return nil, ErrTransferInvalidAmount.Wrapf("%q", transfer.Amount)
	}

	fromAddr := s.txClient.SigningAddress()
	msg := banktypes.NewMsgSend(fromAddr, toAddr, transfer.Amount)

	logger.Info().
		Str("from", fromAddr.String()).
		Str("to", toAddr.String()).
		Str("amount", transfer.Amount.String()).
		Str("memo", transfer.Memo).
		Msg("sending transaction")

	txResponse, eitherErr := s.txClient.SignAndBroadcast(ctx, transfer.Memo, msg)
	errCh, err := eitherErr.SyncOrAsyncError()
	if err != nil {
		return nil, err
	}

	txHash := encoding.DisplayTxHash(encoding.NormalizeTxHashHex(txResponse.TxHash))
	logger.Info().
		Str("tx_hash", txHash).
		Msg("transaction sent")

	// The channel is closed without an error once the tx is included.
	if err = <-errCh; err != nil {
		return nil, err
	}

	txResult, err := s.txQuerier.GetTx(ctx, txHash)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("tx_hash", txHash).
		Int64("gas_used", txResult.GasUsed).
		Int64("height", txResult.Height).
		Msg("transaction confirmed")

	telemetry.SetLastGasUsed(txResult.GasUsed)
	for _, coin := range transfer.Amount {
		amount, convErr := coin.Amount.ToLegacyDec().Float64()
		if convErr == nil {
			telemetry.TransferredTokens(coin.Denom, float32(amount))
		}
	}

	return &Result{
		Success:     true,
		From:        fromAddr.String(),
		To:          toAddr.String(),
		Amount:      transfer.Amount.String(),
		TxHash:      txHash,
		Memo:        transfer.Memo,
		BlockHeight: txResult.Height,
		GasUsed:     txResult.GasUsed,
		GasWanted:   txResult.GasWanted,
	}, nil
}

func (s *Sender) loggerFor(ctx context.Context) polylog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return polylog.Ctx(ctx)
}

// transferStatus returns the status label under which the outcome of a
// transfer is counted.
func transferStatus(err error) string {
	switch {
	case err == nil:
		return telemetry.TransferStatusSuccess
	case errors.Is(err, tx.ErrCheckTx):
		return telemetry.TransferStatusCheckTx
	case errors.Is(err, tx.ErrDeliverTx):
		return telemetry.TransferStatusDeliverTx
	case errors.Is(err, tx.ErrTxTimeout):
		return telemetry.TransferStatusTimeout
	default:
		return telemetry.TransferStatusOtherError
	}
}
