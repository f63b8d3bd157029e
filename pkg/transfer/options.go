package transfer

import (
	"github.com/pokt-network/sendtokens/pkg/client"
	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/wallet"
)

// SenderOption configures a Sender.
type SenderOption func(*Sender)

// WithAccount sets the account whose balance is checked. It must be the
// account whose key the tx client signs with.
func WithAccount(account *wallet.Account) SenderOption {
	return func(s *Sender) {
		s.account = account
	}
}

// WithTxClient sets the client used to sign and broadcast the transfer.
func WithTxClient(txClient client.TxClient) SenderOption {
	return func(s *Sender) {
		s.txClient = txClient
	}
}

// WithBankQueryClient sets the client used to query balances.
func WithBankQueryClient(bankQuerier client.BankQueryClient) SenderOption {
	return func(s *Sender) {
		s.bankQuerier = bankQuerier
	}
}

// WithAccountQueryClient sets the client used to check that the sending
// account exists on chain.
func WithAccountQueryClient(accountQuerier client.AccountQueryClient) SenderOption {
	return func(s *Sender) {
		s.accountQuerier = accountQuerier
	}
}

// WithTxQueryClient sets the client used to confirm the transfer by hash.
func WithTxQueryClient(txQuerier client.TxQueryClient) SenderOption {
	return func(s *Sender) {
		s.txQuerier = txQuerier
	}
}

// WithLogger sets the logger; it defaults to the logger of the context passed
// to each operation.
func WithLogger(logger polylog.Logger) SenderOption {
	return func(s *Sender) {
		s.logger = logger
	}
}
