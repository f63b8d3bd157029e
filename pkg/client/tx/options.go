package tx

import (
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/pokt-network/sendtokens/pkg/client"
)

// WithSigningKeyName sets the name of the key which should be retrieved from the
// keyring and used for signing transactions.
func WithSigningKeyName(keyName string) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).signingKeyName = keyName
	}
}

// WithGasLimit sets a fixed gas limit; it is ignored when WithSimulatedGas is used.
func WithGasLimit(gasLimit uint64) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).gasLimit = gasLimit
	}
}

// WithSimulatedGas makes the client estimate the gas limit of every tx by
// simulating it against the node.
func WithSimulatedGas() client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).simulateGas = true
	}
}

// WithGasAdjustment sets the multiplier applied to simulated gas. The tx
// factory's own adjustment is ignored.
func WithGasAdjustment(gasAdjustment float64) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).gasAdjustment = gasAdjustment
	}
}

// WithFeeAmount sets a fixed fee paid by every tx.
func WithFeeAmount(feeAmount cosmostypes.Coins) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).feeAmount = feeAmount
	}
}

// WithGasPrices sets the gas unit prices from which the fee is derived
// (fee = ceil(gasPrices * gasLimit)). It is mutually exclusive with WithFeeAmount.
func WithGasPrices(gasPrices cosmostypes.DecCoins) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).gasPrices = gasPrices
	}
}

// WithCommitTimeout sets how long to wait for a broadcast tx to be included
// in a block before reporting ErrTxTimeout.
func WithCommitTimeout(timeout time.Duration) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).commitTimeout = timeout
	}
}

// WithPollInterval sets how often the node is queried for a pending tx.
func WithPollInterval(interval time.Duration) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).pollInterval = interval
	}
}
