//go:generate mockgen -destination=../../internal/mocks/mockclient/tx_context_mock.go -package=mockclient . TxContext
//go:generate mockgen -destination=../../internal/mocks/mockclient/tx_client_mock.go -package=mockclient . TxClient
//go:generate mockgen -destination=../../internal/mocks/mockclient/query_client_mock.go -package=mockclient . BankQueryClient,AccountQueryClient,TxQueryClient
//go:generate mockgen -destination=../../internal/mocks/mockclient/cosmos_client_mock.go -package=mockclient github.com/cosmos/cosmos-sdk/client AccountRetriever

package client

import (
	"context"

	comettypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/pokt-network/sendtokens/pkg/either"
)

// TxContext provides an interface which consolidates the operational dependencies
// required to facilitate the sender side of the tx lifecycle: build, sign, encode,
// broadcast, query.
type TxContext interface {
	// GetKeyring returns the associated key management mechanism for the tx context.
	GetKeyring() cosmoskeyring.Keyring

	// NewTxBuilder creates and returns a new tx builder instance.
	NewTxBuilder() cosmosclient.TxBuilder

	// SignTx signs a tx using the specified key name. Unless offline is set, the
	// signer's account number and sequence are fetched from the chain first.
	SignTx(
		ctx context.Context,
		keyName string,
		txBuilder cosmosclient.TxBuilder,
		offline, overwriteSig bool,
	) error

	// EncodeTx takes a tx builder and encodes it, returning its byte representation.
	EncodeTx(txBuilder cosmosclient.TxBuilder) ([]byte, error)

	// BroadcastTx broadcasts the given tx to the network, blocking until CheckTx
	// completes.
	BroadcastTx(txBytes []byte) (*cosmostypes.TxResponse, error)

	// QueryTx retrieves a tx status based on its hash and optionally provides
	// proof of the tx.
	QueryTx(
		ctx context.Context,
		txHash []byte,
		prove bool,
	) (*comettypes.ResultTx, error)

	// GetSimulatedTxGas simulates a tx containing msgs signed by keyName and
	// returns the gas used multiplied by the factory's gas adjustment.
	GetSimulatedTxGas(
		ctx context.Context,
		keyName string,
		msgs ...cosmostypes.Msg,
	) (uint64, error)

	// GetClientCtx returns the underlying cosmos-sdk client context.
	GetClientCtx() cosmosclient.Context
}

// TxClient provides a synchronous interface initiating and waiting for transactions
// derived from cosmos-sdk messages, in a cosmos-sdk based blockchain network.
type TxClient interface {
	// SignAndBroadcast signs and broadcasts msgs with the given memo.
	//
	// The returned TxResponse is the CheckTx result and is nil when the
	// AsyncError holds a synchronous error. Otherwise the AsyncError holds a
	// channel which receives at most one error (DeliverTx failure or timeout)
	// and is closed once the tx is included in a block.
	SignAndBroadcast(
		ctx context.Context,
		memo string,
		msgs ...cosmostypes.Msg,
	) (*cosmostypes.TxResponse, either.AsyncError)

	// SigningAddress returns the address of the key used to sign transactions.
	SigningAddress() cosmostypes.AccAddress
}

// TxClientOption defines a function type that modifies the TxClient.
type TxClientOption func(TxClient)

// BankQueryClient defines an interface that enables the querying of the
// onchain bank information
type BankQueryClient interface {
	// GetAllBalances queries the chain for all balances of the given address.
	GetAllBalances(ctx context.Context, address string) (cosmostypes.Coins, error)
}

// AccountQueryClient defines an interface that enables the querying of the
// onchain account information
type AccountQueryClient interface {
	// GetAccount queries the chain for the details of the account provided
	GetAccount(ctx context.Context, address string) (cosmostypes.AccountI, error)
}

// TxQueryClient defines an interface that enables the querying of committed
// transactions by hash.
type TxQueryClient interface {
	// GetTx returns the committed tx with the given hex hash.
	GetTx(ctx context.Context, txHashHex string) (*cosmostypes.TxResponse, error)
}
