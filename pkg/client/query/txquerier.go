package query

import (
	"context"
	"strings"

	"cosmossdk.io/depinject"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/pokt-network/sendtokens/pkg/client"
	querytypes "github.com/pokt-network/sendtokens/pkg/client/query/types"
	"github.com/pokt-network/sendtokens/pkg/encoding"
)

var _ client.TxQueryClient = (*txQuerier)(nil)

// txQuerier looks committed transactions up by hash through the CometBFT RPC
// client of the query context.
type txQuerier struct {
	clientCtx querytypes.Context
}

// NewTxQuerier returns a new instance of a client.TxQueryClient by injecting
// the dependecies provided by the depinject.Config.
//
// Required dependencies:
// - querytypes.Context (with a CometBFT RPC client set)
func NewTxQuerier(deps depinject.Config) (client.TxQueryClient, error) {
	tq := &txQuerier{}

	if err := depinject.Inject(
		deps,
		&tq.clientCtx,
	); err != nil {
		return nil, err
	}

	return tq, nil
}

// GetTx returns the committed tx with the given hex hash. The hash is
// normalized first, so upper case and 0x prefixed hashes are accepted.
func (tq *txQuerier) GetTx(
	ctx context.Context,
	txHashHex string,
) (*cosmostypes.TxResponse, error) {
	txHash, err := encoding.TxHashHexToBytes(txHashHex)
	if err != nil {
		return nil, ErrQueryTx.Wrapf("%s", err)
	}

	node, err := cosmosclient.Context(tq.clientCtx).GetNode()
	if err != nil {
		return nil, ErrQueryTx.Wrapf("%s", err)
	}

	resTx, err := node.Tx(ctx, txHash, false)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, ErrQueryTxNotFound.Wrapf("hash: %s", encoding.DisplayTxHash(txHashHex))
		}
		return nil, ErrQueryTx.Wrapf("hash: %s [%v]", encoding.DisplayTxHash(txHashHex), err)
	}

	// The tx body is not decoded: callers only need the execution result.
	return cosmostypes.NewResponseResultTx(resTx, nil, ""), nil
}
