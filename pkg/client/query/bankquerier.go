package query

import (
	"context"

	"cosmossdk.io/depinject"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	grpc "github.com/cosmos/gogoproto/grpc"

	"github.com/pokt-network/sendtokens/pkg/client"
)

var _ client.BankQueryClient = (*bankQuerier)(nil)

// bankQuerier is a wrapper around the banktypes.QueryClient that enables the
// querying of onchain balance information.
type bankQuerier struct {
	clientConn  grpc.ClientConn
	bankQuerier banktypes.QueryClient
}

// NewBankQuerier returns a new instance of a client.BankQueryClient by
// injecting the dependecies provided by the depinject.Config.
//
// Required dependencies:
// - grpc.ClientConn
func NewBankQuerier(deps depinject.Config) (client.BankQueryClient, error) {
	bq := &bankQuerier{}

	if err := depinject.Inject(
		deps,
		&bq.clientConn,
	); err != nil {
		return nil, err
	}

	bq.bankQuerier = banktypes.NewQueryClient(NewGRPCClientWithMetrics(bq.clientConn))

	return bq, nil
}

// GetAllBalances returns every balance of the given address, following
// pagination until the last page. An address without any balance yields an
// empty (non-nil) set of coins.
func (bq *bankQuerier) GetAllBalances(
	ctx context.Context,
	address string,
) (cosmostypes.Coins, error) {
	balances := cosmostypes.NewCoins()

	var nextKey []byte
	for {
		req := &banktypes.QueryAllBalancesRequest{
			Address:    address,
			Pagination: &query.PageRequest{Key: nextKey},
		}
		res, err := bq.bankQuerier.AllBalances(ctx, req)
		if err != nil {
			return nil, ErrQueryBalances.Wrapf("address: %s [%v]", address, err)
		}

		balances = balances.Add(res.Balances...)

		if res.Pagination == nil || len(res.Pagination.NextKey) == 0 {
			return balances, nil
		}
		nextKey = res.Pagination.NextKey
	}
}
