package query

import (
	"context"
	"strings"

	"cosmossdk.io/depinject"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	accounttypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	grpc "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pokt-network/sendtokens/pkg/client"
)

var _ client.AccountQueryClient = (*accQuerier)(nil)

type accQuerier struct {
	clientConn     grpc.ClientConn
	accountQuerier accounttypes.QueryClient
}

// NewAccountQuerier returns a new instance of a client.AccountQueryClient by
// injecting the dependecies provided by the depinject.Config.
//
// Required dependencies:
// - grpc.ClientConn
func NewAccountQuerier(
	deps depinject.Config,
) (client.AccountQueryClient, error) {
	aq := &accQuerier{}

	if err := depinject.Inject(
		deps,
		&aq.clientConn,
	); err != nil {
		return nil, err
	}

	aq.accountQuerier = accounttypes.NewQueryClient(NewGRPCClientWithMetrics(aq.clientConn))

	return aq, nil
}

// GetAccount returns the onchain account with the given address.
//
// An account only exists onchain once it has received tokens; querying any
// other address returns ErrQueryAccountNotFound.
func (aq *accQuerier) GetAccount(
	ctx context.Context,
	address string,
) (cosmostypes.AccountI, error) {
	req := &accounttypes.QueryAccountRequest{Address: address}
	res, err := aq.accountQuerier.Account(ctx, req)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrQueryAccountNotFound.Wrapf("account %s does not exist on chain", address)
		}
		return nil, ErrQueryAccount.Wrapf("address: %s [%v]", address, err)
	}

	var acc cosmostypes.AccountI
	if err = accountUnpacker.UnpackAny(res.Account, &acc); err != nil {
		return nil, ErrQueryUnableToDeserializeAccount.Wrapf("address: %s [%v]", address, err)
	}
	return acc, nil
}

// isNotFound reports whether err is a gRPC NotFound status. Errors relayed
// through ABCI queries are not always mapped onto gRPC codes, so the message
// is checked as well.
func isNotFound(err error) bool {
	if status.Code(err) == codes.NotFound {
		return true
	}
	return strings.Contains(err.Error(), "not found")
}
