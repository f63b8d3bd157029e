package query

import (
	"context"

	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
)

// StatusClient is the subset of the CometBFT RPC client needed to discover
// the node's chain ID.
type StatusClient interface {
	Status(ctx context.Context) (*cometrpctypes.ResultStatus, error)
}

// GetChainID returns the chain ID reported by the node's /status endpoint.
func GetChainID(ctx context.Context, statusClient StatusClient) (string, error) {
	status, err := statusClient.Status(ctx)
	if err != nil {
		return "", ErrQueryNodeStatus.Wrapf("%s", err)
	}

	if status.NodeInfo.Network == "" {
		return "", ErrQueryNodeStatus.Wrap("node reported an empty chain ID")
	}
	return status.NodeInfo.Network, nil
}
