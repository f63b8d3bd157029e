package testclient

import (
	"context"
	"fmt"
	"sync"

	errorsmod "cosmossdk.io/errors"
	abci "github.com/cometbft/cometbft/abci/types"
	cometbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
	comettypes "github.com/cometbft/cometbft/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/gogoproto/proto"
)

const (
	AccountQueryPath     = "/cosmos.auth.v1beta1.Query/Account"
	AllBalancesQueryPath = "/cosmos.bank.v1beta1.Query/AllBalances"
	SimulateQueryPath    = "/cosmos.tx.v1beta1.Service/Simulate"

	// FakeNodeInclusionHeight is the height at which the fake node includes
	// every accepted tx.
	FakeNodeInclusionHeight = 42
)

// QueryHandler answers an ABCI query with the request bytes it received.
// Errors registered with cosmossdk.io/errors keep their ABCI code, so that
// e.g. sdkerrors.ErrKeyNotFound reaches the client as a gRPC NotFound.
type QueryHandler func(reqBz []byte) (proto.Message, error)

var _ cosmosclient.CometRPC = (*FakeNode)(nil)

// FakeNode is an in-process CometBFT RPC client which serves the ABCI queries,
// broadcasts and tx lookups issued by a cosmos-sdk client context. Every
// accepted tx is immediately included at FakeNodeInclusionHeight.
//
// Methods which are not overridden panic through the nil embedded interface.
type FakeNode struct {
	cosmosclient.CometRPC

	network string

	mu       sync.Mutex
	handlers map[string]QueryHandler
	txs      map[string]*cometrpctypes.ResultTx
	// checkTxCode is the code returned for every broadcast; 0 accepts the tx.
	checkTxCode uint32
	gasUsed     int64
	queries     []string
	broadcasts  []comettypes.Tx
}

// NewFakeNode returns a FakeNode which reports network as its chain ID.
func NewFakeNode(network string) *FakeNode {
	return &FakeNode{
		network:  network,
		handlers: make(map[string]QueryHandler),
		txs:      make(map[string]*cometrpctypes.ResultTx),
		gasUsed:  61_234,
	}
}

// HandleQuery serves the ABCI query at path with handler.
func (node *FakeNode) HandleQuery(path string, handler QueryHandler) {
	node.mu.Lock()
	defer node.mu.Unlock()

	node.handlers[path] = handler
}

// WithAccount serves account (number 1, sequence 0) and its balances.
// A nil balances serves an empty balance.
func (node *FakeNode) WithAccount(addr cosmostypes.AccAddress, balances cosmostypes.Coins) *FakeNode {
	node.HandleQuery(AccountQueryPath, func([]byte) (proto.Message, error) {
		accountAny, err := codectypes.NewAnyWithValue(authtypes.NewBaseAccount(addr, nil, 1, 0))
		if err != nil {
			return nil, err
		}
		return &authtypes.QueryAccountResponse{Account: accountAny}, nil
	})
	node.HandleQuery(AllBalancesQueryPath, func([]byte) (proto.Message, error) {
		return &banktypes.QueryAllBalancesResponse{Balances: balances}, nil
	})
	return node
}

// WithSimulatedGas answers simulations with gasUsed.
func (node *FakeNode) WithSimulatedGas(gasUsed uint64) *FakeNode {
	node.HandleQuery(SimulateQueryPath, func([]byte) (proto.Message, error) {
		return &txtypes.SimulateResponse{
			GasInfo: &cosmostypes.GasInfo{GasUsed: gasUsed},
			Result:  &cosmostypes.Result{},
		}, nil
	})
	return node
}

// WithCheckTxCode makes every broadcast fail CheckTx with code.
func (node *FakeNode) WithCheckTxCode(code uint32) *FakeNode {
	node.mu.Lock()
	defer node.mu.Unlock()

	node.checkTxCode = code
	return node
}

// Queries returns the paths of all ABCI queries received so far, in order.
func (node *FakeNode) Queries() []string {
	node.mu.Lock()
	defer node.mu.Unlock()

	return append([]string(nil), node.queries...)
}

// Broadcasts returns the bytes of all txs broadcast so far.
func (node *FakeNode) Broadcasts() []comettypes.Tx {
	node.mu.Lock()
	defer node.mu.Unlock()

	return append([]comettypes.Tx(nil), node.broadcasts...)
}

func (node *FakeNode) Status(context.Context) (*cometrpctypes.ResultStatus, error) {
	status := &cometrpctypes.ResultStatus{}
	status.NodeInfo.Network = node.network
	return status, nil
}

func (node *FakeNode) ABCIQueryWithOptions(
	_ context.Context,
	path string,
	data cometbytes.HexBytes,
	_ rpcclient.ABCIQueryOptions,
) (*cometrpctypes.ResultABCIQuery, error) {
	node.mu.Lock()
	node.queries = append(node.queries, path)
	handler, ok := node.handlers[path]
	node.mu.Unlock()

	if !ok {
		handler = func([]byte) (proto.Message, error) {
			return nil, sdkerrors.ErrUnknownRequest.Wrapf("no handler for %s", path)
		}
	}

	res, err := handler(data)
	if err != nil {
		codespace, code, log := errorsmod.ABCIInfo(err, false)
		return &cometrpctypes.ResultABCIQuery{
			Response: abci.ResponseQuery{Codespace: codespace, Code: code, Log: log},
		}, nil
	}

	resBz, err := proto.Marshal(res)
	if err != nil {
		return nil, err
	}
	return &cometrpctypes.ResultABCIQuery{
		Response: abci.ResponseQuery{Value: resBz, Height: FakeNodeInclusionHeight},
	}, nil
}

func (node *FakeNode) ABCIQuery(
	ctx context.Context,
	path string,
	data cometbytes.HexBytes,
) (*cometrpctypes.ResultABCIQuery, error) {
	return node.ABCIQueryWithOptions(ctx, path, data, rpcclient.DefaultABCIQueryOptions)
}

func (node *FakeNode) BroadcastTxSync(_ context.Context, tx comettypes.Tx) (*cometrpctypes.ResultBroadcastTx, error) {
	node.mu.Lock()
	defer node.mu.Unlock()

	node.broadcasts = append(node.broadcasts, tx)
	txHash := cometbytes.HexBytes(tx.Hash())
	if node.checkTxCode != 0 {
		return &cometrpctypes.ResultBroadcastTx{
			Code:      node.checkTxCode,
			Codespace: sdkerrors.RootCodespace,
			Log:       "spendable balance 0token is smaller than 5000token: insufficient funds",
			Hash:      txHash,
		}, nil
	}

	node.txs[txHash.String()] = &cometrpctypes.ResultTx{
		Hash:     txHash,
		Height:   FakeNodeInclusionHeight,
		Tx:       tx,
		TxResult: abci.ExecTxResult{GasUsed: node.gasUsed},
	}
	return &cometrpctypes.ResultBroadcastTx{Hash: txHash}, nil
}

func (node *FakeNode) Tx(_ context.Context, hash []byte, _ bool) (*cometrpctypes.ResultTx, error) {
	node.mu.Lock()
	defer node.mu.Unlock()

	resTx, ok := node.txs[cometbytes.HexBytes(hash).String()]
	if !ok {
		return nil, fmt.Errorf("RPC error -32603 - Internal error: tx (%X) not found", hash)
	}
	return resTx, nil
}
