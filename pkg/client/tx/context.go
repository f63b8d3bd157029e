package tx

import (
	"context"

	"cosmossdk.io/depinject"
	cometrpctypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostx "github.com/cosmos/cosmos-sdk/client/tx"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx"
	authclient "github.com/cosmos/cosmos-sdk/x/auth/client"
	"google.golang.org/grpc"

	"github.com/pokt-network/sendtokens/pkg/client"
	txtypes "github.com/pokt-network/sendtokens/pkg/client/tx/types"
)

// maxGRPCMsgSize is the maximum message size the gRPC client can send and
// receive when simulating transactions.
const maxGRPCMsgSize = 10 * 1024 * 1024 // 10MB

var _ client.TxContext = (*cosmosTxContext)(nil)

// cosmosTxContext is an internal implementation of the client.TxContext interface.
// It provides methods related to transaction context within the Cosmos SDK.
type cosmosTxContext struct {
	// Holds cosmos-sdk client context.
	// (see: https://pkg.go.dev/github.com/cosmos/cosmos-sdk/client#Context)
	clientCtx txtypes.Context
	// Holds the cosmos-sdk transaction factory.
	// (see: https://pkg.go.dev/github.com/cosmos/cosmos-sdk/client/tx#Factory)
	txFactory cosmostx.Factory
}

// NewTxContext initializes a new cosmosTxContext with the given dependencies.
// It uses depinject to populate its members and returns a client.TxContext
// interface type.
//
// Required dependencies:
//   - txtypes.Context
//   - cosmostx.Factory
func NewTxContext(deps depinject.Config) (client.TxContext, error) {
	txCtx := cosmosTxContext{}

	if err := depinject.Inject(
		deps,
		&txCtx.clientCtx,
		&txCtx.txFactory,
	); err != nil {
		return nil, err
	}

	return txCtx, nil
}

// GetKeyring returns the cosmos-sdk client Keyring associated with the transaction factory.
func (txCtx cosmosTxContext) GetKeyring() cosmoskeyring.Keyring {
	return txCtx.txFactory.Keybase()
}

// SignTx signs the provided transaction using the given key name.
//
// Unless offline is set, the signer's account number and sequence are read
// from the chain via the client context's AccountRetriever; a missing account
// surfaces here as an error from the auth module.
// Signing itself is delegated to the cosmos-sdk auth module client SignTx function.
// (see: https://pkg.go.dev/github.com/cosmos/cosmos-sdk/x/auth/client#SignTx)
func (txCtx cosmosTxContext) SignTx(
	ctx context.Context,
	signingKeyName string,
	txBuilder cosmosclient.TxBuilder,
	offline, overwriteSig bool,
) error {
	clientCtx := txCtx.GetClientCtx().WithCmdContext(ctx)
	txf := txCtx.txFactory

	if !offline {
		keyRecord, err := txCtx.GetKeyring().Key(signingKeyName)
		if err != nil {
			return ErrNoSuchSigningKey.Wrapf("name %q: %s", signingKeyName, err)
		}

		signerAddr, err := keyRecord.GetAddress()
		if err != nil {
			return ErrSigningKeyAddr.Wrapf("name %q: %s", signingKeyName, err)
		}

		accNum, seq, err := clientCtx.AccountRetriever.GetAccountNumberSequence(clientCtx, signerAddr)
		if err != nil {
			return err
		}
		txf = txf.WithAccountNumber(accNum).WithSequence(seq)
	}

	// The account number and sequence are already populated at this point.
	return authclient.SignTx(
		txf,
		clientCtx,
		signingKeyName,
		txBuilder,
		true, overwriteSig,
	)
}

// NewTxBuilder returns a new transaction builder instance using the cosmos-sdk client transaction config.
func (txCtx cosmosTxContext) NewTxBuilder() cosmosclient.TxBuilder {
	return txCtx.clientCtx.TxConfig.NewTxBuilder()
}

// EncodeTx encodes the provided tx and returns its bytes representation.
func (txCtx cosmosTxContext) EncodeTx(txBuilder cosmosclient.TxBuilder) ([]byte, error) {
	return txCtx.clientCtx.TxConfig.TxEncoder()(txBuilder.GetTx())
}

// BroadcastTx broadcasts the given transaction to the network, blocking until the check-tx
// ABCI operation completes and returns a TxResponse of the transaction status at that point in time.
func (txCtx cosmosTxContext) BroadcastTx(txBytes []byte) (*cosmostypes.TxResponse, error) {
	clientCtx := cosmosclient.Context(txCtx.clientCtx)
	// BroadcastTxSync is used to capture any transaction error that occurs during
	// the check-tx ABCI operation, otherwise errors would not be returned.
	return clientCtx.BroadcastTxSync(txBytes)
}

// QueryTx queries the transaction based on its hash and optionally provides proof
// of the transaction. It returns the transaction query result.
func (txCtx cosmosTxContext) QueryTx(
	ctx context.Context,
	txHash []byte,
	prove bool,
) (*cometrpctypes.ResultTx, error) {
	return txCtx.clientCtx.Client.Tx(ctx, txHash, prove)
}

// GetClientCtx returns the cosmos-sdk client context associated with the transaction context.
func (txCtx cosmosTxContext) GetClientCtx() cosmosclient.Context {
	return cosmosclient.Context(txCtx.clientCtx)
}

// GetSimulatedTxGas returns the gas used by the given messages when simulated
// by the node, without any adjustment.
func (txCtx cosmosTxContext) GetSimulatedTxGas(
	ctx context.Context,
	signingKeyName string,
	msgs ...cosmostypes.Msg,
) (uint64, error) {
	clientCtx := txCtx.GetClientCtx()
	keyRecord, err := txCtx.GetKeyring().Key(signingKeyName)
	if err != nil {
		return 0, ErrNoSuchSigningKey.Wrapf("name %q: %s", signingKeyName, err)
	}

	accAddress, err := keyRecord.GetAddress()
	if err != nil {
		return 0, ErrSigningKeyAddr.Wrapf("name %q: %s", signingKeyName, err)
	}

	accountRetriever := txCtx.clientCtx.AccountRetriever
	accNum, seq, err := accountRetriever.GetAccountNumberSequence(clientCtx, accAddress)
	if err != nil {
		return 0, err
	}

	txf := txCtx.txFactory.
		WithSimulateAndExecute(true).
		WithFromName(signingKeyName).
		WithAccountNumber(accNum).
		WithSequence(seq)

	txBytes, err := txf.BuildSimTx(msgs...)
	if err != nil {
		return 0, ErrSimulateTx.Wrapf("building simulation tx: %s", err)
	}

	txSvcClient := tx.NewServiceClient(clientCtx)

	simRequest := &tx.SimulateRequest{TxBytes: txBytes}
	gRPCOpts := []grpc.CallOption{
		grpc.MaxCallSendMsgSize(maxGRPCMsgSize),
		grpc.MaxCallRecvMsgSize(maxGRPCMsgSize),
	}
	simRes, err := txSvcClient.Simulate(ctx, simRequest, gRPCOpts...)
	if err != nil {
		return 0, ErrSimulateTx.Wrapf("%s", err)
	}

	// The gas adjustment is applied by the tx client only.
	return simRes.GasInfo.GasUsed, nil
}
