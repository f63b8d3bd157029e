package cmd

import (
	"context"

	"cosmossdk.io/depinject"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmosflags "github.com/cosmos/cosmos-sdk/client/flags"
	cosmostx "github.com/cosmos/cosmos-sdk/client/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/gogoproto/grpc"

	"github.com/pokt-network/sendtokens/app"
	"github.com/pokt-network/sendtokens/pkg/client/query"
	querytypes "github.com/pokt-network/sendtokens/pkg/client/query/types"
	"github.com/pokt-network/sendtokens/pkg/client/tx"
	txtypes "github.com/pokt-network/sendtokens/pkg/client/tx/types"
	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/transfer"
	"github.com/pokt-network/sendtokens/pkg/wallet"
	"github.com/pokt-network/sendtokens/telemetry"
)

// newCometClient connects to the CometBFT RPC endpoint of the node. Tests
// replace it with an in-process node.
var newCometClient = func(node string) (cosmosclient.CometRPC, error) {
	return cosmosclient.NewClientFromNode(node)
}

// session holds what the transfer phase needs from the setup phase.
type session struct {
	clientCtx cosmosclient.Context
	sender    *transfer.Sender
}

// setup derives the sending account, connects to the node, builds the
// queriers and the tx client, and checks the account balance.
func setup(ctx context.Context, cfg *transfer.Config) (*session, error) {
	log := polylog.Ctx(ctx)

	if err := telemetry.Init(cfg.MetricsPushgateway != ""); err != nil {
		return nil, err
	}

	app.InitSDKConfig(cfg.AddressPrefix)
	encodingConfig := app.MakeEncodingConfig(cfg.AddressPrefix)

	account, err := wallet.NewAccountFromMnemonic(
		cfg.Mnemonic,
		append(cfg.WalletOptions(), wallet.WithCodec(encodingConfig.Marshaler))...,
	)
	if err != nil {
		return nil, err
	}
	log.Info().Str("address", account.String()).Msg("derived account")

	cometClient, err := newCometClient(cfg.Node)
	if err != nil {
		return nil, err
	}

	chainID := cfg.ChainID
	if chainID == "" {
		if chainID, err = query.GetChainID(ctx, cometClient); err != nil {
			return nil, err
		}
		log.Debug().Str("chain_id", chainID).Msg("discovered chain id from node status")
	}

	clientCtx := cosmosclient.Context{}.
		WithCodec(encodingConfig.Marshaler).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig).
		WithLegacyAmino(encodingConfig.Amino).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithKeyring(account.Keyring).
		WithFromName(account.KeyName).
		WithFromAddress(account.Address).
		WithChainID(chainID).
		WithNodeURI(cfg.Node).
		WithClient(cometClient).
		WithBroadcastMode(cosmosflags.BroadcastSync).
		WithCmdContext(ctx)

	txFactory := cosmostx.Factory{}.
		WithChainID(chainID).
		WithKeybase(account.Keyring).
		WithTxConfig(encodingConfig.TxConfig).
		WithAccountRetriever(clientCtx.AccountRetriever)

	deps := depinject.Supply(
		txtypes.Context(clientCtx),
		querytypes.Context(clientCtx),
		txFactory,
		grpc.ClientConn(clientCtx),
	)

	txCtx, err := tx.NewTxContext(deps)
	if err != nil {
		return nil, err
	}

	txClientOpts, err := cfg.TxClientOptions(account.KeyName)
	if err != nil {
		return nil, err
	}
	txClient, err := tx.NewTxClient(ctx, depinject.Configs(deps, depinject.Supply(txCtx)), txClientOpts...)
	if err != nil {
		return nil, err
	}

	bankQuerier, err := query.NewBankQuerier(deps)
	if err != nil {
		return nil, err
	}
	accountQuerier, err := query.NewAccountQuerier(deps)
	if err != nil {
		return nil, err
	}
	txQuerier, err := query.NewTxQuerier(deps)
	if err != nil {
		return nil, err
	}

	sender, err := transfer.NewSender(
		transfer.WithAccount(account),
		transfer.WithTxClient(txClient),
		transfer.WithBankQueryClient(bankQuerier),
		transfer.WithAccountQueryClient(accountQuerier),
		transfer.WithTxQueryClient(txQuerier),
	)
	if err != nil {
		return nil, err
	}

	if _, err = sender.CheckBalance(ctx); err != nil {
		return nil, err
	}

	return &session{clientCtx: clientCtx, sender: sender}, nil
}
