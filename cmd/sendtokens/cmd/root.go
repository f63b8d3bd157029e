package cmd

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokt-network/sendtokens/app"
	"github.com/pokt-network/sendtokens/cmd/flags"
	"github.com/pokt-network/sendtokens/cmd/logger"
	"github.com/pokt-network/sendtokens/cmd/signals"
	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/transfer"
	"github.com/pokt-network/sendtokens/telemetry"
)

const (
	// envPrefix is the viper env prefix, e.g. SENDTOKENS_NODE sets --node.
	envPrefix = "SENDTOKENS"

	// mnemonicEnvVar is read without the prefix.
	mnemonicEnvVar = "MNEMONIC"

	// dotEnvFile is loaded from the working directory, if present, before the
	// environment is read. It never overrides variables which are already set.
	dotEnvFile = ".env"

	configFileName = app.Name

	metricsJobName      = app.Name
	metricsPushDeadline = 10 * time.Second
)

// NewRootCmd creates the sendtokens command.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var configDir string

	rootCmd := &cobra.Command{
		Use:   app.Name + " <recipient> [memo]",
		Short: "Send tokens to an address on a Cosmos SDK chain",
		Long: `Send tokens from the account derived from MNEMONIC to <recipient>.

The sending account must exist on chain and hold tokens. It is looked up before
its balance, so an address which never received tokens is reported as one which
"does not exist on chain" rather than as an empty balance. The transfer is
signed, broadcast to the node, and confirmed once it is included in a block.

The sender, recipient, amount, memo and balance are logged. Only the result (tx
hash, gas used and height) is printed to stdout.

Settings are read, in order of precedence, from flags, SENDTOKENS_* environment
variables, and a sendtokens.yaml config file. The mnemonic is read from the
MNEMONIC environment variable, which may be set in a .env file.

Failures are logged together with a possible solution. The exit code is 0 unless
--fail-on-error is set.`,
		Example: `MNEMONIC="..." sendtokens cosmos1c3y4q50cdyaa5mpfaa2k8rx33ydywl35hsvh0d "hello"

# Estimate gas and print the result as JSON:
sendtokens cosmos1c3y4q50cdyaa5mpfaa2k8rx33ydywl35hsvh0d --gas auto --gas-prices 0.025token -o json`,
		Args:              cobra.RangeArgs(1, 2),
		SilenceErrors:     true,
		PersistentPreRunE: logger.PreRunESetup,
		PersistentPostRun: logger.PostRunTeardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, v, configDir, args)
		},
	}

	rootCmd.Flags().StringVar(&configDir, flags.FlagConfig, "", flags.FlagConfigUsage)
	logger.AddFlags(rootCmd.PersistentFlags())

	if err := flags.BindFlags(v, rootCmd.Flags(), transferFlagDescriptors()...); err != nil {
		panic(err)
	}

	return rootCmd
}

func transferFlagDescriptors() []flags.FlagDescriptor {
	defaults := transfer.DefaultConfig()

	return []flags.FlagDescriptor{
		{FlagName: flags.FlagNode, ConfigKey: "node", Default: defaults.Node, Description: flags.FlagNodeUsage},
		{FlagName: flags.FlagChainID, ConfigKey: "chain_id", Default: defaults.ChainID, Description: flags.FlagChainIDUsage},
		{FlagName: flags.FlagAmount, ConfigKey: "amount", Default: defaults.Amount, Description: flags.FlagAmountUsage},
		{FlagName: flags.FlagFees, ConfigKey: "fees", Default: defaults.Fees, Description: flags.FlagFeesUsage},
		{FlagName: flags.FlagGas, ConfigKey: "gas", Default: defaults.Gas, Description: flags.FlagGasUsage},
		{FlagName: flags.FlagGasPrices, ConfigKey: "gas_prices", Default: defaults.GasPrices, Description: flags.FlagGasPricesUsage},
		{FlagName: flags.FlagGasAdjustment, ConfigKey: "gas_adjustment", Default: defaults.GasAdjustment, Description: flags.FlagGasAdjustmentUsage},
		{FlagName: flags.FlagAddressPrefix, ConfigKey: "address_prefix", Default: defaults.AddressPrefix, Description: flags.FlagAddressPrefixUsage},
		{FlagName: flags.FlagHDPath, ConfigKey: "hd_path", Default: defaults.HDPath, Description: flags.FlagHDPathUsage},
		{FlagName: flags.FlagBroadcastTimeout, ConfigKey: "broadcast_timeout", Default: defaults.BroadcastTimeout, Description: flags.FlagBroadcastTimeoutUsage},
		{FlagName: flags.FlagPollInterval, ConfigKey: "poll_interval", Default: defaults.PollInterval, Description: flags.FlagPollIntervalUsage},
		{FlagName: flags.FlagOutput, Shorthand: flags.FlagOutputShort, ConfigKey: "output", Default: defaults.Output, Description: flags.FlagOutputUsage},
		{FlagName: flags.FlagMetricsPushgateway, ConfigKey: "metrics_pushgateway", Default: defaults.MetricsPushgateway, Description: flags.FlagMetricsPushgatewayUsage},
		{FlagName: flags.FlagFailOnError, ConfigKey: "fail_on_error", Default: defaults.FailOnError, Description: flags.FlagFailOnErrorUsage},
	}
}

// runSend runs the setup and transfer phases. Their errors are logged with
// hints and do not escape, so that the process exits with code 0 unless
// --fail-on-error is set.
func runSend(cmd *cobra.Command, v *viper.Viper, configDir string, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	log := polylog.Ctx(ctx)
	stopSignals := signals.GoOnExitSignal(log, cancel)
	defer stopSignals()

	recipient := args[0]
	var memo string
	if len(args) > 1 {
		memo = args[1]
	}

	cfg, err := loadConfig(v, configDir)
	if err != nil {
		handleError(log, v, "setup error", err, transfer.SetupHints(err))
		return nil
	}
	defer pushMetrics(ctx, log, cfg)

	session, err := setup(ctx, cfg)
	if err != nil {
		telemetry.TransferCounter(telemetry.TransferStatusSetupError)
		handleError(log, v, "setup error", err, transfer.SetupHints(err))
		return nil
	}

	// Validated by cfg.Validate in loadConfig.
	amount, _ := cfg.AmountCoins()

	result, err := session.sender.Send(ctx, transfer.Transfer{
		Recipient: recipient,
		Amount:    amount,
		Memo:      memo,
	})
	if err != nil {
		handleError(log, v, "transaction failed", err, transfer.TransferHints(err))
		return nil
	}

	if err = printResult(cmd.OutOrStdout(), session.clientCtx, cfg.Output, result); err != nil {
		handleError(log, v, "printing result", err, nil)
	}
	return nil
}

// loadConfig merges the .env file, environment, config file and flags, then
// decodes and validates the result.
func loadConfig(v *viper.Viper, configDir string) (*transfer.Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, transfer.ErrTransferInvalidConfig.Wrapf("loading %s: %s", dotEnvFile, err)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv("mnemonic", mnemonicEnvVar, envPrefix+"_"+mnemonicEnvVar); err != nil {
		return nil, err
	}

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(app.DefaultHome)
		v.AddConfigPath(".")
	}

	// It's okay if the config file doesn't exist; configuration MAY be done
	// via flags and environment variables only.
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil, transfer.ErrTransferInvalidConfig.Wrapf("reading config file: %s", err)
	}

	cfg, err := transfer.DecodeConfig(v.AllSettings())
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// handleError logs a handled error and its hints, and records a non-zero exit
// code if --fail-on-error is set.
func handleError(log polylog.Logger, v *viper.Viper, msg string, err error, hints []string) {
	log.Error().Err(err).Msg(msg)
	for _, hint := range hints {
		log.Info().Str("solution", hint).Msg("possible solution")
	}

	if v.GetBool("fail_on_error") {
		signals.ExitCode = 1
	}
}

func pushMetrics(ctx context.Context, log polylog.Logger, cfg *transfer.Config) {
	if cfg.MetricsPushgateway == "" {
		return
	}

	// The run context may already be cancelled by a signal.
	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsPushDeadline)
	defer cancel()

	if err := telemetry.PushMetrics(pushCtx, cfg.MetricsPushgateway, metricsJobName); err != nil {
		log.Warn().Err(err).Str("pushgateway", cfg.MetricsPushgateway).Msg("unable to push metrics")
	}
}
