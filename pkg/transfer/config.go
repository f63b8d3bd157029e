package transfer

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/multierr"

	"github.com/pokt-network/sendtokens/app"
	"github.com/pokt-network/sendtokens/pkg/client"
	"github.com/pokt-network/sendtokens/pkg/client/tx"
	"github.com/pokt-network/sendtokens/pkg/wallet"
)

const (
	DefaultNode          = "http://34.31.74.109:26657"
	DefaultAmount        = "1token"
	DefaultFees          = "5000token"
	DefaultGas           = "200000"
	DefaultOutput        = OutputText
	DefaultGasAdjustment = tx.DefaultGasAdjustment

	OutputText = "text"
	OutputJSON = "json"
)

// Config holds every setting of a transfer run. It is decoded from the merged
// flag, environment and config file settings with DecodeConfig.
type Config struct {
	// Mnemonic is the secret phrase of the sending account.
	Mnemonic string `mapstructure:"mnemonic"`
	// Node is the CometBFT RPC endpoint, e.g. http://localhost:26657.
	Node string `mapstructure:"node"`
	// ChainID is discovered from the node status when empty.
	ChainID string `mapstructure:"chain_id"`

	Amount string `mapstructure:"amount"`
	// Fees and GasPrices are mutually exclusive. When neither is set,
	// DefaultFees is paid.
	Fees      string `mapstructure:"fees"`
	GasPrices string `mapstructure:"gas_prices"`
	// Gas is either a gas limit or "auto" to estimate it by simulation.
	Gas           string  `mapstructure:"gas"`
	GasAdjustment float64 `mapstructure:"gas_adjustment"`

	AddressPrefix string `mapstructure:"address_prefix"`
	HDPath        string `mapstructure:"hd_path"`

	BroadcastTimeout time.Duration `mapstructure:"broadcast_timeout"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`

	Output             string `mapstructure:"output"`
	MetricsPushgateway string `mapstructure:"metrics_pushgateway"`
	FailOnError        bool   `mapstructure:"fail_on_error"`
}

// DefaultConfig returns a Config with every default applied except the mnemonic.
func DefaultConfig() *Config {
	return &Config{
		Node:             DefaultNode,
		Amount:           DefaultAmount,
		Gas:              DefaultGas,
		GasAdjustment:    DefaultGasAdjustment,
		AddressPrefix:    app.DefaultAccountAddressPrefix,
		HDPath:           wallet.DefaultHDPath,
		BroadcastTimeout: tx.DefaultCommitTimeout,
		PollInterval:     tx.DefaultPollInterval,
		Output:           DefaultOutput,
	}
}

// DecodeConfig decodes settings (e.g. viper's AllSettings) on top of
// DefaultConfig. Durations may be given as strings ("90s") and numbers may be
// given as strings.
func DecodeConfig(settings map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}

	if err = decoder.Decode(settings); err != nil {
		return nil, ErrTransferInvalidConfig.Wrapf("%s", err)
	}
	return cfg, nil
}

// Validate checks every setting and returns all problems found. A missing
// mnemonic is reported as ErrTransferMissingMnemonic.
func (cfg *Config) Validate() error {
	var errs error

	if strings.TrimSpace(cfg.Mnemonic) == "" {
		errs = multierr.Append(errs, ErrTransferMissingMnemonic)
	}

	if err := validateURL(cfg.Node, "http", "https", "tcp"); err != nil {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("node: %s", err))
	}

	if _, err := cfg.AmountCoins(); err != nil {
		errs = multierr.Append(errs, err)
	}

	if cfg.Fees != "" && cfg.GasPrices != "" {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrap("fees and gas_prices are mutually exclusive"))
	}
	if _, err := cosmostypes.ParseCoinsNormalized(cfg.Fees); err != nil {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("fees: %s", err))
	}
	if _, err := cosmostypes.ParseDecCoins(cfg.GasPrices); err != nil {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("gas_prices: %s", err))
	}

	if gasSetting, err := flags.ParseGasSetting(cfg.Gas); err != nil {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("gas: %s", err))
	} else if !gasSetting.Simulate && gasSetting.Gas == 0 {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrap("gas: must be positive or \"auto\""))
	}
	if cfg.GasAdjustment <= 0 {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("gas_adjustment: must be positive, got %g", cfg.GasAdjustment))
	}

	if cfg.AddressPrefix == "" {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrap("address_prefix: must not be empty"))
	}
	if _, err := hd.NewParamsFromPath(cfg.HDPath); err != nil {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("hd_path: %s", err))
	}

	if cfg.BroadcastTimeout <= 0 {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("broadcast_timeout: must be positive, got %s", cfg.BroadcastTimeout))
	}
	if cfg.PollInterval <= 0 || cfg.PollInterval > cfg.BroadcastTimeout {
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf(
			"poll_interval: must be positive and at most broadcast_timeout, got %s", cfg.PollInterval,
		))
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("output: expected %q or %q, got %q", OutputText, OutputJSON, cfg.Output))
	}

	if cfg.MetricsPushgateway != "" {
		if err := validateURL(cfg.MetricsPushgateway, "http", "https"); err != nil {
			errs = multierr.Append(errs, ErrTransferInvalidConfig.Wrapf("metrics_pushgateway: %s", err))
		}
	}

	return errs
}

// AmountCoins parses the amount to transfer.
func (cfg *Config) AmountCoins() (cosmostypes.Coins, error) {
	amount, err := cosmostypes.ParseCoinsNormalized(cfg.Amount)
	if err != nil {
		return nil, ErrTransferInvalidAmount.Wrapf("%q: %s", cfg.Amount, err)
	}
	if amount.Empty() {
		return nil, ErrTransferInvalidAmount.Wrap("amount must not be empty")
	}
	return amount, nil
}

// TxClientOptions converts the gas, fee and inclusion settings into options
// for a tx client signing with keyName.
func (cfg *Config) TxClientOptions(keyName string) ([]client.TxClientOption, error) {
	opts := []client.TxClientOption{
		tx.WithSigningKeyName(keyName),
		tx.WithGasAdjustment(cfg.GasAdjustment),
		tx.WithCommitTimeout(cfg.BroadcastTimeout),
		tx.WithPollInterval(cfg.PollInterval),
	}

	gasSetting, err := flags.ParseGasSetting(cfg.Gas)
	if err != nil {
		return nil, ErrTransferInvalidConfig.Wrapf("gas: %s", err)
	}
	if gasSetting.Simulate {
		opts = append(opts, tx.WithSimulatedGas())
	} else {
		opts = append(opts, tx.WithGasLimit(gasSetting.Gas))
	}

	if cfg.GasPrices != "" {
		gasPrices, err := cosmostypes.ParseDecCoins(cfg.GasPrices)
		if err != nil {
			return nil, ErrTransferInvalidConfig.Wrapf("gas_prices: %s", err)
		}
		return append(opts, tx.WithGasPrices(gasPrices)), nil
	}

	fees := cfg.Fees
	if fees == "" {
		fees = DefaultFees
	}
	feeAmount, err := cosmostypes.ParseCoinsNormalized(fees)
	if err != nil {
		return nil, ErrTransferInvalidConfig.Wrapf("fees: %s", err)
	}
	return append(opts, tx.WithFeeAmount(feeAmount)), nil
}

// WalletOptions returns the key derivation options of the sending account.
func (cfg *Config) WalletOptions() []wallet.AccountOption {
	return []wallet.AccountOption{
		wallet.WithHDPath(cfg.HDPath),
		wallet.WithAddressPrefix(cfg.AddressPrefix),
	}
}

func validateURL(rawURL string, schemes ...string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	for _, scheme := range schemes {
		if parsed.Scheme == scheme && parsed.Host != "" {
			return nil
		}
	}
	return fmt.Errorf("%q must be an absolute %s URL", rawURL, strings.Join(schemes, "|"))
}
