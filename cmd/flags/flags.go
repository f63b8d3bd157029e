package flags

const (
	FlagConfig      = "config"
	FlagConfigUsage = "Directory containing sendtokens.yaml; defaults to $HOME/.sendtokens, then the working directory"

	FlagLogLevel      = "log-level"
	FlagLogLevelUsage = "The logging level (debug|info|warn|error)"
	DefaultLogLevel   = "info"

	FlagLogOutput      = "log-output"
	FlagLogOutputUsage = "The logging output (file path); defaults to stderr"
	DefaultLogOutput   = "-"

	FlagLogFormat      = "log-format"
	FlagLogFormatUsage = "The logging format (text|json)"
	DefaultLogFormat   = "text"

	FlagLogBackend      = "log-backend"
	FlagLogBackendUsage = "The logging library (zerolog|zap)"
	DefaultLogBackend   = "zerolog"

	FlagNode      = "node"
	FlagNodeUsage = "CometBFT RPC endpoint of the chain"

	FlagChainID      = "chain-id"
	FlagChainIDUsage = "Chain ID to sign for; discovered from the node status when empty"

	FlagAmount      = "amount"
	FlagAmountUsage = "Amount of tokens to send (e.g. 1token)"

	FlagFees      = "fees"
	FlagFeesUsage = "Fees to pay (e.g. 5000token); 5000token when neither --fees nor --gas-prices is set"

	FlagGas      = "gas"
	FlagGasUsage = "Gas limit of the tx, or \"auto\" to estimate it by simulation"

	FlagGasPrices      = "gas-prices"
	FlagGasPricesUsage = "Gas prices from which the fee is derived (e.g. 0.025token); excludes --fees"

	FlagGasAdjustment      = "gas-adjustment"
	FlagGasAdjustmentUsage = "Multiplier applied to the simulated gas when --gas=auto"

	FlagAddressPrefix      = "address-prefix"
	FlagAddressPrefixUsage = "Bech32 prefix of account addresses"

	FlagHDPath      = "hd-path"
	FlagHDPathUsage = "BIP-44 derivation path of the sending key"

	FlagBroadcastTimeout      = "broadcast-timeout"
	FlagBroadcastTimeoutUsage = "How long to wait for the tx to be included in a block"

	FlagPollInterval      = "poll-interval"
	FlagPollIntervalUsage = "How often to query the node for the pending tx"

	FlagOutput      = "output"
	FlagOutputShort = "o"
	FlagOutputUsage = "Result output format (text|json)"

	FlagMetricsPushgateway      = "metrics-pushgateway"
	FlagMetricsPushgatewayUsage = "Prometheus pushgateway URL to push run metrics to; disabled when empty"

	FlagFailOnError      = "fail-on-error"
	FlagFailOnErrorUsage = "Exit with code 1 when the setup or the transfer fails"
)
