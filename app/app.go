package app

import (
	"os"
	"path/filepath"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

const (
	// Name is the name of the binary and the prefix of its environment variables.
	Name = "sendtokens"

	// DefaultAccountAddressPrefix is the bech32 human readable part used when
	// no other prefix is configured.
	DefaultAccountAddressPrefix = "cosmos"
)

// DefaultHome is the default directory searched for a sendtokens config file.
var DefaultHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultHome = filepath.Join(userHomeDir, "."+Name)
}

// InitSDKConfig sets the bech32 prefixes of the process-wide cosmos-sdk config
// for the given account address prefix (e.g. "cosmos" -> "cosmosvaloper", ...).
// It MUST be called before any address is derived or parsed.
func InitSDKConfig(accountAddressPrefix string) {
	var (
		accountPubKeyPrefix    = accountAddressPrefix + "pub"
		validatorAddressPrefix = accountAddressPrefix + "valoper"
		validatorPubKeyPrefix  = accountAddressPrefix + "valoperpub"
		consNodeAddressPrefix  = accountAddressPrefix + "valcons"
		consNodePubKeyPrefix   = accountAddressPrefix + "valconspub"
	)

	config := cosmostypes.GetConfig()
	config.SetBech32PrefixForAccount(accountAddressPrefix, accountPubKeyPrefix)
	config.SetBech32PrefixForValidator(validatorAddressPrefix, validatorPubKeyPrefix)
	config.SetBech32PrefixForConsensusNode(consNodeAddressPrefix, consNodePubKeyPrefix)
}
