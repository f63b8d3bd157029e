package transfer

import (
	"errors"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/pokt-network/sendtokens/pkg/client/query"
	"github.com/pokt-network/sendtokens/pkg/wallet"
)

const (
	HintFundAccount       = "Please fund your account first with some tokens before trying to send transactions."
	HintCheckMnemonic     = "Check if your mnemonic phrase in .env file is correct."
	HintInsufficientFunds = "Make sure you have enough tokens to cover both the transfer amount and gas fees."
	HintCheckRecipient    = "Check if the recipient address is correct."
)

// hintRule matches an error by sentinel or, for errors which only carry a
// node's log message, by a substring of the message.
type hintRule struct {
	sentinels []error
	substring string
	hint      string
}

var (
	setupHintRules = []hintRule{
		{
			sentinels: []error{query.ErrQueryAccountNotFound},
			substring: "does not exist on chain",
			hint:      HintFundAccount,
		},
		{
			sentinels: []error{wallet.ErrWalletInvalidMnemonic},
			substring: "invalid mnemonic",
			hint:      HintCheckMnemonic,
		},
	}

	transferHintRules = []hintRule{
		{
			sentinels: []error{sdkerrors.ErrInsufficientFunds},
			substring: "insufficient funds",
			hint:      HintInsufficientFunds,
		},
		{
			sentinels: []error{ErrTransferInvalidRecipient, sdkerrors.ErrInvalidAddress},
			substring: "invalid address",
			hint:      HintCheckRecipient,
		},
	}
)

// SetupHints returns the hints matching an error of the setup phase (config,
// wallet, connection and balance check).
func SetupHints(err error) []string {
	return matchHints(err, setupHintRules)
}

// TransferHints returns the hints matching an error of the transfer phase
// (signing, broadcast, inclusion and confirmation).
func TransferHints(err error) []string {
	return matchHints(err, transferHintRules)
}

func matchHints(err error, rules []hintRule) []string {
	if err == nil {
		return nil
	}

	errMsg := strings.ToLower(err.Error())

	var hints []string
	for _, rule := range rules {
		if rule.matches(err, errMsg) {
			hints = append(hints, rule.hint)
		}
	}
	return hints
}

func (rule hintRule) matches(err error, lowerErrMsg string) bool {
	for _, sentinel := range rule.sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return strings.Contains(lowerErrMsg, rule.substring)
}
