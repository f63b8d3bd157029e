package transfer

import cosmostypes "github.com/cosmos/cosmos-sdk/types"

// Transfer describes the tokens to send.
type Transfer struct {
	// Recipient is the bech32 address of the receiving account.
	Recipient string
	Amount    cosmostypes.Coins
	Memo      string
}

// Result is the confirmed outcome of a transfer. Its JSON encoding is the
// payload expected by HTTP consumers of the send-tokens API, where height and
// gas are strings.
type Result struct {
	Success     bool   `json:"success"`
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
	TxHash      string `json:"transactionHash"`
	Memo        string `json:"memo"`
	BlockHeight int64  `json:"blockHeight,string"`
	GasUsed     int64  `json:"gasUsed,string"`
	GasWanted   int64  `json:"gasWanted,string"`
}
