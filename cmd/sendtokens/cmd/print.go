package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	cosmosclient "github.com/cosmos/cosmos-sdk/client"

	"github.com/pokt-network/sendtokens/pkg/transfer"
)

// printResult writes the confirmed transfer to out, either as the
// human-readable summary or as a single JSON object.
func printResult(
	out io.Writer,
	clientCtx cosmosclient.Context,
	output string,
	result *transfer.Result,
) error {
	if output == transfer.OutputJSON {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return err
		}
		return clientCtx.WithOutput(out).WithOutputFormat(output).PrintRaw(resultJSON)
	}

	_, err := fmt.Fprintf(out,
		"Transaction sent successfully!\nTransaction hash: %s\n\nTransaction confirmed!\nGas used: %d\nHeight: %d\n",
		result.TxHash, result.GasUsed, result.BlockHeight,
	)
	return err
}
