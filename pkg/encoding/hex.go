// Package encoding normalizes transaction hashes so that hashes returned by
// broadcast responses, computed from tx bytes, and passed on the command line
// can be compared and used as map keys.
package encoding

import (
	"encoding/hex"
	"strings"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	comettypes "github.com/cometbft/cometbft/types"
)

// NormalizeTxHashHex lowercases a hex tx hash and strips an optional 0x prefix.
func NormalizeTxHashHex(txHash string) string {
	txHash = strings.TrimSpace(txHash)
	if len(txHash) >= 2 && (txHash[:2] == "0x" || txHash[:2] == "0X") {
		txHash = txHash[2:]
	}
	return strings.ToLower(txHash)
}

// TxHashBytesToNormalizedHex converts a raw tx hash to its normalized hex form.
func TxHashBytesToNormalizedHex(txHash []byte) string {
	return NormalizeTxHashHex(cmtbytes.HexBytes(txHash).String())
}

// TxHashHexToBytes decodes a (possibly non-normalized) hex tx hash.
func TxHashHexToBytes(txHashHex string) ([]byte, error) {
	txHash, err := hex.DecodeString(NormalizeTxHashHex(txHashHex))
	if err != nil {
		return nil, ErrEncodingInvalidTxHash.Wrapf("%q: %s", txHashHex, err)
	}
	if len(txHash) != comettypes.TxKeySize {
		return nil, ErrEncodingInvalidTxHash.Wrapf("%q: expected %d bytes, got %d", txHashHex, comettypes.TxKeySize, len(txHash))
	}
	return txHash, nil
}

// TxBytesToNormalizedHash returns the normalized hex hash of encoded tx bytes,
// as CometBFT computes it.
func TxBytesToNormalizedHash(txBz []byte) string {
	return TxHashBytesToNormalizedHex(comettypes.Tx(txBz).Hash())
}

// DisplayTxHash formats a tx hash the way block explorers and the CometBFT RPC
// print it (upper case hex).
func DisplayTxHash(txHashHex string) string {
	return strings.ToUpper(NormalizeTxHashHex(txHashHex))
}
