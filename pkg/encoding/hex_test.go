package encoding_test

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/pkg/encoding"
)

func TestNormalizeTxHashHex(t *testing.T) {
	tests := []struct {
		desc     string
		txHash   string
		expected string
	}{
		{desc: "upper case", txHash: "ABCDEF01", expected: "abcdef01"},
		{desc: "0x prefix", txHash: "0xABCDEF01", expected: "abcdef01"},
		{desc: "surrounding whitespace", txHash: "  abcdef01\n", expected: "abcdef01"},
		{desc: "already normalized", txHash: "abcdef01", expected: "abcdef01"},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require.Equal(t, test.expected, encoding.NormalizeTxHashHex(test.txHash))
		})
	}
}

func TestTxHashRoundTrip(t *testing.T) {
	txBz := []byte("signed tx bytes")
	expectedHash := sha256.Sum256(txBz)

	txHashHex := encoding.TxBytesToNormalizedHash(txBz)
	require.Equal(t, encoding.TxHashBytesToNormalizedHex(expectedHash[:]), txHashHex)
	require.Equal(t, strings.ToUpper(txHashHex), encoding.DisplayTxHash(txHashHex))

	txHash, err := encoding.TxHashHexToBytes(encoding.DisplayTxHash(txHashHex))
	require.NoError(t, err)
	require.Equal(t, expectedHash[:], txHash)
}

func TestTxHashHexToBytes_Invalid(t *testing.T) {
	_, err := encoding.TxHashHexToBytes("not-hex")
	require.ErrorIs(t, err, encoding.ErrEncodingInvalidTxHash)

	_, err = encoding.TxHashHexToBytes("abcd")
	require.ErrorIs(t, err, encoding.ErrEncodingInvalidTxHash)
}
