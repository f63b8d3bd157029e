package encoding

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                = "encoding"
	ErrEncodingInvalidTxHash = sdkerrors.Register(codespace, 1100, "invalid tx hash")
)
