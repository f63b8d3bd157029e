package query

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                          = "query"
	ErrQueryAccountNotFound            = sdkerrors.Register(codespace, 1100, "account not found")
	ErrQueryUnableToDeserializeAccount = sdkerrors.Register(codespace, 1101, "unable to deserialize account")
	ErrQueryBalances                   = sdkerrors.Register(codespace, 1102, "unable to query balances")
	ErrQueryAccount                    = sdkerrors.Register(codespace, 1103, "unable to query account")
	ErrQueryTxNotFound                 = sdkerrors.Register(codespace, 1104, "tx not found")
	ErrQueryTx                         = sdkerrors.Register(codespace, 1105, "unable to query tx")
	ErrQueryNodeStatus                 = sdkerrors.Register(codespace, 1106, "unable to query node status")
)
