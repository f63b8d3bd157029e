package types

import cosmosclient "github.com/cosmos/cosmos-sdk/client"

// Context is used to distinguish a cosmosclient.Context intended for use in
// transactions from others when supplied through depinject.
type Context cosmosclient.Context
