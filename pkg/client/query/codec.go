package query

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	accounttypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// accountUnpacker resolves the Any returned by the auth Account query into a
// concrete account. Only the base and module accounts of the auth module, and
// their public keys, are registered.
var accountUnpacker codectypes.AnyUnpacker = newAccountRegistry()

func newAccountRegistry() codectypes.InterfaceRegistry {
	registry := codectypes.NewInterfaceRegistry()
	accounttypes.RegisterInterfaces(registry)
	cryptocodec.RegisterInterfaces(registry)
	return registry
}
