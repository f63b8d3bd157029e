// Package query provides the clients used to read chain state over the node's
// gRPC-over-ABCI query interface (bank balances, accounts) and its CometBFT
// RPC (committed transactions, node status).
//
// Each client wraps a single cosmos-sdk query service and maps its failures
// onto the sentinel errors declared in errors.go.
package query
