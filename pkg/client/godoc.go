// Package client defines the interfaces used to talk to a Cosmos SDK node:
// building, signing and broadcasting transactions (TxContext, TxClient) and
// reading chain state (BankQueryClient, AccountQueryClient, TxQueryClient).
//
// Implementations live in the tx and query sub-packages; gomock mocks are
// generated into internal/mocks/mockclient.
package client
