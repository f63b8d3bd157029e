// Package transfer orchestrates a single token transfer: it checks that the
// sending account exists and holds tokens, signs and broadcasts a bank send,
// waits for the tx to be included in a block, and confirms it by hash.
//
// Errors returned by a Sender can be mapped to human-readable hints with
// SetupHints and TransferHints.
package transfer
