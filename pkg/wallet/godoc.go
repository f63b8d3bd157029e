// Package wallet derives the sender account of a transfer from a BIP-39
// mnemonic. The derived key only ever lives in an in-memory keyring; nothing
// is written to disk.
package wallet
