// Package polyzero provides a polylog.Logger implementation backed by zerolog.
// Since polylog mirrors zerolog's event API, this package is a thin wrapper
// which only covers the subset of zerolog used by sendtokens.
package polyzero
