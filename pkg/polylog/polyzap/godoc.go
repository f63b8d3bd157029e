// Package polyzap provides a polylog.Logger implementation backed by zap.
// It is selected with --log-backend=zap and is interchangeable with polyzero.
package polyzap
