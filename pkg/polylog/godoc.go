// Package polylog is a small logging facade whose API follows zerolog's
// event-builder style. Implementations live in sub-packages:
//   - polyzero: backed by github.com/rs/zerolog (default)
//   - polyzap: backed by go.uber.org/zap
//
// Callers depend on polylog.Logger only, so the backend can be selected at
// runtime (see the --log-backend flag).
package polylog
