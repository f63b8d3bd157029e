// Package telemetry instruments transfers with Prometheus metrics.
//
// Two kinds of metrics are exposed through the default Prometheus registry:
//   - promauto collectors (metrics.go) for transfer outcomes, latencies and gas.
//   - go-metrics event counters (event_counters.go) emitted through the
//     cosmos-sdk telemetry package, which are no-ops until Init is called with
//     telemetry enabled.
//
// As a short lived CLI, sendtokens does not serve a /metrics endpoint; metrics
// are pushed to a Prometheus Pushgateway at the end of the run (see PushMetrics).
package telemetry

import (
	"context"

	cosmostelemetry "github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	metricsNamespace = "sendtokens"

	// retentionSeconds is how long go-metrics keeps a series which is not
	// updated; it only needs to outlive a single run.
	retentionSeconds = 600
)

// Init enables the cosmos-sdk (go-metrics) telemetry sink, which registers
// itself with the default Prometheus registry. It is a no-op when enabled is false.
func Init(enabled bool) error {
	if !enabled {
		return nil
	}

	_, err := cosmostelemetry.New(cosmostelemetry.Config{
		ServiceName:             metricsNamespace,
		Enabled:                 true,
		PrometheusRetentionTime: retentionSeconds,
	})
	return err
}

// PushMetrics pushes every metric of the default Prometheus gatherer to the
// Pushgateway at pushgatewayURL under the given job name.
func PushMetrics(ctx context.Context, pushgatewayURL, job string) error {
	return push.New(pushgatewayURL, job).
		Gatherer(prometheus.DefaultGatherer).
		PushContext(ctx)
}

func isTelemetryEnabled() bool {
	return cosmostelemetry.IsTelemetryEnabled()
}
