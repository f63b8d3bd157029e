package telemetry

import (
	cosmostelemetry "github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

// MetricNameKeys returns the go-metrics key for the given metric name parts.
// The service name ("sendtokens") is prepended by go-metrics itself, so
// ("event", "type") is exported as `sendtokens_event_type`.
func MetricNameKeys(metrics ...string) []string {
	return append([]string{}, metrics...)
}

// toMetricLabel takes simple key and value of the label to return metrics.Label.
func toMetricLabel(key, value string) metrics.Label {
	return cosmostelemetry.NewLabel(key, value)
}
