package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transfer statuses used as the "status" label of transfers_total.
const (
	TransferStatusSuccess    = "success"
	TransferStatusSetupError = "setup_error"
	TransferStatusCheckTx    = "check_tx_error"
	TransferStatusDeliverTx  = "deliver_tx_error"
	TransferStatusTimeout    = "timeout"
	TransferStatusOtherError = "error"
	queryMethodLabel         = "method"
	transferStatusLabel      = "status"
)

var (
	transfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transfers_total",
			Help:      "Total number of transfer attempts by outcome",
		},
		[]string{transferStatusLabel},
	)

	transferDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "transfer_duration_seconds",
			Help:      "Time from building the transfer tx until it is confirmed or fails",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	lastGasUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_gas_used",
			Help:      "Gas used by the last confirmed transfer",
		},
	)

	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "query_duration_seconds",
			Help:      "Latency of gRPC queries sent to the node",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{queryMethodLabel},
	)
)

// TransferCounter increments the transfers_total counter for status.
func TransferCounter(status string) {
	transfersTotal.WithLabelValues(status).Inc()
}

// ObserveTransferDuration records the time elapsed since start.
func ObserveTransferDuration(start time.Time) {
	transferDuration.Observe(time.Since(start).Seconds())
}

// SetLastGasUsed records the gas used by the last confirmed transfer.
func SetLastGasUsed(gasUsed int64) {
	lastGasUsed.Set(float64(gasUsed))
}

// CaptureQueryDuration records the time elapsed since start for the given
// gRPC method. It is intended to be deferred.
func CaptureQueryDuration(method string, start time.Time) {
	queryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
