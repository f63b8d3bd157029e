package telemetry

import (
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	cosmostelemetry "github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

const eventTypeMetricKey = "event_type"

// EventSuccessCounter increments a counter with the given event type and
// success status. A failed event is also labeled with its error code (see
// AppendErrLabel). Calls SHOULD be deferred so that getErr observes the final
// outcome of the instrumented function.
func EventSuccessCounter(
	eventType string,
	getValue func() float32,
	getErr func() error,
) {
	if !isTelemetryEnabled() {
		return
	}

	err := getErr()
	cosmostelemetry.IncrCounterWithLabels(
		MetricNameKeys(eventTypeMetricKey),
		getValue(),
		AppendErrLabel(err,
			toMetricLabel("type", eventType),
			toMetricLabel("is_successful", strconv.FormatBool(err == nil)),
		),
	)
}

// TransferredTokens counts the amount of tokens sent, per denomination.
func TransferredTokens(denom string, amount float32) {
	if !isTelemetryEnabled() {
		return
	}

	cosmostelemetry.IncrCounterWithLabels(
		MetricNameKeys("transferred", "tokens"),
		amount,
		[]metrics.Label{
			toMetricLabel("denom", denom),
		},
	)
}

// AppendErrLabel appends a label with the name "error" to the given labels.
// Its value is the "<codespace>/<code>" of the registered error wrapped by err,
// e.g. "tx_client/1106", which keeps the label cardinality bounded.
// Unregistered errors are all labeled "undefined/1".
func AppendErrLabel(err error, labels ...metrics.Label) []metrics.Label {
	if err == nil {
		return labels
	}

	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	return append(labels, toMetricLabel("error", fmt.Sprintf("%s/%d", codespace, code)))
}
