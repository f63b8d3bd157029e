package telemetry_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	cosmostelemetry "github.com/cosmos/cosmos-sdk/telemetry"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/hashicorp/go-metrics"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/sendtokens/telemetry"
)

func TestPushMetrics(t *testing.T) {
	var (
		mu          sync.Mutex
		gotPath     string
		gotBody     string
		gotRequests int
	)
	pushgateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		mu.Lock()
		defer mu.Unlock()
		gotRequests++
		gotPath = r.URL.Path
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer pushgateway.Close()

	telemetry.TransferCounter(telemetry.TransferStatusSuccess)
	telemetry.ObserveTransferDuration(time.Now().Add(-time.Second))
	telemetry.SetLastGasUsed(81234)
	telemetry.CaptureQueryDuration("/cosmos.bank.v1beta1.Query/AllBalances", time.Now())

	err := telemetry.PushMetrics(context.Background(), pushgateway.URL, "sendtokens")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, gotRequests)
	require.Equal(t, "/metrics/job/sendtokens", gotPath)
	// The default push format is protobuf delimited; metric names are plain
	// strings within it.
	for _, name := range []string{
		"sendtokens_transfers_total",
		"sendtokens_transfer_duration_seconds",
		"sendtokens_last_gas_used",
		"sendtokens_query_duration_seconds",
	} {
		require.True(t, strings.Contains(gotBody, name), "missing metric %s", name)
	}
}

func TestPushMetrics_Unreachable(t *testing.T) {
	pushgateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer pushgateway.Close()

	err := telemetry.PushMetrics(context.Background(), pushgateway.URL, "sendtokens")
	require.Error(t, err)
}

func TestEventSuccessCounter_Disabled(t *testing.T) {
	// Without Init(true) the go-metrics counters are no-ops and MUST NOT
	// evaluate their callbacks.
	telemetry.EventSuccessCounter(
		"transfer",
		func() float32 { t.Fatal("getValue called while telemetry is disabled"); return 0 },
		func() error { t.Fatal("getErr called while telemetry is disabled"); return nil },
	)
}

func TestAppendErrLabel(t *testing.T) {
	typeLabel := cosmostelemetry.NewLabel("type", "transfer")

	tests := []struct {
		desc          string
		err           error
		expectedLabel string
	}{
		{
			desc:          "nil error",
			err:           nil,
			expectedLabel: "",
		},
		{
			desc:          "registered error",
			err:           sdkerrors.ErrInsufficientFunds.Wrap("spendable balance 0token"),
			expectedLabel: "sdk/5",
		},
		{
			desc:          "unregistered error",
			err:           errors.New("connection refused"),
			expectedLabel: "undefined/1",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			labels := telemetry.AppendErrLabel(test.err, typeLabel)
			if test.expectedLabel == "" {
				require.Equal(t, []metrics.Label{typeLabel}, labels)
				return
			}

			require.Len(t, labels, 2)
			require.Equal(t, typeLabel, labels[0])
			require.Equal(t, "error", labels[1].Name)
			require.Equal(t, test.expectedLabel, labels[1].Value)
		})
	}
}
