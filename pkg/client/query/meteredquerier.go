package query

import (
	"context"
	"time"

	"github.com/cosmos/gogoproto/grpc"
	googlegrpc "google.golang.org/grpc"

	"github.com/pokt-network/sendtokens/telemetry"
)

// grpcClientWithMetrics is a wrapper around grpc.ClientConn that captures the
// duration of gRPC calls in the sendtokens_query_duration_seconds histogram.
type grpcClientWithMetrics struct {
	grpc.ClientConn
}

// NewGRPCClientWithMetrics creates a new grpc.ClientConn which wraps the
// provided one and instruments its Invoke method.
func NewGRPCClientWithMetrics(clientConn grpc.ClientConn) grpc.ClientConn {
	return &grpcClientWithMetrics{
		ClientConn: clientConn,
	}
}

// Invoke wraps the ClientConn's Invoke method to capture the duration of the call,
// labeled with the gRPC method name.
func (m *grpcClientWithMetrics) Invoke(ctx context.Context, method string, args, reply any, opts ...googlegrpc.CallOption) error {
	defer telemetry.CaptureQueryDuration(method, time.Now())

	return m.ClientConn.Invoke(ctx, method, args, reply, opts...)
}
