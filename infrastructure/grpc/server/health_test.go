package server_test

import (
	"context"
	"log/slog"
	"net"
	"room-sync/infrastructure/grpc/server"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type readiness struct{ running atomic.Bool }

func (r *readiness) Running() bool { return r.running.Load() }

func Test_HealthServer_follows_engine_readiness(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given a health server over an engine that is not running yet
	ready := &readiness{}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	hs := server.NewHealthServer(slog.New(slog.DiscardHandler), ready, 10*time.Millisecond)
	go func() { _ = hs.Serve(ctx, listener) }()
	defer hs.GracefulStop()

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	check := func() healthpb.HealthCheckResponse_ServingStatus {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: server.ServiceName})
		if err != nil {
			return healthpb.HealthCheckResponse_UNKNOWN
		}
		return resp.GetStatus()
	}

	// Then it reports NOT_SERVING
	req.Eventually(func() bool { return check() == healthpb.HealthCheckResponse_NOT_SERVING }, time.Second, 10*time.Millisecond)

	// When the engine starts
	ready.running.Store(true)

	// Then it reports SERVING
	req.Eventually(func() bool { return check() == healthpb.HealthCheckResponse_SERVING }, time.Second, 10*time.Millisecond)
}
