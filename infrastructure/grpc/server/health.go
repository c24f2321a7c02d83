package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name health checkers ask about.
const ServiceName = "room-sync"

// Readiness reports whether the engine is accepting commands.
type Readiness interface {
	Running() bool
}

// HealthServer exposes the standard gRPC health protocol and keeps the
// serving status in line with the engine.
type HealthServer struct {
	log       *slog.Logger
	server    *grpc.Server
	health    *health.Server
	readiness Readiness
	interval  time.Duration
}

func NewHealthServer(log *slog.Logger, readiness Readiness, interval time.Duration) *HealthServer {
	s := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, server: s, health: h, readiness: readiness, interval: interval}
}

// Serve blocks until the listener fails or GracefulStop is called.
func (s *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	go s.watch(ctx)
	s.log.Info("Starting health server", "address", listener.Addr().String())
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("health server: %w", err)
	}
	return nil
}

func (s *HealthServer) GracefulStop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}

func (s *HealthServer) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.refresh()
	for {
		select {
		case <-ctx.Done():
			s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
			return
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *HealthServer) refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if s.readiness.Running() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(ServiceName, status)
}
