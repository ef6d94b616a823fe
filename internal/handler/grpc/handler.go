// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1.Health service so that
// orchestrators can probe the backend without going through the REST API.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "todo.TodoKeeper"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Init builds a gRPC server with the health service registered.
// The process starts as SERVING; Probe and Shutdown change that.
func (h *Handler) Init() *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	)
	healthpb.RegisterHealthServer(server, h.health)

	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	return server
}

// Probe runs the health check once and publishes the result.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING

	if h.services != nil && h.services.HealthService != nil {
		if err := h.services.HealthService.Check(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("health probe failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.setStatus(status)
	return status
}

// MonitorHealth probes every interval until ctx is done.
func (h *Handler) MonitorHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, interval)
			h.Probe(probeCtx)
			cancel()
		}
	}
}

// Shutdown reports NOT_SERVING for every service. Further status updates
// are ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
