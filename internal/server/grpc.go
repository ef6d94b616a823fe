// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-todo-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// healthProbeInterval is how often the gRPC health status is refreshed.
const healthProbeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	probeCtx  context.Context
	stopProbe context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	probeCtx, stopProbe := context.WithCancel(context.Background())

	return &grpcServer{
		handler:   handler,
		server:    handler.Init(),
		listener:  listener,
		probeCtx:  probeCtx,
		stopProbe: stopProbe,
		logger:    logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	go g.handler.MonitorHealth(g.probeCtx, healthProbeInterval)

	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("Launching GRPC server")
	err := g.server.Serve(g.listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown flips health to NOT_SERVING first so that probes see the
// shutdown before connections are drained. If ctx expires before the
// graceful stop completes, remaining connections are closed.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopProbe()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server GracefulStop: %w", ctx.Err())
	}
}

func (g *grpcServer) Name() string {
	return "grpc"
}
