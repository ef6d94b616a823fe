// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// shutdownTimeout bounds the graceful shutdown of all transports.
const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer opens listeners for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	var httpSrv *httpServer
	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		h, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		httpSrv = h
		servers.transports = append(servers.transports, h)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			// release the HTTP listener, it was never served
			if httpSrv != nil {
				httpSrv.listener.Close()
			}
			return nil, err
		}
		servers.transports = append(servers.transports, g)
	}

	if len(servers.transports) == 0 {
		return nil, errNoTransports
	}

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	// launch all created servers
	for _, t := range s.transports {
		g.Go(t.RunServer)
	}

	// stop every server once ctx is cancelled or one of them failed
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, t := range s.transports {
			if err := t.Shutdown(shutdownCtx); err != nil {
				s.logger.Err(err).Str("transport", t.Name()).Msg("error shutting down")
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
