// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the workers enabled in cfg. The result may hold no
// workers, in which case Run returns immediately.
func NewWorkers(cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{logger: logger}

	if cfg.KeepAliveURL != "" {
		ws.workers = append(ws.workers, NewKeepAliveWorker(cfg.KeepAliveURL, cfg.KeepAliveInterval, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first failure cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gCtx)
		})
	}

	return g.Wait()
}
