// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

const defaultKeepAliveInterval = 30 * time.Second

// KeepAliveWorker periodically sends GET to a URL so that hosting platforms
// which idle inactive services keep this one awake. Ping failures are only
// logged.
type KeepAliveWorker struct {
	url      string
	interval time.Duration
	client   *utils.HTTPClient
	logger   *logger.Logger
}

func NewKeepAliveWorker(url string, interval time.Duration, logger *logger.Logger) *KeepAliveWorker {
	if interval <= 0 {
		interval = defaultKeepAliveInterval
	}

	return &KeepAliveWorker{
		url:      url,
		interval: interval,
		client:   utils.NewHTTPClient(utils.WithTimeout(interval)),
		logger:   logger,
	}
}

func (k *KeepAliveWorker) Run(ctx context.Context) error {
	k.logger.Info().Str("url", k.url).Dur("interval", k.interval).Msg("keep-alive worker started")

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			k.logger.Info().Msg("keep-alive worker stopped")
			return nil
		case <-ticker.C:
			k.ping(ctx)
		}
	}
}

func (k *KeepAliveWorker) ping(ctx context.Context) {
	resp, err := k.client.R().SetContext(ctx).Get(k.url)
	if err != nil {
		if ctx.Err() == nil {
			k.logger.Err(err).Str("url", k.url).Msg("keep-alive ping failed")
		}
		return
	}

	k.logger.Debug().Str("url", k.url).Int("status", resp.StatusCode()).Msg("keep-alive ping")
}
