// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Pinger is implemented by *store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger Pinger
	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, logger: logger}
}

// Check pings the database.
func (s *healthService) Check(ctx context.Context) error {
	if s.pinger == nil {
		return ErrNoHealthProbe
	}

	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "healthService.Check").Msg("database is unreachable")
		return err
	}

	return nil
}
