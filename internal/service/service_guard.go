// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

type accessGuard struct {
	tokenService TokenService
	logger       *logger.Logger
}

func NewAccessGuard(tokenService TokenService, logger *logger.Logger) AccessGuard {
	return &accessGuard{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Authenticate verifies token and, on success, stores the user id in the
// returned context under utils.UserIDCtxKey. The request logger in ctx is
// replaced by a child carrying the user id.
func (g *accessGuard) Authenticate(ctx context.Context, token string) (context.Context, error) {
	decoded, err := g.tokenService.Verify(ctx, token)
	if err != nil {
		return ctx, err
	}

	log := logger.FromContext(ctx).With().Str("user_id", decoded.UserID).Logger()
	ctx = log.WithContext(ctx)

	return utils.WithUserID(ctx, decoded.UserID), nil
}
