// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// tokenService signs tokens with a single process-wide secret.
// Rotating the secret invalidates every token issued before.
type tokenService struct {
	signKey string
	logger  *logger.Logger
}

func NewTokenService(signKey string, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey: signKey,
		logger:  logger,
	}
}

// Issue signs a token asserting userID. Issued tokens never expire.
func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(userID, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.Issue").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks the signature of tokenString and decodes the user id.
// Every validation failure is reported as ErrTokenIsInvalid.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "tokenService.Verify").Msg("token rejected")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
