// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AccessGuard    AccessGuard
	TodoService    TodoService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires every service on top of storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App.TokenSignKey, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, validators.NewRequestValidator(), tokenService, logger),
		TokenService:   tokenService,
		AccessGuard:    NewAccessGuard(tokenService, logger),
		TodoService:    NewTodoService(storages.TodoRepository, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
