// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the to-do backend: account
// signup and signin, token issuing and verification, request authentication
// and owner-scoped todo management.
//
// Services depend only on the store interfaces, the password hasher and the
// validators. They know nothing about HTTP.
package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// AuthService manages user accounts.
type AuthService interface {
	// SignUp validates req, hashes the password and stores a new user.
	SignUp(ctx context.Context, req models.SignUpRequest) error

	// SignIn checks the credentials and issues a token for the user.
	SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, userID string) (models.Token, error)
	Verify(ctx context.Context, token string) (models.Token, error)
}

// AccessGuard authenticates a request by its bearer token.
type AccessGuard interface {
	// Authenticate returns a copy of ctx carrying the user id decoded from
	// token, or ErrTokenIsInvalid.
	Authenticate(ctx context.Context, token string) (context.Context, error)
}

// TodoService manages the todos of a single authenticated user.
// userID always comes from the authenticated request, never from input.
type TodoService interface {
	Create(ctx context.Context, userID string, todo models.TodoCreate) (models.Todo, error)
	Update(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
	List(ctx context.Context, userID string) ([]models.Todo, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the dependencies of the service are usable.
type HealthService interface {
	Check(ctx context.Context) error
}
