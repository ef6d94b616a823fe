// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the REST API.
//
// [ServerAdapter] hides the wire format. Failures, including those the
// server reports with status 200, are returned as the sentinel errors of
// this package so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the to-do backend on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the token attached to every protected request.
	SetToken(token string)

	// Token returns the stored token, or "" if none is set.
	Token() string

	// SignUp creates an account. No token is issued.
	SignUp(ctx context.Context, req models.SignUpRequest) error

	// SignIn exchanges credentials for a token and stores it via SetToken.
	SignIn(ctx context.Context, req models.SignInRequest) (string, error)

	// CreateTodo returns the id of the new todo.
	CreateTodo(ctx context.Context, todo models.TodoCreate) (string, error)

	// UpdateTodo applies the non-nil fields and returns the updated todo.
	UpdateTodo(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error)

	DeleteTodo(ctx context.Context, todoID string) error

	ListTodos(ctx context.Context) ([]models.Todo, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
