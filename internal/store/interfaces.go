// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of users and todos on top of
// database/sql. Postgres (pgx) and SQLite (go-sqlite3) are supported;
// queries are rendered by squirrel with the placeholder format of the
// selected driver, and the schema is applied by goose on startup.
package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. It returns [ErrEmailAlreadyExists] when the
	// email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered with email, or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TodoRepository persists todos. Every mutating method is scoped to the
// owner: a todo of another user behaves exactly like a missing one.
type TodoRepository interface {
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	Update(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Todo, error)
}
