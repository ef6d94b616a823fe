// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoService enforces that a user only ever sees and changes their own
// todos. Ownership filtering itself happens in the repository queries.
type todoService struct {
	todoRepository store.TodoRepository
	idGenerator    utils.IDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *todoService) Create(ctx context.Context, userID string, create models.TodoCreate) (models.Todo, error) {
	if userID == "" {
		return models.Todo{}, ErrNoUserIDInContext
	}

	todo := models.Todo{
		ID:        s.idGenerator.Generate(),
		UserID:    userID,
		Title:     create.Title,
		Mark:      create.Mark,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.todoRepository.Create(ctx, todo)
	if err != nil {
		return models.Todo{}, fmt.Errorf("error creating todo: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "todoService.Create").Str("todo_id", created.ID).Msg("todo created")
	return created, nil
}

// Update applies the present fields of update. An empty update returns the
// stored record unchanged. Another user's todo is reported as
// store.ErrTodoNotFound.
func (s *todoService) Update(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error) {
	if userID == "" {
		return models.Todo{}, ErrNoUserIDInContext
	}

	todo, err := s.todoRepository.Update(ctx, userID, todoID, update)
	if err != nil {
		return models.Todo{}, fmt.Errorf("error updating todo: %w", err)
	}

	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, userID, todoID string) error {
	if userID == "" {
		return ErrNoUserIDInContext
	}

	if err := s.todoRepository.Delete(ctx, userID, todoID); err != nil {
		return fmt.Errorf("error deleting todo: %w", err)
	}

	return nil
}

// List returns every todo of userID ordered by creation; never nil.
func (s *todoService) List(ctx context.Context, userID string) ([]models.Todo, error) {
	if userID == "" {
		return nil, ErrNoUserIDInContext
	}

	todos, err := s.todoRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	return todos, nil
}
