// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var todoColumns = []string{"todo_id", "user_id", "title", "mark", "created_at"}

// todoRepository is the SQL implementation of [TodoRepository] over the
// "todos" table. Every statement that touches a single row filters by both
// todo_id and user_id.
type todoRepository struct {
	*DB
	logger *logger.Logger
}

func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	err := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Mark, &todo.CreatedAt)
	return todo, err
}

// Create inserts todo; the caller assigns ID, UserID and CreatedAt.
func (t *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.builder.
		Insert(todo.TableName()).
		Columns(todoColumns...).
		Values(todo.ID, todo.UserID, todo.Title, todo.Mark, todo.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Create").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "todoRepository.Create").
			Str("user_id", todo.UserID).
			Stringer("class", t.classify(err)).
			Msg("failed to insert todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

// Update applies the non-nil fields of update to the todo todoID owned by
// userID and returns the stored record. An empty update only reads the
// record. Returns [ErrTodoNotFound] when no such todo exists for userID.
func (t *todoRepository) Update(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return t.findOwned(ctx, t.DB.DB, userID, todoID)
	}

	setMap := make(map[string]any, 2)
	if update.Title != nil {
		setMap["title"] = *update.Title
	}
	if update.Mark != nil {
		setMap["mark"] = *update.Mark
	}

	query, args, err := t.builder.
		Update(models.Todo{}.TableName()).
		SetMap(setMap).
		Where(sq.Eq{"todo_id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Update").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := t.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Update").Msg("failed to begin transaction")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.Update").
			Str("todo_id", todoID).
			Msg("failed to execute update")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Todo{}, ErrTodoNotFound
	}

	todo, err := t.findOwned(ctx, tx, userID, todoID)
	if err != nil {
		return models.Todo{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "todoRepository.Update").Msg("failed to commit transaction")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return todo, nil
}

// Delete removes the todo todoID owned by userID.
// Returns [ErrTodoNotFound] when nothing was deleted.
func (t *todoRepository) Delete(ctx context.Context, userID, todoID string) error {
	log := logger.FromContext(ctx)

	query, args, err := t.builder.
		Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"todo_id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := t.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.Delete").
			Str("todo_id", todoID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// ListByUser returns every todo owned by userID, oldest first.
// Returns an empty, non-nil slice when the user has none.
func (t *todoRepository) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "todo_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "todoRepository.ListByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to execute query for listing todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 16)
	for rows.Next() {
		todo, scanErr := scanTodo(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "todoRepository.ListByUser").
				Str("user_id", userID).
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "todoRepository.ListByUser").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

// queryRower is implemented by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (t *todoRepository) findOwned(ctx context.Context, q queryRower, userID, todoID string) (models.Todo, error) {
	query, args, err := t.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"todo_id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	todo, err := scanTodo(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "todoRepository.findOwned").
			Str("todo_id", todoID).
			Msg("failed to read todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}
