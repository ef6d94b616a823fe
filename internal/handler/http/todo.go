// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)

	var todo models.TodoCreate
	if err := decodeJSON(r, &todo); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.TodoService.Create(ctx, userID, todo)
	if err != nil {
		log.Err(err).Msg("error creating todo")
		utils.WriteMessage(w, msgTodoCreateFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TodoCreatedResponse{
		Message: msgTodoCreated,
		TodoID:  created.ID,
	}, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)
	todoID := chi.URLParam(r, "id")

	// ids are UUIDs; anything else cannot exist in storage
	if !utils.IsValidID(todoID) {
		log.Debug().Str("todo_id", todoID).Msg("malformed todo id")
		utils.WriteMessage(w, msgTodoNotFound, http.StatusNotFound)
		return
	}

	var update models.TodoUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.TodoService.Update(ctx, userID, todoID, update)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			log.Debug().Err(err).Str("todo_id", todoID).Msg("todo not found")
			utils.WriteMessage(w, msgTodoNotFound, status)
			return
		}

		log.Err(err).Str("todo_id", todoID).Msg("error updating todo")
		utils.WriteMessage(w, msgTodoUpdateFailed, status)
		return
	}

	utils.WriteJSON(w, models.TodoUpdatedResponse{
		Message: msgTodoUpdated,
		Todo:    updated,
	}, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)
	todoID := chi.URLParam(r, "id")

	if !utils.IsValidID(todoID) {
		log.Debug().Str("todo_id", todoID).Msg("malformed todo id")
		utils.WriteMessage(w, msgTodoNotFound, http.StatusNotFound)
		return
	}

	err := h.services.TodoService.Delete(ctx, userID, todoID)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			log.Debug().Err(err).Str("todo_id", todoID).Msg("todo not found")
			utils.WriteMessage(w, msgTodoNotFound, status)
			return
		}

		log.Err(err).Str("todo_id", todoID).Msg("error deleting todo")
		utils.WriteMessage(w, msgTodoDeleteFailed, status)
		return
	}

	utils.WriteMessage(w, msgTodoDeleted, http.StatusOK)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)

	todos, err := h.services.TodoService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error listing todos")
		utils.WriteMessage(w, msgTodoListFailed, statusFromError(err))
		return
	}

	log.Debug().Int("count", len(todos)).Msg("todos listed")

	utils.WriteJSON(w, models.TodoListResponse{Todos: todos}, http.StatusOK)
}
