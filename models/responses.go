// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TodoCreatedResponse is returned by the create-todo operation.
type TodoCreatedResponse struct {
	Message string `json:"message"`
	TodoID  string `json:"todoId"`
}

// TodoUpdatedResponse is returned by the update-todo operation and
// contains the record as it is after the update.
type TodoUpdatedResponse struct {
	Message string `json:"message"`
	Todo    Todo   `json:"todo"`
}

// TodoListResponse contains every todo owned by the caller.
type TodoListResponse struct {
	Todos []Todo `json:"todos"`
}
