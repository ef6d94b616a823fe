// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// errorStatusMap lists the errors that map to a status other than 500.
// Conflict and validation outcomes of signup/signin are answered with 200
// and are handled in the auth handlers directly.
var errorStatusMap = map[error]int{
	store.ErrTodoNotFound:        http.StatusNotFound,
	service.ErrTokenIsInvalid:    http.StatusForbidden,
	service.ErrNoUserIDInContext: http.StatusForbidden,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
