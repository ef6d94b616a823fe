// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Errors returned by [ServerAdapter] methods. They are derived from the
// status code and the message of the server response.
var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserDoesNotExist     = errors.New("user does not exist")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrIncorrectFormat      = errors.New("incorrect format")
	ErrTodoNotFound         = errors.New("todo not found")
	ErrBadRequest           = errors.New("bad request")
	ErrInternalServerError  = errors.New("internal server error")
	ErrUnexpectedResponse   = errors.New("unexpected response")
)

// FormatError carries the per-field issues of a rejected signup.
type FormatError struct {
	Issues []models.FieldIssue
}

func (e *FormatError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Message)
	}
	if len(msgs) == 0 {
		return ErrIncorrectFormat.Error()
	}

	return ErrIncorrectFormat.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *FormatError) Unwrap() error {
	return ErrIncorrectFormat
}
