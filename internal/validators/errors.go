// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	ErrUnsupportedType     = errors.New("unsupported type for validation")
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// ValidationError reports every rule the validated value failed.
// errors.Is(err, ErrInvalidDataProvided) holds for any *ValidationError.
type ValidationError struct {
	Fields []models.FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}

	return ErrInvalidDataProvided.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}
