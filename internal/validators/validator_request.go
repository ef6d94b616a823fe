// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants accepted by RequestValidator.Validate to restrict
// validation to a subset of fields. Names match the JSON field names.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// RequestValidator checks request models against the rules declared in
// their `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator whose reported field
// names are the JSON names of the struct fields.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate validates models.SignUpRequest (value or pointer).
// When fields are given, only those are checked.
//
// Returns ErrUnsupportedType for any other type and *ValidationError when
// one or more rules fail.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.SignUpRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, structFieldNames(obj, fields)...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	issues := make([]models.FieldIssue, 0, len(validationErrors))
	for _, fe := range validationErrors {
		issues = append(issues, models.FieldIssue{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: describe(fe),
		})
	}

	return &ValidationError{Fields: issues}
}

// structFieldNames maps JSON field names onto the Go field names
// StructPartial expects. Unknown names are passed through unchanged and
// ignored by the validator.
func structFieldNames(obj any, fields []string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		name := f
		for i := 0; i < t.NumField(); i++ {
			jsonName, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
			if jsonName == f {
				name = t.Field(i).Name
				break
			}
		}
		out = append(out, name)
	}

	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
