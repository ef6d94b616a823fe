// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads
// before they reach storage.
//
// Validators are injected into services; transport layers never validate
// on their own. A failed validation is reported as *ValidationError, which
// carries one entry per violated rule and unwraps to ErrInvalidDataProvided.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
