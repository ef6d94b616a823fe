// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was given.
	ErrEmptyTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside the range
	// accepted by the hashing library.
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
	// ErrUnsupportedDBDriver indicates a driver other than postgres or sqlite.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listening address is set or
	// that the request timeout is negative.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a keep-alive URL with a non-positive interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
