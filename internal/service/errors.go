// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrNoUserIDInContext   = errors.New("no user id in context")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoHealthProbe         = errors.New("no health probe configured")
)
