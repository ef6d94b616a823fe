// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer.
var (
	// ErrEmptyTokenHeader is logged when a protected route is called without
	// the "token" header.
	ErrEmptyTokenHeader = errors.New("empty `token` header")

	// ErrInvalidJSON is logged when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// Response messages. The wording is part of the public API.
const (
	msgSignedUp         = "You are signed up"
	msgIncorrectFormat  = "incorrect format"
	msgUserExists       = "user already exists"
	msgSignUpFailed     = "error signing up"
	msgUserDoesNotExist = "User does not exist"
	msgIncorrectCreds   = "Incorrect creds"
	msgSignInFailed     = "error signing in"
	msgNotLoggedIn      = "you are not logged in"
	msgInvalidJSON      = "invalid JSON was passed"

	msgTodoCreated      = "todo created"
	msgTodoCreateFailed = "error creating todo"
	msgTodoUpdated      = "Todo updated"
	msgTodoUpdateFailed = "Error updating todo"
	msgTodoDeleted      = "Todo deleted"
	msgTodoDeleteFailed = "Error deleting todo"
	msgTodoNotFound     = "Todo not found"
	msgTodoListFailed   = "error listing todos"
)
