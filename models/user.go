// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash is never exposed via JSON.
type User struct {
	// UserID is the system-assigned identifier (UUIDv7). Immutable.
	UserID string `json:"id"`

	// Email is unique across all users and is used as the login key.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash holds the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SignUpRequest is the body of the signup operation.
type SignUpRequest struct {
	Email    string `json:"email" validate:"min=3,max=100,email"`
	Password string `json:"password" validate:"min=3,max=100"`
	Name     string `json:"name" validate:"min=3,max=100"`
}

// SignInRequest is the body of the signin operation.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
