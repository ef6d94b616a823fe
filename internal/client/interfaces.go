// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs a single command line.
type Client interface {
	// Run executes the command named by args[0] with the remaining args.
	Run(ctx context.Context, args []string) error
}

// TokenStore persists the token between invocations.
type TokenStore interface {
	// Load returns "" and no error if no token was saved.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// PasswordReader asks the user for a password without echoing it.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
