// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the one-way credential transforms used by the server.
package crypto

import "context"

// PasswordHasher turns plaintext passwords into stored digests and checks
// plaintext against a stored digest.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Hashing the same password
	// twice yields different digests that both verify.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches digest. It never fails on a
	// mismatch or a malformed digest; it returns false instead.
	Verify(ctx context.Context, password, digest string) bool
}
