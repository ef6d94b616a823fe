// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxPasswordLength is the number of input bytes bcrypt actually uses.
const bcryptMaxPasswordLength = 72

// ErrInvalidCost is returned by NewBcryptHasher for a cost outside
// [bcrypt.MinCost, bcrypt.MaxCost].
var ErrInvalidCost = errors.New("invalid bcrypt cost")

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a [PasswordHasher] backed by bcrypt with the given
// work factor.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(_ context.Context, password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

func (h *bcryptHasher) Verify(_ context.Context, password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncate(password)) == nil
}

// truncate keeps the first 72 bytes of password. bcrypt ignores anything
// beyond that, and x/crypto rejects longer inputs outright.
func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxPasswordLength {
		b = b[:bcryptMaxPasswordLength]
	}
	return b
}
