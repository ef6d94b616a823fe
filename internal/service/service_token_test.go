// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("sign-key", logger.Nop())
	ctx := context.Background()

	token, err := svc.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-1", token.UserID)

	decoded, err := svc.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", decoded.UserID)
}

func TestTokenService_Issue_Errors(t *testing.T) {
	_, err := NewTokenService("", logger.Nop()).Issue(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)

	_, err = NewTokenService("key", logger.Nop()).Issue(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	svc := NewTokenService("sign-key", logger.Nop())
	foreign, err := utils.GenerateJWTToken("user-1", "rotated-key")
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"other secret": foreign.SignedString,
		"truncated":    foreign.SignedString[:len(foreign.SignedString)-3],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), token)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

func TestAccessGuard_Authenticate(t *testing.T) {
	tokens := NewTokenService("sign-key", logger.Nop())
	guard := NewAccessGuard(tokens, logger.Nop())
	ctx := context.Background()

	token, err := tokens.Issue(ctx, "user-1")
	require.NoError(t, err)

	t.Run("valid token attaches user id", func(t *testing.T) {
		authCtx, err := guard.Authenticate(ctx, token.SignedString)
		require.NoError(t, err)

		userID, ok := utils.GetUserIDFromContext(authCtx)
		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("invalid token leaves context unauthenticated", func(t *testing.T) {
		authCtx, err := guard.Authenticate(ctx, "forged")
		assert.ErrorIs(t, err, ErrTokenIsInvalid)

		_, ok := utils.GetUserIDFromContext(authCtx)
		assert.False(t, ok)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := guard.Authenticate(ctx, "")
		assert.ErrorIs(t, err, ErrTokenIsInvalid)
	})
}
