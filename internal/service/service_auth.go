// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks bcrypt password digests.
	hasher crypto.PasswordHasher

	// validator checks the shape of signup requests.
	validator validators.Validator

	// tokenService issues the token returned by SignIn.
	tokenService TokenService

	idGenerator utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	tokenService TokenService,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenService:   tokenService,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// Returns:
//   - *validators.ValidationError when req has the wrong shape; storage is
//     not touched in that case.
//   - store.ErrEmailAlreadyExists (wrapped) when the email is taken.
//   - any other storage error wrapped.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "authService.SignUp").Msg("signup request rejected")
		return err
	}

	digest, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		UserID:       a.idGenerator.Generate(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: digest,
		CreatedAt:    a.now().UTC(),
	}

	if _, err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "authService.SignUp").Str("email", req.Email).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.SignUp").Str("user_id", user.UserID).Msg("user signed up")
	return nil
}

// SignIn authenticates an existing user and issues a token.
//
// Returns:
//   - store.ErrUserNotFound (wrapped) when no user has the email.
//   - ErrWrongPassword when the password does not match.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "authService.SignIn").Str("email", req.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(ctx, req.Password, user.PasswordHash) {
		log.Warn().Str("func", "authService.SignIn").Str("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	return a.tokenService.Issue(ctx, user.UserID)
}
