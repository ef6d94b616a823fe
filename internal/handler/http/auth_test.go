// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func executeSignUp(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.signUp(rr, req)
	return rr
}

func executeSignIn(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.signIn(rr, req)
	return rr
}

// ---- signUp ----

func TestSignUp_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		signUpErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        `{"email":"a@b.co","password":"pw1","name":"Ann"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "You are signed up",
		},
		{
			name:        "email already exists",
			body:        `{"email":"a@b.co","password":"pw1","name":"Ann"}`,
			signUpErr:   fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusOK,
			wantMessage: "user already exists",
		},
		{
			name:        "unexpected storage error",
			body:        `{"email":"a@b.co","password":"pw1","name":"Ann"}`,
			signUpErr:   errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "error signing up",
		},
		{
			name:        "malformed JSON",
			body:        `{"email":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{
				signUpFn: func(_ context.Context, _ models.SignUpRequest) error {
					return tt.signUpErr
				},
			}, nil)

			rr := executeSignUp(h, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMessage, decodeBody[models.MessageResponse](t, rr).Message)
		})
	}
}

func TestSignUp_ValidationFailure(t *testing.T) {
	issues := []models.FieldIssue{
		{Field: "email", Rule: "email", Message: "email must be a valid email address"},
		{Field: "password", Rule: "min", Param: "3", Message: "password must be at least 3 characters long"},
	}
	h := newTestHandler(&mockAuthService{
		signUpFn: func(_ context.Context, _ models.SignUpRequest) error {
			return &validators.ValidationError{Fields: issues}
		},
	}, nil)

	rr := executeSignUp(h, `{"email":"nope","password":"x","name":"Ann"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.ValidationFailedResponse](t, rr)
	assert.Equal(t, "incorrect format", resp.Message)
	assert.Equal(t, issues, resp.Error)
}

func TestSignUp_PassesDecodedRequest(t *testing.T) {
	var got models.SignUpRequest
	h := newTestHandler(&mockAuthService{
		signUpFn: func(_ context.Context, req models.SignUpRequest) error {
			got = req
			return nil
		},
	}, nil)

	executeSignUp(h, `{"email":"a@b.co","password":"secret","name":"Ann"}`)

	assert.Equal(t, models.SignUpRequest{Email: "a@b.co", Password: "secret", Name: "Ann"}, got)
}

func TestSignUp_EmptyBodyReachesValidation(t *testing.T) {
	called := false
	h := newTestHandler(&mockAuthService{
		signUpFn: func(_ context.Context, req models.SignUpRequest) error {
			called = true
			assert.Equal(t, models.SignUpRequest{}, req)
			return &validators.ValidationError{}
		},
	}, nil)

	rr := executeSignUp(h, "")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "incorrect format", decodeBody[models.ValidationFailedResponse](t, rr).Message)
}

// ---- signIn ----

func TestSignIn_Success(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		signInFn: func(_ context.Context, req models.SignInRequest) (models.Token, error) {
			assert.Equal(t, "a@b.co", req.Email)
			assert.Equal(t, "pw1", req.Password)
			return models.Token{SignedString: "jwt-value", UserID: testUserID}, nil
		},
	}, nil)

	rr := executeSignIn(h, `{"email":"a@b.co","password":"pw1"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"jwt-value"}`, rr.Body.String())
}

func TestSignIn_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		signInErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unknown email",
			body:        `{"email":"x@y.co","password":"pw1"}`,
			signInErr:   fmt.Errorf("user search by email failed: %w", store.ErrUserNotFound),
			wantStatus:  http.StatusOK,
			wantMessage: "User does not exist",
		},
		{
			name:        "wrong password",
			body:        `{"email":"a@b.co","password":"bad"}`,
			signInErr:   service.ErrWrongPassword,
			wantStatus:  http.StatusOK,
			wantMessage: "Incorrect creds",
		},
		{
			name:        "unexpected error",
			body:        `{"email":"a@b.co","password":"pw1"}`,
			signInErr:   errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "error signing in",
		},
		{
			name:        "malformed JSON",
			body:        `not json`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{
				signInFn: func(_ context.Context, _ models.SignInRequest) (models.Token, error) {
					return models.Token{}, tt.signInErr
				},
			}, nil)

			rr := executeSignIn(h, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeBody[models.MessageResponse](t, rr).Message)
			assert.NotContains(t, rr.Body.String(), "token")
		})
	}
}
