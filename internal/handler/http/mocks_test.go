// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	signUpFn func(ctx context.Context, req models.SignUpRequest) error
	signInFn func(ctx context.Context, req models.SignInRequest) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, req)
	}
	return nil
}

func (m *mockAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, req)
	}
	return models.Token{}, nil
}

// ---- Mock: TodoService ----

type mockTodoService struct {
	createFn func(ctx context.Context, userID string, todo models.TodoCreate) (models.Todo, error)
	updateFn func(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error)
	deleteFn func(ctx context.Context, userID, todoID string) error
	listFn   func(ctx context.Context, userID string) ([]models.Todo, error)
}

func (m *mockTodoService) Create(ctx context.Context, userID string, todo models.TodoCreate) (models.Todo, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, todo)
	}
	return models.Todo{}, nil
}

func (m *mockTodoService) Update(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, todoID, update)
	}
	return models.Todo{}, nil
}

func (m *mockTodoService) Delete(ctx context.Context, userID, todoID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, todoID)
	}
	return nil
}

func (m *mockTodoService) List(ctx context.Context, userID string) ([]models.Todo, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []models.Todo{}, nil
}

// ---- Mock: AccessGuard ----

// mockAccessGuard accepts exactly the tokens present in users.
type mockAccessGuard struct {
	users map[string]string
}

func (m *mockAccessGuard) Authenticate(ctx context.Context, token string) (context.Context, error) {
	userID, ok := m.users[token]
	if !ok {
		return ctx, service.ErrTokenIsInvalid
	}
	return utils.WithUserID(ctx, userID), nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

const (
	testToken  = "valid-token"
	testUserID = "0192f0c4-5b1e-7d2a-9c3f-8e4b5a6d7c8e"
	testTodoID = "0192f0c4-6a2b-7e3c-8d4f-9a5b6c7d8e9f"
)

// newTestHandler builds a Handler whose guard accepts testToken as testUserID.
func newTestHandler(auth service.AuthService, todos service.TodoService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    auth,
			TodoService:    todos,
			AccessGuard:    &mockAccessGuard{users: map[string]string{testToken: testUserID}},
			AppInfoService: &mockAppInfoService{version: "test-version"},
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// decodeBody unmarshals the recorded response body into a value of type T.
func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
