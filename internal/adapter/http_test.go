// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// newTestAdapter points an adapter at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// jsonServer answers every request with status and body and records the
// last request.
func jsonServer(t *testing.T, status int, body string, last **http.Request, lastBody *[]byte) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if last != nil {
			*last = r
		}
		if lastBody != nil {
			*lastBody, _ = io.ReadAll(r.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://todo.example.com/", want: "https://todo.example.com"},
		{name: "host and port", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SignUp ──────────────────────────────────────────────────────────────────

func TestSignUp(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "success", status: http.StatusOK, body: `{"message":"You are signed up"}`},
		{name: "email taken", status: http.StatusOK, body: `{"message":"user already exists"}`, wantErr: ErrUserAlreadyExists},
		{name: "server failure", status: http.StatusInternalServerError, body: `{"message":"error signing up"}`, wantErr: ErrInternalServerError},
		{name: "malformed request", status: http.StatusBadRequest, body: `{"message":"invalid JSON was passed"}`, wantErr: ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			var reqBody []byte
			srv := jsonServer(t, tt.status, tt.body, &req, &reqBody)

			err := newTestAdapter(t, srv.URL).SignUp(context.Background(), models.SignUpRequest{Email: "a@b.co", Password: "pw1", Name: "Ann"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/signup", req.URL.Path)
			assert.JSONEq(t, `{"email":"a@b.co","password":"pw1","name":"Ann"}`, string(reqBody))
		})
	}
}

func TestSignUp_FormatError(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"message":"incorrect format","error":[{"field":"email","rule":"email","message":"email must be a valid email address"}]}`, nil, nil)

	err := newTestAdapter(t, srv.URL).SignUp(context.Background(), models.SignUpRequest{Email: "x"})

	require.ErrorIs(t, err, ErrIncorrectFormat)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Len(t, formatErr.Issues, 1)
	assert.Equal(t, "email", formatErr.Issues[0].Field)
	assert.Contains(t, err.Error(), "email must be a valid email address")
}

// ── SignIn ──────────────────────────────────────────────────────────────────

func TestSignIn_StoresToken(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"token":"jwt-value"}`, nil, nil)
	a := newTestAdapter(t, srv.URL)

	token, err := a.SignIn(context.Background(), models.SignInRequest{Email: "a@b.co", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-value", token)
	assert.Equal(t, "jwt-value", a.Token())
}

func TestSignIn_Failures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"unknown user", `{"message":"User does not exist"}`, ErrUserDoesNotExist},
		{"wrong password", `{"message":"Incorrect creds"}`, ErrIncorrectCredentials},
		{"no token", `{}`, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, http.StatusOK, tt.body, nil, nil)
			a := newTestAdapter(t, srv.URL)

			_, err := a.SignIn(context.Background(), models.SignInRequest{})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, a.Token())
		})
	}
}

// ── Todos ───────────────────────────────────────────────────────────────────

func TestCreateTodo_SendsTokenHeader(t *testing.T) {
	var req *http.Request
	srv := jsonServer(t, http.StatusOK, `{"message":"todo created","todoId":"id-1"}`, &req, nil)
	a := newTestAdapter(t, srv.URL)
	a.SetToken("  jwt-value ")

	id, err := a.CreateTodo(context.Background(), models.TodoCreate{Title: "milk"})

	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.Equal(t, "jwt-value", req.Header.Get("token"))
	assert.Equal(t, "/todo", req.URL.Path)
}

func TestUpdateTodo(t *testing.T) {
	var req *http.Request
	var reqBody []byte
	srv := jsonServer(t, http.StatusOK, `{"message":"Todo updated","todo":{"id":"id-1","userId":"u","title":"milk","mark":true,"createdAt":"2026-01-02T03:04:05Z"}}`, &req, &reqBody)
	a := newTestAdapter(t, srv.URL)

	mark := true
	todo, err := a.UpdateTodo(context.Background(), "id-1", models.TodoUpdate{Mark: &mark})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/updatetodo/id-1", req.URL.Path)
	assert.JSONEq(t, `{"mark":true}`, string(reqBody))
	assert.True(t, todo.Mark)
	assert.Equal(t, "milk", todo.Title)
}

func TestTodoFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		call    func(a ServerAdapter) error
		wantErr error
	}{
		{
			name:   "delete not found",
			status: http.StatusNotFound,
			body:   `{"message":"Todo not found"}`,
			call: func(a ServerAdapter) error {
				return a.DeleteTodo(context.Background(), "id-1")
			},
			wantErr: ErrTodoNotFound,
		},
		{
			name:   "list without token",
			status: http.StatusForbidden,
			body:   `{"message":"you are not logged in"}`,
			call: func(a ServerAdapter) error {
				_, err := a.ListTodos(context.Background())
				return err
			},
			wantErr: ErrNotLoggedIn,
		},
		{
			name:   "update server failure",
			status: http.StatusInternalServerError,
			body:   `{"message":"Error updating todo"}`,
			call: func(a ServerAdapter) error {
				_, err := a.UpdateTodo(context.Background(), "id-1", models.TodoUpdate{})
				return err
			},
			wantErr: ErrInternalServerError,
		},
		{
			name:   "unexpected status",
			status: http.StatusTeapot,
			body:   ``,
			call: func(a ServerAdapter) error {
				_, err := a.CreateTodo(context.Background(), models.TodoCreate{})
				return err
			},
			wantErr: ErrUnexpectedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, tt.status, tt.body, nil, nil)

			err := tt.call(newTestAdapter(t, srv.URL))

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListTodos_EmptyIsNonNil(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"todos":null}`, nil, nil)

	todos, err := newTestAdapter(t, srv.URL).ListTodos(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestFormatError_NoIssues(t *testing.T) {
	err := &FormatError{}

	assert.Equal(t, "incorrect format", err.Error())
	assert.ErrorIs(t, err, ErrIncorrectFormat)
}
