// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts l into the request context the same way withTraceID does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "signin 200",
			method:          http.MethodPost,
			path:            "/signin",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"token":"x"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/signin"`,
				`"status":200`,
				`"duration":`,
				`"size":13`,
			},
		},
		{
			name:            "forbidden",
			method:          http.MethodGet,
			path:            "/todos",
			handlerStatus:   http.StatusForbidden,
			handlerResponse: `{"message":"you are not logged in"}`,
			checkLogContains: []string{
				`"method":"GET"`,
				`"status":403`,
			},
		},
		{
			name:          "delete with no body",
			method:        http.MethodDelete,
			path:          "/todo/abc",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"uri":"/todo/abc"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query string preserved",
			method:          http.MethodGet,
			path:            "/todos?x=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"todos":[]}`,
			checkLogContains: []string{
				`"uri":"/todos?x=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(nil, nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					w.Write([]byte(tt.handlerResponse))
				}
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), newTestLogger(&buf))
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.handlerResponse, rr.Body.String())
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitOKStatus(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("1.0.0"))
	})

	req := injectLogger(httptest.NewRequest(http.MethodGet, "/version", nil), newTestLogger(&buf))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":5`)
}

func TestWithLogging_ServerErrorLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := injectLogger(httptest.NewRequest(http.MethodGet, "/todos", nil), newTestLogger(&buf))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"status":500`)
}
