// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// tokenHeader is the request header that carries the bearer token.
// The raw token is sent as is, without an authorization scheme.
const tokenHeader = "token"

// auth rejects requests without a valid token with 403 and
// {"message":"you are not logged in"}. On success the authenticated user id
// is available to the next handler via [utils.GetUserIDFromContext].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := r.Header.Get(tokenHeader)
		if token == "" {
			log.Debug().Err(ErrEmptyTokenHeader).Send()
			utils.WriteMessage(w, msgNotLoggedIn, http.StatusForbidden)
			return
		}

		ctx, err := h.services.AccessGuard.Authenticate(r.Context(), token)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during token verification")
			utils.WriteMessage(w, msgNotLoggedIn, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
