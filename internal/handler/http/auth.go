// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// signUp registers a new account. Validation failures and a taken email
// are reported with 200 and a failure payload; clients must inspect the
// message rather than the status code.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		var validationErr *validators.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Debug().Err(err).Msg("signup data failed validation")
			utils.WriteJSON(w, models.ValidationFailedResponse{
				Message: msgIncorrectFormat,
				Error:   validationErr.Fields,
			}, http.StatusOK)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Debug().Err(err).Msg("email already exists")
			utils.WriteMessage(w, msgUserExists, http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteMessage(w, msgSignUpFailed, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, msgSignedUp, http.StatusOK)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Err(err).Msg("no user was found")
			utils.WriteMessage(w, msgUserDoesNotExist, http.StatusOK)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Debug().Err(err).Msg("wrong password")
			utils.WriteMessage(w, msgIncorrectCreds, http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signin")
			utils.WriteMessage(w, msgSignInFailed, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", token.UserID).Msg("user successfully signed in")

	utils.WriteJSON(w, models.SignInResponse{Token: token.SignedString}, http.StatusOK)
}
