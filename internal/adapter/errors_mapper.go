// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// failureMessages maps the messages that the server sends with status 200
// but which still mean the operation failed.
var failureMessages = map[string]error{
	"user already exists": ErrUserAlreadyExists,
	"User does not exist": ErrUserDoesNotExist,
	"Incorrect creds":     ErrIncorrectCredentials,
}

// failureBody is the union of the failure payloads of the API.
type failureBody struct {
	Message string              `json:"message"`
	Error   []models.FieldIssue `json:"error"`
}

// mapHTTPError turns a response into one of the package errors, or nil if
// the response reports success.
func mapHTTPError(resp *resty.Response) error {
	var body failureBody
	_ = json.Unmarshal(resp.Body(), &body)

	switch resp.StatusCode() {
	case http.StatusOK:
		if body.Message == "incorrect format" {
			return &FormatError{Issues: body.Error}
		}
		if err, ok := failureMessages[body.Message]; ok {
			return err
		}
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body.Message)
	case http.StatusForbidden:
		return ErrNotLoggedIn
	case http.StatusNotFound:
		return ErrTodoNotFound
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body.Message)
	default:
		text := strings.TrimSpace(body.Message)
		if text == "" {
			text = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), text)
	}
}
