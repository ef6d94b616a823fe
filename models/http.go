// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic `{ "message": ... }` payload used for
// confirmations and failure outcomes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationFailedResponse is returned when signup input has the wrong shape.
// Error holds per-field details.
type ValidationFailedResponse struct {
	Message string       `json:"message"`
	Error   []FieldIssue `json:"error"`
}

// FieldIssue describes a single failed validation rule.
type FieldIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// SignInResponse carries the issued token.
type SignInResponse struct {
	Token string `json:"token"`
}
