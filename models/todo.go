// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Todo is a single to-do item. Every Todo has exactly one owner, set at
// creation from the authenticated caller and never reassigned.
type Todo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Mark      bool      `json:"mark"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoCreate is the body of the create-todo operation.
// Ownership is never read from the body.
type TodoCreate struct {
	Title string `json:"title"`
	Mark  bool   `json:"mark"`
}

// TodoUpdate represents a partial update of a Todo.
// Only non-nil fields are applied.
type TodoUpdate struct {
	Title *string `json:"title,omitempty"`
	Mark  *bool   `json:"mark,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u TodoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Mark == nil
}
