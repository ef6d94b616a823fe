// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	ctx := context.Background()

	ok := NewHealthService(pingerFunc(func(context.Context) error { return nil }), logger.Nop())
	assert.NoError(t, ok.Check(ctx))

	down := errors.New("connection refused")
	failing := NewHealthService(pingerFunc(func(context.Context) error { return down }), logger.Nop())
	assert.ErrorIs(t, failing.Check(ctx), down)

	assert.ErrorIs(t, NewHealthService(nil, logger.Nop()).Check(ctx), ErrNoHealthProbe)
}
