// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the enabled transport servers until the given context
// is cancelled and then shuts them down gracefully.
package server
