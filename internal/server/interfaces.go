// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs every enabled transport.
type Server interface {
	// Run serves requests until ctx is cancelled or a transport fails, then
	// shuts all transports down. A clean shutdown returns nil.
	Run(ctx context.Context) error
}

// transport is a single listening server managed by [Server].
type transport interface {
	// RunServer blocks until the transport stops.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones
	// until ctx expires.
	Shutdown(ctx context.Context) error

	// Name is used in log lines.
	Name() string
}
