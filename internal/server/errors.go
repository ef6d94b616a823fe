// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoTransports = errors.New("no transports to serve: neither HTTP nor gRPC address is set")
)
