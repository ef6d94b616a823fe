// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportHandlers is returned by NewHandlers when the server config
// carries neither an HTTP nor a gRPC address.
var errNoTransportHandlers = errors.New("no transport handlers are configured")
