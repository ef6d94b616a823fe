// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the to-do backend.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, panic recovery, CORS, compression, per-request
// timeouts and token authentication are handled here before requests are
// delegated to the service layer.
package http
