// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line front end of the to-do API.
//
// Every invocation runs one command. The token obtained by signin is kept in
// a file so that later invocations are authenticated.
package client
