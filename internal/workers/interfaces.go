// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs that live for the whole process and
// share no state with request handling.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails for good; returning nil after cancellation is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}
