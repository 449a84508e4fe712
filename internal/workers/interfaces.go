// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background jobs of the server
// (currently the rate limiter sweeper) next to the HTTP listener.
package workers

import "context"

// Worker is a background job that runs until its context is cancelled.
//
// Run must return nil on a clean stop caused by ctx cancellation and a
// non-nil error on any failure that should bring the server down.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
