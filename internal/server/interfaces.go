// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives and then
	// shuts down gracefully.
	RunServer() error

	// Run serves until ctx is done or a component fails.
	Run(ctx context.Context) error
}
