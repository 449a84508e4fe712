// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It owns startup, signal handling (SIGINT, SIGTERM, SIGQUIT) and graceful
// shutdown: on a signal the HTTP server stops accepting connections, drains
// in-flight requests, and the workers are cancelled.
package server
