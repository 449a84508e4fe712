// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the ROT13 API.
//
// It wires the chi router, the request handlers and the middleware chain
// (trace id, access logging, compression, per-route rate limiting and bearer
// authentication) in front of the service layer. Service errors are turned
// into status codes and bodies in one place, see errors_mapper.go.
package http
