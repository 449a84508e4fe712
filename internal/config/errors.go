// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrEmptyTokenSignKey indicates that no token signing key was provided.
	ErrEmptyTokenSignKey = errors.New("token sign key is required")
	// ErrUnsupportedTokenAlgorithm indicates an algorithm other than HS256/384/512.
	ErrUnsupportedTokenAlgorithm = errors.New("unsupported token algorithm")
	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates a malformed per-route quota.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
