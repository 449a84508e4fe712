// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the CLI client to talk to
// the ROT13 API server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// commands from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rot13-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the ROT13 API server.
// Implementations attach the stored bearer token to protected calls and map
// failed responses to the sentinel errors of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to protected requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Login posts the credentials as a form to /login and stores the
	// returned access token via SetToken.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// ROT13 sends text to /api/rot13. Requires a token.
	ROT13(ctx context.Context, text string) (models.ROT13Response, error)

	// UserInfo fetches /api/user-info. Requires a token.
	UserInfo(ctx context.Context) (models.UserInfoResponse, error)

	// Health fetches /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Info fetches the service description from /.
	Info(ctx context.Context) (models.ServiceInfo, error)
}
