// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// request context keys, JSON response writing, the resty client wrapper,
// access token signing and parsing, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-rot13-api/models"
)

// contextKey is a private type for context keys so that values set here
// never collide with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated user is stored.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext returns the user stored by WithUser.
// ok is false when the value is missing or has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
