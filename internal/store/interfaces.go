// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the credential store used for authentication.
//
// The store is a fixed, in-memory table populated once at startup; there is
// no persistence and no way to add or remove users at runtime.
package store

import (
	"context"

	"github.com/MKhiriev/go-rot13-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository resolves users by their unique username.
type UserRepository interface {
	// FindUserByUsername returns the user registered under username or
	// [ErrNoUserWasFound] when there is none.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
