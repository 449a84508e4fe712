// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/models"
)

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds the storages backed by the given user table.
// When no users are passed, [DefaultUsers] is used.
func NewStorages(logger *logger.Logger, users ...models.User) (*Storages, error) {
	if len(users) == 0 {
		users = DefaultUsers()
	}

	userRepository, err := NewUserRepository(logger, users...)
	if err != nil {
		return nil, err
	}

	return &Storages{UserRepository: userRepository}, nil
}
