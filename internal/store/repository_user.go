// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/models"
)

// DefaultUsers returns the built-in credential table.
func DefaultUsers() []models.User {
	return []models.User{
		{ID: 1, Username: "testuser", Password: "testuser123"},
		{ID: 2, Username: "admin", Password: "admin123"},
	}
}

// userRepository is a read-only map from username to user. The map is never
// written after construction, so concurrent reads need no locking.
type userRepository struct {
	users map[string]models.User

	logger *logger.Logger
}

// NewUserRepository builds an in-memory [UserRepository] from users.
// Usernames must be non-empty and unique.
func NewUserRepository(logger *logger.Logger, users ...models.User) (UserRepository, error) {
	table := make(map[string]models.User, len(users))
	for _, u := range users {
		if u.Username == "" {
			return nil, fmt.Errorf("user with id %d has an empty username", u.ID)
		}
		if _, exists := table[u.Username]; exists {
			return nil, fmt.Errorf("duplicate username %q", u.Username)
		}
		table[u.Username] = u
	}

	logger.Debug().Int("users", len(table)).Msg("UserRepository created")
	return &userRepository{
		users:  table,
		logger: logger,
	}, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}
