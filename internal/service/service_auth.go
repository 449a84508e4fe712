// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/store"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against a UserRepository and issues and verifies
// HMAC-signed access tokens.
type authService struct {
	// userRepository resolves usernames for both Login and ParseToken.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenAlgorithm is the only algorithm accepted when parsing.
	tokenAlgorithm string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for exp; time.Now outside of tests.
	now func() time.Time

	logger *logger.Logger
}

// AuthOption customizes an authService.
type AuthOption func(*authService)

// WithClock replaces the clock used to stamp and check token expiry.
func WithClock(now func() time.Time) AuthOption {
	return func(a *authService) {
		a.now = now
	}
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and token settings from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger, opts ...AuthOption) AuthService {
	a := &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Login authenticates a user by exact, plaintext password comparison.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// Any other repository failure is wrapped and returned as is.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	// The credential table holds clear passwords; compare them verbatim.
	if foundUser.Password != password {
		log.Info().Int64("user_id", foundUser.ID).Str("username", username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a token with claims {username, exp = now + TTL}.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Username, a.tokenAlgorithm, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies tokenString and resolves its username claim.
//
// Returns ErrInvalidToken when verification fails for any reason and
// ErrUnknownUser when the claim does not name a stored user.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenAlgorithm, a.now)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, token.Claims.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", token.Claims.Username).Msg("token names an unknown user")
		return models.User{}, ErrUnknownUser
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}
