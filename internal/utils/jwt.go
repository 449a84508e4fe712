// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned when a token cannot be generated
	// because of an empty key, unknown algorithm or non-positive duration.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	// ErrEmptyUsernameClaim is returned when a verified token has no username.
	ErrEmptyUsernameClaim = errors.New("empty username claim")
	// ErrNoBearerToken is returned when the Authorization header does not
	// carry a bearer credential.
	ErrNoBearerToken = errors.New("no bearer token in authorization header")
)

const bearerScheme = "bearer"

// GenerateJWTToken signs a token with the claims {username, exp}, where exp
// is now + tokenDuration, using an HMAC algorithm named by algorithm
// (HS256, HS384 or HS512).
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("testuser", "HS256", 30*time.Minute, "secret", time.Now())
func GenerateJWTToken(username, algorithm string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok || tokenDuration <= 0 || signKey == "" || username == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// The token must be signed with algorithm and signKey, must carry an exp
// claim that has not elapsed according to now, and must name a username.
func ValidateAndParseJWTToken(tokenString, signKey, algorithm string, now func() time.Time) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{algorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Token{}, ErrEmptyUsernameClaim
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrNoBearerToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoBearerToken
	}

	return token, nil
}
