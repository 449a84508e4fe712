// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic behind the HTTP handlers:
// credential checks, access token issuance and verification, the ROT13
// transform and the static service description.
package service

import (
	"context"

	"github.com/MKhiriev/go-rot13-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Login checks username and password against the credential store.
	Login(ctx context.Context, username, password string) (models.User, error)
	// CreateToken issues a signed access token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies tokenString and resolves the user it was issued for.
	ParseToken(ctx context.Context, tokenString string) (models.User, error)
}

type ROT13Service interface {
	// Encode validates text and returns its ROT13 rotation.
	Encode(ctx context.Context, text string) (string, error)
}

type AppInfoService interface {
	// Info returns the public service description.
	Info(ctx context.Context) models.ServiceInfo
}
