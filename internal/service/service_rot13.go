// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rot13-api/internal/cipher"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
)

type rot13Service struct {
	logger *logger.Logger
}

func NewROT13Service(logger *logger.Logger) ROT13Service {
	return &rot13Service{logger: logger}
}

// Encode returns ROT13(text). Invalid text is rejected with ErrValidation
// wrapping cipher.ErrEmptyText or cipher.ErrInvalidCharacter.
func (s *rot13Service) Encode(ctx context.Context, text string) (string, error) {
	if err := cipher.CheckText(text); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return cipher.ROT13(text), nil
}
