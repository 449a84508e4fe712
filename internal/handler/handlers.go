// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers exposed by the server.
package handler

import (
	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/handler/http"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
	"github.com/MKhiriev/go-rot13-api/internal/service"
	"github.com/MKhiriev/go-rot13-api/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	validator validators.Validator,
	limiter ratelimit.Limiter,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, validator, limiter, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
