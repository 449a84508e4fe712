// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
	"github.com/MKhiriev/go-rot13-api/internal/service"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	limiter ratelimit.Limiter
	rules   map[string]ratelimit.Rule

	requestTimeout    time.Duration
	trustProxyHeaders bool

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Route quotas are parsed from cfg; a
// malformed quota is a startup error.
func NewHandler(
	services *service.Services,
	validator validators.Validator,
	limiter ratelimit.Limiter,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Handler, error) {
	rules, err := routeRules(cfg.RateLimits)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		validator:         validator,
		limiter:           limiter,
		rules:             rules,
		requestTimeout:    cfg.Server.RequestTimeout,
		trustProxyHeaders: cfg.Server.TrustProxyHeaders,
		traceIDs:          utils.NewUUIDGenerator(),
		logger:            logger,
	}, nil
}

// Route names used as the rate limiter's per-route key part.
const (
	routeLogin    = "login"
	routeInfo     = "info"
	routeHealth   = "health"
	routeROT13    = "rot13"
	routeUserInfo = "user_info"
)

func routeRules(cfg config.RateLimits) (map[string]ratelimit.Rule, error) {
	raw := map[string]string{
		routeLogin:    cfg.Login,
		routeInfo:     cfg.Info,
		routeHealth:   cfg.Health,
		routeROT13:    cfg.ROT13,
		routeUserInfo: cfg.UserInfo,
	}

	rules := make(map[string]ratelimit.Rule, len(raw))
	for route, value := range raw {
		rule, err := ratelimit.ParseRule(value)
		if err != nil {
			return nil, fmt.Errorf("rate limit for %s: %w", route, err)
		}
		rules[route] = rule
	}

	return rules, nil
}
