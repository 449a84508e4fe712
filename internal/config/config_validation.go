// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
)

// SupportedTokenAlgorithms lists the HMAC algorithms accepted for signing.
var SupportedTokenAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the merged server configuration can be used at startup.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrEmptyTokenSignKey)
	}
	if !slices.Contains(SupportedTokenAlgorithms, cfg.App.TokenAlgorithm) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedTokenAlgorithm, cfg.App.TokenAlgorithm))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	for name, rule := range cfg.RateLimits.rules() {
		if _, err := ratelimit.ParseRule(rule); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidRateLimitConfigs, name, err))
		}
	}
	if cfg.RateLimits.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: sweep interval must be positive", ErrInvalidRateLimitConfigs))
	}

	return errors.Join(errs...)
}

func (r RateLimits) rules() map[string]string {
	return map[string]string{
		"login":     r.Login,
		"info":      r.Info,
		"rot13":     r.ROT13,
		"user_info": r.UserInfo,
		"health":    r.Health,
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
