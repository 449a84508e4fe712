// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
	"github.com/MKhiriev/go-rot13-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_ParsesRouteRules(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{}, newTestClock())

	assert.Equal(t, ratelimit.Rule{Limit: 5, Window: time.Minute}, h.rules[routeLogin])
	assert.Equal(t, ratelimit.Rule{Limit: 10, Window: time.Minute}, h.rules[routeInfo])
	assert.Equal(t, ratelimit.Rule{Limit: 20, Window: time.Minute}, h.rules[routeROT13])
	assert.Equal(t, ratelimit.Rule{Limit: 15, Window: time.Minute}, h.rules[routeUserInfo])
	assert.Equal(t, ratelimit.Rule{Limit: 30, Window: time.Minute}, h.rules[routeHealth])
	assert.Equal(t, 30*time.Second, h.requestTimeout)
	assert.False(t, h.trustProxyHeaders)
}

func TestNewHandler_InvalidRule(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimits.Health = "often"

	h, err := NewHandler(&service.Services{}, nil, ratelimit.NewFixedWindowLimiter(), cfg, logger.Nop())

	assert.Nil(t, h)
	require.Error(t, err)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidRule)
}

func TestInit_ReturnsRouter(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{}, newTestClock())
	router := h.Init()

	require.NotNil(t, router)

	patterns := make(map[string]bool)
	for _, route := range router.Routes() {
		patterns[route.Pattern] = true
	}
	for _, want := range []string{"/login", "/", "/health", "/api/rot13", "/api/user-info"} {
		assert.True(t, patterns[want], "route %s must be registered", want)
	}
}
