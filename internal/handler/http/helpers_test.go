// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
	"github.com/MKhiriev/go-rot13-api/internal/service"
	"github.com/MKhiriev/go-rot13-api/internal/store"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/internal/validators"
	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/stretchr/testify/require"
)

// testClock is a manually advanced clock shared by the token service and
// the rate limiter in router tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:   "handler-test-secret",
			TokenAlgorithm: config.DefaultTokenAlgorithm,
			TokenDuration:  config.DefaultTokenDuration,
		},
		Server: config.Server{
			HTTPAddress:    config.DefaultHTTPAddress,
			RequestTimeout: config.DefaultRequestTimeout,
		},
		RateLimits: config.RateLimits{
			Login:         config.DefaultLoginRateLimit,
			Info:          config.DefaultInfoRateLimit,
			ROT13:         config.DefaultROT13RateLimit,
			UserInfo:      config.DefaultUserInfoRateLimit,
			Health:        config.DefaultHealthRateLimit,
			SweepInterval: config.DefaultSweepInterval,
		},
	}
}

// newTestHandler creates a Handler with a nop logger and no services, for
// middleware tests that never reach a service.
func newTestHandler() *Handler {
	return &Handler{
		logger:   logger.Nop(),
		traceIDs: utils.NewUUIDGenerator(),
	}
}

// newHandlerWithServices builds a Handler around the given services with a
// real validator and a limiter driven by clock.
func newHandlerWithServices(t *testing.T, services *service.Services, clock *testClock) *Handler {
	t.Helper()

	v, err := validators.NewRequestValidator()
	require.NoError(t, err)

	h, err := NewHandler(services, v, ratelimit.NewFixedWindowLimiter(ratelimit.WithClock(clock.Now)), testConfig(), logger.Nop())
	require.NoError(t, err)
	return h
}

// newTestRouter wires the full stack (store, services, validator, limiter)
// behind the chi router.
func newTestRouter(t *testing.T, clock *testClock) http.Handler {
	t.Helper()

	storages, err := store.NewStorages(logger.Nop())
	require.NoError(t, err)

	services := service.NewServices(storages, []string{"testuser", "admin"}, testConfig().App, logger.Nop(), service.WithClock(clock.Now))
	return newHandlerWithServices(t, services, clock).Init()
}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func newLoginRequest(username, password string) *http.Request {
	form := url.Values{}
	if username != "" {
		form.Set("username", username)
	}
	if password != "" {
		form.Set("password", password)
	}

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func newROT13Request(token, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/rot13", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func loginToken(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	rr := doRequest(router, newLoginRequest(username, password))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp models.TokenResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeBody[T any](t *testing.T, r io.Reader) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}
