// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_SixthLoginIsRejected(t *testing.T) {
	clock := newTestClock()
	router := newTestRouter(t, clock)

	for i := range 5 {
		rr := doRequest(router, newLoginRequest("testuser", "wrong"))
		require.Equal(t, http.StatusUnauthorized, rr.Code, "attempt %d", i+1)
	}

	rr := doRequest(router, newLoginRequest("testuser", "testuser123"))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "Too many requests. Please try again later.", decodeBody[models.RateLimitResponse](t, rr.Body).Error)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
}

func TestRateLimit_WindowResets(t *testing.T) {
	clock := newTestClock()
	router := newTestRouter(t, clock)

	for range 5 {
		doRequest(router, newLoginRequest("testuser", "wrong"))
	}
	require.Equal(t, http.StatusTooManyRequests, doRequest(router, newLoginRequest("testuser", "testuser123")).Code)

	clock.Advance(time.Minute)

	assert.Equal(t, http.StatusOK, doRequest(router, newLoginRequest("testuser", "testuser123")).Code)
}

func TestRateLimit_PerClientAndPerRoute(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	for range 30 {
		require.Equal(t, http.StatusOK, doRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)

	// another route of the same client has its own quota
	assert.Equal(t, http.StatusOK, doRequest(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	// another client has its own quota
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "198.51.100.7:5555"
	assert.Equal(t, http.StatusOK, doRequest(router, req).Code)
}

func TestRateLimit_CheckedBeforeAuth(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	for range 20 {
		rr := doRequest(router, newROT13Request("", `{"text":"ABC"}`))
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	}

	rr := doRequest(router, newROT13Request("", `{"text":"ABC"}`))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRateLimit_Headers(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	rr := doRequest(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "10", rr.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(ratelimit.Decision{}))
	assert.Equal(t, 1, retryAfterSeconds(ratelimit.Decision{RetryAfter: 200 * time.Millisecond}))
	assert.Equal(t, 31, retryAfterSeconds(ratelimit.Decision{RetryAfter: 30*time.Second + time.Millisecond}))
}

func TestClientAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "10.0.0.1:4242"
	assert.Equal(t, "10.0.0.1", clientAddr(req))

	req.RemoteAddr = "[2001:db8::1]:4242"
	assert.Equal(t, "2001:db8::1", clientAddr(req))

	req.RemoteAddr = "10.0.0.2"
	assert.Equal(t, "10.0.0.2", clientAddr(req))
}
