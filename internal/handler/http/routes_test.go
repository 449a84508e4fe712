// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{
			name:     "service info",
			path:     "/",
			wantBody: `{"service":"ROT13 API","auth":"JWT Token required","login":"POST /login with username/password","users":{"testuser":"xxxxxxx","admin":"xxxxxxx"}}`,
		},
		{name: "health", path: "/health", wantBody: `{"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestInit_LoginAndEncode(t *testing.T) {
	router := newTestRouter(t, newTestClock())
	token := loginToken(t, router, "testuser", "testuser123")

	rr := doRequest(router, newROT13Request(token, `{"text":"HELLO WORLD"}`))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"result":"URYYB JBEYQ","user":"testuser"}`, rr.Body.String())
}

func TestInit_UserInfo(t *testing.T) {
	router := newTestRouter(t, newTestClock())
	token := loginToken(t, router, "admin", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/user-info", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := doRequest(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Hello admin!","user_id":2,"username":"admin"}`, rr.Body.String())
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	tests := []struct {
		name       string
		authHeader string
		wantDetail string
	}{
		{name: "no header", wantDetail: "Not authenticated"},
		{name: "basic scheme", authHeader: "Basic dGVzdHVzZXI6dGVzdHVzZXIxMjM=", wantDetail: "Not authenticated"},
		{name: "garbage token", authHeader: "Bearer garbage", wantDetail: "Invalid token"},
	}

	for _, tt := range tests {
		for _, route := range []struct{ method, path string }{
			{http.MethodPost, "/api/rot13"},
			{http.MethodGet, "/api/user-info"},
		} {
			t.Run(tt.name+" "+route.path, func(t *testing.T) {
				req := httptest.NewRequest(route.method, route.path, strings.NewReader(`{"text":"ABC"}`))
				if tt.authHeader != "" {
					req.Header.Set("Authorization", tt.authHeader)
				}
				rr := doRequest(router, req)

				assert.Equal(t, http.StatusUnauthorized, rr.Code)
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
				assert.Equal(t, tt.wantDetail, decodeBody[models.ErrorResponse](t, rr.Body).Detail)
			})
		}
	}
}

func TestInit_ExpiredToken(t *testing.T) {
	clock := newTestClock()
	router := newTestRouter(t, clock)
	token := loginToken(t, router, "testuser", "testuser123")

	clock.Advance(31 * time.Minute)
	rr := doRequest(router, newROT13Request(token, `{"text":"ABC"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid token", decodeBody[models.ErrorResponse](t, rr.Body).Detail)
}

func TestInit_TokenForUnknownUser(t *testing.T) {
	clock := newTestClock()
	router := newTestRouter(t, clock)

	cfg := testConfig().App
	ghost, err := utils.GenerateJWTToken("ghost", cfg.TokenAlgorithm, time.Hour, cfg.TokenSignKey, clock.Now())
	require.NoError(t, err)

	rr := doRequest(router, newROT13Request(ghost.SignedString, `{"text":"ABC"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "User not found", decodeBody[models.ErrorResponse](t, rr.Body).Detail)
}

func TestInit_UnknownRoute_Returns404JSON(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	rr := doRequest(router, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())
}

func TestInit_WrongMethod_Returns405JSON(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	tests := []struct{ method, path string }{
		{http.MethodGet, "/login"},
		{http.MethodPost, "/health"},
		{http.MethodGet, "/api/rot13"},
		{http.MethodDelete, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(router, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	rr := doRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rr = doRequest(router, req)
	assert.Equal(t, "trace-from-client", rr.Header().Get(traceIDHeader))
}

func TestInit_CompressesWhenAccepted(t *testing.T) {
	router := newTestRouter(t, newTestClock())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := doRequest(router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}
