// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds the listening address and request handling settings.
	Server Server `envPrefix:"SERVER_"`

	// RateLimits holds the per-route request quotas.
	RateLimits RateLimits `envPrefix:"RATE_LIMIT_"`

	// Adapter holds the settings the CLI client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the secret used to sign and verify access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenAlgorithm is the HMAC signing algorithm: HS256, HS384 or HS512.
	// Env: APP_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM"`

	// TokenDuration is how long an access token stays valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimum zerolog level written (e.g. "info", "debug").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TrustProxyHeaders makes the client address come from X-Forwarded-For /
	// X-Real-IP instead of the TCP peer. Enable only behind a trusted proxy.
	// Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

// RateLimits holds per-route quotas written as "<count>/<unit>", where unit is
// one of second, minute, hour or day (e.g. "5/minute").
type RateLimits struct {
	// Env: RATE_LIMIT_LOGIN
	Login string `env:"LOGIN"`
	// Env: RATE_LIMIT_INFO
	Info string `env:"INFO"`
	// Env: RATE_LIMIT_ROT13
	ROT13 string `env:"ROT13"`
	// Env: RATE_LIMIT_USER_INFO
	UserInfo string `env:"USER_INFO"`
	// Env: RATE_LIMIT_HEALTH
	Health string `env:"HEALTH"`

	// SweepInterval is how often expired counters are evicted.
	// Env: RATE_LIMIT_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Adapter holds the client-side view of the server.
type Adapter struct {
	// HTTPAddress is the server base URL or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Username and Password are the credentials used for /login.
	// Env: ADAPTER_USERNAME, ADAPTER_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(ParseFlags).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
