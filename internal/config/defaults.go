// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults mirror the values the service has always shipped with.
const (
	DefaultHTTPAddress    = "0.0.0.0:8000"
	DefaultTokenAlgorithm = "HS256"
	DefaultTokenDuration  = 30 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"

	DefaultLoginRateLimit    = "5/minute"
	DefaultInfoRateLimit     = "10/minute"
	DefaultROT13RateLimit    = "20/minute"
	DefaultUserInfoRateLimit = "15/minute"
	DefaultHealthRateLimit   = "30/minute"
	DefaultSweepInterval     = time.Minute

	DefaultAdapterAddress = "http://localhost:8000"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenAlgorithm: DefaultTokenAlgorithm,
			TokenDuration:  DefaultTokenDuration,
			LogLevel:       DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		RateLimits: RateLimits{
			Login:         DefaultLoginRateLimit,
			Info:          DefaultInfoRateLimit,
			ROT13:         DefaultROT13RateLimit,
			UserInfo:      DefaultUserInfoRateLimit,
			Health:        DefaultHealthRateLimit,
			SweepInterval: DefaultSweepInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: defaultClientTimeout,
		},
	}
}
