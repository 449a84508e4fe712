// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so that callers share one place where
// base URL, timeout and default headers are configured.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 15*time.Second)
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A bare "host:port" is
// given an http:// scheme. A zero timeout leaves resty's default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(NormalizeBaseURL(baseURL)).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// NormalizeBaseURL adds the http:// scheme to addresses given as host:port
// and drops a trailing slash.
func NormalizeBaseURL(address string) string {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if address == "" {
		return address
	}
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}

	return address
}
