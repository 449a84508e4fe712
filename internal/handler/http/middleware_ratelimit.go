// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/models"
)

// rateLimit counts the request against the quota of route for the calling
// client. Over-quota requests get 429 with Retry-After and never reach next.
func (h *Handler) rateLimit(route string) func(http.Handler) http.Handler {
	rule := h.rules[route]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := h.limiter.Allow(ratelimit.Key(route, clientAddr(r)), rule)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				logger.FromRequest(r).Info().
					Str("route", route).
					Str("client", clientAddr(r)).
					Dur("retry_after", decision.RetryAfter).
					Msg("rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(decision)))
				utils.WriteJSON(w, models.RateLimitResponse{Error: rateLimitMessage}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(d ratelimit.Decision) int {
	return max(1, int(math.Ceil(d.RetryAfter.Seconds())))
}

// clientAddr is the host part of RemoteAddr. With trusted proxy headers
// enabled, chi's RealIP has already replaced RemoteAddr by then.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
