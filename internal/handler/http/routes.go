// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.trustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json"), withGZipRequest)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.rateLimit(routeLogin)).Post("/login", h.login)
		r.With(h.rateLimit(routeInfo)).Get("/", h.info)
		r.With(h.rateLimit(routeHealth)).Get("/health", h.health)
	})

	// routes with bearer authorization; the quota is checked first
	router.Group(func(r chi.Router) {
		r.With(h.rateLimit(routeROT13), h.auth).Post("/api/rot13", h.rot13)
		r.With(h.rateLimit(routeUserInfo), h.auth).Get("/api/user-info", h.userInfo)
	})

	return router
}
