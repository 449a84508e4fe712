// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-rot13-api/internal/utils"
)

// auth requires "Authorization: Bearer <token>", resolves the token to a
// user via AuthService.ParseToken and stores the user in the request
// context for the handler.
//
// Rejections are 401 with "WWW-Authenticate: Bearer":
//   - no usable bearer header: "Not authenticated"
//   - token fails verification: "Invalid token"
//   - token names an unknown user: "User not found"
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, ErrNotAuthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
