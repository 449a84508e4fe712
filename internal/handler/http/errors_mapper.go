// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/service"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/internal/validators"
	"github.com/MKhiriev/go-rot13-api/models"
)

const (
	detailNotFound         = "Not Found"
	detailMethodNotAllowed = "Method Not Allowed"
	rateLimitMessage       = "Too many requests. Please try again later."
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrUnknownUser:        http.StatusUnauthorized,
	ErrNotAuthenticated:           http.StatusUnauthorized,
}

var errorDetailMap = map[error]string{
	service.ErrInvalidCredentials: "Invalid username or password",
	service.ErrInvalidToken:       "Invalid token",
	service.ErrUnknownUser:        "User not found",
	ErrNotAuthenticated:           "Not authenticated",
}

// bearerChallengeErrors answer with "WWW-Authenticate: Bearer".
var bearerChallengeErrors = []error{
	service.ErrInvalidToken,
	service.ErrUnknownUser,
	ErrNotAuthenticated,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

func needsBearerChallenge(err error) bool {
	for _, target := range bearerChallengeErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeError answers with the status and {"detail": ...} body mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if needsBearerChallenge(err) {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Detail: detailFromError(err)}, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

// writeValidationError answers 422 with the field errors carried by err.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if !errors.As(err, &vErr) {
		writeError(w, r, err)
		return
	}

	log.Debug().Err(err).Msg("request validation failed")
	if _, wErr := utils.WriteJSON(w, models.ValidationErrorResponse{Detail: vErr.Fields}, http.StatusUnprocessableEntity); wErr != nil {
		log.Err(wErr).Msg("error writing validation response")
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detailNotFound}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detailMethodNotAllowed}, http.StatusMethodNotAllowed)
}
