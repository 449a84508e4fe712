// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/internal/validators"
	"github.com/MKhiriev/go-rot13-api/models"
)

const maxFormMemory = 1 << 20

// login accepts form-encoded username and password and answers with a
// bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := parseLoginForm(r)
	if err != nil {
		log.Debug().Err(err).Msg("login form could not be parsed")
		writeValidationError(w, r, validators.NewValidationError(
			validators.MissingField("username"),
			validators.MissingField("password"),
		))
		return
	}

	if err = h.validator.Validate(ctx, credentials); err != nil {
		writeValidationError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")

	resp := models.TokenResponse{AccessToken: token.SignedString, TokenType: models.TokenTypeBearer}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token response")
	}
}

func parseLoginForm(r *http.Request) (models.LoginRequest, error) {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.LoginRequest{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return models.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}
