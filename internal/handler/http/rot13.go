// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/service"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/internal/validators"
	"github.com/MKhiriev/go-rot13-api/models"
)

const textField = "text"

func (h *Handler) rot13(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	var req models.TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fieldErr := validators.InvalidJSON()
		if errors.Is(err, io.EOF) {
			fieldErr = validators.MissingBody()
		}
		writeValidationError(w, r, validators.NewValidationError(fieldErr))
		return
	}

	if err := h.validator.Validate(ctx, &req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	result, err := h.services.ROT13Service.Encode(ctx, req.GetText())
	if errors.Is(err, service.ErrValidation) {
		writeValidationError(w, r, validators.NewValidationError(validators.TextFieldError(textField, err)))
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.ROT13Response{Result: result, User: user.Username}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing rot13 response")
	}
}
