// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/models"
)

const statusOK = "ok"

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.services.AppInfoService.Info(r.Context()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing service info")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: statusOK}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}

func (h *Handler) userInfo(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	resp := models.UserInfoResponse{
		Message:  fmt.Sprintf("Hello %s!", user.Username),
		UserID:   user.ID,
		Username: user.Username,
	}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user info")
	}
}
