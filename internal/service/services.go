// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	ROT13Service   ROT13Service
	AppInfoService AppInfoService
}

// NewServices wires every service to its storages. usernames are the
// accounts advertised by AppInfoService.
func NewServices(storages *store.Storages, usernames []string, cfg config.App, logger *logger.Logger, opts ...AuthOption) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger, opts...),
		ROT13Service:   NewROT13Service(logger),
		AppInfoService: NewAppInfoService(usernames, logger),
	}
}
