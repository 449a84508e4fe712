// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"maps"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/models"
)

const (
	serviceName      = "ROT13 API"
	serviceAuthHint  = "JWT Token required"
	serviceLoginHint = "POST /login with username/password"
	maskedPassword   = "xxxxxxx"
)

type appInfoService struct {
	info models.ServiceInfo

	logger *logger.Logger
}

// NewAppInfoService builds the static description advertised on GET /.
// usernames are listed with masked passwords.
func NewAppInfoService(usernames []string, logger *logger.Logger) AppInfoService {
	users := make(map[string]string, len(usernames))
	for _, u := range usernames {
		users[u] = maskedPassword
	}

	return &appInfoService{
		info: models.ServiceInfo{
			Service: serviceName,
			Auth:    serviceAuthHint,
			Login:   serviceLoginHint,
			Users:   users,
		},
		logger: logger,
	}
}

func (s *appInfoService) Info(ctx context.Context) models.ServiceInfo {
	info := s.info
	info.Users = maps.Clone(s.info.Users)
	return info
}
