// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/utils"
	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// rooted at cfg.HTTPAddress. A bare "host:port" is treated as http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, ErrEmptyAddress
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. The credentials travel as an
// application/x-www-form-urlencoded body.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", username).Msg("logged in")
	return token, nil
}

// ROT13 implements [ServerAdapter].
func (h *httpServerAdapter) ROT13(ctx context.Context, text string) (models.ROT13Response, error) {
	var result models.ROT13Response

	req, err := h.authedRequest(ctx)
	if err != nil {
		return result, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.TextRequest{Text: &text}).
		SetResult(&result).
		Post("/api/rot13")
	if err != nil {
		return models.ROT13Response{}, fmt.Errorf("rot13 request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ROT13Response{}, err
	}

	return result, nil
}

// UserInfo implements [ServerAdapter].
func (h *httpServerAdapter) UserInfo(ctx context.Context) (models.UserInfoResponse, error) {
	var info models.UserInfoResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return info, err
	}

	resp, err := req.SetResult(&info).Get("/api/user-info")
	if err != nil {
		return models.UserInfoResponse{}, fmt.Errorf("user info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfoResponse{}, err
	}

	return info, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&health).Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// Info implements [ServerAdapter].
func (h *httpServerAdapter) Info(ctx context.Context) (models.ServiceInfo, error) {
	var info models.ServiceInfo

	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/")
	if err != nil {
		return models.ServiceInfo{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
