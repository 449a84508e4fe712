// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenTypeBearer is the only token type issued by the service.
const TokenTypeBearer = "bearer"

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ROT13Response is returned by POST /api/rot13.
type ROT13Response struct {
	Result string `json:"result"`
	User   string `json:"user"`
}

// UserInfoResponse is returned by GET /api/user-info.
type UserInfoResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// ServiceInfo is the static description served on GET /.
type ServiceInfo struct {
	Service string            `json:"service"`
	Auth    string            `json:"auth"`
	Login   string            `json:"login"`
	Users   map[string]string `json:"users"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the generic error body, e.g. {"detail": "Invalid token"}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RateLimitResponse is the body sent with 429 Too Many Requests.
type RateLimitResponse struct {
	Error string `json:"error"`
}

// FieldError describes a single failed field check.
//
// Loc is the path of the offending field, e.g. ["body", "text"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is the body sent with 422 Unprocessable Entity.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
