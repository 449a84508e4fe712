// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNotAuthenticated is returned by the auth middleware when the request
	// carries no usable "Authorization: Bearer <token>" header.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidForm is returned when a login body cannot be parsed as a form.
	ErrInvalidForm = errors.New("invalid form body")
)
