// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password so the two cannot be told apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken covers every token that fails verification: bad
	// signature, unexpected algorithm, missing or elapsed exp, no username.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnknownUser is returned when a valid token names a user that is
	// not in the credential store.
	ErrUnknownUser = errors.New("user not found")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrValidation wraps the reason a text was rejected by the cipher.
	ErrValidation = errors.New("validation failed")
)
